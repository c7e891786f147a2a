package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/team-lock/internal/service"
	"github.com/MKhiriev/team-lock/internal/store"
	"github.com/MKhiriev/team-lock/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m testServices)
		wantStatus int
		wantToken  bool
		wantBody   string
	}{
		{
			name: "success",
			body: `{"login":"alice","password":"s3cret"}`,
			setup: func(m testServices) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), models.User{Login: "alice", Password: "s3cret"}).
					Return(models.User{UserID: 1, Login: "alice"}, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), models.User{UserID: 1, Login: "alice"}).
					Return(models.Token{SignedString: "jwt"}, nil)
			},
			wantStatus: http.StatusOK,
			wantToken:  true,
		},
		{
			name:       "invalid json",
			body:       `{"login":`,
			setup:      func(m testServices) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"InvalidRequestError","message":"invalid data provided"}`,
		},
		{
			name: "login taken",
			body: `{"login":"alice","password":"s3cret"}`,
			setup: func(m testServices) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":"ConflictError","message":"login already exists"}`,
		},
		{
			name: "storage failure",
			body: `{"login":"alice","password":"s3cret"}`,
			setup: func(m testServices) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"InternalServerError","message":"registration failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			tt.setup(mocks)

			rec := doRequest(router, http.MethodPost, "/auth/register", tt.body, false)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantToken {
				assert.Equal(t, "Bearer jwt", rec.Header().Get("Authorization"))
			}
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(m testServices)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			setup: func(m testServices) {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: 3, Login: "alice"}, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{SignedString: "jwt"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			setup: func(m testServices) {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrWrongPassword)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"AuthenticationError","message":"invalid login/password"}`,
		},
		{
			name: "token creation failed",
			setup: func(m testServices) {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: 3}, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"InternalServerError","message":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			tt.setup(mocks)

			rec := doRequest(router, http.MethodPost, "/auth/login", `{"login":"alice","password":"x"}`, false)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
