package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/team-lock/internal/adapter"
	"github.com/MKhiriev/team-lock/internal/app"
	"github.com/MKhiriev/team-lock/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "bad data", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidDataProvided), want: ErrInvalidDataProvided},
		{name: "key material in toggle", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgKeyMaterialInToggle), want: ErrKeyMaterialInToggle},
		{name: "other bad request", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, "weak kdf"), want: ErrInvalidRequest},
		{name: "wrong password", err: fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidLoginPassword), want: ErrWrongPassword},
		{name: "expired token", err: fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid), want: ErrTokenIsExpiredOrInvalid},
		{name: "no token", err: fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgAuthorizationRequired), want: ErrTokenIsExpiredOrInvalid},
		{name: "forbidden", err: fmt.Errorf("%w: %s", adapter.ErrForbidden, app.MsgNotTeamOwner), want: ErrNotTeamOwner},
		{name: "not found", err: fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgTeamNotFound), want: store.ErrTeamNotFound},
		{name: "login taken", err: fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgLoginAlreadyExists), want: store.ErrLoginAlreadyExists},
		{name: "team taken", err: fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgTeamAlreadyExists), want: store.ErrTeamAlreadyExists},
		{name: "not set up", err: fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgLockNotConfigured), want: ErrLockNotConfigured},
		{name: "already set up", err: fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgLockAlreadyConfigured), want: ErrLockAlreadyConfigured},
		{name: "stale verifier", err: fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgVerifierChanged), want: store.ErrVerifierChanged},
		{name: "registration failed", err: fmt.Errorf("%w: %s", adapter.ErrBadGateway, app.MsgRegistrationFailed), want: ErrRegisterOnServer},
		{name: "login failed", err: fmt.Errorf("%w: %s", adapter.ErrBadGateway, app.MsgLoginFailed), want: ErrLoginOnServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapAdapterError(tt.err), tt.want)
		})
	}
}

func TestMapAdapterError_PassThrough(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))

	raw := errors.New("dial tcp: connection refused")
	assert.Equal(t, raw, mapAdapterError(raw))

	internal := fmt.Errorf("%w: %s", adapter.ErrInternalServerError, app.MsgInternalServerError)
	assert.ErrorIs(t, mapAdapterError(internal), adapter.ErrInternalServerError)
}
