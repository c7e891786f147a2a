package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/team-lock/internal/app"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/internal/service"
	"github.com/MKhiriev/team-lock/internal/store"
	"github.com/MKhiriev/team-lock/internal/utils"
	"github.com/MKhiriev/team-lock/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.KindInvalidRequest, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, store.ErrLoginAlreadyExists):
			writeServiceError(w, r, err)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteError(w, app.KindInternal, app.MsgRegistrationFailed, http.StatusInternalServerError)
		}
		return
	}

	h.writeToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.KindInvalidRequest, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, service.ErrWrongPassword):
			writeServiceError(w, r, err)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteError(w, app.KindInternal, app.MsgLoginFailed, http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	h.writeToken(w, r, foundUser)
}

func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		utils.WriteError(w, app.KindInternal, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
