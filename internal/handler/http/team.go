// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/team-lock/internal/app"
	"github.com/MKhiriev/team-lock/internal/service"
	"github.com/MKhiriev/team-lock/internal/utils"
	"github.com/MKhiriev/team-lock/models"
)

const lockEnabledField = "lockEnabled"

// keyMaterialFields may only be written by the setup and password endpoints.
var keyMaterialFields = []string{"kdf", "verifierB64", "encryption"}

func (h *Handler) createTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.KindAuthentication, app.MsgAuthorizationRequired, http.StatusUnauthorized)
		return
	}

	var req models.CreateTeamRequest
	if err := decodeStrict(r.Body, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	team, err := h.services.TeamService.CreateTeam(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.TeamResponse{Team: team}, http.StatusCreated)
}

func (h *Handler) getTeamSecurity(w http.ResponseWriter, r *http.Request) {
	team, err := h.services.TeamService.GetTeamSecurity(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.TeamResponse{Team: team}, http.StatusOK)
}

// setTeamLockEnabled accepts exactly {"lockEnabled": bool}. Anything that
// looks like key material is refused with a pointer to the right endpoint.
func (h *Handler) setTeamLockEnabled(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.KindAuthentication, app.MsgAuthorizationRequired, http.StatusUnauthorized)
		return
	}

	slug := chi.URLParam(r, "slug")

	enabled, err := decodeToggle(r.Body)
	if err != nil {
		// non-owners are refused before their body is judged
		if ownerErr := h.checkTeamOwner(r, userID, slug); ownerErr != nil {
			err = ownerErr
		}
		writeServiceError(w, r, err)
		return
	}

	team, err := h.services.TeamService.SetLockEnabled(r.Context(), userID, slug, enabled)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.TeamResponse{Team: team}, http.StatusOK)
}

func (h *Handler) checkTeamOwner(r *http.Request, userID int64, slug string) error {
	team, err := h.services.TeamService.GetTeamSecurity(r.Context(), slug)
	if err != nil {
		return err
	}
	if team.OwnerID != userID {
		return service.ErrNotTeamOwner
	}
	return nil
}

func (h *Handler) setupTeamLock(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.KindAuthentication, app.MsgAuthorizationRequired, http.StatusUnauthorized)
		return
	}

	var req models.SetupLockRequest
	if err := decodeStrict(r.Body, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	team, err := h.services.TeamService.SetupLock(r.Context(), userID, chi.URLParam(r, "slug"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.TeamResponse{Team: team}, http.StatusOK)
}

func (h *Handler) changeTeamPassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.KindAuthentication, app.MsgAuthorizationRequired, http.StatusUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := decodeStrict(r.Body, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	team, err := h.services.TeamService.ChangePassword(r.Context(), userID, chi.URLParam(r, "slug"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.TeamResponse{Team: team}, http.StatusOK)
}

// decodeToggle parses a toggle body. Key material is checked first so the
// caller learns where to send it even when other fields are wrong too.
func decodeToggle(body io.Reader) (bool, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&fields); err != nil {
		return false, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}

	for _, name := range keyMaterialFields {
		if _, ok := fields[name]; ok {
			return false, service.ErrKeyMaterialInToggle
		}
	}
	for name := range fields {
		if name != lockEnabledField {
			return false, fmt.Errorf("%w: %s", errUnknownField, name)
		}
	}

	raw, ok := fields[lockEnabledField]
	if !ok {
		return false, errLockEnabledRequired
	}
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errLockEnabledRequired
	}
}

func decodeStrict(body io.Reader, v any) error {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidRequest, err)
	}
	return nil
}
