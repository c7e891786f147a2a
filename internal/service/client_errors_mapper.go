// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/team-lock/internal/adapter"
	"github.com/MKhiriev/team-lock/internal/app"
	"github.com/MKhiriev/team-lock/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgKeyMaterialInToggle:
			return ErrKeyMaterialInToggle
		}
		return errors.Join(ErrInvalidRequest, err)

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpiredOrInvalid, app.MsgAuthorizationRequired:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		return ErrNotTeamOwner

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrTeamNotFound

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgLoginAlreadyExists:
			return store.ErrLoginAlreadyExists
		case app.MsgTeamAlreadyExists:
			return store.ErrTeamAlreadyExists
		case app.MsgLockNotConfigured:
			return ErrLockNotConfigured
		case app.MsgLockAlreadyConfigured:
			return ErrLockAlreadyConfigured
		case app.MsgVerifierChanged:
			return store.ErrVerifierChanged
		}

	case errors.Is(err, adapter.ErrBadGateway):
		switch msg {
		case app.MsgRegistrationFailed:
			return ErrRegisterOnServer
		case app.MsgLoginFailed:
			return ErrLoginOnServer
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
