// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/team-lock/internal/gate"
	"github.com/MKhiriev/team-lock/internal/lock"
	"github.com/MKhiriev/team-lock/internal/service"
	"github.com/MKhiriev/team-lock/internal/store"
)

const msgSaveTeamFailed = "unable to save team security"

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}

func accountErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return "Неверный логин или пароль"
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return "Логин уже занят"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Логин и пароль обязательны"
	}
	return humanizeServerUnavailableError(err)
}

// teamErrorMessage turns a team service error into a line for the status
// bar. Transport failures collapse into fallback.
func teamErrorMessage(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrNotTeamOwner):
		return "only the team owner can change team security"
	case errors.Is(err, service.ErrLockNotConfigured):
		return "team lock is not set up"
	case errors.Is(err, service.ErrLockAlreadyConfigured):
		return "team lock is already set up"
	case errors.Is(err, store.ErrTeamNotFound):
		return "team not found"
	case errors.Is(err, store.ErrTeamAlreadyExists):
		return "team already exists"
	case errors.Is(err, store.ErrVerifierChanged):
		return "team password was changed elsewhere, reload and try again"
	case errors.Is(err, lock.ErrWrongPassword):
		return gate.MsgIncorrectPassword
	case errors.Is(err, lock.ErrEmptyPassword):
		return gate.MsgPasswordRequired
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "session expired, log in again"
	case errors.Is(err, service.ErrInvalidRequest), errors.Is(err, service.ErrInvalidDataProvided):
		return err.Error()
	}
	return fallback
}
