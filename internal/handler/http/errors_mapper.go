package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/team-lock/internal/app"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/internal/service"
	"github.com/MKhiriev/team-lock/internal/store"
	"github.com/MKhiriev/team-lock/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidRequest:          http.StatusBadRequest,
	service.ErrKeyMaterialInToggle:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotTeamOwner:            http.StatusForbidden,
	service.ErrLockNotConfigured:       http.StatusConflict,
	service.ErrLockAlreadyConfigured:   http.StatusConflict,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrTeamNotFound:       http.StatusNotFound,
	store.ErrTeamAlreadyExists:  http.StatusConflict,
	store.ErrVerifierChanged:    http.StatusConflict,

	errLockEnabledRequired: http.StatusBadRequest,
	errUnknownField:        http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing text for errors whose own text is
// not meant for clients. Validation errors are sent as they are.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     app.MsgInvalidDataProvided,
	service.ErrKeyMaterialInToggle:     app.MsgKeyMaterialInToggle,
	service.ErrWrongPassword:           app.MsgInvalidLoginPassword,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	service.ErrNotTeamOwner:            app.MsgNotTeamOwner,
	service.ErrLockNotConfigured:       app.MsgLockNotConfigured,
	service.ErrLockAlreadyConfigured:   app.MsgLockAlreadyConfigured,

	store.ErrLoginAlreadyExists: app.MsgLoginAlreadyExists,
	store.ErrTeamNotFound:       app.MsgTeamNotFound,
	store.ErrTeamAlreadyExists:  app.MsgTeamAlreadyExists,
	store.ErrVerifierChanged:    app.MsgVerifierChanged,

	errLockEnabledRequired: app.MsgLockEnabledRequired,
}

var statusKinds = map[int]string{
	http.StatusBadRequest:   app.KindInvalidRequest,
	http.StatusUnauthorized: app.KindAuthentication,
	http.StatusForbidden:    app.KindForbidden,
	http.StatusNotFound:     app.KindNotFound,
	http.StatusConflict:     app.KindConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	if status == http.StatusBadRequest {
		return err.Error()
	}
	return app.MsgInternalServerError
}

func kindFromStatus(status int) string {
	if kind, ok := statusKinds[status]; ok {
		return kind
	}
	return app.KindInternal
}

// writeServiceError answers with the status, kind and message mapped from
// err. Server-side failures are logged; their details never reach the body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
	} else {
		logger.FromRequest(r).Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, kindFromStatus(status), messageFromError(err, status), status)
}
