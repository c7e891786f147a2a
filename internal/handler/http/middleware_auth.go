package http

import (
	"net/http"

	"github.com/MKhiriev/team-lock/internal/app"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the user id in the request
// context with [utils.WithUserID]. Requests without a usable token get 401
// AuthenticationError.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Msg("request without Authorization header")
			utils.WriteError(w, app.KindAuthentication, app.MsgAuthorizationRequired, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, app.KindAuthentication, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.KindAuthentication, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
