package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Get("/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/teams", h.createTeam)
		r.Get("/teams/{slug}/security", h.getTeamSecurity)
		r.Patch("/teams/{slug}/security", h.setTeamLockEnabled)
		r.Post("/teams/{slug}/security/setup", h.setupTeamLock)
		r.Post("/teams/{slug}/security/password", h.changeTeamPassword)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
