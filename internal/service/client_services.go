package service

import (
	"github.com/MKhiriev/team-lock/internal/adapter"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/internal/session"
	"github.com/MKhiriev/team-lock/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
	TeamService ClientTeamService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cache session.Cache, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(storages.SessionRepository, serverAdapter, logger),
		TeamService: NewClientTeamService(serverAdapter, cache, logger),
	}
}
