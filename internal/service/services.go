package service

import (
	"fmt"

	"github.com/MKhiriev/team-lock/internal/config"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/internal/store"
	"github.com/MKhiriev/team-lock/internal/utils"
)

type Services struct {
	AuthService    AuthService
	TeamService    TeamService
	AppInfoService AppInfoService
}

func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	teamService := NewTeamValidationService(cfg.App.MinKDFIterations).
		Wrap(NewTeamService(repositories.TeamRepository, utils.NewUUIDGenerator(), logger))

	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, cfg.App, logger),
		TeamService:    teamService,
		AppInfoService: appInfoService,
	}, nil
}
