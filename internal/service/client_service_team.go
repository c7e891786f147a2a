// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/team-lock/internal/adapter"
	"github.com/MKhiriev/team-lock/internal/lock"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/internal/session"
	"github.com/MKhiriev/team-lock/models"
)

type clientTeamService struct {
	adapter adapter.ServerAdapter
	cache   session.Cache
	logger  *logger.Logger
}

func NewClientTeamService(serverAdapter adapter.ServerAdapter, cache session.Cache, logger *logger.Logger) ClientTeamService {
	if cache == nil {
		cache = session.NewNopCache()
	}
	return &clientTeamService{adapter: serverAdapter, cache: cache, logger: logger}
}

func (s *clientTeamService) TeamSecurity(ctx context.Context, slug string) (models.Team, error) {
	team, err := s.adapter.TeamSecurity(ctx, slug)
	if err != nil {
		return models.Team{}, mapAdapterError(err)
	}

	return normalized(team), nil
}

func (s *clientTeamService) CreateTeam(ctx context.Context, slug string) (models.Team, error) {
	team, err := s.adapter.CreateTeam(ctx, models.CreateTeamRequest{TeamSlug: slug})
	if err != nil {
		return models.Team{}, mapAdapterError(err)
	}

	return normalized(team), nil
}

func (s *clientTeamService) SetLockEnabled(ctx context.Context, slug string, enabled bool) (models.Team, error) {
	team, err := s.adapter.SetLockEnabled(ctx, slug, enabled)
	if err != nil {
		return models.Team{}, mapAdapterError(err)
	}

	return normalized(team), nil
}

func (s *clientTeamService) SetupLock(ctx context.Context, slug, password string) (models.Team, string, error) {
	if password == "" {
		return models.Team{}, "", lock.ErrEmptyPassword
	}

	teamKey, err := lock.GenerateTeamKey()
	if err != nil {
		return models.Team{}, "", fmt.Errorf("generate team key: %w", err)
	}
	defer memguard.WipeBytes(teamKey)

	cfg, err := lock.NewConfiguration(password, teamKey, lock.DefaultIterations)
	if err != nil {
		return models.Team{}, "", fmt.Errorf("provision team lock: %w", err)
	}

	team, err := s.adapter.SetupLock(ctx, slug, models.SetupLockRequest{
		KDF:         cfg.KDF,
		VerifierB64: cfg.VerifierB64,
		Encryption:  cfg.Encryption,
	})
	if err != nil {
		return models.Team{}, "", mapAdapterError(err)
	}

	s.logger.Info().Str("team", slug).Msg("team lock set up")
	return normalized(team), lock.Fingerprint(teamKey), nil
}

func (s *clientTeamService) ChangePassword(ctx context.Context, slug, oldPassword, newPassword string) (models.Team, error) {
	if newPassword == "" {
		return models.Team{}, lock.ErrEmptyPassword
	}

	current, err := s.TeamSecurity(ctx, slug)
	if err != nil {
		return models.Team{}, err
	}
	if !current.Security.IsConfigured() {
		return models.Team{}, ErrLockNotConfigured
	}

	next, err := lock.Rewrap(oldPassword, newPassword, current.Security)
	if err != nil {
		return models.Team{}, err
	}

	team, err := s.adapter.ChangePassword(ctx, slug, models.ChangePasswordRequest{
		PreviousVerifierB64: current.Security.VerifierB64,
		KDF:                 next.KDF,
		VerifierB64:         next.VerifierB64,
		Encryption:          next.Encryption,
	})
	if err != nil {
		return models.Team{}, mapAdapterError(err)
	}

	s.cache.Forget(current.TeamID)
	s.logger.Info().Str("team", slug).Msg("team password changed")
	return normalized(team), nil
}
