// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/MKhiriev/team-lock/internal/lock"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/internal/store"
	"github.com/MKhiriev/team-lock/internal/utils"
	"github.com/MKhiriev/team-lock/models"
)

type teamService struct {
	teamRepository store.TeamRepository
	ids            utils.IDGenerator
	logger         *logger.Logger
}

func NewTeamService(teamRepository store.TeamRepository, ids utils.IDGenerator, logger *logger.Logger) TeamService {
	return &teamService{
		teamRepository: teamRepository,
		ids:            ids,
		logger:         logger,
	}
}

func (s *teamService) CreateTeam(ctx context.Context, ownerID int64, req models.CreateTeamRequest) (models.Team, error) {
	team, err := s.teamRepository.CreateTeam(ctx, models.Team{
		TeamID:   s.ids.Generate(),
		TeamSlug: req.TeamSlug,
		OwnerID:  ownerID,
	})
	if err != nil {
		return models.Team{}, fmt.Errorf("create team: %w", err)
	}

	logger.FromContext(ctx).Info().Str("team_slug", team.TeamSlug).Int64("owner_id", ownerID).Msg("team created")
	return normalized(team), nil
}

func (s *teamService) GetTeamSecurity(ctx context.Context, slug string) (models.Team, error) {
	team, err := s.teamRepository.GetTeamBySlug(ctx, slug)
	if err != nil {
		return models.Team{}, fmt.Errorf("get team security: %w", err)
	}

	return normalized(team), nil
}

func (s *teamService) SetLockEnabled(ctx context.Context, userID int64, slug string, enabled bool) (models.Team, error) {
	team, err := s.ownedTeam(ctx, userID, slug)
	if err != nil {
		return models.Team{}, err
	}

	if enabled && !team.Security.HasVerifier() {
		return models.Team{}, ErrLockNotConfigured
	}

	updated, err := s.teamRepository.SetLockEnabled(ctx, slug, enabled)
	if err != nil {
		return models.Team{}, fmt.Errorf("set lock enabled: %w", err)
	}

	return normalized(updated), nil
}

func (s *teamService) SetupLock(ctx context.Context, userID int64, slug string, req models.SetupLockRequest) (models.Team, error) {
	team, err := s.ownedTeam(ctx, userID, slug)
	if err != nil {
		return models.Team{}, err
	}

	if team.Security.IsConfigured() {
		return models.Team{}, ErrLockAlreadyConfigured
	}

	updated, err := s.teamRepository.SetupLock(ctx, slug, lock.NormalizeConfiguration(req.Configuration()))
	if errors.Is(err, store.ErrVerifierChanged) {
		// another setup won the race
		return models.Team{}, ErrLockAlreadyConfigured
	}
	if err != nil {
		return models.Team{}, fmt.Errorf("setup lock: %w", err)
	}

	logger.FromContext(ctx).Info().Str("team_slug", slug).Msg("team lock set up")
	return normalized(updated), nil
}

func (s *teamService) ChangePassword(ctx context.Context, userID int64, slug string, req models.ChangePasswordRequest) (models.Team, error) {
	team, err := s.ownedTeam(ctx, userID, slug)
	if err != nil {
		return models.Team{}, err
	}

	if !team.Security.IsConfigured() {
		return models.Team{}, ErrLockNotConfigured
	}

	if subtle.ConstantTimeCompare([]byte(req.PreviousVerifierB64), []byte(team.Security.VerifierB64)) != 1 {
		return models.Team{}, store.ErrVerifierChanged
	}

	updated, err := s.teamRepository.ChangeLock(ctx, slug, team.Security, lock.NormalizeConfiguration(req.Configuration()))
	if err != nil {
		return models.Team{}, fmt.Errorf("change team password: %w", err)
	}

	logger.FromContext(ctx).Info().Str("team_slug", slug).Msg("team password changed")
	return normalized(updated), nil
}

// ownedTeam loads the team and checks that userID owns it. Unknown teams are
// reported before ownership.
func (s *teamService) ownedTeam(ctx context.Context, userID int64, slug string) (models.Team, error) {
	team, err := s.teamRepository.GetTeamBySlug(ctx, slug)
	if err != nil {
		return models.Team{}, fmt.Errorf("get team: %w", err)
	}

	if team.OwnerID != userID {
		logger.FromContext(ctx).Warn().
			Str("team_slug", slug).
			Int64("user_id", userID).
			Msg("team security change by non-owner")
		return models.Team{}, ErrNotTeamOwner
	}

	return team, nil
}

func normalized(team models.Team) models.Team {
	team.Security = lock.NormalizeConfiguration(team.Security)
	return team
}
