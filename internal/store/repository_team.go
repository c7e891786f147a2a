// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/models"
	"github.com/jackc/pgerrcode"
	"github.com/sethvargo/go-retry"
)

const (
	readRetries      = 3
	readRetryBackoff = 50 * time.Millisecond
)

// teamRepository is the PostgreSQL-backed implementation of [TeamRepository].
//
// Verifier tag, salt and iteration count live in the single verifier_record
// column (see [verifierRecord]); conditional writes compare that column.
type teamRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewTeamRepository(db *DB, logger *logger.Logger) TeamRepository {
	logger.Debug().Msg("creating team repository")
	return &teamRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTeam inserts a team without a lock configuration.
// A taken slug is reported as [ErrTeamAlreadyExists].
func (r *teamRepository) CreateTeam(ctx context.Context, team models.Team) (models.Team, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateTeamQuery(team)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.CreateTeam").Msg("failed to build query")
		return models.Team{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanTeam(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Team{}, ErrTeamAlreadyExists
		}
		log.Err(err).Str("func", "*teamRepository.CreateTeam").Str("team_slug", team.TeamSlug).Msg("failed to insert team")
		return models.Team{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetTeamBySlug reads a team and its lock configuration. Transient driver
// failures are retried with exponential backoff.
func (r *teamRepository) GetTeamBySlug(ctx context.Context, slug string) (models.Team, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTeamBySlugQuery(slug)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.GetTeamBySlug").Msg("failed to build query")
		return models.Team{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var team models.Team
	backoff := retry.WithMaxRetries(readRetries, retry.NewExponential(readRetryBackoff))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		var scanErr error
		team, scanErr = scanTeam(r.db.QueryRowContext(ctx, query, args...))
		if scanErr != nil && r.db.Retryable(scanErr) {
			log.Warn().Err(scanErr).Str("team_slug", slug).Msg("retrying team read")
			return retry.RetryableError(scanErr)
		}
		return scanErr
	})
	if err != nil {
		return models.Team{}, r.classifyReadError(ctx, "*teamRepository.GetTeamBySlug", slug, err)
	}
	if team.Security.VerifierB64 != "" && !team.Security.HasVerifier() {
		log.Error().Str("team_slug", slug).Msg("stored verifier record is malformed")
	}

	return team, nil
}

// SetLockEnabled is the toggle write: one UPDATE of lock_enabled and
// updated_at. It returns the team as stored after the update.
func (r *teamRepository) SetLockEnabled(ctx context.Context, slug string, enabled bool) (models.Team, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSetLockEnabledQuery(slug, enabled)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.SetLockEnabled").Msg("failed to build query")
		return models.Team{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	team, err := scanTeam(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Team{}, r.classifyReadError(ctx, "*teamRepository.SetLockEnabled", slug, err)
	}

	log.Info().Str("team_slug", slug).Bool("lock_enabled", enabled).Msg("team lock toggled")
	return team, nil
}

// SetupLock stores the first lock configuration of a team. It matches no row,
// and returns [ErrVerifierChanged], once a verifier record exists.
func (r *teamRepository) SetupLock(ctx context.Context, slug string, cfg models.LockConfiguration) (models.Team, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSetupLockQuery(slug, cfg)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.SetupLock").Msg("failed to build query")
		return models.Team{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	team, err := scanTeam(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Team{}, r.classifyConditionalError(ctx, "*teamRepository.SetupLock", slug, err)
	}

	return team, nil
}

// ChangeLock replaces the verifier and wrapped key only while the stored
// verifier record still equals the one derived from previous.
func (r *teamRepository) ChangeLock(ctx context.Context, slug string, previous, next models.LockConfiguration) (models.Team, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildChangeLockQuery(slug, previous, next)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.ChangeLock").Msg("failed to build query")
		return models.Team{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	team, err := scanTeam(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Team{}, r.classifyConditionalError(ctx, "*teamRepository.ChangeLock", slug, err)
	}

	return team, nil
}

func (r *teamRepository) classifyReadError(ctx context.Context, fn, slug string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTeamNotFound
	}

	logger.FromContext(ctx).Err(err).Str("func", fn).Str("team_slug", slug).Msg("failed to execute query")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func (r *teamRepository) classifyConditionalError(ctx context.Context, fn, slug string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrVerifierChanged
	}
	return r.classifyReadError(ctx, fn, slug, err)
}
