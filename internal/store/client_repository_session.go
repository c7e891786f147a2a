// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSession stores or replaces the session for session.ServerURL.
func (r *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := r.DB.ExecContext(ctx, saveSession, session.ServerURL, session.Login, session.UserID, session.Token)
	if err != nil {
		r.logger.Err(err).
			Str("func", "localSessionRepository.SaveSession").
			Str("login", session.Login).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession returns [ErrLocalSessionNotFound] when nobody is logged in to
// serverURL.
func (r *localSessionRepository) GetSession(ctx context.Context, serverURL string) (models.Session, error) {
	var session models.Session

	err := r.DB.QueryRowContext(ctx, getSession, serverURL).Scan(
		&session.ServerURL,
		&session.Login,
		&session.UserID,
		&session.Token,
		&session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "localSessionRepository.GetSession").
			Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

func (r *localSessionRepository) DeleteSession(ctx context.Context, serverURL string) error {
	if _, err := r.DB.ExecContext(ctx, deleteSession, serverURL); err != nil {
		r.logger.Err(err).
			Str("func", "localSessionRepository.DeleteSession").
			Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
