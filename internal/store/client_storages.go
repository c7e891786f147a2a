package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/team-lock/internal/config"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/migrations"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// SessionRepository keeps the bearer token between runs.
	SessionRepository LocalSessionRepository

	db *DB
}

// NewClientStorages opens the local sqlite file named by cfg.DB.DSN (creating
// it if needed), applies the client migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")
	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(migrations.SQLite); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewLocalSessionRepository(db, logger),
		db:                db,
	}, nil
}

func (s *ClientStorages) Close() error {
	return s.db.Close()
}
