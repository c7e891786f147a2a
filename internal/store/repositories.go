package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/team-lock/internal/config"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/migrations"
)

// Repositories groups the server-side repositories handed to the service layer.
type Repositories struct {
	UserRepository UserRepository
	TeamRepository TeamRepository

	db *DB
}

// NewRepositories connects to postgres, applies pending migrations and builds
// the repositories on top of the connection.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	log.Info().Msg("creating new repositories...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(migrations.Postgres); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Repositories{
		UserRepository: NewUserRepository(db, log),
		TeamRepository: NewTeamRepository(db, log),
		db:             db,
	}, nil
}

// Ping reports whether the database is reachable.
func (r *Repositories) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repositories) Close() error {
	return r.db.Close()
}
