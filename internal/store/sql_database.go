package store

import (
	"database/sql"

	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/migrations"
)

// DB wraps a *sql.DB together with the error classifier of its driver.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate(dialect migrations.Dialect) error {
	return migrations.Migrate(db.DB, dialect)
}

// Retryable reports whether err is a transient driver failure. A DB without a
// classifier never retries.
func (db *DB) Retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
