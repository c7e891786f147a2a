// Package migrations embeds the goose schema migrations for both sides of
// team-lock: the postgres server schema and the client's local sqlite file.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql client/*.sql
var embedMigrations embed.FS

// Dialect selects the migration set and the goose dialect used to apply it.
type Dialect string

const (
	Postgres Dialect = "pgx"
	SQLite   Dialect = "sqlite3"
)

func (d Dialect) dir() (string, error) {
	switch d {
	case Postgres:
		return "server", nil
	case SQLite:
		return "client", nil
	default:
		return "", fmt.Errorf("migration error: unsupported dialect %q", string(d))
	}
}

func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, err := dialect.dir()
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)

	if err = goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
