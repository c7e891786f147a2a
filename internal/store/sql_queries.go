package store

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/team-lock/internal/lock"
	"github.com/MKhiriev/team-lock/models"
)

const (
	createUser = `INSERT INTO users (login, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password_hash, name, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, created_at
    FROM users
    WHERE login = $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var teamColumns = []string{
	"team_id",
	"slug",
	"owner_id",
	"lock_enabled",
	"verifier_record",
	"wrapped_team_key",
	"team_key_version",
	"key_algorithm",
	"created_at",
	"updated_at",
}

func returningTeam() string {
	return "RETURNING " + strings.Join(teamColumns, ", ")
}

func buildCreateTeamQuery(team models.Team) (string, []any, error) {
	return psql.Insert("teams").
		Columns("team_id", "slug", "owner_id").
		Values(team.TeamID, team.TeamSlug, team.OwnerID).
		Suffix(returningTeam()).
		ToSql()
}

func buildGetTeamBySlugQuery(slug string) (string, []any, error) {
	return psql.Select(teamColumns...).
		From("teams").
		Where(sq.Eq{"slug": slug}).
		ToSql()
}

// buildSetLockEnabledQuery flips the flag and nothing else: key material,
// verifier and KDF parameters are never part of this statement.
func buildSetLockEnabledQuery(slug string, enabled bool) (string, []any, error) {
	return psql.Update("teams").
		Set("lock_enabled", enabled).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"slug": slug}).
		Suffix(returningTeam()).
		ToSql()
}

func buildSetupLockQuery(slug string, cfg models.LockConfiguration) (string, []any, error) {
	record, err := verifierRecord(cfg)
	if err != nil {
		return "", nil, err
	}

	return psql.Update("teams").
		Set("verifier_record", record).
		Set("wrapped_team_key", cfg.Encryption.WrappedTeamKeyB64).
		Set("team_key_version", cfg.Encryption.TeamKeyVersion).
		Set("key_algorithm", cfg.Encryption.Algorithm).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"slug": slug, "verifier_record": nil}).
		Suffix(returningTeam()).
		ToSql()
}

func buildChangeLockQuery(slug string, previous, next models.LockConfiguration) (string, []any, error) {
	previousRecord, err := verifierRecord(previous)
	if err != nil {
		return "", nil, err
	}
	record, err := verifierRecord(next)
	if err != nil {
		return "", nil, err
	}

	return psql.Update("teams").
		Set("verifier_record", record).
		Set("wrapped_team_key", next.Encryption.WrappedTeamKeyB64).
		Set("team_key_version", next.Encryption.TeamKeyVersion).
		Set("key_algorithm", next.Encryption.Algorithm).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"slug": slug, "verifier_record": previousRecord}).
		Suffix(returningTeam()).
		ToSql()
}

// verifierRecord packs salt, iteration count and verifier tag into the single
// column they are stored in, so they can only ever change together.
func verifierRecord(cfg models.LockConfiguration) (string, error) {
	v, err := lock.VerifierFromConfig(cfg)
	if err != nil {
		return "", err
	}
	return lock.EncodeVerifier(v), nil
}

func scanTeam(row sq.RowScanner) (models.Team, error) {
	var (
		team      models.Team
		record    sql.NullString
		wrapped   sql.NullString
		algorithm string
	)

	err := row.Scan(
		&team.TeamID,
		&team.TeamSlug,
		&team.OwnerID,
		&team.Security.LockEnabled,
		&record,
		&wrapped,
		&team.Security.Encryption.TeamKeyVersion,
		&algorithm,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		return models.Team{}, err
	}

	if record.Valid && record.String != "" {
		v, decodeErr := lock.DecodeVerifier(record.String)
		if decodeErr != nil {
			// served as stored: members see a lock they cannot verify and
			// the owner can still switch it off
			team.Security.VerifierB64 = record.String
		} else {
			v.Apply(&team.Security)
		}
	}
	team.Security.Encryption.WrappedTeamKeyB64 = wrapped.String
	team.Security.Encryption.Algorithm = algorithm

	return team, nil
}
