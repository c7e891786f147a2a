package store

import (
	"context"

	"github.com/MKhiriev/team-lock/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// TeamRepository persists teams and their lock configuration.
//
// Every write is a single statement: SetLockEnabled touches only the
// lock_enabled flag, SetupLock succeeds only while no verifier is stored and
// ChangeLock only while the stored verifier still equals previous.
type TeamRepository interface {
	CreateTeam(ctx context.Context, team models.Team) (models.Team, error)
	GetTeamBySlug(ctx context.Context, slug string) (models.Team, error)
	SetLockEnabled(ctx context.Context, slug string, enabled bool) (models.Team, error)
	SetupLock(ctx context.Context, slug string, cfg models.LockConfiguration) (models.Team, error)
	ChangeLock(ctx context.Context, slug string, previous, next models.LockConfiguration) (models.Team, error)
}

// ErrorClassificator decides whether a failed database call is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
