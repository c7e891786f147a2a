package service

import (
	"context"

	"github.com/MKhiriev/team-lock/models"
)

// ClientAuthService defines the client-side contract for account access and
// the locally persisted session.
//
//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock
type ClientAuthService interface {
	// Register creates an account on the server and persists the session.
	Register(ctx context.Context, user models.User) (models.Session, error)

	// Login authenticates against the server and persists the session.
	// A wrong login or password is reported as ErrWrongPassword.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// Restore loads the session saved for the configured server and hands
	// its token to the adapter. Returns ErrNotLoggedIn when none is saved.
	Restore(ctx context.Context) (models.Session, error)

	// Logout removes the saved session and drops the adapter token.
	Logout(ctx context.Context) error
}

// ClientTeamService is the client side of team security. All key material
// is produced here; the server only receives salts, verifiers and wrapped
// keys.
type ClientTeamService interface {
	// TeamSecurity fetches the team with a normalised lock configuration.
	// It satisfies gate.ConfigSource.
	TeamSecurity(ctx context.Context, slug string) (models.Team, error)

	CreateTeam(ctx context.Context, slug string) (models.Team, error)

	// SetLockEnabled flips the toggle and nothing else.
	SetLockEnabled(ctx context.Context, slug string, enabled bool) (models.Team, error)

	// SetupLock provisions a fresh Team Box Key under password and uploads
	// the wrapped key. It returns the updated team and the key fingerprint.
	SetupLock(ctx context.Context, slug, password string) (models.Team, string, error)

	// ChangePassword re-wraps the current Team Box Key under newPassword.
	// The remembered password for the team is forgotten on success.
	ChangePassword(ctx context.Context, slug, oldPassword, newPassword string) (models.Team, error)
}
