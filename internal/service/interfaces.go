package service

import (
	"context"

	"github.com/MKhiriev/team-lock/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TeamService is the server's lock-state store. The server only ever sees
// verifiers and wrapped keys; it cannot check a team password.
type TeamService interface {
	// CreateTeam registers slug with ownerID as its owner and no lock.
	CreateTeam(ctx context.Context, ownerID int64, req models.CreateTeamRequest) (models.Team, error)

	// GetTeamSecurity returns the team with a normalised lock
	// configuration. Any authenticated user may read it.
	GetTeamSecurity(ctx context.Context, slug string) (models.Team, error)

	// SetLockEnabled changes only the lock flag. Owner only; enabling a lock
	// that was never set up fails with [ErrLockNotConfigured].
	SetLockEnabled(ctx context.Context, userID int64, slug string, enabled bool) (models.Team, error)

	// SetupLock stores the first verifier and wrapped key. Owner only.
	SetupLock(ctx context.Context, userID int64, slug string, req models.SetupLockRequest) (models.Team, error)

	// ChangePassword swaps verifier and wrapped key if req.PreviousVerifierB64
	// is still the stored verifier. Owner only.
	ChangePassword(ctx context.Context, userID int64, slug string, req models.ChangePasswordRequest) (models.Team, error)
}
