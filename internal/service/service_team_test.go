package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/team-lock/internal/lock"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/internal/mock"
	"github.com/MKhiriev/team-lock/internal/store"
	"github.com/MKhiriev/team-lock/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	ownerID    int64 = 1
	strangerID int64 = 2
	teamSlug         = "alpha"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func newTestTeamService(ctrl *gomock.Controller) (TeamService, *mock.MockTeamRepository) {
	repo := mock.NewMockTeamRepository(ctrl)
	return NewTeamService(repo, fixedID("0192f5e0-0000-7000-8000-000000000001"), logger.Nop()), repo
}

func testConfiguration(t *testing.T, password string) models.LockConfiguration {
	t.Helper()

	key, err := lock.GenerateTeamKey()
	require.NoError(t, err)

	cfg, err := lock.NewConfiguration(password, key, lock.MinIterations)
	require.NoError(t, err)
	return cfg
}

func TestTeamService_CreateTeam(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestTeamService(ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateTeam(ctx, models.Team{
		TeamID:   "0192f5e0-0000-7000-8000-000000000001",
		TeamSlug: teamSlug,
		OwnerID:  ownerID,
	}).DoAndReturn(func(_ context.Context, team models.Team) (models.Team, error) {
		return team, nil
	})

	team, err := svc.CreateTeam(ctx, ownerID, models.CreateTeamRequest{TeamSlug: teamSlug})
	require.NoError(t, err)

	// настройки по умолчанию заполнены
	assert.Equal(t, lock.DefaultIterations, team.Security.KDF.Iterations)
	assert.Equal(t, lock.AlgorithmAES256GCM, team.Security.Encryption.Algorithm)
	assert.False(t, team.Security.LockEnabled)
}

func TestTeamService_CreateTeam_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestTeamService(ctrl)

	repo.EXPECT().CreateTeam(gomock.Any(), gomock.Any()).Return(models.Team{}, store.ErrTeamAlreadyExists)

	_, err := svc.CreateTeam(context.Background(), ownerID, models.CreateTeamRequest{TeamSlug: teamSlug})
	assert.ErrorIs(t, err, store.ErrTeamAlreadyExists)
}

func TestTeamService_GetTeamSecurity(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestTeamService(ctrl)

	repo.EXPECT().GetTeamBySlug(gomock.Any(), teamSlug).Return(models.Team{TeamSlug: teamSlug}, nil)
	team, err := svc.GetTeamSecurity(context.Background(), teamSlug)
	require.NoError(t, err)
	assert.Equal(t, lock.DefaultIterations, team.Security.KDF.Iterations)

	repo.EXPECT().GetTeamBySlug(gomock.Any(), "ghost").Return(models.Team{}, store.ErrTeamNotFound)
	_, err = svc.GetTeamSecurity(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrTeamNotFound)
}

func TestTeamService_SetLockEnabled(t *testing.T) {
	configured := testConfiguration(t, "team password")
	keyless := configured
	keyless.Encryption = models.EncryptionParams{}
	undecodable := models.LockConfiguration{VerifierB64: "scrypt$1$x$y"}

	tests := []struct {
		name     string
		userID   int64
		enabled  bool
		security models.LockConfiguration
		getErr   error
		toggles  bool
		wantErr  error
	}{
		{name: "enable configured", userID: ownerID, enabled: true, security: configured, toggles: true},
		{name: "disable configured", userID: ownerID, enabled: false, security: configured, toggles: true},
		{name: "disable unconfigured", userID: ownerID, enabled: false, toggles: true},
		{name: "enable unconfigured", userID: ownerID, enabled: true, wantErr: ErrLockNotConfigured},
		{name: "enable verifier without wrapped key", userID: ownerID, enabled: true, security: keyless, toggles: true},
		{name: "enable undecodable record", userID: ownerID, enabled: true, security: undecodable, wantErr: ErrLockNotConfigured},
		{name: "disable undecodable record", userID: ownerID, enabled: false, security: undecodable, toggles: true},
		{name: "not owner", userID: strangerID, enabled: true, security: configured, wantErr: ErrNotTeamOwner},
		{name: "unknown team", userID: ownerID, enabled: true, getErr: store.ErrTeamNotFound, wantErr: store.ErrTeamNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestTeamService(ctrl)

			repo.EXPECT().GetTeamBySlug(gomock.Any(), teamSlug).
				Return(models.Team{TeamSlug: teamSlug, OwnerID: ownerID, Security: tt.security}, tt.getErr)

			if tt.toggles {
				updated := tt.security
				updated.LockEnabled = tt.enabled
				repo.EXPECT().SetLockEnabled(gomock.Any(), teamSlug, tt.enabled).
					Return(models.Team{TeamSlug: teamSlug, OwnerID: ownerID, Security: updated}, nil)
			}

			team, err := svc.SetLockEnabled(context.Background(), tt.userID, teamSlug, tt.enabled)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.enabled, team.Security.LockEnabled)
			// ключевой материал не меняется
			assert.Equal(t, tt.security.Encryption.WrappedTeamKeyB64, team.Security.Encryption.WrappedTeamKeyB64)
			assert.Equal(t, tt.security.VerifierB64, team.Security.VerifierB64)
		})
	}
}

func TestTeamService_SetupLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestTeamService(ctrl)
	cfg := testConfiguration(t, "team password")
	req := models.SetupLockRequest{KDF: cfg.KDF, VerifierB64: cfg.VerifierB64, Encryption: cfg.Encryption}

	gomock.InOrder(
		repo.EXPECT().GetTeamBySlug(gomock.Any(), teamSlug).Return(models.Team{TeamSlug: teamSlug, OwnerID: ownerID}, nil),
		repo.EXPECT().SetupLock(gomock.Any(), teamSlug, req.Configuration()).
			Return(models.Team{TeamSlug: teamSlug, OwnerID: ownerID, Security: cfg}, nil),
	)

	team, err := svc.SetupLock(context.Background(), ownerID, teamSlug, req)
	require.NoError(t, err)
	assert.Equal(t, cfg.VerifierB64, team.Security.VerifierB64)
	assert.False(t, team.Security.LockEnabled)
}

func TestTeamService_SetupLock_AlreadyConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestTeamService(ctrl)
	cfg := testConfiguration(t, "team password")

	repo.EXPECT().GetTeamBySlug(gomock.Any(), teamSlug).Return(models.Team{TeamSlug: teamSlug, OwnerID: ownerID, Security: cfg}, nil)

	_, err := svc.SetupLock(context.Background(), ownerID, teamSlug, models.SetupLockRequest{KDF: cfg.KDF, VerifierB64: cfg.VerifierB64, Encryption: cfg.Encryption})
	assert.ErrorIs(t, err, ErrLockAlreadyConfigured)
}

func TestTeamService_SetupLock_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestTeamService(ctrl)
	cfg := testConfiguration(t, "team password")

	repo.EXPECT().GetTeamBySlug(gomock.Any(), teamSlug).Return(models.Team{TeamSlug: teamSlug, OwnerID: ownerID}, nil)
	repo.EXPECT().SetupLock(gomock.Any(), teamSlug, gomock.Any()).Return(models.Team{}, store.ErrVerifierChanged)

	_, err := svc.SetupLock(context.Background(), ownerID, teamSlug, models.SetupLockRequest{KDF: cfg.KDF, VerifierB64: cfg.VerifierB64, Encryption: cfg.Encryption})
	assert.ErrorIs(t, err, ErrLockAlreadyConfigured)
}

func TestTeamService_SetupLock_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestTeamService(ctrl)

	repo.EXPECT().GetTeamBySlug(gomock.Any(), teamSlug).Return(models.Team{TeamSlug: teamSlug, OwnerID: ownerID}, nil)

	_, err := svc.SetupLock(context.Background(), strangerID, teamSlug, models.SetupLockRequest{})
	assert.ErrorIs(t, err, ErrNotTeamOwner)
}

func TestTeamService_ChangePassword(t *testing.T) {
	current := testConfiguration(t, "old password")
	current.LockEnabled = true
	next, err := lock.Rewrap("old password", "new password", current)
	require.NoError(t, err)

	req := models.ChangePasswordRequest{
		PreviousVerifierB64: current.VerifierB64,
		KDF:                 next.KDF,
		VerifierB64:         next.VerifierB64,
		Encryption:          next.Encryption,
	}

	ctrl := gomock.NewController(t)
	svc, repo := newTestTeamService(ctrl)

	repo.EXPECT().GetTeamBySlug(gomock.Any(), teamSlug).Return(models.Team{TeamSlug: teamSlug, OwnerID: ownerID, Security: current}, nil)
	repo.EXPECT().ChangeLock(gomock.Any(), teamSlug, current, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _, cfg models.LockConfiguration) (models.Team, error) {
			assert.Equal(t, next.VerifierB64, cfg.VerifierB64)
			assert.Equal(t, next.Encryption.WrappedTeamKeyB64, cfg.Encryption.WrappedTeamKeyB64)
			cfg.LockEnabled = true
			return models.Team{TeamSlug: teamSlug, OwnerID: ownerID, Security: cfg}, nil
		},
	)

	team, err := svc.ChangePassword(context.Background(), ownerID, teamSlug, req)
	require.NoError(t, err)
	assert.True(t, team.Security.LockEnabled)
	assert.Equal(t, next.Encryption.TeamKeyVersion, team.Security.Encryption.TeamKeyVersion)
}

func TestTeamService_ChangePassword_Rejections(t *testing.T) {
	configured := testConfiguration(t, "old password")

	tests := []struct {
		name     string
		userID   int64
		security models.LockConfiguration
		previous string
		casErr   error
		wantErr  error
	}{
		{name: "not configured", userID: ownerID, previous: "x", wantErr: ErrLockNotConfigured},
		{name: "stale previous verifier", userID: ownerID, security: configured, previous: "c3RhbGU=", wantErr: store.ErrVerifierChanged},
		{name: "not owner", userID: strangerID, security: configured, previous: configured.VerifierB64, wantErr: ErrNotTeamOwner},
		{name: "concurrent change", userID: ownerID, security: configured, previous: configured.VerifierB64, casErr: store.ErrVerifierChanged, wantErr: store.ErrVerifierChanged},
		{name: "storage failure", userID: ownerID, security: configured, previous: configured.VerifierB64, casErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestTeamService(ctrl)

			repo.EXPECT().GetTeamBySlug(gomock.Any(), teamSlug).
				Return(models.Team{TeamSlug: teamSlug, OwnerID: ownerID, Security: tt.security}, nil)
			if tt.casErr != nil {
				repo.EXPECT().ChangeLock(gomock.Any(), teamSlug, gomock.Any(), gomock.Any()).Return(models.Team{}, tt.casErr)
			}

			_, err := svc.ChangePassword(context.Background(), tt.userID, teamSlug, models.ChangePasswordRequest{PreviousVerifierB64: tt.previous})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
