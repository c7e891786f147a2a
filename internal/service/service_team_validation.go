package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/team-lock/internal/validators"
	"github.com/MKhiriev/team-lock/models"
)

// TeamServiceWrapper defines middleware composition for TeamService.
// Implementations wrap an existing TeamService to add behavior such as
// validation.
type TeamServiceWrapper interface {
	Wrap(TeamService) TeamService
}

// TeamValidationService checks request shape before the wrapped TeamService
// touches storage. Every failure is reported as [ErrInvalidRequest].
type TeamValidationService struct {
	inner     TeamService
	validator validators.Validator
}

func NewTeamValidationService(minKDFIterations int) TeamServiceWrapper {
	return &TeamValidationService{
		validator: validators.NewTeamValidator(minKDFIterations),
	}
}

func (v *TeamValidationService) CreateTeam(ctx context.Context, ownerID int64, req models.CreateTeamRequest) (models.Team, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Team{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return v.inner.CreateTeam(ctx, ownerID, req)
}

func (v *TeamValidationService) GetTeamSecurity(ctx context.Context, slug string) (models.Team, error) {
	return v.inner.GetTeamSecurity(ctx, slug)
}

func (v *TeamValidationService) SetLockEnabled(ctx context.Context, userID int64, slug string, enabled bool) (models.Team, error) {
	return v.inner.SetLockEnabled(ctx, userID, slug, enabled)
}

func (v *TeamValidationService) SetupLock(ctx context.Context, userID int64, slug string, req models.SetupLockRequest) (models.Team, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Team{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return v.inner.SetupLock(ctx, userID, slug, req)
}

func (v *TeamValidationService) ChangePassword(ctx context.Context, userID int64, slug string, req models.ChangePasswordRequest) (models.Team, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Team{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return v.inner.ChangePassword(ctx, userID, slug, req)
}

func (v *TeamValidationService) Wrap(inner TeamService) TeamService {
	v.inner = inner
	return v
}
