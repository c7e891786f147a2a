package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/team-lock/internal/lock"
	"github.com/MKhiriev/team-lock/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldTeamSlug         = "team_slug"
	FieldKDF              = "kdf"
	FieldVerifier         = "verifier"
	FieldEncryption       = "encryption"
	FieldPreviousVerifier = "previous_verifier"
)

var defaultLockFields = []string{FieldKDF, FieldVerifier, FieldEncryption}

var teamSlugPattern = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,62}[a-z0-9])?$`)

// TeamValidator validates team creation and lock configuration requests.
// The server cannot check a team password, so it checks shape instead:
// decodable salt and verifier, an acceptable iteration count and a wrapped
// key blob in the expected format.
type TeamValidator struct {
	minIterations int
}

// NewTeamValidator returns a validator that rejects KDF iteration counts
// below minIterations (or below [lock.MinIterations] when that is higher).
func NewTeamValidator(minIterations int) Validator {
	if minIterations < lock.MinIterations {
		minIterations = lock.MinIterations
	}
	return &TeamValidator{minIterations: minIterations}
}

// Validate accepts models.CreateTeamRequest, models.SetupLockRequest,
// models.ChangePasswordRequest and models.LockConfiguration, by value or
// pointer. fields narrows the check; without it every field is validated.
func (v *TeamValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateTeamRequest:
		return v.validateCreateTeam(value, fields...)
	case *models.CreateTeamRequest:
		return v.validateCreateTeam(*value, fields...)

	case models.LockConfiguration:
		return v.validateConfiguration(value, fields...)
	case *models.LockConfiguration:
		return v.validateConfiguration(*value, fields...)

	case models.SetupLockRequest:
		return v.validateConfiguration(value.Configuration(), fields...)
	case *models.SetupLockRequest:
		return v.validateConfiguration(value.Configuration(), fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TeamValidator) validateCreateTeam(req models.CreateTeamRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTeamSlug}
	}

	for _, field := range fields {
		switch field {
		case FieldTeamSlug:
			if !teamSlugPattern.MatchString(req.TeamSlug) {
				return ErrInvalidTeamSlug
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *TeamValidator) validateChangePassword(req models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = append([]string{FieldPreviousVerifier}, defaultLockFields...)
	}

	lockFields := make([]string, 0, len(fields))
	for _, field := range fields {
		if field != FieldPreviousVerifier {
			lockFields = append(lockFields, field)
			continue
		}
		if req.PreviousVerifierB64 == "" {
			return ErrEmptyPreviousVerifier
		}
	}
	if len(lockFields) == 0 {
		return nil
	}

	return v.validateConfiguration(req.Configuration(), lockFields...)
}

func (v *TeamValidator) validateConfiguration(cfg models.LockConfiguration, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultLockFields
	}
	cfg = lock.NormalizeConfiguration(cfg)

	for _, field := range fields {
		var err error
		switch field {
		case FieldKDF:
			err = v.validateKDF(cfg.KDF)
		case FieldVerifier:
			_, err = lock.VerifierFromConfig(cfg)
			if err != nil {
				err = fmt.Errorf("%w: %w", ErrInvalidVerifier, err)
			}
		case FieldEncryption:
			err = v.validateEncryption(cfg.Encryption)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *TeamValidator) validateKDF(kdf models.KDFParams) error {
	if kdf.SaltB64 == "" || kdf.Iterations <= 0 {
		return ErrInvalidKDF
	}
	if kdf.Iterations < v.minIterations {
		return fmt.Errorf("%w: %d < %d", ErrWeakKDF, kdf.Iterations, v.minIterations)
	}
	return nil
}

func (v *TeamValidator) validateEncryption(enc models.EncryptionParams) error {
	if enc.Algorithm != lock.AlgorithmAES256GCM {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, enc.Algorithm)
	}
	if enc.TeamKeyVersion <= 0 {
		return ErrInvalidKeyVersion
	}
	if err := lock.CheckWrappedKey(enc.WrappedTeamKeyB64); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWrappedKey, err)
	}
	return nil
}
