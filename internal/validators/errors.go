package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTeamSlug       = errors.New("teamSlug must be 1-64 lowercase letters, digits or dashes, not starting or ending with a dash")
	ErrInvalidKDF            = errors.New("kdf must carry saltB64 and iterations")
	ErrWeakKDF               = errors.New("kdf iterations are below the server minimum")
	ErrInvalidVerifier       = errors.New("verifierB64 must be a base64 encoded 32 byte verifier")
	ErrInvalidWrappedKey     = errors.New("encryption.wrappedTeamKeyB64 is not a wrapped team key")
	ErrUnsupportedAlgorithm  = errors.New("encryption.algorithm is not supported")
	ErrInvalidKeyVersion     = errors.New("encryption.teamKeyVersion must be positive")
	ErrEmptyPreviousVerifier = errors.New("previousVerifierB64 is required")
)
