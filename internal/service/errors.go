package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")

	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
)

// Team security errors.
var (
	// ErrInvalidRequest wraps every validation failure of a team request;
	// the handler answers 400 InvalidRequestError with the wrapped text.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrKeyMaterialInToggle is returned when a toggle carries kdf,
	// verifierB64 or encryption.
	ErrKeyMaterialInToggle = errors.New("lock key material is not accepted by the toggle")

	ErrNotTeamOwner          = errors.New("user is not the team owner")
	ErrLockNotConfigured     = errors.New("team lock is not set up")
	ErrLockAlreadyConfigured = errors.New("team lock is already set up")
)

// Client errors.
var (
	ErrNotLoggedIn = errors.New("not logged in")
)
