// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// team-lock server handlers and by the client when it interprets server
// responses.
//
// Kind* constants go into the "error" field of a JSON error body; Msg*
// constants are the human-readable "message". Both sides match on them, so
// the wording lives in one place.
package app

// Error kinds.
const (
	KindInvalidRequest = "InvalidRequestError"
	KindAuthentication = "AuthenticationError"
	KindForbidden      = "ForbiddenError"
	KindNotFound       = "NotFoundError"
	KindConflict       = "ConflictError"
	KindInternal       = "InternalServerError"
)

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAuthorizationRequired is returned when a protected route is called
	// without a bearer token.
	MsgAuthorizationRequired = "authorization required"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"
)

// Team security messages.
const (
	MsgTeamNotFound      = "team not found"
	MsgTeamAlreadyExists = "team already exists"

	// MsgNotTeamOwner is returned when someone other than the owner tries to
	// change a team's lock.
	MsgNotTeamOwner = "only the team owner can change team security"

	// MsgKeyMaterialInToggle is returned when a toggle body carries kdf,
	// verifierB64 or encryption.
	MsgKeyMaterialInToggle = "lock key material cannot be changed here; use POST /teams/{slug}/security/setup or /teams/{slug}/security/password"

	// MsgLockEnabledRequired is returned when the toggle body has no boolean
	// lockEnabled.
	MsgLockEnabledRequired = "lockEnabled must be a boolean"

	// MsgUnknownField is the prefix for bodies with unexpected fields.
	MsgUnknownField = "unknown field"

	MsgLockNotConfigured     = "team lock is not set up"
	MsgLockAlreadyConfigured = "team lock is already set up"

	// MsgVerifierChanged is returned when a password change was based on a
	// verifier that is no longer current.
	MsgVerifierChanged = "team password was changed by someone else, reload and retry"
)
