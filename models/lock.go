// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LockConfiguration is the per-team security record shared between the
// server and every team member's client.
//
// The server only stores and serves it. All of the values below except
// LockEnabled are produced and consumed on the client: the KDF parameters
// and the verifier are written together, and the wrapped team key is only
// replaced by a password change.
type LockConfiguration struct {
	// LockEnabled toggles whether members must enter the team password
	// before the team is considered unlocked.
	LockEnabled bool `json:"lockEnabled"`

	// KDF holds the salt and iteration count used to derive the master key.
	KDF KDFParams `json:"kdf"`

	// VerifierB64 is the standard base64 verifier tag derived from the
	// correct password. Empty when the lock was never set up.
	VerifierB64 string `json:"verifierB64,omitempty"`

	// Encryption describes the wrapped Team Box Key.
	Encryption EncryptionParams `json:"encryption"`
}

// KDFParams are the parameters of the password-based key derivation.
type KDFParams struct {
	SaltB64    string `json:"saltB64,omitempty"`
	Iterations int    `json:"iterations"`
}

// EncryptionParams describe the Team Box Key as it is stored on the server.
type EncryptionParams struct {
	// WrappedTeamKeyB64 is the AEAD-sealed Team Box Key, standard base64.
	WrappedTeamKeyB64 string `json:"wrappedTeamKeyB64,omitempty"`

	// TeamKeyVersion increases only when a new Team Box Key is generated.
	// Re-wrapping under a new password keeps the version.
	TeamKeyVersion int `json:"teamKeyVersion"`

	// Algorithm names the AEAD used for wrapping.
	Algorithm string `json:"algorithm"`
}

// IsConfigured reports whether the KDF, verifier and wrapped key have been
// provisioned.
func (c LockConfiguration) IsConfigured() bool {
	return c.HasVerifier() && c.HasWrappedKey()
}

// HasVerifier reports whether a password can be checked against c.
func (c LockConfiguration) HasVerifier() bool {
	return c.KDF.SaltB64 != "" && c.VerifierB64 != ""
}

// HasWrappedKey reports whether c carries a sealed Team Box Key.
func (c LockConfiguration) HasWrappedKey() bool {
	return c.Encryption.WrappedTeamKeyB64 != ""
}
