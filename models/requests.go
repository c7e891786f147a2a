// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateTeamRequest is the body of POST /teams.
type CreateTeamRequest struct {
	TeamSlug string `json:"teamSlug"`
}

// ToggleLockRequest is the only accepted body of PATCH /teams/{slug}/security.
type ToggleLockRequest struct {
	LockEnabled bool `json:"lockEnabled"`
}

// SetupLockRequest provisions the lock for a team that has none yet.
// Everything in it is computed by the owner's client.
type SetupLockRequest struct {
	KDF         KDFParams        `json:"kdf"`
	VerifierB64 string           `json:"verifierB64"`
	Encryption  EncryptionParams `json:"encryption"`
}

// ChangePasswordRequest replaces the KDF parameters, verifier and wrapped
// key in one step. PreviousVerifierB64 must match the stored verifier, so
// two owners racing on the same team cannot overwrite each other.
type ChangePasswordRequest struct {
	PreviousVerifierB64 string           `json:"previousVerifierB64"`
	KDF                 KDFParams        `json:"kdf"`
	VerifierB64         string           `json:"verifierB64"`
	Encryption          EncryptionParams `json:"encryption"`
}

// Configuration returns the lock configuration carried by the request.
// LockEnabled is left false; setup never changes the toggle.
func (r SetupLockRequest) Configuration() LockConfiguration {
	return LockConfiguration{KDF: r.KDF, VerifierB64: r.VerifierB64, Encryption: r.Encryption}
}

// Configuration returns the new lock configuration carried by the request.
func (r ChangePasswordRequest) Configuration() LockConfiguration {
	return LockConfiguration{KDF: r.KDF, VerifierB64: r.VerifierB64, Encryption: r.Encryption}
}
