// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lock

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/team-lock/models"
)

// NormalizeConfiguration fills the defaults a stored configuration may
// omit. It is applied once, right after a configuration is fetched or
// before it is served, so downstream code sees a fully populated value.
func NormalizeConfiguration(cfg models.LockConfiguration) models.LockConfiguration {
	if cfg.KDF.Iterations == 0 {
		cfg.KDF.Iterations = DefaultIterations
	}
	if cfg.Encryption.Algorithm == "" {
		cfg.Encryption.Algorithm = AlgorithmAES256GCM
	}
	return cfg
}

// GenerateTeamKey returns a fresh random Team Box Key.
func GenerateTeamKey() ([]byte, error) {
	key := make([]byte, KeyLength)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// NewConfiguration provisions a lock for teamKey under password: a random
// salt, the verifier and the wrapped key. The toggle is left off.
func NewConfiguration(password string, teamKey []byte, iterations int) (models.LockConfiguration, error) {
	if iterations == 0 {
		iterations = DefaultIterations
	}
	if iterations < MinIterations {
		return models.LockConfiguration{}, fmt.Errorf("%w: %d < %d", ErrWeakIterations, iterations, MinIterations)
	}
	if password == "" {
		return models.LockConfiguration{}, ErrEmptyPassword
	}

	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return models.LockConfiguration{}, err
	}

	verifier, err := ComputeVerifier(password, salt, iterations)
	if err != nil {
		return models.LockConfiguration{}, err
	}

	wrapped, err := Wrap(password, teamKey, iterations)
	if err != nil {
		return models.LockConfiguration{}, err
	}

	cfg := models.LockConfiguration{
		Encryption: models.EncryptionParams{
			WrappedTeamKeyB64: wrapped,
			TeamKeyVersion:    1,
			Algorithm:         AlgorithmAES256GCM,
		},
	}
	verifier.Apply(&cfg)

	return cfg, nil
}

// Rewrap moves the Team Box Key of cfg from oldPassword to newPassword.
// The key itself and its version are unchanged; salt, verifier and wrapped
// blob are all new.
func Rewrap(oldPassword, newPassword string, cfg models.LockConfiguration) (models.LockConfiguration, error) {
	cfg = NormalizeConfiguration(cfg)

	ok, err := Verify(oldPassword, cfg)
	if err != nil {
		return models.LockConfiguration{}, err
	}
	if !ok {
		return models.LockConfiguration{}, ErrWrongPassword
	}

	teamKey, err := Unwrap(oldPassword, cfg.Encryption.WrappedTeamKeyB64, cfg.KDF.Iterations)
	if err != nil {
		return models.LockConfiguration{}, err
	}
	defer wipe(teamKey)

	next, err := NewConfiguration(newPassword, teamKey, cfg.KDF.Iterations)
	if err != nil {
		return models.LockConfiguration{}, err
	}
	next.LockEnabled = cfg.LockEnabled
	next.Encryption.TeamKeyVersion = cfg.Encryption.TeamKeyVersion

	return next, nil
}

// CheckWrappedKey validates the framing of a wrapped key without a
// password. It cannot tell whether the key opens.
func CheckWrappedKey(wrappedKeyB64 string) error {
	blob, err := base64.StdEncoding.DecodeString(wrappedKeyB64)
	if err != nil {
		return fmt.Errorf("%w: wrapped key: %w", ErrMalformedConfig, err)
	}
	if len(blob) < 2 || blob[0] != wrapVersion {
		return fmt.Errorf("%w: wrapped key has an unknown format", ErrMalformedConfig)
	}
	saltLen := int(blob[1])
	if saltLen == 0 || len(blob) < 2+saltLen+nonceLength+16 {
		return fmt.Errorf("%w: wrapped key is too short", ErrMalformedConfig)
	}
	return nil
}

// Fingerprint returns a short, printable digest of a Team Box Key so that
// members can compare keys out of band.
func Fingerprint(teamKey []byte) string {
	sum := sha256.Sum256(teamKey)
	h := strings.ToUpper(hex.EncodeToString(sum[:8]))

	groups := make([]string, 0, 4)
	for i := 0; i < len(h); i += 4 {
		groups = append(groups, h[i:i+4])
	}
	return strings.Join(groups, "-")
}
