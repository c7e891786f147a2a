// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lock

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/team-lock/models"
)

// VerifierScheme prefixes every encoded verifier record.
const VerifierScheme = "pbkdf2-sha256"

// Verifier is the decoded form of a team's KDF parameters and verifier tag.
// The three values are always produced and stored together.
type Verifier struct {
	Iterations int
	Salt       []byte
	Tag        []byte
}

// EncodeVerifier renders v as "pbkdf2-sha256$<iterations>$<salt>$<tag>"
// with standard base64 for the binary parts.
func EncodeVerifier(v Verifier) string {
	return strings.Join([]string{
		VerifierScheme,
		strconv.Itoa(v.Iterations),
		base64.StdEncoding.EncodeToString(v.Salt),
		base64.StdEncoding.EncodeToString(v.Tag),
	}, "$")
}

// DecodeVerifier parses a record produced by [EncodeVerifier].
func DecodeVerifier(encoded string) (Verifier, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 {
		return Verifier{}, fmt.Errorf("%w: expected 4 fields, got %d", ErrMalformedConfig, len(parts))
	}
	if parts[0] != VerifierScheme {
		return Verifier{}, fmt.Errorf("%w: unknown scheme %q", ErrMalformedConfig, parts[0])
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil {
		return Verifier{}, fmt.Errorf("%w: iterations: %w", ErrMalformedConfig, err)
	}

	return newVerifier(iterations, parts[2], parts[3])
}

// VerifierFromConfig extracts the verifier from a lock configuration.
// Missing defaults are filled as by [NormalizeConfiguration].
func VerifierFromConfig(cfg models.LockConfiguration) (Verifier, error) {
	cfg = NormalizeConfiguration(cfg)
	return newVerifier(cfg.KDF.Iterations, cfg.KDF.SaltB64, cfg.VerifierB64)
}

// Apply writes the verifier into cfg, replacing its KDF parameters and tag.
func (v Verifier) Apply(cfg *models.LockConfiguration) {
	cfg.KDF.Iterations = v.Iterations
	cfg.KDF.SaltB64 = base64.StdEncoding.EncodeToString(v.Salt)
	cfg.VerifierB64 = base64.StdEncoding.EncodeToString(v.Tag)
}

func newVerifier(iterations int, saltB64, tagB64 string) (Verifier, error) {
	if iterations <= 0 {
		return Verifier{}, fmt.Errorf("%w: iterations must be positive, got %d", ErrMalformedConfig, iterations)
	}

	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return Verifier{}, fmt.Errorf("%w: salt: %w", ErrMalformedConfig, err)
	}
	if len(salt) == 0 {
		return Verifier{}, fmt.Errorf("%w: salt is empty", ErrMalformedConfig)
	}

	tag, err := base64.StdEncoding.DecodeString(tagB64)
	if err != nil {
		return Verifier{}, fmt.Errorf("%w: verifier: %w", ErrMalformedConfig, err)
	}
	if len(tag) != KeyLength {
		return Verifier{}, fmt.Errorf("%w: verifier must be %d bytes, got %d", ErrMalformedConfig, KeyLength, len(tag))
	}

	return Verifier{Iterations: iterations, Salt: salt, Tag: tag}, nil
}

// ComputeVerifier derives the verifier tag for password under salt and
// iterations.
func ComputeVerifier(password string, salt []byte, iterations int) (Verifier, error) {
	master, err := Derive(password, salt, iterations)
	if err != nil {
		return Verifier{}, err
	}
	defer wipe(master)

	tag, wrapKey, err := subKeys(master)
	if err != nil {
		return Verifier{}, fmt.Errorf("%w: %w", ErrKDF, err)
	}
	wipe(wrapKey)

	return Verifier{Iterations: iterations, Salt: append([]byte(nil), salt...), Tag: tag}, nil
}

// Verify reports whether password matches the verifier stored in cfg.
// A wrong password is (false, nil); the only error is [ErrMalformedConfig].
// The tag comparison runs in constant time.
func Verify(password string, cfg models.LockConfiguration) (bool, error) {
	stored, err := VerifierFromConfig(cfg)
	if err != nil {
		return false, err
	}
	if password == "" {
		return false, nil
	}

	candidate, err := ComputeVerifier(password, stored.Salt, stored.Iterations)
	if err != nil {
		// inputs were validated above, Derive cannot reject them
		return false, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}
	defer wipe(candidate.Tag)

	return subtle.ConstantTimeCompare(candidate.Tag, stored.Tag) == 1, nil
}
