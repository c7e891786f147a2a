// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lock

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultIterations is used whenever a configuration carries no
	// iteration count.
	DefaultIterations = 250000

	// MinIterations is the smallest count accepted when provisioning.
	MinIterations = 10000

	// KeyLength is the size in bytes of every derived key.
	KeyLength = 32

	SaltLength = 16
)

var (
	verifierInfo = []byte("team-lock/verifier/v1")
	wrapInfo     = []byte("team-lock/wrap/v1")
)

// Derive stretches password with PBKDF2-HMAC-SHA256 into a 32-byte master
// key. The password is NFKD-normalised first so that visually identical
// input from different keyboards derives the same key.
//
// Derive is deterministic: equal inputs always return equal keys.
func Derive(password string, salt []byte, iterations int) ([]byte, error) {
	switch {
	case password == "":
		return nil, fmt.Errorf("%w: %w", ErrKDF, ErrEmptyPassword)
	case len(salt) == 0:
		return nil, fmt.Errorf("%w: salt is empty", ErrKDF)
	case iterations <= 0:
		return nil, fmt.Errorf("%w: iterations must be positive, got %d", ErrKDF, iterations)
	}

	return pbkdf2.Key([]byte(normalizePassword(password)), salt, iterations, KeyLength, sha256.New), nil
}

func normalizePassword(password string) string {
	return norm.NFKD.String(password)
}

// subKeys splits a master key into the verifier tag and the wrapping key.
// Knowing the verifier (which the server stores) gives nothing about the
// wrapping key.
func subKeys(master []byte) (verifier, wrapKey []byte, err error) {
	if verifier, err = expand(master, verifierInfo); err != nil {
		return nil, nil, err
	}
	if wrapKey, err = expand(master, wrapInfo); err != nil {
		return nil, nil, err
	}
	return verifier, wrapKey, nil
}

func expand(master, info []byte) ([]byte, error) {
	h := hkdf.New(sha256.New, master, nil, info)
	k := make([]byte, KeyLength)
	if _, err := io.ReadFull(h, k); err != nil {
		return nil, fmt.Errorf("reading from HKDF: %w", err)
	}
	return k, nil
}

// wipe zeroes b in place.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
