// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lock

import "errors"

var (
	// ErrKDF is returned by [Derive] for empty passwords, empty salts and
	// non-positive iteration counts.
	ErrKDF = errors.New("key derivation failed")

	// ErrMalformedConfig means the stored lock configuration cannot be
	// decoded. It never means the password is wrong.
	ErrMalformedConfig = errors.New("malformed lock configuration")

	// ErrUnwrap covers every failure to open a wrapped Team Box Key: wrong
	// password, tampered blob, bad framing. Callers get no partial output.
	ErrUnwrap = errors.New("unable to unwrap team key")

	ErrWeakIterations = errors.New("iteration count is below the allowed minimum")
	ErrEmptyPassword  = errors.New("password is empty")
	ErrWrongPassword  = errors.New("password does not match the team verifier")
)
