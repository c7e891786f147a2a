// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lock

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// AlgorithmAES256GCM is the only wrapping algorithm produced by [Wrap].
	AlgorithmAES256GCM = "AES-256-GCM"

	wrapVersion = 0x01
	nonceLength = 12
)

// Wrap seals teamKey under a key derived from password. The blob layout is
//
//	version(1) | saltLen(1) | salt | nonce(12) | ciphertext+tag
//
// and the header together with the iteration count is authenticated as
// additional data.
func Wrap(password string, teamKey []byte, iterations int) (string, error) {
	if len(teamKey) == 0 {
		return "", fmt.Errorf("team key is empty")
	}

	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	gcm, err := wrapCipher(password, salt, iterations)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, nonceLength)
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	header := append([]byte{wrapVersion, byte(len(salt))}, salt...)
	sealed := gcm.Seal(nil, nonce, teamKey, additionalData(header, iterations))

	blob := make([]byte, 0, len(header)+len(nonce)+len(sealed))
	blob = append(blob, header...)
	blob = append(blob, nonce...)
	blob = append(blob, sealed...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Unwrap opens a blob produced by [Wrap]. Every failure, including a wrong
// password, returns [ErrUnwrap] and no key bytes.
func Unwrap(password, wrappedKeyB64 string, iterations int) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(wrappedKeyB64)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding: %w", ErrUnwrap, err)
	}
	if len(blob) < 2 {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrUnwrap)
	}
	if blob[0] != wrapVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrUnwrap, blob[0])
	}

	saltLen := int(blob[1])
	headerLen := 2 + saltLen
	if saltLen == 0 || len(blob) < headerLen+nonceLength+16 {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrUnwrap)
	}

	header := blob[:headerLen]
	nonce := blob[headerLen : headerLen+nonceLength]
	sealed := blob[headerLen+nonceLength:]

	gcm, err := wrapCipher(password, header[2:], iterations)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnwrap, err)
	}

	teamKey, err := gcm.Open(nil, nonce, sealed, additionalData(header, iterations))
	if err != nil {
		return nil, fmt.Errorf("%w: decryption failed: %w", ErrUnwrap, err)
	}

	return teamKey, nil
}

func wrapCipher(password string, salt []byte, iterations int) (cipher.AEAD, error) {
	master, err := Derive(password, salt, iterations)
	if err != nil {
		return nil, err
	}
	defer wipe(master)

	verifier, wrapKey, err := subKeys(master)
	if err != nil {
		return nil, err
	}
	wipe(verifier)
	defer wipe(wrapKey)

	block, err := aes.NewCipher(wrapKey)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func additionalData(header []byte, iterations int) []byte {
	aad := make([]byte, len(header)+4)
	copy(aad, header)
	binary.BigEndian.PutUint32(aad[len(header):], uint32(iterations))
	return aad
}
