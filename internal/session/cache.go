// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session keeps verified team passwords for the lifetime of the
// client process so that reopening a locked team does not prompt again.
// Nothing here is ever written to disk.
package session

import (
	"sync"

	"github.com/awnumar/memguard"
)

// KeyPrefix namespaces cache keys by team id.
const KeyPrefix = "teamlock:"

// Cache remembers the last verified password per team.
//
//go:generate mockgen -source=cache.go -destination=../mock/session_cache_mock.go -package=mock
type Cache interface {
	Remember(teamID, password string)
	Recall(teamID string) (string, bool)
	Forget(teamID string)
}

// Key returns the cache key used for teamID.
func Key(teamID string) string {
	return KeyPrefix + teamID
}

// MemoryCache holds passwords in memguard enclaves, encrypted at rest in
// process memory and only decrypted while being read.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]*memguard.Enclave
}

var _ Cache = (*MemoryCache)(nil)

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]*memguard.Enclave)}
}

// Remember stores password for teamID, replacing any earlier value.
// Empty passwords are not stored.
func (c *MemoryCache) Remember(teamID, password string) {
	if password == "" {
		return
	}

	// NewEnclave wipes its input
	enclave := memguard.NewEnclave([]byte(password))

	c.mu.Lock()
	c.data[Key(teamID)] = enclave
	c.mu.Unlock()
}

func (c *MemoryCache) Recall(teamID string) (string, bool) {
	c.mu.RLock()
	enclave, ok := c.data[Key(teamID)]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}

	buf, err := enclave.Open()
	if err != nil {
		c.Forget(teamID)
		return "", false
	}
	defer buf.Destroy()

	return string(buf.Bytes()), true
}

func (c *MemoryCache) Forget(teamID string) {
	c.mu.Lock()
	delete(c.data, Key(teamID))
	c.mu.Unlock()
}

// Purge drops every remembered password. Called on logout.
func (c *MemoryCache) Purge() {
	c.mu.Lock()
	c.data = make(map[string]*memguard.Enclave)
	c.mu.Unlock()
}

// Len returns the number of remembered teams.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

type nopCache struct{}

// NewNopCache returns a Cache that never remembers anything, so every
// unlock prompts.
func NewNopCache() Cache {
	return nopCache{}
}

func (nopCache) Remember(string, string)       {}
func (nopCache) Recall(string) (string, bool) { return "", false }
func (nopCache) Forget(string)                {}
