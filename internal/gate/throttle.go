// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"sync"
	"time"
)

// Throttle limits password attempts per team.
type Throttle interface {
	Check(teamID string) (blocked bool, retryAfter time.Duration)
	RecordFailure(teamID string)
	RecordSuccess(teamID string)
}

const (
	// maxFailures is the number of consecutive failures before lockout begins.
	maxFailures = 5
	baseLockout = 1 * time.Minute
	maxLockout  = 15 * time.Minute
	// attemptExpiry is how long after the last failure a record is dropped.
	attemptExpiry = 1 * time.Hour
)

type attemptRecord struct {
	failures    int
	lastFailure time.Time
	lockedUntil time.Time
}

// AttemptThrottle applies exponential backoff after repeated wrong
// passwords: five failures lock the team prompt for one minute, each further
// failure doubles the lockout up to fifteen minutes. A correct password
// resets the counter.
//
// Verification happens only on the client, so this is the only place
// attempts can be counted.
type AttemptThrottle struct {
	mu       sync.Mutex
	attempts map[string]*attemptRecord
	now      func() time.Time
}

var _ Throttle = (*AttemptThrottle)(nil)

func NewAttemptThrottle() *AttemptThrottle {
	return &AttemptThrottle{
		attempts: make(map[string]*attemptRecord),
		now:      time.Now,
	}
}

func (t *AttemptThrottle) Check(teamID string) (bool, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.attempts[teamID]
	if !ok {
		return false, 0
	}
	now := t.now()
	if now.Sub(rec.lastFailure) > attemptExpiry {
		delete(t.attempts, teamID)
		return false, 0
	}
	if now.Before(rec.lockedUntil) {
		return true, rec.lockedUntil.Sub(now)
	}
	return false, 0
}

func (t *AttemptThrottle) RecordFailure(teamID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.attempts[teamID]
	if !ok {
		rec = &attemptRecord{}
		t.attempts[teamID] = rec
	}
	rec.failures++
	rec.lastFailure = t.now()

	if rec.failures >= maxFailures {
		lockout := baseLockout
		for i := 0; i < rec.failures-maxFailures; i++ {
			lockout *= 2
			if lockout > maxLockout {
				lockout = maxLockout
				break
			}
		}
		rec.lockedUntil = rec.lastFailure.Add(lockout)
	}
}

func (t *AttemptThrottle) RecordSuccess(teamID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.attempts, teamID)
}

// Sweep removes expired records. Run it periodically.
func (t *AttemptThrottle) Sweep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	for id, rec := range t.attempts {
		if now.Sub(rec.lastFailure) > attemptExpiry {
			delete(t.attempts, id)
		}
	}
}

func (t *AttemptThrottle) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.attempts)
}

type nopThrottle struct{}

func (nopThrottle) Check(string) (bool, time.Duration) { return false, 0 }
func (nopThrottle) RecordFailure(string)               {}
func (nopThrottle) RecordSuccess(string)               {}
