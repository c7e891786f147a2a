// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gate implements the Unlock Gate: the state machine that decides
// whether a member may see a team's content and recovers the Team Box Key.
//
// The machine is a pure function [Transition] over [State] and [Event]
// values. Side effects (network, KDF, cache) are returned as [Effect]
// values and executed by [Gate].
package gate

import (
	"fmt"
	"time"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/team-lock/models"
)

// Phase is the externally visible state of the gate.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseAwaitingPassword
	PhaseVerifying
	PhaseUnlocked
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseAwaitingPassword:
		return "awaiting-password"
	case PhaseVerifying:
		return "verifying"
	case PhaseUnlocked:
		return "unlocked"
	case PhaseError:
		return "error"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// User-facing messages.
const (
	MsgIncorrectPassword = "incorrect password"
	MsgUnwrapFailed      = "unable to unwrap team key"
	MsgVerifyFailed      = "unable to verify team lock"
	MsgLoadFailed        = "unable to load team security"
	MsgPasswordRequired  = "password is required"
)

// State is one snapshot of the gate.
type State struct {
	Phase    Phase
	TeamSlug string

	// Team is the normalised team record, set once loading succeeded.
	Team models.Team

	// Message is the error shown next to the prompt or on the error screen.
	Message string

	// TeamKey holds the unwrapped Team Box Key when Phase is PhaseUnlocked
	// and the key could be recovered. Nil otherwise.
	TeamKey *memguard.Enclave

	// KeyRequired makes the gate try the cached password even when the lock
	// is off, so that features needing the key can still get it.
	KeyRequired bool

	// Seq identifies the current attempt. Results carrying another Seq are
	// stale and ignored.
	Seq uint64
}

// KeyAvailable reports whether the Team Box Key was recovered.
func (s State) KeyAvailable() bool {
	return s.TeamKey != nil
}

// Terminal reports whether the gate reached Unlocked or Error.
func (s State) Terminal() bool {
	return s.Phase == PhaseUnlocked || s.Phase == PhaseError
}

// NewState returns the initial state for slug. Feed it [Started] to begin.
func NewState(slug string, keyRequired bool) State {
	return State{Phase: PhaseLoading, TeamSlug: slug, KeyRequired: keyRequired}
}

// Event is an input to [Transition].
type Event interface {
	event()
}

type (
	// Started begins (or restarts, on reload) a load.
	Started struct{}

	ConfigLoaded struct {
		Seq  uint64
		Team models.Team
	}
	ConfigFailed struct {
		Seq uint64
		Err error
	}

	// CacheMissed means no password was remembered for the team.
	CacheMissed struct{ Seq uint64 }
	// SilentUnlocked carries the key recovered with the remembered password.
	SilentUnlocked struct {
		Seq uint64
		Key *memguard.Enclave
	}
	// SilentFailed means the remembered password no longer works,
	// typically after a password change.
	SilentFailed struct{ Seq uint64 }

	PasswordSubmitted struct{ Password string }

	Verified struct {
		Seq      uint64
		Password string
		Key      *memguard.Enclave
	}
	Rejected        struct{ Seq uint64 }
	UnwrapFailed    struct{ Seq uint64 }
	ConfigMalformed struct{ Seq uint64 }
	Throttled       struct {
		Seq        uint64
		RetryAfter time.Duration
	}
)

func (Started) event()           {}
func (ConfigLoaded) event()      {}
func (ConfigFailed) event()      {}
func (CacheMissed) event()       {}
func (SilentUnlocked) event()    {}
func (SilentFailed) event()      {}
func (PasswordSubmitted) event() {}
func (Verified) event()          {}
func (Rejected) event()          {}
func (UnwrapFailed) event()      {}
func (ConfigMalformed) event()   {}
func (Throttled) event()         {}

// Effect is work requested by [Transition].
type Effect interface {
	effect()
}

type (
	Fetch     struct{ Seq uint64 }
	TrySilent struct{ Seq uint64 }
	Verify    struct {
		Seq      uint64
		Password string
	}
	Remember struct{ Password string }
	Forget   struct{}
)

func (Fetch) effect()     {}
func (TrySilent) effect() {}
func (Verify) effect()    {}
func (Remember) effect()  {}
func (Forget) effect()    {}
