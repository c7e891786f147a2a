// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"fmt"
	"math"

	"github.com/MKhiriev/team-lock/internal/lock"
)

// Transition returns the state that follows s after ev, together with the
// effects the caller must run. It never blocks and has no side effects.
//
// Results of asynchronous work carry the Seq of the state that requested
// them; a result whose Seq does not match s.Seq is ignored.
func Transition(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case Started:
		next := NewState(s.TeamSlug, s.KeyRequired)
		next.Seq = s.Seq + 1
		return next, []Effect{Fetch{Seq: next.Seq}}

	case PasswordSubmitted:
		if s.Phase != PhaseAwaitingPassword {
			return s, nil
		}
		if e.Password == "" {
			s.Message = MsgPasswordRequired
			return s, nil
		}
		s.Phase = PhaseVerifying
		s.Message = ""
		s.Seq++
		return s, []Effect{Verify{Seq: s.Seq, Password: e.Password}}
	}

	if seq, ok := eventSeq(ev); !ok || seq != s.Seq {
		return s, nil
	}

	switch s.Phase {
	case PhaseLoading:
		return loading(s, ev)
	case PhaseVerifying:
		return verifying(s, ev)
	default:
		return s, nil
	}
}

func loading(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case ConfigLoaded:
		s.Team = e.Team
		s.Team.Security = lock.NormalizeConfiguration(e.Team.Security)
		sec := s.Team.Security

		if !sec.LockEnabled {
			if s.KeyRequired && sec.HasVerifier() && sec.HasWrappedKey() {
				return s, []Effect{TrySilent{Seq: s.Seq}}
			}
			return unlocked(s), nil
		}
		if !sec.HasVerifier() {
			return failed(s, MsgVerifyFailed), nil
		}
		return s, []Effect{TrySilent{Seq: s.Seq}}

	case ConfigFailed:
		return failed(s, MsgLoadFailed), nil

	case SilentUnlocked:
		s = unlocked(s)
		s.TeamKey = e.Key
		return s, nil

	case CacheMissed:
		return afterSilent(s), nil

	case SilentFailed:
		return afterSilent(s), []Effect{Forget{}}

	case ConfigMalformed:
		if s.Team.Security.LockEnabled {
			return failed(s, MsgVerifyFailed), nil
		}
		return unlocked(s), nil
	}

	return s, nil
}

func verifying(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case Verified:
		s = unlocked(s)
		s.TeamKey = e.Key
		return s, []Effect{Remember{Password: e.Password}}

	case Rejected:
		return awaiting(s, MsgIncorrectPassword), nil

	case UnwrapFailed:
		return awaiting(s, MsgUnwrapFailed), nil

	case Throttled:
		return awaiting(s, throttledMessage(e)), nil

	case ConfigMalformed:
		return failed(s, MsgVerifyFailed), nil
	}

	return s, nil
}

// afterSilent is where a load ends up when the remembered password is
// missing or stale.
func afterSilent(s State) State {
	if s.Team.Security.LockEnabled {
		return awaiting(s, "")
	}
	return unlocked(s)
}

func unlocked(s State) State {
	s.Phase = PhaseUnlocked
	s.Message = ""
	return s
}

func awaiting(s State, msg string) State {
	s.Phase = PhaseAwaitingPassword
	s.Message = msg
	return s
}

func failed(s State, msg string) State {
	s.Phase = PhaseError
	s.Message = msg
	s.TeamKey = nil
	return s
}

func throttledMessage(e Throttled) string {
	secs := int(math.Ceil(e.RetryAfter.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return fmt.Sprintf("too many attempts, try again in %d s", secs)
}

func eventSeq(ev Event) (uint64, bool) {
	switch e := ev.(type) {
	case ConfigLoaded:
		return e.Seq, true
	case ConfigFailed:
		return e.Seq, true
	case CacheMissed:
		return e.Seq, true
	case SilentUnlocked:
		return e.Seq, true
	case SilentFailed:
		return e.Seq, true
	case Verified:
		return e.Seq, true
	case Rejected:
		return e.Seq, true
	case UnwrapFailed:
		return e.Seq, true
	case ConfigMalformed:
		return e.Seq, true
	case Throttled:
		return e.Seq, true
	default:
		return 0, false
	}
}
