// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"context"
	"sync"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/team-lock/internal/lock"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/internal/session"
	"github.com/MKhiriev/team-lock/models"
)

// ConfigSource fetches a team and its lock configuration.
//
//go:generate mockgen -source=gate.go -destination=../mock/gate_mock.go -package=mock
type ConfigSource interface {
	TeamSecurity(ctx context.Context, slug string) (models.Team, error)
}

// Option configures a [Gate].
type Option func(*Gate)

// WithKeyRequired asks the gate to recover the Team Box Key from the
// session cache even when the lock is disabled.
func WithKeyRequired() Option {
	return func(g *Gate) {
		g.state.KeyRequired = true
	}
}

func WithThrottle(t Throttle) Option {
	return func(g *Gate) {
		g.throttle = t
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(g *Gate) {
		g.logger = l
	}
}

// Gate runs the unlock state machine for one team against a config source
// and a session cache.
//
// Load and Submit block while the KDF runs, so UI code calls them from a
// background command. Submit calls that arrive while a verification is in
// flight are ignored.
type Gate struct {
	source   ConfigSource
	cache    session.Cache
	throttle Throttle
	logger   *logger.Logger

	mu    sync.Mutex
	state State
}

func New(slug string, source ConfigSource, cache session.Cache, opts ...Option) *Gate {
	g := &Gate{
		source:   source,
		cache:    cache,
		throttle: nopThrottle{},
		logger:   logger.Nop(),
		state:    NewState(slug, false),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.cache == nil {
		g.cache = session.NewNopCache()
	}
	return g
}

// State returns the current snapshot.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Load fetches the team configuration and runs the gate until it settles.
// Calling Load again reloads from scratch.
func (g *Gate) Load(ctx context.Context) State {
	g.dispatch(ctx, Started{})
	return g.State()
}

// Submit checks password against the team verifier.
func (g *Gate) Submit(ctx context.Context, password string) State {
	g.dispatch(ctx, PasswordSubmitted{Password: password})
	return g.State()
}

func (g *Gate) dispatch(ctx context.Context, ev Event) {
	g.mu.Lock()
	prev := g.state
	next, effects := Transition(prev, ev)
	g.state = next
	g.mu.Unlock()

	if prev.Phase != next.Phase {
		g.logger.Debug().
			Str("team", next.TeamSlug).
			Str("from", prev.Phase.String()).
			Str("to", next.Phase.String()).
			Msg("gate phase changed")
	}

	for _, eff := range effects {
		if follow := g.execute(ctx, next, eff); follow != nil {
			g.dispatch(ctx, follow)
		}
	}
}

func (g *Gate) execute(ctx context.Context, s State, eff Effect) Event {
	teamID := s.Team.TeamID

	switch e := eff.(type) {
	case Fetch:
		team, err := g.source.TeamSecurity(ctx, s.TeamSlug)
		if err != nil {
			g.logger.Err(err).Str("team", s.TeamSlug).Msg("error fetching team security")
			return ConfigFailed{Seq: e.Seq, Err: err}
		}
		return ConfigLoaded{Seq: e.Seq, Team: team}

	case TrySilent:
		password, ok := g.cache.Recall(teamID)
		if !ok {
			return CacheMissed{Seq: e.Seq}
		}
		match, err := lock.Verify(password, s.Team.Security)
		if err != nil {
			return ConfigMalformed{Seq: e.Seq}
		}
		if !match {
			g.logger.Info().Str("team", s.TeamSlug).Msg("remembered team password is stale")
			return SilentFailed{Seq: e.Seq}
		}
		key, err := g.unwrap(password, s.Team.Security)
		if err != nil {
			return SilentFailed{Seq: e.Seq}
		}
		return SilentUnlocked{Seq: e.Seq, Key: key}

	case Verify:
		if blocked, retryAfter := g.throttle.Check(teamID); blocked {
			return Throttled{Seq: e.Seq, RetryAfter: retryAfter}
		}
		match, err := lock.Verify(e.Password, s.Team.Security)
		if err != nil {
			g.logger.Err(err).Str("team", s.TeamSlug).Msg("error verifying team password")
			return ConfigMalformed{Seq: e.Seq}
		}
		if !match {
			g.throttle.RecordFailure(teamID)
			return Rejected{Seq: e.Seq}
		}
		key, err := g.unwrap(e.Password, s.Team.Security)
		if err != nil {
			g.logger.Err(err).Str("team", s.TeamSlug).Msg("error unwrapping team key")
			return UnwrapFailed{Seq: e.Seq}
		}
		g.throttle.RecordSuccess(teamID)
		return Verified{Seq: e.Seq, Password: e.Password, Key: key}

	case Remember:
		g.cache.Remember(teamID, e.Password)
	case Forget:
		g.cache.Forget(teamID)
	}

	return nil
}

// unwrap returns a nil enclave when cfg has no wrapped key.
func (g *Gate) unwrap(password string, cfg models.LockConfiguration) (*memguard.Enclave, error) {
	if !cfg.HasWrappedKey() {
		return nil, nil
	}
	key, err := lock.Unwrap(password, cfg.Encryption.WrappedTeamKeyB64, cfg.KDF.Iterations)
	if err != nil {
		return nil, err
	}
	return memguard.NewEnclave(key), nil
}
