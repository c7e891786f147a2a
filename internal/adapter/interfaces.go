// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the team-lock server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/team-lock/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the team-lock
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// BaseURL is the normalised server address; client sessions are keyed
	// by it.
	BaseURL() string

	// Register creates an account. On success the returned bearer token is
	// stored via SetToken.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates with login and password. On success the returned
	// bearer token is stored via SetToken.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// GetVersion returns the server's build version.
	GetVersion(ctx context.Context) (string, error)

	CreateTeam(ctx context.Context, req models.CreateTeamRequest) (models.Team, error)

	// TeamSecurity reads a team's lock configuration. This is the only
	// network call the unlock gate makes.
	TeamSecurity(ctx context.Context, slug string) (models.Team, error)

	// SetLockEnabled sends the toggle body {"lockEnabled": enabled} and
	// nothing else.
	SetLockEnabled(ctx context.Context, slug string, enabled bool) (models.Team, error)

	SetupLock(ctx context.Context, slug string, req models.SetupLockRequest) (models.Team, error)
	ChangePassword(ctx context.Context, slug string, req models.ChangePasswordRequest) (models.Team, error)
}
