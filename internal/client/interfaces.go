// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/team-lock/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive part of the client.
type UI interface {
	LoginFlow(ctx context.Context) (models.Session, error)
	MainLoop(ctx context.Context, sess models.Session) (logout bool, err error)
}

// Purger drops every remembered team password.
type Purger interface {
	Purge()
}
