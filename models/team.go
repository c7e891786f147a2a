// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Team is a group of users sharing one Team Box Key.
type Team struct {
	// TeamID is a UUIDv7 string assigned on creation.
	TeamID string `json:"_id"`

	// TeamSlug is the unique, URL-safe team name used in routes.
	TeamSlug string `json:"teamSlug"`

	// Security is the team's lock configuration.
	Security LockConfiguration `json:"security"`

	// OwnerID is the only user allowed to change Security.
	// Never leaves the server.
	OwnerID int64 `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Team model.
func (t Team) TableName() string {
	return "teams"
}

// TeamResponse is the envelope returned by team security endpoints.
type TeamResponse struct {
	Team Team `json:"team"`
}
