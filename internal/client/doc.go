// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores or establishes the account session, runs the terminal UI and
// the background workers, and forgets every remembered team password when
// the user logs out or the program exits.
package client
