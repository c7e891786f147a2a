// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/team-lock/internal/app"
)

// Toggle body errors. Each one is answered with 400 InvalidRequestError.
var (
	// errLockEnabledRequired is returned when the toggle body has no
	// "lockEnabled" key or its value is not a JSON boolean.
	errLockEnabledRequired = errors.New(app.MsgLockEnabledRequired)

	errUnknownField = errors.New(app.MsgUnknownField)
)
