// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks values that are wrong regardless of which binary reads
// them. Missing values are left to validateServer and ClientConfig.validate.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: log level: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.App.MinKDFIterations < 0 {
		return fmt.Errorf("%w: negative minimum KDF iterations", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration < 0 || cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidAppConfigs)
	}

	return nil
}

// validateServer requires everything the server cannot start without.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ThrottleSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.LogFile == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
