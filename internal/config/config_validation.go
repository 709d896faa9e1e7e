// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultSessionDuration   = 30 * 24 * time.Hour
	defaultDerivationWorkers = 4
	defaultRequestTimeout    = 30 * time.Second
)

// applyDefaults fills zero-valued fields of the merged config with their
// production defaults.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = defaultSessionDuration
	}
	if cfg.App.DerivationWorkers == 0 {
		cfg.App.DerivationWorkers = defaultDerivationWorkers
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.SessionDuration < 0 || cfg.App.DerivationWorkers < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
