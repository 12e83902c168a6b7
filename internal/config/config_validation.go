// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chastukhin

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Account.BaseURL == "" || cfg.Account.RequestTimeout == 0 {
		return ErrInvalidAccountConfigs
	}

	if cfg.Aura.KnowledgeReward <= 0 || cfg.Aura.ProjectReward <= 0 ||
		cfg.Aura.DecayPerDay <= 0 || cfg.Aura.HistoryCap <= 0 {
		return ErrInvalidAuraConfigs
	}

	if cfg.Workers.DecayCheckInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
