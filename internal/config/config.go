// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chastukhin

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the praxis
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local snapshot database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Account holds settings for the remote account-store adapter.
	Account Account `envPrefix:"ACCOUNT_"`

	// Classifier holds settings for the external goal classifier.
	Classifier Classifier `envPrefix:"CLASSIFIER_"`

	// Aura holds the tuning knobs of the engagement scoring engine.
	Aura Aura `envPrefix:"AURA_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown on the TUI start screen.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local snapshot database.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite snapshot database.
type DB struct {
	// DSN is the path to the SQLite database file
	// (e.g. "~/.praxis/praxis.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Account holds settings for the remote account-store HTTP adapter.
type Account struct {
	// BaseURL is the root URL of the account store
	// (e.g. "https://accounts.example.com").
	// Env: ACCOUNT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "15s").
	// Env: ACCOUNT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Classifier holds settings for the external goal classifier service,
// consumed once during onboarding.
type Classifier struct {
	// BaseURL is the root URL of the classifier service. When empty, the
	// classifier endpoint of the account store base URL is used.
	// Env: CLASSIFIER_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// Aura holds the tuning knobs of the engagement scoring engine. The engine
// itself contains the rules; the numbers live here so they can be adjusted
// without a release.
type Aura struct {
	// KnowledgeReward is the score delta for a permanent knowledge entry
	// created by a verified owner.
	// Env: AURA_KNOWLEDGE_REWARD
	KnowledgeReward float64 `env:"KNOWLEDGE_REWARD"`

	// ProjectReward is the score delta for a project log created by a
	// verified owner.
	// Env: AURA_PROJECT_REWARD
	ProjectReward float64 `env:"PROJECT_REWARD"`

	// DecayPerDay is the score cost of every missed day beyond the single
	// grace day.
	// Env: AURA_DECAY_PER_DAY
	DecayPerDay float64 `env:"DECAY_PER_DAY"`

	// HistoryCap is the maximum number of entries kept in the score history.
	// Env: AURA_HISTORY_CAP
	HistoryCap int `env:"HISTORY_CAP"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// DecayCheckInterval defines how often the decay job wakes up to run
	// the once-per-day decay check (e.g. "1h"). The check itself is
	// idempotent within a calendar day.
	// Env: WORKERS_DECAY_CHECK_INTERVAL
	DecayCheckInterval time.Duration `env:"DECAY_CHECK_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
