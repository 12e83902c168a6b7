// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chastukhin

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"STORAGE_DB_DSN": "/home/user/.praxis/praxis.db",

		"ACCOUNT_BASE_URL":        "https://accounts.example.com",
		"ACCOUNT_REQUEST_TIMEOUT": "30s",

		"CLASSIFIER_BASE_URL": "https://classifier.example.com",

		"AURA_KNOWLEDGE_REWARD": "2.5",
		"AURA_PROJECT_REWARD":   "4",
		"AURA_DECAY_PER_DAY":    "6",
		"AURA_HISTORY_CAP":      "30",

		"WORKERS_DECAY_CHECK_INTERVAL": "2h",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/home/user/.praxis/praxis.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://accounts.example.com", cfg.Account.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Account.RequestTimeout)
	assert.Equal(t, "https://classifier.example.com", cfg.Classifier.BaseURL)
	assert.Equal(t, 2.5, cfg.Aura.KnowledgeReward)
	assert.Equal(t, 4.0, cfg.Aura.ProjectReward)
	assert.Equal(t, 6.0, cfg.Aura.DecayPerDay)
	assert.Equal(t, 30, cfg.Aura.HistoryCap)
	assert.Equal(t, 2*time.Hour, cfg.Workers.DecayCheckInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ACCOUNT_BASE_URL": "https://accounts.example.com",
		"AURA_HISTORY_CAP": "7",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "https://accounts.example.com", cfg.Account.BaseURL)
	assert.Equal(t, 7, cfg.Aura.HistoryCap)

	assert.Empty(t, cfg.App.Version)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Account.RequestTimeout)
	assert.Zero(t, cfg.Aura.KnowledgeReward)
	assert.Zero(t, cfg.Workers.DecayCheckInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ACCOUNT_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
}

func TestParseEnv_InvalidFloat(t *testing.T) {
	setEnvVars(t, map[string]string{
		"AURA_DECAY_PER_DAY": "five",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_VERSION",
		"STORAGE_DB_DSN",
		"ACCOUNT_BASE_URL", "ACCOUNT_REQUEST_TIMEOUT",
		"CLASSIFIER_BASE_URL",
		"AURA_KNOWLEDGE_REWARD", "AURA_PROJECT_REWARD",
		"AURA_DECAY_PER_DAY", "AURA_HISTORY_CAP",
		"WORKERS_DECAY_CHECK_INTERVAL",
	}
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
}
