package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "praxis.db"}},
		Account: Account{BaseURL: "http://localhost:8080", RequestTimeout: 15 * time.Second},
		Aura:    Aura{KnowledgeReward: 2, ProjectReward: 3, DecayPerDay: 5, HistoryCap: 14},
		Workers: Workers{DecayCheckInterval: time.Hour},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EarlierSourcesWin verifies merge precedence: a non-zero field in
// an earlier config is not overwritten by a later one.
func TestBuild_EarlierSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "/custom/path.db"}}},
		validConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "/custom/path.db", cfg.Storage.DB.DSN, "earlier source wins")
	assert.Equal(t, "http://localhost:8080", cfg.Account.BaseURL, "later source fills the gaps")
	assert.Equal(t, 14, cfg.Aura.HistoryCap)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EmptyBuilderFailsValidation verifies that building with no
// sources produces a config that fails validation.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_AloneIsValid(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "praxis.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 15*time.Second, cfg.Account.RequestTimeout)
	assert.Equal(t, 2.0, cfg.Aura.KnowledgeReward)
	assert.Equal(t, 3.0, cfg.Aura.ProjectReward)
	assert.Equal(t, 5.0, cfg.Aura.DecayPerDay)
	assert.Equal(t, 14, cfg.Aura.HistoryCap)
	assert.Equal(t, time.Hour, cfg.Workers.DecayCheckInterval)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_MergedWhenPathSpecified(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"storage": {"db": {"dsn": "/from/json.db"}},
		"account": {"base_url": "https://json.example.com", "request_timeout": "45s"},
		"workers": {"decay_check_interval": "3h"}
	}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "/from/json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://json.example.com", cfg.Account.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Account.RequestTimeout)
	assert.Equal(t, 3*time.Hour, cfg.Workers.DecayCheckInterval)
	assert.Equal(t, 2.0, cfg.Aura.KnowledgeReward, "defaults still fill unlisted fields")
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

// ── parseJSON ─────────────────────────────────────────────────────────────────

func TestParseJSON_DurationFormats(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"account": {"request_timeout": "1m30s"},
		"workers": {"decay_check_interval": 3600000000000}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.Account.RequestTimeout, "string duration")
	assert.Equal(t, time.Hour, cfg.Workers.DecayCheckInterval, "numeric nanoseconds")
	assert.Empty(t, cfg.JSONFilePath, "a json file cannot point at another json file")
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeTempJSONConfig(t, `{broken`)

	_, err := parseJSON(path)
	require.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid config passes",
			mutate: func(*StructuredConfig) {},
		},
		{
			name:    "empty dsn",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn rejected",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.DSN = "file::memory:?cache=shared" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing account url",
			mutate:  func(c *StructuredConfig) { c.Account.BaseURL = "" },
			wantErr: ErrInvalidAccountConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(c *StructuredConfig) { c.Account.RequestTimeout = 0 },
			wantErr: ErrInvalidAccountConfigs,
		},
		{
			name:    "non-positive reward",
			mutate:  func(c *StructuredConfig) { c.Aura.KnowledgeReward = 0 },
			wantErr: ErrInvalidAuraConfigs,
		},
		{
			name:    "negative decay",
			mutate:  func(c *StructuredConfig) { c.Aura.DecayPerDay = -1 },
			wantErr: ErrInvalidAuraConfigs,
		},
		{
			name:    "zero history cap",
			mutate:  func(c *StructuredConfig) { c.Aura.HistoryCap = 0 },
			wantErr: ErrInvalidAuraConfigs,
		},
		{
			name:    "zero decay interval",
			mutate:  func(c *StructuredConfig) { c.Workers.DecayCheckInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
