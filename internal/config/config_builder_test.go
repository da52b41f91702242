package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without any source fails
// validation because no address, DSN or version is set.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// TestBuild_DefaultsOnly verifies that defaults alone form a valid config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultVersion, cfg.App.Version)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.False(t, cfg.Server.HideStack)
	assert.False(t, cfg.Storage.DB.SkipMigrations)
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

// TestBuild_EarlierSourceWins verifies that non-zero fields of earlier
// sources are not overwritten by later ones.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9999"}},
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:1111", RequestTimeout: time.Second}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

// ── withArgs / withJSON ───────────────────────────────────────────────────────

func TestWithArgs_InvalidFlagRecordsError(t *testing.T) {
	b := newConfigBuilder().withArgs([]string{"-request-timeout", "forever"})

	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NotSpecified(t *testing.T) {
	b := newConfigBuilder().withArgs(nil).withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromFlag(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":    map[string]any{"version": "9.9.9"},
		"server": map[string]any{"http_address": "127.0.0.1:7000"},
	})

	cfg, err := newConfigBuilder().
		withArgs([]string{"-c", path, "-d", "flags.db"}).
		withJSON().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "9.9.9", cfg.App.Version)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, "flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, path, cfg.JSONFilePath)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder().
		withArgs([]string{"-c", "/definitely/not/here.json"}).
		withJSON()

	require.Error(t, b.err)

	cfg, err := b.withDefaults().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := StructuredConfig{
		App:     App{Version: "1.0.0"},
		Storage: Storage{DB: DB{DSN: ":memory:"}},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
	}

	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
		want   error
	}{
		{"valid", func(*StructuredConfig) {}, nil},
		{"no address", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"no timeout", func(c *StructuredConfig) { c.Server.RequestTimeout = 0 }, ErrInvalidServerConfigs},
		{"no dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"no version", func(c *StructuredConfig) { c.App.Version = "" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
