package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fresha/openapi-diff/oaserrors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvFormat, EnvNoColor, EnvWatchDebounce, EnvCacheEnabled, EnvCacheMaxSize, EnvCacheTTL, EnvMaxInlineSize} {
		t.Setenv(key, "")
	}
}

func TestFromEnvironment_Defaults(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, Default(), FromEnvironment())
}

func TestFromEnvironment(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, c *Config)
	}{
		{"format", EnvFormat, "JSON", func(t *testing.T, c *Config) { assert.Equal(t, FormatJSON, c.Format) }},
		{"invalid format", EnvFormat, "xml", func(t *testing.T, c *Config) { assert.Equal(t, FormatText, c.Format) }},
		{"no color", EnvNoColor, "true", func(t *testing.T, c *Config) { assert.True(t, c.NoColor) }},
		{"invalid bool", EnvCacheEnabled, "maybe", func(t *testing.T, c *Config) { assert.True(t, c.CacheEnabled) }},
		{"cache disabled", EnvCacheEnabled, "0", func(t *testing.T, c *Config) { assert.False(t, c.CacheEnabled) }},
		{"cache size", EnvCacheMaxSize, "3", func(t *testing.T, c *Config) { assert.Equal(t, 3, c.CacheMaxSize) }},
		{"negative cache size", EnvCacheMaxSize, "-1", func(t *testing.T, c *Config) { assert.Equal(t, 16, c.CacheMaxSize) }},
		{"debounce", EnvWatchDebounce, "1s", func(t *testing.T, c *Config) { assert.Equal(t, time.Second, c.WatchDebounce) }},
		{"invalid duration", EnvCacheTTL, "soon", func(t *testing.T, c *Config) { assert.Equal(t, 15*time.Minute, c.CacheTTL) }},
		{"inline size", EnvMaxInlineSize, "1024", func(t *testing.T, c *Config) { assert.EqualValues(t, 1024, c.MaxInlineSize) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			tt.check(t, FromEnvironment())
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OPENAPI_DIFF_FORMAT=yaml\nOPENAPI_DIFF_CACHE_MAX_SIZE=4\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, 4, cfg.CacheMaxSize)

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv(EnvFormat, "json")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, FormatJSON, cfg.Format)
	})
}

func TestLoad_MissingDotEnv(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_UnreadableDotEnv(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
}

func TestValidateFormat(t *testing.T) {
	for _, f := range Formats {
		assert.NoError(t, ValidateFormat(f))
	}
	err := ValidateFormat("xml")
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
}
