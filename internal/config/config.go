// Package config loads openapi-diff defaults from OPENAPI_DIFF_* environment
// variables and an optional .env file.
//
// Process environment variables take precedence over .env entries. Invalid
// values log a warning and fall back to the built-in default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/fresha/openapi-diff/oaserrors"
)

// DefaultDotEnv is the .env file read by Load when no path is given.
const DefaultDotEnv = ".env"

// Output formats accepted by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Environment variable names.
const (
	EnvFormat        = "OPENAPI_DIFF_FORMAT"
	EnvNoColor       = "OPENAPI_DIFF_NO_COLOR"
	EnvWatchDebounce = "OPENAPI_DIFF_WATCH_DEBOUNCE"
	EnvCacheEnabled  = "OPENAPI_DIFF_CACHE_ENABLED"
	EnvCacheMaxSize  = "OPENAPI_DIFF_CACHE_MAX_SIZE"
	EnvCacheTTL      = "OPENAPI_DIFF_CACHE_TTL"
	EnvMaxInlineSize = "OPENAPI_DIFF_MAX_INLINE_SIZE"
)

// Config holds the defaults shared by the CLI and the MCP server.
type Config struct {
	// Format is the default output format of the CLI.
	Format string
	// NoColor disables colored output.
	NoColor bool
	// WatchDebounce is the quiet period after a file change before --watch re-runs.
	WatchDebounce time.Duration

	// Parse cache settings of the MCP server.
	CacheEnabled bool
	CacheMaxSize int
	CacheTTL     time.Duration

	// MaxInlineSize caps inline document content accepted by the MCP server.
	MaxInlineSize int64
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format:        FormatText,
		WatchDebounce: 300 * time.Millisecond,
		CacheEnabled:  true,
		CacheMaxSize:  16,
		CacheTTL:      15 * time.Minute,
		MaxInlineSize: 10 << 20,
	}
}

// Load reads the .env file at path (DefaultDotEnv when empty), if it exists,
// and then the process environment.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultDotEnv
	}
	dotenv, err := readDotEnv(path)
	if err != nil {
		return nil, err
	}
	return fromEnv(env{dotenv: dotenv}), nil
}

// FromEnvironment builds a Config from the process environment only.
func FromEnvironment() *Config {
	return fromEnv(env{})
}

func readDotEnv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err == nil {
		return values, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return nil, &oaserrors.ConfigError{
		Option:  "dotenv",
		Value:   path,
		Message: "failed to read environment file",
		Cause:   err,
	}
}

func fromEnv(e env) *Config {
	def := Default()
	return &Config{
		Format:        e.oneOf(EnvFormat, Formats, def.Format),
		NoColor:       e.boolean(EnvNoColor, def.NoColor),
		WatchDebounce: e.duration(EnvWatchDebounce, def.WatchDebounce),
		CacheEnabled:  e.boolean(EnvCacheEnabled, def.CacheEnabled),
		CacheMaxSize:  e.integer(EnvCacheMaxSize, def.CacheMaxSize),
		CacheTTL:      e.duration(EnvCacheTTL, def.CacheTTL),
		MaxInlineSize: int64(e.integer(EnvMaxInlineSize, int(def.MaxInlineSize))),
	}
}

// env resolves a key from the process environment, then the .env values.
type env struct {
	dotenv map[string]string
}

func (e env) get(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return e.dotenv[key]
}

func (e env) boolean(key string, fallback bool) bool {
	v := e.get(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func (e env) integer(key string, fallback int) int {
	v := e.get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func (e env) duration(key string, fallback time.Duration) time.Duration {
	v := e.get(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func (e env) oneOf(key string, allowed []string, fallback string) string {
	v := strings.ToLower(e.get(key))
	if v == "" {
		return fallback
	}
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	slog.Warn("invalid env var, using default", "key", key, "value", v, "allowed", allowed, "default", fallback)
	return fallback
}

// ValidateFormat returns a ConfigError when format is not an accepted output
// format.
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if format == f {
			return nil
		}
	}
	return &oaserrors.ConfigError{
		Option:  "format",
		Value:   format,
		Message: fmt.Sprintf("must be one of %s", strings.Join(Formats, ", ")),
	}
}
