package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/oascheck/validator"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Result limits.
	DefaultLimit  int
	MaxLimit      int
	MaxInlineSize int64

	// Validate tool defaults.
	ValidateStrict        bool
	ValidateNoWarnings    bool
	ValidateVersionPrefix string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASCHECK_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:          envBool("OASCHECK_CACHE_ENABLED", true),
		CacheMaxSize:          envInt("OASCHECK_CACHE_MAX_SIZE", 10),
		CacheFileTTL:          envDuration("OASCHECK_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:       envDuration("OASCHECK_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval:    envDuration("OASCHECK_CACHE_SWEEP_INTERVAL", 60*time.Second),
		DefaultLimit:          envInt("OASCHECK_RESULT_LIMIT", 100),
		MaxLimit:              envInt("OASCHECK_MAX_LIMIT", 1000),
		MaxInlineSize:         int64(envInt("OASCHECK_MAX_INLINE_SIZE", 10*1024*1024)),
		ValidateStrict:        envBool("OASCHECK_STRICT", false),
		ValidateNoWarnings:    envBool("OASCHECK_NO_WARNINGS", false),
		ValidateVersionPrefix: envString("OASCHECK_VERSION_PREFIX", validator.DefaultVersionPrefix),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
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

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
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

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
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
