// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends for the saved-trips slot.
const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Search cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// StorageBackend selects where the trip list is persisted:
	// file (default), memory, postgres or redis.
	StorageBackend string

	// DataDir is the directory the file backend writes to. Defaults to "data".
	DataDir string

	// DatabaseURL is the Postgres connection string. Required for the postgres backend.
	DatabaseURL string

	// RedisAddr is used by the redis backend and the redis search cache.
	RedisAddr string

	// SlotKey names the persisted slot. Defaults to "savedTrips".
	SlotKey string

	SearchCache    string
	SearchCacheTTL time.Duration
	SearchDebounce time.Duration
	// SearchRateLimit is directory searches per second.
	SearchRateLimit float64

	// RemoteAPIURL enables the /remote endpoints when set.
	RemoteAPIURL string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// UsesRedis reports whether any configured component needs a Redis client.
func (c Config) UsesRedis() bool {
	return c.StorageBackend == StorageRedis || c.SearchCache == CacheRedis
}

// LoadDotEnv reads KEY=VALUE pairs from the given files (".env" when none are
// named) into the environment. Variables already set win, and missing files
// are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config.LoadDotEnv: %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing every required variable that is not set and every
// value that cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageFile)),
		DataDir:        getEnv("DATA_DIR", "data"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		SlotKey:        getEnv("SLOT_KEY", "savedTrips"),
		SearchCache:    strings.ToLower(getEnv("SEARCH_CACHE", CacheMemory)),
		RemoteAPIURL:   os.Getenv("REMOTE_API_URL"),
	}

	var missing, invalid []string

	switch cfg.StorageBackend {
	case StorageFile, StorageMemory, StorageRedis:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	default:
		invalid = append(invalid, "STORAGE_BACKEND")
	}

	switch cfg.SearchCache {
	case CacheMemory, CacheRedis:
	default:
		invalid = append(invalid, "SEARCH_CACHE")
	}

	var err error
	if cfg.SearchCacheTTL, err = getDuration("SEARCH_CACHE_TTL", 10*time.Minute); err != nil {
		invalid = append(invalid, "SEARCH_CACHE_TTL")
	}
	if cfg.SearchDebounce, err = getDuration("SEARCH_DEBOUNCE", 500*time.Millisecond); err != nil {
		invalid = append(invalid, "SEARCH_DEBOUNCE")
	}
	if cfg.SearchRateLimit, err = strconv.ParseFloat(getEnv("SEARCH_RATE_LIMIT", "5"), 64); err != nil || cfg.SearchRateLimit <= 0 {
		invalid = append(invalid, "SEARCH_RATE_LIMIT")
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil || cfg.MaxBodyBytes <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, "required environment variables not set: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		problems = append(problems, "invalid environment variables: "+strings.Join(invalid, ", "))
	}
	if len(problems) > 0 {
		return Config{}, errors.New(strings.Join(problems, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
