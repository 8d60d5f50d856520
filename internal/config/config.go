// Package config loads process configuration from environment variables.
// Connection settings for the active store backend are validated once at
// composition time; a missing setting is fatal at startup, never a
// per-request failure.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Store backend selectors.
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port     int    `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Version  string `envconfig:"VERSION" default:"dev"`

	// StoreBackend selects the storage adapter: "postgres" (relational)
	// or "redis" (document). Decided once per process.
	StoreBackend string `envconfig:"STORE_BACKEND" default:"postgres"`
	DatabaseURL  string `envconfig:"DATABASE_URL"`
	RedisAddr    string `envconfig:"REDIS_ADDR"`

	// JWTSecret enables HS256 signature and expiry verification when set.
	// Unset, tokens are trusted on structure alone.
	JWTSecret string `envconfig:"JWT_SECRET"`

	// AuthExemptPaths are served without a bearer token. "/" matches only
	// exactly; other entries also match their subpaths.
	AuthExemptPaths []string `envconfig:"AUTH_EXEMPT_PATHS" default:"/,/health,/openapi.json,/auth/validate"`
}

// Load reads configuration from environment variables into a Config struct
// and validates the active store backend's settings.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the selected store backend has its connection
// settings.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_BACKEND=%s", BackendPostgres)
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when STORE_BACKEND=%s", BackendRedis)
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q (want %q or %q)", c.StoreBackend, BackendPostgres, BackendRedis)
	}
	return nil
}
