// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Only the HTTP port and the snapshot source are needed to boot. PostgreSQL,
Redis, the places provider and the admin API are each switched on by setting
their variables.
*/
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Snapshot sources understood by [Config.SnapshotSource].
const (
	SourceSeed     = "seed"
	SourcePostgres = "postgres"
)

// # Configuration Schema

// Config holds all runtime configuration for the directory API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// SnapshotSource selects where artist records are loaded from: seed or postgres.
	SnapshotSource string `env:"SNAPSHOT_SOURCE" envDefault:"seed"`

	// Relational Database (PostgreSQL). Required when SnapshotSource is postgres.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis). Enables response and places caching when set.
	RedisURL string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// External places provider
	PlacesAPIKey   string        `env:"PLACES_API_KEY"`
	PlacesEndpoint string        `env:"PLACES_ENDPOINT" envDefault:"https://places.googleapis.com/v1/places:searchText"`
	PlacesTimeout  time.Duration `env:"PLACES_TIMEOUT"  envDefault:"8s"`

	// AdminTokenSecret signs admin JWTs (HS256). Admin routes are disabled when empty.
	AdminTokenSecret string `env:"ADMIN_TOKEN_SECRET"`

	// NewJoinerSince is the cut-off date for the "New Joiners" quick filter.
	NewJoinerSince string `env:"NEW_JOINER_SINCE" envDefault:"2023-01-01"`

	// Per-IP token bucket
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"50"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"100"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// validate runs the cross-field checks that struct tags cannot express.
func (c *Config) validate() error {
	switch c.SnapshotSource {
	case SourceSeed:
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when SNAPSHOT_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("unknown SNAPSHOT_SOURCE %q", c.SnapshotSource)
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	if _, err := time.Parse(time.DateOnly, c.NewJoinerSince); err != nil {
		return fmt.Errorf("NEW_JOINER_SINCE must be YYYY-MM-DD: %w", err)
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// NewJoinerCutoff returns the parsed "New Joiners" cut-off date.
func (c *Config) NewJoinerCutoff() time.Time {
	cutoff, _ := time.Parse(time.DateOnly, c.NewJoinerSince)
	return cutoff
}

// AllowedOrigins returns the comma-separated EXTRA_ORIGINS as a slice.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// UsePostgres reports whether a database connection is needed.
func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}
