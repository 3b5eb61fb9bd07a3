// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Store driver names accepted by StoreDriver.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// WorkerCount sets the number of season-sweep workers.
	WorkerCount int `koanf:"worker_count"`

	// Seed is the base seed for retirement draws and draft generation.
	// The per-season stream folds in the season number.
	Seed int64 `koanf:"seed"`

	// ProfilePath points at a YAML position-profile file. Empty uses the
	// stock league set.
	ProfilePath string `koanf:"profile_path"`

	// StoreDriver selects the player store: memory, sqlite, or postgres.
	StoreDriver string `koanf:"store_driver"`

	// StoreDSN is the database DSN for sqlite/postgres stores.
	StoreDSN string `koanf:"store_dsn"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// DraftClassCounts overrides prospects generated per position code.
	DraftClassCounts map[string]int `koanf:"draft_class_counts"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":8090",
		WorkerCount:         runtime.NumCPU() * 2,
		Seed:                42,
		StoreDriver:         StoreMemory,
		StoreDSN:            "gridiron.db",
		MaxLeaderboardLimit: 100,
	}
}
