// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"

	"github.com/okian/varsity/internal/domain/scoring"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// StoreDriver selects the persistence backend: "memory" or "sqlite".
	StoreDriver string `koanf:"store_driver"`

	// StorePath is the sqlite database file, used when StoreDriver is "sqlite".
	StorePath string `koanf:"store_path"`

	// StoreNamespace prefixes every persisted key.
	StoreNamespace string `koanf:"store_namespace"`

	// MaxRosterLimit caps GET /discover and /athletes result sizes.
	MaxRosterLimit int `koanf:"max_roster_limit"`

	// ActivityFeedSize bounds the in-memory recent-activity feed.
	ActivityFeedSize int `koanf:"activity_feed_size"`

	// RetentionWeights reweights the five retention factors. The
	// weights must sum to 1.0; Load rejects any other total.
	RetentionWeights scoring.Weights `koanf:"retention_weights"`
}

// Store driver names accepted by StoreDriver.
const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
)

// New creates a Config with defaults. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use
// and currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		StoreDriver:      StoreDriverMemory,
		StorePath:        "varsity.db",
		StoreNamespace:   "varsity",
		MaxRosterLimit:   100,
		ActivityFeedSize: 50,
		RetentionWeights: scoring.DefaultWeights(),
	}
}
