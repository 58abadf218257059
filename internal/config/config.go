// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-temp-share server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the reported version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the in-memory upload registry.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the server version reported by GET /api/version/.
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// Registry holds the upload registry settings.
	Registry Registry `envPrefix:"REGISTRY_"`
}

// Registry configures the in-memory upload registry.
type Registry struct {
	// LifetimeMinutes is the fixed time in minutes after which an uploaded
	// batch becomes irretrievable.
	LifetimeMinutes int `env:"LIFETIME_MINUTES"`

	// MaxUploadBytes caps the size of a single upload request body.
	// [NoUploadLimit] disables the cap.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`

	// StrictIDs makes the registry retry id generation instead of silently
	// replacing a batch that already holds the drawn id.
	StrictIDs bool `env:"STRICT_IDS"`
}

// Lifetime returns LifetimeMinutes as a [time.Duration].
func (r Registry) Lifetime() time.Duration {
	return time.Duration(r.LifetimeMinutes) * time.Minute
}

// Server holds network settings for the HTTP server.
type Server struct {
	// HTTPAddress is the host:port the HTTP server listens on.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a whole request. Uploads use
	// UploadTimeout instead.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UploadTimeout bounds reading an upload body, counted from the moment
	// the upload handler starts.
	UploadTimeout time.Duration `env:"UPLOAD_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// StatsInterval is how often the registry stats reporter logs.
	StatsInterval time.Duration `env:"STATS_INTERVAL"`
}

// GetStructuredConfig loads the server configuration from environment
// variables, command-line flags, an optional JSON file and defaults, then
// validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
