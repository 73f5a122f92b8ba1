// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the horizon
// client. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local key-value store and the
	// search history kept in it.
	Storage Storage `envPrefix:"STORAGE_"`

	// Search holds the simulated latencies of the search pipeline.
	Search Search `envPrefix:"SEARCH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogFile is the file the client appends its logs to. Empty means a
	// "logs" file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is the semantic version string shown on the about window.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the local persistence layer.
type Storage struct {
	// DB holds the key-value database settings.
	DB DB `envPrefix:"DB_"`

	// History holds the search history settings.
	History History `envPrefix:"HISTORY_"`
}

// DB holds connection settings for the local key-value database.
type DB struct {
	// DSN is the SQLite file path. The special value "memory" selects the
	// in-process store that is lost on exit.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// History holds the settings of the search history list.
type History struct {
	// Key is the key under which the JSON-encoded history is stored.
	// Env: STORAGE_HISTORY_KEY
	Key string `env:"KEY"`

	// Limit is the maximum number of records kept, newest first.
	// Env: STORAGE_HISTORY_LIMIT
	Limit int `env:"LIMIT"`
}

// Search holds the simulated network round trips of the search pipeline.
type Search struct {
	// SubmitLatency is the delay between a valid submission and navigation
	// to the profile screen.
	// Env: SEARCH_SUBMIT_LATENCY
	SubmitLatency time.Duration `env:"SUBMIT_LATENCY"`

	// ProfileLatency is the delay of the mock profile provider.
	// Env: SEARCH_PROFILE_LATENCY
	ProfileLatency time.Duration `env:"PROFILE_LATENCY"`
}

// Default values applied before any other source.
const (
	DefaultDSN            = "horizon.db"
	DefaultHistoryKey     = "searchHistory"
	DefaultHistoryLimit   = 10
	DefaultSubmitLatency  = 1500 * time.Millisecond
	DefaultProfileLatency = 2000 * time.Millisecond
)

// defaultConfig returns the baseline configuration.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB:      DB{DSN: DefaultDSN},
			History: History{Key: DefaultHistoryKey, Limit: DefaultHistoryLimit},
		},
		Search: Search{
			SubmitLatency:  DefaultSubmitLatency,
			ProfileLatency: DefaultProfileLatency,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
