// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds selection form settings.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the vPIC API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the lookup history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logger output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings of the selection form itself.
type App struct {
	// FirstYear is the earliest model year offered in the year picker.
	// Env: APP_FIRST_YEAR
	FirstYear int `env:"FIRST_YEAR"`

	// HistorySize is how many recent lookups the history overlay shows.
	// Env: APP_HISTORY_SIZE
	HistorySize int `env:"HISTORY_SIZE"`
}

// Adapter holds settings of the outbound vPIC API client.
type Adapter struct {
	// BaseURL is the vPIC vehicles API root
	// (e.g. "https://vpic.nhtsa.dot.gov/api/vehicles").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// VehicleType is the vPIC vehicle type whose makes are listed.
	// Env: ADAPTER_VEHICLE_TYPE
	VehicleType string `env:"VEHICLE_TYPE"`

	// RateLimit is the maximum number of outbound requests per second. Zero
	// means unset and falls back to DefaultRateLimit.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the SQLite history database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite history database.
type DB struct {
	// DSN is the SQLite database file path or DSN.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds logger settings.
type Log struct {
	// File is the path of the JSON log file. The terminal belongs to the TUI,
	// so logs never go to stdout unless the file cannot be opened.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// See the package documentation for precedence.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
