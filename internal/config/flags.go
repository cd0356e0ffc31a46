// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses command-line arguments into a partial [StructuredConfig].
//
// Flags:
//
//	-api vPIC vehicles API base URL
//	-request-timeout outbound request timeout (e.g. "15s")
//	-vehicle-type vPIC vehicle type for the brand list
//	-rate-limit outbound requests per second
//	-d history database DSN
//	-first-year first model year offered
//	-history-size number of recent lookups shown
//	-log-file log file path
//	-log-level log level
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		baseURL        string
		requestTimeout time.Duration
		vehicleType    string
		rateLimit      float64
		databaseDSN    string
		firstYear      int
		historySize    int
		logFile        string
		logLevel       string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("cardealer", flag.ContinueOnError)
	fs.StringVar(&baseURL, "api", "", "vPIC vehicles API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&vehicleType, "vehicle-type", "", "vPIC vehicle type for the brand list")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Outbound requests per second")
	fs.StringVar(&databaseDSN, "d", "", "History database DSN")
	fs.IntVar(&firstYear, "first-year", 0, "First model year offered")
	fs.IntVar(&historySize, "history-size", 0, "Number of recent lookups shown")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			FirstYear:   firstYear,
			HistorySize: historySize,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
			VehicleType:    vehicleType,
			RateLimit:      rateLimit,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
