// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultBaseURL        = "https://vpic.nhtsa.dot.gov/api/vehicles"
	DefaultRequestTimeout = 15 * time.Second
	DefaultVehicleType    = "car"
	DefaultRateLimit      = 5
	DefaultDSN            = "cardealer.db"
	DefaultFirstYear      = 2013
	DefaultHistorySize    = 10
	DefaultLogLevel       = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			FirstYear:   DefaultFirstYear,
			HistorySize: DefaultHistorySize,
		},
		Adapter: Adapter{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
			VehicleType:    DefaultVehicleType,
			RateLimit:      DefaultRateLimit,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Log: Log{Level: DefaultLogLevel},
	}
}
