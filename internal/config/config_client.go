// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds selection form settings.
type ClientApp struct {
	// FirstYear is the earliest model year in the year picker.
	FirstYear int
	// HistorySize is the number of recent lookups shown.
	HistorySize int
}

// ClientAdapter holds network settings of the vPIC client.
type ClientAdapter struct {
	// BaseURL is the vPIC vehicles API root.
	BaseURL string
	// RequestTimeout is the timeout of a single outbound request.
	RequestTimeout time.Duration
	// VehicleType is the vPIC vehicle type of the brand list.
	VehicleType string
	// RateLimit is the outbound request rate in requests per second.
	RateLimit float64
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string of the history database.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientLog contains logger settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Log     ClientLog
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			FirstYear:   cfg.App.FirstYear,
			HistorySize: cfg.App.HistorySize,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			VehicleType:    cfg.Adapter.VehicleType,
			RateLimit:      cfg.Adapter.RateLimit,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}
}
