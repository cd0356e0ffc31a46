// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

const maxModelYear = 9999

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.BaseURL) == "" ||
		cfg.Adapter.RequestTimeout <= 0 ||
		strings.TrimSpace(cfg.Adapter.VehicleType) == "" ||
		cfg.Adapter.RateLimit < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.FirstYear <= 0 || cfg.App.FirstYear > maxModelYear || cfg.App.HistorySize < 0 {
		return ErrInvalidAppConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}
