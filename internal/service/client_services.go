// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-car-dealer/internal/adapter"
	"github.com/MKhiriev/go-car-dealer/internal/config"
	"github.com/MKhiriev/go-car-dealer/internal/logger"
	"github.com/MKhiriev/go-car-dealer/internal/store"
)

type ClientServices struct {
	CatalogService CatalogService
	HistoryService HistoryService
}

// NewClientServices wires the client services. storages may be nil, in which
// case history is disabled.
func NewClientServices(
	storages *store.ClientStorages,
	vehicleAdapter adapter.VehicleAdapter,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	var lookups store.LookupRepository
	if storages != nil {
		lookups = storages.LookupRepository
	}

	return &ClientServices{
		CatalogService: NewClientCatalogService(vehicleAdapter, cfg.App, cfg.Adapter.VehicleType, logger),
		HistoryService: NewClientHistoryService(lookups, cfg.App.HistorySize, logger),
	}
}
