// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-car-dealer/internal/adapter"
	"github.com/MKhiriev/go-car-dealer/internal/config"
	"github.com/MKhiriev/go-car-dealer/internal/logger"
	"github.com/MKhiriev/go-car-dealer/internal/utils"
	"github.com/MKhiriev/go-car-dealer/models"
	"github.com/rs/zerolog"
)

type clientCatalogService struct {
	vehicleAdapter adapter.VehicleAdapter

	vehicleType string
	firstYear   int
	now         func() time.Time

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewClientCatalogService creates a [CatalogService] backed by vehicleAdapter.
// An empty vehicle type falls back to [models.VehicleTypeCar].
func NewClientCatalogService(
	vehicleAdapter adapter.VehicleAdapter,
	appCfg config.ClientApp,
	vehicleType string,
	logger *logger.Logger,
) CatalogService {
	if vehicleType == "" {
		vehicleType = models.VehicleTypeCar
	}

	return &clientCatalogService{
		vehicleAdapter: vehicleAdapter,
		vehicleType:    vehicleType,
		firstYear:      appCfg.FirstYear,
		now:            time.Now,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// withRequest tags ctx with a fresh request id and a child logger carrying
// it, so the adapter logs under the same id.
func (s *clientCatalogService) withRequest(ctx context.Context) (context.Context, *logger.Logger) {
	requestID := s.ids.Generate()

	l := s.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", requestID)
	})

	ctx = utils.WithRequestID(ctx, requestID)
	return l.WithContext(ctx), l
}

func (s *clientCatalogService) Brands(ctx context.Context) []models.Brand {
	ctx, log := s.withRequest(ctx)

	brands, err := s.vehicleAdapter.GetMakes(ctx, s.vehicleType)
	if err != nil {
		log.Err(err).
			Str("func", "clientCatalogService.Brands").
			Str("vehicle_type", s.vehicleType).
			Msg("failed to load brands, continuing with an empty list")
		return []models.Brand{}
	}

	if brands == nil {
		brands = []models.Brand{}
	}
	log.Debug().
		Str("func", "clientCatalogService.Brands").
		Int("count", len(brands)).
		Msg("brands loaded")

	return brands
}

func (s *clientCatalogService) Models(ctx context.Context, brandID, year string) ([]models.Model, error) {
	if brandID == "" || year == "" {
		return nil, ErrIncompleteSelection
	}

	ctx, log := s.withRequest(ctx)

	vehicleModels, err := s.vehicleAdapter.GetModels(ctx, brandID, year)
	if err != nil {
		log.Err(err).
			Str("func", "clientCatalogService.Models").
			Str("brand_id", brandID).
			Str("year", year).
			Msg("failed to load models")
		return nil, fmt.Errorf("load models for brand %s year %s: %w", brandID, year, err)
	}

	if vehicleModels == nil {
		vehicleModels = []models.Model{}
	}
	return vehicleModels, nil
}

func (s *clientCatalogService) YearOptions() []int {
	return YearRange(s.firstYear, s.now())
}

func (s *clientCatalogService) ModelsQueryURL(brandID, year string) string {
	return s.vehicleAdapter.ModelsURL(brandID, year)
}
