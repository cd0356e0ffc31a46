// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-car-dealer/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// CatalogService defines the client-side contract for browsing the vPIC
// catalog: the brand list, the year range and the models of one brand/year
// pair.
type CatalogService interface {
	// Brands loads every brand of the configured vehicle type. It never
	// fails: transport and decoding errors are logged and an empty slice is
	// returned.
	Brands(ctx context.Context) []models.Brand

	// Models loads the models of brandID for year. Both arguments must be
	// non-empty, otherwise ErrIncompleteSelection is returned without a
	// request being made. A response without results yields an empty slice.
	Models(ctx context.Context, brandID, year string) ([]models.Model, error)

	// YearOptions returns every model year from the configured first year
	// through the current calendar year, ascending.
	YearOptions() []int

	// ModelsQueryURL returns the raw API URL Models would query for the
	// given pair.
	ModelsQueryURL(brandID, year string) string
}

// HistoryService defines the contract for the local history of successful
// model lookups.
type HistoryService interface {
	// Record persists one lookup. LookedUpAt is set to the current time when
	// zero.
	Record(ctx context.Context, lookup models.Lookup) error

	// Recent returns at most limit lookups, newest first. A non-positive
	// limit falls back to the configured history size.
	// Returns ErrHistoryDisabled when no store is available.
	Recent(ctx context.Context, limit int) ([]models.Lookup, error)

	// Enabled reports whether lookups are actually persisted.
	Enabled() bool
}
