// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-car-dealer/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LookupRepository persists the history of successful model lookups.
type LookupRepository interface {
	// SaveLookup inserts one lookup and returns its generated id.
	SaveLookup(ctx context.Context, lookup models.Lookup) (int64, error)

	// RecentLookups returns at most limit lookups, newest first.
	RecentLookups(ctx context.Context, limit int) ([]models.Lookup, error)
}
