// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-car-dealer/models"
)

const lookupsTable = "lookups"

var (
	lookupColumns = []string{
		"id",
		"brand_id",
		"brand_name",
		"year",
		"models_count",
		"looked_up_at",
	}

	// SQLite uses "?" placeholders.
	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func buildInsertLookupQuery(lookup models.Lookup) (string, []any, error) {
	return sqlite.
		Insert(lookupsTable).
		Columns("brand_id", "brand_name", "year", "models_count", "looked_up_at").
		Values(lookup.BrandID, lookup.BrandName, lookup.Year, lookup.ModelsCount, lookup.LookedUpAt.UTC()).
		ToSql()
}

func buildRecentLookupsQuery(limit int) (string, []any, error) {
	return sqlite.
		Select(lookupColumns...).
		From(lookupsTable).
		OrderBy("looked_up_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
}
