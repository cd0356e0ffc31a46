// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-car-dealer/internal/logger"
	"github.com/MKhiriev/go-car-dealer/models"
)

type lookupRepository struct {
	*DB
	logger *logger.Logger
}

func NewLookupRepository(db *DB, logger *logger.Logger) LookupRepository {
	return &lookupRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *lookupRepository) SaveLookup(ctx context.Context, lookup models.Lookup) (int64, error) {
	query, args, err := buildInsertLookupQuery(lookup)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		l.logger.Err(err).
			Str("func", "lookupRepository.SaveLookup").
			Str("brand_id", lookup.BrandID).
			Str("year", lookup.Year).
			Msg("failed to insert lookup")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return 0, ErrLookupNotSaved
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read lookup id: %w", err)
	}

	return id, nil
}

func (l *lookupRepository) RecentLookups(ctx context.Context, limit int) ([]models.Lookup, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	query, args, err := buildRecentLookupsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		l.logger.Err(err).
			Str("func", "lookupRepository.RecentLookups").
			Int("limit", limit).
			Msg("failed to query recent lookups")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lookups := make([]models.Lookup, 0, limit)
	for rows.Next() {
		var item models.Lookup
		if scanErr := rows.Scan(
			&item.ID,
			&item.BrandID,
			&item.BrandName,
			&item.Year,
			&item.ModelsCount,
			&item.LookedUpAt,
		); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		lookups = append(lookups, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return lookups, nil
}
