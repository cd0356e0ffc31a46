// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-car-dealer/internal/logger"
	"github.com/MKhiriev/go-car-dealer/internal/store"
	"github.com/MKhiriev/go-car-dealer/models"
)

const defaultHistorySize = 10

type clientHistoryService struct {
	repo store.LookupRepository
	size int
	now  func() time.Time

	logger *logger.Logger
}

// NewClientHistoryService creates a [HistoryService] over repo. A nil repo
// yields a service that drops every lookup and reports [ErrHistoryDisabled]
// from Recent.
func NewClientHistoryService(repo store.LookupRepository, size int, logger *logger.Logger) HistoryService {
	if size <= 0 {
		size = defaultHistorySize
	}

	return &clientHistoryService{
		repo:   repo,
		size:   size,
		now:    time.Now,
		logger: logger,
	}
}

func (s *clientHistoryService) Enabled() bool {
	return s.repo != nil
}

func (s *clientHistoryService) Record(ctx context.Context, lookup models.Lookup) error {
	if s.repo == nil {
		return nil
	}

	if lookup.LookedUpAt.IsZero() {
		lookup.LookedUpAt = s.now()
	}

	id, err := s.repo.SaveLookup(ctx, lookup)
	if err != nil {
		s.logger.Err(err).
			Str("func", "clientHistoryService.Record").
			Str("brand_id", lookup.BrandID).
			Str("year", lookup.Year).
			Msg("failed to record lookup")
		return fmt.Errorf("record lookup: %w", err)
	}

	s.logger.Debug().
		Str("func", "clientHistoryService.Record").
		Int64("lookup_id", id).
		Msg("lookup recorded")
	return nil
}

func (s *clientHistoryService) Recent(ctx context.Context, limit int) ([]models.Lookup, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}

	if limit <= 0 {
		limit = s.size
	}

	lookups, err := s.repo.RecentLookups(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load recent lookups: %w", err)
	}
	return lookups, nil
}
