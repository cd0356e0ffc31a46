// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-car-dealer/models"
)

// FindBrandID looks name up in brands by exact equality. ok is true only
// when exactly one brand carries that name; id is empty otherwise.
func FindBrandID(brands []models.Brand, name string) (id string, ok bool) {
	if name == "" {
		return "", false
	}

	matches := 0
	for _, b := range brands {
		if b.Name != name {
			continue
		}
		matches++
		id = b.IDString()
	}

	if matches != 1 {
		return "", false
	}
	return id, true
}

// YearRange returns [first, now.Year()] inclusive. The result is empty when
// first is after the current year.
func YearRange(first int, now time.Time) []int {
	last := now.Year()
	if first > last {
		return []int{}
	}

	years := make([]int, 0, last-first+1)
	for y := first; y <= last; y++ {
		years = append(years, y)
	}
	return years
}
