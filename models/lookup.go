// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Lookup is one successful model query kept in the local history.
type Lookup struct {
	ID          int64     `json:"id"`
	BrandID     string    `json:"brand_id"`
	BrandName   string    `json:"brand_name"`
	Year        string    `json:"year"`
	ModelsCount int       `json:"models_count"`
	LookedUpAt  time.Time `json:"looked_up_at"`
}
