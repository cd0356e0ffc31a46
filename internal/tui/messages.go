// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-car-dealer/models"
)

type brandsLoadedMsg struct {
	brands []models.Brand
}

// modelsLoadedMsg carries the tag of the fetch that produced it so the viewer
// can drop results of superseded requests.
type modelsLoadedMsg struct {
	seq     uint64
	brandID string
	year    string
	models  []models.Model
	err     error
}

type lookupRecordedMsg struct {
	err error
}

type historyLoadedMsg struct {
	lookups []models.Lookup
	err     error
}

type urlCopiedMsg struct {
	url string
	err error
}
