// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Selection is the brand/year choice held by the selection screen.
//
// BrandID is derived from BrandName against the fetched brand list and stays
// empty unless BrandName matches exactly one brand. Year is stored as picked.
type Selection struct {
	BrandName string
	BrandID   string
	Year      string
}

// Ready reports whether both a brand identifier and a year are chosen.
func (s Selection) Ready() bool {
	return s.BrandID != "" && s.Year != ""
}
