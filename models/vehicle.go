// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// VehicleTypeCar is the vPIC vehicle type whose makes are offered in the
// brand picker.
const VehicleTypeCar = "car"

// Brand is a vehicle manufacturer ("make" in vPIC terms) as returned by
// GET /GetMakesForVehicleType/{type}.
type Brand struct {
	ID   int64  `json:"MakeId"`
	Name string `json:"MakeName"`
}

// IDString returns the brand identifier in the form used by the selection
// state and the models endpoint path.
func (b Brand) IDString() string {
	return strconv.FormatInt(b.ID, 10)
}

// Model is a vehicle model entry returned by
// GET /GetModelsForMakeIdYear/makeId/{makeId}/modelyear/{year}.
type Model struct {
	ID       int64  `json:"Model_ID"`
	Name     string `json:"Model_Name"`
	MakeID   int64  `json:"Make_ID,omitempty"`
	MakeName string `json:"Make_Name,omitempty"`
}
