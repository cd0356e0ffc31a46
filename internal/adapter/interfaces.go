// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer to the NHTSA vPIC vehicles
// API.
//
// The primary abstraction is [VehicleAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation built on resty ([NewHTTPVehicleAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404). Responses whose "Results" field has an unexpected shape are reported
// as [ErrMalformedResponse].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-car-dealer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vehicle_adapter_mock.go -package=mock

// VehicleAdapter defines communication with the vPIC vehicles API.
type VehicleAdapter interface {
	// GetMakes lists all makes registered for vehicleType
	// (GET /GetMakesForVehicleType/{type}). A response without a "Results"
	// array is reported as [ErrMalformedResponse].
	GetMakes(ctx context.Context, vehicleType string) ([]models.Brand, error)

	// GetModels lists the models of makeID for the model year
	// (GET /GetModelsForMakeIdYear/makeId/{makeId}/modelyear/{year}).
	// A response without "Results" yields an empty, non-nil slice; a
	// non-array "Results" is reported as [ErrMalformedResponse].
	GetModels(ctx context.Context, makeID, year string) ([]models.Model, error)

	// ModelsURL returns the absolute URL GetModels would query for makeID and
	// year, including the format parameter.
	ModelsURL(makeID, year string) string
}
