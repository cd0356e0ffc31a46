// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-car-dealer/internal/config"
	"github.com/MKhiriev/go-car-dealer/internal/logger"
	"github.com/MKhiriev/go-car-dealer/internal/utils"
	"github.com/MKhiriev/go-car-dealer/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	makesPath  = "/GetMakesForVehicleType/{type}"
	modelsPath = "/GetModelsForMakeIdYear/makeId/{makeId}/modelyear/{year}"

	requestIDHeader = "X-Request-ID"
)

type httpVehicleAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	limiter *rate.Limiter
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPVehicleAdapter constructs the resty implementation of
// [VehicleAdapter]. It normalises the base URL from cfg.BaseURL, applies the
// request timeout and the "format=json" query parameter to every request, and
// limits outbound requests to cfg.RateLimit per second.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPVehicleAdapter(cfg config.ClientAdapter, logger *logger.Logger) (VehicleAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		SetQueryParam("format", "json")

	return &httpVehicleAdapter{
		client:  client,
		baseURL: baseURL,
		limiter: newLimiter(cfg.RateLimit),
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func newLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}

	burst := int(math.Ceil(perSecond))
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// GetMakes implements [VehicleAdapter].
func (h *httpVehicleAdapter) GetMakes(ctx context.Context, vehicleType string) ([]models.Brand, error) {
	req, err := h.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetPathParam("type", vehicleType).
		Get(makesPath)
	if err != nil {
		return nil, fmt.Errorf("get makes request: %w", err)
	}
	h.logResponse(ctx, resp, "get makes")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	brands, err := decodeResults[models.Brand](resp.Body(), true)
	if err != nil {
		return nil, fmt.Errorf("decode makes response: %w", err)
	}

	return brands, nil
}

// GetModels implements [VehicleAdapter].
func (h *httpVehicleAdapter) GetModels(ctx context.Context, makeID, year string) ([]models.Model, error) {
	req, err := h.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetPathParams(map[string]string{
			"makeId": makeID,
			"year":   year,
		}).
		Get(modelsPath)
	if err != nil {
		return nil, fmt.Errorf("get models request: %w", err)
	}
	h.logResponse(ctx, resp, "get models")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	vehicleModels, err := decodeResults[models.Model](resp.Body(), false)
	if err != nil {
		return nil, fmt.Errorf("decode models response: %w", err)
	}

	return vehicleModels, nil
}

// ModelsURL implements [VehicleAdapter].
func (h *httpVehicleAdapter) ModelsURL(makeID, year string) string {
	path := strings.NewReplacer(
		"{makeId}", url.PathEscape(makeID),
		"{year}", url.PathEscape(year),
	).Replace(modelsPath)

	return h.baseURL + path + "?format=json"
}

// newRequest waits for the rate limiter and returns a request bound to ctx
// and tagged with the request id from ctx, or a fresh one.
func (h *httpVehicleAdapter) newRequest(ctx context.Context) (*resty.Request, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID), nil
}

// logResponse logs through the request logger the caller attached to ctx.
// Without one it falls back to the adapter logger tagged with the request id
// that was sent.
func (h *httpVehicleAdapter) logResponse(ctx context.Context, resp *resty.Response, op string) {
	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled {
		log = h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", resp.Request.Header.Get(requestIDHeader))
		})
	}

	log.Debug().
		Str("func", "httpVehicleAdapter.logResponse").
		Str("op", op).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("vpic response")
}
