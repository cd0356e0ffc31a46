// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient whose transport is instrumented with
// OpenTelemetry. Spans go to the global tracer provider installed by
// telemetry.NewTracing, or nowhere when tracing is disabled.
//
// Each call returns an independent client with its own configuration,
// connection pool and state.
func NewHTTPClient() *HTTPClient {
	transport := otelhttp.NewTransport(http.DefaultTransport.(*http.Transport).Clone())

	return &HTTPClient{Client: resty.New().SetTransport(transport)}
}
