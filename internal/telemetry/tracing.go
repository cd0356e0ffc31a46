// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package telemetry installs the process-wide OpenTelemetry trace provider
// that the instrumented vPIC HTTP client reports to.
package telemetry

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"github.com/MKhiriev/go-car-dealer/internal/logger"
)

const (
	// EndpointEnv enables tracing when set. The exporter reads the rest of
	// the standard OTEL_EXPORTER_OTLP_* variables itself.
	EndpointEnv    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	serviceNameEnv = "OTEL_SERVICE_NAME"
)

// Tracing owns the trace provider installed by NewTracing. A Tracing with no
// provider is disabled and every method on it is a no-op.
type Tracing struct {
	provider *sdktrace.TracerProvider
}

// NewTracing exports spans over OTLP/HTTP when OTEL_EXPORTER_OTLP_ENDPOINT is
// set, and leaves the global no-op provider in place otherwise.
//
// When enabled it sets the global tracer provider, the W3C trace-context
// propagator and an error handler that writes to log instead of stderr,
// which belongs to the TUI.
func NewTracing(ctx context.Context, serviceName, version string, log *logger.Logger) (*Tracing, error) {
	if os.Getenv(EndpointEnv) == "" {
		return &Tracing{}, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	if name := os.Getenv(serviceNameEnv); name != "" {
		serviceName = name
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(version),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		log.Warn().Err(err).Str("func", "telemetry.errorHandler").Msg("opentelemetry error")
	}))
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Tracing{provider: provider}, nil
}

// Enabled reports whether spans are being exported.
func (t *Tracing) Enabled() bool {
	return t != nil && t.provider != nil
}

// Shutdown flushes pending spans and stops the exporter.
func (t *Tracing) Shutdown(ctx context.Context) error {
	if !t.Enabled() {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
