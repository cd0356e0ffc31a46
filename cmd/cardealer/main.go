// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-car-dealer/internal/adapter"
	"github.com/MKhiriev/go-car-dealer/internal/client"
	"github.com/MKhiriev/go-car-dealer/internal/config"
	"github.com/MKhiriev/go-car-dealer/internal/logger"
	"github.com/MKhiriev/go-car-dealer/internal/service"
	"github.com/MKhiriev/go-car-dealer/internal/store"
	"github.com/MKhiriev/go-car-dealer/internal/telemetry"
	"github.com/MKhiriev/go-car-dealer/internal/tui"
	"github.com/MKhiriev/go-car-dealer/models"
)

const (
	appName         = "cardealer"
	shutdownTimeout = 5 * time.Second
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger(appName).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(appName, cfg.Log.File, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracing, err := telemetry.NewTracing(ctx, appName, buildVersion, log)
	if err != nil {
		log.Warn().Err(err).Msg("tracing is disabled")
	}

	vehicleAdapter, err := adapter.NewHTTPVehicleAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create vehicle adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Warn().Err(err).Str("dsn", cfg.Storage.DB.DSN).Msg("lookup history is disabled")
		storages = nil
	}

	services := service.NewClientServices(storages, vehicleAdapter, cfg, log)

	buildInfo := models.NewAppBuildInfo(appName, buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = tracing.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("flush traces")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
