// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-car-dealer/internal/logger"
	"github.com/MKhiriev/go-car-dealer/internal/tui"
)

type App struct {
	ui        UI
	resources Resources
	logger    *logger.Logger
}

func NewApp(ui UI, resources Resources, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is nil")
	}

	return &App{
		ui:        ui,
		resources: resources,
		logger:    logger,
	}, nil
}

// Run shows the UI and closes the resources afterwards. Quitting from the UI
// and cancelling ctx are both a normal exit.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if a.resources == nil {
			return
		}
		if closeErr := a.resources.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "App.Run").Msg("failed to close local storage")
			if err == nil {
				err = fmt.Errorf("close resources: %w", closeErr)
			}
		}
	}()

	a.logger.Info().Str("func", "App.Run").Msg("client started")

	err = a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Str("func", "App.Run").Msg("client stopped by user")
		return nil
	case errors.Is(err, context.Canceled):
		a.logger.Info().Str("func", "App.Run").Msg("client interrupted")
		return nil
	default:
		return fmt.Errorf("ui: %w", err)
	}
}
