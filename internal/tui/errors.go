// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-car-dealer/internal/service"
)

// modelsErrorText replaces the model list whenever a fetch fails, whatever
// the cause.
const modelsErrorText = "Err."

func humanizeHistoryError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrHistoryDisabled) {
		return "History is disabled: the local database could not be opened."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "database is locked") || strings.Contains(s, "busy") {
		return "History database is busy, try again."
	}

	return err.Error()
}
