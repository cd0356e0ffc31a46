// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstNonZeroWins verifies that an earlier source keeps its value
// and later sources only fill the gaps.
func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{VehicleType: "truck"}},
		&StructuredConfig{Adapter: Adapter{VehicleType: "car", BaseURL: "http://flags"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "truck", cfg.Adapter.VehicleType)
	assert.Equal(t, "http://flags", cfg.Adapter.BaseURL)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsEverything(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultVehicleType, cfg.Adapter.VehicleType)
	assert.InDelta(t, float64(DefaultRateLimit), cfg.Adapter.RateLimit, 0.0001)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultFirstYear, cfg.App.FirstYear)
	assert.Equal(t, DefaultHistorySize, cfg.App.HistorySize)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

// TestWithDefaults_ZeroRateLimitIsUnset verifies that a zero rate limit is
// treated as unset, so the outbound limiter is always active.
func TestWithDefaults_ZeroRateLimitIsUnset(t *testing.T) {
	cfg, err := newConfigBuilder().
		withFlagArgs([]string{"-rate-limit", "0"}).
		withDefaults().
		build()
	require.NoError(t, err)

	assert.InDelta(t, float64(DefaultRateLimit), cfg.Adapter.RateLimit, 0.0001)
}

// ── withFlagArgs / withJSON ───────────────────────────────────────────────────

func TestWithFlagArgs_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlagArgs([]string{"-nope"})

	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NotSpecified_NoOp(t *testing.T) {
	b := newConfigBuilder().withFlagArgs(nil).withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"adapter": {"vehicle_type": "bus", "request_timeout": "3s"}}`), 0o600))

	cfg, err := newConfigBuilder().
		withFlagArgs([]string{"-c", path, "-vehicle-type", "truck"}).
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	// flags beat the file, the file beats defaults
	assert.Equal(t, "truck", cfg.Adapter.VehicleType)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder().
		withFlagArgs([]string{"-c", filepath.Join(t.TempDir(), "missing.json")}).
		withJSON()

	require.Error(t, b.err)
}

func TestBuilder_EnvBeatsFlags(t *testing.T) {
	t.Setenv("ADAPTER_VEHICLE_TYPE", "motorcycle")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlagArgs([]string{"-vehicle-type", "truck"}).
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "motorcycle", cfg.Adapter.VehicleType)
}
