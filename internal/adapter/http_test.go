// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-car-dealer/internal/config"
	"github.com/MKhiriev/go-car-dealer/internal/logger"
	"github.com/MKhiriev/go-car-dealer/internal/utils"
	"github.com/MKhiriev/go-car-dealer/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVPIC is a minimal vPIC API double routed with chi so path parameters
// are checked the same way the real service parses them.
type fakeVPIC struct {
	makesBody  string
	modelsBody string
	status     int

	gotType      string
	gotMakeID    string
	gotYear      string
	gotFormat    string
	gotRequestID string
	calls        atomic.Int64
}

func (f *fakeVPIC) handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/api/vehicles/GetMakesForVehicleType/{type}", func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.gotType = chi.URLParam(r, "type")
		f.write(w, r, f.makesBody)
	})
	r.Get("/api/vehicles/GetModelsForMakeIdYear/makeId/{makeId}/modelyear/{year}", func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.gotMakeID = chi.URLParam(r, "makeId")
		f.gotYear = chi.URLParam(r, "year")
		f.write(w, r, f.modelsBody)
	})
	return r
}

func (f *fakeVPIC) write(w http.ResponseWriter, r *http.Request, body string) {
	f.gotFormat = r.URL.Query().Get("format")
	f.gotRequestID = r.Header.Get(requestIDHeader)

	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// newTestAdapter creates an httpVehicleAdapter pointed at the fake server.
func newTestAdapter(t *testing.T, fake *fakeVPIC) *httpVehicleAdapter {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	a, err := NewHTTPVehicleAdapter(config.ClientAdapter{
		BaseURL:        srv.URL + "/api/vehicles/",
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpVehicleAdapter)
}

// ── NewHTTPVehicleAdapter ────────────────────────────────────────────────────

func TestNewHTTPVehicleAdapter_EmptyBaseURL(t *testing.T) {
	a, err := NewHTTPVehicleAdapter(config.ClientAdapter{BaseURL: "  "}, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, a)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "https://vpic.nhtsa.dot.gov/api/vehicles", want: "https://vpic.nhtsa.dot.gov/api/vehicles"},
		{name: "trailing slash", raw: "https://vpic.nhtsa.dot.gov/api/vehicles/", want: "https://vpic.nhtsa.dot.gov/api/vehicles"},
		{name: "no scheme", raw: "vpic.nhtsa.dot.gov/api/vehicles", want: "https://vpic.nhtsa.dot.gov/api/vehicles"},
		{name: "plain http kept", raw: "http://localhost:9000", want: "http://localhost:9000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── GetMakes ─────────────────────────────────────────────────────────────────

func TestGetMakes_Success(t *testing.T) {
	fake := &fakeVPIC{makesBody: `{"Count":2,"Message":"Response returned successfully","SearchCriteria":"Vehicle Type: car","Results":[
		{"MakeId":474,"MakeName":"HONDA","VehicleTypeId":2,"VehicleTypeName":"Passenger Car"},
		{"MakeId":460,"MakeName":"FORD","VehicleTypeId":2,"VehicleTypeName":"Passenger Car"}]}`}
	a := newTestAdapter(t, fake)

	got, err := a.GetMakes(context.Background(), models.VehicleTypeCar)

	require.NoError(t, err)
	assert.Equal(t, []models.Brand{{ID: 474, Name: "HONDA"}, {ID: 460, Name: "FORD"}}, got)
	assert.Equal(t, "car", fake.gotType)
	assert.Equal(t, "json", fake.gotFormat)
	assert.NotEmpty(t, fake.gotRequestID)
}

func TestGetMakes_UsesRequestIDFromContext(t *testing.T) {
	fake := &fakeVPIC{makesBody: `{"Results":[]}`}
	a := newTestAdapter(t, fake)

	ctx := utils.WithRequestID(context.Background(), "req-42")
	_, err := a.GetMakes(ctx, models.VehicleTypeCar)

	require.NoError(t, err)
	assert.Equal(t, "req-42", fake.gotRequestID)
}

func TestGetMakes_LogsThroughContextLogger(t *testing.T) {
	fake := &fakeVPIC{makesBody: `{"Results":[]}`}
	a := newTestAdapter(t, fake)

	var buf bytes.Buffer
	reqLog := zerolog.New(&buf).With().Str("request_id", "req-7").Logger()
	ctx := reqLog.WithContext(utils.WithRequestID(context.Background(), "req-7"))

	_, err := a.GetMakes(ctx, models.VehicleTypeCar)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"request_id":"req-7"`)
	assert.Contains(t, buf.String(), `"op":"get makes"`)
}

func TestGetMakes_LogsRequestIDWithoutContextLogger(t *testing.T) {
	fake := &fakeVPIC{makesBody: `{"Results":[]}`}
	a := newTestAdapter(t, fake)

	var buf bytes.Buffer
	a.logger = &logger.Logger{Logger: zerolog.New(&buf)}

	_, err := a.GetMakes(utils.WithRequestID(context.Background(), "req-9"), models.VehicleTypeCar)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"request_id":"req-9"`)
}

func TestGetMakes_ResultsNotArray(t *testing.T) {
	fake := &fakeVPIC{makesBody: `{"Count":1,"Results":{"MakeId":474}}`}
	a := newTestAdapter(t, fake)

	got, err := a.GetMakes(context.Background(), models.VehicleTypeCar)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Nil(t, got)
}

func TestGetMakes_ResultsMissing(t *testing.T) {
	fake := &fakeVPIC{makesBody: `{"Count":0}`}
	a := newTestAdapter(t, fake)

	_, err := a.GetMakes(context.Background(), models.VehicleTypeCar)

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGetMakes_InvalidJSON(t *testing.T) {
	fake := &fakeVPIC{makesBody: `<html>maintenance</html>`}
	a := newTestAdapter(t, fake)

	_, err := a.GetMakes(context.Background(), models.VehicleTypeCar)

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGetMakes_ServerError(t *testing.T) {
	fake := &fakeVPIC{status: http.StatusInternalServerError, makesBody: "boom"}
	a := newTestAdapter(t, fake)

	_, err := a.GetMakes(context.Background(), models.VehicleTypeCar)

	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestGetMakes_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	a, err := NewHTTPVehicleAdapter(config.ClientAdapter{BaseURL: baseURL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	_, err = a.GetMakes(context.Background(), models.VehicleTypeCar)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "get makes request")
}

// ── GetModels ────────────────────────────────────────────────────────────────

func TestGetModels_Success(t *testing.T) {
	fake := &fakeVPIC{modelsBody: `{"Count":1,"Results":[{"Make_ID":474,"Make_Name":"HONDA","Model_ID":5,"Model_Name":"Civic"}]}`}
	a := newTestAdapter(t, fake)

	got, err := a.GetModels(context.Background(), "474", "2015")

	require.NoError(t, err)
	assert.Equal(t, []models.Model{{ID: 5, Name: "Civic", MakeID: 474, MakeName: "HONDA"}}, got)
	assert.Equal(t, "474", fake.gotMakeID)
	assert.Equal(t, "2015", fake.gotYear)
	assert.Equal(t, "json", fake.gotFormat)
}

func TestGetModels_EmptyResults(t *testing.T) {
	fake := &fakeVPIC{modelsBody: `{"Count":0,"Results":[]}`}
	a := newTestAdapter(t, fake)

	got, err := a.GetModels(context.Background(), "474", "2015")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetModels_NoResultsKey(t *testing.T) {
	fake := &fakeVPIC{modelsBody: `{}`}
	a := newTestAdapter(t, fake)

	got, err := a.GetModels(context.Background(), "474", "2015")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetModels_NullResults(t *testing.T) {
	fake := &fakeVPIC{modelsBody: `{"Results":null}`}
	a := newTestAdapter(t, fake)

	got, err := a.GetModels(context.Background(), "474", "2015")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetModels_ResultsNotArray(t *testing.T) {
	fake := &fakeVPIC{modelsBody: `{"Results":"nope"}`}
	a := newTestAdapter(t, fake)

	_, err := a.GetModels(context.Background(), "474", "2015")

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGetModels_NotFound(t *testing.T) {
	fake := &fakeVPIC{status: http.StatusNotFound, modelsBody: "no such make"}
	a := newTestAdapter(t, fake)

	_, err := a.GetModels(context.Background(), "474", "2015")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetModels_EscapesPathParams(t *testing.T) {
	fake := &fakeVPIC{modelsBody: `{"Results":[]}`}
	a := newTestAdapter(t, fake)

	_, err := a.GetModels(context.Background(), "47 4", "2015")

	require.NoError(t, err)
	assert.Equal(t, "47 4", fake.gotMakeID)
}

func TestGetModels_CanceledContext(t *testing.T) {
	fake := &fakeVPIC{modelsBody: `{"Results":[]}`}
	a := newTestAdapter(t, fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.GetModels(ctx, "474", "2015")

	require.Error(t, err)
	assert.Equal(t, int64(0), fake.calls.Load())
}

// ── ModelsURL ────────────────────────────────────────────────────────────────

func TestModelsURL(t *testing.T) {
	a, err := NewHTTPVehicleAdapter(config.ClientAdapter{BaseURL: config.DefaultBaseURL}, logger.Nop())
	require.NoError(t, err)

	got := a.ModelsURL("474", "2015")

	assert.Equal(t, "https://vpic.nhtsa.dot.gov/api/vehicles/GetModelsForMakeIdYear/makeId/474/modelyear/2015?format=json", got)
}

// ── rate limiting ────────────────────────────────────────────────────────────

func TestNewLimiter_ZeroIsUnlimited(t *testing.T) {
	l := newLimiter(0)

	for i := 0; i < 100; i++ {
		require.True(t, l.Allow())
	}
}

func TestNewLimiter_BurstFollowsRate(t *testing.T) {
	l := newLimiter(2.5)

	assert.Equal(t, 3, l.Burst())
}
