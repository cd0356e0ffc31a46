// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-car-dealer/internal/logger"
	"github.com/MKhiriev/go-car-dealer/internal/mock"
	"github.com/MKhiriev/go-car-dealer/internal/service"
	"github.com/MKhiriev/go-car-dealer/models"
)

var testBrands = []models.Brand{
	{ID: 1, Name: "Honda"},
	{ID: 2, Name: "Ford"},
}

// runCmd executes cmd and every command of a batch, dropping spinner ticks.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(t, c)...)
		}
		return out
	}
	if _, ok := msg.(spinner.TickMsg); ok {
		return nil
	}
	return []tea.Msg{msg}
}

func findModelsMsg(t *testing.T, msgs []tea.Msg) modelsLoadedMsg {
	t.Helper()
	for _, msg := range msgs {
		if loaded, ok := msg.(modelsLoadedMsg); ok {
			return loaded
		}
	}
	t.Fatalf("no modelsLoadedMsg among %d messages", len(msgs))
	return modelsLoadedMsg{}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

type testServices struct {
	catalog  *mock.MockCatalogService
	history  *mock.MockHistoryService
	services *service.ClientServices
}

func newTestServices(ctrl *gomock.Controller) testServices {
	catalog := mock.NewMockCatalogService(ctrl)
	history := mock.NewMockHistoryService(ctrl)

	return testServices{
		catalog: catalog,
		history: history,
		services: &service.ClientServices{
			CatalogService: catalog,
			HistoryService: history,
		},
	}
}

func newTestViewer(ts testServices) modelViewer {
	return newModelViewer(context.Background(), ts.catalog, ts.history, logger.Nop())
}
