// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-car-dealer/internal/logger"
	"github.com/MKhiriev/go-car-dealer/internal/service"
	"github.com/MKhiriev/go-car-dealer/models"
)

type overlay int

const (
	overlayNone overlay = iota
	overlayHistory
	overlayBuildInfo
)

// RootModel is the program model:
// 1) handles global quit
// 2) toggles the history and build info overlays
// 3) delegates all other messages to the selection screen
type RootModel struct {
	ctx       context.Context
	history   service.HistoryService
	buildInfo models.AppBuildInfo

	selection selectionModel
	overlay   overlay
	recent    historyOverlayModel

	quitByUser bool
}

// NewRootModel builds the selection screen over services.
func NewRootModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) RootModel {
	return RootModel{
		ctx:       ctx,
		history:   services.HistoryService,
		buildInfo: buildInfo,
		selection: newSelectionModel(ctx, services, logger),
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.selection.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyCtrlC {
			r.quitByUser = true
			return r, tea.Quit
		}

		if !r.selection.capturesInput() {
			switch {
			case key.Matches(keyMsg, keys.quit):
				r.quitByUser = true
				return r, tea.Quit
			case key.Matches(keyMsg, keys.buildInfo):
				r.overlay = r.toggle(overlayBuildInfo)
				return r, nil
			case key.Matches(keyMsg, keys.history):
				r.overlay = r.toggle(overlayHistory)
				if r.overlay == overlayHistory {
					r.recent = historyOverlayModel{loading: true}
					return r, r.cmdLoadHistory()
				}
				return r, nil
			case key.Matches(keyMsg, keys.esc) && r.overlay != overlayNone:
				r.overlay = overlayNone
				return r, nil
			}

			if r.overlay != overlayNone {
				return r, nil
			}
		}
	}

	if loaded, ok := msg.(historyLoadedMsg); ok {
		r.recent = historyOverlayModel{lookups: loaded.lookups, err: loaded.err}
		return r, nil
	}

	var cmd tea.Cmd
	r.selection, cmd = r.selection.Update(msg)
	return r, cmd
}

func (r RootModel) View() string {
	switch r.overlay {
	case overlayBuildInfo:
		return renderBuildInfoWindow(r.buildInfo)
	case overlayHistory:
		return r.recent.View()
	}
	return r.selection.View()
}

func (r RootModel) toggle(o overlay) overlay {
	if r.overlay == o {
		return overlayNone
	}
	return o
}

func (r RootModel) cmdLoadHistory() tea.Cmd {
	ctx := r.ctx
	svc := r.history

	return func() tea.Msg {
		lookups, err := svc.Recent(ctx, 0)
		return historyLoadedMsg{lookups: lookups, err: err}
	}
}
