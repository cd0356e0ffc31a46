// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-car-dealer/internal/logger"
	"github.com/MKhiriev/go-car-dealer/internal/service"
	"github.com/MKhiriev/go-car-dealer/models"
)

// modelViewer loads and renders the models of one brand/year pair.
//
// Every fetch bumps seq and is tagged with it and the pair it was issued
// for. A result whose tag differs from the current one is discarded, so only
// the latest request can change the rendered state.
type modelViewer struct {
	ctx     context.Context
	catalog service.CatalogService
	history service.HistoryService
	logger  *logger.Logger

	brandID   string
	brandName string
	year      string

	seq     uint64
	state   models.FetchState
	spinner spinner.Model
}

func newModelViewer(
	ctx context.Context,
	catalog service.CatalogService,
	history service.HistoryService,
	logger *logger.Logger,
) modelViewer {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return modelViewer{
		ctx:     ctx,
		catalog: catalog,
		history: history,
		logger:  logger,
		state:   models.IdleState(),
		spinner: s,
	}
}

func (v modelViewer) active() bool {
	return v.brandID != "" && v.year != ""
}

// SetInputs points the viewer at sel. A fetch is issued only when the pair
// changed to a complete one; an incomplete pair resets the viewer to idle.
// Choosing the pair already shown does nothing. Returning to it after another
// pair, or calling Refresh, fetches again.
func (v modelViewer) SetInputs(sel models.Selection) (modelViewer, tea.Cmd) {
	v.brandName = sel.BrandName
	if sel.BrandID == v.brandID && sel.Year == v.year {
		return v, nil
	}

	v.brandID = sel.BrandID
	v.year = sel.Year
	if !v.active() {
		// invalidates whatever is still in flight
		v.seq++
		v.state = models.IdleState()
		return v, nil
	}

	return v.fetch()
}

// Refresh re-issues the fetch for the current pair.
func (v modelViewer) Refresh() (modelViewer, tea.Cmd) {
	if !v.active() {
		return v, nil
	}
	return v.fetch()
}

func (v modelViewer) fetch() (modelViewer, tea.Cmd) {
	v.seq++
	v.state = models.LoadingState()

	return v, tea.Batch(v.spinner.Tick, v.cmdLoadModels(v.seq, v.brandID, v.year))
}

func (v modelViewer) Update(msg tea.Msg) (modelViewer, tea.Cmd) {
	switch msg := msg.(type) {
	case modelsLoadedMsg:
		if msg.seq != v.seq || msg.brandID != v.brandID || msg.year != v.year {
			v.logger.Debug().
				Str("func", "modelViewer.Update").
				Uint64("seq", msg.seq).
				Uint64("current_seq", v.seq).
				Msg("discarding stale models response")
			return v, nil
		}

		if msg.err != nil {
			v.state = models.ErrorState(modelsErrorText)
			return v, nil
		}

		v.state = models.SuccessState(msg.models)
		return v, v.cmdRecordLookup(len(v.state.Models))

	case spinner.TickMsg:
		if v.state.Status != models.FetchLoading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	return v, nil
}

func (v modelViewer) View() string {
	switch v.state.Status {
	case models.FetchLoading:
		return v.spinner.View() + " " + loadingStyle.Render("Loading...")
	case models.FetchError:
		return errorStyle.Render(v.state.Message)
	case models.FetchSuccess:
		if len(v.state.Models) == 0 {
			return mutedStyle.Render("No models found.")
		}

		var b strings.Builder
		b.WriteString(labelStyle.Render("Available models:"))
		for _, m := range v.state.Models {
			b.WriteString("\n  • ")
			b.WriteString(m.Name)
		}
		return b.String()
	default:
		return ""
	}
}

func (v modelViewer) cmdLoadModels(seq uint64, brandID, year string) tea.Cmd {
	ctx := v.ctx
	svc := v.catalog

	return func() tea.Msg {
		vehicleModels, err := svc.Models(ctx, brandID, year)
		return modelsLoadedMsg{
			seq:     seq,
			brandID: brandID,
			year:    year,
			models:  vehicleModels,
			err:     err,
		}
	}
}

func (v modelViewer) cmdRecordLookup(count int) tea.Cmd {
	if v.history == nil || !v.history.Enabled() {
		return nil
	}

	ctx := v.ctx
	svc := v.history
	lookup := models.Lookup{
		BrandID:     v.brandID,
		BrandName:   v.brandName,
		Year:        v.year,
		ModelsCount: count,
	}

	return func() tea.Msg {
		return lookupRecordedMsg{err: svc.Record(ctx, lookup)}
	}
}
