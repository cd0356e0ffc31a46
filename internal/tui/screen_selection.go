// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-car-dealer/internal/logger"
	"github.com/MKhiriev/go-car-dealer/internal/service"
	"github.com/MKhiriev/go-car-dealer/models"
)

const (
	brandPlaceholder = "Select Car Brand"
	yearPlaceholder  = "Select Year"
	actionLabel      = "Show Models"
)

type focusArea int

const (
	focusBrand focusArea = iota
	focusYear
	focusAction
	focusCount
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// selectionModel owns the brand and year choices and drives the model
// viewer once both are set.
type selectionModel struct {
	ctx     context.Context
	catalog service.CatalogService
	logger  *logger.Logger

	brands       []models.Brand
	brandsLoaded bool

	brandPicker pickerModel
	yearPicker  pickerModel
	filter      textinput.Model
	filtering   bool
	focus       focusArea

	selection models.Selection
	viewer    modelViewer

	queryURL string
	status   string
	errMsg   string
}

func newSelectionModel(
	ctx context.Context,
	services *service.ClientServices,
	logger *logger.Logger,
) selectionModel {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter brands"
	filter.CharLimit = 64

	years := services.CatalogService.YearOptions()
	yearOptions := make([]string, 0, len(years))
	for _, y := range years {
		yearOptions = append(yearOptions, strconv.Itoa(y))
	}

	return selectionModel{
		ctx:         ctx,
		catalog:     services.CatalogService,
		logger:      logger,
		brandPicker: newPickerModel("Car Brand:", brandPlaceholder),
		yearPicker:  newPickerModel("Year of Manufacture:", yearPlaceholder).SetOptions(yearOptions),
		filter:      filter,
		viewer:      newModelViewer(ctx, services.CatalogService, services.HistoryService, logger),
	}
}

func (m selectionModel) Init() tea.Cmd {
	return m.cmdLoadBrands()
}

// capturesInput reports whether key presses belong to the filter input.
func (m selectionModel) capturesInput() bool {
	return m.filtering
}

func (m selectionModel) Update(msg tea.Msg) (selectionModel, tea.Cmd) {
	switch msg := msg.(type) {
	case brandsLoadedMsg:
		m.brands = msg.brands
		m.brandsLoaded = true
		m.brandPicker = m.brandPicker.SetOptions(m.filteredBrandNames())
		return m, nil

	case urlCopiedMsg:
		m.queryURL = msg.url
		if msg.err != nil {
			m.status = ""
			m.errMsg = "Could not copy to clipboard: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Query URL copied to clipboard"
		return m, nil

	case lookupRecordedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).
				Str("func", "selectionModel.Update").
				Msg("lookup was not recorded")
		}
		return m, nil

	case modelsLoadedMsg:
		var cmd tea.Cmd
		m.viewer, cmd = m.viewer.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.viewer, cmd = m.viewer.Update(msg)
	return m, cmd
}

func (m selectionModel) updateKeys(msg tea.KeyMsg) (selectionModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		m.focus = (m.focus + 1) % focusCount
	case key.Matches(msg, keys.backtab):
		m.focus = (m.focus + focusCount - 1) % focusCount
	case key.Matches(msg, keys.up):
		m = m.moveCursor(-1)
	case key.Matches(msg, keys.down):
		m = m.moveCursor(1)
	case key.Matches(msg, keys.enter):
		return m.activate()
	case key.Matches(msg, keys.filter):
		m.focus = focusBrand
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, keys.action):
		return m.showModels()
	case key.Matches(msg, keys.refresh):
		var cmd tea.Cmd
		m.viewer, cmd = m.viewer.Refresh()
		return m, cmd
	}

	return m, nil
}

func (m selectionModel) updateFilter(msg tea.KeyMsg) (selectionModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.brandPicker = m.brandPicker.SetOptions(m.filteredBrandNames())
		return m, nil
	case key.Matches(msg, keys.enter):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case msg.Type == tea.KeyUp:
		return m.moveCursor(-1), nil
	case msg.Type == tea.KeyDown:
		return m.moveCursor(1), nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.brandPicker.cursor = 0
		m.brandPicker = m.brandPicker.SetOptions(m.filteredBrandNames())
	}
	return m, cmd
}

func (m selectionModel) moveCursor(delta int) selectionModel {
	switch m.focus {
	case focusBrand:
		if delta < 0 {
			m.brandPicker = m.brandPicker.MoveUp()
		} else {
			m.brandPicker = m.brandPicker.MoveDown()
		}
	case focusYear:
		if delta < 0 {
			m.yearPicker = m.yearPicker.MoveUp()
		} else {
			m.yearPicker = m.yearPicker.MoveDown()
		}
	}
	return m
}

func (m selectionModel) activate() (selectionModel, tea.Cmd) {
	switch m.focus {
	case focusBrand:
		var name string
		m.brandPicker, name = m.brandPicker.Choose()
		return m.selectBrand(name)
	case focusYear:
		var year string
		m.yearPicker, year = m.yearPicker.Choose()
		return m.selectYear(year)
	case focusAction:
		return m.showModels()
	}
	return m, nil
}

// selectBrand stores name and derives the brand id from the fetched list.
func (m selectionModel) selectBrand(name string) (selectionModel, tea.Cmd) {
	m.selection.BrandName = name
	m.selection.BrandID, _ = service.FindBrandID(m.brands, name)
	return m.selectionChanged()
}

func (m selectionModel) selectYear(year string) (selectionModel, tea.Cmd) {
	m.selection.Year = year
	return m.selectionChanged()
}

func (m selectionModel) selectionChanged() (selectionModel, tea.Cmd) {
	m.queryURL = ""
	m.status = ""
	m.errMsg = ""

	var cmd tea.Cmd
	m.viewer, cmd = m.viewer.SetInputs(m.selection)
	return m, cmd
}

// showModels copies the raw query URL of the current selection. It does
// nothing until both a brand and a year are chosen.
func (m selectionModel) showModels() (selectionModel, tea.Cmd) {
	if !m.selection.Ready() {
		return m, nil
	}

	url := m.catalog.ModelsQueryURL(m.selection.BrandID, m.selection.Year)
	m.queryURL = url

	return m, func() tea.Msg {
		return urlCopiedMsg{url: url, err: copyToClipboard(url)}
	}
}

func (m selectionModel) filteredBrandNames() []string {
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))

	names := make([]string, 0, len(m.brands))
	for _, b := range m.brands {
		if needle != "" && !strings.Contains(strings.ToLower(b.Name), needle) {
			continue
		}
		names = append(names, b.Name)
	}
	return names
}

func (m selectionModel) cmdLoadBrands() tea.Cmd {
	ctx := m.ctx
	svc := m.catalog

	return func() tea.Msg {
		return brandsLoadedMsg{brands: svc.Brands(ctx)}
	}
}

func (m selectionModel) View() string {
	var b strings.Builder

	b.WriteString(m.brandPicker.View(m.focus == focusBrand))
	if m.filtering || m.filter.Value() != "" {
		b.WriteString("\n    ")
		b.WriteString(m.filter.View())
	}
	if !m.brandsLoaded {
		b.WriteString("\n    ")
		b.WriteString(loadingStyle.Render("Loading brands..."))
	}
	b.WriteString("\n\n")
	b.WriteString(m.yearPicker.View(m.focus == focusYear))

	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Your Selection:"))
	b.WriteString("\nBrand: ")
	b.WriteString(valueOrNone(m.selection.BrandName))
	b.WriteString("\nYear: ")
	b.WriteString(valueOrNone(m.selection.Year))

	if m.selection.Ready() {
		b.WriteString("\n\n")
		b.WriteString(m.viewer.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.actionView())
	if m.queryURL != "" {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(m.queryURL))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage("Car Dealer App", b.String(),
		"tab: focus  ↑/↓: move  enter: select  /: filter  c: show models  r: refresh  h: history  v: about")
}

func (m selectionModel) actionView() string {
	marker := "  "
	if m.focus == focusAction {
		marker = "▸ "
	}

	if !m.selection.Ready() {
		return marker + disabledButton.Render("[ "+actionLabel+" ]") + " " +
			mutedStyle.Render("select a brand and a year")
	}
	return marker + activeButton.Render("[ "+actionLabel+" ]")
}
