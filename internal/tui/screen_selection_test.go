// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-car-dealer/internal/logger"
	"github.com/MKhiriev/go-car-dealer/models"
)

func newTestSelection(t *testing.T, ctrl *gomock.Controller, brands []models.Brand) (selectionModel, testServices) {
	t.Helper()
	ts := newTestServices(ctrl)
	ts.catalog.EXPECT().YearOptions().Return([]int{2019, 2020})
	ts.catalog.EXPECT().Brands(gomock.Any()).Return(brands)
	ts.history.EXPECT().Enabled().Return(false).AnyTimes()

	m := newSelectionModel(context.Background(), ts.services, logger.Nop())
	msgs := runCmd(t, m.Init())
	require.Len(t, msgs, 1)
	m, _ = m.Update(msgs[0])
	return m, ts
}

func press(m selectionModel, msgs ...tea.KeyMsg) (selectionModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func TestSelection_InitialView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestSelection(t, ctrl, testBrands)
	view := m.View()

	assert.Contains(t, view, brandPlaceholder)
	assert.Contains(t, view, yearPlaceholder)
	assert.Contains(t, view, "Brand: None")
	assert.Contains(t, view, "Year: None")
	assert.Contains(t, view, "select a brand and a year")
	assert.Equal(t, 0, renderedStates(view))
}

func TestSelection_BrandsKeepApiOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestSelection(t, ctrl, testBrands)

	assert.True(t, m.brandsLoaded)
	assert.Equal(t, []string{"Honda", "Ford"}, m.brandPicker.options)
	assert.Equal(t, []string{"2019", "2020"}, m.yearPicker.options)
}

func TestSelection_EmptyBrandList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestSelection(t, ctrl, []models.Brand{})

	assert.Empty(t, m.brandPicker.options)
	assert.NotContains(t, m.View(), modelsErrorText)
	assert.NotContains(t, m.View(), "Loading brands...")
}

func TestSelection_SelectKnownBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestSelection(t, ctrl, testBrands)
	m, cmd := press(m, keyType(tea.KeyDown), keyType(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Equal(t, "Honda", m.selection.BrandName)
	assert.Equal(t, "1", m.selection.BrandID)
	assert.Contains(t, m.View(), "Brand: Honda")
	assert.Equal(t, 0, renderedStates(m.View()))
}

func TestSelection_SelectUnknownBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestSelection(t, ctrl, testBrands)
	m, _ = m.selectBrand("Tesla")

	assert.Equal(t, "Tesla", m.selection.BrandName)
	assert.Empty(t, m.selection.BrandID)
	assert.False(t, m.selection.Ready())
}

func TestSelection_PlaceholderClearsBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestSelection(t, ctrl, testBrands)
	m, _ = press(m, keyType(tea.KeyDown), keyType(tea.KeyEnter))
	m, _ = press(m, keyType(tea.KeyUp), keyType(tea.KeyEnter))

	assert.Empty(t, m.selection.BrandName)
	assert.Empty(t, m.selection.BrandID)
	assert.Contains(t, m.View(), "Brand: None")
}

func TestSelection_BothSelectedFetchesModels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, ts := newTestSelection(t, ctrl, testBrands)
	ts.catalog.EXPECT().Models(gomock.Any(), "1", "2019").
		Return([]models.Model{{ID: 5, Name: "Civic"}}, nil)

	m, _ = press(m, keyType(tea.KeyDown), keyType(tea.KeyEnter))
	m, cmd := press(m, keyType(tea.KeyTab), keyType(tea.KeyDown), keyType(tea.KeyEnter))
	require.NotNil(t, cmd)

	assert.Equal(t, "2019", m.selection.Year)
	assert.Contains(t, m.View(), "Loading...")

	m, _ = m.Update(findModelsMsg(t, runCmd(t, cmd)))
	view := m.View()
	assert.Contains(t, view, "Civic")
	assert.Contains(t, view, "Year: 2019")
	assert.Equal(t, 1, renderedStates(view))
}

func TestSelection_TabCyclesFocus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestSelection(t, ctrl, testBrands)
	assert.Equal(t, focusBrand, m.focus)

	m, _ = press(m, keyType(tea.KeyTab))
	assert.Equal(t, focusYear, m.focus)
	m, _ = press(m, keyType(tea.KeyTab))
	assert.Equal(t, focusAction, m.focus)
	m, _ = press(m, keyType(tea.KeyTab))
	assert.Equal(t, focusBrand, m.focus)
	m, _ = press(m, keyType(tea.KeyShiftTab))
	assert.Equal(t, focusAction, m.focus)
}

func TestSelection_ActionDisabledUntilReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestSelection(t, ctrl, testBrands)
	m, _ = press(m, keyType(tea.KeyDown), keyType(tea.KeyEnter))

	m, cmd := press(m, keyRunes("c"))
	assert.Nil(t, cmd)
	assert.Empty(t, m.queryURL)
}

func TestSelection_ActionCopiesQueryURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var copied string
	orig := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	const url = "https://vpic.nhtsa.dot.gov/api/vehicles/GetModelsForMakeIdYear/makeId/1/modelyear/2019?format=json"

	m, ts := newTestSelection(t, ctrl, testBrands)
	m, _ = m.selectBrand("Honda")
	m.selection.Year = "2019"
	ts.catalog.EXPECT().ModelsQueryURL("1", "2019").Return(url)

	m, cmd := press(m, keyRunes("c"))
	require.NotNil(t, cmd)

	msgs := runCmd(t, cmd)
	require.Len(t, msgs, 1)
	m, _ = m.Update(msgs[0])

	assert.Equal(t, url, copied)
	assert.Contains(t, m.View(), url)
	assert.Contains(t, m.View(), "copied to clipboard")
}

func TestSelection_ActionCopyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orig := copyToClipboard
	copyToClipboard = func(string) error { return errors.New("no clipboard utility") }
	t.Cleanup(func() { copyToClipboard = orig })

	m, ts := newTestSelection(t, ctrl, testBrands)
	m, _ = m.selectBrand("Ford")
	m.selection.Year = "2020"
	m.focus = focusAction
	ts.catalog.EXPECT().ModelsQueryURL("2", "2020").Return("u")

	m, cmd := press(m, keyType(tea.KeyEnter))
	m, _ = m.Update(runCmd(t, cmd)[0])

	assert.Contains(t, m.View(), "no clipboard utility")
	assert.Equal(t, "u", m.queryURL)
}

func TestSelection_FilterBrands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestSelection(t, ctrl, testBrands)
	m, _ = press(m, keyRunes("/"))
	require.True(t, m.capturesInput())

	m, _ = press(m, keyRunes("f"), keyRunes("O"))
	assert.Equal(t, []string{"Ford"}, m.brandPicker.options)

	m, _ = press(m, keyType(tea.KeyEnter))
	assert.False(t, m.capturesInput())
	assert.Equal(t, []string{"Ford"}, m.brandPicker.options)

	m, _ = press(m, keyType(tea.KeyDown), keyType(tea.KeyEnter))
	assert.Equal(t, "2", m.selection.BrandID)
}

func TestSelection_FilterEscClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestSelection(t, ctrl, testBrands)
	m, _ = press(m, keyRunes("/"), keyRunes("h"))
	assert.Equal(t, []string{"Honda"}, m.brandPicker.options)

	m, _ = press(m, keyType(tea.KeyEsc))
	assert.False(t, m.capturesInput())
	assert.Equal(t, []string{"Honda", "Ford"}, m.brandPicker.options)
}

func TestSelection_RefreshRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, ts := newTestSelection(t, ctrl, testBrands)
	ts.catalog.EXPECT().Models(gomock.Any(), "1", "2020").
		Return([]models.Model{{ID: 5, Name: "Civic"}}, nil).Times(2)

	m, _ = m.selectBrand("Honda")
	m, cmd := m.selectYear("2020")
	m, _ = m.Update(findModelsMsg(t, runCmd(t, cmd)))

	m, cmd = press(m, keyRunes("r"))
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Loading...")

	m, _ = m.Update(findModelsMsg(t, runCmd(t, cmd)))
	assert.Contains(t, m.View(), "Civic")
}

func TestSelection_LookupRecordFailureIsNotShown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestSelection(t, ctrl, testBrands)
	m, cmd := m.Update(lookupRecordedMsg{err: errors.New("disk full")})

	assert.Nil(t, cmd)
	assert.NotContains(t, m.View(), "disk full")
}
