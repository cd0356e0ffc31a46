// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
)

const pickerHeight = 8

// pickerModel is a vertical option list whose first entry is a placeholder
// meaning "nothing chosen".
type pickerModel struct {
	label       string
	placeholder string
	options     []string
	cursor      int
	chosen      string
}

func newPickerModel(label, placeholder string) pickerModel {
	return pickerModel{label: label, placeholder: placeholder}
}

// SetOptions replaces the options and clamps the cursor.
func (p pickerModel) SetOptions(options []string) pickerModel {
	p.options = options
	if p.cursor > len(p.options) {
		p.cursor = len(p.options)
	}
	return p
}

func (p pickerModel) MoveUp() pickerModel {
	if p.cursor > 0 {
		p.cursor--
	}
	return p
}

func (p pickerModel) MoveDown() pickerModel {
	if p.cursor < len(p.options) {
		p.cursor++
	}
	return p
}

// Current returns the option under the cursor, or "" for the placeholder.
func (p pickerModel) Current() string {
	if p.cursor <= 0 || p.cursor > len(p.options) {
		return ""
	}
	return p.options[p.cursor-1]
}

// Choose marks the option under the cursor as chosen and returns it.
func (p pickerModel) Choose() (pickerModel, string) {
	p.chosen = p.Current()
	return p, p.chosen
}

func (p pickerModel) View(focused bool) string {
	var b strings.Builder

	label := p.label
	if focused {
		label = "▸ " + label
	} else {
		label = "  " + label
	}
	b.WriteString(labelStyle.Render(label))

	rows := make([]string, 0, len(p.options)+1)
	rows = append(rows, p.placeholder)
	rows = append(rows, p.options...)

	start, end := visibleWindow(len(rows), p.cursor, pickerHeight)
	if start > 0 {
		b.WriteString("\n" + mutedStyle.Render("    ↑ more"))
	}
	for i := start; i < end; i++ {
		cursor := "    "
		if focused && i == p.cursor {
			cursor = "  > "
		}

		row := fitText(rows[i], 40)
		if i > 0 && rows[i] == p.chosen {
			row += " ✓"
		}
		if i == 0 {
			row = mutedStyle.Render(row)
		}
		b.WriteString("\n" + cursor + row)
	}
	if end < len(rows) {
		b.WriteString("\n" + mutedStyle.Render("    ↓ more"))
	}

	return b.String()
}
