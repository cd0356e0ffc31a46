// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-car-dealer/models"
)

const historyTimeLayout = "2006-01-02 15:04:05"

type historyOverlayModel struct {
	loading bool
	lookups []models.Lookup
	err     error
}

func (m historyOverlayModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(loadingStyle.Render("Loading..."))
	case m.err != nil:
		b.WriteString(errorStyle.Render(humanizeHistoryError(m.err)))
	case len(m.lookups) == 0:
		b.WriteString(mutedStyle.Render("No lookups yet."))
	default:
		for i, l := range m.lookups {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(fmt.Sprintf("%s  %-24s %s  %d model(s)",
				l.LookedUpAt.Local().Format(historyTimeLayout),
				fitText(l.BrandName, 24),
				l.Year,
				l.ModelsCount,
			))
		}
	}

	return renderPage("RECENT LOOKUPS", b.String(), "esc / h: back")
}
