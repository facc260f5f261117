package formatter

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/workroomhq/surfacegate/internal/surface"
)

type TableFormatter struct {
	headerStyle  lipgloss.Style
	oddRowStyle  lipgloss.Style
	evenRowStyle lipgloss.Style
	borderStyle  lipgloss.Style
}

func NewTableFormatter() *TableFormatter {
	purple := lipgloss.Color("99")
	gray := lipgloss.Color("245")
	lightGray := lipgloss.Color("241")

	return &TableFormatter{
		headerStyle: lipgloss.NewStyle().
			Foreground(purple).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 1),
		oddRowStyle: lipgloss.NewStyle().
			Foreground(gray).
			Padding(0, 1),
		evenRowStyle: lipgloss.NewStyle().
			Foreground(lightGray).
			Padding(0, 1),
		borderStyle: lipgloss.NewStyle().
			Foreground(purple),
	}
}

func (f *TableFormatter) FormatSurfaces(surfaces []*surface.Surface) (string, error) {
	if len(surfaces) == 0 {
		return "No surfaces accepted", nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(f.borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return f.headerStyle
			case row%2 == 0:
				return f.evenRowStyle
			default:
				return f.oddRowStyle
			}
		}).
		Headers("ID", "Kind", "Title", "Content")

	for _, s := range surfaces {
		t.Row(
			truncateString(s.ID, 24),
			string(s.Kind),
			truncateString(s.Title, 32),
			payloadSummary(s.Payload),
		)
	}

	return t.String(), nil
}

// payloadSummary is deliberately exhaustive over the payload variants so
// a new surface kind shows up here as a compile-visible gap.
func payloadSummary(p surface.Payload) string {
	switch payload := p.(type) {
	case surface.WhatNextPayload:
		return truncateString(payload.Primary.Headline, 40)
	case surface.TodaySchedulePayload:
		return fmt.Sprintf("%d blocks", len(payload.Blocks))
	case surface.PriorityListPayload:
		return fmt.Sprintf("%d items", len(payload.Items))
	case surface.TriageTablePayload:
		items := 0
		for _, group := range payload.Groups {
			items += len(group.Items)
		}
		return fmt.Sprintf("%d groups / %d items", len(payload.Groups), items)
	case surface.ContextAddPayload:
		return fmt.Sprintf("%d items", len(payload.Items))
	default:
		return "unknown payload"
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
