package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sflc/amendments/internal/ui/components"
	"github.com/sflc/amendments/internal/ui/theme"
)

const titleFull = `╔═╗╔╦╗╔═╗╔╗╔╔╦╗╔╦╗╔═╗╔╗╔╔╦╗╔═╗
╠═╣║║║║╣ ║║║ ║║║║║║╣ ║║║ ║ ╚═╗
╩ ╩╩ ╩╚═╝╝╚╝═╩╝╩ ╩╚═╝╝╚╝ ╩ ╚═╝`

const titleCompact = "A · M · E · N · D · M · E · N · T · S"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(art))
}

// renderStatsBar shows the size and year span of the catalog.
func renderStatsBar(count, first, last, cw int, compact bool) string {
	countStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	spanStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			countStyle.Render(fmt.Sprintf("★%d", count)),
			spanStyle.Render(fmt.Sprintf("%d–%d", first, last)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s",
			countStyle.Render(fmt.Sprintf("★ %d AMENDMENTS", count)),
			spanStyle.Render(fmt.Sprintf("⌛ %d–%d", first, last)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMenu renders each item as a fixed-width button, or as plain lines
// when the terminal is too short for bordered buttons.
func renderMenu(labels []string, selected, cw int, compact bool) string {
	var rows []string
	for i, label := range labels {
		if compact {
			line := lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
			if i == selected {
				line = lipgloss.NewStyle().
					Foreground(theme.Ink).
					Background(theme.Accent).
					Bold(true).
					Render(" ▸ " + label + " ")
			}
			rows = append(rows, line)
			continue
		}
		rows = append(rows, components.MenuButton(label, i == selected, buttonWidth))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(rows, "\n"))
}

// renderEmblem renders the emblem centered at content width.
func renderEmblem(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderEmblem())
}
