package home

import (
	"charm.land/lipgloss/v2"

	"github.com/sflc/amendments/internal/ui/theme"
)

const emblem = `  ┌─┴─┐
 ╱     ╲
│ 1791 │
 ╲_____╱
   ═╩═`

// RenderEmblem returns the bell emblem shown above the stats bar.
func RenderEmblem() string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(emblem)
}
