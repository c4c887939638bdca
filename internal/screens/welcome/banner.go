package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/sflc/amendments/internal/ui/theme"
)

const bannerArt = `
  ___                          _                  _
 / _ \ _ __ ___   ___ _ __   __| |_ __ ___   ___ _ __ | |_ ___
| |_| | '_ ' _ \ / _ \ '_ \ / _' | '_ ' _ \ / _ \ '_ \| __/ __|
|  _  | | | | | |  __/ | | | (_| | | | | | |  __/ | | | |_\__ \
|_| |_|_| |_| |_|\___|_| |_|\__,_|_| |_| |_|\___|_| |_|\__|___/`

const bannerCompact = "A M E N D M E N T S"

// RenderBanner returns the AMENDMENTS banner styled in the accent color.
// Uses a compact fallback for terminals narrower than 66 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	if width < 66 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
