package components

import (
	"math/rand/v2"

	"charm.land/lipgloss/v2"

	"github.com/sflc/amendments/internal/ui/theme"
)

var confettiGlyphs = []string{"*", "✦", "•", "▪", "✧", "◆"}

const confettiPieces = 60

// Confetti is the celebration overlay. Pieces are derived from Seed and
// fall one row per Frame, so the same frame always renders the same way.
type Confetti struct {
	Frame int
	Seed  uint64
}

type piece struct {
	x, y  int
	glyph string
	style lipgloss.Style
}

// pieces lays out the confetti for the current frame inside a width x
// height viewport.
func (c Confetti) pieces(width, height int) []piece {
	if width <= 0 || height <= 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(c.Seed, 0x636f6e6665747469))

	out := make([]piece, 0, confettiPieces)
	for range confettiPieces {
		x := rng.IntN(width)
		y0 := rng.IntN(height)
		drift := rng.IntN(3) - 1
		glyph := confettiGlyphs[rng.IntN(len(confettiGlyphs))]
		style := theme.ConfettiColors[rng.IntN(len(theme.ConfettiColors))]

		x = ((x+drift*c.Frame)%width + width) % width
		y := (y0 + c.Frame) % height
		out = append(out, piece{x: x, y: y, glyph: glyph, style: style})
	}
	return out
}

// Overlay draws the confetti over base, a width x height frame.
func (c Confetti) Overlay(base string, width, height int) string {
	layers := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	for _, p := range c.pieces(width, height) {
		layers = append(layers, lipgloss.NewLayer(p.style.Render(p.glyph)).X(p.x).Y(p.y).Z(1))
	}
	return lipgloss.NewCanvas(layers...).Render()
}
