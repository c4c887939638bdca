package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sflc/amendments/internal/ui/components"
	"github.com/sflc/amendments/internal/ui/theme"
)

const completeMessage = "Timeline complete!"

func (p *PracticeScreen) View(width, height int) string {
	var sections []string

	status := fmt.Sprintf("Card %d of %d", p.ctrl.Index()+1, p.ctrl.Len())
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center,
		theme.Subtitle.Render(status),
		"    ",
		p.shuffleBtn.View(),
	))

	if p.ctrl.Complete() {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("★ "+completeMessage+" ★"))
	}

	sections = append(sections, p.card.View(width))

	sections = append(sections, p.timeline.View(width, p.focus, p.dnd.Feedback))

	sections = append(sections, p.renderDragHint())

	bar := components.NewProgressBar("Placed", p.ctrl.PlacedCount(), p.ctrl.Len(), true, min(width-4, 60))
	sections = append(sections, bar.View())

	content := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(sections, "\n\n"))
	frame := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)

	if p.ctrl.Celebrating() {
		return p.confetti.Overlay(frame, width, height)
	}
	return frame
}

func (p *PracticeScreen) renderDragHint() string {
	payload, dragging := p.dnd.Dragging()
	switch {
	case dragging:
		if p.dnd.CanDrop() {
			return theme.Correct.Render("Release here with Enter")
		}
		return theme.Hint.Render(fmt.Sprintf("Carrying card %d: move with ←/→", payload.ID))
	case p.ctrl.Celebrating():
		return theme.Correct.Render("Placed!")
	case p.card.Card().Unlocked() && !p.ctrl.IsPlaced(p.ctrl.Active().ID):
		return theme.Hint.Render("Press Enter on the highlighted title to pick it up")
	}
	return ""
}
