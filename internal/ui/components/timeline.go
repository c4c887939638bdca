package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sflc/amendments/internal/catalog"
	"github.com/sflc/amendments/internal/dnd"
	"github.com/sflc/amendments/internal/quiz"
	"github.com/sflc/amendments/internal/ui/theme"
)

const slotWidth = 16

// TimelineSlot is one year position as shown on the strip.
type TimelineSlot struct {
	Slot   quiz.Slot
	Placed string // title of the placed card, empty when open
}

// View renders the slot label, the placed title and hover feedback.
func (s TimelineSlot) View(fb dnd.Feedback) string {
	style := theme.Slot
	switch {
	case fb.Over && fb.CanDrop:
		style = theme.SlotValid
	case fb.Over:
		style = theme.SlotInvalid
	}

	label := fmt.Sprintf("%d. %d", s.Slot.ID, s.Slot.Year)
	placed := lipgloss.NewStyle().Foreground(theme.TextDim).Render("·")
	if s.Placed != "" {
		placed = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(truncate(s.Placed, slotWidth-2))
	}

	return style.Width(slotWidth).Align(lipgloss.Center).Render(label + "\n" + placed)
}

// Timeline is the horizontal strip of slots, one per catalog record in
// catalog order.
type Timeline struct {
	Slots []TimelineSlot
}

// NewTimeline builds one slot per record.
func NewTimeline(records []catalog.Amendment) Timeline {
	slots := make([]TimelineSlot, len(records))
	for i, r := range records {
		slots[i] = TimelineSlot{Slot: quiz.Slot{ID: r.ID, Year: r.Year}}
	}
	return Timeline{Slots: slots}
}

// Place records title on the slot with the given ID.
func (t *Timeline) Place(slotID int, title string) {
	for i := range t.Slots {
		if t.Slots[i].Slot.ID == slotID {
			t.Slots[i].Placed = title
			return
		}
	}
}

// Reset clears every placed title.
func (t *Timeline) Reset() {
	for i := range t.Slots {
		t.Slots[i].Placed = ""
	}
}

// View renders the strip within width. Only the window of slots that fits
// is drawn, scrolled so that focus is visible. feedback is queried per slot
// index.
func (t Timeline) View(width, focus int, feedback func(i int) dnd.Feedback) string {
	first, last := catalog.YearSpan()
	heading := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Timeline (%d–%d)", first, last))

	if len(t.Slots) == 0 {
		return heading
	}

	start, end := window(len(t.Slots), focus, max(1, (width-4)/(slotWidth+1)))

	cells := make([]string, 0, end-start+2)
	if start > 0 {
		cells = append(cells, theme.Hint.Render("‹"))
	}
	for i := start; i < end; i++ {
		var fb dnd.Feedback
		if feedback != nil {
			fb = feedback(i)
		}
		cells = append(cells, t.Slots[i].View(fb), " ")
	}
	if end < len(t.Slots) {
		cells = append(cells, theme.Hint.Render("›"))
	}

	return heading + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

// window returns the [start, end) range of visible slots of size at most
// n that contains focus.
func window(total, focus, n int) (int, int) {
	if n >= total {
		return 0, total
	}
	focus = max(0, min(focus, total-1))
	start := focus - n/2
	start = max(0, min(start, total-n))
	return start, start + n
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}
