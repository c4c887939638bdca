package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sflc/amendments/internal/dnd"
	"github.com/sflc/amendments/internal/quiz"
	"github.com/sflc/amendments/internal/ui/theme"
)

// DragStartMsg asks the screen to start dragging the source under Key.
type DragStartMsg struct {
	Key     string
	Payload dnd.Payload
}

// UnlockMsg reports that the card for ID was answered correctly.
type UnlockMsg struct {
	ID int
}

// SourceKey is the stable drag-source key for an amendment card.
func SourceKey(id int) string {
	return "card-" + strconv.Itoa(id)
}

// Flashcard renders a quiz.Card: the definition on the left and the four
// choices on the right. Picking a choice is delegated to the card's state
// machine; once the card is unlocked the correct choice becomes a drag
// handle and every other choice is inert.
type Flashcard struct {
	card     *quiz.Card
	cursor   int
	dragging bool
}

// NewFlashcard creates a presenter for card.
func NewFlashcard(card *quiz.Card) Flashcard {
	f := Flashcard{card: card}
	if card.Unlocked() {
		f.cursor = card.Choices().Index(card.Record().Title)
	}
	return f
}

// Card returns the underlying card state.
func (f Flashcard) Card() *quiz.Card { return f.card }

// Cursor returns the focused choice index.
func (f Flashcard) Cursor() int { return f.cursor }

// SetDragging marks the drag handle as picked up.
func (f *Flashcard) SetDragging(v bool) { f.dragging = v }

// Update handles choice navigation, picking and drag start.
func (f Flashcard) Update(msg tea.Msg) (Flashcard, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || f.dragging {
		return f, nil
	}
	choices := f.card.Choices()

	switch key := kmsg.String(); key {
	case "up", "k":
		if f.cursor > 0 {
			f.cursor--
		}
	case "down", "j":
		if f.cursor < len(choices)-1 {
			f.cursor++
		}
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		if i < len(choices) {
			f.cursor = i
			return f.activate()
		}
	case "enter", "space", " ":
		return f.activate()
	}
	return f, nil
}

// activate picks the focused choice or, when it is the drag handle, starts
// a drag.
func (f Flashcard) activate() (Flashcard, tea.Cmd) {
	choice := f.card.Choices()[f.cursor]

	switch f.card.Role(choice) {
	case quiz.RoleButton:
		if !f.card.Select(choice) || !f.card.Unlocked() {
			return f, nil
		}
		f.cursor = f.card.Choices().Index(f.card.Record().Title)
		id := f.card.Record().ID
		return f, func() tea.Msg { return UnlockMsg{ID: id} }
	case quiz.RoleDragSource:
		p, ok := f.card.DragPayload()
		if !ok {
			return f, nil
		}
		key := SourceKey(f.card.Record().ID)
		return f, func() tea.Msg {
			return DragStartMsg{Key: key, Payload: p}
		}
	}
	return f, nil
}

// View renders the card at most width cells wide.
func (f Flashcard) View(width int) string {
	cardWidth := min(width-4, 80)
	if cardWidth < 40 {
		cardWidth = 40
	}
	half := cardWidth/2 - 3

	left := f.renderDefinition(half)
	right := f.renderChoices(half)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(half).Render(left),
		"  ",
		lipgloss.NewStyle().Width(half).Render(right),
	)
	return theme.Card.Width(cardWidth).Render(body)
}

func (f Flashcard) renderDefinition(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Which amendment is this?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Ink).
		Bold(true).
		Width(width).
		Render(f.card.Record().Definition))

	if fb := f.card.Feedback(); fb != "" {
		style := theme.Incorrect
		if f.card.Correct() {
			style = theme.Correct
		}
		b.WriteString("\n\n")
		b.WriteString(style.Width(width).Render(fb))
	}
	return b.String()
}

func (f Flashcard) renderChoices(width int) string {
	selected, answered := f.card.Selected()

	lines := make([]string, 0, len(f.card.Choices()))
	for i, choice := range f.card.Choices() {
		focused := i == f.cursor
		label := fmt.Sprintf("%d) %s", i+1, choice)

		var style lipgloss.Style
		switch f.card.Role(choice) {
		case quiz.RoleButton:
			style = theme.ChoiceButton
			if focused {
				style = theme.ChoiceFocused
			}
		case quiz.RoleDragSource:
			style = theme.ChoiceCorrect
			label = "⠿ " + choice
			if f.dragging {
				label += "  (carrying)"
			}
		default:
			style = theme.ChoiceInert
			if answered && choice == selected && !f.card.Correct() {
				style = theme.ChoiceWrong
			}
		}

		prefix := "  "
		if focused {
			prefix = "▸ "
		}
		lines = append(lines, prefix+style.Width(width-2).Render(label))
	}
	return strings.Join(lines, "\n")
}
