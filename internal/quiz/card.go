package quiz

import (
	"fmt"

	"github.com/sflc/amendments/internal/catalog"
	"github.com/sflc/amendments/internal/dnd"
)

// Feedback messages shown under the definition.
const (
	FeedbackCorrect = "Drag the amendment to its year on the timeline."
	FeedbackRetry   = "Try again"
)

// CardState is the answering state of a single flashcard.
type CardState int

const (
	CardUnanswered CardState = iota
	CardAnswered
)

// ChoiceRole says how a choice behaves on the card.
type ChoiceRole int

const (
	RoleButton     ChoiceRole = iota // selectable answer
	RoleDragSource                   // the correct title once unlocked; carries the card
	RoleStatic                       // shown but inert
)

// Card is the per-record interaction state of the flashcard.
// Only the first pick is scored: once answered, further picks are ignored.
type Card struct {
	record   catalog.Amendment
	choices  ChoiceSet
	state    CardState
	selected string
	feedback string
	unlocked bool
	onUnlock func()
}

// NewCard creates the card for record. choices must hold ChoiceCount distinct
// titles including record.Title; anything else is a caller bug and panics.
func NewCard(record catalog.Amendment, choices ChoiceSet, unlocked bool, onUnlock func()) *Card {
	if err := choices.Validate(record.Title); err != nil {
		panic(fmt.Sprintf("quiz: card %d: %v", record.ID, err))
	}
	return &Card{
		record:   record,
		choices:  choices,
		unlocked: unlocked,
		onUnlock: onUnlock,
	}
}

// Record returns the amendment shown on the card.
func (c *Card) Record() catalog.Amendment { return c.record }

// Choices returns the titles offered on the card.
func (c *Card) Choices() ChoiceSet { return c.choices }

// State returns the answering state.
func (c *Card) State() CardState { return c.state }

// Selected returns the picked title, if any.
func (c *Card) Selected() (string, bool) {
	return c.selected, c.state == CardAnswered
}

// Correct reports whether the scored pick was the right title.
func (c *Card) Correct() bool {
	return c.state == CardAnswered && c.selected == c.record.Title
}

// Feedback returns the message for the current state ("" until answered).
func (c *Card) Feedback() string { return c.feedback }

// Unlocked reports whether the card may be dragged to the timeline.
func (c *Card) Unlocked() bool { return c.unlocked }

// SetUnlocked mirrors the controller's unlocked set onto the card.
func (c *Card) SetUnlocked(v bool) { c.unlocked = v }

// Select scores a pick. It returns false when the pick was ignored because
// the card is already answered or unlocked, or choice is not on the card.
func (c *Card) Select(choice string) bool {
	if c.state != CardUnanswered || c.unlocked {
		return false
	}
	if c.choices.Index(choice) < 0 {
		return false
	}

	c.state = CardAnswered
	c.selected = choice
	if choice != c.record.Title {
		c.feedback = FeedbackRetry
		return true
	}

	c.feedback = FeedbackCorrect
	if !c.unlocked {
		c.unlocked = true
		if c.onUnlock != nil {
			c.onUnlock()
		}
	}
	return true
}

// Role returns how choice behaves in the current state.
func (c *Card) Role(choice string) ChoiceRole {
	switch {
	case c.unlocked && choice == c.record.Title:
		return RoleDragSource
	case c.unlocked || c.state == CardAnswered:
		return RoleStatic
	default:
		return RoleButton
	}
}

// DragPayload returns the payload carried when the card is dragged. It is
// only available once the card is unlocked.
func (c *Card) DragPayload() (dnd.Payload, bool) {
	if !c.unlocked {
		return dnd.Payload{}, false
	}
	return CardPayload(c.record.ID), true
}
