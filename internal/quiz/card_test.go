package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sflc/amendments/internal/catalog"
)

var first = catalog.Amendment{
	ID:         1,
	Year:       1791,
	Title:      "First Amendment",
	Definition: "Freedom of religion, speech, press, assembly, and petition.",
}

var firstChoices = ChoiceSet{"Fifth Amendment", "First Amendment", "Ninth Amendment", "Second Amendment"}

func TestCard_CorrectSelectionUnlocksOnce(t *testing.T) {
	calls := 0
	c := NewCard(first, firstChoices, false, func() { calls++ })

	require.True(t, c.Select("First Amendment"))
	assert.Equal(t, 1, calls)
	assert.Equal(t, CardAnswered, c.State())
	assert.True(t, c.Correct())
	assert.True(t, c.Unlocked())
	assert.Equal(t, FeedbackCorrect, c.Feedback())

	// Answered and unlocked: further picks are not scored and never re-fire.
	assert.False(t, c.Select("First Amendment"))
	assert.False(t, c.Select("Fifth Amendment"))
	assert.Equal(t, 1, calls)
}

func TestCard_IncorrectSelectionLocks(t *testing.T) {
	calls := 0
	c := NewCard(first, firstChoices, false, func() { calls++ })

	require.True(t, c.Select("Ninth Amendment"))
	assert.Zero(t, calls)
	assert.False(t, c.Unlocked())
	assert.False(t, c.Correct())
	assert.Equal(t, FeedbackRetry, c.Feedback())

	sel, ok := c.Selected()
	assert.True(t, ok)
	assert.Equal(t, "Ninth Amendment", sel)

	// One attempt only: the right answer afterwards is ignored.
	assert.False(t, c.Select("First Amendment"))
	assert.Zero(t, calls)
	assert.False(t, c.Unlocked())
	assert.Equal(t, FeedbackRetry, c.Feedback())
}

func TestCard_AlreadyUnlockedDoesNotFire(t *testing.T) {
	calls := 0
	c := NewCard(first, firstChoices, true, func() { calls++ })
	assert.False(t, c.Select("First Amendment"))
	assert.Zero(t, calls)
}

func TestCard_UnknownChoiceIgnored(t *testing.T) {
	c := NewCard(first, firstChoices, false, nil)
	assert.False(t, c.Select("Tenth Amendment"))
	assert.Equal(t, CardUnanswered, c.State())
	assert.Empty(t, c.Feedback())
}

func TestCard_Roles(t *testing.T) {
	c := NewCard(first, firstChoices, false, nil)
	for _, choice := range firstChoices {
		assert.Equal(t, RoleButton, c.Role(choice), choice)
	}

	c.Select("First Amendment")
	assert.Equal(t, RoleDragSource, c.Role("First Amendment"))
	assert.Equal(t, RoleStatic, c.Role("Fifth Amendment"))
	assert.Equal(t, RoleStatic, c.Role("Second Amendment"))

	wrong := NewCard(first, firstChoices, false, nil)
	wrong.Select("Fifth Amendment")
	for _, choice := range firstChoices {
		assert.Equal(t, RoleStatic, wrong.Role(choice), choice)
	}
}

func TestCard_DragPayload(t *testing.T) {
	c := NewCard(first, firstChoices, false, nil)
	_, ok := c.DragPayload()
	assert.False(t, ok)

	c.SetUnlocked(true)
	p, ok := c.DragPayload()
	require.True(t, ok)
	assert.Equal(t, CardPayload(1), p)
}

func TestNewCard_MalformedChoicesPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewCard(first, ChoiceSet{"A", "B", "C"}, false, nil)
	})
	assert.Panics(t, func() {
		NewCard(first, ChoiceSet{"A", "B", "C", "D"}, false, nil)
	})
}
