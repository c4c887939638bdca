package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sflc/amendments/internal/catalog"
	"github.com/sflc/amendments/internal/shuffle"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("session-%d", n)
	}
}

func newOrderedController(t *testing.T) *Controller {
	t.Helper()
	return New(catalog.All(), WithSource(shuffle.Identity), WithIDGenerator(sequentialIDs()))
}

func TestNew_Initializes(t *testing.T) {
	c := New(catalog.All(), WithSource(shuffle.NewSource(1)))

	assert.Equal(t, 27, c.Len())
	assert.Zero(t, c.Index())
	assert.Zero(t, c.PlacedCount())
	assert.False(t, c.Celebrating())
	assert.False(t, c.ActiveUnlocked())
	assert.NotEmpty(t, c.SessionID())
	assert.ElementsMatch(t, catalog.All(), c.Order())
	assert.Equal(t, catalog.All(), c.Records(), "timeline keeps catalog order")
}

func TestNew_EmptyRecordsPanics(t *testing.T) {
	assert.PanicsWithValue(t, "quiz: controller needs at least one record", func() {
		New(nil)
	})
}

func TestChoices_StableForActiveRecord(t *testing.T) {
	c := New(catalog.All(), WithSource(shuffle.NewSource(8)))

	a := c.Choices()
	b := c.Choices()
	assert.Equal(t, a, b)
	require.NoError(t, a.Validate(c.Active().Title))

	c.HandleUnlock()
	c.HandleDrop(c.Active().ID, c.Active().ID)
	next := c.Choices()
	require.NoError(t, next.Validate(c.Active().Title))
}

func TestHandleUnlock_Idempotent(t *testing.T) {
	c := newOrderedController(t)
	c.HandleUnlock()
	c.HandleUnlock()
	assert.True(t, c.IsUnlocked(1))
	assert.True(t, c.ActiveUnlocked())
	assert.False(t, c.IsUnlocked(2))
}

func TestHandleDrop_AdvancesUntilLast(t *testing.T) {
	c := newOrderedController(t)

	for i := 0; i < c.Len(); i++ {
		before := c.Index()
		id := c.Active().ID
		c.HandleUnlock()
		c.HandleDrop(id, id)

		assert.True(t, c.IsPlaced(id))
		if before < c.Len()-1 {
			assert.Equal(t, before+1, c.Index())
		} else {
			assert.Equal(t, before, c.Index(), "last card stays active")
		}
	}
	assert.True(t, c.Complete())
	assert.Equal(t, 27, c.PlacedCount())
}

func TestCelebration_EndsWithToken(t *testing.T) {
	c := newOrderedController(t)
	tok := c.HandleDrop(1, 1)
	assert.True(t, c.Celebrating())

	assert.True(t, c.EndCelebration(tok))
	assert.False(t, c.Celebrating())
	assert.False(t, c.EndCelebration(tok), "already ended")
}

// A second drop before the first window closes restarts the window: the
// first placement's timer must not clear the flag early.
func TestController_OverlappingDropsKeepCelebration(t *testing.T) {
	c := newOrderedController(t)

	first := c.HandleDrop(1, 1)
	second := c.HandleDrop(2, 2)
	require.NotEqual(t, first, second)

	assert.False(t, c.EndCelebration(first))
	assert.True(t, c.Celebrating())

	assert.True(t, c.EndCelebration(second))
	assert.False(t, c.Celebrating())
}

func TestHandleShuffleAll_Resets(t *testing.T) {
	c := New(catalog.All(), WithSource(shuffle.NewSource(21)), WithIDGenerator(sequentialIDs()))
	prevOrder := c.Order()

	id := c.Active().ID
	c.HandleUnlock()
	tok := c.HandleDrop(id, id)
	require.Equal(t, 1, c.Index())

	c.HandleShuffleAll()

	assert.Zero(t, c.Index())
	assert.Zero(t, c.PlacedCount())
	assert.False(t, c.IsUnlocked(id))
	assert.False(t, c.IsPlaced(id))
	assert.Equal(t, "session-2", c.SessionID())
	assert.ElementsMatch(t, catalog.All(), c.Order())
	assert.NotEqual(t, prevOrder, c.Order())

	// Celebration is not cleared by the shuffle; its own token still ends it.
	assert.True(t, c.Celebrating())
	assert.True(t, c.EndCelebration(tok))
	assert.False(t, c.Celebrating())
}

func TestComplete_FalseUntilAllPlaced(t *testing.T) {
	c := newOrderedController(t)
	assert.False(t, c.Complete())
	c.HandleDrop(1, 1)
	assert.False(t, c.Complete())
}

// Walks the documented scenario: identity order, correct pick, placement,
// then the celebration timer firing.
func TestScenario_FirstAmendment(t *testing.T) {
	c := newOrderedController(t)
	require.Equal(t, 27, c.Len())

	active := c.Active()
	require.Equal(t, 1, active.ID)
	require.Equal(t, "First Amendment", active.Title)
	require.Equal(t, 1791, active.Year)

	choices := c.Choices()
	require.Len(t, choices, 4)

	card := NewCard(active, choices, c.ActiveUnlocked(), c.HandleUnlock)
	require.True(t, card.Select("First Amendment"))
	assert.True(t, c.IsUnlocked(1))

	payload, ok := card.DragPayload()
	require.True(t, ok)

	slot := Slot{ID: 1, Year: 1791}
	var tok Celebration
	dropped := slot.Drop(payload, func(draggedID, slotID int) {
		tok = c.HandleDrop(draggedID, slotID)
	})
	require.True(t, dropped)

	assert.True(t, c.IsPlaced(1))
	assert.True(t, c.Celebrating())
	assert.Equal(t, 1, c.Index())

	// CelebrationWindow later the timer delivers the token.
	assert.Equal(t, 3000, int(CelebrationWindow.Milliseconds()))
	c.EndCelebration(tok)
	assert.False(t, c.Celebrating())
}
