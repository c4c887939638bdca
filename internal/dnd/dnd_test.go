package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dropRecord struct {
	target  int
	payload Payload
}

func newTestManager(ids ...int) (*Manager, *[]dropRecord) {
	var drops []dropRecord
	m := NewManager()
	for _, id := range ids {
		id := id
		m.RegisterTarget(Target{
			ID:     id,
			Accept: func(p Payload) bool { return p.Type == "CARD" && p.ID == id },
			OnDrop: func(p Payload) { drops = append(drops, dropRecord{target: id, payload: p}) },
		})
	}
	return m, &drops
}

func TestBegin_UnknownSource(t *testing.T) {
	m, _ := newTestManager(1, 2)
	assert.False(t, m.Begin("card-1"))
	_, dragging := m.Dragging()
	assert.False(t, dragging)
}

func TestBegin_RejectsSecondDrag(t *testing.T) {
	m, _ := newTestManager(1)
	m.RegisterSource("card-1", Payload{Type: "CARD", ID: 1})
	require.True(t, m.Begin("card-1"))
	assert.False(t, m.Begin("card-1"))
}

func TestDrop_MatchingTargetFiresOnce(t *testing.T) {
	m, drops := newTestManager(1, 2, 3)
	m.RegisterSource("card-2", Payload{Type: "CARD", ID: 2})

	require.True(t, m.Begin("card-2"))
	m.Move(1)
	assert.True(t, m.CanDrop())
	assert.True(t, m.Drop())

	require.Len(t, *drops, 1)
	assert.Equal(t, dropRecord{target: 2, payload: Payload{Type: "CARD", ID: 2}}, (*drops)[0])

	// The gesture is over; a second drop does nothing.
	assert.False(t, m.Drop())
	assert.Len(t, *drops, 1)
}

func TestDrop_MismatchedTargetRejected(t *testing.T) {
	m, drops := newTestManager(1, 2, 3)
	m.RegisterSource("card-2", Payload{Type: "CARD", ID: 2})

	require.True(t, m.Begin("card-2"))
	m.HoverAt(2)
	assert.False(t, m.CanDrop())
	assert.False(t, m.Drop())
	assert.Empty(t, *drops)

	_, dragging := m.Dragging()
	assert.False(t, dragging, "a rejected drop still ends the gesture")
}

func TestDrop_WrongPayloadType(t *testing.T) {
	m, drops := newTestManager(1)
	m.RegisterSource("note", Payload{Type: "NOTE", ID: 1})
	require.True(t, m.Begin("note"))
	assert.False(t, m.Drop())
	assert.Empty(t, *drops)
}

func TestMove_Clamps(t *testing.T) {
	m, _ := newTestManager(1, 2, 3)
	m.RegisterSource("card-1", Payload{Type: "CARD", ID: 1})

	// Not dragging: no hover.
	m.Move(1)
	_, ok := m.Hovered()
	assert.False(t, ok)

	require.True(t, m.Begin("card-1"))
	m.Move(-5)
	i, _ := m.Hovered()
	assert.Equal(t, 0, i)

	m.Move(10)
	i, _ = m.Hovered()
	assert.Equal(t, 2, i)
}

func TestFeedback(t *testing.T) {
	m, _ := newTestManager(1, 2)
	m.RegisterSource("card-1", Payload{Type: "CARD", ID: 1})

	assert.Equal(t, Feedback{}, m.Feedback(0))

	require.True(t, m.Begin("card-1"))
	assert.Equal(t, Feedback{Over: true, CanDrop: true}, m.Feedback(0))
	assert.Equal(t, Feedback{}, m.Feedback(1))

	m.Move(1)
	assert.Equal(t, Feedback{}, m.Feedback(0))
	assert.Equal(t, Feedback{Over: true, CanDrop: false}, m.Feedback(1))
}

func TestCancel(t *testing.T) {
	m, drops := newTestManager(1)
	m.RegisterSource("card-1", Payload{Type: "CARD", ID: 1})
	require.True(t, m.Begin("card-1"))
	m.Cancel()

	assert.False(t, m.Drop())
	assert.Empty(t, *drops)
}

func TestSourceRegistrationIsStable(t *testing.T) {
	m := NewManager()
	m.RegisterSource("card-1", Payload{Type: "CARD", ID: 1})
	m.RegisterSource("card-1", Payload{Type: "CARD", ID: 1})
	assert.True(t, m.HasSource("card-1"))

	m.UnregisterSource("card-1")
	assert.False(t, m.HasSource("card-1"))
	assert.False(t, m.Begin("card-1"))
}
