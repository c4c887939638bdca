package quiz

import "github.com/sflc/amendments/internal/dnd"

// PayloadType tags drag payloads that carry an amendment card.
const PayloadType = "CARD"

// CardPayload returns the drag payload for the amendment with the given ID.
func CardPayload(id int) dnd.Payload {
	return dnd.Payload{Type: PayloadType, ID: id}
}

// Slot is one year position on the timeline, bound to a single amendment.
type Slot struct {
	ID   int
	Year int
}

// Accepts reports whether p may be dropped here: only the card whose ID
// matches the slot is accepted.
func (s Slot) Accepts(p dnd.Payload) bool {
	return p.Type == PayloadType && p.ID == s.ID
}

// Drop calls onDrop(p.ID, s.ID) once if the slot accepts p and reports
// whether it did.
func (s Slot) Drop(p dnd.Payload, onDrop func(draggedID, slotID int)) bool {
	if !s.Accepts(p) {
		return false
	}
	onDrop(p.ID, s.ID)
	return true
}

// Target adapts the slot into a dnd drop target.
func (s Slot) Target(onDrop func(draggedID, slotID int)) dnd.Target {
	return dnd.Target{
		ID:     s.ID,
		Accept: s.Accepts,
		OnDrop: func(p dnd.Payload) { s.Drop(p, onDrop) },
	}
}
