// Package dnd provides keyboard-driven drag and drop for terminal screens.
//
// A screen registers drag sources (a stable key plus a typed payload) and
// drop targets (an acceptance rule plus a drop callback). While a drag is in
// progress the screen moves a hover cursor across the targets; the manager
// reports hover and validity feedback and only calls a target's OnDrop when
// the target accepts the carried payload.
package dnd

// Payload is the typed value carried by a drag gesture.
type Payload struct {
	Type string
	ID   int
}

// Target is a registered drop target.
type Target struct {
	ID     int
	Accept func(Payload) bool
	OnDrop func(Payload)
}

// Feedback describes how a target should render during a drag.
type Feedback struct {
	Over    bool // the hover cursor is on this target
	CanDrop bool // the carried payload would be accepted here
}

// Manager tracks registrations and the active drag gesture.
type Manager struct {
	sources  map[string]Payload
	targets  []Target
	dragging bool
	payload  Payload
	hover    int
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{sources: make(map[string]Payload)}
}

// RegisterSource makes key draggable with payload p. Registering the same
// key again replaces its payload.
func (m *Manager) RegisterSource(key string, p Payload) {
	m.sources[key] = p
}

// UnregisterSource removes a drag source. A drag already started from it
// keeps its payload.
func (m *Manager) UnregisterSource(key string) {
	delete(m.sources, key)
}

// HasSource reports whether key is registered.
func (m *Manager) HasSource(key string) bool {
	_, ok := m.sources[key]
	return ok
}

// RegisterTarget appends a drop target. Targets keep registration order,
// which is the order the hover cursor walks.
func (m *Manager) RegisterTarget(t Target) {
	m.targets = append(m.targets, t)
}

// Targets returns the number of registered targets.
func (m *Manager) Targets() int {
	return len(m.targets)
}

// Begin starts dragging the source registered under key with the hover
// cursor on the first target. Returns false if key is unknown or a drag is
// already active.
func (m *Manager) Begin(key string) bool {
	if m.dragging {
		return false
	}
	p, ok := m.sources[key]
	if !ok {
		return false
	}
	m.dragging = true
	m.payload = p
	m.hover = 0
	return true
}

// Dragging returns the carried payload while a drag is active.
func (m *Manager) Dragging() (Payload, bool) {
	return m.payload, m.dragging
}

// Move shifts the hover cursor by delta targets, clamped to the ends.
func (m *Manager) Move(delta int) {
	if !m.dragging || len(m.targets) == 0 {
		return
	}
	m.hover = clamp(m.hover+delta, 0, len(m.targets)-1)
}

// HoverAt places the hover cursor on the target at index i.
func (m *Manager) HoverAt(i int) {
	if !m.dragging || len(m.targets) == 0 {
		return
	}
	m.hover = clamp(i, 0, len(m.targets)-1)
}

// Hovered returns the index of the hovered target while dragging.
func (m *Manager) Hovered() (int, bool) {
	if !m.dragging || len(m.targets) == 0 {
		return 0, false
	}
	return m.hover, true
}

// CanDrop reports whether the hovered target accepts the carried payload.
func (m *Manager) CanDrop() bool {
	i, ok := m.Hovered()
	if !ok {
		return false
	}
	return accepts(m.targets[i], m.payload)
}

// Feedback returns the presentation state of the target at index i.
func (m *Manager) Feedback(i int) Feedback {
	h, ok := m.Hovered()
	if !ok || h != i {
		return Feedback{}
	}
	return Feedback{Over: true, CanDrop: accepts(m.targets[i], m.payload)}
}

// Drop ends the drag over the hovered target. The target's OnDrop runs
// exactly once when it accepts the payload; otherwise the drop is rejected
// and nothing is called. Either way the gesture is over.
func (m *Manager) Drop() bool {
	i, ok := m.Hovered()
	if !ok {
		m.Cancel()
		return false
	}
	t, p := m.targets[i], m.payload
	m.Cancel()

	if !accepts(t, p) {
		return false
	}
	if t.OnDrop != nil {
		t.OnDrop(p)
	}
	return true
}

// Cancel abandons the active drag, if any.
func (m *Manager) Cancel() {
	m.dragging = false
	m.payload = Payload{}
	m.hover = 0
}

func accepts(t Target, p Payload) bool {
	return t.Accept != nil && t.Accept(p)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
