// Package quiz implements the flashcard and timeline session: which card is
// active, which cards were answered, which timeline slots were filled, and
// the celebration window after each placement.
package quiz

import (
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/sflc/amendments/internal/catalog"
	"github.com/sflc/amendments/internal/logging"
	"github.com/sflc/amendments/internal/shuffle"
)

// CelebrationWindow is how long the celebration lasts after a placement.
const CelebrationWindow = 3 * time.Second

// Celebration identifies one placement's celebration. Only the most recent
// token can end the celebration.
type Celebration uint64

// Option configures a Controller.
type Option func(*Controller)

// WithSource sets the randomness used for ordering and choice sets.
func WithSource(src shuffle.Source) Option {
	return func(c *Controller) { c.src = src }
}

// WithLogger sets the logger for session events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithIDGenerator overrides how session IDs are minted.
func WithIDGenerator(gen func() string) Option {
	return func(c *Controller) { c.newID = gen }
}

// Controller owns the session state. Presenters never mutate it directly;
// they report user actions through the Handle* methods.
type Controller struct {
	records []catalog.Amendment
	src     shuffle.Source
	log     *slog.Logger
	newID   func() string

	sessionID   string
	order       []catalog.Amendment
	index       int
	unlocked    map[int]bool
	placed      map[int]bool
	celebrating bool
	celebration Celebration

	// choices memoizes DeriveChoices for the active record.
	choices    ChoiceSet
	choicesFor int
}

// New creates a Controller over records and initializes the first session.
// records must not be empty; an empty catalog is a caller bug and panics.
func New(records []catalog.Amendment, opts ...Option) *Controller {
	if len(records) == 0 {
		panic("quiz: controller needs at least one record")
	}
	c := &Controller{
		records: slices.Clone(records),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.src == nil {
		c.src = shuffle.NewSource(0)
	}
	if c.log == nil {
		c.log = logging.Discard()
	}
	c.Initialize()
	return c
}

// Initialize starts a fresh session: a new shuffle, the first card active
// and nothing unlocked or placed. The celebration flag is left alone; a
// pending celebration still ends through its own token.
func (c *Controller) Initialize() {
	c.sessionID = c.newID()
	c.order = shuffle.Shuffle(c.src, c.records)
	c.index = 0
	c.unlocked = make(map[int]bool)
	c.placed = make(map[int]bool)
	c.choices = nil
	c.choicesFor = 0

	c.log.Info("session initialized",
		"session", c.sessionID,
		"cards", len(c.order),
		"first", c.Active().ID,
	)
}

// HandleShuffleAll discards progress and starts over with a new order.
func (c *Controller) HandleShuffleAll() {
	c.log.Info("shuffle all", "session", c.sessionID, "placed", len(c.placed))
	c.Initialize()
}

// Active returns the record on the current card.
func (c *Controller) Active() catalog.Amendment {
	return c.order[c.index]
}

// Choices returns the choice set for the active record. The set is derived
// once per active record so it stays stable across renders.
func (c *Controller) Choices() ChoiceSet {
	active := c.Active()
	if c.choices == nil || c.choicesFor != active.ID {
		c.choices = DeriveChoices(c.src, c.order, c.index)
		c.choicesFor = active.ID
	}
	return slices.Clone(c.choices)
}

// HandleUnlock marks the active record as answered correctly. Calling it
// again for the same record is a no-op.
func (c *Controller) HandleUnlock() {
	id := c.Active().ID
	if c.unlocked[id] {
		return
	}
	c.unlocked[id] = true
	c.log.Info("card unlocked", "session", c.sessionID, "id", id)
}

// HandleDrop records a placement on slotID, starts a celebration and moves
// to the next card unless the active card is the last one. The caller has
// already checked that draggedID matches slotID. The returned token ends
// this celebration via EndCelebration.
func (c *Controller) HandleDrop(draggedID, slotID int) Celebration {
	c.placed[slotID] = true
	c.celebrating = true
	c.celebration++

	c.log.Info("placement accepted",
		"session", c.sessionID,
		"card", draggedID,
		"slot", slotID,
		"index", c.index,
	)

	if c.index < len(c.order)-1 {
		c.index++
	}
	return c.celebration
}

// EndCelebration clears the celebration flag if tok belongs to the most
// recent placement. Tokens from earlier placements are ignored so the flag
// stays up for a full CelebrationWindow after the latest drop.
func (c *Controller) EndCelebration(tok Celebration) bool {
	if tok != c.celebration || !c.celebrating {
		return false
	}
	c.celebrating = false
	c.log.Debug("celebration ended", "session", c.sessionID)
	return true
}

// SessionID identifies the current session in logs.
func (c *Controller) SessionID() string { return c.sessionID }

// Index returns the position of the active card in Order.
func (c *Controller) Index() int { return c.index }

// Len returns the number of cards in the session.
func (c *Controller) Len() int { return len(c.order) }

// Order returns the current card sequence.
func (c *Controller) Order() []catalog.Amendment { return slices.Clone(c.order) }

// Records returns the catalog in its fixed order, as used by the timeline.
func (c *Controller) Records() []catalog.Amendment { return slices.Clone(c.records) }

// IsUnlocked reports whether the record with id was answered correctly.
func (c *Controller) IsUnlocked(id int) bool { return c.unlocked[id] }

// ActiveUnlocked reports whether the active card is unlocked.
func (c *Controller) ActiveUnlocked() bool { return c.unlocked[c.Active().ID] }

// IsPlaced reports whether the slot with id has been filled.
func (c *Controller) IsPlaced(id int) bool { return c.placed[id] }

// PlacedCount returns how many slots have been filled.
func (c *Controller) PlacedCount() int { return len(c.placed) }

// Celebrating reports whether a celebration is showing.
func (c *Controller) Celebrating() bool { return c.celebrating }

// Complete reports whether every slot on the timeline has been filled.
func (c *Controller) Complete() bool {
	for _, r := range c.records {
		if !c.placed[r.ID] {
			return false
		}
	}
	return len(c.records) > 0
}
