// Package practice is the flashcard and timeline screen. It owns the
// presentation state (focused choice, drag gesture, confetti frame) and
// reports every user action to a quiz.Controller.
package practice

import (
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/timer"
	tea "charm.land/bubbletea/v2"

	"github.com/sflc/amendments/internal/dnd"
	"github.com/sflc/amendments/internal/logging"
	"github.com/sflc/amendments/internal/quiz"
	"github.com/sflc/amendments/internal/router"
	"github.com/sflc/amendments/internal/screen"
	"github.com/sflc/amendments/internal/ui/components"
	"github.com/sflc/amendments/internal/ui/layout"
)

// confettiFrame is the celebration timer interval and confetti frame rate.
const confettiFrame = 100 * time.Millisecond

// PracticeScreen implements screen.Screen for a practice session.
type PracticeScreen struct {
	ctrl *quiz.Controller
	dnd  *dnd.Manager
	keys keyMap
	log  *slog.Logger

	card       components.Flashcard
	cardFor    int
	sourceKey  string
	timeline   components.Timeline
	shuffleBtn components.Button
	focus      int

	// celebration is the newest timer; older timers are dropped and their
	// ticks ignored.
	celebration timer.Model
	timerID     int
	token       quiz.Celebration
	confetti    components.Confetti

	lastDrop quiz.Celebration
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.ProgressProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen driving ctrl. A nil logger discards.
func New(ctrl *quiz.Controller, logger *slog.Logger) *PracticeScreen {
	if logger == nil {
		logger = logging.Discard()
	}
	p := &PracticeScreen{
		ctrl:     ctrl,
		dnd:      dnd.NewManager(),
		keys:     defaultKeyMap(),
		log:      logger,
		timeline: components.NewTimeline(ctrl.Records()),
	}
	p.shuffleBtn = components.NewButton("Shuffle Cards", "s", false, p.shuffleAll)

	for _, s := range p.timeline.Slots {
		p.dnd.RegisterTarget(s.Slot.Target(p.handleDrop))
	}
	p.syncCard()
	return p
}

func (p *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

// Progress reports placed and total slots for the header.
func (p *PracticeScreen) Progress() (int, int) {
	return p.ctrl.PlacedCount(), p.ctrl.Len()
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if _, dragging := p.dnd.Dragging(); dragging {
		return hints(p.keys.Left, p.keys.Right, p.keys.Drop, p.keys.Cancel)
	}
	return append([]layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "1-4", Description: "Pick"},
		{Key: "Enter", Description: "Pick / Drag"},
	}, hints(p.keys.Shuffle, p.keys.Back)...)
}

func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}

// syncCard rebuilds the flashcard when the active record changed. The drag
// source is registered once per active record.
func (p *PracticeScreen) syncCard() {
	active := p.ctrl.Active()
	if p.cardFor == active.ID && p.sourceKey != "" {
		return
	}
	if p.sourceKey != "" {
		p.dnd.UnregisterSource(p.sourceKey)
	}

	card := quiz.NewCard(active, p.ctrl.Choices(), p.ctrl.ActiveUnlocked(), p.ctrl.HandleUnlock)
	p.card = components.NewFlashcard(card)
	p.cardFor = active.ID
	p.sourceKey = components.SourceKey(active.ID)
	p.dnd.RegisterSource(p.sourceKey, quiz.CardPayload(active.ID))
}

// handleDrop is the on-drop callback shared by every timeline slot.
func (p *PracticeScreen) handleDrop(draggedID, slotID int) {
	p.lastDrop = p.ctrl.HandleDrop(draggedID, slotID)
	for i, s := range p.timeline.Slots {
		if s.Slot.ID == slotID {
			p.timeline.Place(slotID, p.card.Card().Record().Title)
			p.focus = i
			break
		}
	}
}

func (p *PracticeScreen) shuffleAll() tea.Cmd {
	p.dnd.Cancel()
	p.card.SetDragging(false)
	p.ctrl.HandleShuffleAll()
	p.timeline.Reset()
	p.focus = 0
	p.dnd.UnregisterSource(p.sourceKey)
	p.sourceKey = ""
	p.syncCard()
	return nil
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.UnlockMsg:
		// the card already unlocked the controller through its callback
		p.log.Debug("card unlocked", "session", p.ctrl.SessionID(), "card", msg.ID)
		return p, nil

	case components.DragStartMsg:
		return p, p.beginDrag(msg)

	case timer.TickMsg:
		if p.timerID == 0 || msg.ID != p.timerID {
			return p, nil
		}
		var cmd tea.Cmd
		p.celebration, cmd = p.celebration.Update(msg)
		p.confetti.Frame++
		return p, cmd

	case timer.TimeoutMsg:
		return p, p.endCelebration(msg.ID)

	case tea.KeyPressMsg:
		if _, dragging := p.dnd.Dragging(); dragging {
			return p, p.handleDragKey(msg)
		}
		return p, p.handleKey(msg)
	}
	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Back):
		return func() tea.Msg { return router.PopScreenMsg{} }
	case key.Matches(msg, p.keys.Shuffle):
		var cmd tea.Cmd
		p.shuffleBtn, cmd = p.shuffleBtn.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	p.card, cmd = p.card.Update(msg)
	return cmd
}

func (p *PracticeScreen) beginDrag(msg components.DragStartMsg) tea.Cmd {
	if p.ctrl.IsPlaced(msg.Payload.ID) {
		return nil
	}
	if !p.dnd.Begin(msg.Key) {
		p.log.Warn("drag source not registered", "session", p.ctrl.SessionID(), "key", msg.Key)
		return nil
	}
	p.dnd.HoverAt(p.focus)
	p.card.SetDragging(true)
	p.log.Debug("drag started", "session", p.ctrl.SessionID(), "card", msg.Payload.ID)
	return nil
}

func (p *PracticeScreen) handleDragKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Left):
		p.dnd.Move(-1)
	case key.Matches(msg, p.keys.Right):
		p.dnd.Move(1)
	case key.Matches(msg, p.keys.Cancel):
		p.dnd.Cancel()
		p.card.SetDragging(false)
	case key.Matches(msg, p.keys.Drop):
		return p.drop()
	}
	if i, ok := p.dnd.Hovered(); ok {
		p.focus = i
	}
	return nil
}

// drop ends the gesture on the hovered slot. An accepted drop has already
// gone through handleDrop; it starts a fresh celebration timer and moves
// to the next card.
func (p *PracticeScreen) drop() tea.Cmd {
	payload, _ := p.dnd.Dragging()
	hovered, _ := p.dnd.Hovered()
	p.card.SetDragging(false)

	if !p.dnd.Drop() {
		p.focus = hovered
		p.log.Info("drop rejected",
			"session", p.ctrl.SessionID(),
			"card", payload.ID,
			"slot", p.timeline.Slots[hovered].Slot.ID,
		)
		return nil
	}

	p.syncCard()
	return p.startCelebration(p.lastDrop)
}

func (p *PracticeScreen) startCelebration(tok quiz.Celebration) tea.Cmd {
	p.celebration = timer.New(quiz.CelebrationWindow, timer.WithInterval(confettiFrame))
	p.timerID = p.celebration.ID()
	p.token = tok
	p.confetti = components.Confetti{Seed: uint64(tok)}

	p.log.Debug("celebration started", "session", p.ctrl.SessionID(), "timer", p.timerID)
	return p.celebration.Init()
}

// endCelebration handles a timeout. Only the newest timer carries a token;
// a replaced timer has nothing to end.
func (p *PracticeScreen) endCelebration(id int) tea.Cmd {
	if id == 0 || id != p.timerID {
		return nil
	}
	p.ctrl.EndCelebration(p.token)
	p.timerID = 0
	return nil
}
