package home

import (
	tea "charm.land/bubbletea/v2"

	"github.com/sflc/amendments/internal/catalog"
	"github.com/sflc/amendments/internal/router"
	"github.com/sflc/amendments/internal/screen"
	"github.com/sflc/amendments/internal/ui/components"
	"github.com/sflc/amendments/internal/ui/layout"
)

// Factories build the screens reachable from the home menu. They are
// called each time the entry is chosen, so every practice run starts fresh.
type Factories struct {
	Practice func() screen.Screen
	Browse   func() screen.Screen
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(f Factories) *HomeScreen {
	menuLabels := []string{"START PRACTICE", "BROWSE AMENDMENTS", "EXIT"}

	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			if factory == nil {
				return nil
			}
			s := factory()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: s}
			}
		}
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: push(f.Practice), Disabled: f.Practice == nil},
		{Label: menuLabels[1], Action: push(f.Browse), Disabled: f.Browse == nil},
		{Label: menuLabels[2], Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)
	first, last := catalog.YearSpan()

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderEmblem(cw))
	}
	sections = append(sections,
		renderStatsBar(catalog.Len(), first, last, cw, compact),
		renderMenu(h.menuLabels, h.menu.Selected, cw, compact),
	)

	content := sections[0]
	for _, s := range sections[1:] {
		content += "\n\n" + s
	}
	return components.Frame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// KeyHints returns the footer hints for the home screen.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "1-3", Description: "Jump"},
	}
}
