package app

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sflc/amendments/internal/catalog"
	"github.com/sflc/amendments/internal/config"
	"github.com/sflc/amendments/internal/logging"
	"github.com/sflc/amendments/internal/quiz"
	"github.com/sflc/amendments/internal/router"
	"github.com/sflc/amendments/internal/screen"
	"github.com/sflc/amendments/internal/screens/browse"
	"github.com/sflc/amendments/internal/screens/home"
	"github.com/sflc/amendments/internal/screens/practice"
	"github.com/sflc/amendments/internal/screens/welcome"
	"github.com/sflc/amendments/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Config config.Config
	Logger *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome screen, or on
// the home screen when the splash is skipped.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	cfg := opts.Config

	newHome := func() screen.Screen {
		return home.New(home.Factories{
			Practice: func() screen.Screen {
				ctrl := quiz.New(catalog.All(),
					quiz.WithSource(cfg.Source()),
					quiz.WithLogger(logger),
				)
				logger.Info("practice started", "session", ctrl.SessionID(), "mode", cfg.SeedMode())
				return practice.New(ctrl, logger)
			},
			Browse: func() screen.Screen {
				return browse.New(catalog.All())
			},
		})
	}

	var initial screen.Screen
	if cfg.SkipSplash {
		initial = newHome()
	} else {
		initial = welcome.New(newHome)
	}

	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var placed, total int
	if active != nil {
		title = active.Title()
		if pp, ok := active.(screen.ProgressProvider); ok {
			placed, total = pp.Progress()
		}
	}

	header := layout.RenderHeader(title, placed, total, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if khp, ok := active.(screen.KeyHintProvider); ok {
		return append(khp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
