package browse

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sflc/amendments/internal/catalog"
	"github.com/sflc/amendments/internal/router"
	"github.com/sflc/amendments/internal/screen"
	"github.com/sflc/amendments/internal/ui/components"
	"github.com/sflc/amendments/internal/ui/layout"
	"github.com/sflc/amendments/internal/ui/theme"
)

// BrowseScreen lists the catalog with a live filter.
type BrowseScreen struct {
	records  []catalog.Amendment
	filter   components.TextInput
	matches  []catalog.Amendment
	selected int
}

var _ screen.Screen = (*BrowseScreen)(nil)

// New creates a BrowseScreen over records.
func New(records []catalog.Amendment) *BrowseScreen {
	b := &BrowseScreen{
		records: records,
		filter:  components.NewTextInput("filter by title, year, text or #id", 40),
	}
	b.refresh()
	return b
}

// Filter returns the records whose year, title or definition contain query.
// "#N" selects the record with ID N. Matching is case-insensitive; an empty
// query matches everything.
func Filter(records []catalog.Amendment, query string) []catalog.Amendment {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records
	}
	out := []catalog.Amendment{}
	if id, ok := strings.CutPrefix(query, "#"); ok {
		for _, a := range records {
			if strconv.Itoa(a.ID) == id {
				out = append(out, a)
			}
		}
		return out
	}
	for _, a := range records {
		if strings.Contains(strconv.Itoa(a.Year), query) ||
			strings.Contains(strings.ToLower(a.Title), query) ||
			strings.Contains(strings.ToLower(a.Definition), query) {
			out = append(out, a)
		}
	}
	return out
}

func (b *BrowseScreen) refresh() {
	b.matches = Filter(b.records, b.filter.Query())
	if b.selected >= len(b.matches) {
		b.selected = max(0, len(b.matches)-1)
	}
}

func (b *BrowseScreen) Init() tea.Cmd {
	return b.filter.Init()
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc":
			if b.filter.Value() != "" {
				b.filter.Reset()
				b.refresh()
				return b, nil
			}
			return b, func() tea.Msg { return router.PopScreenMsg{} }
		case "up":
			if b.selected > 0 {
				b.selected--
			}
			return b, nil
		case "down":
			if b.selected < len(b.matches)-1 {
				b.selected++
			}
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.filter, cmd = b.filter.Update(msg)
	b.refresh()
	return b, cmd
}

// Selected returns the highlighted record, if any match.
func (b *BrowseScreen) Selected() (catalog.Amendment, bool) {
	if len(b.matches) == 0 {
		return catalog.Amendment{}, false
	}
	return b.matches[b.selected], true
}

func (b *BrowseScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var rows []string
	rows = append(rows, b.filter.View(), "")

	if len(b.matches) == 0 {
		rows = append(rows, theme.Hint.Render("No amendments match."))
	}

	// keep the selection inside the visible window
	visible := max(3, height-12)
	start := 0
	if b.selected >= visible {
		start = b.selected - visible + 1
	}
	end := min(len(b.matches), start+visible)

	for i := start; i < end; i++ {
		a := b.matches[i]
		line := fmt.Sprintf("%2d. %-26s %d", a.ID, a.Title, a.Year)
		if i == b.selected {
			rows = append(rows, theme.ChoiceFocused.Render("▸ "+line))
		} else {
			rows = append(rows, theme.Body.Render("  "+line))
		}
	}

	if a, ok := b.Selected(); ok {
		detail := lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(cw - 6).
			Render(a.Definition)
		rows = append(rows, "", components.Panel(detail, cw))
	}

	content := lipgloss.NewStyle().Width(cw).Render(strings.Join(rows, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (b *BrowseScreen) Title() string {
	return "Browse"
}

// KeyHints returns the footer hints for the browse screen.
func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Type", Description: "Filter"},
		{Key: "↑↓", Description: "Select"},
		{Key: "Esc", Description: "Clear / Back"},
	}
}
