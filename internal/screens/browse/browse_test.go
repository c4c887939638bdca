package browse

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sflc/amendments/internal/catalog"
	"github.com/sflc/amendments/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(b *BrowseScreen, s string) {
	for _, r := range s {
		b.Update(keyPress(r))
	}
}

func TestFilter(t *testing.T) {
	all := catalog.All()

	tests := []struct {
		name    string
		query   string
		wantIDs []int
	}{
		{"empty matches all", "  ", nil},
		{"title", "twenty-sixth", []int{26}},
		{"case-insensitive definition", "PROHIBITION", []int{18, 21}},
		{"year", "1992", []int{27}},
		{"exact id", "#19", []int{19}},
		{"unknown id", "#30", []int{}},
		{"no match", "zzz", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(all, tt.query)
			if tt.wantIDs == nil {
				assert.Len(t, got, len(all))
				return
			}
			ids := make([]int, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestTypingFilters(t *testing.T) {
	b := New(catalog.All())
	typeText(b, "1992")

	a, ok := b.Selected()
	require.True(t, ok)
	assert.Equal(t, 27, a.ID)
	assert.Contains(t, b.View(100, 30), "Twenty-seventh Amendment")
}

func TestSelectionMoves(t *testing.T) {
	b := New(catalog.All())

	b.Update(specialKey(tea.KeyDown))
	b.Update(specialKey(tea.KeyDown))
	a, _ := b.Selected()
	assert.Equal(t, 3, a.ID)

	b.Update(specialKey(tea.KeyUp))
	a, _ = b.Selected()
	assert.Equal(t, 2, a.ID)
}

func TestSelectionClampedWhenFilterNarrows(t *testing.T) {
	b := New(catalog.All())
	for range 10 {
		b.Update(specialKey(tea.KeyDown))
	}
	typeText(b, "1992")

	a, ok := b.Selected()
	require.True(t, ok)
	assert.Equal(t, 27, a.ID)
}

func TestEscClearsThenPops(t *testing.T) {
	b := New(catalog.All())
	typeText(b, "zzz")
	_, ok := b.Selected()
	assert.False(t, ok)
	assert.Contains(t, b.View(100, 30), "No amendments match.")

	_, cmd := b.Update(specialKey(tea.KeyEscape))
	assert.Nil(t, cmd)
	assert.Empty(t, b.filter.Value())

	_, cmd = b.Update(specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)
	_, ok = cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}
