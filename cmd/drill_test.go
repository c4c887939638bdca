package cmd

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sflc/amendments/internal/catalog"
	"github.com/sflc/amendments/internal/quiz"
	"github.com/sflc/amendments/internal/shuffle"
)

// orderedController presents the catalog in order; with the identity
// source the right title is always choice 1.
func orderedController() *quiz.Controller {
	return quiz.New(catalog.All(), quiz.WithSource(shuffle.Identity))
}

func TestRunDrill_PlacesCards(t *testing.T) {
	ctrl := orderedController()
	in := strings.NewReader("1\n1\n1\n2\n")
	var out bytes.Buffer

	res := runDrill(in, &out, ctrl, 2)

	assert.Equal(t, drillResult{Attempted: 2, Placed: 2, OnTimeline: 2}, res)
	assert.True(t, ctrl.IsPlaced(1))
	assert.True(t, ctrl.IsPlaced(2))
	assert.False(t, ctrl.Celebrating())
	assert.Contains(t, out.String(), "Freedom of religion")
	assert.Contains(t, out.String(), "Placed on 1. 1791")
}

func TestRunDrill_WrongSlotReprompts(t *testing.T) {
	ctrl := orderedController()
	in := strings.NewReader("1\n5\n99\nabc\n1\n")
	var out bytes.Buffer

	res := runDrill(in, &out, ctrl, 1)

	assert.Equal(t, 1, res.Placed)
	assert.False(t, ctrl.IsPlaced(5))
	assert.Contains(t, out.String(), "Slot 5. 1791 does not take this card.")
	assert.Contains(t, out.String(), `No slot "99" on the timeline.`)
	assert.Contains(t, out.String(), `No slot "abc" on the timeline.`)
}

func TestRunDrill_WrongPickReshuffles(t *testing.T) {
	ctrl := orderedController()
	first := ctrl.SessionID()
	in := strings.NewReader("3\n")
	var out bytes.Buffer

	res := runDrill(in, &out, ctrl, 1)

	assert.Equal(t, drillResult{Attempted: 1, Missed: 1}, res)
	assert.NotEqual(t, first, ctrl.SessionID())
	assert.Contains(t, out.String(), quiz.FeedbackRetry)
}

func TestRunDrill_SummaryAfterReshuffle(t *testing.T) {
	ctrl := orderedController()
	in := strings.NewReader("1\n1\n3\n")
	var out bytes.Buffer

	res := runDrill(in, &out, ctrl, 2)

	assert.Equal(t, drillResult{Attempted: 2, Placed: 1, Missed: 1, OnTimeline: 0}, res)
	assert.Equal(t, ctrl.PlacedCount(), res.OnTimeline)
	assert.Equal(t, "── Summary: 1/2 placed this drill, 1 missed, 0 on the timeline ──", res.summary())
}

func TestRunDrill_InvalidPickReprompts(t *testing.T) {
	ctrl := orderedController()
	in := strings.NewReader("7\nx\n1\n1\n")
	var out bytes.Buffer

	res := runDrill(in, &out, ctrl, 1)

	assert.Equal(t, 1, res.Placed)
	assert.Equal(t, 2, strings.Count(out.String(), "Enter a number from 1 to 4."))
}

func TestRunDrill_InputClosed(t *testing.T) {
	ctrl := orderedController()
	var out bytes.Buffer

	res := runDrill(strings.NewReader(""), &out, ctrl, 3)

	assert.Zero(t, res.Attempted)
	assert.Contains(t, out.String(), "(input closed)")
}

func TestRunDrill_CompletesTimeline(t *testing.T) {
	ctrl := orderedController()
	var script strings.Builder
	for id := 1; id <= 27; id++ {
		fmt.Fprintf(&script, "1\n%d\n", id)
	}
	var out bytes.Buffer

	res := runDrill(strings.NewReader(script.String()), &out, ctrl, 100)

	assert.Equal(t, 27, res.Placed)
	require.True(t, ctrl.Complete())
	assert.Contains(t, out.String(), "Timeline complete!")
}

func TestPrintCatalog(t *testing.T) {
	var table bytes.Buffer
	require.NoError(t, printCatalog(&table, catalog.All(), false))
	lines := strings.Split(strings.TrimSpace(table.String()), "\n")
	assert.Len(t, lines, 28)
	assert.Contains(t, lines[0], "DEFINITION")
	assert.Contains(t, lines[27], "Twenty-seventh Amendment")

	var js bytes.Buffer
	require.NoError(t, printCatalog(&js, catalog.All()[:1], true))
	assert.Contains(t, js.String(), `"title": "First Amendment"`)
}

func TestResolveConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("AMENDMENTS_SEED", "7")
	t.Setenv("AMENDMENTS_ORDERED", "true")

	cmd := rootCmd
	require.NoError(t, cmd.ParseFlags([]string{"--seed=42"}))
	t.Cleanup(func() {
		f := cmd.PersistentFlags().Lookup("seed")
		_ = f.Value.Set("")
		f.Changed = false
	})

	cfg, err := resolveConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.Ordered, "unset flags keep the environment value")
}

func TestResolveConfig_BadEnvSeed(t *testing.T) {
	t.Setenv("AMENDMENTS_SEED", "lots")

	_, err := resolveConfig(rootCmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid seed")
}
