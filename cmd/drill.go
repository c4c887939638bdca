package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sflc/amendments/internal/catalog"
	"github.com/sflc/amendments/internal/logging"
	"github.com/sflc/amendments/internal/quiz"
	"github.com/spf13/cobra"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Practice in plain text over stdin (no TUI)",
	Long: `Answer flashcards and place them on the timeline line by line.

Pick a title with 1-4, then type the timeline slot ID for the card.
A wrong pick locks the card, so the deck is reshuffled and the drill moves on.
Nothing is saved.`,
	RunE: runDrillCmd,
}

func init() {
	drillCmd.Flags().Int("count", 5, "Number of cards to attempt")
}

func runDrillCmd(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("invalid --count %d: must be at least 1", count)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.New(cfg.LogFile, slog.LevelInfo)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closeLog()

	ctrl := quiz.New(catalog.All(),
		quiz.WithSource(cfg.Source()),
		quiz.WithLogger(logger),
	)
	res := runDrill(cmd.InOrStdin(), cmd.OutOrStdout(), ctrl, count)

	fmt.Fprintln(cmd.OutOrStdout(), res.summary())
	return nil
}

// drillResult counts what happened in a drill.
type drillResult struct {
	Attempted int
	Placed    int
	Missed    int
	// OnTimeline is what is still placed when the drill ends; a wrong pick
	// reshuffles and clears earlier placements.
	OnTimeline int
}

func (r drillResult) summary() string {
	return fmt.Sprintf("── Summary: %d/%d placed this drill, %d missed, %d on the timeline ──",
		r.Placed, r.Attempted, r.Missed, r.OnTimeline)
}

// runDrill plays up to count cards against ctrl, reading answers from in.
// It stops early when input ends or every slot is filled.
func runDrill(in io.Reader, out io.Writer, ctrl *quiz.Controller, count int) drillResult {
	scanner := bufio.NewScanner(in)
	var res drillResult

	for res.Attempted < count && !ctrl.Complete() {
		active := ctrl.Active()
		card := quiz.NewCard(active, ctrl.Choices(), ctrl.ActiveUnlocked(), ctrl.HandleUnlock)
		res.Attempted++

		fmt.Fprintf(out, "── Card %d/%d ──\n", res.Attempted, count)
		fmt.Fprintln(out, active.Definition)
		for j, c := range card.Choices() {
			fmt.Fprintf(out, "  %d) %s\n", j+1, c)
		}

		choice, ok := readChoice(scanner, out, card.Choices())
		if !ok {
			fmt.Fprintln(out, "\n(input closed)")
			res.Attempted--
			break
		}

		card.Select(choice)
		if !card.Correct() {
			fmt.Fprintf(out, "\033[31m✗ %s.\033[0m Shuffling the deck.\n\n", card.Feedback())
			res.Missed++
			ctrl.HandleShuffleAll()
			continue
		}
		fmt.Fprintf(out, "\033[32m✓ %s\033[0m\n", card.Feedback())

		tok, ok := placeCard(scanner, out, ctrl, card)
		if !ok {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		res.Placed++
		// no animation here, so the celebration ends at once
		ctrl.EndCelebration(tok)
		fmt.Fprintln(out)
	}

	if ctrl.Complete() {
		fmt.Fprintln(out, "Timeline complete!")
	}
	res.OnTimeline = ctrl.PlacedCount()
	return res
}

// readChoice prompts until the answer names one of the choices by number.
func readChoice(scanner *bufio.Scanner, out io.Writer, choices quiz.ChoiceSet) (string, bool) {
	for {
		fmt.Fprint(out, "\nYour pick (1-4): ")
		if !scanner.Scan() {
			return "", false
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && n >= 1 && n <= len(choices) {
			return choices[n-1], true
		}
		fmt.Fprintf(out, "Enter a number from 1 to %d.", len(choices))
	}
}

// placeCard prompts for a slot ID until the card lands on its own slot.
func placeCard(scanner *bufio.Scanner, out io.Writer, ctrl *quiz.Controller, card *quiz.Card) (quiz.Celebration, bool) {
	payload, _ := card.DragPayload()
	slots := make(map[int]quiz.Slot)
	for _, r := range ctrl.Records() {
		slots[r.ID] = quiz.Slot{ID: r.ID, Year: r.Year}
	}

	for {
		fmt.Fprint(out, "Timeline slot ID: ")
		if !scanner.Scan() {
			return 0, false
		}
		id, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		slot, ok := slots[id]
		if err != nil || !ok {
			fmt.Fprintf(out, "No slot %q on the timeline.\n", strings.TrimSpace(scanner.Text()))
			continue
		}
		var tok quiz.Celebration
		dropped := slot.Drop(payload, func(draggedID, slotID int) {
			tok = ctrl.HandleDrop(draggedID, slotID)
		})
		if dropped {
			fmt.Fprintf(out, "Placed on %d. %d\n", slot.ID, slot.Year)
			return tok, true
		}
		fmt.Fprintf(out, "Slot %d. %d does not take this card.\n", slot.ID, slot.Year)
	}
}
