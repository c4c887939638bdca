package quiz

import (
	"fmt"

	"github.com/sflc/amendments/internal/catalog"
	"github.com/sflc/amendments/internal/shuffle"
)

// ChoiceCount is the number of titles offered per card.
const ChoiceCount = 4

// ChoiceSet is the ordered list of candidate titles shown for one card.
type ChoiceSet []string

// DeriveChoices builds the choice set for order[index]: three distractor
// titles drawn from the other records plus the active title, shuffled as a
// whole. It is a pure function of its inputs and src.
func DeriveChoices(src shuffle.Source, order []catalog.Amendment, index int) ChoiceSet {
	active := order[index]

	others := make([]catalog.Amendment, 0, len(order)-1)
	for _, a := range order {
		if a.ID != active.ID {
			others = append(others, a)
		}
	}
	others = shuffle.Shuffle(src, others)
	if len(others) > ChoiceCount-1 {
		others = others[:ChoiceCount-1]
	}

	titles := make([]string, 0, ChoiceCount)
	titles = append(titles, active.Title)
	for _, a := range others {
		titles = append(titles, a.Title)
	}
	return ChoiceSet(shuffle.Shuffle(src, titles))
}

// Validate checks that the set has ChoiceCount distinct titles, exactly one
// of which is title.
func (cs ChoiceSet) Validate(title string) error {
	if len(cs) != ChoiceCount {
		return fmt.Errorf("choice set has %d titles, want %d", len(cs), ChoiceCount)
	}
	seen := make(map[string]bool, len(cs))
	for _, c := range cs {
		if seen[c] {
			return fmt.Errorf("choice set repeats %q", c)
		}
		seen[c] = true
	}
	if !seen[title] {
		return fmt.Errorf("choice set is missing %q", title)
	}
	return nil
}

// Index returns the position of title in the set, or -1.
func (cs ChoiceSet) Index(title string) int {
	for i, c := range cs {
		if c == title {
			return i
		}
	}
	return -1
}
