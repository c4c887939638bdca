// Package catalog holds the fixed set of amendment flashcards.
//
// The records are embedded at build time, validated once during package
// initialization and never mutated afterwards. Every accessor hands out
// copies so callers cannot reach the package data.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
)

// Amendment is one flashcard: a ratified amendment and its summary.
type Amendment struct {
	ID         int    `yaml:"id" json:"id"`
	Year       int    `yaml:"year" json:"year"`
	Title      string `yaml:"title" json:"title"`
	Definition string `yaml:"definition" json:"definition"`
}

// ErrNotFound is returned by Get for an unknown amendment ID.
var ErrNotFound = errors.New("amendment not found")

//go:embed amendments.yaml
var embedded []byte

// records is the package-level catalog, set by init().
var records []Amendment

func init() {
	recs, err := Parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded amendments are invalid: %v", err))
	}
	records = recs
}

// All returns every amendment in catalog order.
func All() []Amendment {
	return slices.Clone(records)
}

// Len returns the number of amendments in the catalog.
func Len() int {
	return len(records)
}

// Get returns the amendment with the given ID.
func Get(id int) (Amendment, error) {
	for _, a := range records {
		if a.ID == id {
			return a, nil
		}
	}
	return Amendment{}, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// YearSpan returns the earliest and latest ratification years.
func YearSpan() (first, last int) {
	for i, a := range records {
		if i == 0 || a.Year < first {
			first = a.Year
		}
		if i == 0 || a.Year > last {
			last = a.Year
		}
	}
	return first, last
}
