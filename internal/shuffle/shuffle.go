// Package shuffle produces random permutations without touching the input.
package shuffle

import (
	"math/rand/v2"
	"time"
)

// Source supplies the random indices for a shuffle.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// Identity is a Source that leaves every sequence in its original order.
var Identity Source = identity{}

type identity struct{}

// IntN always picks the last candidate, so Fisher–Yates never swaps.
func (identity) IntN(n int) int { return n - 1 }

// NewSource returns a PCG-backed Source. A zero seed is replaced with the
// current time, giving a different permutation on every run.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle returns a new slice holding a uniformly random permutation of s
// (Fisher–Yates). s itself is left unmodified.
func Shuffle[T any](src Source, s []T) []T {
	if src == nil {
		panic("shuffle: nil Source")
	}
	out := make([]T, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
