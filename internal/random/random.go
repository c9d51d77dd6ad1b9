// Package random provides the shuffle and subset-selection helpers used
// to randomize question and option order. All functions copy their input;
// callers inject the *rand.Rand so tests can use a fixed seed.
package random

import (
	"math/rand"
	"time"
)

// NewRand returns a rand.Rand seeded from the wall clock.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Shuffle returns a new slice with the elements of items in random order,
// using the Fisher-Yates algorithm. The input is not modified.
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns an unbiased random subset of count elements via
// shuffle-then-truncate. If count is not positive or exceeds the input
// length, all elements are returned (shuffled).
func Sample[T any](rng *rand.Rand, items []T, count int) []T {
	shuffled := Shuffle(rng, items)
	if count <= 0 || count >= len(shuffled) {
		return shuffled
	}
	return shuffled[:count]
}

// ShuffleOptions shuffles a question's option list and reports the new
// index of the correct answer (-1 if the answer is not among the options).
func ShuffleOptions(rng *rand.Rand, options []string, answer string) ([]string, int) {
	shuffled := Shuffle(rng, options)
	correct := -1
	for i, opt := range shuffled {
		if opt == answer {
			correct = i
			break
		}
	}
	return shuffled, correct
}
