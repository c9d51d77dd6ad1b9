package random

import (
	"math/rand"
	"sort"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestShuffle_PreservesElements(t *testing.T) {
	rng := testRand()
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}

	out := Shuffle(rng, in)

	if len(out) != len(in) {
		t.Fatalf("length = %d, want %d", len(out), len(in))
	}
	sorted := make([]int, len(out))
	copy(sorted, out)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i+1 {
			t.Fatalf("shuffled output is not a permutation: %v", out)
		}
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	rng := testRand()
	in := []string{"a", "b", "c", "d"}

	for i := 0; i < 10; i++ {
		Shuffle(rng, in)
	}

	want := []string{"a", "b", "c", "d"}
	for i := range want {
		if in[i] != want[i] {
			t.Fatalf("input mutated: %v", in)
		}
	}
}

func TestSample_Truncates(t *testing.T) {
	rng := testRand()
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	out := Sample(rng, in, 5)
	if len(out) != 5 {
		t.Fatalf("length = %d, want 5", len(out))
	}

	// No duplicates: sampling is without replacement.
	seen := make(map[int]bool)
	for _, v := range out {
		if seen[v] {
			t.Fatalf("duplicate element %d in sample %v", v, out)
		}
		seen[v] = true
	}
}

func TestSample_CountExceedsLength(t *testing.T) {
	rng := testRand()
	in := []int{1, 2, 3}

	if out := Sample(rng, in, 40); len(out) != 3 {
		t.Errorf("length = %d, want all 3", len(out))
	}
	if out := Sample(rng, in, 0); len(out) != 3 {
		t.Errorf("length = %d, want all 3 for non-positive count", len(out))
	}
}

func TestShuffleOptions_TracksCorrectIndex(t *testing.T) {
	rng := testRand()
	options := []string{"alpha", "beta", "gamma", "delta"}

	for i := 0; i < 20; i++ {
		shuffled, correct := ShuffleOptions(rng, options, "gamma")
		if correct < 0 || correct >= len(shuffled) {
			t.Fatalf("correct index %d out of range", correct)
		}
		if shuffled[correct] != "gamma" {
			t.Fatalf("shuffled[%d] = %q, want gamma", correct, shuffled[correct])
		}
	}
}

func TestShuffleOptions_MissingAnswer(t *testing.T) {
	rng := testRand()
	_, correct := ShuffleOptions(rng, []string{"a", "b"}, "z")
	if correct != -1 {
		t.Errorf("correct = %d, want -1 when answer absent", correct)
	}
}
