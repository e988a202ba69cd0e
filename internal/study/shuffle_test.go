package study

import (
	"sort"
	"testing"
)

func TestShufflePreservesMultiset(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e", "b"}
	got := Shuffle(in)

	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}

	wantSorted := append([]string(nil), in...)
	gotSorted := append([]string(nil), got...)
	sort.Strings(wantSorted)
	sort.Strings(gotSorted)
	for i := range wantSorted {
		if gotSorted[i] != wantSorted[i] {
			t.Fatalf("multiset changed: got %v, want %v", gotSorted, wantSorted)
		}
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	snapshot := append([]int(nil), in...)

	for i := 0; i < 50; i++ {
		Shuffle(in)
	}

	for i := range in {
		if in[i] != snapshot[i] {
			t.Fatalf("input mutated at %d: got %v, want %v", i, in, snapshot)
		}
	}
}

func TestShuffleEdgeCases(t *testing.T) {
	if got := Shuffle([]int{}); len(got) != 0 {
		t.Errorf("empty input: got %v", got)
	}
	if got := Shuffle([]int(nil)); len(got) != 0 {
		t.Errorf("nil input: got %v", got)
	}
	if got := Shuffle([]int{42}); len(got) != 1 || got[0] != 42 {
		t.Errorf("single element: got %v", got)
	}
}

func TestShuffleWithIsFisherYates(t *testing.T) {
	// A source that always returns 0 swaps every position down to 0,
	// which rotates the slice left by one.
	in := []int{1, 2, 3, 4}
	got := shuffleWith(in, func(int) int { return 0 })
	want := []int{2, 3, 4, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	// Identity source leaves order untouched.
	got = shuffleWith(in, func(n int) int { return n - 1 })
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("identity source: got %v, want %v", got, in)
		}
	}
}

func TestShuffleEventuallyProducesDifferentOrders(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	changed := false
	for i := 0; i < 100 && !changed; i++ {
		got := Shuffle(in)
		for j := range in {
			if got[j] != in[j] {
				changed = true
				break
			}
		}
	}
	// Chance of 100 identity permutations in a row is (1/10!)^100.
	if !changed {
		t.Error("shuffle never produced a different order in 100 tries")
	}
}
