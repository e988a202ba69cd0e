// Package study implements the progression engine behind every study
// mode: deck shuffling, the per-session cursor, and quiz question
// generation with streak scoring.
package study

import "math/rand/v2"

// Shuffle returns a uniformly random permutation of s without mutating
// it. Fisher-Yates over a copy; each of the n! orderings is equally
// likely. Empty and single-element inputs come back as-is (copied).
func Shuffle[T any](s []T) []T {
	return shuffleWith(s, rand.IntN)
}

// shuffleWith is Shuffle with an injectable source, for deterministic tests.
// intn must return a uniform value in [0, n).
func shuffleWith[T any](s []T, intn func(n int) int) []T {
	out := make([]T, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
