package hof

import (
	"iter"

	"github.com/tychoish/hof/ers"
)

// Map calls fn on every item of the input slice, in order, and
// returns a new slice of the results. The output always has the same
// length as the input, and never shares storage with it. When the
// input is empty, Map returns an empty (non-nil) slice without
// calling fn.
//
// Panics in fn propagate to the caller of Map.
func Map[A any, B any](in []A, fn func(A) B) []B {
	out := make([]B, len(in))
	for idx := range in {
		out[idx] = fn(in[idx])
	}
	return out
}

// MapErr is Map for functions that can fail. Iteration stops at the
// first error, which is returned unmodified along with a nil slice:
// no partial results are returned.
func MapErr[A any, B any](in []A, fn func(A) (B, error)) ([]B, error) {
	out := make([]B, len(in))
	for idx := range in {
		val, err := fn(in[idx])
		if err != nil {
			return nil, err
		}
		out[idx] = val
	}
	return out, nil
}

// TryMap is Map, except that a panic in fn is converted into an error
// that wraps ers.ErrRecoveredPanic (and the panic value, when it is
// an error). When fn panics, TryMap returns a nil slice.
func TryMap[A any, B any](in []A, fn func(A) B) ([]B, error) {
	return ers.WithRecoverDo(func() []B { return Map(in, fn) })
}

// MapSeq lazily converts a sequence of A into a sequence of B. fn is
// only called as the output sequence is consumed, and iteration stops
// as soon as the consumer stops.
func MapSeq[A any, B any](seq iter.Seq[A], fn func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for value := range seq {
			if !yield(fn(value)) {
				return
			}
		}
	}
}
