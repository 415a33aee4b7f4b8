package hof

// Flip returns a function that takes the arguments of fn in the
// opposite order. Flip does not call fn, and the returned function
// calls fn every time it's called.
func Flip[A any, B any, C any](fn func(A, B) C) func(B, A) C {
	return func(b B, a A) C { return fn(a, b) }
}

// Swap takes two values and returns them in the opposite
// order. Useful for bridging APIs that return pairs:
//
//	ok, value := Swap(op())
func Swap[A any, B any](first A, second B) (B, A) { return second, first }
