package hof

// Curry2 converts a function of two arguments into a function that
// takes the first argument and returns a function that takes the
// second. The underlying function is not called until both arguments
// have been supplied:
//
//	Curry2(fn)(a)(b) == fn(a, b)
func Curry2[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C { return func(b B) C { return fn(a, b) } }
}

// Uncurry2 is the inverse of Curry2: it takes a curried function and
// returns a function of two arguments.
func Uncurry2[A any, B any, C any](fn func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C { return fn(a)(b) }
}
