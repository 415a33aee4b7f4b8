// Package hof provides small, generic higher-order functions for
// adapting and applying other functions: currying, argument flipping
// and mapping over slices.
//
// Every function in hof is pure. None of them hold state, mutate
// their inputs, or recover from panics raised by the functions passed
// to them, with the exception of TryMap, which exists to do exactly
// that.
package hof
