// Package ers holds the sentinel error type and the panic recovery
// helpers used by the combinators in hof.
//
// ers has no dependencies outside of the standard library.
package ers

// Error is a string type for declaring sentinel errors as constants.
//
// errors.Is and errors.As handle Error values without reflection, and
// the empty Error is considered equal to a nil error.
type Error string

// ErrRecoveredPanic is at the root of any error returned by a
// function in hof that recovers from a panic.
const ErrRecoveredPanic Error = Error("recovered panic")

// New constructs an error object that uses the Error as the
// underlying type.
func New(str string) error { return Error(str) }

func (e Error) Error() string { return string(e) }

// Is satisfies the errors.Is interface.
func (e Error) Is(err error) bool {
	switch x := err.(type) {
	case nil:
		return e == ""
	case Error:
		return x == e
	default:
		return false
	}
}
