package ers

import "fmt"

type recovered struct {
	cause error
}

func (r *recovered) Error() string   { return r.cause.Error() + ": " + ErrRecoveredPanic.Error() }
func (r *recovered) Unwrap() []error { return []error{r.cause, ErrRecoveredPanic} }

// ParsePanic converts the value returned by recover() into an error
// that wraps both the panic value and ErrRecoveredPanic. If the value
// is nil (no panic), ParsePanic returns nil.
func ParsePanic(r any) error {
	switch val := r.(type) {
	case nil:
		return nil
	case error:
		return &recovered{cause: val}
	case string:
		return &recovered{cause: New(val)}
	default:
		return &recovered{cause: fmt.Errorf("[%T]: %v", val, val)}
	}
}

// WithRecoverDo runs a function with a panic handler that converts
// the panic to an error. When the function panics, the output value
// is the zero value of T.
func WithRecoverDo[T any](fn func() T) (out T, err error) {
	defer func() {
		if err = ParsePanic(recover()); err != nil {
			var zero T
			out = zero
		}
	}()
	out = fn()
	return
}
