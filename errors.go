package hstr

import "fmt"

// InvariantError describes a broken internal invariant: an impossible tag,
// a length that does not fit its encoding, an alias cycle, or use of a store
// that has already been merged into another.
//
// The engine has no error returns. An InvariantError is only ever raised as a
// panic value, since continuing with a corrupted atom would read through an
// invalid pointer. Code that recovers can match it with errors.As.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type InvariantError struct {
	Op     string
	Detail string
	cause  error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("hstr: %s: %s", e.Op, e.Detail)
}

func (e *InvariantError) Unwrap() error { return e.cause }

func invariant(op string, cause error, format string, args ...any) *InvariantError {
	return &InvariantError{
		Op:     op,
		Detail: fmt.Sprintf(format, args...),
		cause:  cause,
	}
}
