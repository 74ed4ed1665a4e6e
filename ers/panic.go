package ers

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation is the root error of the error object that is
// the content of all panics produced by the Invariant helper.
const ErrInvariantViolation Error = Error("invariant violation")

// ErrRecoveredPanic is at the root of any error returned by a
// function in this module that recovers from a panic.
const ErrRecoveredPanic Error = Error("recovered panic")

// NewInvariantViolation creates a new error object, which always
// includes ErrInvariantViolation, and any error or string arguments
// that describe the violation.
func NewInvariantViolation(args ...any) error {
	errs := make([]error, 0, len(args)+1)
	for _, arg := range args {
		switch ei := arg.(type) {
		case nil:
		case error:
			errs = append(errs, ei)
		case string:
			errs = append(errs, New(ei))
		default:
			errs = append(errs, fmt.Errorf("%v", ei))
		}
	}
	return errors.Join(append(errs, ErrInvariantViolation)...)
}

// Invariant panics with an invariant violation when the condition is
// false. The arguments are handled as in NewInvariantViolation.
func Invariant(cond bool, args ...any) {
	if !cond {
		panic(NewInvariantViolation(args...))
	}
}

// IsInvariantViolation returns true if the argument is or resolves to
// ErrInvariantViolation.
func IsInvariantViolation(r any) bool {
	err, ok := r.(error)
	if !ok || err == nil {
		return false
	}

	return errors.Is(err, ErrInvariantViolation)
}

// ParsePanic converts a panic to an error, if it is not, and attaching
// the ErrRecoveredPanic error to that error. If no panic is
// detected, ParsePanic returns nil.
func ParsePanic(r any) error {
	if r == nil {
		return nil
	}

	switch err := r.(type) {
	case error:
		return errors.Join(err, ErrRecoveredPanic)
	case string:
		return errors.Join(New(err), ErrRecoveredPanic)
	default:
		return errors.Join(fmt.Errorf("[%T]: %v", err, err), ErrRecoveredPanic)
	}
}

// WithRecoverCall runs a function without arguments that does not
// produce an error and, if the function panics, converts it into an
// error.
func WithRecoverCall(fn func()) (err error) {
	defer func() { err = ParsePanic(recover()) }()
	fn()
	return
}
