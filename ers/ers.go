// Package ers provides constant sentinel errors and a few helpers for
// annotating and classifying them.
//
// Containers in slist report usage errors (an empty list, an index
// that is out of range) as ers.Error constants, which callers can
// compare with errors.Is. Conditions that can only arise from a
// programming defect are reported as invariant violations.
package ers

// Error is a string type for declaring sentinel errors as constants.
//
// The empty Error matches nil errors in Is.
type Error string

// New constructs an error object that uses the Error as the
// underlying type.
func New(str string) error { return Error(str) }

// Error implements the error interface for Error.
func (e Error) Error() string { return string(e) }

// Is satisfies the interface used by errors.Is without using
// reflection.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return true
	case (err == nil) != (e == ""):
		return false
	default:
		x, ok := err.(Error)
		return ok && x == e
	}
}
