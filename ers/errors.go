package ers

import (
	"errors"
	"fmt"
)

// Is reports whether err matches any of the targets, using
// errors.Is.
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Wrap annotates an error, keeping it matchable with errors.Is.
// Wrapping nil returns nil.
func Wrap(err error, annotation string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", annotation, err)
}

// Wrapf is Wrap with a formatted annotation.
func Wrapf(err error, tmpl string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(tmpl, args...))
}

// Whenf returns err annotated by Wrapf when cond holds, and nil
// otherwise.
func Whenf(cond bool, err error, tmpl string, args ...any) error {
	if !cond {
		return nil
	}
	return Wrapf(err, tmpl, args...)
}
