// Package internal holds the comparisons behind the assert and check
// packages. Each returns the empty string when the comparison holds,
// and otherwise a description of the failure.
package internal

import (
	"errors"
	"fmt"
	"strings"
)

func Equal[T comparable](got, want T) string {
	if got == want {
		return ""
	}
	return fmt.Sprintf("got <%v>, want <%v>", got, want)
}

func NotEqual[T comparable](got, other T) string {
	if got != other {
		return ""
	}
	return fmt.Sprintf("both values are <%v>", got)
}

func Zero[T comparable](v T) string {
	var zero T
	if v == zero {
		return ""
	}
	return fmt.Sprintf("%T <%v> is not zero", v, v)
}

func NotZero[T comparable](v T) string {
	var zero T
	if v != zero {
		return ""
	}
	return fmt.Sprintf("%T is zero", v)
}

func True(cond bool) string {
	if cond {
		return ""
	}
	return "condition is false"
}

func Error(err error) string {
	if err != nil {
		return ""
	}
	return "no error"
}

func NotError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("unexpected error: %v", err)
}

func ErrorIs(err, target error) string {
	if errors.Is(err, target) {
		return ""
	}
	return fmt.Sprintf("error <%v> does not match <%v>", err, target)
}

func NotErrorIs(err, target error) string {
	if !errors.Is(err, target) {
		return ""
	}
	return fmt.Sprintf("error <%v> matches <%v>", err, target)
}

// Items compares two slices element by element and names the first
// index that differs.
func Items[T comparable](got, want []T) string {
	if len(got) != len(want) {
		return fmt.Sprintf("length %d != %d: %v vs %v", len(got), len(want), got, want)
	}
	for idx := range got {
		if got[idx] != want[idx] {
			return fmt.Sprintf("index %d: <%v> != <%v> in %v vs %v", idx, got[idx], want[idx], got, want)
		}
	}
	return ""
}

func Substring(str, sub string) string {
	if strings.Contains(str, sub) {
		return ""
	}
	return fmt.Sprintf("%q does not contain %q", str, sub)
}

// Call runs fn and returns the value it panicked with, if any.
func Call(fn func()) (recovered any, panicked bool) {
	defer func() {
		if recovered = recover(); recovered != nil {
			panicked = true
		}
	}()
	fn()
	return nil, false
}

func Panic(fn func()) string {
	if _, ok := Call(fn); ok {
		return ""
	}
	return "function did not panic"
}

func NotPanic(fn func()) string {
	if r, ok := Call(fn); ok {
		return fmt.Sprintf("panic: %v", r)
	}
	return ""
}

// PanicErrorIs requires fn to panic with an error matching target.
func PanicErrorIs(fn func(), target error) string {
	r, ok := Call(fn)
	if !ok {
		return "function did not panic"
	}
	err, isErr := r.(error)
	if !isErr {
		return fmt.Sprintf("panic value %T <%v> is not an error", r, r)
	}
	return ErrorIs(err, target)
}
