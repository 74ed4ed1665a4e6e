// Package assert holds generic test assertions that stop the test at
// the first failure. The check package has the same assertions, but
// lets the test continue.
package assert

import (
	"testing"

	"github.com/tychoish/slist/assert/internal"
)

func fatal(t testing.TB, msg string) {
	t.Helper()
	if msg != "" {
		t.Fatal(msg)
	}
}

func True(t testing.TB, cond bool) { t.Helper(); fatal(t, internal.True(cond)) }

// Equal compares with ==, so pointers are equal only when they
// point at the same value.
func Equal[T comparable](t testing.TB, got, want T) { t.Helper(); fatal(t, internal.Equal(got, want)) }

func NotEqual[T comparable](t testing.TB, got, other T) {
	t.Helper()
	fatal(t, internal.NotEqual(got, other))
}

func Zero[T comparable](t testing.TB, v T)    { t.Helper(); fatal(t, internal.Zero(v)) }
func NotZero[T comparable](t testing.TB, v T) { t.Helper(); fatal(t, internal.NotZero(v)) }

func Error(t testing.TB, err error)    { t.Helper(); fatal(t, internal.Error(err)) }
func NotError(t testing.TB, err error) { t.Helper(); fatal(t, internal.NotError(err)) }

// ErrorIs fails unless errors.Is(err, target).
func ErrorIs(t testing.TB, err, target error) { t.Helper(); fatal(t, internal.ErrorIs(err, target)) }

func NotErrorIs(t testing.TB, err, target error) {
	t.Helper()
	fatal(t, internal.NotErrorIs(err, target))
}

func Panic(t testing.TB, fn func())    { t.Helper(); fatal(t, internal.Panic(fn)) }
func NotPanic(t testing.TB, fn func()) { t.Helper(); fatal(t, internal.NotPanic(fn)) }

// PanicErrorIs fails unless fn panics with an error that matches
// the target.
func PanicErrorIs(t testing.TB, fn func(), target error) {
	t.Helper()
	fatal(t, internal.PanicErrorIs(fn, target))
}

// EqualItems fails unless both slices hold equal values in the same
// order. Nil and empty slices are equal.
func EqualItems[T comparable](t testing.TB, got, want []T) {
	t.Helper()
	fatal(t, internal.Items(got, want))
}

func Substring(t testing.TB, str, sub string) { t.Helper(); fatal(t, internal.Substring(str, sub)) }
