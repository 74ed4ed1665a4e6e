// Package check reports failed assertions with t.Error, so the test
// keeps running.
package check

import (
	"testing"

	"github.com/tychoish/slist/assert/internal"
)

func report(t testing.TB, msg string) {
	t.Helper()
	if msg != "" {
		t.Error(msg)
	}
}

func True(t testing.TB, cond bool) { t.Helper(); report(t, internal.True(cond)) }

func Equal[T comparable](t testing.TB, got, want T) { t.Helper(); report(t, internal.Equal(got, want)) }

func NotEqual[T comparable](t testing.TB, got, other T) {
	t.Helper()
	report(t, internal.NotEqual(got, other))
}

func Zero[T comparable](t testing.TB, v T) { t.Helper(); report(t, internal.Zero(v)) }

func Error(t testing.TB, err error)    { t.Helper(); report(t, internal.Error(err)) }
func NotError(t testing.TB, err error) { t.Helper(); report(t, internal.NotError(err)) }

func ErrorIs(t testing.TB, err, target error) { t.Helper(); report(t, internal.ErrorIs(err, target)) }

func NotPanic(t testing.TB, fn func()) { t.Helper(); report(t, internal.NotPanic(fn)) }

func EqualItems[T comparable](t testing.TB, got, want []T) {
	t.Helper()
	report(t, internal.Items(got, want))
}

func Substring(t testing.TB, str, sub string) { t.Helper(); report(t, internal.Substring(str, sub)) }
