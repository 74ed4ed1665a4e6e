package check_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/tychoish/slist/assert/check"
)

func TestCheck(t *testing.T) {
	var strVal = "buddy"
	var err error

	t.Run("Passing", func(t *testing.T) {
		t.Parallel()
		check.True(t, true)
		check.Equal(t, 1, 1)
		check.NotEqual(t, 10, 1)
		check.Zero(t, "")
		check.Error(t, errors.New(strVal))
		check.NotError(t, err)
		check.ErrorIs(t, fmt.Errorf("end: %w", io.EOF), io.EOF)
		check.NotPanic(t, func() {})
		check.EqualItems(t, []int{12, 34, 56}, []int{12, 34, 56})
		check.Substring(t, "buddy the cat", strVal)
	})
}

type recorder struct {
	testing.TB
	failures []string
}

func (*recorder) Helper() {}

func (r *recorder) Error(args ...any) { r.failures = append(r.failures, fmt.Sprint(args...)) }

func TestCheckContinues(t *testing.T) {
	rec := &recorder{TB: t}
	check.Equal(rec, 1, 2)
	check.True(rec, false)
	check.EqualItems(rec, []int{1}, []int{2})
	check.NotError(rec, io.EOF)
	check.Equal(rec, 3, 3)

	if len(rec.failures) != 4 {
		t.Fatalf("recorded %d failures: %v", len(rec.failures), rec.failures)
	}
}
