package assert_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/tychoish/slist/assert"
)

func TestAssertion(t *testing.T) {
	var strVal string = "merlin"

	var err error

	t.Run("Passing", func(t *testing.T) {
		assert.True(t, true)
		assert.Equal(t, 1, 1)
		assert.NotEqual(t, 10, 1)
		assert.Zero(t, "")
		assert.NotZero(t, strVal)
		assert.Error(t, errors.New(strVal))
		assert.NotError(t, err)
		assert.ErrorIs(t, fmt.Errorf("end: %w", io.EOF), io.EOF)
		assert.NotErrorIs(t, errors.New("end"), io.EOF)
		assert.Panic(t, func() { panic(strVal) })
		assert.PanicErrorIs(t, func() { panic(fmt.Errorf("wrapped: %w", io.EOF)) }, io.EOF)
		assert.NotPanic(t, func() {})
		assert.EqualItems(t, []int{1, 2, 3}, []int{1, 2, 3})
		assert.EqualItems(t, []int{}, nil)
		assert.Substring(t, "merlin the cat", strVal)
	})
}

type recorder struct {
	testing.TB
	fatal string
}

func (*recorder) Helper() {}

func (r *recorder) Fatal(args ...any) { r.fatal = fmt.Sprint(args...) }

func TestAssertionFailure(t *testing.T) {
	for name, fn := range map[string]func(testing.TB){
		"Equal":        func(t testing.TB) { assert.Equal(t, "a", "b") },
		"ErrorIs":      func(t testing.TB) { assert.ErrorIs(t, io.EOF, io.ErrClosedPipe) },
		"EqualItems":   func(t testing.TB) { assert.EqualItems(t, []int{1, 2}, []int{1}) },
		"Panic":        func(t testing.TB) { assert.Panic(t, func() {}) },
		"PanicErrorIs": func(t testing.TB) { assert.PanicErrorIs(t, func() { panic("text") }, io.EOF) },
	} {
		t.Run(name, func(t *testing.T) {
			rec := &recorder{TB: t}
			fn(rec)
			if rec.fatal == "" {
				t.Fatal("assertion did not fail")
			}
		})
	}
}
