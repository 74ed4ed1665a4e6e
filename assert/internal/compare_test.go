package internal

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestComparisons(t *testing.T) {
	wrapped := fmt.Errorf("read: %w", io.EOF)

	for name, tc := range map[string]struct {
		msg  string
		pass bool
	}{
		"EqualPass":         {Equal(1, 1), true},
		"EqualFail":         {Equal("a", "b"), false},
		"NotEqualPass":      {NotEqual(1, 2), true},
		"NotEqualFail":      {NotEqual(3, 3), false},
		"ZeroPass":          {Zero(""), true},
		"ZeroFail":          {Zero(4), false},
		"NotZeroPass":       {NotZero(4), true},
		"NotZeroFail":       {NotZero(0), false},
		"TruePass":          {True(true), true},
		"TrueFail":          {True(false), false},
		"ErrorPass":         {Error(io.EOF), true},
		"ErrorFail":         {Error(nil), false},
		"NotErrorPass":      {NotError(nil), true},
		"NotErrorFail":      {NotError(io.EOF), false},
		"ErrorIsPass":       {ErrorIs(wrapped, io.EOF), true},
		"ErrorIsFail":       {ErrorIs(wrapped, io.ErrUnexpectedEOF), false},
		"NotErrorIsPass":    {NotErrorIs(errors.New("x"), io.EOF), true},
		"NotErrorIsFail":    {NotErrorIs(wrapped, io.EOF), false},
		"ItemsPass":         {Items([]int{1, 2}, []int{1, 2}), true},
		"ItemsNil":          {Items([]int{}, nil), true},
		"ItemsLength":       {Items([]int{1}, []int{1, 2}), false},
		"ItemsValue":        {Items([]int{1, 3}, []int{1, 2}), false},
		"SubstringPass":     {Substring("merlin the cat", "the"), true},
		"SubstringFail":     {Substring("merlin", "dog"), false},
		"PanicPass":         {Panic(func() { panic("boom") }), true},
		"PanicFail":         {Panic(func() {}), false},
		"NotPanicPass":      {NotPanic(func() {}), true},
		"NotPanicFail":      {NotPanic(func() { panic("boom") }), false},
		"PanicErrorIsPass":  {PanicErrorIs(func() { panic(wrapped) }, io.EOF), true},
		"PanicErrorIsOther": {PanicErrorIs(func() { panic(io.ErrClosedPipe) }, io.EOF), false},
		"PanicErrorIsValue": {PanicErrorIs(func() { panic(42) }, io.EOF), false},
		"PanicErrorIsNone":  {PanicErrorIs(func() {}, io.EOF), false},
	} {
		t.Run(name, func(t *testing.T) {
			if tc.pass && tc.msg != "" {
				t.Fatalf("unexpected failure: %s", tc.msg)
			}
			if !tc.pass && tc.msg == "" {
				t.Fatal("expected a failure message")
			}
		})
	}
}

func TestCall(t *testing.T) {
	r, ok := Call(func() { panic("value") })
	if !ok || r != "value" {
		t.Fatalf("recovered <%v> %t", r, ok)
	}

	r, ok = Call(func() {})
	if ok || r != nil {
		t.Fatalf("recovered <%v> %t", r, ok)
	}
}
