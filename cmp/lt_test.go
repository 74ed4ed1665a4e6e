package cmp

import (
	"testing"
	"time"
)

type userOrderable struct {
	val int
}

func (u userOrderable) LessThan(in userOrderable) bool { return u.val < in.val }

func TestCmp(t *testing.T) {
	t.Run("Native", func(t *testing.T) {
		for idx, b := range []bool{
			LessThanNative(1, 2),
			LessThanNative(-1, 0),
			LessThanNative(1.5, 1.9),
			LessThanNative("abc", "abcd"),
		} {
			if !b {
				t.Error(idx, "expected true")
			}
		}

		for idx, b := range []bool{
			LessThanNative(0, -2),
			LessThanNative(2, 2),
			LessThanNative(999440, 9001),
			LessThanNative("zzzz", "aaa"),
		} {
			if b {
				t.Error(idx, "expected false")
			}
		}
	})
	t.Run("Reversed", func(t *testing.T) {
		for idx, b := range []bool{
			Reverse(LessThanNative[int])(1, 2),
			Reverse(LessThanNative[int])(2, 2),
			Reverse(LessThanNative[float64])(1.5, 1.9),
			Reverse(LessThanNative[string])("abc", "abcd"),
		} {
			if b {
				t.Error(idx, "expected false")
			}
		}

		for idx, b := range []bool{
			Reverse(LessThanNative[int8])(0, -2),
			Reverse(LessThanNative[uint64])(999440, 9001),
			Reverse(LessThanNative[string])("zzzz", "aaa"),
		} {
			if !b {
				t.Error(idx, "expected true")
			}
		}
	})
	t.Run("Custom", func(t *testing.T) {
		if !LessThanCustom(userOrderable{1}, userOrderable{2}) {
			t.Error("1 should be less than 2")
		}
		if LessThanCustom(userOrderable{2}, userOrderable{2}) {
			t.Error("equal values are not less than each other")
		}
	})
	t.Run("Converter", func(t *testing.T) {
		lt := LessThanConverter(func(u userOrderable) int { return u.val })
		if !lt(userOrderable{-3}, userOrderable{3}) {
			t.Error("converted values should compare")
		}
	})
	t.Run("Time", func(t *testing.T) {
		now := time.Now()
		if !LessThanTime(now, now.Add(time.Second)) {
			t.Error("earlier time should be less")
		}
		if LessThanTime(now, now) {
			t.Error("a time is not before itself")
		}
	})
	t.Run("Ordered", func(t *testing.T) {
		lt := LessThanNative[int]
		if !Ordered(lt, 1, 2) || !Ordered(lt, 2, 2) {
			t.Error("ascending and equal pairs are ordered")
		}
		if Ordered(lt, 3, 2) {
			t.Error("descending pair is not ordered")
		}
	})
}
