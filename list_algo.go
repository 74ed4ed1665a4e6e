package slist

import (
	"github.com/tychoish/slist/cmp"
	"github.com/tychoish/slist/ers"
)

// Search reports whether any element equals the target.
func (l *List[T]) Search(target T) bool { return l.Locate(target) != NotFound }

// Locate returns the index of the first element equal to the target,
// or NotFound.
func (l *List[T]) Locate(target T) int {
	idx := 0
	for c := l.Begin(); c.Ok(); c = c.Next() {
		if c.Value() == target {
			return idx
		}
		idx++
	}
	return NotFound
}

// SortFunc orders the list in place, ascending by lt or, when
// descending is true, in the opposite direction. It performs repeated
// bubble passes, exchanging the values of adjacent out-of-order nodes
// (the links are never changed) until a pass makes no exchange.
// Neighbors that compare equal are left in place, so the sort is
// stable. Sorting an empty list returns ErrEmptyContainer and does
// nothing.
func (l *List[T]) SortFunc(lt cmp.LessThan[T], descending bool) error {
	l.ready()
	ers.Invariant(lt != nil, "sorting requires a comparison function")

	if l.size == 0 {
		return ErrEmptyContainer
	}
	if descending {
		lt = cmp.Reverse(lt)
	}

	for swapped := true; swapped; {
		swapped = false
		for curr := l.head; curr.next != nil; curr = curr.next {
			if lt(curr.next.value, curr.value) {
				swapValues(curr, curr.next)
				swapped = true
			}
		}
	}
	return nil
}

// IsSortedFunc reports whether the list is in ascending order by lt.
// Empty and single element lists are sorted.
func (l *List[T]) IsSortedFunc(lt cmp.LessThan[T]) bool {
	ers.Invariant(lt != nil, "sorting requires a comparison function")

	for c := l.Begin(); c.Ok(); c = c.Next() {
		if next := c.Next(); next.Ok() && !cmp.Ordered(lt, c.Value(), next.Value()) {
			return false
		}
	}
	return true
}

// Sort orders a list of natively ordered values in place; see
// SortFunc.
func Sort[T cmp.OrderableNative](l *List[T], descending bool) error {
	return l.SortFunc(cmp.LessThanNative[T], descending)
}

// IsSorted reports whether a list of natively ordered values is in
// ascending order.
func IsSorted[T cmp.OrderableNative](l *List[T]) bool {
	return l.IsSortedFunc(cmp.LessThanNative[T])
}

// swapValues exchanges the values of two nodes; exchanging a node
// with itself is a no-op.
func swapValues[T any](a, b *node[T]) {
	if a == b {
		return
	}
	a.value, b.value = b.value, a.value
}

// Split appends copies of the first half of the list (rounded down)
// to first and of the remaining elements to second. The receiver is
// not modified.
func (l *List[T]) Split(first, second *List[T]) error {
	if l.IsEmpty() {
		return ErrEmptyContainer
	}
	first.ready()
	second.ready()

	size := l.size
	half := size / 2
	rest := l.Begin()
	for i := 0; i < half; i++ {
		rest = rest.Next()
	}

	// collect the second half before appending: either output may
	// be the receiver.
	values := make([]T, 0, size-half)
	for c := rest; c.Ok() && len(values) < size-half; c = c.Next() {
		values = append(values, c.Value())
	}

	first.appendFrom(l, half)
	second.Append(values...)
	return nil
}

// Merge appends copies of every value in a, then every value in b,
// to the receiver. The values are not sorted or interleaved, and
// neither input is modified. Both inputs must be non-empty.
func (l *List[T]) Merge(a, b *List[T]) error {
	l.ready()
	if a.IsEmpty() || b.IsEmpty() {
		return ErrEmptyContainer
	}

	na, nb := a.Len(), b.Len()
	l.appendFrom(a, na)
	l.appendFrom(b, nb)
	return nil
}
