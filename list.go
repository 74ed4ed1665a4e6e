package slist

import (
	"fmt"
	"iter"
	"slices"

	"github.com/tychoish/slist/ers"
)

// List is a singly linked list of comparable values. Element
// equality is used by Search, Locate, PushAfter and PushBefore.
//
// Every node belongs to exactly one list: Copy, Split and Merge
// duplicate values into new nodes and never share nodes between
// lists.
type List[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

// NewList constructs a list holding the items, in order.
func NewList[T comparable](items ...T) *List[T] { return (&List[T]{}).Append(items...) }

// Append adds a variadic sequence of items to the end of the list.
func (l *List[T]) Append(items ...T) *List[T] {
	l.ready()
	for _, v := range items {
		l.PushBack(v)
	}
	return l
}

// Prepend adds the items to the front of the list, keeping their
// order: Prepend(1, 2) on [3] gives [1 2 3].
func (l *List[T]) Prepend(items ...T) *List[T] {
	l.ready()
	for i := len(items) - 1; i >= 0; i-- {
		l.PushFront(items[i])
	}
	return l
}

// Extend adds every value in the sequence to the end of the list.
// The sequence is drained before the first value is added, so it may
// iterate over the receiver itself.
func (l *List[T]) Extend(seq iter.Seq[T]) *List[T] {
	return l.Append(slices.Collect(seq)...)
}

func (l *List[T]) ready() { ers.Invariant(l != nil, ErrUninitializedContainer) }

// Len returns the length of the list. As the push and pop operations
// track the length of the list, this is an O(1) operation.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return l == nil || l.head == nil }

// Front returns the first value in the list.
func (l *List[T]) Front() (out T, err error) {
	if l.IsEmpty() {
		return out, ErrEmptyContainer
	}
	return l.head.value, nil
}

// Back returns the last value in the list.
func (l *List[T]) Back() (out T, err error) {
	if l.IsEmpty() {
		return out, ErrEmptyContainer
	}
	return l.tail.value, nil
}

// At returns the value at the (zero-based) index, walking the list
// from the front.
func (l *List[T]) At(index int) (out T, err error) {
	if err = l.checkIndex(index); err != nil {
		return out, err
	}
	return l.nodeAt(index).value, nil
}

// Set replaces the value at the index in place.
func (l *List[T]) Set(index int, value T) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.nodeAt(index).value = value
	return nil
}

// Copy duplicates the list. The nodes of the two lists are distinct,
// though if the values are themselves references, the values of both
// lists would be shared.
func (l *List[T]) Copy() *List[T] {
	out := &List[T]{}
	out.appendFrom(l, l.Len())
	return out
}

// Move transfers the entire chain to a new list in constant time,
// leaving the receiver empty.
func (l *List[T]) Move() *List[T] {
	l.ready()
	out := &List[T]{head: l.head, tail: l.tail, size: l.size}
	l.head, l.tail, l.size = nil, nil, 0
	return out
}

// Clear removes every element. Nodes are unlinked one at a time, so
// that no node keeps the rest of the chain reachable.
func (l *List[T]) Clear() {
	l.ready()
	for l.head != nil {
		next := l.head.next
		l.head.next = nil
		l.head = next
	}
	l.tail = nil
	l.size = 0
}

// Equal reports whether both lists hold equal values in the same
// order.
func (l *List[T]) Equal(other *List[T]) bool {
	if l.Len() != other.Len() {
		return false
	}
	for a, b := l.Begin(), other.Begin(); a.Ok(); a, b = a.Next(), b.Next() {
		if a.Value() != b.Value() {
			return false
		}
	}
	return true
}

// Seq returns a native go iterator function for the values in the
// list, front to back.
func (l *List[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := l.Begin(); c.Ok(); c = c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Slice exports the contents of the list to a slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	for v := range l.Seq() {
		out = append(out, v)
	}
	return out
}

// String renders the values of the list, as fmt would render a
// slice.
func (l *List[T]) String() string { return fmt.Sprint(l.Slice()) }

// Validate walks the chain and checks that the head, tail and length
// of the list agree with its links. Errors returned by Validate wrap
// both ErrChainCorrupted and ers.ErrInvariantViolation.
func (l *List[T]) Validate() error {
	switch {
	case l == nil:
		return ers.NewInvariantViolation(ErrUninitializedContainer)
	case l.size < 0:
		return corrupted("negative length %d", l.size)
	case l.size == 0:
		if l.head != nil || l.tail != nil {
			return corrupted("empty list holds nodes")
		}
		return nil
	case l.head == nil || l.tail == nil:
		return corrupted("list of length %d has no head or tail", l.size)
	case l.tail.next != nil:
		return corrupted("tail is linked to another node")
	}

	n := l.head
	for step := 1; step < l.size; step++ {
		if n = n.next; n == nil {
			return corrupted("chain ended after %d of %d nodes", step, l.size)
		}
	}
	if n != l.tail {
		return corrupted("node %d is not the tail", l.size-1)
	}
	return nil
}

func corrupted(tmpl string, args ...any) error {
	return ers.NewInvariantViolation(ers.Wrapf(ErrChainCorrupted, tmpl, args...))
}

func (l *List[T]) checkIndex(index int) error {
	if l.IsEmpty() {
		return ErrEmptyContainer
	}
	return ers.Whenf(index < 0 || index >= l.size, ErrIndexOutOfRange, "index %d of %d", index, l.size)
}

// nodeAt walks to the node at a previously checked index. Running off
// the end of the chain before the index is a corrupted list.
func (l *List[T]) nodeAt(index int) *node[T] {
	n := l.head
	for step := 0; step < index && n != nil; step++ {
		n = n.next
	}
	if n == nil {
		panic(corrupted("chain ended before index %d of %d", index, l.size))
	}
	return n
}

// appendFrom pushes the first count values of src. The count is fixed
// before the walk starts, so src may be the receiver.
func (l *List[T]) appendFrom(src *List[T], count int) {
	c := src.Begin()
	for i := 0; i < count && c.Ok(); i++ {
		l.PushBack(c.Value())
		c = c.Next()
	}
}
