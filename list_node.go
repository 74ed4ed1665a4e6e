package slist

import "fmt"

type node[T any] struct {
	value T
	next  *node[T]
}

// Cursor is a forward-only position in a list. It does not own the
// node it points at. The zero Cursor is the end sentinel, which is
// what Next returns after the last element and what End returns, so
// the C-style loop is:
//
//	for c := list.Begin(); c != list.End(); c = c.Next() {
//		// operate on c.Value()
//	}
//
// A cursor is only valid while the list is not structurally modified.
type Cursor[T any] struct {
	node *node[T]
}

// Begin returns a cursor at the first element of the list, which is
// the end sentinel for empty (and nil) lists.
func (l *List[T]) Begin() Cursor[T] {
	if l == nil {
		return Cursor[T]{}
	}
	return Cursor[T]{node: l.head}
}

// End returns the sentinel cursor that follows the last element.
func (*List[T]) End() Cursor[T] { return Cursor[T]{} }

// Ok reports whether the cursor refers to an element, and false
// for the end sentinel.
func (c Cursor[T]) Ok() bool { return c.node != nil }

// Next returns a cursor at the following element. Advancing the end
// sentinel returns the end sentinel.
func (c Cursor[T]) Next() Cursor[T] {
	if c.node == nil {
		return c
	}
	return Cursor[T]{node: c.node.next}
}

// Value returns the element under the cursor, or the zero value at
// the end.
func (c Cursor[T]) Value() (out T) {
	if c.node != nil {
		out = c.node.value
	}
	return
}

// Ref returns a pointer to the element under the cursor, which can be
// used to modify the value in place. Returns nil at the end.
func (c Cursor[T]) Ref() *T {
	if c.node == nil {
		return nil
	}
	return &c.node.value
}

// Equal reports whether both cursors refer to the same position.
func (c Cursor[T]) Equal(other Cursor[T]) bool { return c.node == other.node }

// String returns the string form of the value under the cursor.
func (c Cursor[T]) String() string { return fmt.Sprint(c.Value()) }
