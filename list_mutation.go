package slist

import "github.com/tychoish/slist/ers"

// PushBack adds a value to the end of the list.
func (l *List[T]) PushBack(value T) {
	l.ready()
	n := &node[T]{value: value}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// PushFront adds a value to the beginning of the list.
func (l *List[T]) PushFront(value T) {
	l.ready()
	l.head = &node[T]{value: value, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
	l.size++
}

// PushAt inserts a value so that it is at the index in the resulting
// list: index 0 prepends, and index Len() appends. The list must not
// be empty.
func (l *List[T]) PushAt(index int, value T) error {
	l.ready()
	if l.size == 0 {
		return ErrEmptyContainer
	}
	if err := ers.Whenf(index < 0 || index > l.size, ErrIndexOutOfRange, "insert at %d of %d", index, l.size); err != nil {
		return err
	}

	switch index {
	case 0:
		l.PushFront(value)
	case l.size:
		l.PushBack(value)
	default:
		l.insertAfter(l.nodeAt(index-1), value)
	}
	return nil
}

// PushAfter inserts a value after the first element equal to the
// anchor. When the last element equals the anchor, the value is
// appended to the list.
func (l *List[T]) PushAfter(anchor, value T) error {
	l.ready()
	if l.size == 0 {
		return ErrEmptyContainer
	}
	if l.tail.value == anchor {
		l.PushBack(value)
		return nil
	}

	for n := l.head; n != nil && n != l.tail; n = n.next {
		if n.value == anchor {
			l.insertAfter(n, value)
			return nil
		}
	}
	return ers.Wrapf(ErrPositionNotFound, "anchor <%v>", anchor)
}

// PushBefore inserts a value before the first element equal to the
// anchor.
func (l *List[T]) PushBefore(anchor, value T) error {
	l.ready()
	if l.size == 0 {
		return ErrEmptyContainer
	}
	if l.head.value == anchor {
		l.PushFront(value)
		return nil
	}

	for prev := l.head; prev.next != nil; prev = prev.next {
		if prev.next.value == anchor {
			l.insertAfter(prev, value)
			return nil
		}
	}
	return ers.Wrapf(ErrPositionNotFound, "anchor <%v>", anchor)
}

func (l *List[T]) insertAfter(prev *node[T], value T) {
	prev.next = &node[T]{value: value, next: prev.next}
	if prev == l.tail {
		l.tail = prev.next
	}
	l.size++
}

// PopFront removes the first element of the list and returns its
// value.
func (l *List[T]) PopFront() (out T, err error) {
	l.ready()
	if l.size == 0 {
		return out, ErrEmptyContainer
	}

	n := l.head
	l.head = n.next
	n.next = nil
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	return n.value, nil
}

// PopBack removes the last element of the list and returns its
// value. Because the list is singly linked, this walks the list to
// find the new tail.
func (l *List[T]) PopBack() (out T, err error) {
	l.ready()
	switch l.size {
	case 0:
		return out, ErrEmptyContainer
	case 1:
		return l.PopFront()
	}

	prev := l.nodeAt(l.size - 2)
	out = l.tail.value
	prev.next = nil
	l.tail = prev
	l.size--
	return out, nil
}

// PopAt removes the element at the index and returns its value.
func (l *List[T]) PopAt(index int) (out T, err error) {
	l.ready()
	if err = l.checkIndex(index); err != nil {
		return out, err
	}

	switch index {
	case 0:
		return l.PopFront()
	case l.size - 1:
		return l.PopBack()
	}

	prev := l.nodeAt(index - 1)
	n := prev.next
	prev.next = n.next
	n.next = nil
	l.size--
	return n.value, nil
}
