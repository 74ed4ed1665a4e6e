// Package slist provides a generic singly linked list.
//
// The zero value of List is an empty list that is ready to use. Lists
// track their head, tail, and length, so appending, prepending,
// removing the first element and reporting the length are constant
// time; positional access walks the chain from the head.
//
// Lists are not safe for concurrent use. Callers that share a list
// between goroutines must serialize every call (e.g. with one mutex
// per list). Cursors and sequences produced by a list borrow its
// nodes: structural changes to a list (pushes, pops, Clear, Move)
// while a traversal is in progress invalidate the traversal.
package slist

import "github.com/tychoish/slist/ers"

// ErrEmptyContainer is returned by operations that require at least
// one element when called on an empty list.
const ErrEmptyContainer ers.Error = ers.Error("empty container")

// ErrIndexOutOfRange is returned (wrapped with the offending index)
// when a position is negative or past the end of the list.
const ErrIndexOutOfRange ers.Error = ers.Error("index out of range")

// ErrPositionNotFound is returned by PushAfter and PushBefore when no
// element equals the anchor value.
const ErrPositionNotFound ers.Error = ers.Error("position not found")

// ErrUninitializedContainer is the content of the panic produced when you
// attempt to modify a nil list.
const ErrUninitializedContainer ers.Error = ers.Error("uninitialized container")

// ErrChainCorrupted is reported, always together with
// ers.ErrInvariantViolation, when the links of a list disagree with
// its recorded head, tail, or length. This indicates a defect rather
// than a usage error.
const ErrChainCorrupted ers.Error = ers.Error("corrupted chain")

// NotFound is the index Locate returns when no element matches.
const NotFound = -1
