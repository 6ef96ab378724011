// Package dlist provides a generic doubly-linked list addressed by stable
// element handles, with O(1) insertion and removal at any held position.
package dlist

import (
	"errors"
	"iter"

	"github.com/bradenaw/juniper/iterator"
)

// ErrEmptyAccess is returned when an element read is attempted on an empty
// list or through the end sentinel.
var ErrEmptyAccess = errors.New("dlist: unable to access data from an empty list")

type node[T any] struct {
	prev  *node[T]
	next  *node[T]
	value T
}

// List is a doubly-linked list of values of type T. The zero value is an
// empty list ready to use.
//
// Elements are addressed by Iterator handles. A handle stays valid until its
// element is erased, no matter how the rest of the list changes. Handles
// must only be passed back to the list that produced them; the list does not
// detect foreign or dangling handles.
//
// List's methods may not be called concurrently.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns an empty list.
func New[T any]() *List[T] { return &List[T]{} }

// Of returns a list containing the given values in order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	for _, value := range values {
		l.PushBack(value)
	}
	return l
}

// Repeat returns a list of count copies of value. It panics if count is
// negative.
func Repeat[T any](value T, count int) *List[T] {
	if count < 0 {
		panic("dlist: negative count")
	}
	l := New[T]()
	for i := 0; i < count; i++ {
		l.PushBack(value)
	}
	return l
}

// Zeroes returns a list of count zero values of T. It panics if count is
// negative.
func Zeroes[T any](count int) *List[T] {
	var zero T
	return Repeat(zero, count)
}

// FromRange returns a list holding copies of the elements in [first, last).
// Both handles must belong to the same list, with first at or before last;
// last may be the end sentinel.
func FromRange[T any](first, last Iterator[T]) *List[T] {
	l := New[T]()
	for it := first; it != last; it = it.Next() {
		l.PushBack(it.n.value)
	}
	return l
}

// FromIterator returns a list of the values produced by src in order,
// draining it.
func FromIterator[T any](src iterator.Iterator[T]) *List[T] {
	l := New[T]()
	for {
		value, ok := src.Next()
		if !ok {
			break
		}
		l.PushBack(value)
	}
	return l
}

// Collect returns a list of the values produced by seq in order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for value := range seq {
		l.PushBack(value)
	}
	return l
}

// MoveFrom returns a list that takes over src's elements and leaves src
// empty. It runs in O(1): no nodes are copied or reallocated, so handles
// into src keep addressing the same elements, now owned by the returned
// list.
func MoveFrom[T any](src *List[T]) *List[T] {
	l := &List[T]{head: src.head, tail: src.tail, size: src.size}
	src.head = nil
	src.tail = nil
	src.size = 0
	return l
}

// Clone returns a deep copy of l: a new list with its own nodes holding the
// same values in the same order. Later mutation of either list does not
// affect the other.
func (l *List[T]) Clone() *List[T] {
	out := New[T]()
	for n := l.head; n != nil; n = n.next {
		out.PushBack(n.value)
	}
	return out
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Front returns a pointer to the first element's value, or ErrEmptyAccess if
// the list is empty. The pointer stays valid until the element is erased.
func (l *List[T]) Front() (*T, error) {
	if l.head == nil {
		return nil, ErrEmptyAccess
	}
	return &l.head.value, nil
}

// Back returns a pointer to the last element's value, or ErrEmptyAccess if
// the list is empty. The pointer stays valid until the element is erased.
func (l *List[T]) Back() (*T, error) {
	if l.tail == nil {
		return nil, ErrEmptyAccess
	}
	return &l.tail.value, nil
}

// PushFront inserts value as the new first element in O(1) and returns its
// handle.
func (l *List[T]) PushFront(value T) Iterator[T] {
	return Iterator[T]{l.linkFront(&node[T]{value: value})}
}

// PushBack inserts value as the new last element in O(1) and returns its
// handle.
func (l *List[T]) PushBack(value T) Iterator[T] {
	return Iterator[T]{l.linkBack(&node[T]{value: value})}
}

// Insert places value immediately before pos and returns the new element's
// handle, in O(1). The end sentinel inserts at the back, and on an empty
// list pos is ignored and the value becomes the sole element.
func (l *List[T]) Insert(pos Iterator[T], value T) Iterator[T] {
	n := &node[T]{value: value}
	switch {
	case l.size == 0:
		// pos can only be the end sentinel or dangling here.
		l.linkBack(n)
	case pos.n == nil:
		l.linkBack(n)
	default:
		l.linkBefore(n, pos.n)
	}
	return Iterator[T]{n}
}

// PopFront removes and returns the first element. It reports false on an
// empty list, which stays unchanged.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	value := l.head.value
	l.Erase(Iterator[T]{l.head})
	return value, true
}

// PopBack removes and returns the last element. It reports false on an
// empty list, which stays unchanged.
func (l *List[T]) PopBack() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	value := l.tail.value
	l.Erase(Iterator[T]{l.tail})
	return value, true
}

// Erase removes the element at pos in O(1) and returns the handle of its
// successor, or the end sentinel if the last element was removed. Erasing
// the end sentinel is a no-op that returns the end sentinel.
//
// The erased handle must not be dereferenced or passed to the list again.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	if pos.n == nil {
		return pos
	}
	succ := pos.n.next
	l.unlink(pos.n)
	return Iterator[T]{succ}
}

// Clear removes all elements. Every node's links are cleared so outstanding
// handles do not keep the rest of the chain reachable.
func (l *List[T]) Clear() {
	n := l.head
	for n != nil {
		next := n.next
		n.prev = nil
		n.next = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// MoveToFront moves the element at it to the front of the list in O(1). It
// is a no-op for the end sentinel or an element already at the front.
func (l *List[T]) MoveToFront(it Iterator[T]) {
	if it.n == nil || l.head == it.n {
		return
	}
	l.unlink(it.n)
	l.linkFront(it.n)
}

// MoveToBack moves the element at it to the back of the list in O(1). It is
// a no-op for the end sentinel or an element already at the back.
func (l *List[T]) MoveToBack(it Iterator[T]) {
	if it.n == nil || l.tail == it.n {
		return
	}
	l.unlink(it.n)
	l.linkBack(it.n)
}

// MoveBefore moves the element at it to immediately before mark, in O(1). A
// mark at the end sentinel moves the element to the back. It is a no-op if
// it is the end sentinel, equals mark, or already sits immediately before
// mark. Both handles must belong to l.
func (l *List[T]) MoveBefore(it, mark Iterator[T]) {
	if it.n == nil || it == mark {
		return
	}
	if mark.n == nil {
		l.MoveToBack(it)
		return
	}
	if it.n.next == mark.n {
		return
	}
	l.unlink(it.n)
	l.linkBefore(it.n, mark.n)
}

// MoveAfter moves the element at it to immediately after mark, in O(1). It
// is a no-op if either handle is the end sentinel, the handles are equal, or
// it already sits immediately after mark. Both handles must belong to l.
func (l *List[T]) MoveAfter(it, mark Iterator[T]) {
	if it.n == nil || mark.n == nil || it == mark {
		return
	}
	if mark.n.next == it.n {
		return
	}
	l.unlink(it.n)
	l.linkAfter(it.n, mark.n)
}

// PushBackList appends a copy of every element of other to the back of l.
// The lists stay independent. l and other may be the same list.
func (l *List[T]) PushBackList(other *List[T]) {
	for i, n := other.Len(), other.head; i > 0; i, n = i-1, n.next {
		l.PushBack(n.value)
	}
}

// PushFrontList inserts a copy of every element of other at the front of l,
// keeping other's order. The lists stay independent. l and other may be the
// same list.
func (l *List[T]) PushFrontList(other *List[T]) {
	for i, n := other.Len(), other.tail; i > 0; i, n = i-1, n.prev {
		l.PushFront(n.value)
	}
}

// Values returns the elements in order as a newly allocated slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Swap exchanges the contents of l and other in O(1) without touching
// nodes. Handles keep addressing the elements they did before, which now
// belong to the other list.
func (l *List[T]) Swap(other *List[T]) {
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.size, other.size = other.size, l.size
}

// Swap exchanges the contents of a and b in O(1).
func Swap[T any](a, b *List[T]) { a.Swap(b) }

// linkFront links n in as the new head. n must not be in any list.
func (l *List[T]) linkFront(n *node[T]) *node[T] {
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
	return n
}

// linkBack links n in as the new tail. n must not be in any list.
func (l *List[T]) linkBack(n *node[T]) *node[T] {
	n.prev = l.tail
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
	return n
}

// linkBefore links n in immediately before at, which must be a node of l.
func (l *List[T]) linkBefore(n, at *node[T]) *node[T] {
	if at == l.head {
		return l.linkFront(n)
	}
	n.prev = at.prev
	n.next = at
	at.prev.next = n
	at.prev = n
	l.size++
	return n
}

// linkAfter links n in immediately after at, which must be a node of l.
func (l *List[T]) linkAfter(n, at *node[T]) *node[T] {
	if at == l.tail {
		return l.linkBack(n)
	}
	n.next = at.next
	n.prev = at
	at.next.prev = n
	at.next = n
	l.size++
	return n
}

// unlink removes n from the chain and clears its links so stale handles do
// not retain neighbors. n must be a node of l.
func (l *List[T]) unlink(n *node[T]) {
	if l.head == n {
		l.head = l.head.next
	} else {
		n.prev.next = n.next
	}
	if l.tail == n {
		l.tail = l.tail.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
	l.size--
}
