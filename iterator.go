package dlist

import (
	"iter"

	"github.com/bradenaw/juniper/iterator"
)

// Iterator addresses one element of a List, or nothing at all: the zero
// value is the end sentinel, shared between one-past-the-last and
// one-before-the-first. Iterators compare with ==. Two handles are equal
// exactly when they address the same element, and every end sentinel of a
// given element type is equal to every other.
//
// A handle neither owns nor keeps alive the element it addresses. Once the
// element is erased the handle dangles, and using it is undefined; the list
// performs no detection.
type Iterator[T any] struct {
	n *node[T]
}

// Begin returns a handle to the first element, or the end sentinel if the
// list is empty.
func (l *List[T]) Begin() Iterator[T] { return Iterator[T]{l.head} }

// RBegin returns a handle to the last element, the starting point of a
// backward traversal, or the end sentinel if the list is empty.
func (l *List[T]) RBegin() Iterator[T] { return Iterator[T]{l.tail} }

// End returns the end sentinel.
func (l *List[T]) End() Iterator[T] { return Iterator[T]{} }

// Valid reports whether it addresses an element.
func (it Iterator[T]) Valid() bool { return it.n != nil }

// Value returns the addressed element's value, or ErrEmptyAccess at the end
// sentinel.
func (it Iterator[T]) Value() (T, error) {
	if it.n == nil {
		var zero T
		return zero, ErrEmptyAccess
	}
	return it.n.value, nil
}

// Ref returns a pointer to the addressed element's value for reading or
// in-place mutation, or ErrEmptyAccess at the end sentinel. The pointer
// stays valid until the element is erased.
func (it Iterator[T]) Ref() (*T, error) {
	if it.n == nil {
		return nil, ErrEmptyAccess
	}
	return &it.n.value, nil
}

// Next returns a handle to the following element, or the end sentinel past
// the last element. Next of the end sentinel is the end sentinel.
func (it Iterator[T]) Next() Iterator[T] {
	if it.n == nil {
		return it
	}
	return Iterator[T]{it.n.next}
}

// Prev returns a handle to the preceding element, or the end sentinel before
// the first element. Prev of the end sentinel is the end sentinel.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.n == nil {
		return it
	}
	return Iterator[T]{it.n.prev}
}

// All returns an iterator over the element values from front to back. The
// list must not be modified during iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the element values from back to front.
// The list must not be modified during iteration.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Iterate returns an iterator over the element values from front to back in
// the style of the juniper iterator package. The list must not be modified
// while the iterator is in use.
func (l *List[T]) Iterate() iterator.Iterator[T] {
	return &listIterator[T]{n: l.head}
}

type listIterator[T any] struct {
	n *node[T]
}

var _ iterator.Iterator[byte] = &listIterator[byte]{}

func (it *listIterator[T]) Next() (T, bool) {
	if it.n == nil {
		var zero T
		return zero, false
	}
	value := it.n.value
	it.n = it.n.next
	return value, true
}
