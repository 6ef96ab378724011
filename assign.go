package dlist

// Assign replaces l's contents with a copy of src's elements, in order.
// Existing nodes are reused before any allocation happens: values are
// overwritten in place, extra source elements are appended, and surplus
// destination elements are erased. Handles into the reused prefix keep
// addressing the same nodes, now holding src's values. Assigning a list to
// itself is a no-op.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	dst := l.head
	for n := src.head; n != nil; n = n.next {
		if dst != nil {
			dst.value = n.value
			dst = dst.next
		} else {
			l.PushBack(n.value)
		}
	}
	l.truncateFrom(dst)
}

// MoveAssign replaces l's contents with src's elements and leaves src
// empty. Values transfer with the same node-reuse strategy as Assign.
// Move-assigning a list to itself is a no-op.
func (l *List[T]) MoveAssign(src *List[T]) {
	if l == src {
		return
	}
	l.Assign(src)
	src.Clear()
}

// AssignValues replaces l's contents with the given values, reusing existing
// nodes the same way Assign does.
func (l *List[T]) AssignValues(values ...T) {
	dst := l.head
	for _, value := range values {
		if dst != nil {
			dst.value = value
			dst = dst.next
		} else {
			l.PushBack(value)
		}
	}
	l.truncateFrom(dst)
}

// truncateFrom erases n and every element after it. A nil n leaves the list
// unchanged. Trimming from the head is equivalent to Clear.
func (l *List[T]) truncateFrom(n *node[T]) {
	for n != nil {
		next := n.next
		l.unlink(n)
		n = next
	}
}
