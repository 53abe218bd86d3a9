/*
Package forwardlist implements a generic singly linked list.

The list keeps a sentinel node before the first element, so inserting
and removing at the front goes through the same InsertAfter and
EraseAfter primitives as any other position, with BeforeBegin as the
position argument.
*/
package forwardlist

import "iter"

// List is a singly linked list.
//
// The zero value is a ready to use empty list.
type List[T any] struct {
	head node[T] // sentinel; head.next is the first element
	len  int
}

// New creates a list holding values in the given order.
func New[T any](values ...T) *List[T] {
	l := new(List[T])
	l.Assign(values...)
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// Front returns the first element. It panics if the list is empty.
func (l *List[T]) Front() T {
	if l.len == 0 {
		panic("forwardlist: Front on empty list")
	}
	return l.head.next.value
}

// Begin returns an iterator to the first element, equal to End when the
// list is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{cursor[T]{n: l.head.next}}
}

// End returns the past-the-end iterator. It must not be dereferenced or
// advanced.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin returns an iterator to the sentinel position preceding the
// first element. It must not be dereferenced; it is valid as the pos
// argument of InsertAfter and EraseAfter to address the front of the
// list, and advancing it yields Begin.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{cursor[T]{n: &l.head, sentinel: true}}
}

// CBegin returns a read-only iterator to the first element.
func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

// CEnd returns the read-only past-the-end iterator.
func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// CBeforeBegin returns a read-only iterator to the sentinel position.
func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return l.BeforeBegin().Const()
}

// PushFront inserts a value at the front of list l and returns an
// iterator to the new element.
func (l *List[T]) PushFront(value T) Iterator[T] {
	n := &node[T]{next: l.head.next, value: value}
	l.head.next = n
	l.len++
	return Iterator[T]{cursor[T]{n: n}}
}

// PopFront removes the first element. It panics if the list is empty.
// Iterators to the removed element become invalid.
func (l *List[T]) PopFront() {
	if l.len == 0 {
		panic("forwardlist: PopFront on empty list")
	}
	n := l.head.next
	l.head.next = n.next
	n.next = nil
	l.len--
}

// InsertAfter inserts value after the element referenced by pos and
// returns an iterator to the inserted element. pos may be BeforeBegin
// to insert at the front. It panics if pos is the end iterator.
// No existing iterators are invalidated.
func (l *List[T]) InsertAfter(pos Iterator[T], value T) Iterator[T] {
	if pos.n == nil {
		panic("forwardlist: InsertAfter on the end iterator")
	}
	n := &node[T]{next: pos.n.next, value: value}
	pos.n.next = n
	l.len++
	return Iterator[T]{cursor[T]{n: n}}
}

// EraseAfter removes the element following pos and returns an iterator
// to its successor, or End if the removed element was the last one.
// It panics if the list is empty, pos is the end iterator, or pos
// references the last element. Only iterators to the removed element
// become invalid.
func (l *List[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	if l.len == 0 {
		panic("forwardlist: EraseAfter on empty list")
	}
	if pos.n == nil {
		panic("forwardlist: EraseAfter on the end iterator")
	}
	if pos.n.next == nil {
		panic("forwardlist: EraseAfter at the last element")
	}
	n := pos.n.next
	pos.n.next = n.next
	n.next = nil
	l.len--
	return Iterator[T]{cursor[T]{n: pos.n.next}}
}

// Clear removes every element, front to back, unlinking each node as it
// goes. The list is empty and reusable afterwards. Clear never fails.
func (l *List[T]) Clear() {
	for l.head.next != nil {
		n := l.head.next
		l.head.next = n.next
		n.next = nil
		l.len--
	}
}

// Swap exchanges the contents of l and other in O(1). No elements are
// copied; iterators keep referencing the same elements, which now belong
// to the other list.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.len, other.len = other.len, l.len
}

// Assign replaces the contents of the list with values in the given
// order. The new chain is built aside and swapped into place, so a
// panic while building leaves l unchanged.
func (l *List[T]) Assign(values ...T) {
	var tmp List[T]
	tail := &tmp.head
	for _, v := range values {
		tail.next = &node[T]{value: v}
		tail = tail.next
		tmp.len++
	}
	l.Swap(&tmp)
}

// Clone returns a deep copy of the list in the same order. Mutating the
// copy never affects the original.
func (l *List[T]) Clone() *List[T] {
	c := new(List[T])
	c.CopyFrom(l)
	return c
}

// CopyFrom replaces the contents of l with a deep copy of other,
// preserving order. The copy is fully built before the old contents are
// released. CopyFrom(l) is a no-op.
func (l *List[T]) CopyFrom(other *List[T]) {
	if l == other {
		return
	}
	var tmp List[T]
	tail := &tmp.head
	for n := other.head.next; n != nil; n = n.next {
		tail.next = &node[T]{value: n.value}
		tail = tail.next
		tmp.len++
	}
	l.Swap(&tmp)
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[T]) Do(f func(v T) bool) {
	for n := l.head.next; n != nil; n = n.next {
		if !f(n.value) {
			return
		}
	}
}

// All returns an iterator over the elements of the list in forward
// order, for use with range.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
