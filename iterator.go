package forwardlist

// cursor is the single implementation shared by Iterator and
// ConstIterator. It references a node without owning it.
type cursor[T any] struct {
	n *node[T]
	// sentinel marks the before-begin position. Only BeforeBegin and
	// CBeforeBegin produce cursors with it set.
	sentinel bool
}

func (c cursor[T]) next() cursor[T] {
	if c.n == nil {
		panic("forwardlist: cannot advance the end iterator")
	}
	return cursor[T]{n: c.n.next}
}

func (c cursor[T]) deref() *node[T] {
	if c.n == nil {
		panic("forwardlist: cannot dereference the end iterator")
	}
	if c.sentinel {
		panic("forwardlist: cannot dereference the before-begin iterator")
	}
	return c.n
}

// Iterator is a forward cursor over a list with read-write access to the
// element it references.
//
// Iterators are plain comparable values: == reports whether two iterators
// reference the same element, with all end iterators equal to each other.
// An iterator stays valid until the element it references is removed or
// the owning list is cleared or destroyed; Swap moves elements between
// lists without invalidating iterators into them.
type Iterator[T any] struct {
	cursor[T]
}

// Next returns an iterator to the following element, or the end iterator
// after the last element. It panics when called on the end iterator.
// Advancing a before-begin iterator yields the first element.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{it.cursor.next()}
}

// Value returns the referenced element. It panics on the end and
// before-begin iterators.
func (it Iterator[T]) Value() T {
	return it.deref().value
}

// Set stores v into the referenced element. It panics on the end and
// before-begin iterators.
func (it Iterator[T]) Set(v T) {
	it.deref().value = v
}

// Ptr returns a pointer to the referenced element. It panics on the end
// and before-begin iterators.
func (it Iterator[T]) Ptr() *T {
	return &it.deref().value
}

// Const converts it to the read-only flavor. The result compares equal
// to it.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it.cursor}
}

// ConstIterator is a forward cursor with read-only access to the element
// it references. It compares with == like Iterator.
type ConstIterator[T any] struct {
	cursor[T]
}

// Next returns an iterator to the following element, or the end iterator
// after the last element. It panics when called on the end iterator.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{it.cursor.next()}
}

// Value returns the referenced element. It panics on the end and
// before-begin iterators.
func (it ConstIterator[T]) Value() T {
	return it.deref().value
}
