package forwardlist

import "cmp"

// Equal reports whether a and b hold the same elements in the same
// order. Lists of different lengths are never equal and are detected
// without traversal.
func Equal[T comparable](a, b *List[T]) bool {
	if a.len != b.len {
		return false
	}
	bn := b.head.next
	for an := a.head.next; an != nil; an = an.next {
		if an.value != bn.value {
			return false
		}
		bn = bn.next
	}
	return true
}

// Compare compares a and b lexicographically, element by element. The
// result is 0 if the lists are elementwise equal, -1 if a compares
// before b, and +1 if a compares after b. A list that is a proper
// prefix of the other compares before it.
//
// Compare is the single ordering primitive; Less, LessOrEqual, Greater
// and GreaterOrEqual all derive from it.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	bn := b.head.next
	for an := a.head.next; an != nil; an = an.next {
		if bn == nil {
			return +1
		}
		if c := cmp.Compare(an.value, bn.value); c != 0 {
			return c
		}
		bn = bn.next
	}
	if bn != nil {
		return -1
	}
	return 0
}

// Less reports whether a compares lexicographically before b.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether a compares before b or equal to it.
func LessOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a compares lexicographically after b.
func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) > 0
}

// GreaterOrEqual reports whether a compares after b or equal to it.
func GreaterOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) >= 0
}
