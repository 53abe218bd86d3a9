package main

import (
	"fmt"

	"github.com/burakshaevn/forwardlist"
)

func main() {
	var l forwardlist.List[int]

	l.PushFront(3)
	l.PushFront(2)
	l.PushFront(1)

	// Insert after the second element.
	l.InsertAfter(l.Begin().Next(), 9)

	// Remove the front through the before-begin position.
	l.EraseAfter(l.BeforeBegin())

	for v := range l.All() {
		fmt.Println(v)
	}

	other := l.Clone()
	other.PushFront(0)

	fmt.Println(forwardlist.Equal(&l, other))
	fmt.Println(forwardlist.Less(other, &l))
}
