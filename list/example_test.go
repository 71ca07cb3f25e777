// SPDX-License-Identifier: MIT

package list_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvstruct/list"
)

// ExampleList shows that every backing answers the same contract.
func ExampleList() {
	backings := []list.List[int]{
		list.NewSingly[int](),
		list.NewDoubly[int](),
		list.NewCircularSingly[int](),
		list.NewCircularDoubly[int](),
		list.NewArray[int](list.WithCapacity(2)),
	}
	for _, l := range backings {
		_ = l.Insert(1, 0)
		_ = l.Insert(2, 1)
		_ = l.Insert(3, 0)
		last, _ := l.Read(-1)
		fmt.Println(l, last)
	}
	// Output:
	// [3, 1, 2] 2
	// [3, 1, 2] 2
	// [3, 1, 2] 2
	// [3, 1, 2] 2
	// [3, 1, 2] 2
}

// ExampleDoubly_Pop demonstrates positional removal and the out-of-range error.
func ExampleDoubly_Pop() {
	l := list.NewDoublyOf("a", "b", "c")
	v, _ := l.Pop(-2)
	fmt.Println(v, l)

	_, err := l.Pop(5)
	fmt.Println(errors.Is(err, list.ErrOutOfRange))
	// Output:
	// b [a, c]
	// true
}

// ExampleArray_Concat builds a new list without touching the operands.
func ExampleArray_Concat() {
	a := list.NewArrayOf(1, 2)
	b := list.NewSinglyOf(3)
	c := a.Concat(b)
	a.Append(9)
	fmt.Println(c, a, b)
	// Output:
	// [1, 2, 3] [1, 2, 9] [3]
}
