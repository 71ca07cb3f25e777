// SPDX-License-Identifier: MIT

package list

import "iter"

// singlyNode is one link of a Singly chain.
type singlyNode[T any] struct {
	item T
	next *singlyNode[T]
}

// Singly is a singly linked list anchored at its head.
// Every positional operation walks from the head.
type Singly[T comparable] struct {
	head *singlyNode[T]
	size int
}

var _ List[int] = (*Singly[int])(nil)

// NewSingly returns an empty singly linked list.
func NewSingly[T comparable]() *Singly[T] {
	return &Singly[T]{}
}

// NewSinglyOf returns a singly linked list holding items in order.
func NewSinglyOf[T comparable](items ...T) *Singly[T] {
	l := NewSingly[T]()
	l.extend(items)

	return l
}

// nodeAt walks i links from the head. i must be in [0, size).
func (l *Singly[T]) nodeAt(i int) *singlyNode[T] {
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}

	return n
}

// extend links items after the current last node in a single walk.
func (l *Singly[T]) extend(items []T) {
	if len(items) == 0 {
		return
	}
	var last *singlyNode[T]
	if l.size > 0 {
		last = l.nodeAt(l.size - 1)
	}
	for _, item := range items {
		n := &singlyNode[T]{item: item}
		if last == nil {
			l.head = n
		} else {
			last.next = n
		}
		last = n
	}
	l.size += len(items)
}

// Insert places item at index. Complexity: O(i).
func (l *Singly[T]) Insert(item T, index int) error {
	i, err := insertPosition(index, l.size)
	if err != nil {
		return err
	}
	if i == 0 {
		l.head = &singlyNode[T]{item: item, next: l.head}
	} else {
		prev := l.nodeAt(i - 1)
		prev.next = &singlyNode[T]{item: item, next: prev.next}
	}
	l.size++

	return nil
}

// Remove unlinks the first node holding item. Complexity: O(n).
func (l *Singly[T]) Remove(item T) error {
	var prev *singlyNode[T]
	for n := l.head; n != nil; prev, n = n, n.next {
		if n.item != item {
			continue
		}
		if prev == nil {
			l.head = n.next
		} else {
			prev.next = n.next
		}
		n.next = nil
		l.size--

		return nil
	}

	return notFound(item)
}

// Pop unlinks and returns the item at index. Complexity: O(i).
func (l *Singly[T]) Pop(index int) (T, error) {
	i, err := position(index, l.size)
	if err != nil {
		var zero T
		return zero, err
	}
	var n *singlyNode[T]
	if i == 0 {
		n = l.head
		l.head = n.next
	} else {
		prev := l.nodeAt(i - 1)
		n = prev.next
		prev.next = n.next
	}
	n.next = nil
	l.size--

	return n.item, nil
}

// PopLast is Pop(-1).
func (l *Singly[T]) PopLast() (T, error) { return l.Pop(-1) }

// Read returns the item at index. Complexity: O(i).
func (l *Singly[T]) Read(index int) (T, error) {
	i, err := position(index, l.size)
	if err != nil {
		var zero T
		return zero, err
	}

	return l.nodeAt(i).item, nil
}

// Write replaces the item at index. Complexity: O(i).
func (l *Singly[T]) Write(item T, index int) error {
	i, err := position(index, l.size)
	if err != nil {
		return err
	}
	l.nodeAt(i).item = item

	return nil
}

// Index returns the position of the first occurrence of item.
func (l *Singly[T]) Index(item T) (int, error) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.item == item {
			return i, nil
		}
		i++
	}

	return 0, notFound(item)
}

// Append adds item at the tail. Complexity: O(n).
func (l *Singly[T]) Append(item T) { l.extend([]T{item}) }

// Contains reports whether item is present.
func (l *Singly[T]) Contains(item T) bool {
	_, err := l.Index(item)
	return err == nil
}

// Size returns the number of elements.
func (l *Singly[T]) Size() int { return l.size }

// IsEmpty reports whether the list has no elements.
func (l *Singly[T]) IsEmpty() bool { return l.size == 0 }

// Clear drops every node.
func (l *Singly[T]) Clear() {
	l.head = nil
	l.size = 0
}

// Iterator returns a fresh forward cursor.
func (l *Singly[T]) Iterator() Iterator[T] {
	return &singlyIterator[T]{node: l.head}
}

// All returns the elements as a range-over-func sequence.
func (l *Singly[T]) All() iter.Seq[T] { return seq(l.Iterator) }

// Slice returns the elements in order.
func (l *Singly[T]) Slice() []T { return collect(l.Iterator(), l.size) }

// Equal reports element-wise equality with other.
func (l *Singly[T]) Equal(other List[T]) bool { return equal[T](l, other) }

// Concat returns a new Singly with l's elements followed by other's.
func (l *Singly[T]) Concat(other List[T]) List[T] {
	out := l.clone()
	out.extend(snapshot(other))

	return out
}

// Copy returns an independent Singly with the same elements.
func (l *Singly[T]) Copy() List[T] { return l.clone() }

func (l *Singly[T]) clone() *Singly[T] {
	return NewSinglyOf(l.Slice()...)
}

// String renders the list as "[a, b, c]".
func (l *Singly[T]) String() string { return render(l.Iterator()) }

// singlyIterator walks a Singly chain once.
type singlyIterator[T any] struct {
	node  *singlyNode[T]
	value T
}

func (it *singlyIterator[T]) Next() bool {
	if it.node == nil {
		return false
	}
	it.value = it.node.item
	it.node = it.node.next

	return true
}

func (it *singlyIterator[T]) Value() T { return it.value }
