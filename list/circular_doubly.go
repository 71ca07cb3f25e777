// SPDX-License-Identifier: MIT
//
// File: circular_doubly.go
// Role: Doubly linked ring around a permanent sentinel.
//
// The sentinel's next is the first element and its prev the last; an empty
// ring points both back at the sentinel. Treating the sentinel as position
// size lets Insert link "before position i" for every i in [0, size] without
// special cases.

package list

import "iter"

type cdNode[T any] struct {
	item       T
	prev, next *cdNode[T]
}

// CircularDoubly is a doubly linked ring with a sentinel node.
type CircularDoubly[T comparable] struct {
	sentinel *cdNode[T]
	size     int
}

var _ List[int] = (*CircularDoubly[int])(nil)

// NewCircularDoubly returns an empty ring.
func NewCircularDoubly[T comparable]() *CircularDoubly[T] {
	s := &cdNode[T]{}
	s.next, s.prev = s, s

	return &CircularDoubly[T]{sentinel: s}
}

// NewCircularDoublyOf returns a ring holding items in order.
func NewCircularDoublyOf[T comparable](items ...T) *CircularDoubly[T] {
	l := NewCircularDoubly[T]()
	for _, item := range items {
		l.Append(item)
	}

	return l
}

// at returns the node at position i in [0, size]; position size is the sentinel.
// Walks forward for i < size/2, backward otherwise.
func (l *CircularDoubly[T]) at(i int) *cdNode[T] {
	if i < l.size/2 {
		n := l.sentinel.next
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := l.sentinel
	for k := l.size; k > i; k-- {
		n = n.prev
	}

	return n
}

func (l *CircularDoubly[T]) linkBefore(at *cdNode[T], item T) {
	n := &cdNode[T]{item: item, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	l.size++
}

func (l *CircularDoubly[T]) unlink(n *cdNode[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
	l.size--
}

// Insert places item at index. Complexity: O(min(i, n-i)).
func (l *CircularDoubly[T]) Insert(item T, index int) error {
	i, err := insertPosition(index, l.size)
	if err != nil {
		return err
	}
	l.linkBefore(l.at(i), item)

	return nil
}

// Remove unlinks the first node holding item.
func (l *CircularDoubly[T]) Remove(item T) error {
	for n := l.sentinel.next; n != l.sentinel; n = n.next {
		if n.item == item {
			l.unlink(n)
			return nil
		}
	}

	return notFound(item)
}

// Pop unlinks and returns the item at index. Complexity: O(min(i, n-i)).
func (l *CircularDoubly[T]) Pop(index int) (T, error) {
	i, err := position(index, l.size)
	if err != nil {
		var zero T
		return zero, err
	}
	n := l.at(i)
	l.unlink(n)

	return n.item, nil
}

// PopLast is Pop(-1). Complexity: O(1).
func (l *CircularDoubly[T]) PopLast() (T, error) { return l.Pop(-1) }

// Read returns the item at index.
func (l *CircularDoubly[T]) Read(index int) (T, error) {
	i, err := position(index, l.size)
	if err != nil {
		var zero T
		return zero, err
	}

	return l.at(i).item, nil
}

// Write replaces the item at index.
func (l *CircularDoubly[T]) Write(item T, index int) error {
	i, err := position(index, l.size)
	if err != nil {
		return err
	}
	l.at(i).item = item

	return nil
}

// Index returns the position of the first occurrence of item.
func (l *CircularDoubly[T]) Index(item T) (int, error) {
	i := 0
	for n := l.sentinel.next; n != l.sentinel; n = n.next {
		if n.item == item {
			return i, nil
		}
		i++
	}

	return 0, notFound(item)
}

// Append links item before the sentinel. Complexity: O(1).
func (l *CircularDoubly[T]) Append(item T) { l.linkBefore(l.sentinel, item) }

// Contains reports whether item is present.
func (l *CircularDoubly[T]) Contains(item T) bool {
	_, err := l.Index(item)
	return err == nil
}

// Size returns the number of elements.
func (l *CircularDoubly[T]) Size() int { return l.size }

// IsEmpty reports whether only the sentinel remains.
func (l *CircularDoubly[T]) IsEmpty() bool { return l.sentinel.next == l.sentinel }

// Clear closes the ring back onto the sentinel.
func (l *CircularDoubly[T]) Clear() {
	l.sentinel.next, l.sentinel.prev = l.sentinel, l.sentinel
	l.size = 0
}

// Iterator returns a fresh forward cursor.
func (l *CircularDoubly[T]) Iterator() Iterator[T] {
	return &cdIterator[T]{node: l.sentinel.next, sentinel: l.sentinel}
}

// All returns the elements as a range-over-func sequence.
func (l *CircularDoubly[T]) All() iter.Seq[T] { return seq(l.Iterator) }

// Backward returns the elements from last to first.
func (l *CircularDoubly[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.sentinel.prev; n != l.sentinel; n = n.prev {
			if !yield(n.item) {
				return
			}
		}
	}
}

// Slice returns the elements in order.
func (l *CircularDoubly[T]) Slice() []T { return collect(l.Iterator(), l.size) }

// Equal reports element-wise equality with other.
func (l *CircularDoubly[T]) Equal(other List[T]) bool { return equal[T](l, other) }

// Concat returns a new CircularDoubly with l's elements followed by other's.
func (l *CircularDoubly[T]) Concat(other List[T]) List[T] {
	out := l.clone()
	for _, item := range snapshot(other) {
		out.Append(item)
	}

	return out
}

// Copy returns an independent ring with the same elements.
func (l *CircularDoubly[T]) Copy() List[T] { return l.clone() }

func (l *CircularDoubly[T]) clone() *CircularDoubly[T] {
	out := NewCircularDoubly[T]()
	for n := l.sentinel.next; n != l.sentinel; n = n.next {
		out.Append(n.item)
	}

	return out
}

// String renders the list as "[a, b, c]".
func (l *CircularDoubly[T]) String() string { return render(l.Iterator()) }

type cdIterator[T any] struct {
	node, sentinel *cdNode[T]
	value          T
}

func (it *cdIterator[T]) Next() bool {
	if it.node == it.sentinel {
		return false
	}
	it.value = it.node.item
	it.node = it.node.next

	return true
}

func (it *cdIterator[T]) Value() T { return it.value }
