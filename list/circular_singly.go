// SPDX-License-Identifier: MIT
//
// File: circular_singly.go
// Role: Singly linked ring around a permanent sentinel.
//
// Layout:
//
//	sentinel → e0 → e1 → … → e(n-1) ─┐
//	   ▲─────────────────────────────┘
//
// The sentinel never carries user data and is never handed out. Position i is
// reached by walking i+1 links from the sentinel; the node "before" position 0
// is the sentinel itself, which removes every head special case. last caches
// the node before the sentinel so appends stay O(1).

package list

import "iter"

type csNode[T any] struct {
	item T
	next *csNode[T]
}

// CircularSingly is a singly linked ring with a sentinel node.
type CircularSingly[T comparable] struct {
	sentinel *csNode[T]
	last     *csNode[T] // sentinel when empty
	size     int
}

var _ List[int] = (*CircularSingly[int])(nil)

// NewCircularSingly returns an empty ring.
func NewCircularSingly[T comparable]() *CircularSingly[T] {
	s := &csNode[T]{}
	s.next = s

	return &CircularSingly[T]{sentinel: s, last: s}
}

// NewCircularSinglyOf returns a ring holding items in order.
func NewCircularSinglyOf[T comparable](items ...T) *CircularSingly[T] {
	l := NewCircularSingly[T]()
	for _, item := range items {
		l.Append(item)
	}

	return l
}

// before returns the node preceding position i, for i in [0, size].
func (l *CircularSingly[T]) before(i int) *csNode[T] {
	if i == l.size {
		return l.last
	}
	n := l.sentinel
	for ; i > 0; i-- {
		n = n.next
	}

	return n
}

// at returns the node at position i in [0, size).
func (l *CircularSingly[T]) at(i int) *csNode[T] {
	if i == l.size-1 {
		return l.last
	}

	return l.before(i).next
}

// linkAfter links a new node holding item after prev.
func (l *CircularSingly[T]) linkAfter(prev *csNode[T], item T) {
	n := &csNode[T]{item: item, next: prev.next}
	prev.next = n
	if prev == l.last {
		l.last = n
	}
	l.size++
}

// unlinkAfter removes and returns the node following prev.
func (l *CircularSingly[T]) unlinkAfter(prev *csNode[T]) *csNode[T] {
	n := prev.next
	prev.next = n.next
	if n == l.last {
		l.last = prev
	}
	n.next = nil
	l.size--

	return n
}

// Insert places item at index. Complexity: O(i), O(1) at the tail.
func (l *CircularSingly[T]) Insert(item T, index int) error {
	i, err := insertPosition(index, l.size)
	if err != nil {
		return err
	}
	l.linkAfter(l.before(i), item)

	return nil
}

// Remove unlinks the first node holding item.
func (l *CircularSingly[T]) Remove(item T) error {
	for prev := l.sentinel; prev.next != l.sentinel; prev = prev.next {
		if prev.next.item == item {
			l.unlinkAfter(prev)
			return nil
		}
	}

	return notFound(item)
}

// Pop unlinks and returns the item at index. Complexity: O(i).
func (l *CircularSingly[T]) Pop(index int) (T, error) {
	i, err := position(index, l.size)
	if err != nil {
		var zero T
		return zero, err
	}

	return l.unlinkAfter(l.before(i)).item, nil
}

// PopLast is Pop(-1). It walks the ring to find the new last node.
func (l *CircularSingly[T]) PopLast() (T, error) { return l.Pop(-1) }

// Read returns the item at index.
func (l *CircularSingly[T]) Read(index int) (T, error) {
	i, err := position(index, l.size)
	if err != nil {
		var zero T
		return zero, err
	}

	return l.at(i).item, nil
}

// Write replaces the item at index.
func (l *CircularSingly[T]) Write(item T, index int) error {
	i, err := position(index, l.size)
	if err != nil {
		return err
	}
	l.at(i).item = item

	return nil
}

// Index returns the position of the first occurrence of item.
func (l *CircularSingly[T]) Index(item T) (int, error) {
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
func (l *CircularSingly[T]) Append(item T) { l.linkAfter(l.last, item) }

// Contains reports whether item is present.
func (l *CircularSingly[T]) Contains(item T) bool {
	_, err := l.Index(item)
	return err == nil
}

// Size returns the number of elements.
func (l *CircularSingly[T]) Size() int { return l.size }

// IsEmpty reports whether only the sentinel remains.
func (l *CircularSingly[T]) IsEmpty() bool { return l.sentinel.next == l.sentinel }

// Clear closes the ring back onto the sentinel.
func (l *CircularSingly[T]) Clear() {
	l.sentinel.next = l.sentinel
	l.last = l.sentinel
	l.size = 0
}

// Iterator returns a fresh forward cursor.
func (l *CircularSingly[T]) Iterator() Iterator[T] {
	return &csIterator[T]{node: l.sentinel.next, sentinel: l.sentinel}
}

// All returns the elements as a range-over-func sequence.
func (l *CircularSingly[T]) All() iter.Seq[T] { return seq(l.Iterator) }

// Slice returns the elements in order.
func (l *CircularSingly[T]) Slice() []T { return collect(l.Iterator(), l.size) }

// Equal reports element-wise equality with other.
func (l *CircularSingly[T]) Equal(other List[T]) bool { return equal[T](l, other) }

// Concat returns a new CircularSingly with l's elements followed by other's.
func (l *CircularSingly[T]) Concat(other List[T]) List[T] {
	out := l.clone()
	for _, item := range snapshot(other) {
		out.Append(item)
	}

	return out
}

// Copy returns an independent ring with the same elements.
func (l *CircularSingly[T]) Copy() List[T] { return l.clone() }

func (l *CircularSingly[T]) clone() *CircularSingly[T] {
	out := NewCircularSingly[T]()
	for n := l.sentinel.next; n != l.sentinel; n = n.next {
		out.Append(n.item)
	}

	return out
}

// String renders the list as "[a, b, c]".
func (l *CircularSingly[T]) String() string { return render(l.Iterator()) }

type csIterator[T any] struct {
	node, sentinel *csNode[T]
	value          T
}

func (it *csIterator[T]) Next() bool {
	if it.node == it.sentinel {
		return false
	}
	it.value = it.node.item
	it.node = it.node.next

	return true
}

func (it *csIterator[T]) Value() T { return it.value }
