// SPDX-License-Identifier: MIT

package list

import "iter"

// doublyNode is one link of a Doubly chain. prev is a back-reference only.
type doublyNode[T any] struct {
	item       T
	prev, next *doublyNode[T]
}

// Doubly is a doubly linked list anchored at both ends.
//
// Positional walks start from whichever end is nearer, so both ends are O(1)
// and the middle costs at most n/2 steps. This is the backing store used by
// the stack, queue and graph packages.
type Doubly[T comparable] struct {
	head, tail *doublyNode[T]
	size       int
}

var _ List[int] = (*Doubly[int])(nil)

// NewDoubly returns an empty doubly linked list.
func NewDoubly[T comparable]() *Doubly[T] {
	return &Doubly[T]{}
}

// NewDoublyOf returns a doubly linked list holding items in order.
func NewDoublyOf[T comparable](items ...T) *Doubly[T] {
	l := NewDoubly[T]()
	for _, item := range items {
		l.Append(item)
	}

	return l
}

// nodeAt returns the node at i in [0, size), walking from the nearer end.
func (l *Doubly[T]) nodeAt(i int) *doublyNode[T] {
	if i < l.size/2 {
		n := l.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := l.tail
	for k := l.size - 1; k > i; k-- {
		n = n.prev
	}

	return n
}

// linkBefore links n in front of at; at == nil links n at the tail.
func (l *Doubly[T]) linkBefore(n, at *doublyNode[T]) {
	if at == nil {
		n.prev = l.tail
		if l.tail != nil {
			l.tail.next = n
		} else {
			l.head = n
		}
		l.tail = n
	} else {
		n.next = at
		n.prev = at.prev
		if at.prev != nil {
			at.prev.next = n
		} else {
			l.head = n
		}
		at.prev = n
	}
	l.size++
}

// unlink detaches n and clears its links.
func (l *Doubly[T]) unlink(n *doublyNode[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.size--
}

// Insert places item at index. Complexity: O(min(i, n-i)).
func (l *Doubly[T]) Insert(item T, index int) error {
	i, err := insertPosition(index, l.size)
	if err != nil {
		return err
	}
	var at *doublyNode[T]
	if i < l.size {
		at = l.nodeAt(i)
	}
	l.linkBefore(&doublyNode[T]{item: item}, at)

	return nil
}

// Remove unlinks the first node holding item. Complexity: O(n).
func (l *Doubly[T]) Remove(item T) error {
	for n := l.head; n != nil; n = n.next {
		if n.item == item {
			l.unlink(n)
			return nil
		}
	}

	return notFound(item)
}

// Pop unlinks and returns the item at index. Complexity: O(min(i, n-i)).
func (l *Doubly[T]) Pop(index int) (T, error) {
	i, err := position(index, l.size)
	if err != nil {
		var zero T
		return zero, err
	}
	n := l.nodeAt(i)
	l.unlink(n)

	return n.item, nil
}

// PopLast is Pop(-1). Complexity: O(1).
func (l *Doubly[T]) PopLast() (T, error) { return l.Pop(-1) }

// Read returns the item at index.
func (l *Doubly[T]) Read(index int) (T, error) {
	i, err := position(index, l.size)
	if err != nil {
		var zero T
		return zero, err
	}

	return l.nodeAt(i).item, nil
}

// Write replaces the item at index.
func (l *Doubly[T]) Write(item T, index int) error {
	i, err := position(index, l.size)
	if err != nil {
		return err
	}
	l.nodeAt(i).item = item

	return nil
}

// Index returns the position of the first occurrence of item.
func (l *Doubly[T]) Index(item T) (int, error) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.item == item {
			return i, nil
		}
		i++
	}

	return 0, notFound(item)
}

// Append links item at the tail. Complexity: O(1).
func (l *Doubly[T]) Append(item T) { l.linkBefore(&doublyNode[T]{item: item}, nil) }

// Contains reports whether item is present.
func (l *Doubly[T]) Contains(item T) bool {
	_, err := l.Index(item)
	return err == nil
}

// Size returns the number of elements.
func (l *Doubly[T]) Size() int { return l.size }

// IsEmpty reports whether the list has no elements.
func (l *Doubly[T]) IsEmpty() bool { return l.size == 0 }

// Clear drops every node.
func (l *Doubly[T]) Clear() {
	l.head, l.tail = nil, nil
	l.size = 0
}

// Iterator returns a fresh forward cursor.
func (l *Doubly[T]) Iterator() Iterator[T] {
	return &doublyIterator[T]{node: l.head}
}

// All returns the elements as a range-over-func sequence.
func (l *Doubly[T]) All() iter.Seq[T] { return seq(l.Iterator) }

// Backward returns the elements from tail to head.
func (l *Doubly[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.item) {
				return
			}
		}
	}
}

// Slice returns the elements in order.
func (l *Doubly[T]) Slice() []T { return collect(l.Iterator(), l.size) }

// Equal reports element-wise equality with other.
func (l *Doubly[T]) Equal(other List[T]) bool { return equal[T](l, other) }

// Concat returns a new Doubly with l's elements followed by other's.
func (l *Doubly[T]) Concat(other List[T]) List[T] {
	out := l.clone()
	for _, item := range snapshot(other) {
		out.Append(item)
	}

	return out
}

// Copy returns an independent Doubly with the same elements.
func (l *Doubly[T]) Copy() List[T] { return l.clone() }

func (l *Doubly[T]) clone() *Doubly[T] {
	out := NewDoubly[T]()
	for n := l.head; n != nil; n = n.next {
		out.Append(n.item)
	}

	return out
}

// String renders the list as "[a, b, c]".
func (l *Doubly[T]) String() string { return render(l.Iterator()) }

// doublyIterator walks a Doubly chain once, head to tail.
type doublyIterator[T any] struct {
	node  *doublyNode[T]
	value T
}

func (it *doublyIterator[T]) Next() bool {
	if it.node == nil {
		return false
	}
	it.value = it.node.item
	it.node = it.node.next

	return true
}

func (it *doublyIterator[T]) Value() T { return it.value }
