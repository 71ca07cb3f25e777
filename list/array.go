// SPDX-License-Identifier: MIT
//
// File: array.go
// Role: Circular-buffer List.
//
// Layout:
//
//	buf:  [ . . e2 e3 . . e0 e1 ]    len(buf) = capacity, a power of two
//	                    ▲ head
//
// Element i lives at buf[(head+i) & mask]. One slot always stays free
// (size < capacity); Grow doubles the buffer when the next insert would fill
// it, copying the live ring to offset 0. The buffer never shrinks.
//
// Insert and Pop shift whichever side of i holds fewer elements: the front
// part moves toward (or away from) head, the back part toward the tail.

package list

import (
	"iter"

	"github.com/katalvlaran/lvstruct/internal/growth"
)

// arrayPolicy keeps capacities a power of two with one reserved slot, grow-only.
var arrayPolicy = growth.Policy{Reserve: 1, PowerOfTwo: true}

// Array is a List stored in a power-of-two ring buffer.
type Array[T comparable] struct {
	buf  []T
	head int
	size int
}

var _ List[int] = (*Array[int])(nil)

// NewArray returns an empty ring buffer list.
// Capacity defaults to DefaultArrayCapacity; see WithCapacity.
func NewArray[T comparable](opts ...ArrayOption) *Array[T] {
	cfg := DefaultArrayOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Array[T]{buf: make([]T, growth.CeilPow2(cfg.Capacity))}
}

// NewArrayOf returns a ring buffer list holding items in order.
func NewArrayOf[T comparable](items ...T) *Array[T] {
	l := NewArray[T](WithCapacity(len(items) + 1))
	for _, item := range items {
		l.Append(item)
	}

	return l
}

func (l *Array[T]) mask() int { return len(l.buf) - 1 }

// slot maps a logical position to a buffer offset.
func (l *Array[T]) slot(i int) int { return (l.head + i) & l.mask() }

// tail is the offset one past the last element.
func (l *Array[T]) tail() int { return l.slot(l.size) }

// reserve grows the buffer when one more element would leave no free slot.
func (l *Array[T]) reserve() {
	next, ok := arrayPolicy.Grow(l.size, len(l.buf))
	if !ok {
		return
	}
	l.buf = growth.Resize(l.buf, l.head, l.size, next)
	l.head = 0
}

// Capacity returns the current buffer length.
func (l *Array[T]) Capacity() int { return len(l.buf) }

// Insert places item at index. Complexity: O(min(i, n-i)) plus amortized growth.
func (l *Array[T]) Insert(item T, index int) error {
	i, err := insertPosition(index, l.size)
	if err != nil {
		return err
	}
	l.reserve()
	if i < l.size/2 {
		// Open a slot before head and slide the first i elements into it.
		l.head = (l.head - 1) & l.mask()
		for k := 0; k < i; k++ {
			l.buf[l.slot(k)] = l.buf[l.slot(k+1)]
		}
	} else {
		for k := l.size; k > i; k-- {
			l.buf[l.slot(k)] = l.buf[l.slot(k-1)]
		}
	}
	l.buf[l.slot(i)] = item
	l.size++

	return nil
}

// Pop removes and returns the item at index. Complexity: O(min(i, n-i)).
func (l *Array[T]) Pop(index int) (T, error) {
	var zero T
	i, err := position(index, l.size)
	if err != nil {
		return zero, err
	}
	item := l.buf[l.slot(i)]
	if i < l.size/2 {
		for k := i; k > 0; k-- {
			l.buf[l.slot(k)] = l.buf[l.slot(k-1)]
		}
		l.buf[l.head] = zero
		l.head = (l.head + 1) & l.mask()
	} else {
		for k := i; k < l.size-1; k++ {
			l.buf[l.slot(k)] = l.buf[l.slot(k+1)]
		}
		l.buf[l.slot(l.size-1)] = zero
	}
	l.size--

	return item, nil
}

// PopLast is Pop(-1). Complexity: O(1).
func (l *Array[T]) PopLast() (T, error) { return l.Pop(-1) }

// Remove deletes the first occurrence of item.
func (l *Array[T]) Remove(item T) error {
	i, err := l.Index(item)
	if err != nil {
		return err
	}
	_, err = l.Pop(i)

	return err
}

// Read returns the item at index. Complexity: O(1).
func (l *Array[T]) Read(index int) (T, error) {
	i, err := position(index, l.size)
	if err != nil {
		var zero T
		return zero, err
	}

	return l.buf[l.slot(i)], nil
}

// Write replaces the item at index. Complexity: O(1).
func (l *Array[T]) Write(item T, index int) error {
	i, err := position(index, l.size)
	if err != nil {
		return err
	}
	l.buf[l.slot(i)] = item

	return nil
}

// Index returns the position of the first occurrence of item.
func (l *Array[T]) Index(item T) (int, error) {
	for i := 0; i < l.size; i++ {
		if l.buf[l.slot(i)] == item {
			return i, nil
		}
	}

	return 0, notFound(item)
}

// Append stores item at the tail. Complexity: O(1) amortized.
func (l *Array[T]) Append(item T) {
	l.reserve()
	l.buf[l.tail()] = item
	l.size++
}

// Contains reports whether item is present.
func (l *Array[T]) Contains(item T) bool {
	_, err := l.Index(item)
	return err == nil
}

// Size returns the number of elements.
func (l *Array[T]) Size() int { return l.size }

// IsEmpty reports whether the list has no elements.
func (l *Array[T]) IsEmpty() bool { return l.size == 0 }

// Clear zeroes the buffer and keeps its capacity.
func (l *Array[T]) Clear() {
	clear(l.buf)
	l.head = 0
	l.size = 0
}

// Iterator returns a fresh forward cursor.
func (l *Array[T]) Iterator() Iterator[T] {
	return &arrayIterator[T]{list: l, next: 0}
}

// All returns the elements as a range-over-func sequence.
func (l *Array[T]) All() iter.Seq[T] { return seq(l.Iterator) }

// Slice returns the elements in order.
func (l *Array[T]) Slice() []T {
	return growth.Resize(l.buf, l.head, l.size, l.size)
}

// Equal reports element-wise equality with other.
func (l *Array[T]) Equal(other List[T]) bool { return equal[T](l, other) }

// Concat returns a new Array with l's elements followed by other's.
func (l *Array[T]) Concat(other List[T]) List[T] {
	out := l.clone()
	for _, item := range snapshot(other) {
		out.Append(item)
	}

	return out
}

// Copy returns an independent Array with the same elements and capacity.
func (l *Array[T]) Copy() List[T] { return l.clone() }

func (l *Array[T]) clone() *Array[T] {
	return &Array[T]{
		buf:  growth.Resize(l.buf, l.head, l.size, len(l.buf)),
		size: l.size,
	}
}

// String renders the list as "[a, b, c]".
func (l *Array[T]) String() string { return render(l.Iterator()) }

// arrayIterator reads positions 0..size-1 of its list in order.
type arrayIterator[T comparable] struct {
	list  *Array[T]
	next  int
	value T
}

func (it *arrayIterator[T]) Next() bool {
	if it.next >= it.list.size {
		return false
	}
	it.value = it.list.buf[it.list.slot(it.next)]
	it.next++

	return true
}

func (it *arrayIterator[T]) Value() T { return it.value }
