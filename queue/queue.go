// SPDX-License-Identifier: MIT

// Package queue provides a FIFO queue on top of list.Doubly.
//
// Enqueue appends at the tail and Dequeue pops the head; both are O(1).
// A Queue is not safe for concurrent use.
package queue

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvstruct/list"
)

// ErrEmptyQueue indicates Dequeue, First or Last on a queue with no elements.
var ErrEmptyQueue = errors.New("queue: queue is empty")

// Queue is a first-in first-out container.
type Queue[T comparable] struct {
	items *list.Doubly[T]
}

// New returns an empty queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{items: list.NewDoubly[T]()}
}

// NewOf returns a queue holding items with items[0] at the front.
func NewOf[T comparable](items ...T) *Queue[T] {
	return &Queue[T]{items: list.NewDoublyOf(items...)}
}

// Enqueue adds item at the back.
func (q *Queue[T]) Enqueue(item T) { q.items.Append(item) }

// Dequeue removes and returns the front item.
// Returns ErrEmptyQueue if the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.items.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.items.Pop(0)
}

// First returns the front item without removing it.
func (q *Queue[T]) First() (T, error) { return q.peek(0) }

// Last returns the back item without removing it.
func (q *Queue[T]) Last() (T, error) { return q.peek(-1) }

func (q *Queue[T]) peek(index int) (T, error) {
	if q.items.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.items.Read(index)
}

// Contains reports whether an element equal to item is queued.
func (q *Queue[T]) Contains(item T) bool { return q.items.Contains(item) }

// Clear removes every element.
func (q *Queue[T]) Clear() { q.items.Clear() }

// Size returns the number of elements.
func (q *Queue[T]) Size() int { return q.items.Size() }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.items.IsEmpty() }

// Copy returns an independent queue with the same elements in the same order.
func (q *Queue[T]) Copy() *Queue[T] {
	return NewOf(q.items.Slice()...)
}

// Equal reports whether other holds equal elements in the same order.
func (q *Queue[T]) Equal(other *Queue[T]) bool {
	if q == nil || other == nil {
		return q == other
	}

	return q.items.Equal(other.items)
}

// All yields the elements from front to back.
func (q *Queue[T]) All() iter.Seq[T] { return q.items.All() }

// String renders the queue front first as "[front, …, back]".
func (q *Queue[T]) String() string { return q.items.String() }
