// SPDX-License-Identifier: MIT

// Package stack provides a LIFO stack on top of list.Doubly.
//
// The top of the stack is position 0 of the backing list, so Push, Pop and
// Peek are O(1). A Stack is not safe for concurrent use.
package stack

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvstruct/list"
)

// ErrEmptyStack indicates Pop, Peek or Write on a stack with no elements.
var ErrEmptyStack = errors.New("stack: stack is empty")

// Stack is a last-in first-out container.
type Stack[T comparable] struct {
	items *list.Doubly[T]
}

// New returns an empty stack.
func New[T comparable]() *Stack[T] {
	return &Stack[T]{items: list.NewDoubly[T]()}
}

// NewOf returns a stack holding items pushed in order; the last item is on top.
func NewOf[T comparable](items ...T) *Stack[T] {
	s := New[T]()
	for _, item := range items {
		s.Push(item)
	}

	return s
}

// Push puts item on top.
func (s *Stack[T]) Push(item T) {
	// Insert at 0 never fails.
	_ = s.items.Insert(item, 0)
}

// Pop removes and returns the top item.
// Returns ErrEmptyStack if the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	if s.items.IsEmpty() {
		var zero T
		return zero, ErrEmptyStack
	}

	return s.items.Pop(0)
}

// Peek returns the top item without removing it.
// Returns ErrEmptyStack if the stack is empty.
func (s *Stack[T]) Peek() (T, error) {
	if s.items.IsEmpty() {
		var zero T
		return zero, ErrEmptyStack
	}

	return s.items.Read(0)
}

// Write replaces the top item.
// Returns ErrEmptyStack if the stack is empty.
func (s *Stack[T]) Write(item T) error {
	if s.items.IsEmpty() {
		return ErrEmptyStack
	}

	return s.items.Write(item, 0)
}

// Contains reports whether an element equal to item is on the stack.
func (s *Stack[T]) Contains(item T) bool { return s.items.Contains(item) }

// Clear removes every element.
func (s *Stack[T]) Clear() { s.items.Clear() }

// Size returns the number of elements.
func (s *Stack[T]) Size() int { return s.items.Size() }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return s.items.IsEmpty() }

// Copy returns an independent stack with the same elements in the same order.
func (s *Stack[T]) Copy() *Stack[T] {
	return &Stack[T]{items: list.NewDoublyOf(s.items.Slice()...)}
}

// Equal reports whether other holds equal elements in the same order.
func (s *Stack[T]) Equal(other *Stack[T]) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.items.Equal(other.items)
}

// All yields the elements from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] { return s.items.All() }

// String renders the stack top first as "[top, …, bottom]".
func (s *Stack[T]) String() string { return s.items.String() }
