// SPDX-License-Identifier: MIT

package list

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Sentinel errors returned by every List implementation.
var (
	// ErrOutOfRange indicates an index outside the bounds allowed for the operation.
	ErrOutOfRange = errors.New("list: index out of range")

	// ErrItemNotFound indicates a value lookup found no equal element.
	ErrItemNotFound = errors.New("list: item not found")
)

// List is an ordered sequence with signed (Python-style) positional access.
type List[T comparable] interface {
	// Insert places item so that it is readable at index afterwards,
	// shifting the items at >= index up by one.
	Insert(item T, index int) error

	// Remove deletes the first occurrence of item in forward order.
	Remove(item T) error

	// Pop removes and returns the item at index.
	Pop(index int) (T, error)

	// PopLast removes and returns the last item.
	PopLast() (T, error)

	// Read returns the item at index.
	Read(index int) (T, error)

	// Write replaces the item at index.
	Write(item T, index int) error

	// Index returns the forward position of the first occurrence of item.
	Index(item T) (int, error)

	// Append inserts item at position Size().
	Append(item T)

	// Contains reports whether Index(item) would succeed.
	Contains(item T) bool

	// Size returns the number of live elements.
	Size() int

	// IsEmpty reports Size() == 0.
	IsEmpty() bool

	// Clear removes every element.
	Clear()

	// Iterator returns a fresh forward cursor positioned before the first element.
	Iterator() Iterator[T]

	// All returns a range-over-func sequence; each range starts a new Iterator.
	All() iter.Seq[T]

	// Slice returns the elements in order as a newly allocated slice.
	Slice() []T

	// Equal reports whether other holds equal elements in the same order.
	Equal(other List[T]) bool

	// Concat returns a new list of the receiver's kind holding the receiver's
	// elements followed by other's.
	Concat(other List[T]) List[T]

	// Copy returns an independent list of the receiver's kind with equal elements.
	Copy() List[T]

	// String renders the list as "[a, b, c]".
	String() string
}

// Iterator is a single-pass forward cursor.
//
//	it := l.Iterator()
//	for it.Next() {
//		use(it.Value())
//	}
//
// Once Next returns false the iterator stays exhausted.
type Iterator[T any] interface {
	// Next advances to the following element and reports whether one exists.
	Next() bool

	// Value returns the element under the cursor. Only valid after Next returned true.
	Value() T
}

// DefaultArrayCapacity is the buffer size of NewArray when no capacity is given.
const DefaultArrayCapacity = 8

// ArrayOptions configures an Array list.
//
// Capacity is the initial buffer length. It is rounded up to a power of two;
// values below 1 become 1. One slot is always kept free, so a buffer of
// capacity c holds at most c-1 elements before it doubles.
type ArrayOptions struct {
	Capacity int
}

// ArrayOption represents a functional option for NewArray.
type ArrayOption func(*ArrayOptions)

// WithCapacity sets the initial buffer capacity.
func WithCapacity(capacity int) ArrayOption {
	return func(o *ArrayOptions) {
		o.Capacity = capacity
	}
}

// DefaultArrayOptions returns the options NewArray starts from.
func DefaultArrayOptions() ArrayOptions {
	return ArrayOptions{Capacity: DefaultArrayCapacity}
}
