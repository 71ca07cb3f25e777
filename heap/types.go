// SPDX-License-Identifier: MIT

package heap

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by BinaryHeap.
var (
	// ErrEmptyHeap indicates Pop, Peek or Replace on a heap with no elements.
	ErrEmptyHeap = errors.New("heap: heap is empty")

	// ErrNilComparator indicates NewFunc was called without a comparator.
	ErrNilComparator = errors.New("heap: comparator is nil")
)

// Comparator reports whether a may be an ancestor of b.
// It must describe a total preorder (reflexive and transitive); a strict
// comparator such as a > b also works because ties never need a swap.
type Comparator[T any] func(a, b T) bool

// Max orders a max-heap: larger values sit closer to the root.
func Max[T constraints.Ordered](a, b T) bool { return a >= b }

// Min orders a min-heap: smaller values sit closer to the root.
func Min[T constraints.Ordered](a, b T) bool { return a <= b }

// DefaultCapacity is the initial (and post-Clear) length of the backing slice.
const DefaultCapacity = 1

// Options configures a BinaryHeap.
//
// Capacity is the initial backing slice length, slot 0 included. Values below
// 1 are raised to 1. Clear returns the heap to this capacity.
type Options struct {
	Capacity int
}

// Option represents a functional option for the heap constructors.
type Option func(*Options)

// WithCapacity sets the initial backing slice length.
func WithCapacity(capacity int) Option {
	return func(o *Options) {
		o.Capacity = capacity
	}
}

// DefaultOptions returns the options every constructor starts from.
func DefaultOptions() Options {
	return Options{Capacity: DefaultCapacity}
}
