// SPDX-License-Identifier: MIT

package heap

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvstruct/internal/growth"
)

// policy reserves slot 0, grows 1 → 3 → 6 → 12 …, and halves at quarter occupancy.
var policy = growth.Policy{Reserve: 1, Floor: 1, ShrinkEnabled: true}

// BinaryHeap is a 1-indexed array heap.
type BinaryHeap[T comparable] struct {
	vertices []T // slot 0 unused; live slots are 1..n
	n        int
	above    Comparator[T]
	initial  int
}

// New returns an empty max-heap.
func New[T constraints.Ordered](opts ...Option) *BinaryHeap[T] {
	return newHeap(Max[T], opts)
}

// NewMin returns an empty min-heap.
func NewMin[T constraints.Ordered](opts ...Option) *BinaryHeap[T] {
	return newHeap(Min[T], opts)
}

// NewFunc returns an empty heap ordered by above.
// Returns ErrNilComparator if above is nil.
func NewFunc[T comparable](above Comparator[T], opts ...Option) (*BinaryHeap[T], error) {
	if above == nil {
		return nil, ErrNilComparator
	}

	return newHeap(above, opts), nil
}

// From returns a max-heap holding items, built bottom-up in O(len(items)).
func From[T constraints.Ordered](items []T, opts ...Option) *BinaryHeap[T] {
	h := New[T](opts...)
	h.Heapify(items...)

	return h
}

func newHeap[T comparable](above Comparator[T], opts []Option) *BinaryHeap[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}

	return &BinaryHeap[T]{
		vertices: make([]T, cfg.Capacity),
		above:    above,
		initial:  cfg.Capacity,
	}
}

// Size returns the number of live elements.
func (h *BinaryHeap[T]) Size() int { return h.n }

// IsEmpty reports whether the heap holds no elements.
func (h *BinaryHeap[T]) IsEmpty() bool { return h.n == 0 }

// Capacity returns the backing slice length, slot 0 included.
func (h *BinaryHeap[T]) Capacity() int { return len(h.vertices) }

// Push inserts item and sifts it toward the root. Complexity: O(log n) amortized.
func (h *BinaryHeap[T]) Push(item T) {
	h.reserve(1)
	h.n++
	h.vertices[h.n] = item
	h.siftUp(h.n)
}

// Pop removes and returns the root. Complexity: O(log n) amortized.
// Returns ErrEmptyHeap if the heap is empty.
func (h *BinaryHeap[T]) Pop() (T, error) {
	var zero T
	if h.n == 0 {
		return zero, ErrEmptyHeap
	}
	root := h.vertices[1]
	h.vertices[1] = h.vertices[h.n]
	h.vertices[h.n] = zero
	h.n--
	h.siftDown(1)

	if next, ok := policy.Shrink(h.n, len(h.vertices)); ok {
		h.vertices = growth.Resize(h.vertices, 0, h.n+1, next)
	}

	return root, nil
}

// Peek returns the root without removing it.
// Returns ErrEmptyHeap if the heap is empty.
func (h *BinaryHeap[T]) Peek() (T, error) {
	if h.n == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.vertices[1], nil
}

// Replace returns the root and puts item in its place with one sift-down.
// It is cheaper than Pop followed by Push and never resizes.
// Returns ErrEmptyHeap if the heap is empty.
func (h *BinaryHeap[T]) Replace(item T) (T, error) {
	if h.n == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	root := h.vertices[1]
	h.vertices[1] = item
	h.siftDown(1)

	return root, nil
}

// Heapify adds items and restores the invariant bottom-up.
// Complexity: O(n + len(items)).
func (h *BinaryHeap[T]) Heapify(items ...T) {
	if len(items) == 0 {
		return
	}
	h.reserve(len(items))
	copy(h.vertices[h.n+1:], items)
	h.n += len(items)
	for i := h.n / 2; i >= 1; i-- {
		h.siftDown(i)
	}
}

// Merge adds every element of other. other is not modified.
// Complexity: O(n + m).
func (h *BinaryHeap[T]) Merge(other *BinaryHeap[T]) {
	if other == nil || other.n == 0 {
		return
	}
	h.Heapify(other.vertices[1 : other.n+1]...)
}

// Contains reports whether an element equal to item is live. Complexity: O(n).
func (h *BinaryHeap[T]) Contains(item T) bool {
	for i := 1; i <= h.n; i++ {
		if h.vertices[i] == item {
			return true
		}
	}

	return false
}

// Clear drops every element and returns to the initial capacity.
func (h *BinaryHeap[T]) Clear() {
	h.vertices = make([]T, h.initial)
	h.n = 0
}

// Copy returns an independent heap with the same elements, comparator and capacity.
func (h *BinaryHeap[T]) Copy() *BinaryHeap[T] {
	return &BinaryHeap[T]{
		vertices: growth.Resize(h.vertices, 0, h.n+1, len(h.vertices)),
		n:        h.n,
		above:    h.above,
		initial:  h.initial,
	}
}

// Slice returns the live elements in level order (root first).
func (h *BinaryHeap[T]) Slice() []T {
	out := make([]T, h.n)
	copy(out, h.vertices[1:h.n+1])

	return out
}

// String renders the live elements in level order as "[a, b, c]".
func (h *BinaryHeap[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 1; i <= h.n; i++ {
		if i > 1 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, h.vertices[i])
	}
	sb.WriteByte(']')

	return sb.String()
}

// reserve makes room for k more elements.
func (h *BinaryHeap[T]) reserve(k int) {
	if next, ok := policy.Grow(h.n+k-1, len(h.vertices)); ok {
		h.vertices = growth.Resize(h.vertices, 0, h.n+1, next)
	}
}

// siftUp moves slot i toward the root until its parent may sit above it.
func (h *BinaryHeap[T]) siftUp(i int) {
	v := h.vertices
	for i > 1 {
		parent := i / 2
		if h.above(v[parent], v[i]) {
			return
		}
		v[parent], v[i] = v[i], v[parent]
		i = parent
	}
}

// siftDown moves slot i toward the leaves, swapping with the child that
// should be above the other, until no child violates the invariant.
func (h *BinaryHeap[T]) siftDown(i int) {
	v := h.vertices
	for {
		child := 2 * i
		if child > h.n {
			return
		}
		if right := child + 1; right <= h.n && h.above(v[right], v[child]) {
			child = right
		}
		if h.above(v[i], v[child]) {
			return
		}
		v[i], v[child] = v[child], v[i]
		i = child
	}
}
