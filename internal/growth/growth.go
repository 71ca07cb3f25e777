// SPDX-License-Identifier: MIT
//
// Package growth holds the amortized capacity policy shared by the
// array-backed containers (list.Array and heap.BinaryHeap).
//
// Both containers keep one slot of their backing slice permanently unused:
// the ring buffer needs it to tell "empty" from "full", the heap keeps index 0
// free so that parent = i/2 and children = 2i, 2i+1. A Policy captures that
// reserve together with the growth and shrink rules, and Resize performs the
// copy into a fresh zero-based buffer.
package growth

// Policy describes how a backing slice grows and shrinks.
type Policy struct {
	// Reserve is the number of slots that never hold a live element.
	Reserve int

	// Floor is the smallest capacity Shrink may return. Values below 1 are treated as 1.
	Floor int

	// PowerOfTwo keeps every capacity a power of two (ring buffers index with a mask).
	PowerOfTwo bool

	// ShrinkEnabled allows halving once occupancy drops to a quarter of capacity.
	ShrinkEnabled bool
}

// Grow reports the capacity needed to store one more element on top of size
// live elements. ok is false when the current capacity already suffices.
//
// Capacities double. A non power-of-two policy starting from capacity 1 jumps
// to 3, which gives a 1-indexed heap room for two elements right away.
//
// Complexity: O(1).
func (p Policy) Grow(size, capacity int) (next int, ok bool) {
	if size+1+p.Reserve <= capacity {
		return capacity, false
	}
	switch {
	case capacity < 1:
		next = 1
	case capacity == 1 && !p.PowerOfTwo:
		next = 2*capacity + 1
	default:
		next = 2 * capacity
	}
	// A single doubling always suffices for one element, except from a degenerate start.
	for size+1+p.Reserve > next {
		next *= 2
	}

	return next, true
}

// Shrink reports the halved capacity when size live elements (plus the
// reserve) occupy at most a quarter of capacity. ok is false when shrinking
// is disabled, not warranted, or would go below Floor.
//
// Waiting for a quarter instead of a half keeps a push right after a pop from
// resizing twice.
//
// Complexity: O(1).
func (p Policy) Shrink(size, capacity int) (next int, ok bool) {
	if !p.ShrinkEnabled {
		return capacity, false
	}
	floor := p.Floor
	if floor < 1 {
		floor = 1
	}
	next = capacity / 2
	if next < floor || size+p.Reserve > capacity/4 {
		return capacity, false
	}

	return next, true
}

// Resize copies n elements of the ring src, starting at offset head and
// wrapping modulo len(src), into offset 0 of a new slice of length capacity.
// Slots past n are left at their zero value.
//
// Panics if capacity < n; callers derive capacity from a Policy.
//
// Complexity: O(capacity).
func Resize[T any](src []T, head, n, capacity int) []T {
	dst := make([]T, capacity)
	if n == 0 {
		return dst
	}
	// Two contiguous runs: [head, end) then the wrapped prefix.
	first := copy(dst[:n], src[head:])
	if first < n {
		copy(dst[first:n], src[:n-first])
	}

	return dst
}

// CeilPow2 returns the smallest power of two >= n (1 for n <= 1).
func CeilPow2(n int) int {
	c := 1
	for c < n {
		c <<= 1
	}

	return c
}
