// SPDX-License-Identifier: MIT
//
// Package heap implements an array-backed binary heap ordered by a
// caller-supplied comparator.
//
// Layout:
//
//	vertices: [ _ | v1 | v2 | v3 | v4 | v5 | … ]
//	            0    1    2    3    4    5
//
// Slot 0 is never used, so for any live slot i the parent is i/2 and the
// children are 2i and 2i+1. The comparator above(a, b) reports whether a may
// sit above b; the heap invariant is above(vertices[i/2], vertices[i]) for
// every live i > 1. New builds a max-heap (a >= b), NewMin a min-heap, and
// NewFunc accepts any Comparator.
//
// Storage:
//
// The backing slice doubles when full (capacity 1 jumps straight to 3) and
// halves once occupancy drops to a quarter of capacity, never below 1. Push
// and Pop are therefore O(log n) amortized.
//
// The shrink check is n+1 <= cap/4 (slot 0 included), not cap/2: after a
// halving the heap is at most half full, so the next Push never has to grow.
//
// Contract points beyond push/pop:
//
//	Replace(x)   pop the root and push x with a single sift-down.
//	Heapify(xs)  bulk insert followed by one bottom-up rebuild, O(n).
//	Merge(h2)    union with another heap's elements; h2 is left untouched.
//
// A BinaryHeap is not safe for concurrent use.
package heap
