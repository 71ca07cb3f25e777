// SPDX-License-Identifier: MIT

package heap

// Holds reports whether every live non-root slot satisfies
// above(vertices[i/2], vertices[i]) and capacity covers n+1 slots.
func Holds[T comparable](h *BinaryHeap[T]) bool {
	if len(h.vertices) < h.n+1 {
		return false
	}
	for i := 2; i <= h.n; i++ {
		if !h.above(h.vertices[i/2], h.vertices[i]) {
			return false
		}
	}

	return true
}
