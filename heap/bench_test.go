// SPDX-License-Identifier: MIT

package heap_test

import (
	"testing"

	"github.com/katalvlaran/lvstruct/heap"
)

const benchSize = 1024

func BenchmarkBinaryHeap_PushPop(b *testing.B) {
	h := heap.New[int]()
	for i := 0; i < benchSize; i++ {
		h.Push(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Push(i % benchSize)
		if _, err := h.Pop(); err != nil {
			b.Fatalf("Pop failed: %v", err)
		}
	}
}

func BenchmarkBinaryHeap_Heapify(b *testing.B) {
	items := make([]int, benchSize)
	for i := range items {
		items[i] = (i * 7919) % benchSize
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := heap.New[int](heap.WithCapacity(benchSize + 1))
		h.Heapify(items...)
	}
}
