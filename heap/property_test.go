// SPDX-License-Identifier: MIT

package heap_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/lvstruct/heap"
)

func TestBinaryHeap_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("pushes then pops yield a non-increasing sequence", prop.ForAll(
		func(items []int) bool {
			h := heap.New[int]()
			for _, v := range items {
				h.Push(v)
				if !heap.Holds(h) {
					return false
				}
			}
			got := make([]int, 0, len(items))
			for !h.IsEmpty() {
				v, err := h.Pop()
				if err != nil || !heap.Holds(h) {
					return false
				}
				got = append(got, v)
			}
			want := slices.Clone(items)
			slices.Sort(want)
			slices.Reverse(want)

			return slices.Equal(want, got) && h.Capacity() <= 3
		},
		gen.SliceOf(gen.IntRange(-50, 50)),
	))

	properties.Property("heapify matches repeated push", prop.ForAll(
		func(seed, items []int) bool {
			bulk := heap.NewMin[int]()
			bulk.Heapify(seed...)
			bulk.Heapify(items...)
			one := heap.NewMin[int]()
			for _, v := range append(slices.Clone(seed), items...) {
				one.Push(v)
			}
			if !heap.Holds(bulk) || bulk.Size() != one.Size() {
				return false
			}
			for !one.IsEmpty() {
				a, _ := bulk.Pop()
				b, _ := one.Pop()
				if a != b {
					return false
				}
			}

			return bulk.IsEmpty()
		},
		gen.SliceOf(gen.Int()),
		gen.SliceOf(gen.Int()),
	))

	properties.Property("replace equals pop then push on a non-empty heap", prop.ForAll(
		func(items []int, item int) bool {
			if len(items) == 0 {
				return true
			}
			a := heap.From(items)
			b := a.Copy()
			rootA, errA := a.Replace(item)
			rootB, errB := b.Pop()
			b.Push(item)
			if errA != nil || errB != nil || rootA != rootB || !heap.Holds(a) {
				return false
			}
			for !a.IsEmpty() {
				x, _ := a.Pop()
				y, _ := b.Pop()
				if x != y {
					return false
				}
			}

			return b.IsEmpty()
		},
		gen.SliceOf(gen.Int()),
		gen.Int(),
	))

	properties.TestingRun(t)
}
