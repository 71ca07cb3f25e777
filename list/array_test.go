// SPDX-License-Identifier: MIT

package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstruct/list"
)

// TestArray_GrowFromCapacityTwo appends four values into a capacity-2 buffer.
func TestArray_GrowFromCapacityTwo(t *testing.T) {
	l := list.NewArray[string](list.WithCapacity(2))
	assert.Equal(t, 2, l.Capacity())

	for _, s := range []string{"a", "b", "c", "d"} {
		l.Append(s)
	}
	assert.Greater(t, l.Capacity(), 2, "at least one grow")
	assert.Equal(t, []string{"a", "b", "c", "d"}, l.Slice())
	for i, want := range []string{"a", "b", "c", "d"} {
		got, err := l.Read(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

// TestArray_CapacityOption checks power-of-two rounding and the one-free-slot rule.
func TestArray_CapacityOption(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"Default", -1, list.DefaultArrayCapacity},
		{"Zero", 0, 1},
		{"One", 1, 1},
		{"Three", 3, 4},
		{"Eight", 8, 8},
		{"Nine", 9, 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var l *list.Array[int]
			if tc.in < 0 {
				l = list.NewArray[int]()
			} else {
				l = list.NewArray[int](list.WithCapacity(tc.in))
			}
			assert.Equal(t, tc.want, l.Capacity())

			// Filling to capacity-1 never grows; one more element doubles.
			for i := 0; i < tc.want-1; i++ {
				l.Append(i)
			}
			assert.Equal(t, tc.want, l.Capacity())
			l.Append(-1)
			assert.Equal(t, 2*tc.want, l.Capacity())
		})
	}
}

// TestArray_WrapAround forces head past the buffer end and checks order survives.
func TestArray_WrapAround(t *testing.T) {
	l := list.NewArray[int](list.WithCapacity(8))
	for i := 0; i < 6; i++ {
		l.Append(i)
	}
	// Drop the first four so head sits near the end, then append across the edge.
	for i := 0; i < 4; i++ {
		v, err := l.Pop(0)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	for i := 6; i < 11; i++ {
		l.Append(i)
	}
	assert.Equal(t, 8, l.Capacity(), "7 live elements fit without growing")
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9, 10}, l.Slice())

	// Front-side insert moves head backwards across offset 0.
	require.NoError(t, l.Insert(-1, 1))
	assert.Equal(t, 16, l.Capacity())
	assert.Equal(t, []int{4, -1, 5, 6, 7, 8, 9, 10}, l.Slice())

	// Back-side pop shifts the tail.
	v, err := l.Pop(-2)
	require.NoError(t, err)
	assert.Equal(t, 9, v)
	assert.Equal(t, []int{4, -1, 5, 6, 7, 8, 10}, l.Slice())
}

// TestArray_NeverShrinks verifies capacity is kept after draining and clearing.
func TestArray_NeverShrinks(t *testing.T) {
	l := list.NewArray[int](list.WithCapacity(1))
	for i := 0; i < 100; i++ {
		l.Append(i)
	}
	grown := l.Capacity()
	assert.Equal(t, 128, grown)

	for !l.IsEmpty() {
		_, err := l.PopLast()
		require.NoError(t, err)
	}
	assert.Equal(t, grown, l.Capacity())

	l.Append(1)
	l.Clear()
	assert.Equal(t, grown, l.Capacity())
	assert.True(t, l.IsEmpty())
}

// TestArray_CopyKeepsCapacity checks that a copy gets its own buffer.
func TestArray_CopyKeepsCapacity(t *testing.T) {
	l := list.NewArrayOf(1, 2, 3)
	cp := l.Copy().(*list.Array[int])
	assert.Equal(t, l.Capacity(), cp.Capacity())

	require.NoError(t, cp.Write(9, 0))
	v, err := l.Read(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

// TestArray_CopyAfterWrap copies and concatenates a ring whose head is not at offset 0.
func TestArray_CopyAfterWrap(t *testing.T) {
	l := list.NewArray[int](list.WithCapacity(8))
	for i := 0; i < 6; i++ {
		l.Append(i)
	}
	for i := 0; i < 5; i++ {
		_, err := l.Pop(0)
		require.NoError(t, err)
	}
	for i := 6; i < 10; i++ {
		l.Append(i) // wraps across offset 0
	}
	require.Equal(t, []int{5, 6, 7, 8, 9}, l.Slice())

	cp := l.Copy()
	assert.Equal(t, 5, cp.Size())
	assert.Equal(t, l.Slice(), cp.Slice())
	assert.True(t, cp.Equal(l))

	v, err := cp.Read(-1)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	joined := l.Concat(list.NewArrayOf(10, 11))
	assert.Equal(t, 7, joined.Size())
	assert.Equal(t, []int{5, 6, 7, 8, 9, 10, 11}, joined.Slice())
	assert.Equal(t, 5, l.Size())

	cp.Append(42)
	assert.Equal(t, 5, l.Size())
	assert.False(t, l.Contains(42))
}
