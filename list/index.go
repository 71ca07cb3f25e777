// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: Index normalization and the variant-independent helpers
// (equality, rendering, iteration adapters) shared by all implementations.

package list

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
)

// position maps a signed index onto [0, size) for Read/Write/Pop.
func position(index, size int) (int, error) {
	i := index
	if i < 0 {
		i += size
	}
	if i < 0 || i >= size {
		return 0, errors.Wrapf(ErrOutOfRange, "index %d, size %d", index, size)
	}

	return i, nil
}

// insertPosition maps a signed index onto [0, size] for Insert.
func insertPosition(index, size int) (int, error) {
	i := index
	if i < 0 {
		i += size
	}
	if i < 0 || i > size {
		return 0, errors.Wrapf(ErrOutOfRange, "insert index %d, size %d", index, size)
	}

	return i, nil
}

// notFound wraps ErrItemNotFound with the missing item.
func notFound[T any](item T) error {
	return errors.Wrapf(ErrItemNotFound, "%v", item)
}

// isNil reports whether l is a nil interface or wraps a nil pointer,
// e.g. (*Doubly[int])(nil).
func isNil[T comparable](l List[T]) bool {
	if l == nil {
		return true
	}
	v := reflect.ValueOf(l)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// equal compares two lists element-wise in iteration order.
// A nil or typed-nil b is never equal.
func equal[T comparable](a, b List[T]) bool {
	if isNil(b) || a.Size() != b.Size() {
		return false
	}
	ia, ib := a.Iterator(), b.Iterator()
	for ia.Next() && ib.Next() {
		if ia.Value() != ib.Value() {
			return false
		}
	}

	return true
}

// render formats the elements the way fmt prints a slice, with ", " separators.
func render[T any](it Iterator[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for first := true; it.Next(); first = false {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, it.Value())
	}
	sb.WriteByte(']')

	return sb.String()
}

// seq adapts an iterator factory to iter.Seq; every range gets its own cursor.
func seq[T any](newIterator func() Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := newIterator()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// collect drains an iterator into a slice of the given capacity hint.
func collect[T any](it Iterator[T], hint int) []T {
	out := make([]T, 0, hint)
	for it.Next() {
		out = append(out, it.Value())
	}

	return out
}

// snapshot returns other's elements before any mutation of the receiver,
// so Concat(self) and Extend-like loops never observe their own appends.
func snapshot[T comparable](other List[T]) []T {
	if isNil(other) {
		return nil
	}

	return other.Slice()
}
