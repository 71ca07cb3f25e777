// SPDX-License-Identifier: MIT

// Package list_test holds the shared contract suite for every List implementation.
//
// Every scenario runs once per constructor in implementations(), so a
// behavioral difference between two backings shows up as a named subtest.

package list_test

import (
	"testing"

	"github.com/katalvlaran/lvstruct/list"
)

// implementation names one List constructor under test.
type implementation struct {
	name string
	new  func(items ...int) list.List[int]
}

// implementations returns all five backings. The Array starts at capacity 2
// so that even small scenarios cross at least one grow.
func implementations() []implementation {
	return []implementation{
		{"Singly", func(items ...int) list.List[int] { return list.NewSinglyOf(items...) }},
		{"Doubly", func(items ...int) list.List[int] { return list.NewDoublyOf(items...) }},
		{"CircularSingly", func(items ...int) list.List[int] { return list.NewCircularSinglyOf(items...) }},
		{"CircularDoubly", func(items ...int) list.List[int] { return list.NewCircularDoublyOf(items...) }},
		{"Array", func(items ...int) list.List[int] {
			l := list.NewArray[int](list.WithCapacity(2))
			for _, item := range items {
				l.Append(item)
			}
			return l
		}},
	}
}

// stringImplementations mirrors implementations for string payloads.
func stringImplementations() map[string]func() list.List[string] {
	return map[string]func() list.List[string]{
		"Singly":         func() list.List[string] { return list.NewSingly[string]() },
		"Doubly":         func() list.List[string] { return list.NewDoubly[string]() },
		"CircularSingly": func() list.List[string] { return list.NewCircularSingly[string]() },
		"CircularDoubly": func() list.List[string] { return list.NewCircularDoubly[string]() },
		"Array":          func() list.List[string] { return list.NewArray[string](list.WithCapacity(1)) },
	}
}

// forEach runs fn as a subtest for every implementation.
func forEach(t *testing.T, fn func(t *testing.T, impl implementation)) {
	t.Helper()
	for _, impl := range implementations() {
		impl := impl
		t.Run(impl.name, func(t *testing.T) {
			fn(t, impl)
		})
	}
}
