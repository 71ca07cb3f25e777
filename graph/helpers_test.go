// SPDX-License-Identifier: MIT

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstruct/graph"
)

// representation names one Graph constructor under test.
type representation struct {
	name string
	new  func() graph.Graph[string]
}

func representations() []representation {
	return []representation{
		{"AdjacencyList", func() graph.Graph[string] { return graph.NewAdjacencyList[string]() }},
		{"AdjacencyMatrix", func() graph.Graph[string] { return graph.NewAdjacencyMatrix[string]() }},
	}
}

// forEach runs fn once per representation as a named subtest.
func forEach(t *testing.T, fn func(t *testing.T, rep representation)) {
	t.Helper()
	for _, rep := range representations() {
		t.Run(rep.name, func(t *testing.T) {
			fn(t, rep)
		})
	}
}

// fill adds the given vertices and edges to g, failing on any error.
func fill(t *testing.T, g graph.Graph[string], vertices []string, edges [][2]string) graph.Graph[string] {
	t.Helper()
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		require.NoError(t, g.Connect(e[0], e[1]))
	}

	return g
}

// build returns an AdjacencyList holding the given vertices and edges.
func build(t *testing.T, vertices []string, edges [][2]string) *graph.AdjacencyList[string] {
	t.Helper()
	g := graph.NewAdjacencyList[string]()
	fill(t, g, vertices, edges)

	return g
}

// buildMatrix returns an AdjacencyMatrix holding the given vertices and edges.
func buildMatrix(t *testing.T, vertices []string, edges [][2]string) *graph.AdjacencyMatrix[string] {
	t.Helper()
	m := graph.NewAdjacencyMatrix[string]()
	fill(t, m, vertices, edges)

	return m
}
