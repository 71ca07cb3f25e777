// SPDX-License-Identifier: MIT

package graph

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvstruct/list"
)

// AdjacencyMatrix is a directed graph stored as a square boolean matrix.
// Row i and column i belong to the vertex at position i of the catalog;
// data[i][j] is true when the edge vertex(i) → vertex(j) exists.
//
// Removing a vertex shifts every later row and column up by one, so
// positions always match the catalog.
type AdjacencyMatrix[V comparable] struct {
	vertices *list.Doubly[V]
	data     [][]bool
	edges    int
}

var _ Graph[int] = (*AdjacencyMatrix[int])(nil)

// NewAdjacencyMatrix returns an empty graph.
func NewAdjacencyMatrix[V comparable]() *AdjacencyMatrix[V] {
	return &AdjacencyMatrix[V]{vertices: list.NewDoubly[V]()}
}

// NewAdjacencyMatrixFrom returns an adjacency-matrix copy of src, keeping its
// vertex order.
func NewAdjacencyMatrixFrom[V comparable](src Graph[V]) *AdjacencyMatrix[V] {
	m := NewAdjacencyMatrix[V]()
	populate[V](m, src)

	return m
}

// index returns the catalog position of v or ErrVertexNotFound. Complexity: O(V).
func (m *AdjacencyMatrix[V]) index(v V) (int, error) {
	i, err := m.vertices.Index(v)
	if err != nil {
		return 0, errors.Wrapf(ErrVertexNotFound, "vertex %v", v)
	}

	return i, nil
}

// cell returns the matrix positions of an edge's endpoints.
func (m *AdjacencyMatrix[V]) cell(from, to V) (int, int, error) {
	i, err := m.index(from)
	if err != nil {
		return 0, 0, err
	}
	j, err := m.index(to)
	if err != nil {
		return 0, 0, err
	}

	return i, j, nil
}

// AddVertex appends v as a new last row and column.
// Returns ErrVertexExists if v is already in the graph. Complexity: O(V).
func (m *AdjacencyMatrix[V]) AddVertex(v V) error {
	if m.vertices.Contains(v) {
		return errors.Wrapf(ErrVertexExists, "vertex %v", v)
	}
	m.vertices.Append(v)
	for i := range m.data {
		m.data[i] = append(m.data[i], false)
	}
	m.data = append(m.data, make([]bool, len(m.data)+1))

	return nil
}

// RemoveVertex deletes v with its row and column, shifting later positions.
// Returns ErrVertexNotFound if v is not in the graph. Complexity: O(V²).
func (m *AdjacencyMatrix[V]) RemoveVertex(v V) error {
	idx, err := m.index(v)
	if err != nil {
		return err
	}
	if _, err := m.vertices.Pop(idx); err != nil {
		return err
	}
	for i := range m.data {
		if m.data[idx][i] {
			m.edges--
		}
		if i != idx && m.data[i][idx] {
			m.edges--
		}
	}
	m.data = slices.Delete(m.data, idx, idx+1)
	for i := range m.data {
		m.data[i] = slices.Delete(m.data[i], idx, idx+1)
	}

	return nil
}

// Connect adds the edge from → to.
// Returns ErrVertexNotFound if either endpoint is missing and ErrEdgeExists
// if the edge is already present.
func (m *AdjacencyMatrix[V]) Connect(from, to V) error {
	i, j, err := m.cell(from, to)
	if err != nil {
		return err
	}
	if m.data[i][j] {
		return errors.Wrapf(ErrEdgeExists, "edge %v -> %v", from, to)
	}
	m.data[i][j] = true
	m.edges++

	return nil
}

// Disconnect removes the edge from → to.
// Returns ErrVertexNotFound if either endpoint is missing and ErrEdgeNotFound
// if there is no such edge.
func (m *AdjacencyMatrix[V]) Disconnect(from, to V) error {
	i, j, err := m.cell(from, to)
	if err != nil {
		return err
	}
	if !m.data[i][j] {
		return errors.Wrapf(ErrEdgeNotFound, "edge %v -> %v", from, to)
	}
	m.data[i][j] = false
	m.edges--

	return nil
}

// Adjacent reports whether the edge from → to exists.
// Returns ErrVertexNotFound if either endpoint is missing.
func (m *AdjacencyMatrix[V]) Adjacent(from, to V) (bool, error) {
	i, j, err := m.cell(from, to)
	if err != nil {
		return false, err
	}

	return m.data[i][j], nil
}

// Neighbors returns the targets of v's outgoing edges in catalog order.
// Returns ErrVertexNotFound if v is not in the graph.
func (m *AdjacencyMatrix[V]) Neighbors(v V) ([]V, error) {
	idx, err := m.index(v)
	if err != nil {
		return nil, err
	}
	out := make([]V, 0)
	j := 0
	for u := range m.vertices.All() {
		if m.data[idx][j] {
			out = append(out, u)
		}
		j++
	}

	return out, nil
}

// Vertices returns every vertex in insertion order.
func (m *AdjacencyMatrix[V]) Vertices() []V { return m.vertices.Slice() }

// HasVertex reports whether v is in the graph.
func (m *AdjacencyMatrix[V]) HasVertex(v V) bool { return m.vertices.Contains(v) }

// NumVertices returns the number of vertices.
func (m *AdjacencyMatrix[V]) NumVertices() int { return m.vertices.Size() }

// NumEdges returns the number of directed edges.
func (m *AdjacencyMatrix[V]) NumEdges() int { return m.edges }

// IsEmpty reports whether the graph has no vertices.
func (m *AdjacencyMatrix[V]) IsEmpty() bool { return m.vertices.IsEmpty() }

// Equal reports whether other has the same vertex set and the same edges.
// Insertion order and representation are ignored.
func (m *AdjacencyMatrix[V]) Equal(other Graph[V]) bool { return sameGraph[V](m, other) }

// Clone returns an independent matrix with the same vertices, edges and order.
func (m *AdjacencyMatrix[V]) Clone() *AdjacencyMatrix[V] {
	data := make([][]bool, len(m.data))
	for i, row := range m.data {
		data[i] = slices.Clone(row)
	}

	return &AdjacencyMatrix[V]{
		vertices: list.NewDoublyOf(m.vertices.Slice()...),
		data:     data,
		edges:    m.edges,
	}
}

// Clear removes every vertex and edge.
func (m *AdjacencyMatrix[V]) Clear() {
	m.vertices.Clear()
	m.data = nil
	m.edges = 0
}

// String renders the graph as "{[a -> b, c],\n [b]}" in insertion order.
func (m *AdjacencyMatrix[V]) String() string { return format[V](m) }
