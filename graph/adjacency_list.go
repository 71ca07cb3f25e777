// SPDX-License-Identifier: MIT

package graph

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvstruct/list"
)

// AdjacencyList is a directed graph in which every vertex owns the list of
// vertices it points to. Self-loops are allowed; parallel edges are not.
type AdjacencyList[V comparable] struct {
	vertices  *list.Doubly[V]
	neighbors map[V]*list.Doubly[V]
	edges     int
}

var _ Graph[int] = (*AdjacencyList[int])(nil)

// NewAdjacencyList returns an empty graph.
func NewAdjacencyList[V comparable]() *AdjacencyList[V] {
	return &AdjacencyList[V]{
		vertices:  list.NewDoubly[V](),
		neighbors: make(map[V]*list.Doubly[V]),
	}
}

// NewAdjacencyListFrom returns an adjacency-list copy of src, keeping its
// vertex and neighbor order.
func NewAdjacencyListFrom[V comparable](src Graph[V]) *AdjacencyList[V] {
	g := NewAdjacencyList[V]()
	populate[V](g, src)

	return g
}

// out returns the neighbor list of v or ErrVertexNotFound.
func (g *AdjacencyList[V]) out(v V) (*list.Doubly[V], error) {
	nbrs, ok := g.neighbors[v]
	if !ok {
		return nil, errors.Wrapf(ErrVertexNotFound, "vertex %v", v)
	}

	return nbrs, nil
}

// AddVertex adds v with no edges.
// Returns ErrVertexExists if v is already in the graph.
func (g *AdjacencyList[V]) AddVertex(v V) error {
	if _, ok := g.neighbors[v]; ok {
		return errors.Wrapf(ErrVertexExists, "vertex %v", v)
	}
	g.vertices.Append(v)
	g.neighbors[v] = list.NewDoubly[V]()

	return nil
}

// RemoveVertex deletes v together with its outgoing and incoming edges.
// Returns ErrVertexNotFound if v is not in the graph.
func (g *AdjacencyList[V]) RemoveVertex(v V) error {
	nbrs, err := g.out(v)
	if err != nil {
		return err
	}
	catalog := g.vertices.Slice()
	if err := g.vertices.Remove(v); err != nil {
		return err
	}
	g.edges -= nbrs.Size()
	nbrs.Clear()
	delete(g.neighbors, v)

	for _, u := range catalog {
		if u == v {
			continue
		}
		if g.neighbors[u].Remove(v) == nil {
			g.edges--
		}
	}

	return nil
}

// Connect adds the edge from → to.
// Returns ErrVertexNotFound if either endpoint is missing and ErrEdgeExists
// if the edge is already present.
func (g *AdjacencyList[V]) Connect(from, to V) error {
	nbrs, err := g.endpoints(from, to)
	if err != nil {
		return err
	}
	if nbrs.Contains(to) {
		return errors.Wrapf(ErrEdgeExists, "edge %v -> %v", from, to)
	}
	nbrs.Append(to)
	g.edges++

	return nil
}

// Disconnect removes the edge from → to.
// Returns ErrVertexNotFound if either endpoint is missing and ErrEdgeNotFound
// if there is no such edge.
func (g *AdjacencyList[V]) Disconnect(from, to V) error {
	nbrs, err := g.endpoints(from, to)
	if err != nil {
		return err
	}
	if err := nbrs.Remove(to); err != nil {
		return errors.Wrapf(ErrEdgeNotFound, "edge %v -> %v", from, to)
	}
	g.edges--

	return nil
}

// Adjacent reports whether the edge from → to exists.
// Returns ErrVertexNotFound if either endpoint is missing.
func (g *AdjacencyList[V]) Adjacent(from, to V) (bool, error) {
	nbrs, err := g.endpoints(from, to)
	if err != nil {
		return false, err
	}

	return nbrs.Contains(to), nil
}

// endpoints validates both vertices and returns the neighbor list of from.
func (g *AdjacencyList[V]) endpoints(from, to V) (*list.Doubly[V], error) {
	nbrs, err := g.out(from)
	if err != nil {
		return nil, err
	}
	if _, err := g.out(to); err != nil {
		return nil, err
	}

	return nbrs, nil
}

// Neighbors returns the targets of v's outgoing edges in connection order.
// Returns ErrVertexNotFound if v is not in the graph.
func (g *AdjacencyList[V]) Neighbors(v V) ([]V, error) {
	nbrs, err := g.out(v)
	if err != nil {
		return nil, err
	}

	return nbrs.Slice(), nil
}

// Vertices returns every vertex in insertion order.
func (g *AdjacencyList[V]) Vertices() []V { return g.vertices.Slice() }

// HasVertex reports whether v is in the graph.
func (g *AdjacencyList[V]) HasVertex(v V) bool {
	_, ok := g.neighbors[v]
	return ok
}

// NumVertices returns the number of vertices.
func (g *AdjacencyList[V]) NumVertices() int { return g.vertices.Size() }

// NumEdges returns the number of directed edges.
func (g *AdjacencyList[V]) NumEdges() int { return g.edges }

// IsEmpty reports whether the graph has no vertices.
func (g *AdjacencyList[V]) IsEmpty() bool { return g.vertices.IsEmpty() }

// Equal reports whether other has the same vertex set and the same edges.
// Insertion order and representation are ignored.
func (g *AdjacencyList[V]) Equal(other Graph[V]) bool { return sameGraph[V](g, other) }

// Clone returns an independent graph with the same vertices, edges and orders.
func (g *AdjacencyList[V]) Clone() *AdjacencyList[V] {
	c := &AdjacencyList[V]{
		vertices:  list.NewDoublyOf(g.vertices.Slice()...),
		neighbors: make(map[V]*list.Doubly[V], len(g.neighbors)),
		edges:     g.edges,
	}
	for v, nbrs := range g.neighbors {
		c.neighbors[v] = list.NewDoublyOf(nbrs.Slice()...)
	}

	return c
}

// Clear removes every vertex and edge.
func (g *AdjacencyList[V]) Clear() {
	for _, nbrs := range g.neighbors {
		nbrs.Clear()
	}
	g.vertices.Clear()
	clear(g.neighbors)
	g.edges = 0
}

// String renders the graph as "{[a -> b, c],\n [b]}" in insertion order.
func (g *AdjacencyList[V]) String() string { return format[V](g) }
