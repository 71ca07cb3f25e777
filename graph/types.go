// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrVertexExists indicates AddVertex on a vertex already in the graph.
	ErrVertexExists = errors.New("graph: vertex already exists")

	// ErrEdgeExists indicates Connect on an edge already in the graph.
	ErrEdgeExists = errors.New("graph: edge already exists")

	// ErrEdgeNotFound indicates Disconnect on an edge that does not exist.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// Graph is the operation set shared by AdjacencyList and AdjacencyMatrix.
// Both are directed, allow self-loops and reject parallel edges.
type Graph[V comparable] interface {
	// AddVertex adds v with no edges.
	AddVertex(v V) error

	// RemoveVertex deletes v and every edge that touches it.
	RemoveVertex(v V) error

	// Connect adds the edge from → to.
	Connect(from, to V) error

	// Disconnect removes the edge from → to.
	Disconnect(from, to V) error

	// Adjacent reports whether the edge from → to exists.
	Adjacent(from, to V) (bool, error)

	// Neighbors returns the targets of v's outgoing edges.
	Neighbors(v V) ([]V, error)

	// Vertices returns every vertex in insertion order.
	Vertices() []V

	HasVertex(v V) bool
	NumVertices() int
	NumEdges() int
	IsEmpty() bool
	Clear()
	String() string
}

// isNil reports whether g is a nil interface or wraps a nil pointer.
func isNil[V comparable](g Graph[V]) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// sameGraph reports whether a and b hold the same vertex set and edge set.
// Equal edge counts plus every edge of a being present in b make the sets equal.
func sameGraph[V comparable](a, b Graph[V]) bool {
	if isNil(b) || a.NumVertices() != b.NumVertices() || a.NumEdges() != b.NumEdges() {
		return false
	}
	for _, v := range a.Vertices() {
		if !b.HasVertex(v) {
			return false
		}
	}
	for _, v := range a.Vertices() {
		nbrs, _ := a.Neighbors(v)
		for _, u := range nbrs {
			if ok, err := b.Adjacent(v, u); err != nil || !ok {
				return false
			}
		}
	}

	return true
}

// populate copies src's vertices and edges into the empty graph dst.
func populate[V comparable](dst, src Graph[V]) {
	vertices := src.Vertices()
	for _, v := range vertices {
		// src vertices are unique and dst starts empty.
		_ = dst.AddVertex(v)
	}
	for _, v := range vertices {
		nbrs, _ := src.Neighbors(v)
		for _, u := range nbrs {
			_ = dst.Connect(v, u)
		}
	}
}

// format renders one entry per vertex in insertion order:
//
//	{[a -> b, c],
//	 [b]}
func format[V comparable](g Graph[V]) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range g.Vertices() {
		if i > 0 {
			sb.WriteString(",\n ")
		}
		fmt.Fprintf(&sb, "[%v", v)
		nbrs, _ := g.Neighbors(v)
		for j, u := range nbrs {
			if j == 0 {
				sb.WriteString(" -> ")
			} else {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, u)
		}
		sb.WriteByte(']')
	}
	sb.WriteByte('}')

	return sb.String()
}
