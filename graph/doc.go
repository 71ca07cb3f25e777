// SPDX-License-Identifier: MIT

// Package graph provides a directed graph in two representations behind
// the Graph interface.
//
// AdjacencyList keeps a list.Doubly vertex catalog plus one list.Doubly of
// targets per vertex, so neighbors come back in connection order.
// AdjacencyMatrix keeps the same catalog and a square boolean matrix whose
// row/column i belongs to catalog position i; neighbors come back in
// catalog order. Both allow self-loops and reject parallel edges, and
// Equal compares vertex and edge sets across representations.
//
// Errors:
//
//	ErrVertexNotFound - an operation named a vertex that is not in the graph.
//	ErrVertexExists   - AddVertex was called with a vertex already present.
//	ErrEdgeExists     - Connect was called for an edge already present.
//	ErrEdgeNotFound   - Disconnect was called for an edge that is absent.
//
// Complexity (V vertices, E edges, d out-degree):
//
//	               AdjacencyList   AdjacencyMatrix
//	AddVertex      O(1)            O(V)
//	RemoveVertex   O(V + E)        O(V²)
//	Connect        O(d)            O(V)
//	Adjacent       O(d)            O(V)
//	Neighbors      O(d)            O(V)
//	Clone          O(V + E)        O(V²)
//
// Matrix lookups are O(V) because vertex positions are found by scanning
// the catalog. Neither type is safe for concurrent use.
package graph
