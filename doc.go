// Package lvstruct is a set of in-memory, generic container types: five
// interchangeable lists, a binary heap, and the stack, queue and directed
// graph built on top of them.
//
// What is in the box:
//
//	• Lists: Singly, Doubly, CircularSingly, CircularDoubly and Array, all
//	  behind list.List[T] with Python-style signed indices
//	• Heap: 1-indexed binary heap, max, min or custom comparator, with
//	  Replace, Heapify and Merge
//	• Collaborators: LIFO stack and FIFO queue over list.Doubly
//	• Graph: directed graph as adjacency lists or an adjacency matrix
//
// Packages:
//
//	list/             — List contract, five implementations, iterators
//	heap/             — BinaryHeap, Comparator, Max/Min
//	stack/            — Stack over list.Doubly (top at index 0)
//	queue/            — Queue over list.Doubly
//	graph/            — Graph interface, AdjacencyList, AdjacencyMatrix
//	internal/growth/  — grow/shrink policy and ring copy shared by Array and BinaryHeap
//
// Quick example:
//
//	l := list.NewArrayOf(1, 2)
//	_ = l.Insert(3, 0)     // [3, 1, 2]
//	v, _ := l.Read(-1)     // 2
//
// None of the containers is safe for concurrent use; wrap them in a mutex
// when sharing across goroutines.
//
//	go get github.com/katalvlaran/lvstruct
package lvstruct
