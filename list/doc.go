// SPDX-License-Identifier: MIT
//
// Package list provides one ordered-sequence contract, List[T], and five
// interchangeable implementations of it:
//
//	Singly          — head-anchored singly linked chain.
//	Doubly          — head/tail-anchored doubly linked chain.
//	CircularSingly  — singly linked ring around a permanent sentinel node.
//	CircularDoubly  — doubly linked ring around a permanent sentinel node.
//	Array           — power-of-two circular buffer.
//
// Every implementation honors the same behavior; only asymptotic cost
// differs. Callers should hold a List[T] and pick a constructor once.
//
// Indexing:
//
// Positions are signed. A negative index i denotes Size()+i, so -1 is the last
// element. Read, Write and Pop accept -Size() <= i < Size(); Insert also
// accepts i == Size() (append). Anything else fails with ErrOutOfRange.
//
//	l := list.NewDoublyOf(10, 20, 30)
//	v, _ := l.Read(-1)  // 30
//	_ = l.Insert(15, 1) // [10, 15, 20, 30]
//	_, err := l.Read(4) // errors.Is(err, list.ErrOutOfRange)
//
// Value lookups (Remove, Index, Contains) compare with == in forward order
// and report a miss with ErrItemNotFound.
//
// Cost summary (n = Size(), i = normalized index):
//
//	                 Read/Write   Insert/Pop        Append     Pop(-1)
//	Singly           O(i)         O(i)              O(n)       O(n)
//	Doubly           O(min(i,n-i)) O(min(i,n-i))    O(1)       O(1)
//	CircularSingly   O(i)         O(i)              O(1)       O(n)
//	CircularDoubly   O(min(i,n-i)) O(min(i,n-i))    O(1)       O(1)
//	Array            O(1)         O(min(i,n-i))     O(1) amort. O(1)
//
// Ownership:
//
// A list owns its nodes (or buffer). Copy and Concat always build fresh
// storage element by element, so mutating the result never affects the
// operands and vice versa. Elements themselves are copied by assignment.
//
// Iteration is not safe against concurrent mutation of the same list, and
// none of the types are safe for concurrent use.
package list
