// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package chain provides a generic doubly linked list whose nodes are
// stable handles. A *Node returned by Push, Unshift or one of the Find
// methods remains valid, and continues to address the same value, across
// any number of insertions, removals and swaps elsewhere in the list.
//
//	l := chain.NewOrdered[int]()
//	n := l.Push(3)
//	l.PushAll(1, 2)
//	l.Sort(nil)              // 1, 2, 3
//	l.Remove(n)              // 1, 2
//
// Nodes record the list that created them. Remove ignores a node that
// belongs to another list, or that has already been removed, whereas Swap
// reports ErrNotMember for such a node since exchanging positions across
// two chains would corrupt both of them. A nil node is reported as
// ErrInvalidArgument by both.
//
// Sort is an insertion sort built entirely from Swap and hence node
// handles remain attached to their values while the list is reordered.
//
// Lists can be traversed using the range-over-func sequences returned by
// All, Backward, Values and Nodes, or using the explicit cursors returned
// by Entries, ValueCursor and NodeCursor. None of these provide isolation
// from concurrent modification; ForEach is the only traversal that
// tolerates the removal of the node being visited.
//
// A List is not safe for concurrent use; callers that share a list must
// serialize access to it themselves.
package chain
