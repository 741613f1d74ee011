// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chain

// FindFirst returns the first node, starting from the head, whose value
// is equal to val, or nil if there is no such node.
func FindFirst[T comparable](l *List[T], val T) *Node[T] {
	return l.FindFirstBy(func(v T) bool { return v == val })
}

// FindAll returns all of the nodes whose value is equal to val in
// head to tail order.
func FindAll[T comparable](l *List[T], val T) []*Node[T] {
	return l.FindAllBy(func(v T) bool { return v == val })
}

// FindFirstBy returns the first node, starting from the head, for whose
// value pred returns true, or nil if there is no such node. pred is
// called at most once per node.
func (l *List[T]) FindFirstBy(pred func(T) bool) *Node[T] {
	for n := l.head; n != nil; n = n.next {
		if pred(n.data) {
			return n
		}
	}
	return nil
}

// FindAllBy returns all of the nodes, in head to tail order, for whose
// value pred returns true. pred is called exactly once per node.
func (l *List[T]) FindAllBy(pred func(T) bool) []*Node[T] {
	found := []*Node[T]{}
	for n := l.head; n != nil; n = n.next {
		if pred(n.data) {
			found = append(found, n)
		}
	}
	return found
}

// ForEach calls fn for each node from head to tail until fn returns
// true. The successor of each node is obtained before fn is called
// and hence fn may remove the node it is called with.
func (l *List[T]) ForEach(fn func(*Node[T]) (stop bool)) {
	for n := l.head; n != nil; {
		next := n.next
		if fn(n) {
			return
		}
		n = next
	}
}
