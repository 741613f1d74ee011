// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chain

import (
	"cmp"
)

// Node is a handle to a single value stored in a List. Nodes are only
// created by the List methods that insert values and their links are
// only ever changed by the List that created them.
type Node[T any] struct {
	list *List[T] // the list that created this node, never changes.
	prev *Node[T]
	next *Node[T]
	data T
}

// Data returns the value stored in the node. It remains available after
// the node has been removed from its list.
func (n *Node[T]) Data() T {
	return n.data
}

// Next returns the node that follows n, or nil if n is the tail or
// has been removed.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the node that precedes n, or nil if n is the head or
// has been removed.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// linked returns true if n is currently part of l's chain. Removal
// clears a node's links so only the head of a list can be linked
// without a predecessor.
func (n *Node[T]) linked(l *List[T]) bool {
	return n.list == l && (n.prev != nil || l.head == n)
}

// List provides a doubly linked list. The zero value is an empty list
// that is ready to use.
type List[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
	opts   options[T]
}

// New returns a new, empty, list configured with the supplied options.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, fn := range opts {
		fn(&l.opts)
	}
	return l
}

// NewOrdered is like New but uses Ascending as the default comparator
// for Sort unless WithComparator is also specified.
func NewOrdered[T cmp.Ordered](opts ...Option[T]) *List[T] {
	return New(append([]Option[T]{WithComparator(Ascending[T])}, opts...)...)
}

// Head returns the first node in the list or nil if the list is empty.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Tail returns the last node in the list or nil if the list is empty.
func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int {
	return l.length
}

// Push appends val to the tail of the list.
func (l *List[T]) Push(val T) *Node[T] {
	n := &Node[T]{list: l, data: val}
	if l.length > 0 {
		l.tail.next = n
		n.prev = l.tail
		l.tail = n
	} else {
		l.head = n
		l.tail = n
	}
	l.length++
	return n
}

// Unshift inserts val at the head of the list.
func (l *List[T]) Unshift(val T) *Node[T] {
	n := &Node[T]{list: l, data: val}
	if l.length > 0 {
		l.head.prev = n
		n.next = l.head
		l.head = n
	} else {
		l.head = n
		l.tail = n
	}
	l.length++
	return n
}

// Remove unlinks n from the list and returns its value. A node that was
// created by another list, or that has already been removed, is ignored
// and Remove returns false. ErrInvalidArgument is returned if n is nil.
func (l *List[T]) Remove(n *Node[T]) (T, bool, error) {
	var zero T
	if n == nil {
		return zero, false, invalidArg("chain.Remove", "nil node")
	}
	if reason := l.removable(n); reason != "" {
		l.log().Debug("chain: remove ignored", "reason", reason)
		return zero, false, nil
	}
	l.unlink(n)
	return n.data, true, nil
}

func (l *List[T]) removable(n *Node[T]) string {
	switch {
	case n.list != l:
		return "foreign"
	case l.length == 0:
		return "empty"
	case !n.linked(l):
		return "unlinked"
	}
	return ""
}

// Pop removes the tail of the list and returns its value. It returns
// false if the list is empty.
func (l *List[T]) Pop() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	n := l.tail
	l.unlink(n)
	return n.data, true
}

// Shift removes the head of the list and returns its value. It returns
// false if the list is empty.
func (l *List[T]) Shift() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.unlink(n)
	return n.data, true
}

// unlink assumes that n is linked into l.
func (l *List[T]) unlink(n *Node[T]) {
	switch {
	case l.head == n:
		l.head = n.next
		if l.head == nil {
			l.tail = nil // n was the only node.
			break
		}
		l.head.prev = nil
		if l.head.next == nil {
			l.tail = l.head
		}
	case l.tail == n:
		l.tail = n.prev
		l.tail.next = nil
	default:
		n.prev.next = n.next
		n.next.prev = n.prev
	}
	l.length--
	n.prev, n.next = nil, nil
}

// Reset removes all nodes from the list. Nodes obtained before the
// call remain readable but are no longer members of the list.
func (l *List[T]) Reset() {
	for n := l.head; n != nil; {
		next := n.next
		n.prev, n.next = nil, nil
		n = next
	}
	l.head, l.tail = nil, nil
	l.length = 0
}
