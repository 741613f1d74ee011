// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chain

import (
	"iter"
)

// All returns a sequence of the values and nodes in the list from head
// to tail.
func (l *List[T]) All() iter.Seq2[T, *Node[T]] {
	return l.entries(FromHead)
}

// Backward returns a sequence of the values and nodes in the list from
// tail to head.
func (l *List[T]) Backward() iter.Seq2[T, *Node[T]] {
	return l.entries(FromTail)
}

func (l *List[T]) entries(dir Direction) iter.Seq2[T, *Node[T]] {
	return func(yield func(T, *Node[T]) bool) {
		for c := l.Entries(dir); c.Next(); {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Values returns a sequence of the values in the list from head to tail.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := l.ValueCursor(FromHead); c.Next(); {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Nodes returns a sequence of the nodes in the list from head to tail.
func (l *List[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for c := l.NodeCursor(FromHead); c.Next(); {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// NodeFunc returns a function that returns the next node, from head to
// tail, on each call and nil once all nodes have been returned.
func (l *List[T]) NodeFunc() func() *Node[T] {
	c := l.NodeCursor(FromHead)
	return func() *Node[T] {
		c.Next()
		return c.Value()
	}
}

// ValueFunc returns a function that returns the next value, from head
// to tail, on each call and false once all values have been returned.
func (l *List[T]) ValueFunc() func() (T, bool) {
	c := l.ValueCursor(FromHead)
	return func() (T, bool) {
		ok := c.Next()
		return c.Value(), ok
	}
}
