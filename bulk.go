// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chain

// Items represents either a single value or an ordered sequence of values
// to be inserted by PushItems or UnshiftItems. Items are created using
// One, Many and Nested.
type Items[T any] struct {
	vals []T
}

// One returns Items for a single value.
func One[T any](val T) Items[T] {
	return Items[T]{vals: []T{val}}
}

// Many returns Items for a sequence of values.
func Many[T any](vals ...T) Items[T] {
	return Items[T]{vals: vals}
}

// Nested flattens its arguments, in order, into a single Items, so that
// Nested(Many(1, 2), One(3)) is equivalent to Many(1, 2, 3).
func Nested[T any](items ...Items[T]) Items[T] {
	var n int
	for _, it := range items {
		n += len(it.vals)
	}
	vals := make([]T, 0, n)
	for _, it := range items {
		vals = append(vals, it.vals...)
	}
	return Items[T]{vals: vals}
}

// Len returns the number of values represented by it.
func (it Items[T]) Len() int {
	return len(it.vals)
}

// PushAll pushes each of vals, in order, to the tail of the list and
// returns the newly created nodes in the same order.
func (l *List[T]) PushAll(vals ...T) []*Node[T] {
	nodes := make([]*Node[T], 0, len(vals))
	for _, v := range vals {
		nodes = append(nodes, l.Push(v))
	}
	return nodes
}

// UnshiftAll inserts each of vals, in order, at the head of the list
// and hence the last of vals becomes the new head. The newly created
// nodes are returned in insertion order.
func (l *List[T]) UnshiftAll(vals ...T) []*Node[T] {
	nodes := make([]*Node[T], 0, len(vals))
	for _, v := range vals {
		nodes = append(nodes, l.Unshift(v))
	}
	return nodes
}

// PushItems is like PushAll but accepts any mix of single values and
// sequences, ie. PushItems(Many(1, 2), One(3)), PushItems(Many(1, 2, 3))
// and PushAll(1, 2, 3) are equivalent.
func (l *List[T]) PushItems(items ...Items[T]) []*Node[T] {
	return l.PushAll(Nested(items...).vals...)
}

// UnshiftItems is like UnshiftAll but accepts any mix of single values
// and sequences.
func (l *List[T]) UnshiftItems(items ...Items[T]) []*Node[T] {
	return l.UnshiftAll(Nested(items...).vals...)
}
