// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chain

import (
	"cloudeng.io/errors"
)

// Validate checks the structural invariants of the list and returns
// an error describing every violation found, or nil if there are none.
// Every violation matches ErrCorrupt. Validate visits at most Len()+1
// nodes in each direction so that it terminates for cyclic chains.
func (l *List[T]) Validate() error {
	errs := &errors.M{}
	switch {
	case l.length < 0:
		errs.Append(corrupt("negative length %v", l.length))
	case l.length == 0:
		if l.head != nil || l.tail != nil {
			errs.Append(corrupt("empty list has a head or tail"))
		}
		return errs.Err()
	case l.head == nil || l.tail == nil:
		errs.Append(corrupt("list of length %v is missing its head or tail", l.length))
		return errs.Err()
	case l.length == 1 && l.head != l.tail:
		errs.Append(corrupt("list of length 1 has distinct head and tail"))
	case l.length > 1 && l.head == l.tail:
		errs.Append(corrupt("list of length %v has the same head and tail", l.length))
	}
	if l.head.prev != nil {
		errs.Append(corrupt("head has a predecessor"))
	}
	if l.tail.next != nil {
		errs.Append(corrupt("tail has a successor"))
	}
	errs.Append(l.validateWalk(FromHead), l.validateWalk(FromTail))
	return errs.Err()
}

func (l *List[T]) validateWalk(dir Direction) error {
	start, end := l.head, l.tail
	step := func(n *Node[T]) *Node[T] { return n.next }
	back := func(n *Node[T]) *Node[T] { return n.prev }
	if dir == FromTail {
		start, end = end, start
		step, back = back, step
	}
	errs := &errors.M{}
	visited, last := 0, (*Node[T])(nil)
	for n := start; n != nil && visited <= l.length; n = step(n) {
		if n.list != l {
			errs.Append(corrupt("%v: node %v belongs to another list", dir, visited))
		}
		if back(n) != last {
			errs.Append(corrupt("%v: node %v is not linked back to its neighbor", dir, visited))
		}
		last = n
		visited++
	}
	if visited != l.length {
		errs.Append(corrupt("%v: visited %v nodes, expected %v", dir, visited, l.length))
	}
	if last != end {
		errs.Append(corrupt("%v: walk did not end at the expected node", dir))
	}
	return errs.Err()
}
