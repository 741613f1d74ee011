// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chain

// Swap exchanges the positions of a and b within the list; each node
// keeps its value. It returns false, without modifying the list, if a
// and b are the same node. ErrInvalidArgument is returned if either node
// is nil and ErrNotMember if either node is not currently in the list.
func (l *List[T]) Swap(a, b *Node[T]) (bool, error) {
	if err := l.checkSwap(a, b); err != nil {
		l.log().Debug("chain: swap rejected", "error", err)
		return false, err
	}
	if a == b {
		return false, nil
	}
	l.swap(a, b)
	return true, nil
}

func (l *List[T]) checkSwap(a, b *Node[T]) error {
	switch {
	case a == nil:
		return invalidArg("chain.Swap", "node a is nil")
	case b == nil:
		return invalidArg("chain.Swap", "node b is nil")
	case !a.linked(l):
		return notMember("chain.Swap", "node a")
	case !b.linked(l):
		return notMember("chain.Swap", "node b")
	}
	return nil
}

// swap assumes that a and b are distinct members of l.
func (l *List[T]) swap(a, b *Node[T]) {
	switch l.head {
	case a:
		l.head = b
	case b:
		l.head = a
	}
	switch l.tail {
	case a:
		l.tail = b
	case b:
		l.tail = a
	}

	// The neighbors that each node will acquire. When a and b are
	// adjacent the captured neighbor that refers to the other node
	// must instead refer back to the node itself since the two
	// exchange places.
	aPrev, aNext := a.prev, a.next
	bPrev, bNext := b.prev, b.next
	switch {
	case a.next == b:
		aNext = a
		bPrev = b
	case a.prev == b:
		aPrev = a
		bNext = b
	}

	a.prev, a.next = bPrev, bNext
	b.prev, b.next = aPrev, aNext

	if aPrev != nil {
		aPrev.next = b
	}
	if aNext != nil {
		aNext.prev = b
	}
	if bPrev != nil {
		bPrev.next = a
	}
	if bNext != nil {
		bNext.prev = a
	}

	if l.opts.callback != nil {
		l.opts.callback(a, b)
	}
}
