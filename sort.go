// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chain

import (
	"cmp"
)

// Ascending is the default comparator used by lists created with
// NewOrdered. It returns -1 if b > a, 1 if b < a and 0 otherwise.
func Ascending[T cmp.Ordered](a, b T) int {
	if b > a {
		return -1
	}
	if b < a {
		return 1
	}
	return 0
}

// Descending is the inverse of Ascending.
func Descending[T cmp.Ordered](a, b T) int {
	return Ascending(b, a)
}

// Sort sorts the list in place using an insertion sort in which each
// node is swapped with its predecessor until the predecessor no longer
// compares greater. Nodes remain attached to their values. If compare
// is nil the list's default comparator is used and ErrInvalidArgument is
// returned if there is none.
//
// Sort is O(n) for a list that is already sorted, in which case no
// swaps are performed, and O(n^2) in the worst case.
func (l *List[T]) Sort(compare func(a, b T) int) error {
	if compare == nil {
		compare = l.opts.cmp
	}
	if compare == nil {
		return invalidArg("chain.Sort", "no comparator")
	}
	swaps := 0
	for n := l.head; n != nil; {
		next := n.next // n's successor in the original order.
		for n.prev != nil && compare(n.prev.data, n.data) > 0 {
			l.swap(n.prev, n)
			swaps++
		}
		n = next
	}
	l.log().Debug("chain: sort", "len", l.length, "swaps", swaps)
	return nil
}
