// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chain

// Direction determines the order in which a cursor visits the list.
type Direction int

const (
	FromHead Direction = iota + 1
	FromTail
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case FromHead:
		return "FromHead"
	case FromTail:
		return "FromTail"
	}
	return "Direction(?)"
}

// cursor is the state machine shared by all cursor types. A cursor
// is single pass: once exhausted it remains so.
type cursor[T any] struct {
	list    *List[T]
	dir     Direction
	started bool
	done    bool
	cur     *Node[T]
}

func newCursor[T any](l *List[T], dir Direction) cursor[T] {
	if dir != FromTail {
		dir = FromHead
	}
	return cursor[T]{list: l, dir: dir}
}

// Next advances the cursor and returns false once there are no more
// nodes to visit.
func (c *cursor[T]) Next() bool {
	if c.done {
		return false
	}
	switch {
	case !c.started:
		c.started = true
		if c.dir == FromHead {
			c.cur = c.list.head
		} else {
			c.cur = c.list.tail
		}
	case c.dir == FromHead:
		c.cur = c.cur.next
	default:
		c.cur = c.cur.prev
	}
	c.done = c.cur == nil
	return !c.done
}

// Done returns true once the cursor has been exhausted.
func (c *cursor[T]) Done() bool {
	return c.done
}

// Direction returns the direction the cursor was created with.
func (c *cursor[T]) Direction() Direction {
	return c.dir
}

// EntryCursor visits both the value and node of each entry in the list.
type EntryCursor[T any] struct {
	cursor[T]
}

// Value returns the value and node at the cursor's current position.
// It returns zero values before the first call to Next and once the
// cursor is exhausted.
func (c *EntryCursor[T]) Value() (T, *Node[T]) {
	if c.cur == nil {
		var zero T
		return zero, nil
	}
	return c.cur.data, c.cur
}

// ValueCursor visits the values stored in the list.
type ValueCursor[T any] struct {
	cursor[T]
}

// Value returns the value at the cursor's current position.
func (c *ValueCursor[T]) Value() T {
	if c.cur == nil {
		var zero T
		return zero
	}
	return c.cur.data
}

// NodeCursor visits the nodes in the list.
type NodeCursor[T any] struct {
	cursor[T]
}

// Value returns the node at the cursor's current position.
func (c *NodeCursor[T]) Value() *Node[T] {
	return c.cur
}

// Entries returns a new EntryCursor.
//
//	for c := l.Entries(chain.FromTail); c.Next(); {
//		v, n := c.Value()
//		...
//	}
func (l *List[T]) Entries(dir Direction) *EntryCursor[T] {
	return &EntryCursor[T]{newCursor(l, dir)}
}

// ValueCursor returns a new ValueCursor.
func (l *List[T]) ValueCursor(dir Direction) *ValueCursor[T] {
	return &ValueCursor[T]{newCursor(l, dir)}
}

// NodeCursor returns a new NodeCursor.
func (l *List[T]) NodeCursor(dir Direction) *NodeCursor[T] {
	return &NodeCursor[T]{newCursor(l, dir)}
}
