// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chain

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	for i, tc := range []struct {
		corrupt func(l *List[int])
		valid   bool
	}{
		{func(*List[int]) {}, true},
		{func(l *List[int]) { l.length++ }, false},
		{func(l *List[int]) { l.length = -1 }, false},
		{func(l *List[int]) { l.head.prev = l.tail }, false},
		{func(l *List[int]) { l.tail.next = l.head }, false},
		{func(l *List[int]) { l.head.next.prev = nil }, false},
		{func(l *List[int]) { l.tail = l.tail.prev }, false},
		{func(l *List[int]) { l.head = nil }, false},
		{func(l *List[int]) { l.head.next.list = New[int]() }, false},
		{func(l *List[int]) { l.head.next.next = l.head }, false},
		{func(l *List[int]) { l.head, l.tail, l.length = nil, nil, 0 }, true},
		{func(l *List[int]) { l.length = 0 }, false},
	} {
		l := New[int]()
		l.PushAll(1, 2, 3)
		tc.corrupt(l)
		err := l.Validate()
		if got, want := err == nil, tc.valid; got != want {
			t.Errorf("%v: got %v, want %v: %v", i, got, want, err)
		}
		if err != nil && !errors.Is(err, ErrCorrupt) {
			t.Errorf("%v: %v is not ErrCorrupt", i, err)
		}
	}
}

func TestValidateSmall(t *testing.T) {
	l := New[int]()
	if err := l.Validate(); err != nil {
		t.Errorf("empty list: %v", err)
	}
	n := l.Push(1)
	if err := l.Validate(); err != nil {
		t.Errorf("single node: %v", err)
	}
	l.tail = &Node[int]{list: l}
	if err := l.Validate(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("got %v, want %v", err, ErrCorrupt)
	}
	l.tail = n
	l.length = 2
	if err := l.Validate(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("got %v, want %v", err, ErrCorrupt)
	}
}

func TestLinked(t *testing.T) {
	l := New[int]()
	n1, n2 := l.Push(1), l.Push(2)
	if !n1.linked(l) || !n2.linked(l) {
		t.Errorf("nodes should be linked")
	}
	if n1.linked(New[int]()) {
		t.Errorf("node should not be linked into another list")
	}
	l.unlink(n1)
	if n1.linked(l) {
		t.Errorf("removed node should not be linked")
	}
	if got, want := n1.list, l; got != want {
		t.Errorf("owner changed after removal")
	}
}
