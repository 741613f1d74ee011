// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package chaintestutil provides support for testing code that uses
// cloudeng.io/chain.
package chaintestutil

import (
	"slices"

	"cloudeng.io/chain"
)

// Errorf is called when an error is encountered and is defined so that
// testing.T and testing.B implement Errorf.
type Errorf interface {
	Errorf(format string, args ...any)
}

type helper interface {
	Helper()
}

func markHelper(t Errorf) {
	if h, ok := t.(helper); ok {
		h.Helper()
	}
}

// Forward returns the values in l from head to tail by following
// each node's successor.
func Forward[T any](l *chain.List[T]) []T {
	res := []T{}
	for n := l.Head(); n != nil && len(res) <= l.Len(); n = n.Next() {
		res = append(res, n.Data())
	}
	return res
}

// Reverse returns the values in l from tail to head by following
// each node's predecessor.
func Reverse[T any](l *chain.List[T]) []T {
	res := []T{}
	for n := l.Tail(); n != nil && len(res) <= l.Len(); n = n.Prev() {
		res = append(res, n.Data())
	}
	return res
}

// AssertValid reports an error if l.Validate fails.
func AssertValid[T any](t Errorf, l *chain.List[T]) {
	markHelper(t)
	if err := l.Validate(); err != nil {
		t.Errorf("invalid list: %v", err)
	}
}

// AssertValues reports an error if l does not contain exactly want,
// in order, when traversed in either direction, if its length, head
// or tail are inconsistent with want, or if it fails validation.
func AssertValues[T comparable](t Errorf, l *chain.List[T], want []T) {
	markHelper(t)
	AssertValid(t, l)
	if got := Forward(l); !slices.Equal(got, want) {
		t.Errorf("forward: got %v, want %v", got, want)
	}
	rev := slices.Clone(want)
	slices.Reverse(rev)
	if got := Reverse(l); !slices.Equal(got, rev) {
		t.Errorf("reverse: got %v, want %v", got, rev)
	}
	if got, want := l.Len(), len(want); got != want {
		t.Errorf("len: got %v, want %v", got, want)
	}
	if len(want) == 0 {
		if l.Head() != nil || l.Tail() != nil {
			t.Errorf("empty list has a head or tail")
		}
		return
	}
	if h := l.Head(); h == nil || h.Data() != want[0] {
		t.Errorf("head: got %v, want %v", h, want[0])
	}
	if tl := l.Tail(); tl == nil || tl.Data() != want[len(want)-1] {
		t.Errorf("tail: got %v, want %v", tl, want[len(want)-1])
	}
}

// NodeAt returns the node at position i from the head of l, or nil
// if there is no such node.
func NodeAt[T any](l *chain.List[T], i int) *chain.Node[T] {
	n := l.Head()
	for ; n != nil && i > 0; i-- {
		n = n.Next()
	}
	if i != 0 {
		return nil
	}
	return n
}
