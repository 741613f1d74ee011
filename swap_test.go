// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chain_test

import (
	"errors"
	"slices"
	"testing"

	"cloudeng.io/chain"
	"cloudeng.io/chain/chaintestutil"
)

func TestSwapExample(t *testing.T) {
	l := chain.New[int]()
	n1, n2, n3 := l.Push(1), l.Push(2), l.Push(3)
	ok, err := l.Swap(n2, n3)
	if err != nil || !ok {
		t.Fatalf("got %v, %v", ok, err)
	}
	chaintestutil.AssertValues(t, l, []int{1, 3, 2})
	if l.Head() != n1 || l.Tail() != n2 {
		t.Errorf("unexpected head or tail")
	}
	if n3.Prev() != n1 || n3.Next() != n2 {
		t.Errorf("n3 is not between n1 and n2")
	}
}

func swapped(vals []int, i, j int) []int {
	r := slices.Clone(vals)
	r[i], r[j] = r[j], r[i]
	return r
}

func TestSwapAllPairs(t *testing.T) {
	for size := 1; size <= 6; size++ {
		vals := make([]int, size)
		for i := range vals {
			vals[i] = i
		}
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				l := chain.New[int]()
				nodes := l.PushAll(vals...)
				a, b := nodes[i], nodes[j]

				ok, err := l.Swap(a, b)
				if err != nil {
					t.Fatalf("%v: %v <-> %v: %v", size, i, j, err)
				}
				if got, want := ok, i != j; got != want {
					t.Errorf("%v: %v <-> %v: got %v, want %v", size, i, j, got, want)
				}
				chaintestutil.AssertValues(t, l, swapped(vals, i, j))
				if got, want := a.Data(), i; got != want {
					t.Errorf("node moved without its value: got %v, want %v", got, want)
				}

				// Swap is an involution.
				if _, err := l.Swap(a, b); err != nil {
					t.Fatal(err)
				}
				chaintestutil.AssertValues(t, l, vals)
				for k, n := range nodes {
					if got, want := chaintestutil.NodeAt(l, k), n; got != want {
						t.Errorf("%v: %v <-> %v: node %v is out of place", size, i, j, k)
					}
				}
			}
		}
	}
}

func TestSwapErrors(t *testing.T) {
	l := chain.New[int]()
	n1, n2 := l.Push(1), l.Push(2)
	other := chain.New[int]()
	foreign := other.Push(3)

	for i, tc := range []struct {
		a, b *chain.Node[int]
		err  error
	}{
		{nil, n2, chain.ErrInvalidArgument},
		{n1, nil, chain.ErrInvalidArgument},
		{nil, nil, chain.ErrInvalidArgument},
		{foreign, n2, chain.ErrNotMember},
		{n1, foreign, chain.ErrNotMember},
	} {
		ok, err := l.Swap(tc.a, tc.b)
		if ok || !errors.Is(err, tc.err) {
			t.Errorf("%v: got %v, %v, want %v", i, ok, err, tc.err)
		}
		chaintestutil.AssertValues(t, l, []int{1, 2})
		chaintestutil.AssertValues(t, other, []int{3})
	}

	ok, err := l.Swap(n1, n1)
	if ok || err != nil {
		t.Errorf("got %v, %v", ok, err)
	}

	l.Remove(n2)
	if _, err := l.Swap(n1, n2); !errors.Is(err, chain.ErrNotMember) {
		t.Errorf("got %v, want %v", err, chain.ErrNotMember)
	}
	chaintestutil.AssertValues(t, l, []int{1})
}

func TestSwapCallback(t *testing.T) {
	var calls [][2]int
	l := chain.New(chain.WithSwapCallback(func(a, b *chain.Node[int]) {
		calls = append(calls, [2]int{a.Data(), b.Data()})
	}))
	n1, _, n3 := l.Push(1), l.Push(2), l.Push(3)
	l.Swap(n1, n3)
	l.Swap(n1, n1)
	if got, want := calls, [][2]int{{1, 3}}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
