// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chaintestutil

import (
	"errors"
	"fmt"
	"strings"

	"cloudeng.io/chain"
	"cloudeng.io/cmdutil/cmdyaml"
	"gopkg.in/yaml.v3"
)

// Op is an operation that can be performed by a Script step.
type Op string

const (
	OpPush    Op = "push"
	OpUnshift Op = "unshift"
	OpPop     Op = "pop"
	OpShift   Op = "shift"
	OpRemove  Op = "remove"
	OpSwap    Op = "swap"
	OpSort    Op = "sort"
)

// UnmarshalYAML implements yaml.Unmarshaler. Operation names are case
// insensitive and unknown operations are rejected.
func (o *Op) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch op := Op(strings.ToLower(s)); op {
	case OpPush, OpUnshift, OpPop, OpShift, OpRemove, OpSwap, OpSort:
		*o = op
		return nil
	}
	return fmt.Errorf("line %v: unknown operation: %q", value.Line, s)
}

// Positions with special meaning when used to refer to nodes in a Step.
const (
	Foreign  = -1 // a node created by another list.
	Detached = -2 // a node that has been removed from the list.
	Nil      = -3 // a nil node.
)

// Step represents a single operation and its expected outcome.
type Step struct {
	Op Op `yaml:"op"`
	// Values to be pushed or unshifted.
	Values []int `yaml:"values"`
	// Positions, counted from the head, of the nodes to be removed or
	// swapped, or one of Foreign, Detached or Nil.
	Nodes []int `yaml:"nodes"`
	// Order is either asc (the default) or desc for sort.
	Order string `yaml:"order"`
	// Result is the expected value from pop, shift or remove.
	Result *int `yaml:"result"`
	// OK is the expected boolean result of pop, shift, remove or swap.
	OK *bool `yaml:"ok"`
	// Error is one of invalid or not-member if an error is expected.
	Error string `yaml:"error"`
	// Want, if set, is the expected contents of the list after the step.
	Want []int `yaml:"want"`
}

// Script is a named sequence of steps that are applied to a list of
// ints that initially contains Initial.
type Script struct {
	Name    string `yaml:"name"`
	Initial []int  `yaml:"initial"`
	Steps   []Step `yaml:"steps"`
}

type scripts struct {
	Scripts []Script `yaml:"scripts"`
}

// ParseScripts parses a YAML document of the form:
//
//	scripts:
//	  - name: swap head and tail
//	    initial: [1, 2, 3]
//	    steps:
//	      - op: swap
//	        nodes: [0, 2]
//	        ok: true
//	        want: [3, 2, 1]
//
// Unknown fields are reported as errors.
func ParseScripts(spec []byte) ([]Script, error) {
	var s scripts
	if err := cmdyaml.ParseConfigStrict(spec, &s); err != nil {
		return nil, err
	}
	return s.Scripts, nil
}

type prefixed struct {
	t      Errorf
	prefix string
}

func (p prefixed) Errorf(format string, args ...any) {
	markHelper(p.t)
	p.t.Errorf(p.prefix+format, args...)
}

// Run applies each step in turn to a newly created list, reporting any
// unexpected results, and checks the list's invariants after every step.
func (s Script) Run(t Errorf) {
	markHelper(t)
	l := chain.NewOrdered[int]()
	l.PushAll(s.Initial...)
	AssertValues(prefixed{t, s.Name + ": initial: "}, l, s.Initial)
	for i, step := range s.Steps {
		st := prefixed{t, fmt.Sprintf("%v: step %v: %v: ", s.Name, i, step.Op)}
		step.apply(st, l)
		AssertValid(st, l)
		if step.Want != nil {
			AssertValues(st, l, step.Want)
		}
	}
}

func (s Step) node(l *chain.List[int], i int) *chain.Node[int] {
	switch s.Nodes[i] {
	case Foreign:
		return chain.New[int]().Push(0)
	case Detached:
		n := l.Push(0)
		l.Pop()
		return n
	case Nil:
		return nil
	}
	return NodeAt(l, s.Nodes[i])
}

func (s Step) apply(t Errorf, l *chain.List[int]) {
	need := 0
	switch s.Op {
	case OpRemove:
		need = 1
	case OpSwap:
		need = 2
	}
	if len(s.Nodes) < need {
		t.Errorf("requires %v nodes, got %v", need, len(s.Nodes))
		return
	}
	switch s.Op {
	case OpPush:
		l.PushAll(s.Values...)
	case OpUnshift:
		l.UnshiftAll(s.Values...)
	case OpPop:
		v, ok := l.Pop()
		s.checkResult(t, v, ok)
	case OpShift:
		v, ok := l.Shift()
		s.checkResult(t, v, ok)
	case OpRemove:
		v, ok, err := l.Remove(s.node(l, 0))
		s.checkError(t, err)
		s.checkResult(t, v, ok)
	case OpSwap:
		ok, err := l.Swap(s.node(l, 0), s.node(l, 1))
		s.checkError(t, err)
		s.checkResult(t, 0, ok)
	case OpSort:
		cmp := chain.Ascending[int]
		if s.Order == "desc" {
			cmp = chain.Descending[int]
		}
		s.checkError(t, l.Sort(cmp))
	default:
		t.Errorf("unsupported operation")
	}
}

func (s Step) checkResult(t Errorf, v int, ok bool) {
	if s.OK != nil && ok != *s.OK {
		t.Errorf("ok: got %v, want %v", ok, *s.OK)
	}
	if s.Result != nil && v != *s.Result {
		t.Errorf("result: got %v, want %v", v, *s.Result)
	}
}

func (s Step) checkError(t Errorf, err error) {
	var want error
	switch s.Error {
	case "":
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		return
	case "invalid":
		want = chain.ErrInvalidArgument
	case "not-member":
		want = chain.ErrNotMember
	default:
		t.Errorf("unrecognised error: %q", s.Error)
		return
	}
	if !errors.Is(err, want) {
		t.Errorf("error: got %v, want %v", err, want)
	}
}
