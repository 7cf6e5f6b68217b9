// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/js-arias/phylotree/tree"
)

func names(tr *tree.Tree[string, float64], ids []int) []string {
	var ns []string
	for _, id := range ids {
		ns = append(ns, tr.Node(id))
	}
	return ns
}

func TestPreorder(t *testing.T) {
	tr, _ := newFig(t)

	var got []int
	for n := range tr.Preorder(tr.Root()) {
		got = append(got, n)
	}
	want := []string{"F", "A", "B", "E", "C", "D"}
	if ns := names(tr, got); !reflect.DeepEqual(ns, want) {
		t.Errorf("preorder: got %v, want %v", ns, want)
	}
}

func TestPostorder(t *testing.T) {
	tr, _ := newFig(t)

	var got []int
	for n := range tr.Postorder(tr.Root()) {
		got = append(got, n)
	}
	want := []string{"A", "B", "C", "D", "E", "F"}
	if ns := names(tr, got); !reflect.DeepEqual(ns, want) {
		t.Errorf("postorder: got %v, want %v", ns, want)
	}
}

func TestLevelorder(t *testing.T) {
	tr, _ := newFig(t)

	var got []int
	for n := range tr.Levelorder(tr.Root()) {
		got = append(got, n)
	}
	want := []string{"F", "A", "B", "E", "C", "D"}
	if ns := names(tr, got); !reflect.DeepEqual(ns, want) {
		t.Errorf("levelorder: got %v, want %v", ns, want)
	}
}

func TestInorder(t *testing.T) {
	tr := tree.New[string, float64]()
	r := tr.AddNode("R")
	a := tr.AddNode("A")
	b := tr.AddNode("B")
	c := tr.AddNode("C")
	d := tr.AddNode("D")
	pairs := [][2]int{{r, a}, {r, b}, {a, c}, {a, d}}
	for _, p := range pairs {
		if _, err := tr.AddEdge(p[0], p[1], 0); err != nil {
			t.Fatalf("unable to add edge %v: %v", p, err)
		}
	}

	it, err := tr.Inorder(tr.Root())
	if err != nil {
		t.Fatalf("inorder: unexpected error: %v", err)
	}
	var got []int
	for n := range it {
		got = append(got, n)
	}
	want := []string{"C", "A", "D", "R", "B"}
	if ns := names(tr, got); !reflect.DeepEqual(ns, want) {
		t.Errorf("inorder: got %v, want %v", ns, want)
	}
}

func TestInorderUnsupported(t *testing.T) {
	// node F has degree 4
	tr := tree.New[string, float64]()
	f := tr.AddNode("F")
	for _, n := range []string{"A", "B", "C", "D"} {
		id := tr.AddNode(n)
		if _, err := tr.AddEdge(f, id, 0); err != nil {
			t.Fatalf("unable to add edge to %s: %v", n, err)
		}
	}

	_, err := tr.Inorder(tr.Root())
	var uErr *tree.UnsupportedError
	if !errors.As(err, &uErr) {
		t.Fatalf("inorder: got error %v, want an unsupported topology error", err)
	}
	if uErr.Node != f {
		t.Errorf("inorder: error on node %d, want %d", uErr.Node, f)
	}
}

func TestEuler(t *testing.T) {
	tr, _ := newFig(t)

	var got []int
	edgeUse := make(map[int]int)
	for n, e := range tr.Euler(tr.Root()) {
		got = append(got, n)
		if e >= 0 {
			edgeUse[e]++
		}
	}
	if len(got) != 2*tr.Edges()+1 {
		t.Errorf("euler: got %d steps, want %d", len(got), 2*tr.Edges()+1)
	}
	want := []string{"F", "A", "F", "B", "F", "E", "C", "E", "D", "E", "F"}
	if ns := names(tr, got); !reflect.DeepEqual(ns, want) {
		t.Errorf("euler: got %v, want %v", ns, want)
	}
	for e, uses := range edgeUse {
		if uses != 2 {
			t.Errorf("euler: edge %d traversed %d times, want %d", e, uses, 2)
		}
	}
}

func TestRoundtrip(t *testing.T) {
	tr, _ := newFig(t)

	type step struct {
		ev   tree.Event
		name string
	}
	var got []step
	for ev, n := range tr.Roundtrip(tr.Root()) {
		got = append(got, step{ev: ev, name: tr.Node(n)})
	}
	want := []step{
		{tree.Enter, "F"},
		{tree.Enter, "A"}, {tree.Exit, "A"},
		{tree.Enter, "B"}, {tree.Exit, "B"},
		{tree.Enter, "E"},
		{tree.Enter, "C"}, {tree.Exit, "C"},
		{tree.Enter, "D"}, {tree.Exit, "D"},
		{tree.Exit, "E"},
		{tree.Exit, "F"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("roundtrip: got %v, want %v", got, want)
	}
}

func TestPath(t *testing.T) {
	tr, ids := newFig(t)

	tests := map[string]struct {
		from, to int
		want     []string
	}{
		"terminal to terminal": {from: ids[4], to: ids[2], want: []string{"C", "E", "F", "B"}},
		"descendant":           {from: ids[0], to: ids[5], want: []string{"F", "E", "D"}},
		"ancestor":             {from: ids[5], to: ids[0], want: []string{"D", "E", "F"}},
		"same node":            {from: ids[3], to: ids[3], want: []string{"E"}},
		"siblings":             {from: ids[1], to: ids[2], want: []string{"A", "F", "B"}},
	}
	for name, test := range tests {
		p, err := tr.Path(test.from, test.to)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if ns := names(tr, p); !reflect.DeepEqual(ns, test.want) {
			t.Errorf("%s: got %v, want %v", name, ns, test.want)
		}
	}

	if _, err := tr.Path(ids[0], 1000); err == nil {
		t.Errorf("path: expecting error on an invalid node")
	}
}

func TestTraversalRestart(t *testing.T) {
	tr, _ := newFig(t)

	it := tr.Preorder(tr.Root())
	var first, second []int
	for n := range it {
		first = append(first, n)
	}
	for n := range it {
		second = append(second, n)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("restart: got %v, want %v", second, first)
	}

	// early break does not disturb
	// a new iteration
	for n := range it {
		_ = n
		break
	}
	var third []int
	for n := range it {
		third = append(third, n)
	}
	if !reflect.DeepEqual(first, third) {
		t.Errorf("restart after break: got %v, want %v", third, first)
	}
}

func TestSubtreeTraversal(t *testing.T) {
	tr, ids := newFig(t)

	var got []int
	for n := range tr.Preorder(ids[3]) {
		got = append(got, n)
	}
	// starting at E the whole tree is reachable,
	// with F as the first child of E
	// (the edge to F was added first)
	want := []string{"E", "F", "A", "B", "C", "D"}
	if ns := names(tr, got); !reflect.DeepEqual(ns, want) {
		t.Errorf("preorder from E: got %v, want %v", ns, want)
	}
}
