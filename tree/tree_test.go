// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"errors"
	"testing"

	"github.com/js-arias/phylotree/tree"
)

// newFig makes the tree
// used in most of the tests:
//
//	(A,B,(C,D)E)F
//
// with node F as the root.
// The returned IDs are
// F, A, B, E, C, D, in that order.
func newFig(t testing.TB) (*tree.Tree[string, float64], []int) {
	t.Helper()

	tr := tree.New[string, float64]()
	f := tr.AddNode("F")
	a := tr.AddNode("A")
	b := tr.AddNode("B")
	e := tr.AddNode("E")
	c := tr.AddNode("C")
	d := tr.AddNode("D")

	pairs := [][2]int{{f, a}, {f, b}, {f, e}, {e, c}, {e, d}}
	for _, p := range pairs {
		if _, err := tr.AddEdge(p[0], p[1], 1); err != nil {
			t.Fatalf("unable to add edge %v: %v", p, err)
		}
	}
	return tr, []int{f, a, b, e, c, d}
}

func TestTree(t *testing.T) {
	tr, ids := newFig(t)

	if got := tr.Nodes(); got != 6 {
		t.Errorf("nodes: got %d, want %d", got, 6)
	}
	if got := tr.Edges(); got != 5 {
		t.Errorf("edges: got %d, want %d", got, 5)
	}
	if got := tr.Root(); got != ids[0] {
		t.Errorf("root: got %d, want %d", got, ids[0])
	}

	deg := []int{3, 1, 1, 3, 1, 1}
	for i, id := range ids {
		if got := tr.Degree(id); got != deg[i] {
			t.Errorf("node %s: degree: got %d, want %d", tr.Node(id), got, deg[i])
		}
	}
	for _, id := range ids {
		term := tr.Degree(id) == 1
		if got := tr.IsTerm(id); got != term {
			t.Errorf("node %s: terminal: got %v, want %v", tr.Node(id), got, term)
		}
	}

	if err := tr.Validate(); err != nil {
		t.Errorf("validate: unexpected error: %v", err)
	}
}

func TestEmptyTree(t *testing.T) {
	tr := tree.New[string, float64]()
	if got := tr.Nodes(); got != 0 {
		t.Errorf("nodes: got %d, want %d", got, 0)
	}
	if got := tr.Root(); got != -1 {
		t.Errorf("root: got %d, want %d", got, -1)
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("validate: unexpected error: %v", err)
	}
}

func TestAddEdgeError(t *testing.T) {
	tr := tree.New[string, float64]()
	a := tr.AddNode("A")

	if _, err := tr.AddEdge(a, a, 0); err == nil {
		t.Errorf("self loop: expecting error")
	}
	if _, err := tr.AddEdge(a, 1000, 0); err == nil {
		t.Errorf("invalid node: expecting error")
	}

	var sErr *tree.StructureError
	_, err := tr.AddEdge(-1, a, 0)
	if !errors.As(err, &sErr) {
		t.Errorf("invalid node: got error %v, want a structure error", err)
	}
}

func TestSetRoot(t *testing.T) {
	tr, ids := newFig(t)

	if err := tr.SetRoot(ids[3]); err != nil {
		t.Fatalf("set root: unexpected error: %v", err)
	}
	if got := tr.Root(); got != ids[3] {
		t.Errorf("root: got %d, want %d", got, ids[3])
	}
	if err := tr.SetRoot(1000); err == nil {
		t.Errorf("set root: expecting error on an invalid node")
	}

	// re-rooting is metadata only
	if err := tr.Validate(); err != nil {
		t.Errorf("validate: unexpected error: %v", err)
	}
}

func TestPayloads(t *testing.T) {
	tr, ids := newFig(t)

	if got := tr.Node(ids[4]); got != "C" {
		t.Errorf("node payload: got %q, want %q", got, "C")
	}
	if err := tr.SetNode(ids[4], "X"); err != nil {
		t.Fatalf("set node: unexpected error: %v", err)
	}
	if got := tr.Node(ids[4]); got != "X" {
		t.Errorf("node payload: got %q, want %q", got, "X")
	}

	if err := tr.SetEdge(0, 2.5); err != nil {
		t.Fatalf("set edge: unexpected error: %v", err)
	}
	if got := tr.Edge(0); got != 2.5 {
		t.Errorf("edge payload: got %v, want %v", got, 2.5)
	}

	a, b, err := tr.Endpoints(0)
	if err != nil {
		t.Fatalf("endpoints: unexpected error: %v", err)
	}
	if a != ids[0] || b != ids[1] {
		t.Errorf("endpoints: got %d-%d, want %d-%d", a, b, ids[0], ids[1])
	}
}

func TestRemoveAndCompact(t *testing.T) {
	tr, ids := newFig(t)

	// prune terminal D
	_, edge := tr.Parents(tr.Root())
	d := ids[5]
	if err := tr.RemoveEdge(edge[d]); err != nil {
		t.Fatalf("remove edge: unexpected error: %v", err)
	}
	if err := tr.RemoveNode(d); err != nil {
		t.Fatalf("remove node: unexpected error: %v", err)
	}

	if got := tr.Nodes(); got != 5 {
		t.Errorf("nodes: got %d, want %d", got, 5)
	}
	if got := tr.Edges(); got != 4 {
		t.Errorf("edges: got %d, want %d", got, 4)
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("validate: unexpected error: %v", err)
	}

	tr.Compact()
	if got := tr.Nodes(); got != 5 {
		t.Errorf("nodes after compact: got %d, want %d", got, 5)
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("validate after compact: unexpected error: %v", err)
	}

	// all IDs are now consecutive
	names := make(map[string]bool)
	for i := 0; i < tr.Nodes(); i++ {
		names[tr.Node(i)] = true
	}
	for _, n := range []string{"F", "A", "B", "E", "C"} {
		if !names[n] {
			t.Errorf("compact: node %q not found", n)
		}
	}
}

func TestRemoveNodeError(t *testing.T) {
	tr, ids := newFig(t)

	if err := tr.RemoveNode(ids[3]); err == nil {
		t.Errorf("remove node: expecting error on a connected node")
	}
}
