// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"iter"
)

// An UnsupportedError is an error
// produced by a traversal
// that is not defined
// for the topology of the tree,
// such as an inorder traversal
// on a non-binary node.
type UnsupportedError struct {
	Node int
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("tree: unsupported topology at node %d", e.Node)
}

// An Event is the kind of visit
// reported by a roundtrip traversal.
type Event int

// Roundtrip traversal events.
const (
	// The traversal enters the subtree of the node.
	Enter Event = iota

	// The traversal leaves the subtree of the node.
	Exit
)

// eachChild calls fn
// with each link of node n
// oriented away from the traversal start,
// in link insertion order.
// The link pl is the link of n
// toward its parent,
// or negative if n is the start node.
// It stops and returns false
// as soon as fn returns false.
func (t *Tree[N, E]) eachChild(n, pl int, fn func(l int) bool) bool {
	if pl < 0 {
		first := t.nodes[n].link
		if first < 0 {
			return true
		}
		l := first
		for {
			if !fn(l) {
				return false
			}
			l = t.links[l].next
			if l == first {
				return true
			}
		}
	}
	for l := t.links[pl].next; l != pl; l = t.links[l].next {
		if !fn(l) {
			return false
		}
	}
	return true
}

// Preorder returns an iterator
// over the nodes of the subtree
// rooted at the start node,
// visiting every node
// before any of its descendants.
// Sibling subtrees are visited
// in edge insertion order.
func (t *Tree[N, E]) Preorder(start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !t.validNode(start) {
			return
		}
		var walk func(n, pl int) bool
		walk = func(n, pl int) bool {
			if !yield(n) {
				return false
			}
			return t.eachChild(n, pl, func(l int) bool {
				return walk(t.links[t.links[l].outer].node, t.links[l].outer)
			})
		}
		walk(start, -1)
	}
}

// Postorder returns an iterator
// over the nodes of the subtree
// rooted at the start node,
// visiting every node
// after all of its descendants.
// Sibling subtrees are visited
// in edge insertion order.
func (t *Tree[N, E]) Postorder(start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !t.validNode(start) {
			return
		}
		var walk func(n, pl int) bool
		walk = func(n, pl int) bool {
			ok := t.eachChild(n, pl, func(l int) bool {
				return walk(t.links[t.links[l].outer].node, t.links[l].outer)
			})
			if !ok {
				return false
			}
			return yield(n)
		}
		walk(start, -1)
	}
}

// Levelorder returns an iterator
// over the nodes of the subtree
// rooted at the start node,
// visiting all nodes at a given depth
// before any node deeper in the tree.
func (t *Tree[N, E]) Levelorder(start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !t.validNode(start) {
			return
		}
		type frame struct {
			node int
			pl   int
		}
		queue := []frame{{node: start, pl: -1}}
		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			if !yield(f.node) {
				return
			}
			t.eachChild(f.node, f.pl, func(l int) bool {
				out := t.links[l].outer
				queue = append(queue, frame{node: t.links[out].node, pl: out})
				return true
			})
		}
	}
}

// Inorder returns an iterator
// over the nodes of the subtree
// rooted at the start node,
// visiting every node
// after its first child subtree
// and before the remaining child subtrees.
// On a binary tree
// this is the usual
// left subtree, node, right subtree order.
//
// Inorder is only defined for trees
// in which every node
// has at most three incident edges;
// it returns an error of type *UnsupportedError
// identifying the first node
// with a larger degree.
func (t *Tree[N, E]) Inorder(start int) (iter.Seq[int], error) {
	if !t.validNode(start) {
		return nil, structErr("invalid node ID %d", start)
	}
	for n := range t.Preorder(start) {
		if t.Degree(n) > 3 {
			return nil, &UnsupportedError{Node: n}
		}
	}

	it := func(yield func(int) bool) {
		var walk func(n, pl int) bool
		walk = func(n, pl int) bool {
			visited := false
			ok := t.eachChild(n, pl, func(l int) bool {
				if !visited {
					visited = true
					if !walk(t.links[t.links[l].outer].node, t.links[l].outer) {
						return false
					}
					return yield(n)
				}
				return walk(t.links[t.links[l].outer].node, t.links[l].outer)
			})
			if !ok {
				return false
			}
			if !visited {
				return yield(n)
			}
			return true
		}
		walk(start, -1)
	}
	return it, nil
}

// Euler returns an iterator
// over the Euler tour of the subtree
// rooted at the start node.
// Each step yields a node
// and the ID of the edge
// used to arrive at it;
// the first step yields the start node
// with an edge ID of -1.
// Every edge is traversed exactly twice,
// once in each direction,
// so the tour has 2*edges+1 steps.
func (t *Tree[N, E]) Euler(start int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if !t.validNode(start) {
			return
		}
		if !yield(start, -1) {
			return
		}
		var walk func(n, pl int) bool
		walk = func(n, pl int) bool {
			return t.eachChild(n, pl, func(l int) bool {
				out := t.links[l].outer
				c := t.links[out].node
				e := t.links[l].edge
				if !yield(c, e) {
					return false
				}
				if !walk(c, out) {
					return false
				}
				return yield(n, e)
			})
		}
		walk(start, -1)
	}
}

// Roundtrip returns an iterator
// over enter and exit events
// of the subtree
// rooted at the start node.
// A node is entered
// before any of its descendants
// and exited after all of them;
// a leaf is entered and exited
// in two consecutive steps.
func (t *Tree[N, E]) Roundtrip(start int) iter.Seq2[Event, int] {
	return func(yield func(Event, int) bool) {
		if !t.validNode(start) {
			return
		}
		var walk func(n, pl int) bool
		walk = func(n, pl int) bool {
			if !yield(Enter, n) {
				return false
			}
			ok := t.eachChild(n, pl, func(l int) bool {
				return walk(t.links[t.links[l].outer].node, t.links[l].outer)
			})
			if !ok {
				return false
			}
			return yield(Exit, n)
		}
		walk(start, -1)
	}
}
