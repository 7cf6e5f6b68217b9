// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

// Parents returns the orientation of the tree
// as seen from the given start node:
// for every node ID,
// parent is the ID of its parent node
// and edge is the ID of the edge
// that connects it to the parent.
// Both are -1 for the start node
// and for any node
// not reachable from it.
func (t *Tree[N, E]) Parents(start int) (parent, edge []int) {
	parent = make([]int, len(t.nodes))
	edge = make([]int, len(t.nodes))
	for i := range parent {
		parent[i] = -1
		edge[i] = -1
	}
	if !t.validNode(start) {
		return parent, edge
	}
	type frame struct {
		node int
		pl   int
	}
	queue := []frame{{node: start, pl: -1}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		t.eachChild(f.node, f.pl, func(l int) bool {
			out := t.links[l].outer
			c := t.links[out].node
			parent[c] = f.node
			edge[c] = t.links[l].edge
			queue = append(queue, frame{node: c, pl: out})
			return true
		})
	}
	return parent, edge
}

// Path returns the sequence of node IDs
// from node a to node b,
// going through their
// most recent common ancestor,
// with the ancestor defined
// by the current root of the tree.
// Both end nodes are included in the path.
func (t *Tree[N, E]) Path(a, b int) ([]int, error) {
	if !t.validNode(a) {
		return nil, structErr("invalid node ID %d", a)
	}
	if !t.validNode(b) {
		return nil, structErr("invalid node ID %d", b)
	}
	if a == b {
		return []int{a}, nil
	}

	parent, _ := t.Parents(t.root)

	// ancestors of a, from a to the root
	up := []int{a}
	onPath := map[int]bool{a: true}
	for n := a; parent[n] >= 0; n = parent[n] {
		up = append(up, parent[n])
		onPath[parent[n]] = true
	}

	// walk from b toward the root
	// until reaching the path from a
	var down []int
	mrca := -1
	for n := b; ; n = parent[n] {
		if onPath[n] {
			mrca = n
			break
		}
		down = append(down, n)
		if parent[n] < 0 {
			return nil, structErr("no path between nodes %d and %d", a, b)
		}
	}

	var path []int
	for _, n := range up {
		path = append(path, n)
		if n == mrca {
			break
		}
	}
	for i := len(down) - 1; i >= 0; i-- {
		path = append(path, down[i])
	}
	return path, nil
}
