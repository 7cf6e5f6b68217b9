// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements a phylogenetic tree
// as a collection of nodes, edges, and links.
//
// A link is a directed adjacency record:
// each link belongs to a node and an edge,
// points to the next link of the same node
// (so the links of a node form a circular list
// that enumerates its incident edges
// in insertion order),
// and points to the link at the other end
// of its edge.
// An edge always connects two links
// of two different nodes.
//
// Nodes and edges carry an opaque payload
// defined by the caller,
// so the same topology can be used
// for different kinds of data
// (taxon names, branch lengths,
// placements, support values).
//
// Nodes, edges, and links are addressed
// by dense integer IDs.
// IDs are stable under mutation
// until Compact is called,
// which rewrites all IDs
// and invalidates any ID
// obtained before the call.
package tree

import "fmt"

// A StructureError is an error
// produced by an invalid mutation
// or a broken topology invariant.
type StructureError struct {
	Reason string
}

func (e *StructureError) Error() string {
	return "tree: " + e.Reason
}

func structErr(format string, v ...interface{}) *StructureError {
	return &StructureError{Reason: fmt.Sprintf(format, v...)}
}

type node[N any] struct {
	payload N
	link    int // any incident link, -1 if the node is isolated
	dead    bool
}

type edge[E any] struct {
	payload E
	link    int // the link at the first endpoint
	dead    bool
}

type link struct {
	node  int
	edge  int
	next  int // next link of the same node, circular
	outer int // link at the other end of the edge
	dead  bool
}

// A Tree is a tree topology
// with node payloads of type N
// and edge payloads of type E.
//
// The zero value is an empty tree
// ready to use.
type Tree[N, E any] struct {
	nodes []node[N]
	edges []edge[E]
	links []link
	root  int

	deadNodes int
	deadEdges int
}

// New creates a new empty tree.
func New[N, E any]() *Tree[N, E] {
	return &Tree[N, E]{root: -1}
}

// AddNode adds an isolated node
// with the given payload
// and returns its ID.
// The first node added to a tree
// becomes its root.
func (t *Tree[N, E]) AddNode(payload N) int {
	if len(t.nodes) == 0 {
		t.root = 0
	}
	t.nodes = append(t.nodes, node[N]{payload: payload, link: -1})
	return len(t.nodes) - 1
}

// AddEdge adds an edge between two nodes
// with the given payload
// and returns the edge ID.
// It returns an error
// if the nodes are equal
// (self loops are not allowed)
// or if any node ID is invalid.
//
// The two new links are appended
// at the end of the circular list
// of each node,
// so traversals enumerate the neighbors
// of a node in the order
// in which its edges were added.
func (t *Tree[N, E]) AddEdge(a, b int, payload E) (int, error) {
	if !t.validNode(a) {
		return -1, structErr("invalid node ID %d", a)
	}
	if !t.validNode(b) {
		return -1, structErr("invalid node ID %d", b)
	}
	if a == b {
		return -1, structErr("self loop on node %d", a)
	}

	id := len(t.edges)
	la := len(t.links)
	lb := la + 1
	t.links = append(t.links,
		link{node: a, edge: id, next: la, outer: lb},
		link{node: b, edge: id, next: lb, outer: la},
	)
	t.edges = append(t.edges, edge[E]{payload: payload, link: la})

	t.attach(a, la)
	t.attach(b, lb)
	return id, nil
}

// attach inserts link l
// at the end of the circular list of node n.
func (t *Tree[N, E]) attach(n, l int) {
	first := t.nodes[n].link
	if first < 0 {
		t.nodes[n].link = l
		return
	}
	last := first
	for t.links[last].next != first {
		last = t.links[last].next
	}
	t.links[last].next = l
	t.links[l].next = first
}

// Root returns the ID of the root node,
// or -1 if the tree is empty.
func (t *Tree[N, E]) Root() int {
	return t.root
}

// SetRoot sets the root of the tree.
// The root is metadata only:
// no link is rewritten,
// and traversals orient themselves
// from the current root
// when they start.
func (t *Tree[N, E]) SetRoot(id int) error {
	if !t.validNode(id) {
		return structErr("invalid node ID %d", id)
	}
	t.root = id
	return nil
}

// Nodes returns the number of nodes in the tree.
func (t *Tree[N, E]) Nodes() int {
	return len(t.nodes) - t.deadNodes
}

// Edges returns the number of edges in the tree.
func (t *Tree[N, E]) Edges() int {
	return len(t.edges) - t.deadEdges
}

// Degree returns the number of edges
// incident to a node,
// or -1 if the node ID is invalid.
func (t *Tree[N, E]) Degree(id int) int {
	if !t.validNode(id) {
		return -1
	}
	first := t.nodes[id].link
	if first < 0 {
		return 0
	}
	d := 1
	for l := t.links[first].next; l != first; l = t.links[l].next {
		d++
	}
	return d
}

// IsTerm returns true
// if the node is a terminal (a leaf),
// that is if it has at most one incident edge.
func (t *Tree[N, E]) IsTerm(id int) bool {
	return t.Degree(id) <= 1 && t.validNode(id)
}

// Node returns the payload of a node.
// It returns the zero value
// if the node ID is invalid.
func (t *Tree[N, E]) Node(id int) N {
	if !t.validNode(id) {
		var zero N
		return zero
	}
	return t.nodes[id].payload
}

// SetNode sets the payload of a node.
func (t *Tree[N, E]) SetNode(id int, payload N) error {
	if !t.validNode(id) {
		return structErr("invalid node ID %d", id)
	}
	t.nodes[id].payload = payload
	return nil
}

// Edge returns the payload of an edge.
// It returns the zero value
// if the edge ID is invalid.
func (t *Tree[N, E]) Edge(id int) E {
	if !t.validEdge(id) {
		var zero E
		return zero
	}
	return t.edges[id].payload
}

// SetEdge sets the payload of an edge.
func (t *Tree[N, E]) SetEdge(id int, payload E) error {
	if !t.validEdge(id) {
		return structErr("invalid edge ID %d", id)
	}
	t.edges[id].payload = payload
	return nil
}

// Endpoints returns the IDs of the two nodes
// connected by an edge.
// It returns an error
// if the edge ID is invalid.
func (t *Tree[N, E]) Endpoints(id int) (a, b int, err error) {
	if !t.validEdge(id) {
		return -1, -1, structErr("invalid edge ID %d", id)
	}
	l := t.edges[id].link
	return t.links[l].node, t.links[t.links[l].outer].node, nil
}

// RemoveEdge removes an edge from the tree.
// The edge ID and the IDs of its two links
// become dead
// but the remaining IDs are unchanged;
// use Compact to reclaim dead IDs.
func (t *Tree[N, E]) RemoveEdge(id int) error {
	if !t.validEdge(id) {
		return structErr("invalid edge ID %d", id)
	}
	l := t.edges[id].link
	t.detach(l)
	t.detach(t.links[l].outer)
	t.links[l].dead = true
	t.links[t.links[l].outer].dead = true
	t.edges[id].dead = true
	t.deadEdges++
	return nil
}

// detach removes link l
// from the circular list of its node.
func (t *Tree[N, E]) detach(l int) {
	n := t.links[l].node
	if t.links[l].next == l {
		t.nodes[n].link = -1
		return
	}
	prev := l
	for t.links[prev].next != l {
		prev = t.links[prev].next
	}
	t.links[prev].next = t.links[l].next
	if t.nodes[n].link == l {
		t.nodes[n].link = t.links[l].next
	}
}

// RemoveNode removes an isolated node from the tree.
// It returns an error
// if the node still has incident edges.
// The node ID becomes dead
// but the remaining IDs are unchanged;
// use Compact to reclaim dead IDs.
func (t *Tree[N, E]) RemoveNode(id int) error {
	if !t.validNode(id) {
		return structErr("invalid node ID %d", id)
	}
	if t.nodes[id].link >= 0 {
		return structErr("node %d has incident edges", id)
	}
	t.nodes[id].dead = true
	t.deadNodes++
	if t.root == id {
		t.root = -1
		for i, n := range t.nodes {
			if !n.dead {
				t.root = i
				break
			}
		}
	}
	return nil
}

// Compact removes dead nodes, edges, and links
// and renumbers the remaining ones
// with consecutive IDs.
//
// Compact is a hard invalidation boundary:
// every node, edge, and link ID
// obtained before the call
// is invalid after it returns.
func (t *Tree[N, E]) Compact() {
	if t.deadNodes == 0 && t.deadEdges == 0 {
		return
	}

	nodeID := make([]int, len(t.nodes))
	edgeID := make([]int, len(t.edges))
	linkID := make([]int, len(t.links))

	nodes := make([]node[N], 0, len(t.nodes)-t.deadNodes)
	for i, n := range t.nodes {
		if n.dead {
			nodeID[i] = -1
			continue
		}
		nodeID[i] = len(nodes)
		nodes = append(nodes, n)
	}
	edges := make([]edge[E], 0, len(t.edges)-t.deadEdges)
	for i, e := range t.edges {
		if e.dead {
			edgeID[i] = -1
			continue
		}
		edgeID[i] = len(edges)
		edges = append(edges, e)
	}
	links := make([]link, 0, len(t.links)-2*t.deadEdges)
	for i, l := range t.links {
		if l.dead {
			linkID[i] = -1
			continue
		}
		linkID[i] = len(links)
		links = append(links, l)
	}

	for i := range nodes {
		if nodes[i].link >= 0 {
			nodes[i].link = linkID[nodes[i].link]
		}
	}
	for i := range edges {
		edges[i].link = linkID[edges[i].link]
	}
	for i := range links {
		links[i].node = nodeID[links[i].node]
		links[i].edge = edgeID[links[i].edge]
		links[i].next = linkID[links[i].next]
		links[i].outer = linkID[links[i].outer]
	}

	if t.root >= 0 {
		t.root = nodeID[t.root]
	}
	t.nodes = nodes
	t.edges = edges
	t.links = links
	t.deadNodes = 0
	t.deadEdges = 0
}

// Validate checks the structural invariants
// of the tree
// and returns an error
// describing the first violation found.
//
// The invariants are:
// the outer link of the outer link of a link
// is the link itself;
// the circular list of a node
// returns to the starting link
// after exactly degree steps;
// and the number of live links
// is twice the number of live edges.
func (t *Tree[N, E]) Validate() error {
	liveLinks := 0
	for i, l := range t.links {
		if l.dead {
			continue
		}
		liveLinks++
		if l.outer < 0 || l.outer >= len(t.links) || t.links[l.outer].dead {
			return structErr("link %d: dangling outer link", i)
		}
		if t.links[l.outer].outer != i {
			return structErr("link %d: outer link is not symmetric", i)
		}
		if t.links[l.outer].edge != l.edge {
			return structErr("link %d: outer link on a different edge", i)
		}
	}
	if liveLinks != 2*t.Edges() {
		return structErr("got %d links, want %d", liveLinks, 2*t.Edges())
	}

	seen := make([]bool, len(t.links))
	for i, n := range t.nodes {
		if n.dead || n.link < 0 {
			continue
		}
		steps := 0
		l := n.link
		for {
			if t.links[l].dead {
				return structErr("node %d: dead link %d in circular list", i, l)
			}
			if t.links[l].node != i {
				return structErr("node %d: link %d owned by node %d", i, l, t.links[l].node)
			}
			if seen[l] {
				return structErr("node %d: link %d visited twice", i, l)
			}
			seen[l] = true
			steps++
			if steps > len(t.links) {
				return structErr("node %d: unclosed circular list", i)
			}
			l = t.links[l].next
			if l == n.link {
				break
			}
		}
	}
	for i, l := range t.links {
		if !l.dead && !seen[i] {
			return structErr("link %d: unreachable from node %d", i, l.node)
		}
	}
	return nil
}

func (t *Tree[N, E]) validNode(id int) bool {
	return id >= 0 && id < len(t.nodes) && !t.nodes[id].dead
}

func (t *Tree[N, E]) validEdge(id int) bool {
	return id >= 0 && id < len(t.edges) && !t.edges[id].dead
}
