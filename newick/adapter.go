// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

// An Adapter builds node and edge payloads
// from parsed elements,
// and stores payloads back into elements
// when writing.
// The tree topology never looks
// inside a payload;
// the adapter is the only bridge
// between the format and the payload types.
//
// Any of the functions can be nil:
// a nil From function
// produces the zero payload,
// and a nil To function
// leaves the element empty.
type Adapter[N, E any] struct {
	// NodeFromElement builds a node payload
	// from a parsed element.
	NodeFromElement func(e Element) N

	// NodeToElement stores a node payload
	// into an element for writing.
	NodeToElement func(n N, e *Element)

	// EdgeFromElement builds an edge payload
	// from a parsed element
	// (the edge connects the element
	// to its parent).
	EdgeFromElement func(e Element) E

	// EdgeToElement stores an edge payload
	// into an element for writing.
	EdgeToElement func(v E, e *Element)
}

func (ad Adapter[N, E]) nodeFrom(e Element) N {
	if ad.NodeFromElement == nil {
		var zero N
		return zero
	}
	return ad.NodeFromElement(e)
}

func (ad Adapter[N, E]) nodeTo(n N, e *Element) {
	if ad.NodeToElement != nil {
		ad.NodeToElement(n, e)
	}
}

func (ad Adapter[N, E]) edgeFrom(e Element) E {
	if ad.EdgeFromElement == nil {
		var zero E
		return zero
	}
	return ad.EdgeFromElement(e)
}

func (ad Adapter[N, E]) edgeTo(v E, e *Element) {
	if ad.EdgeToElement != nil {
		ad.EdgeToElement(v, e)
	}
}

// A Node is the default node payload:
// the node name
// (usually a taxon name on terminals)
// with any comments and tags
// attached to the node
// in the source text.
type Node struct {
	Name     string
	Comments []string
	Tags     []string
}

// A Branch is the default edge payload:
// the branch length of the edge.
// HasLength records whether the length
// was present in the source text,
// so a tree without branch lengths
// is written back without them.
type Branch struct {
	Length    float64
	HasLength bool
}

// Default returns the adapter
// for the default Node and Branch payloads.
func Default() Adapter[Node, Branch] {
	return Adapter[Node, Branch]{
		NodeFromElement: func(e Element) Node {
			return Node{
				Name:     e.Name,
				Comments: e.Comments,
				Tags:     e.Tags,
			}
		},
		NodeToElement: func(n Node, e *Element) {
			e.Name = n.Name
			e.Comments = n.Comments
			e.Tags = n.Tags
		},
		EdgeFromElement: func(e Element) Branch {
			return Branch{
				Length:    e.Length,
				HasLength: e.HasLength,
			}
		},
		EdgeToElement: func(b Branch, e *Element) {
			e.Length = b.Length
			e.HasLength = b.HasLength
		},
	}
}
