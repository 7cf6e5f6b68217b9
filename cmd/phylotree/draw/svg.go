// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package draw

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/js-arias/phylotree/newick"
	"github.com/js-arias/phylotree/tree"
)

const yStep = 12

type node struct {
	x    float64
	y    int
	topY int
	botY int

	name string

	anc  *node
	desc []*node
}

type svgTree struct {
	y     int
	x     float64
	taxSz int
	root  *node
}

// copyTree extracts the drawing data
// from a tree.
// The horizontal position of a node
// is the sum of the branch lengths
// from the root;
// a branch without a length
// counts as a single unit.
func copyTree(t *tree.Tree[newick.Node, newick.Branch], xStep float64) svgTree {
	root := t.Root()
	if root < 0 {
		return svgTree{}
	}
	parent, edge := t.Parents(root)

	maxSz := 0
	nodes := make(map[int]*node, t.Nodes())
	for id := range t.Preorder(root) {
		var anc *node
		x := 0.0
		if p := parent[id]; p >= 0 {
			anc = nodes[p]
			b := t.Edge(edge[id])
			l := b.Length
			if !b.HasLength {
				l = 1
			}
			x = anc.x + l*xStep
		}

		n := &node{
			x:    x,
			name: t.Node(id).Name,
			anc:  anc,
		}
		if anc == nil {
			n.x = 10
		} else {
			anc.desc = append(anc.desc, n)
		}
		nodes[id] = n
		if !noNames && len(n.name) > maxSz {
			maxSz = len(n.name)
		}
	}

	s := svgTree{root: nodes[root], taxSz: maxSz}
	s.prepare(s.root)
	s.y = s.y * yStep
	return s
}

// prepare sets the vertical position
// of every node:
// terminals are stacked
// in traversal order,
// and an internal node is centered
// between its descendants.
func (s *svgTree) prepare(n *node) {
	if n.x > s.x {
		s.x = n.x
	}

	if n.desc == nil {
		n.y = s.y*yStep + 5
		s.y++
		return
	}

	botY := 0
	topY := math.MaxInt
	for _, d := range n.desc {
		s.prepare(d)
		if d.y < topY {
			topY = d.y
		}
		if d.y > botY {
			botY = d.y
		}
	}
	n.topY = topY
	n.botY = botY
	n.y = topY + (botY-topY)/2
}

func (s *svgTree) draw(w io.Writer) error {
	fmt.Fprintf(w, "%s", xml.Header)
	e := xml.NewEncoder(w)
	svg := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "height"}, Value: strconv.Itoa(s.y + 5)},
			// assume that each character has 6 pixels wide
			{Name: xml.Name{Local: "width"}, Value: strconv.Itoa(int(s.x) + s.taxSz*6 + 20)},
			{Name: xml.Name{Local: "xmlns"}, Value: "http://www.w3.org/2000/svg"},
		},
	}
	e.EncodeToken(svg)

	g := xml.StartElement{
		Name: xml.Name{Local: "g"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "stroke-width"}, Value: "2"},
			{Name: xml.Name{Local: "stroke"}, Value: "black"},
			{Name: xml.Name{Local: "stroke-linecap"}, Value: "round"},
			{Name: xml.Name{Local: "font-family"}, Value: "Verdana"},
			{Name: xml.Name{Local: "font-size"}, Value: "10"},
		},
	}
	e.EncodeToken(g)

	if s.root != nil {
		s.root.draw(e)
		if !noNames {
			s.root.label(e)
		}
	}

	e.EncodeToken(g.End())
	e.EncodeToken(svg.End())
	return e.Flush()
}

func (n node) draw(e *xml.Encoder) {
	// horizontal line
	ln := xml.StartElement{
		Name: xml.Name{Local: "line"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "x1"}, Value: strconv.Itoa(int(n.x - 5))},
			{Name: xml.Name{Local: "y1"}, Value: strconv.Itoa(n.y)},
			{Name: xml.Name{Local: "x2"}, Value: strconv.Itoa(int(n.x))},
			{Name: xml.Name{Local: "y2"}, Value: strconv.Itoa(n.y)},
		},
	}
	if n.anc != nil {
		ln.Attr[0].Value = strconv.Itoa(int(n.anc.x))
	}
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())

	if n.desc == nil {
		return
	}

	// vertical line over the descendants
	ln.Attr[0].Value = ln.Attr[2].Value
	ln.Attr[1].Value = strconv.Itoa(n.topY)
	ln.Attr[3].Value = strconv.Itoa(n.botY)
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())

	for _, d := range n.desc {
		d.draw(e)
	}
}

func (n node) label(e *xml.Encoder) {
	if n.desc == nil {
		if n.name == "" {
			return
		}
		tx := xml.StartElement{
			Name: xml.Name{Local: "text"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x"}, Value: strconv.Itoa(int(n.x + 10))},
				{Name: xml.Name{Local: "y"}, Value: strconv.Itoa(n.y + 5)},
				{Name: xml.Name{Local: "stroke-width"}, Value: "0"},
			},
		}
		e.EncodeToken(tx)
		e.EncodeToken(xml.CharData(n.name))
		e.EncodeToken(tx.End())
		return
	}

	for _, d := range n.desc {
		d.label(e)
	}
}
