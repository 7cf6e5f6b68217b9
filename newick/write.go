// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/js-arias/phylotree/tree"
)

// Format writes a tree as a Newick text,
// with elements filled by the given adapter.
// An empty tree is written
// as a bare semicolon.
func Format[N, E any](t *tree.Tree[N, E], ad Adapter[N, E], opt WriteOptions) string {
	elems := ToElements(t, ad)

	var b strings.Builder
	if len(elems) > 0 {
		render(&b, elems, 0, opt)
	}
	b.WriteByte(';')
	return b.String()
}

// Write writes trees with the default
// Node and Branch payloads to w,
// one tree per line.
func Write(w io.Writer, trees []*tree.Tree[Node, Branch], opt WriteOptions) error {
	bw := bufio.NewWriter(w)
	for _, t := range trees {
		if _, err := bw.WriteString(Format(t, Default(), opt)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes trees with the default
// Node and Branch payloads
// to the given file.
func WriteFile(name string, trees []*tree.Tree[Node, Branch], opt WriteOptions) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := Write(f, trees, opt); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}

// ToElements flattens a tree topology
// into an element list,
// using a roundtrip traversal
// from the current root:
// one element is produced
// for each node enter event,
// with the depth of the node,
// so the parent element
// precedes its children
// and siblings keep
// their edge insertion order.
func ToElements[N, E any](t *tree.Tree[N, E], ad Adapter[N, E]) []Element {
	root := t.Root()
	if root < 0 {
		return nil
	}
	_, edge := t.Parents(root)

	var elems []Element
	depth := 0
	for ev, n := range t.Roundtrip(root) {
		if ev == tree.Exit {
			depth--
			continue
		}
		e := Element{Depth: depth}
		ad.nodeTo(t.Node(n), &e)
		if depth > 0 {
			ad.edgeTo(t.Edge(edge[n]), &e)
		}
		elems = append(elems, e)
		depth++
	}
	return elems
}

// render writes the element at index i
// and all its children
// and returns the index
// of the first element
// outside its subtree.
func render(b *strings.Builder, elems []Element, i int, opt WriteOptions) int {
	e := elems[i]
	j := i + 1
	if j < len(elems) && elems[j].Depth == e.Depth+1 {
		b.WriteByte('(')
		first := true
		for j < len(elems) && elems[j].Depth == e.Depth+1 {
			if !first {
				b.WriteByte(',')
			}
			first = false
			j = render(b, elems, j, opt)
		}
		b.WriteByte(')')
	}

	if opt.Names {
		b.WriteString(quote(e.Name))
	}
	if opt.Lengths && e.HasLength {
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(e.Length, 'g', -1, 64))
	}
	if opt.Comments {
		for _, c := range e.Comments {
			b.WriteByte('[')
			b.WriteString(c)
			b.WriteByte(']')
		}
	}
	if opt.Tags {
		for _, tg := range e.Tags {
			b.WriteByte('{')
			b.WriteString(tg)
			b.WriteByte('}')
		}
	}
	return j
}

// quote returns a name
// in a form that can be read back:
// names with spaces, quotes,
// or any character with a meaning
// in the Newick grammar
// are single quoted
// with backslash escapes.
func quote(name string) string {
	if name == "" {
		return ""
	}
	plain := !strings.ContainsAny(name, " \t\n\r\v\f\b()[]{}'\":;,+-*/<>?!^=%&|\\")
	if plain {
		// the name must scan back as a single token:
		// a symbol starting with a letter or an underscore,
		// or a number
		r, _ := utf8.DecodeRuneInString(name)
		switch {
		case r == '_' || unicode.IsLetter(r):
		case name[0] >= '0' && name[0] <= '9':
			if _, err := strconv.ParseFloat(name, 64); err != nil {
				plain = false
			}
		default:
			plain = false
		}
	}
	if plain {
		return name
	}

	var b strings.Builder
	b.WriteByte('\'')
	for i := 0; i < len(name); i++ {
		switch c := name[i]; c {
		case '\'', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
