// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/js-arias/phylotree/lexer"
	"github.com/js-arias/phylotree/tree"
)

// Parse parses the text of a single Newick tree
// and returns its topology,
// with payloads built by the given adapter.
// Any content after the terminating semicolon,
// other than whitespace,
// is an error;
// use Read for inputs with several trees.
func Parse[N, E any](text string, ad Adapter[N, E], opt ParseOptions) (*tree.Tree[N, E], error) {
	tokens, err := scan(text, opt)
	if err != nil {
		return nil, err
	}
	elems, rest, err := collect(tokens, opt)
	if err != nil {
		return nil, err
	}
	for _, tok := range rest {
		if tok.Kind == lexer.White {
			continue
		}
		return nil, syntaxErr(tok.Line, tok.Column, "unexpected %s after the tree", tok.Kind)
	}
	return FromElements(elems, ad)
}

// Read reads all the Newick trees of r,
// with the default Node and Branch payloads
// and with comments and tags preserved.
func Read(r io.Reader) ([]*tree.Tree[Node, Branch], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	opt := ParseOptions{Comments: true, Tags: true}
	tokens, err := scan(string(data), opt)
	if err != nil {
		return nil, err
	}

	var trees []*tree.Tree[Node, Branch]
	for len(tokens) > 0 {
		elems, rest, err := collect(tokens, opt)
		if err != nil {
			return nil, err
		}
		if elems == nil && rest == nil {
			break
		}
		t, err := FromElements(elems, Default())
		if err != nil {
			return nil, err
		}
		trees = append(trees, t)
		tokens = rest
	}
	return trees, nil
}

// ReadFile reads all the Newick trees
// of the given file.
func ReadFile(name string) ([]*tree.Tree[Node, Branch], error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	trees, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return trees, nil
}

// scan tokenizes a Newick text
// and checks for lexical errors
// and unbalanced brackets.
func scan(text string, opt ParseOptions) ([]lexer.Token, error) {
	tokens := lexer.Scan(text, lexer.Options{
		IncludeComments:  opt.Comments,
		GlueSignToNumber: true,
	})
	if lexErrs := lexer.Errors(tokens); len(lexErrs) > 0 {
		errs := make([]error, 0, len(lexErrs))
		for _, e := range lexErrs {
			errs = append(errs, e)
		}
		return nil, errors.Join(errs...)
	}
	if err := lexer.ValidateBrackets(tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// collect consumes tokens up to
// the semicolon that ends a tree
// and returns the element list of the tree
// along with the remaining tokens.
// On an input without any tree content
// it returns nil elements and nil rest.
//
// The elements are produced
// with the parent group
// before its children
// (so a name found after a closing
// parenthesis is attached
// to the element opened
// at the matching parenthesis),
// sibling elements in input order,
// and the depth following
// the parenthesis nesting.
func collect(tokens []lexer.Token, opt ParseOptions) (elems []Element, rest []lexer.Token, err error) {
	var stack []int // indices of the open parent elements
	depth := 0
	cur := -1 // index of the element open for annotation
	sawAny := false

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Kind {
		case lexer.White:
			continue
		case lexer.Comment:
			target := cur
			if target < 0 {
				target = len(elems) - 1
			}
			if target < 0 {
				return nil, nil, syntaxErr(tok.Line, tok.Column, "comment before any tree element")
			}
			elems[target].Comments = append(elems[target].Comments, tok.Value())
			continue
		case lexer.Symbol, lexer.String, lexer.Number:
			sawAny = true
			if cur < 0 {
				elems = append(elems, Element{Depth: depth})
				cur = len(elems) - 1
			}
			if elems[cur].Name != "" {
				return nil, nil, syntaxErr(tok.Line, tok.Column, "unexpected name %q", tok.Value())
			}
			elems[cur].Name = tok.Value()
		case lexer.Operator:
			sawAny = true
			switch tok.Text[0] {
			case ',':
				if depth == 0 {
					return nil, nil, syntaxErr(tok.Line, tok.Column, "unexpected ','")
				}
				if cur < 0 {
					elems = append(elems, Element{Depth: depth})
				}
				cur = -1
			case ':':
				if cur < 0 {
					elems = append(elems, Element{Depth: depth})
					cur = len(elems) - 1
				}
				j := i + 1
				for j < len(tokens) && tokens[j].Kind == lexer.White {
					j++
				}
				if j >= len(tokens) || tokens[j].Kind != lexer.Number {
					return nil, nil, syntaxErr(tok.Line, tok.Column, "expecting branch length")
				}
				v, err := strconv.ParseFloat(tokens[j].Text, 64)
				if err != nil {
					return nil, nil, syntaxErr(tokens[j].Line, tokens[j].Column, "invalid branch length %q", tokens[j].Text)
				}
				if elems[cur].HasLength {
					return nil, nil, syntaxErr(tok.Line, tok.Column, "repeated branch length")
				}
				elems[cur].Length = v
				elems[cur].HasLength = true
				i = j
			case ';':
				if depth != 0 {
					return nil, nil, syntaxErr(tok.Line, tok.Column, "unexpected ';' inside a group")
				}
				return elems, tokens[i+1:], nil
			default:
				return nil, nil, syntaxErr(tok.Line, tok.Column, "unexpected operator %q", tok.Text)
			}
		case lexer.Bracket:
			sawAny = true
			switch tok.Text[0] {
			case '(':
				if cur >= 0 {
					return nil, nil, syntaxErr(tok.Line, tok.Column, "unexpected '('")
				}
				elems = append(elems, Element{Depth: depth})
				stack = append(stack, len(elems)-1)
				depth++
			case ')':
				if len(stack) == 0 {
					return nil, nil, syntaxErr(tok.Line, tok.Column, "unexpected ')'")
				}
				if cur < 0 {
					elems = append(elems, Element{Depth: depth})
				}
				depth--
				cur = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			case '{':
				if !opt.Tags {
					return nil, nil, syntaxErr(tok.Line, tok.Column, "unexpected '{'")
				}
				target := cur
				if target < 0 {
					target = len(elems) - 1
				}
				if target < 0 {
					return nil, nil, syntaxErr(tok.Line, tok.Column, "tag before any tree element")
				}
				j := i + 1
				if j >= len(tokens) || tokens[j].Kind != lexer.Number {
					return nil, nil, syntaxErr(tok.Line, tok.Column, "expecting tag value")
				}
				elems[target].Tags = append(elems[target].Tags, tokens[j].Text)
				j++
				if j >= len(tokens) || !tokens[j].IsBracket('}') {
					return nil, nil, syntaxErr(tok.Line, tok.Column, "unclosed tag")
				}
				i = j
			default:
				return nil, nil, syntaxErr(tok.Line, tok.Column, "unexpected %q", tok.Text)
			}
		}
	}

	if !sawAny {
		return nil, nil, nil
	}
	last := tokens[len(tokens)-1]
	return nil, nil, syntaxErr(last.Line, last.Column, "unexpected end of text, expecting ';'")
}

// FromElements assembles an element list
// into a tree topology,
// with payloads built by the given adapter.
// Elements are consumed in order:
// an element one level deeper
// than the previous one
// starts a new child group,
// and an element at a smaller depth
// closes all the deeper open groups.
// The branch length of the root element,
// if any, is discarded,
// as the root has no parent edge.
func FromElements[N, E any](elems []Element, ad Adapter[N, E]) (*tree.Tree[N, E], error) {
	t := tree.New[N, E]()
	var stack []int // node ID at each open depth
	for _, e := range elems {
		if e.Depth > len(stack) {
			return nil, syntaxErr(0, 0, "element depth jumps from %d to %d", len(stack)-1, e.Depth)
		}
		if e.Depth == 0 && t.Nodes() != 0 {
			return nil, syntaxErr(0, 0, "unexpected second root element")
		}
		stack = stack[:e.Depth]
		n := t.AddNode(ad.nodeFrom(e))
		if e.Depth > 0 {
			if _, err := t.AddEdge(stack[e.Depth-1], n, ad.edgeFrom(e)); err != nil {
				return nil, err
			}
		}
		stack = append(stack, n)
	}
	return t, nil
}
