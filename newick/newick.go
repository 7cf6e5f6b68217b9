// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick implements reading and writing
// of phylogenetic trees
// in the Newick parenthetical format.
//
// A Newick tree is a nested list
// of parenthesized groups,
// with an optional name
// and an optional branch length
// after each group or leaf,
// terminated by a semicolon:
//
//	(gibbon:13.6,(orangutan:11.1,(gorilla:8.5,(chimp:5.5,human:5.5):3.0):2.6):2.5):13.6;
//
// Comments enclosed in square brackets
// and tags enclosed in curly braces
// (used by some placement formats)
// can be attached to any tree element
// and are preserved when enabled.
//
// Parsing goes through three stages:
// the text is scanned into tokens
// (package lexer),
// the tokens are collected
// into a flat list of elements
// annotated with their nesting depth,
// and the elements are assembled
// into a tree topology
// (package tree).
// Writing is the same pipeline in reverse.
// The payloads of the produced tree
// are built by an Adapter,
// so any payload type can be read
// from, and written to, Newick files
// without the tree knowing about the format.
package newick

import "fmt"

// An Element is a flat intermediate record
// between the Newick text
// and the tree topology.
// Each element describes one tree node:
// its name,
// its branch length
// (the length of the edge
// that connects it to its parent),
// its nesting depth,
// and any comments or tags
// attached to it.
//
// In an element list
// the depth of consecutive elements
// grows at most by one
// (a new child group)
// and may shrink by any amount
// (closing one or more groups);
// children follow their parent,
// and sibling elements appear
// in the order they have in the text.
type Element struct {
	Name      string
	Length    float64
	HasLength bool
	Depth     int
	Comments  []string
	Tags      []string
}

// A SyntaxError is a grammar error
// found while parsing a Newick text.
type SyntaxError struct {
	Line   int
	Column int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("newick: %d:%d: %s", e.Line, e.Column, e.Reason)
}

func syntaxErr(line, col int, format string, v ...interface{}) *SyntaxError {
	return &SyntaxError{
		Line:   line,
		Column: col,
		Reason: fmt.Sprintf(format, v...),
	}
}

// ParseOptions are the options
// for parsing a Newick text.
type ParseOptions struct {
	// If true,
	// square bracket comments are kept
	// and attached to the nearest
	// preceding element.
	Comments bool

	// If true,
	// curly brace tags, as in {0},
	// are recognized
	// and attached to the nearest
	// preceding element.
	Tags bool
}

// WriteOptions are the options
// for writing a tree as a Newick text.
// Each flag enables one kind of data;
// with the zero value
// only the parenthetical structure
// is written.
type WriteOptions struct {
	// Write node names.
	Names bool

	// Write branch lengths.
	Lengths bool

	// Write comments.
	Comments bool

	// Write tags.
	Tags bool
}

// All returns the options
// to write every kind of data.
func All() WriteOptions {
	return WriteOptions{
		Names:    true,
		Lengths:  true,
		Comments: true,
		Tags:     true,
	}
}
