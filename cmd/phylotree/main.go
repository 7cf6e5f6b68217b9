// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PhyloTree is a tool to inspect and transform
// phylogenetic trees in Newick files.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phylotree/cmd/phylotree/draw"
	"github.com/js-arias/phylotree/cmd/phylotree/format"
	"github.com/js-arias/phylotree/cmd/phylotree/stats"
	"github.com/js-arias/phylotree/cmd/phylotree/tab"
	"github.com/js-arias/phylotree/cmd/phylotree/validate"
)

var app = &command.Command{
	Usage: "phylotree <command> [<argument>...]",
	Short: "a tool to work with phylogenetic trees in Newick files",
}

func init() {
	app.Add(draw.Command)
	app.Add(format.Command)
	app.Add(stats.Command)
	app.Add(tab.Command)
	app.Add(validate.Command)

	app.Add(newickGuide)
}

func main() {
	app.Main()
}

var newickGuide = &command.Command{
	Usage: "newick",
	Short: "about the Newick tree format",
	Long: `
The Newick format stores a phylogenetic tree as a nested list of groups
enclosed in parentheses, with the descendants of a node separated by commas.
Any group, as well as any terminal, can be followed by a name and by a branch
length preceded by a colon. The tree ends with a semicolon:

	(gibbon:13.6,(orangutan:11.1,(chimp:5.5,human:5.5):5.6):2.5):13.6;

Names with spaces or punctuation must be enclosed in single or double quotes.
Comments are enclosed in square brackets and refer to the tree element that
precedes them. Some placement formats also attach a numeric tag in curly
braces, as in {0}, to a tree element.

A file can store several trees, each one ended by its own semicolon.
	`,
}
