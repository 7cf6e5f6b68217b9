// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package format implements a command
// to rewrite Newick files
// in a canonical form.
package format

import (
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotree/newick"
	"github.com/js-arias/phylotree/tree"
)

var Command = &command.Command{
	Usage: `format [--nonames] [--nolengths]
	[--comments] [--tags]
	[-o|--output <file>] [<tree-file>...]`,
	Short: "rewrite Newick files in a canonical form",
	Long: `
Command format reads one or more Newick tree files and rewrites the trees,
one per line, without any whitespace between the tree elements.

One or more tree files can be given as arguments. If no file is given, the
trees will be read from the standard input.

By default, names and branch lengths are written. Use the flag --nonames to
omit the names, and the flag --nolengths to omit the branch lengths; with
both flags the output is the bare parenthetical topology of each tree.
Comments and tags found in the input are discarded by default; use the flags
--comments and --tags to keep them.

By default, the trees are written to the standard output. Use the flag
--output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var noNames bool
var noLengths bool
var withComments bool
var withTags bool
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&noNames, "nonames", false, "")
	c.Flags().BoolVar(&noLengths, "nolengths", false, "")
	c.Flags().BoolVar(&withComments, "comments", false, "")
	c.Flags().BoolVar(&withTags, "tags", false, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) == 0 {
		args = append(args, "-")
	}

	var trees []*tree.Tree[newick.Node, newick.Branch]
	for _, a := range args {
		ts, err := readTrees(c.Stdin(), a)
		if err != nil {
			return err
		}
		trees = append(trees, ts...)
	}

	opt := newick.WriteOptions{
		Names:    !noNames,
		Lengths:  !noLengths,
		Comments: withComments,
		Tags:     withTags,
	}
	if output != "" {
		return newick.WriteFile(output, trees, opt)
	}
	return newick.Write(c.Stdout(), trees, opt)
}

func readTrees(r io.Reader, name string) ([]*tree.Tree[newick.Node, newick.Branch], error) {
	if name != "-" {
		return newick.ReadFile(name)
	}

	trees, err := newick.Read(r)
	if err != nil {
		return nil, fmt.Errorf("while reading stdin: %v", err)
	}
	return trees, nil
}
