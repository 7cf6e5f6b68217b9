// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// trees in Newick files as SVG files.
package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotree/newick"
	"github.com/js-arias/phylotree/tree"
)

var Command = &command.Command{
	Usage: `draw [--step <value>] [--nonames]
	[-o|--output <out-prefix>] [<tree-file>...]`,
	Short: "draw trees in Newick files as SVG files",
	Long: `
Command draw reads one or more Newick tree files and draws each tree into a
SVG-encoded file.

One or more tree files can be given as arguments. If no file is given, the
trees will be read from the standard input.

The horizontal position of each node is given by the sum of the branch
lengths from the root; in a tree without branch lengths every branch counts
as a single unit. By default, 10 pixel units will be used per length unit;
use the flag --step to define a different value (it can have decimal
points).

By default, terminal names will be drawn. If the flag --nonames is given,
only the topology will be drawn.

The name of an output file is built from the name of its input file and the
position of the tree in the file. Use the flag -o, or --output, to define a
prefix for the output files.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var noNames bool
var stepX float64
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&noNames, "nonames", false, "")
	c.Flags().Float64Var(&stepX, "step", 10, "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) == 0 {
		args = append(args, "-")
	}

	for _, a := range args {
		trees, err := readTrees(c.Stdin(), a)
		if err != nil {
			return err
		}
		base := a
		if a == "-" {
			base = "stdin"
		}
		for i, t := range trees {
			name := fmt.Sprintf("%s-%d.svg", base, i)
			if outPrefix != "" {
				name = fmt.Sprintf("%s-%d.svg", outPrefix, i)
			}
			if err := writeSVG(name, copyTree(t, stepX)); err != nil {
				return err
			}
		}
	}
	return nil
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

func writeSVG(name string, t svgTree) (err error) {
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

	bw := bufio.NewWriter(f)
	if err := t.draw(bw); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
