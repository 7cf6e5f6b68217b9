// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tab implements a command
// to convert Newick trees
// into tab-delimited tree files.
package tab

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: `tab [--name <name>] [--age <value>]
	[-o|--output <file>] [<tree-file>...]`,
	Short: "convert Newick trees into tab-delimited tree files",
	Long: `
Command tab reads one or more Newick tree files with time calibrated trees
and writes them as a single tab-delimited tree file, the format used by
timetree-based tools.

One or more tree files can be given as arguments. If no file is given, the
trees will be read from the standard input.

Each tree must be time calibrated, with branch lengths in million years. By
default, the age of the root will be calculated from the largest branch
length between any terminal and the root. To set a different root age, use
the flag --age, with a value in million years.

The name of each tree is built from the value of the flag --name, by default
"tree", followed by the position of the tree in the input.

By default, the resulting file is written to the standard output. Use the
flag --output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

const millionYears = 1_000_000

var treeName string
var rootAge float64
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "name", "tree", "")
	c.Flags().Float64Var(&rootAge, "age", 0, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) == 0 {
		args = append(args, "-")
	}

	tc := timetree.NewCollection()
	for i, a := range args {
		tn := treeName
		if i > 0 {
			tn = fmt.Sprintf("%s.%d", treeName, i)
		}
		nc, err := readNewick(c.Stdin(), a, tn)
		if err != nil {
			return err
		}
		for _, n := range nc.Names() {
			t := nc.Tree(n)
			if err := tc.Add(t); err != nil {
				return fmt.Errorf("when adding trees from %q: %v", a, err)
			}
		}
	}

	if output != "" {
		return writeTrees(output, tc)
	}
	if err := tc.TSV(c.Stdout()); err != nil {
		return fmt.Errorf("while writing trees: %v", err)
	}
	return nil
}

func readNewick(r io.Reader, name, treeName string) (*timetree.Collection, error) {
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	c, err := timetree.Newick(r, treeName, int64(rootAge*millionYears))
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

func writeTrees(name string, tc *timetree.Collection) (err error) {
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

	if err := tc.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
