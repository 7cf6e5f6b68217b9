// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats implements a command
// to report statistics
// of the trees in Newick files.
package stats

import (
	"fmt"
	"io"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotree/newick"
	"github.com/js-arias/phylotree/tree"
	"gonum.org/v1/gonum/stat"
)

var Command = &command.Command{
	Usage: `stats [--plot <out-prefix>]
	[<tree-file>...]`,
	Short: "report statistics of trees in Newick files",
	Long: `
Command stats reads one or more Newick tree files and reports, for each tree,
the number of nodes, edges, and terminals, the total tree length, and the
mean, standard deviation, and quantiles of its branch lengths.

One or more tree files can be given as arguments. If no file is given, the
trees will be read from the standard input.

The results are printed as a tab-delimited table with a header, one row per
tree, identified by its file and its position in the file.

If the flag --plot is defined, a histogram of the branch lengths of each
tree will be saved as a PNG file using the indicated prefix for the file
names.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var plotPrefix string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&plotPrefix, "plot", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) == 0 {
		args = append(args, "-")
	}

	fmt.Fprintf(c.Stdout(), "file\ttree\tnodes\tedges\tterms\tlength\tmean\tstddev\tmedian\tq05\tq95\n")
	for _, a := range args {
		trees, err := readTrees(c.Stdin(), a)
		if err != nil {
			return err
		}
		for i, t := range trees {
			r := report(t)
			fmt.Fprintf(c.Stdout(), "%s\t%d\t%d\t%d\t%d\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\n",
				a, i, r.nodes, r.edges, r.terms, r.length,
				r.mean, r.stddev, r.median, r.q05, r.q95)
			if plotPrefix != "" {
				if err := plotLengths(fmt.Sprintf("%s-%d.png", plotPrefix, i), r.lengths); err != nil {
					return err
				}
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

type treeReport struct {
	nodes  int
	edges  int
	terms  int
	length float64

	mean   float64
	stddev float64
	median float64
	q05    float64
	q95    float64

	lengths []float64
}

func report(t *tree.Tree[newick.Node, newick.Branch]) treeReport {
	r := treeReport{
		nodes: t.Nodes(),
		edges: t.Edges(),
	}
	for n := range t.Preorder(t.Root()) {
		if t.IsTerm(n) {
			r.terms++
		}
	}

	for e := 0; e < t.Edges(); e++ {
		b := t.Edge(e)
		if !b.HasLength {
			continue
		}
		r.lengths = append(r.lengths, b.Length)
		r.length += b.Length
	}
	if len(r.lengths) == 0 {
		return r
	}

	slices.Sort(r.lengths)
	r.mean = stat.Mean(r.lengths, nil)
	r.stddev = stat.StdDev(r.lengths, nil)
	r.median = stat.Quantile(0.5, stat.Empirical, r.lengths, nil)
	r.q05 = stat.Quantile(0.05, stat.Empirical, r.lengths, nil)
	r.q95 = stat.Quantile(0.95, stat.Empirical, r.lengths, nil)
	return r
}
