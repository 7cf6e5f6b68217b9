// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotLengths saves a histogram
// of the branch lengths of a tree
// as a PNG file.
func plotLengths(name string, lengths []float64) error {
	if len(lengths) == 0 {
		return nil
	}

	p := plot.New()
	p.Title.Text = "branch lengths"
	p.X.Label.Text = "length"
	p.Y.Label.Text = "branches"

	vals := make(plotter.Values, len(lengths))
	copy(vals, lengths)
	h, err := plotter.NewHist(vals, 20)
	if err != nil {
		return fmt.Errorf("while plotting %q: %v", name, err)
	}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, name); err != nil {
		return fmt.Errorf("while plotting %q: %v", name, err)
	}
	return nil
}
