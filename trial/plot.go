// SPDX-License-Identifier: MIT

package trial

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/slae/iterative"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Histogram defaults.
const (
	DefaultHistogramBins = 20
	histogramWidth       = 8 * vg.Inch
	histogramHeight      = 5 * vg.Inch
)

var histogramColors = map[iterative.Method]color.Color{
	iterative.MethodJacobi:      color.NRGBA{R: 31, G: 119, B: 180, A: 160},
	iterative.MethodGaussSeidel: color.NRGBA{R: 255, G: 127, B: 14, A: 160},
}

// PlotHistogram saves a histogram of converged sweep counts for both methods
// to path. The image format follows the extension (.png, .svg, .pdf, ...).
// bins < 1 falls back to DefaultHistogramBins.
func PlotHistogram(r Report, path string, bins int) error {
	if bins < 1 {
		bins = DefaultHistogramBins
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Sweeps to converge (%d trials, n=%d, eps=%g)", r.Trials, r.Unknowns, r.Epsilon)
	p.X.Label.Text = "iterations"
	p.Y.Label.Text = "trials"

	var plotted int
	for _, m := range iterative.Methods {
		s := r.ByMethod(m)
		if len(s.Iterations) == 0 {
			continue
		}
		values := make(plotter.Values, len(s.Iterations))
		for i, it := range s.Iterations {
			values[i] = float64(it)
		}
		h, err := plotter.NewHist(values, bins)
		if err != nil {
			return fmt.Errorf("PlotHistogram: %s: %w", m, err)
		}
		h.FillColor = histogramColors[m]
		p.Add(h)
		p.Legend.Add(m.String(), h)
		plotted++
	}
	if plotted == 0 {
		return ErrNothingToPlot
	}

	if err := p.Save(histogramWidth, histogramHeight, path); err != nil {
		return fmt.Errorf("PlotHistogram: %w", err)
	}

	return nil
}
