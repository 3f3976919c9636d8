// Package plot renders light-curve scatter plots to image files.
package plot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/astrolab/starcurve/pkg/models"
)

// Plot is a stateful builder for a marker plot. Layers are added with
// AddMarkers and the finished figure is written out by Render.
type Plot struct {
	p *plot.Plot
}

// MarkerLayer is one scatter layer on a plot.
type MarkerLayer struct {
	Label   string
	Points  int
	scatter *plotter.Scatter
}

// New creates an empty plot with a title.
func New(title string) *Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time"
	return &Plot{p: p}
}

// SetXLabel sets the horizontal axis label.
func (pl *Plot) SetXLabel(label string) {
	pl.p.X.Label.Text = label
}

// SetYLabel sets the vertical axis label.
func (pl *Plot) SetYLabel(label string) {
	pl.p.Y.Label.Text = label
}

// AddMarkers plots one measurement column of a time series as a marker
// layer. NaN cells (cadence gaps) are skipped. Size is the marker
// radius in points.
func (pl *Plot) AddMarkers(ts *models.TimeSeries, column, label string, size float64) (*MarkerLayer, error) {
	values, err := ts.Column(column)
	if err != nil {
		return nil, err
	}

	pts := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsNaN(ts.Time[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: ts.Time[i], Y: v})
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("building scatter layer: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(size)

	pl.p.Add(scatter)
	if label != "" {
		pl.p.Legend.Add(label, scatter)
	}

	return &MarkerLayer{Label: label, Points: len(pts), scatter: scatter}, nil
}

// Render writes the figure to path. The image format follows the file
// extension (.png, .svg, .pdf). Render blocks until the file is
// completely written.
func (pl *Plot) Render(path string) error {
	if err := pl.p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("rendering plot: %w", err)
	}
	return nil
}
