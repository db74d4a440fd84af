// Package diagram renders a phasor registry as an annotated 2D vector plot.
//
// The package is a pure consumer of the registry: it reads resolved start and
// end points, labels, and colors, and owns everything about presentation
// (arrows, labels, axes, auto-scaling, export).
package diagram

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"phasor-diagram/internal/phasor"
	"phasor-diagram/pkg/geometry"
)

// Options configures how a registry is rendered.
type Options struct {
	Title string

	// Grid draws the background grid; ShowAxes draws dashed reference lines
	// through the origin.
	Grid     bool
	ShowAxes bool

	// LabelOffset displaces each label from the phasor midpoint, in data
	// units, along the phasor's own direction.
	LabelOffset float64

	// LineWidth is the arrow shaft width; HeadLength the arrowhead size.
	LineWidth  vg.Length
	HeadLength vg.Length

	// MarginFrac is the fraction of the diagram span added as padding on
	// every side when auto-scaling.
	MarginFrac float64

	// Extras are additional plotters drawn under the phasors, e.g. a
	// reference circle. Extras that implement plot.DataRanger take part in
	// auto-scaling.
	Extras []plot.Plotter
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		Title:       "Phasor Diagram",
		Grid:        true,
		ShowAxes:    true,
		LabelOffset: 0.1,
		LineWidth:   vg.Points(1.5),
		HeadLength:  vg.Points(8),
		MarginFrac:  0.1,
	}
}

// Render builds a plot of every phasor in the registry: one arrow per
// phasor in its stored color, a label near each midpoint, and view ranges
// auto-scaled to fit all start and end points with equal aspect.
func Render(reg *phasor.Registry, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	if opts.Grid {
		p.Add(plotter.NewGrid())
	}
	if opts.ShowAxes {
		p.Add(newZeroAxes())
	}

	bounds, haveBounds := reg.Bounds()
	for _, extra := range opts.Extras {
		p.Add(extra)
		if dr, ok := extra.(plot.DataRanger); ok {
			xmin, xmax, ymin, ymax := dr.DataRange()
			r := geometry.NewRect(xmin, ymin, xmax-xmin, ymax-ymin)
			if haveBounds {
				bounds = bounds.Union(r)
			} else {
				bounds, haveBounds = r, true
			}
		}
	}

	phasors := reg.Phasors()
	for _, ph := range phasors {
		p.Add(newArrow(ph, opts.LineWidth, opts.HeadLength))
	}

	if len(phasors) > 0 {
		labels, err := buildLabels(phasors, opts.LabelOffset)
		if err != nil {
			return nil, fmt.Errorf("diagram labels: %w", err)
		}
		p.Add(labels)
	}

	xmin, xmax, ymin, ymax := viewRanges(bounds, haveBounds, opts.MarginFrac)
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = ymin, ymax

	return p, nil
}

// Save renders the registry and writes the plot to path. The format is
// chosen from the file extension (.png, .svg, .pdf, ...).
func Save(reg *phasor.Registry, opts Options, width, height vg.Length, path string) error {
	p, err := Render(reg, opts)
	if err != nil {
		return err
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("save diagram: %w", err)
	}
	return nil
}

// buildLabels places each phasor's name near its midpoint, displaced by
// offset along the phasor's direction, in the phasor's color.
func buildLabels(phasors []phasor.Phasor, offset float64) (*plotter.Labels, error) {
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(phasors)),
		Labels: make([]string, len(phasors)),
	}
	for i, ph := range phasors {
		at := labelPoint(ph, offset)
		xyl.XYs[i] = plotter.XY{X: at.X, Y: at.Y}
		xyl.Labels[i] = ph.Name
	}

	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	for i, ph := range phasors {
		labels.TextStyle[i].Color = ph.Color
	}
	return labels, nil
}

// labelPoint returns where a phasor's label is anchored.
func labelPoint(ph phasor.Phasor, offset float64) geometry.Point2D {
	mid := ph.Midpoint()
	if ph.Magnitude == 0 {
		return mid.Add(geometry.Point2D{X: offset, Y: offset})
	}
	return mid.PolarOffset(offset, ph.AngleDeg*math.Pi/180)
}

// viewRanges computes the plot ranges: the given bounds padded by
// marginFrac and squared up so both axes span the same distance (equal
// aspect). An empty diagram gets a unit view around the origin.
func viewRanges(bounds geometry.Rect, haveBounds bool, marginFrac float64) (xmin, xmax, ymin, ymax float64) {
	if !haveBounds {
		return -1, 1, -1, 1
	}

	span := math.Max(bounds.Width, bounds.Height)
	margin := math.Max(1, marginFrac*span)
	bounds = bounds.Expand(margin)

	// Square the view around the bounds centre.
	side := math.Max(bounds.Width, bounds.Height)
	center := bounds.Center()
	return center.X - side/2, center.X + side/2,
		center.Y - side/2, center.Y + side/2
}
