package diagram

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"phasor-diagram/internal/phasor"
	"phasor-diagram/pkg/geometry"
)

// arrow draws one phasor as a line from start to end with a filled
// arrowhead at the tip. It reports its endpoints for auto-scaling.
type arrow struct {
	start, end geometry.Point2D
	color      color.RGBA
	width      vg.Length
	headLength vg.Length
}

func newArrow(ph phasor.Phasor, width, headLength vg.Length) *arrow {
	return &arrow{
		start:      ph.Start,
		end:        ph.End,
		color:      ph.Color,
		width:      width,
		headLength: headLength,
	}
}

// Plot implements plot.Plotter.
func (a *arrow) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	x0, y0 := trX(a.start.X), trY(a.start.Y)
	x1, y1 := trX(a.end.X), trY(a.end.Y)

	sty := draw.LineStyle{Color: a.color, Width: a.width}
	c.StrokeLine2(sty, x0, y0, x1, y1)

	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	if dx == 0 && dy == 0 {
		return // zero-length phasor: no head to draw
	}

	// Arrowhead: two barbs swept back from the tip.
	theta := math.Atan2(dy, dx)
	const barb = 5 * math.Pi / 6
	left := vg.Point{
		X: x1 + a.headLength*vg.Length(math.Cos(theta+barb)),
		Y: y1 + a.headLength*vg.Length(math.Sin(theta+barb)),
	}
	right := vg.Point{
		X: x1 + a.headLength*vg.Length(math.Cos(theta-barb)),
		Y: y1 + a.headLength*vg.Length(math.Sin(theta-barb)),
	}
	c.FillPolygon(a.color, []vg.Point{{X: x1, Y: y1}, left, right})
}

// DataRange implements plot.DataRanger so the plot can auto-scale to fit
// both endpoints.
func (a *arrow) DataRange() (xmin, xmax, ymin, ymax float64) {
	return math.Min(a.start.X, a.end.X), math.Max(a.start.X, a.end.X),
		math.Min(a.start.Y, a.end.Y), math.Max(a.start.Y, a.end.Y)
}

// zeroAxes draws dashed reference lines through the origin, spanning the
// whole plot area, when the origin is inside the view.
type zeroAxes struct {
	sty draw.LineStyle
}

func newZeroAxes() *zeroAxes {
	return &zeroAxes{
		sty: draw.LineStyle{
			Color:  color.Gray{Y: 96},
			Width:  vg.Points(0.5),
			Dashes: []vg.Length{vg.Points(4), vg.Points(3)},
		},
	}
}

// Plot implements plot.Plotter.
func (z *zeroAxes) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	if plt.X.Min <= 0 && plt.X.Max >= 0 {
		x := trX(0)
		c.StrokeLine2(z.sty, x, c.Min.Y, x, c.Max.Y)
	}
	if plt.Y.Min <= 0 && plt.Y.Max >= 0 {
		y := trY(0)
		c.StrokeLine2(z.sty, c.Min.X, y, c.Max.X, y)
	}
}

// ReferenceCircle is a dashed circle of a given radius, used by the
// single-phasor tool to show the locus of all end points with the same
// magnitude.
type ReferenceCircle struct {
	Center geometry.Point2D
	Radius float64
	Color  color.Color
	Width  vg.Length
}

// NewReferenceCircle creates a gray dashed reference circle.
func NewReferenceCircle(center geometry.Point2D, radius float64) *ReferenceCircle {
	return &ReferenceCircle{
		Center: center,
		Radius: radius,
		Color:  color.Gray{Y: 128},
		Width:  vg.Points(0.75),
	}
}

// Plot implements plot.Plotter. The radius is mapped through the X axis
// transform; with the equal-aspect ranges set by Render the circle stays
// round.
func (rc *ReferenceCircle) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	x := trX(rc.Center.X)
	y := trY(rc.Center.Y)
	r := trX(rc.Center.X+rc.Radius) - x
	if r <= 0 {
		return
	}

	var path vg.Path
	path.Move(vg.Point{X: x + r, Y: y})
	path.Arc(vg.Point{X: x, Y: y}, r, 0, 2*math.Pi)
	path.Close()

	c.SetColor(rc.Color)
	c.SetLineWidth(rc.Width)
	c.SetLineDash([]vg.Length{vg.Points(4), vg.Points(3)}, 0)
	c.Stroke(path)
}

// DataRange implements plot.DataRanger.
func (rc *ReferenceCircle) DataRange() (xmin, xmax, ymin, ymax float64) {
	return rc.Center.X - rc.Radius, rc.Center.X + rc.Radius,
		rc.Center.Y - rc.Radius, rc.Center.Y + rc.Radius
}
