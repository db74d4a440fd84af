package diagram

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"phasor-diagram/internal/phasor"
	"phasor-diagram/pkg/geometry"
)

const tol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

// demoRegistry builds the registry used by the rendering tests: a voltage
// chain plus a current phasor away from the origin.
func demoRegistry(t *testing.T) *phasor.Registry {
	t.Helper()
	r := phasor.NewRegistry()
	adds := []struct {
		name string
		spec phasor.Spec
	}{
		{"Vs", phasor.Spec{Geometry: phasor.Polar{Magnitude: 10}, Kind: phasor.KindVoltage}},
		{"Vl", phasor.Spec{
			Geometry: phasor.Polar{Magnitude: 2, AngleDeg: 150},
			Anchor:   phasor.RelativeTo{Name: "Vs", Point: phasor.RefEnd},
			Kind:     phasor.KindVoltage,
		}},
		{"I", phasor.Spec{
			Geometry: phasor.Polar{Magnitude: 5, AngleDeg: -30},
			Anchor:   phasor.Absolute{At: geometry.Point2D{X: 2, Y: 2}},
			Kind:     phasor.KindCurrent,
		}},
	}
	for _, a := range adds {
		if _, err := r.Add(a.name, a.spec); err != nil {
			t.Fatalf("Add(%q): %v", a.name, err)
		}
	}
	return r
}

func TestViewRangesEmpty(t *testing.T) {
	xmin, xmax, ymin, ymax := viewRanges(geometry.Rect{}, false, 0.1)
	if xmin != -1 || xmax != 1 || ymin != -1 || ymax != 1 {
		t.Errorf("empty view = (%v, %v, %v, %v), want unit view", xmin, xmax, ymin, ymax)
	}
}

func TestViewRangesEqualAspect(t *testing.T) {
	bounds := geometry.NewRect(0, 0, 10, 1)
	xmin, xmax, ymin, ymax := viewRanges(bounds, true, 0.1)

	if !almostEqual(xmax-xmin, ymax-ymin) {
		t.Errorf("spans differ: x %v, y %v", xmax-xmin, ymax-ymin)
	}
	// Margin is max(1, 0.1*10) = 1, so x runs -1..11 and y is squared to
	// the same 12-unit span around its centre.
	if !almostEqual(xmin, -1) || !almostEqual(xmax, 11) {
		t.Errorf("x range = (%v, %v), want (-1, 11)", xmin, xmax)
	}
	if !almostEqual(ymin, -5.5) || !almostEqual(ymax, 6.5) {
		t.Errorf("y range = (%v, %v), want (-5.5, 6.5)", ymin, ymax)
	}
}

func TestViewRangesMinimumMargin(t *testing.T) {
	// A single point has zero span; the view must still be non-degenerate.
	bounds := geometry.NewRect(3, 4, 0, 0)
	xmin, xmax, ymin, ymax := viewRanges(bounds, true, 0.1)
	if xmax-xmin <= 0 || ymax-ymin <= 0 {
		t.Fatalf("degenerate view (%v, %v, %v, %v)", xmin, xmax, ymin, ymax)
	}
	if !almostEqual(xmin, 2) || !almostEqual(xmax, 4) {
		t.Errorf("x range = (%v, %v), want (2, 4)", xmin, xmax)
	}
}

func TestLabelPoint(t *testing.T) {
	r := phasor.NewRegistry()
	p, err := r.Add("Vs", phasor.Spec{Geometry: phasor.Polar{Magnitude: 10}})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	at := labelPoint(p, 0.5)
	// Midpoint (5, 0), offset 0.5 along the 0-degree direction.
	if !almostEqual(at.X, 5.5) || !almostEqual(at.Y, 0) {
		t.Errorf("labelPoint = %v, want (5.5, 0)", at)
	}
}

func TestLabelPointZeroLength(t *testing.T) {
	r := phasor.NewRegistry()
	p, err := r.Add("Z", phasor.Spec{
		Geometry: phasor.Polar{Magnitude: 0},
		Anchor:   phasor.Absolute{At: geometry.Point2D{X: 1, Y: 1}},
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	at := labelPoint(p, 0.25)
	if !almostEqual(at.X, 1.25) || !almostEqual(at.Y, 1.25) {
		t.Errorf("labelPoint = %v, want (1.25, 1.25)", at)
	}
}

func TestArrowDataRange(t *testing.T) {
	a := &arrow{
		start: geometry.Point2D{X: 10, Y: 0},
		end:   geometry.Point2D{X: 8.27, Y: 1},
	}
	xmin, xmax, ymin, ymax := a.DataRange()
	if xmin != 8.27 || xmax != 10 || ymin != 0 || ymax != 1 {
		t.Errorf("DataRange = (%v, %v, %v, %v)", xmin, xmax, ymin, ymax)
	}
}

func TestReferenceCircleDataRange(t *testing.T) {
	rc := NewReferenceCircle(geometry.Point2D{X: 1, Y: 1}, 2)
	xmin, xmax, ymin, ymax := rc.DataRange()
	if xmin != -1 || xmax != 3 || ymin != -1 || ymax != 3 {
		t.Errorf("DataRange = (%v, %v, %v, %v), want (-1, 3, -1, 3)", xmin, xmax, ymin, ymax)
	}
}

func TestRenderRangesFitAllPhasors(t *testing.T) {
	reg := demoRegistry(t)
	p, err := Render(reg, DefaultOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	view := geometry.NewRect(p.X.Min, p.Y.Min, p.X.Max-p.X.Min, p.Y.Max-p.Y.Min)
	for _, ph := range reg.Phasors() {
		if !view.Contains(ph.Start) || !view.Contains(ph.End) {
			t.Errorf("phasor %q not inside view %v", ph.Name, view)
		}
	}
	if !almostEqual(p.X.Max-p.X.Min, p.Y.Max-p.Y.Min) {
		t.Errorf("view is not equal-aspect: x span %v, y span %v",
			p.X.Max-p.X.Min, p.Y.Max-p.Y.Min)
	}
}

func TestRenderExtrasExtendView(t *testing.T) {
	reg := phasor.NewRegistry()
	if _, err := reg.Add("V", phasor.Spec{Geometry: phasor.Polar{Magnitude: 1}}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	opts := DefaultOptions()
	opts.Extras = append(opts.Extras, NewReferenceCircle(geometry.Point2D{}, 20))

	p, err := Render(reg, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if p.X.Min > -20 || p.X.Max < 20 || p.Y.Min > -20 || p.Y.Max < 20 {
		t.Errorf("view (%v..%v, %v..%v) does not fit the reference circle",
			p.X.Min, p.X.Max, p.Y.Min, p.Y.Max)
	}
}

func TestSavePNG(t *testing.T) {
	reg := demoRegistry(t)
	path := filepath.Join(t.TempDir(), "diagram.png")

	opts := DefaultOptions()
	opts.Extras = append(opts.Extras, NewReferenceCircle(geometry.Point2D{}, 10))

	if err := Save(reg, opts, 400, 400, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("saved diagram is empty")
	}
}
