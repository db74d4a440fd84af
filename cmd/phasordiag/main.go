// Command phasordiag draws a single phasor from a given start point, plus a
// dashed reference circle with radius equal to the magnitude:
//
//	phasordiag -magnitude 2.0 -angle 45 -start_x 1 -start_y 1 -o phasor.png
package main

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"phasor-diagram/internal/diagram"
	"phasor-diagram/internal/phasor"
	"phasor-diagram/pkg/colorutil"
	"phasor-diagram/pkg/geometry"
)

func main() {
	magnitude := flag.Float64("magnitude", 0, "Magnitude (length) of the phasor")
	angle := flag.Float64("angle", 0, "Angle of the phasor in degrees")
	startX := flag.Float64("start_x", 0, "X coordinate of the starting point")
	startY := flag.Float64("start_y", 0, "Y coordinate of the starting point")
	name := flag.String("name", "V", "Label for the phasor")
	kind := flag.String("kind", "voltage", "Phasor kind: voltage, current, ...")
	colorName := flag.String("color", "", "SVG color name (default: kind color)")
	output := flag.String("o", "phasor_diagram.png", "Output image path (.png, .svg, .pdf)")
	size := flag.Float64("size", 8, "Figure size in inches (square)")
	flag.Parse()

	if *magnitude <= 0 {
		fmt.Println("Usage: phasordiag -magnitude <m> [-angle 0] [-start_x 0] [-start_y 0] [-o out.png]")
		os.Exit(1)
	}

	spec := phasor.Spec{
		Geometry: phasor.Polar{Magnitude: *magnitude, AngleDeg: *angle},
		Anchor:   phasor.Absolute{At: geometry.NewPoint2D(*startX, *startY)},
		Kind:     phasor.Kind(*kind),
	}
	if *colorName != "" {
		c, ok := colorutil.Parse(*colorName)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown color %q\n", *colorName)
			os.Exit(1)
		}
		spec.Color = &c
	}

	reg := phasor.NewRegistry()
	p, err := reg.Add(*name, spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to add phasor: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: magnitude=%.3f angle=%.2f° start=(%g, %g) end=(%.3f, %.3f)\n",
		p.Name, p.Magnitude, p.AngleDeg, p.Start.X, p.Start.Y, p.End.X, p.End.Y)

	opts := diagram.DefaultOptions()
	opts.Title = fmt.Sprintf("Phasor Diagram (Magnitude = %g, Angle = %g°)", *magnitude, *angle)
	opts.Extras = []plot.Plotter{
		diagram.NewReferenceCircle(p.Start, p.Magnitude),
	}

	side := vg.Length(*size) * vg.Inch
	if err := diagram.Save(reg, opts, side, side, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save diagram: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Diagram saved to %s\n", *output)
}
