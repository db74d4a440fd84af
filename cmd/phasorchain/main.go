// Command phasorchain draws a chain of phasor vectors where each vector
// starts at the end point of the previous one.
//
// Each vector is given as a repeated -vector flag in the format
// "label,magnitude,angle", with the angle in degrees from the +X axis:
//
//	phasorchain -start_x 0 -start_y 0 -vector "V,2.5,45" -vector "I,1.2,90" -o chain.png
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"

	"phasor-diagram/internal/diagram"
	"phasor-diagram/internal/phasor"
	"phasor-diagram/pkg/geometry"
)

// vectorList accumulates repeated -vector flags.
type vectorList []phasor.Link

func (v *vectorList) String() string {
	parts := make([]string, len(*v))
	for i, link := range *v {
		parts[i] = fmt.Sprintf("%s,%g,%g", link.Label, link.Magnitude, link.AngleDeg)
	}
	return strings.Join(parts, " ")
}

func (v *vectorList) Set(s string) error {
	link, err := parseVector(s)
	if err != nil {
		return err
	}
	*v = append(*v, link)
	return nil
}

// parseVector parses a "label,magnitude,angle" triple.
func parseVector(s string) (phasor.Link, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return phasor.Link{}, fmt.Errorf("vector %q: want exactly 3 comma-separated values: label,magnitude,angle", s)
	}

	label := strings.TrimSpace(parts[0])
	if label == "" {
		return phasor.Link{}, fmt.Errorf("vector %q: empty label", s)
	}
	magnitude, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return phasor.Link{}, fmt.Errorf("vector %q: bad magnitude: %v", s, err)
	}
	angle, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return phasor.Link{}, fmt.Errorf("vector %q: bad angle: %v", s, err)
	}

	return phasor.Link{Label: label, Magnitude: magnitude, AngleDeg: angle}, nil
}

func main() {
	var vectors vectorList
	startX := flag.Float64("start_x", 0, "X coordinate of the chain's starting point")
	startY := flag.Float64("start_y", 0, "Y coordinate of the chain's starting point")
	output := flag.String("o", "phasor_chain.png", "Output image path (.png, .svg, .pdf)")
	size := flag.Float64("size", 8, "Figure size in inches (square)")
	flag.Var(&vectors, "vector", "Vector as 'label,magnitude,angle'; repeatable")
	flag.Parse()

	if len(vectors) == 0 {
		fmt.Println("Usage: phasorchain -vector \"label,magnitude,angle\" [-vector ...] [-start_x 0] [-start_y 0] [-o out.png]")
		os.Exit(1)
	}

	reg := phasor.NewRegistry()
	start := geometry.NewPoint2D(*startX, *startY)
	added, err := reg.AddChain(start, vectors)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build chain: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Chain of %d phasors from (%g, %g):\n", len(added), *startX, *startY)
	for _, p := range added {
		fmt.Printf("  %-8s magnitude=%-8.3f angle=%-8.2f° end=(%.3f, %.3f)\n",
			p.Name, p.Magnitude, p.AngleDeg, p.End.X, p.End.Y)
	}

	opts := diagram.DefaultOptions()
	opts.Title = "Phasor Chain Diagram"

	side := vg.Length(*size) * vg.Inch
	if err := diagram.Save(reg, opts, side, side, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save diagram: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Diagram saved to %s\n", *output)
}
