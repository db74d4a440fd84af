// Package main provides the entry point for the phasor diagram tool: it
// loads a project file, prints the resolved phasors, and renders the
// diagram to an image.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/plot/vg"

	"phasor-diagram/internal/app"
	"phasor-diagram/internal/diagram"
	"phasor-diagram/internal/version"
)

const appTitle = "Phasor Diagram"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	output := flag.String("o", "", "Output image path (default: project name + .png)")
	size := flag.Float64("size", 10, "Figure size in inches (square)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	projectPath := flag.Arg(0)

	log.Printf("Starting %s v%s", appTitle, version.Version)

	state := app.NewState()
	if err := state.LoadProject(projectPath); err != nil {
		log.Fatalf("Failed to load project %s: %v", projectPath, err)
	}
	log.Printf("Loaded project %q with %d phasors", state.Project.Name, state.Registry.Len())

	printPhasors(state)

	out := *output
	if out == "" {
		out = state.Project.Name + ".png"
	}
	side := vg.Length(*size) * vg.Inch
	if err := diagram.Save(state.Registry, state.Options(), side, side, out); err != nil {
		log.Fatalf("Failed to save diagram: %v", err)
	}
	fmt.Printf("Diagram saved to %s\n", out)
}

// printPhasors writes a property table of every resolved phasor.
func printPhasors(state *app.State) {
	fmt.Printf("%-10s %-10s %10s %10s %22s %22s\n",
		"NAME", "KIND", "MAGNITUDE", "ANGLE", "START", "END")
	for _, p := range state.Registry.Phasors() {
		fmt.Printf("%-10s %-10s %10.3f %9.2f° (%9.3f, %9.3f) (%9.3f, %9.3f)\n",
			p.Name, p.Kind, p.Magnitude, p.AngleDeg,
			p.Start.X, p.Start.Y, p.End.X, p.End.Y)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: phasor-diagram [-o out.png] [-size 10] <project.phasors>\n\n")
	flag.PrintDefaults()
}
