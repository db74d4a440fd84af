// Package project provides phasor project file handling and persistence.
//
// A project file stores the phasor *inputs* (geometry and anchor specs), not
// the resolved coordinates: loading replays them through the registry so the
// resolution rules live in exactly one place.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"phasor-diagram/internal/phasor"
	"phasor-diagram/pkg/colorutil"
	"phasor-diagram/pkg/geometry"
)

// CurrentVersion is the project file format version written by this build.
const CurrentVersion = 1

// File represents a phasor diagram project file (.phasors).
type File struct {
	Version  int       `json:"version"`
	Name     string    `json:"name"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
	Title    string    `json:"title,omitempty"`

	Settings Settings `json:"settings,omitempty"`

	// Phasors in creation order. Order matters: relative anchors may only
	// reference earlier entries.
	Phasors []PhasorSpec `json:"phasors"`
}

// Settings holds per-project rendering preferences.
type Settings struct {
	LabelOffset float64 `json:"label_offset,omitempty"`
	MarginFrac  float64 `json:"margin_frac,omitempty"`
	Grid        bool    `json:"grid"`
	ShowAxes    bool    `json:"show_axes"`
}

// DefaultSettings returns the settings used for new projects.
func DefaultSettings() Settings {
	return Settings{
		LabelOffset: 0.1,
		MarginFrac:  0.1,
		Grid:        true,
		ShowAxes:    true,
	}
}

// PhasorSpec is the serialised form of one phasor input. Geometry is either
// polar (magnitude + angle_deg) or an explicit end point (end_x + end_y);
// the anchor is absolute (start_x/start_y) unless start_ref names an earlier
// phasor.
type PhasorSpec struct {
	Name  string `json:"name"`
	Kind  string `json:"kind,omitempty"`
	Color string `json:"color,omitempty"` // SVG 1.1 color name; empty = kind default

	Magnitude *float64 `json:"magnitude,omitempty"`
	AngleDeg  *float64 `json:"angle_deg,omitempty"`
	EndX      *float64 `json:"end_x,omitempty"`
	EndY      *float64 `json:"end_y,omitempty"`

	StartRef string  `json:"start_ref,omitempty"` // "" or "abs" = absolute
	RefPoint string  `json:"ref_point,omitempty"` // "start" or "end" (default)
	StartX   float64 `json:"start_x,omitempty"`
	StartY   float64 `json:"start_y,omitempty"`
}

// New creates a new project with default settings.
func New(name string) *File {
	now := time.Now()
	return &File{
		Version:  CurrentVersion,
		Name:     name,
		Created:  now,
		Modified: now,
		Title:    "Phasor Diagram",
		Settings: DefaultSettings(),
	}
}

// Load loads a project from a .phasors file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var proj File
	if err := json.Unmarshal(data, &proj); err != nil {
		return nil, fmt.Errorf("parse project %s: %w", path, err)
	}
	if proj.Version > CurrentVersion {
		return nil, fmt.Errorf("project %s: unsupported version %d", path, proj.Version)
	}

	return &proj, nil
}

// Save saves the project to a file, bumping the modification time.
func (p *File) Save(path string) error {
	p.Modified = time.Now()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// BuildRegistry replays every stored phasor spec through a fresh registry
// and returns it. The first invalid spec aborts the build.
func (p *File) BuildRegistry() (*phasor.Registry, error) {
	reg := phasor.NewRegistry()
	for i, ps := range p.Phasors {
		spec, err := ps.Resolve()
		if err != nil {
			return nil, fmt.Errorf("phasor %d (%q): %w", i, ps.Name, err)
		}
		if _, err := reg.Add(ps.Name, spec); err != nil {
			return nil, fmt.Errorf("phasor %d (%q): %w", i, ps.Name, err)
		}
	}
	return reg, nil
}

// Resolve converts the serialised spec into a registry input spec.
func (ps PhasorSpec) Resolve() (phasor.Spec, error) {
	spec := phasor.Spec{Kind: phasor.Kind(ps.Kind)}

	switch {
	case ps.EndX != nil && ps.EndY != nil:
		spec.Geometry = phasor.CartesianEnd{X: *ps.EndX, Y: *ps.EndY}
	case ps.EndX != nil || ps.EndY != nil:
		return phasor.Spec{}, fmt.Errorf("end_x and end_y must be given together")
	case ps.Magnitude != nil && ps.AngleDeg != nil:
		spec.Geometry = phasor.Polar{Magnitude: *ps.Magnitude, AngleDeg: *ps.AngleDeg}
	case ps.Magnitude != nil || ps.AngleDeg != nil:
		return phasor.Spec{}, fmt.Errorf("magnitude and angle_deg must be given together")
	}

	switch ps.StartRef {
	case "", "abs":
		spec.Anchor = phasor.Absolute{At: geometry.Point2D{X: ps.StartX, Y: ps.StartY}}
	default:
		refPoint, err := parseRefPoint(ps.RefPoint)
		if err != nil {
			return phasor.Spec{}, err
		}
		spec.Anchor = phasor.RelativeTo{Name: ps.StartRef, Point: refPoint}
	}

	if ps.Color != "" {
		c, ok := colorutil.Parse(ps.Color)
		if !ok {
			return phasor.Spec{}, fmt.Errorf("unknown color %q", ps.Color)
		}
		spec.Color = &c
	}

	return spec, nil
}

func parseRefPoint(s string) (phasor.RefPoint, error) {
	switch s {
	case "", "end":
		return phasor.RefEnd, nil
	case "start":
		return phasor.RefStart, nil
	default:
		return 0, fmt.Errorf("ref_point must be \"start\" or \"end\", got %q", s)
	}
}
