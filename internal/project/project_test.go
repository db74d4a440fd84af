package project

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"phasor-diagram/internal/phasor"
	"phasor-diagram/pkg/colorutil"
)

func f(v float64) *float64 { return &v }

func demoProject() *File {
	p := New("demo")
	p.Phasors = []PhasorSpec{
		{Name: "Vs", Kind: "voltage", Magnitude: f(10), AngleDeg: f(0)},
		{Name: "Vl", Kind: "voltage", Color: "purple",
			Magnitude: f(2), AngleDeg: f(150),
			StartRef: "Vs", RefPoint: "end"},
		{Name: "Vr", Kind: "voltage", Color: "green",
			EndX: f(8.5), EndY: f(2.2)},
	}
	return p
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.phasors")

	orig := demoProject()
	if err := orig.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", loaded.Version, CurrentVersion)
	}
	if loaded.Name != "demo" {
		t.Errorf("Name = %q, want \"demo\"", loaded.Name)
	}
	if len(loaded.Phasors) != 3 {
		t.Fatalf("loaded %d phasors, want 3", len(loaded.Phasors))
	}
	if loaded.Phasors[1].StartRef != "Vs" || loaded.Phasors[1].RefPoint != "end" {
		t.Errorf("Vl anchor = %+v, want start_ref Vs / ref_point end", loaded.Phasors[1])
	}
	if loaded.Settings != DefaultSettings() {
		t.Errorf("Settings = %+v, want defaults", loaded.Settings)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.phasors")); err == nil {
		t.Fatalf("Load of a missing file succeeded")
	}
}

func TestLoadUnsupportedVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.phasors")
	p := demoProject()
	p.Version = CurrentVersion + 1
	if err := p.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unsupported version") {
		t.Fatalf("err = %v, want unsupported version", err)
	}
}

func TestBuildRegistry(t *testing.T) {
	reg, err := demoProject().BuildRegistry()
	if err != nil {
		t.Fatalf("BuildRegistry: %v", err)
	}
	if reg.Len() != 3 {
		t.Fatalf("registry has %d phasors, want 3", reg.Len())
	}

	vl, ok := reg.Get("Vl")
	if !ok {
		t.Fatalf("Get(Vl) absent")
	}
	if vl.Start.X != 10 || vl.Start.Y != 0 {
		t.Errorf("Vl.Start = %v, want (10, 0)", vl.Start)
	}
	if vl.Color != colorutil.Purple {
		t.Errorf("Vl.Color = %v, want purple", vl.Color)
	}

	vr, ok := reg.Get("Vr")
	if !ok {
		t.Fatalf("Get(Vr) absent")
	}
	if math.Abs(vr.Magnitude-8.78) > 0.01 {
		t.Errorf("Vr.Magnitude = %v, want ~8.78", vr.Magnitude)
	}
}

func TestBuildRegistryForwardReference(t *testing.T) {
	p := New("bad")
	p.Phasors = []PhasorSpec{
		{Name: "Vl", Magnitude: f(2), AngleDeg: f(150), StartRef: "Vs"},
		{Name: "Vs", Magnitude: f(10), AngleDeg: f(0)},
	}

	_, err := p.BuildRegistry()
	if !errors.Is(err, phasor.ErrUnknownReference) {
		t.Fatalf("err = %v, want ErrUnknownReference", err)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		spec PhasorSpec
		want string
	}{
		{"half cartesian", PhasorSpec{Name: "A", EndX: f(1)}, "end_x and end_y"},
		{"half polar", PhasorSpec{Name: "A", Magnitude: f(1)}, "magnitude and angle_deg"},
		{"bad ref point", PhasorSpec{Name: "A", Magnitude: f(1), AngleDeg: f(0),
			StartRef: "B", RefPoint: "middle"}, "ref_point"},
		{"bad color", PhasorSpec{Name: "A", Magnitude: f(1), AngleDeg: f(0),
			Color: "blurple"}, "unknown color"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.spec.Resolve()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Resolve() err = %v, want containing %q", err, tc.want)
			}
		})
	}
}

func TestResolveNoGeometryDefersToRegistry(t *testing.T) {
	// A spec with no geometry at all resolves to a nil Geometry; the
	// registry is the single place that rejects it.
	spec, err := (PhasorSpec{Name: "A"}).Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	reg := phasor.NewRegistry()
	if _, err := reg.Add("A", spec); !errors.Is(err, phasor.ErrMissingGeometry) {
		t.Fatalf("Add err = %v, want ErrMissingGeometry", err)
	}
}
