package phasor

import (
	"image/color"

	"phasor-diagram/pkg/geometry"
)

// Geometry describes how a phasor's end point is determined. Exactly two
// shapes exist: Polar (magnitude and angle from the start point) and
// CartesianEnd (explicit end coordinates). The interface is sealed so a Spec
// cannot carry a half-specified geometry.
type Geometry interface {
	isGeometry()
}

// Polar specifies a phasor by length and direction. The end point is
// computed as start + magnitude·(cos θ, sin θ) with θ = AngleDeg in radians.
type Polar struct {
	Magnitude float64 // Length, must be >= 0
	AngleDeg  float64 // Direction in degrees from the +X axis
}

func (Polar) isGeometry() {}

// CartesianEnd specifies a phasor by its absolute end coordinates. The start
// point still determines the derived magnitude and angle.
type CartesianEnd struct {
	X float64
	Y float64
}

func (CartesianEnd) isGeometry() {}

// RefPoint selects which stored point of a referenced phasor to anchor at.
type RefPoint int

const (
	// RefEnd anchors at the referenced phasor's end point.
	RefEnd RefPoint = iota
	// RefStart anchors at the referenced phasor's start point.
	RefStart
)

func (r RefPoint) String() string {
	switch r {
	case RefEnd:
		return "end"
	case RefStart:
		return "start"
	default:
		return "unknown"
	}
}

// Anchor describes how a phasor's start point is determined: either an
// absolute coordinate or a point copied from an already-registered phasor.
// A nil Anchor means Absolute at the origin.
type Anchor interface {
	isAnchor()
}

// Absolute anchors the phasor at an explicit coordinate.
type Absolute struct {
	At geometry.Point2D
}

func (Absolute) isAnchor() {}

// RelativeTo anchors the phasor at the start or end point of an existing
// phasor. Only phasors created strictly earlier can be referenced, so
// reference chains are acyclic by construction.
type RelativeTo struct {
	Name  string   // Name of the referenced phasor
	Point RefPoint // Which of its stored points to copy
}

func (RelativeTo) isAnchor() {}

// Spec is the input to Registry.Add: the geometry and anchor of the new
// phasor plus optional presentation hints.
type Spec struct {
	Geometry Geometry    // Required: Polar or CartesianEnd
	Anchor   Anchor      // Optional: nil means Absolute at the origin
	Kind     Kind        // Optional: selects the default color
	Color    *color.RGBA // Optional: nil means use the kind's default
}
