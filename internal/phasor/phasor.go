// Package phasor provides the phasor registry: named 2D vectors representing
// sinusoidal quantities, with reference-based positioning and immutable
// resolved geometry.
package phasor

import (
	"image/color"
	"math"
	"strings"

	"phasor-diagram/pkg/colorutil"
	"phasor-diagram/pkg/geometry"
)

// Kind classifies a phasor by the quantity it represents. It only selects
// the default display color; it carries no geometric meaning. The set is
// open-ended: any string is a valid kind.
type Kind string

const (
	// KindVoltage draws blue by default.
	KindVoltage Kind = "voltage"
	// KindCurrent draws red by default.
	KindCurrent Kind = "current"
)

// DefaultColor returns the display color used for this kind when the caller
// does not supply one. Unrecognised kinds get a neutral gray.
func (k Kind) DefaultColor() color.RGBA {
	switch Kind(strings.ToLower(string(k))) {
	case KindVoltage:
		return colorutil.Blue
	case KindCurrent:
		return colorutil.Red
	default:
		return colorutil.Gray
	}
}

// Phasor is a resolved, immutable diagram vector. Start and End are absolute
// coordinates; Magnitude and AngleDeg are derived from them at creation and
// never drift. Registry hands out copies, so a stored Phasor is frozen.
type Phasor struct {
	Name      string           `json:"name"`      // Unique identifier within the registry
	Kind      Kind             `json:"kind"`      // Quantity classification, e.g. "voltage"
	Start     geometry.Point2D `json:"start"`     // Tail of the arrow
	End       geometry.Point2D `json:"end"`       // Tip of the arrow
	Magnitude float64          `json:"magnitude"` // Euclidean length of End - Start
	AngleDeg  float64          `json:"angle_deg"` // Direction in degrees, normalised to (-180, 180]
	Color     color.RGBA       `json:"color"`     // Display color
}

// Vector returns the displacement from Start to End.
func (p Phasor) Vector() geometry.Point2D {
	return p.End.Sub(p.Start)
}

// Midpoint returns the point halfway along the phasor, where the renderer
// places the label.
func (p Phasor) Midpoint() geometry.Point2D {
	return p.Start.Midpoint(p.End)
}

// normalizeAngleDeg maps an angle in degrees onto (-180, 180].
func normalizeAngleDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
