// Package colorutil provides shared color utilities for the phasor diagram application.
package colorutil

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Common diagram colors used throughout the application.
var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Gray   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Blue   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green  = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	Purple = color.RGBA{R: 128, G: 0, B: 128, A: 255}
)

// Parse resolves an SVG 1.1 color name ("purple", "green", ...) to its RGBA
// value. Matching is case-insensitive. The second return value reports
// whether the name was recognised.
func Parse(name string) (color.RGBA, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Name returns the SVG 1.1 name for a color, or "" if it has none.
func Name(c color.RGBA) string {
	for _, name := range colornames.Names {
		if colornames.Map[name] == c {
			return name
		}
	}
	return ""
}

// Darken returns the color darkened by the given factor (0 = unchanged,
// 1 = black).
func Darken(c color.RGBA, factor float64) color.RGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	scale := 1 - factor
	return color.RGBA{
		R: uint8(float64(c.R) * scale),
		G: uint8(float64(c.G) * scale),
		B: uint8(float64(c.B) * scale),
		A: c.A,
	}
}

// WithAlpha returns the color with its alpha channel replaced.
func WithAlpha(c color.RGBA, alpha uint8) color.RGBA {
	c.A = alpha
	return c
}
