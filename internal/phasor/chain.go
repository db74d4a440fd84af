package phasor

import (
	"fmt"

	"phasor-diagram/pkg/geometry"
)

// Link describes one vector in a phasor chain: a label plus polar geometry.
type Link struct {
	Label     string
	Magnitude float64
	AngleDeg  float64
	Kind      Kind
}

// AddChain registers a sequence of phasors where each one starts at the end
// point of the previous one. The first link is anchored at the given
// absolute start point.
//
// Links are added one at a time with the same semantics as Add; on error the
// chain stops and the phasors added so far are returned along with the
// error.
func (r *Registry) AddChain(start geometry.Point2D, links []Link) ([]Phasor, error) {
	added := make([]Phasor, 0, len(links))
	for i, link := range links {
		spec := Spec{
			Geometry: Polar{Magnitude: link.Magnitude, AngleDeg: link.AngleDeg},
			Kind:     link.Kind,
		}
		if i == 0 {
			spec.Anchor = Absolute{At: start}
		} else {
			spec.Anchor = RelativeTo{Name: links[i-1].Label, Point: RefEnd}
		}

		p, err := r.Add(link.Label, spec)
		if err != nil {
			return added, fmt.Errorf("chain link %d (%q): %w", i, link.Label, err)
		}
		added = append(added, p)
	}
	return added, nil
}
