package phasor

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"

	"phasor-diagram/pkg/geometry"
)

// Registry owns the mapping from phasor name to resolved record. Each Add
// resolves its spec immediately against the current contents, so a phasor
// can only reference phasors created before it and resolution never walks a
// chain: the referenced record already holds absolute coordinates.
//
// Add and Clear take the write lock; lookups and snapshots may run
// concurrently with each other.
type Registry struct {
	mu      sync.RWMutex
	phasors map[string]Phasor
	order   []string // insertion order, for deterministic rendering
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		phasors: make(map[string]Phasor),
		order:   make([]string, 0),
	}
}

// Add resolves the spec and inserts the resulting phasor under the given
// name. It returns the fully resolved record, so the caller can chain
// further phasors off it or inspect the derived magnitude and angle.
//
// Duplicate names are rejected with ErrDuplicateName; entries are never
// overwritten in place.
func (r *Registry) Add(name string, spec Spec) (Phasor, error) {
	if name == "" {
		return Phasor{}, ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.phasors[name]; exists {
		return Phasor{}, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	start, err := r.resolveStart(spec.Anchor)
	if err != nil {
		return Phasor{}, err
	}

	end, err := resolveEnd(start, spec.Geometry)
	if err != nil {
		return Phasor{}, err
	}

	clr := spec.Kind.DefaultColor()
	if spec.Color != nil {
		clr = *spec.Color
	}

	p := Phasor{
		Name:      name,
		Kind:      spec.Kind,
		Start:     start,
		End:       end,
		Magnitude: start.Distance(end),
		AngleDeg:  normalizeAngleDeg(start.AngleTo(end) * 180 / math.Pi),
		Color:     clr,
	}

	r.phasors[name] = p
	r.order = append(r.order, name)
	return p, nil
}

// resolveStart determines the start point from the anchor. Relative anchors
// copy the referenced phasor's stored coordinates verbatim, so no
// recomputation drift is possible. Caller holds the lock.
func (r *Registry) resolveStart(anchor Anchor) (geometry.Point2D, error) {
	switch a := anchor.(type) {
	case nil:
		return geometry.Point2D{}, nil
	case Absolute:
		return a.At, nil
	case RelativeTo:
		ref, ok := r.phasors[a.Name]
		if !ok {
			return geometry.Point2D{}, fmt.Errorf("%w: %q", ErrUnknownReference, a.Name)
		}
		if a.Point == RefStart {
			return ref.Start, nil
		}
		return ref.End, nil
	default:
		return geometry.Point2D{}, fmt.Errorf("%w: unsupported anchor %T", ErrUnknownReference, anchor)
	}
}

// resolveEnd determines the end point from the geometry.
func resolveEnd(start geometry.Point2D, geom Geometry) (geometry.Point2D, error) {
	switch g := geom.(type) {
	case Polar:
		if g.Magnitude < 0 {
			return geometry.Point2D{}, fmt.Errorf("%w: %v", ErrNegativeMagnitude, g.Magnitude)
		}
		return start.PolarOffset(g.Magnitude, g.AngleDeg*math.Pi/180), nil
	case CartesianEnd:
		return geometry.Point2D{X: g.X, Y: g.Y}, nil
	case nil:
		return geometry.Point2D{}, ErrMissingGeometry
	default:
		return geometry.Point2D{}, fmt.Errorf("%w: unsupported geometry %T", ErrMissingGeometry, geom)
	}
}

// Get returns the phasor stored under name. The second return value reports
// whether the name is present.
func (r *Registry) Get(name string) (Phasor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.phasors[name]
	return p, ok
}

// Len returns the number of registered phasors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// Phasors returns all registered phasors in insertion order.
func (r *Registry) Phasors() []Phasor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Phasor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.phasors[name])
	}
	return out
}

// Clear empties the registry. Subsequent Adds behave as if it were freshly
// constructed.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.phasors = make(map[string]Phasor)
	r.order = r.order[:0]
}

// Bounds returns the smallest rectangle containing every phasor's start and
// end point, for auto-scaling a view. The second return value is false when
// the registry is empty.
func (r *Registry) Bounds() (geometry.Rect, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.order) == 0 {
		return geometry.Rect{}, false
	}

	xs := make([]float64, 0, 2*len(r.order))
	ys := make([]float64, 0, 2*len(r.order))
	for _, name := range r.order {
		p := r.phasors[name]
		xs = append(xs, p.Start.X, p.End.X)
		ys = append(ys, p.Start.Y, p.End.Y)
	}

	minX, maxX := floats.Min(xs), floats.Max(xs)
	minY, maxY := floats.Min(ys), floats.Max(ys)
	return geometry.NewRect(minX, minY, maxX-minX, maxY-minY), true
}
