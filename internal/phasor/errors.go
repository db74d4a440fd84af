package phasor

import "errors"

// Registry errors. All are synchronous and non-fatal: a failed Add leaves
// the registry contents untouched and usable.
var (
	// ErrEmptyName is returned when Add is called with an empty name.
	ErrEmptyName = errors.New("phasor name must not be empty")

	// ErrDuplicateName is returned when Add is called with a name that is
	// already registered. Existing entries are never overwritten.
	ErrDuplicateName = errors.New("phasor name already registered")

	// ErrUnknownReference is returned when an anchor names a phasor that is
	// not in the registry.
	ErrUnknownReference = errors.New("reference phasor not found")

	// ErrMissingGeometry is returned when a Spec carries no geometry.
	ErrMissingGeometry = errors.New("phasor geometry not specified")

	// ErrNegativeMagnitude is returned when a Polar geometry has a
	// magnitude below zero.
	ErrNegativeMagnitude = errors.New("phasor magnitude must not be negative")
)
