// Package app provides application state shared by the command-line tools:
// the current project, its resolved registry, and rendering options.
package app

import (
	"fmt"
	"sync"

	"phasor-diagram/internal/diagram"
	"phasor-diagram/internal/phasor"
	"phasor-diagram/internal/project"
)

// State ties a project file to its resolved registry. The registry is
// rebuilt whenever a project is loaded; incremental additions keep both in
// step.
type State struct {
	mu sync.RWMutex

	ProjectPath string
	Modified    bool

	Project  *project.File
	Registry *phasor.Registry
}

// NewState creates a state with an empty unnamed project.
func NewState() *State {
	return &State{
		Project:  project.New("untitled"),
		Registry: phasor.NewRegistry(),
	}
}

// LoadProject loads a project file and rebuilds the registry from it.
func (s *State) LoadProject(path string) error {
	proj, err := project.Load(path)
	if err != nil {
		return err
	}
	reg, err := proj.BuildRegistry()
	if err != nil {
		return fmt.Errorf("project %s: %w", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Project = proj
	s.Registry = reg
	s.ProjectPath = path
	s.Modified = false
	return nil
}

// SaveProject writes the project to path and clears the modified flag.
func (s *State) SaveProject(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Project.Save(path); err != nil {
		return err
	}
	s.ProjectPath = path
	s.Modified = false
	return nil
}

// AddPhasor resolves the spec, registers it, and records it in the project.
func (s *State) AddPhasor(ps project.PhasorSpec) (phasor.Phasor, error) {
	spec, err := ps.Resolve()
	if err != nil {
		return phasor.Phasor{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.Registry.Add(ps.Name, spec)
	if err != nil {
		return phasor.Phasor{}, err
	}
	s.Project.Phasors = append(s.Project.Phasors, ps)
	s.Modified = true
	return p, nil
}

// Clear empties the registry and the project's phasor list.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Registry.Clear()
	s.Project.Phasors = s.Project.Phasors[:0]
	s.Modified = true
}

// Options returns the rendering options derived from the project settings.
func (s *State) Options() diagram.Options {
	s.mu.RLock()
	defer s.mu.RUnlock()

	opts := diagram.DefaultOptions()
	if s.Project.Title != "" {
		opts.Title = s.Project.Title
	}
	set := s.Project.Settings
	opts.Grid = set.Grid
	opts.ShowAxes = set.ShowAxes
	if set.LabelOffset != 0 {
		opts.LabelOffset = set.LabelOffset
	}
	if set.MarginFrac != 0 {
		opts.MarginFrac = set.MarginFrac
	}
	return opts
}
