// Package scene bundles sources into named preset configurations and keeps
// the catalog of built-in presets.
package scene

import (
	"slices"

	"stablefluids/internal/core"
	"stablefluids/internal/fluid"
)

// Scene is a named, immutable set of density and velocity sources.
type Scene struct {
	name     string
	density  []fluid.DensitySource
	velocity []fluid.VelocitySource
}

// New returns a scene owning copies of the given source lists.
func New(name string, density []fluid.DensitySource, velocity []fluid.VelocitySource) Scene {
	return Scene{
		name:     name,
		density:  slices.Clone(density),
		velocity: slices.Clone(velocity),
	}
}

// Name identifies the scene within a simulation.
func (s Scene) Name() string { return s.name }

// DensitySources returns the density sources in construction order.
func (s Scene) DensitySources() []fluid.DensitySource { return slices.Clone(s.density) }

// VelocitySources returns the velocity sources in construction order.
func (s Scene) VelocitySources() []fluid.VelocitySource { return slices.Clone(s.velocity) }

// Builder constructs a scene sized for the grid.
type Builder func(g core.Grid) Scene

var builders = map[string]Builder{}

// Register adds a scene builder under the provided name.
func Register(name string, b Builder) {
	if name == "" || b == nil {
		return
	}
	builders[name] = b
}

// Builders exposes the registry of scene builders.
func Builders() map[string]Builder {
	return builders
}

// Names returns the registered scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Catalog builds every registered scene for g, sorted by name.
func Catalog(g core.Grid) []Scene {
	names := Names()
	out := make([]Scene, 0, len(names))
	for _, name := range names {
		s := builders[name](g)
		s.name = name
		out = append(out, s)
	}
	return out
}
