// Package sim owns the field buffers of one fluid simulation and drives the
// solver with the sources of the active scene.
package sim

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"stablefluids/internal/core"
	"stablefluids/internal/fluid"
	"stablefluids/internal/scene"
)

// Simulation is a single-threaded stable-fluids integrator. It is not safe for
// concurrent use.
type Simulation struct {
	cfg    Config
	grid   core.Grid
	solver *fluid.Solver

	u, v, dens fluid.Pair
	div        core.Field

	scenes    map[string]scene.Scene
	active    string
	hasActive bool
	density   []fluid.DensitySource
	velocity  []fluid.VelocitySource

	logger *slog.Logger
}

// Stats summarises the current state.
type Stats struct {
	// Mass is the sum of density over interior cells.
	Mass float64
	// MaxSpeed is the largest velocity magnitude over interior cells.
	MaxSpeed float64
	// MaxDivergence is the largest absolute discrete divergence.
	MaxDivergence float64
}

type ticker interface {
	Tick()
}

// New builds a simulation with the built-in scene catalog and activates
// cfg.Scene. An unknown start scene leaves no scene active.
func New(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	g, err := core.NewGrid(cfg.N)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	solver, err := fluid.NewSolver(g, cfg.Iterations)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	s := &Simulation{
		cfg:    cfg,
		grid:   g,
		solver: solver,
		u:      fluid.NewPair(g),
		v:      fluid.NewPair(g),
		dens:   fluid.NewPair(g),
		div:    g.NewField(),
		scenes: make(map[string]scene.Scene),
		logger: slog.Default(),
	}
	for _, sc := range scene.Catalog(g) {
		if err := s.AddScene(sc); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}
	s.ActivateScene(cfg.Scene)
	if cfg.Seed != 0 {
		s.Seed(cfg.Seed)
	}
	return s, nil
}

// SetLogger replaces the logger used for scene and reset events.
func (s *Simulation) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	s.logger = l
}

// Name identifies the simulation in window titles and reports.
func (s *Simulation) Name() string { return "Stable Fluids" }

// Size reports the interior dimensions.
func (s *Simulation) Size() core.Size { return core.Size{W: s.grid.N, H: s.grid.N} }

// Grid returns the addressing scheme of every field.
func (s *Simulation) Grid() core.Grid { return s.grid }

// Config returns the configuration with any parameter changes applied.
func (s *Simulation) Config() Config { return s.cfg }

// Tick advances the simulation by dt: velocity first, then density through
// the updated velocity.
func (s *Simulation) Tick(dt float64) error {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("Tick: dt=%g: %w", dt, ErrInvalidTimeStep)
	}
	for _, src := range s.density {
		if t, ok := src.(ticker); ok {
			t.Tick()
		}
	}
	for _, src := range s.velocity {
		if t, ok := src.(ticker); ok {
			t.Tick()
		}
	}

	s.solver.VelStep(&s.u, &s.v, s.velocity, s.cfg.Viscosity, dt)
	s.solver.DensStep(&s.dens, s.u.Cur, s.v.Cur, s.density, s.cfg.Diffusion, dt)

	if s.cfg.CheckFinite {
		if err := s.checkFinite(); err != nil {
			return fmt.Errorf("Tick: %w", err)
		}
	}
	return nil
}

func (s *Simulation) checkFinite() error {
	fields := []struct {
		name string
		f    core.Field
	}{
		{"u", s.u.Cur},
		{"v", s.v.Cur},
		{"density", s.dens.Cur},
	}
	for _, fd := range fields {
		if idx := fd.f.FirstNonFinite(); idx >= 0 {
			i, j := idx%s.grid.Stride, idx/s.grid.Stride
			return fmt.Errorf("%s at (%d,%d) = %g: %w", fd.name, i, j, fd.f[idx], ErrNonFinite)
		}
	}
	return nil
}

// Reset zeroes all six field buffers. The active sources are kept.
func (s *Simulation) Reset() {
	s.u.Zero()
	s.v.Zero()
	s.dens.Zero()
	s.logger.Debug("fields reset", "n", s.grid.N)
}

// AddScene registers sc under its name. Every source field must match the
// grid.
func (s *Simulation) AddScene(sc scene.Scene) error {
	name := sc.Name()
	if name == "" {
		return fmt.Errorf("AddScene: %w", ErrSceneName)
	}
	if _, ok := s.scenes[name]; ok {
		return fmt.Errorf("AddScene: %q: %w", name, ErrDuplicateScene)
	}
	for _, d := range sc.DensitySources() {
		if err := s.solver.CheckSize(d.Source()); err != nil {
			return fmt.Errorf("AddScene: %q: %w", name, err)
		}
	}
	for _, v := range sc.VelocitySources() {
		if err := s.solver.CheckSize(v.Horizontal(), v.Vertical()); err != nil {
			return fmt.Errorf("AddScene: %q: %w", name, err)
		}
	}
	s.scenes[name] = sc
	return nil
}

// SceneNames lists the registered scenes in sorted order.
func (s *Simulation) SceneNames() []string {
	names := make([]string, 0, len(s.scenes))
	for name := range s.scenes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ActiveScene returns the active scene name, if any.
func (s *Simulation) ActiveScene() (string, bool) {
	return s.active, s.hasActive
}

// ActivateScene resets the fields and swaps in the sources of the named
// scene. Unknown names and the already active scene are ignored.
func (s *Simulation) ActivateScene(name string) {
	if s.hasActive && s.active == name {
		return
	}
	sc, ok := s.scenes[name]
	if !ok {
		s.logger.Debug("unknown scene ignored", "scene", name)
		return
	}
	s.density = nil
	s.velocity = nil
	s.Reset()
	s.density = sc.DensitySources()
	s.velocity = sc.VelocitySources()
	s.active = name
	s.hasActive = true
	s.cfg.Scene = name
	s.logger.Debug("scene activated", "scene", name,
		"density_sources", len(s.density), "velocity_sources", len(s.velocity))
}

// Density returns a view of the current density buffer. The view is valid
// until the next Tick.
func (s *Simulation) Density() core.ScalarField {
	return core.NewScalarField(s.grid, s.dens.Cur)
}

// Velocity returns a view of the current velocity buffers. The view is valid
// until the next Tick.
func (s *Simulation) Velocity() core.VectorField {
	return core.NewVectorField(s.grid, s.u.Cur, s.v.Cur)
}

// AddDensity adds amount, clamped to [0, 1], at the cell nearest (x, y).
func (s *Simulation) AddDensity(x, y int, amount float64) {
	i, j := s.grid.Clamp(x, y)
	s.dens.Cur[s.grid.Index(i, j)] += math.Min(math.Max(amount, 0), 1)
}

// AddVelocity adds (dx, dy) at the cell nearest (x, y).
func (s *Simulation) AddVelocity(x, y int, dx, dy float64) {
	i, j := s.grid.Clamp(x, y)
	idx := s.grid.Index(i, j)
	s.u.Cur[idx] += dx
	s.v.Cur[idx] += dy
}

// Seed overwrites the interior density with deterministic 0/1 noise.
func (s *Simulation) Seed(seed int64) {
	core.NewRNG(seed).FillBinary(s.grid, s.dens.Cur)
	s.cfg.Seed = seed
	s.logger.Debug("density seeded", "seed", seed)
}

// Stats computes mass, peak speed and peak divergence of the current state.
func (s *Simulation) Stats() Stats {
	n := s.grid.N
	var st Stats
	for j := 1; j <= n; j++ {
		row := s.grid.Index(1, j)
		st.Mass += floats.Sum(s.dens.Cur[row : row+n])
	}
	s.grid.Interior(func(_, _, idx int) {
		if sp := math.Hypot(s.u.Cur[idx], s.v.Cur[idx]); sp > st.MaxSpeed {
			st.MaxSpeed = sp
		}
	})
	st.MaxDivergence = s.solver.Divergence(s.u.Cur, s.v.Cur, s.div)
	return st
}
