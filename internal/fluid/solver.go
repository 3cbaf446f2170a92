package fluid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"stablefluids/internal/core"
)

// DefaultIterations is the relaxation sweep count used by Diffuse and Project.
const DefaultIterations = 20

// DensitySource supplies a per-cell density injection rate.
type DensitySource interface {
	Source() core.Field
}

// VelocitySource supplies per-cell horizontal and vertical injection rates.
type VelocitySource interface {
	Horizontal() core.Field
	Vertical() core.Field
}

// Solver runs the diffuse/project/advect pipeline on fields laid out by its
// grid. It holds no field state of its own.
type Solver struct {
	grid       core.Grid
	iterations int
}

// NewSolver returns a solver for g using the given relaxation sweep count.
func NewSolver(g core.Grid, iterations int) (*Solver, error) {
	s := &Solver{grid: g}
	if err := s.SetIterations(iterations); err != nil {
		return nil, err
	}
	return s, nil
}

// Grid returns the addressing scheme the solver operates on.
func (s *Solver) Grid() core.Grid { return s.grid }

// Iterations returns the relaxation sweep count.
func (s *Solver) Iterations() int { return s.iterations }

// SetIterations changes the relaxation sweep count.
func (s *Solver) SetIterations(n int) error {
	if n < 1 {
		return fmt.Errorf("SetIterations: %d: %w", n, ErrInvalidIterations)
	}
	s.iterations = n
	return nil
}

// AddSource accumulates dt*src into x cell by cell.
func (s *Solver) AddSource(x, src core.Field, dt float64) {
	floats.AddScaled(x, dt, src)
}

// SetBoundary applies the boundary rule for kind to x.
func (s *Solver) SetBoundary(kind BoundaryKind, x core.Field) {
	SetBoundary(s.grid, kind, x)
}

// Diffuse solves the implicit diffusion of x0 into x with Gauss-Seidel
// relaxation. x is used as the initial guess.
func (s *Solver) Diffuse(kind BoundaryKind, x, x0 core.Field, diff, dt float64) {
	n := s.grid.N
	stride := s.grid.Stride
	a := dt * diff * float64(n) * float64(n)
	denom := 1 + 4*a
	for k := 0; k < s.iterations; k++ {
		for j := 1; j <= n; j++ {
			row := j * stride
			for i := 1; i <= n; i++ {
				idx := row + i
				x[idx] = (x0[idx] + a*(x[idx-1]+x[idx+1]+x[idx-stride]+x[idx+stride])) / denom
			}
		}
		s.SetBoundary(kind, x)
	}
}

// Advect moves d0 along (u, v) into d by tracing each interior cell centre
// back through the velocity field and sampling d0 bilinearly there.
func (s *Solver) Advect(kind BoundaryKind, d, d0, u, v core.Field, dt float64) {
	n := s.grid.N
	stride := s.grid.Stride
	dt0 := dt * float64(n)
	lo, hi := 0.5, float64(n)+0.5
	for j := 1; j <= n; j++ {
		row := j * stride
		for i := 1; i <= n; i++ {
			idx := row + i
			x := clampTrace(float64(i)-dt0*u[idx], lo, hi)
			y := clampTrace(float64(j)-dt0*v[idx], lo, hi)
			i0, j0 := int(x), int(y)
			s1 := x - float64(i0)
			t1 := y - float64(j0)
			s0, t0 := 1-s1, 1-t1
			c00 := i0 + stride*j0
			c01 := c00 + stride
			d[idx] = s0*(t0*d0[c00]+t1*d0[c01]) + s1*(t0*d0[c00+1]+t1*d0[c01+1])
		}
	}
	s.SetBoundary(kind, d)
}

// clampTrace limits a backtraced coordinate to [lo, hi]. NaN maps to lo so
// the sample index stays inside the grid.
func clampTrace(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Divergence writes the per-cell divergence of (u, v) into div and returns the
// largest interior magnitude.
func (s *Solver) Divergence(u, v, div core.Field) float64 {
	n := s.grid.N
	stride := s.grid.Stride
	h := 1.0 / float64(n)
	peak := 0.0
	for j := 1; j <= n; j++ {
		row := j * stride
		for i := 1; i <= n; i++ {
			idx := row + i
			div[idx] = -0.5 * h * (u[idx+1] - u[idx-1] + v[idx+stride] - v[idx-stride])
			if a := math.Abs(div[idx]); a > peak {
				peak = a
			}
		}
	}
	return peak
}

// Project removes the divergent part of (u, v). p and div are scratch fields
// and are overwritten.
func (s *Solver) Project(u, v, p, div core.Field) {
	n := s.grid.N
	stride := s.grid.Stride
	h := 1.0 / float64(n)

	s.Divergence(u, v, div)
	p.Zero()
	s.SetBoundary(BoundaryNone, div)
	s.SetBoundary(BoundaryNone, p)

	for k := 0; k < s.iterations; k++ {
		for j := 1; j <= n; j++ {
			row := j * stride
			for i := 1; i <= n; i++ {
				idx := row + i
				p[idx] = (div[idx] + p[idx-1] + p[idx+1] + p[idx-stride] + p[idx+stride]) / 4
			}
		}
		s.SetBoundary(BoundaryNone, p)
	}

	for j := 1; j <= n; j++ {
		row := j * stride
		for i := 1; i <= n; i++ {
			idx := row + i
			u[idx] -= 0.5 * (p[idx+1] - p[idx-1]) / h
			v[idx] -= 0.5 * (p[idx+stride] - p[idx-stride]) / h
		}
	}
	s.SetBoundary(BoundaryHorizontal, u)
	s.SetBoundary(BoundaryVertical, v)
}

// VelStep advances the velocity pair by dt: inject sources into the current
// buffers, diffuse with visc, project, self-advect and project again.
func (s *Solver) VelStep(u, v *Pair, sources []VelocitySource, visc, dt float64) {
	for _, src := range sources {
		s.AddSource(u.Cur, src.Horizontal(), dt)
		s.AddSource(v.Cur, src.Vertical(), dt)
	}

	u.Swap()
	s.Diffuse(BoundaryHorizontal, u.Cur, u.Prev, visc, dt)
	v.Swap()
	s.Diffuse(BoundaryVertical, v.Cur, v.Prev, visc, dt)

	s.Project(u.Cur, v.Cur, u.Prev, v.Prev)

	// Advection must read the projected field, so it becomes the scratch pair.
	u.Swap()
	v.Swap()
	s.Advect(BoundaryHorizontal, u.Cur, u.Prev, u.Prev, v.Prev, dt)
	s.Advect(BoundaryVertical, v.Cur, v.Prev, u.Prev, v.Prev, dt)

	s.Project(u.Cur, v.Cur, u.Prev, v.Prev)
}

// DensStep advances the density pair by dt through the velocity field (u, v).
func (s *Solver) DensStep(x *Pair, u, v core.Field, sources []DensitySource, diff, dt float64) {
	for _, src := range sources {
		s.AddSource(x.Cur, src.Source(), dt)
	}
	x.Swap()
	s.Diffuse(BoundaryNone, x.Cur, x.Prev, diff, dt)
	x.Swap()
	s.Advect(BoundaryNone, x.Cur, x.Prev, u, v, dt)
}

// CheckSize reports ErrFieldSize if any field does not match the grid.
func (s *Solver) CheckSize(fields ...core.Field) error {
	want := s.grid.Cells()
	for i, f := range fields {
		if len(f) != want {
			return fmt.Errorf("CheckSize: field %d has %d cells, want %d: %w", i, len(f), want, ErrFieldSize)
		}
	}
	return nil
}
