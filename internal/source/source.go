// Package source builds the per-cell injection-rate fields that drive the
// solver. Every built-in source precomputes its rates at construction and
// never changes them afterwards.
package source

import (
	"math"

	"stablefluids/internal/core"
)

// Kind records how a source was constructed.
type Kind int

const (
	KindCircular Kind = iota
	KindRect
	KindField
)

func (k Kind) String() string {
	switch k {
	case KindCircular:
		return "circular"
	case KindRect:
		return "rect"
	case KindField:
		return "field"
	default:
		return "unknown"
	}
}

// Density is a scalar injection-rate field.
type Density struct {
	kind Kind
	rate core.Field
}

// NewCircular spreads amount uniformly over every cell strictly inside the
// circle of the given radius around (cx, cy). The per-cell rate is amount
// divided by the nominal area π·r², not by the number of covered cells.
// A non-positive radius yields an all-zero field.
func NewCircular(g core.Grid, cx, cy, radius, amount float64) *Density {
	rate := g.NewField()
	if radius > 0 {
		r2 := radius * radius
		value := amount / (math.Pi * r2)
		for j := 0; j <= g.N+1; j++ {
			dy := float64(j) - cy
			for i := 0; i <= g.N+1; i++ {
				dx := float64(i) - cx
				if dx*dx+dy*dy < r2 {
					rate[g.Index(i, j)] = value
				}
			}
		}
	}
	return &Density{kind: KindCircular, rate: rate}
}

// NewDensityField copies rate into a new density source. Cells beyond the
// grid are dropped and missing cells stay zero.
func NewDensityField(g core.Grid, rate core.Field) *Density {
	f := g.NewField()
	copy(f, rate)
	return &Density{kind: KindField, rate: f}
}

// Source returns the rate field. Callers must not modify it.
func (d *Density) Source() core.Field { return d.rate }

// Kind reports how the source was built.
func (d *Density) Kind() Kind { return d.kind }

// Tick advances time-varying sources. Built-in sources are static.
func (d *Density) Tick() {}

// Velocity is a pair of horizontal and vertical injection-rate fields.
type Velocity struct {
	kind Kind
	u, v core.Field
}

// NewRect applies (uVel, vVel) to every cell of the rectangle with lower
// corner (x, y). Width, height and position are clamped to [0, N] first and
// the rectangle is then cut at the outer boundary row and column.
func NewRect(g core.Grid, width, height, x, y int, uVel, vVel float64) *Velocity {
	n := g.N
	width = clamp(width, 0, n)
	height = clamp(height, 0, n)
	x = clamp(x, 0, n)
	y = clamp(y, 0, n)

	u, v := g.NewField(), g.NewField()
	iEnd := min(x+width, n+1)
	jEnd := min(y+height, n+1)
	for j := y; j < jEnd; j++ {
		for i := x; i < iEnd; i++ {
			idx := g.Index(i, j)
			u[idx] = uVel
			v[idx] = vVel
		}
	}
	return &Velocity{kind: KindRect, u: u, v: v}
}

// NewField copies explicit per-cell rates into a velocity source.
func NewField(g core.Grid, u, v core.Field) *Velocity {
	fu, fv := g.NewField(), g.NewField()
	copy(fu, u)
	copy(fv, v)
	return &Velocity{kind: KindField, u: fu, v: fv}
}

// NewVortex builds a rotational field around (cx, cy). Each cell receives the
// tangential vector (-dy, dx)·strength, rotated by angle degrees
// counter-clockwise.
func NewVortex(g core.Grid, cx, cy, strength, angle float64) *Velocity {
	u, v := g.NewField(), g.NewField()
	sin, cos := math.Sincos(angle * math.Pi / 180)
	for j := 0; j <= g.N+1; j++ {
		dy := float64(j) - cy
		for i := 0; i <= g.N+1; i++ {
			dx := float64(i) - cx
			tu, tv := -dy*strength, dx*strength
			idx := g.Index(i, j)
			u[idx] = tu*cos - tv*sin
			v[idx] = tu*sin + tv*cos
		}
	}
	return &Velocity{kind: KindField, u: u, v: v}
}

// Horizontal returns the u rate field. Callers must not modify it.
func (s *Velocity) Horizontal() core.Field { return s.u }

// Vertical returns the v rate field. Callers must not modify it.
func (s *Velocity) Vertical() core.Field { return s.v }

// Kind reports how the source was built.
func (s *Velocity) Kind() Kind { return s.kind }

// Tick advances time-varying sources. Built-in sources are static.
func (s *Velocity) Tick() {}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
