package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Field holds one float64 per grid cell in grid index order.
type Field []float64

// Zero resets every cell to 0.
func (f Field) Zero() {
	clear(f)
}

// Sum returns the total over all cells.
func (f Field) Sum() float64 {
	if len(f) == 0 {
		return 0
	}
	return floats.Sum(f)
}

// MaxAbs returns the largest absolute cell value.
func (f Field) MaxAbs() float64 {
	m := 0.0
	for _, v := range f {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// Clone returns an independent copy.
func (f Field) Clone() Field {
	out := make(Field, len(f))
	copy(out, f)
	return out
}

// FirstNonFinite returns the index of the first NaN or Inf cell, or -1.
func (f Field) FirstNonFinite() int {
	for i, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}

// ScalarField is a read-only view of a field for renderers.
type ScalarField struct {
	Grid   Grid
	values Field
}

// NewScalarField wraps values without copying.
func NewScalarField(g Grid, values Field) ScalarField {
	return ScalarField{Grid: g, values: values}
}

// Value returns the value at cell (i, j).
func (s ScalarField) Value(i, j int) (float64, error) {
	if err := s.Grid.check(i, j); err != nil {
		return 0, err
	}
	return s.values[s.Grid.Index(i, j)], nil
}

// Values exposes the backing slice. Callers must not modify it.
func (s ScalarField) Values() Field { return s.values }

// VectorField is a read-only view of a (u, v) field pair.
type VectorField struct {
	Grid Grid
	u, v Field
}

// NewVectorField wraps the components without copying.
func NewVectorField(g Grid, u, v Field) VectorField {
	return VectorField{Grid: g, u: u, v: v}
}

// Value returns the velocity at cell (i, j).
func (vf VectorField) Value(i, j int) (float64, float64, error) {
	if err := vf.Grid.check(i, j); err != nil {
		return 0, 0, err
	}
	idx := vf.Grid.Index(i, j)
	return vf.u[idx], vf.v[idx], nil
}

// Components exposes the backing slices. Callers must not modify them.
func (vf VectorField) Components() (Field, Field) { return vf.u, vf.v }

func (g Grid) check(i, j int) error {
	if i < 0 || i > g.N+1 {
		return fmt.Errorf("x index %d out of range, must be between 0 and %d", i, g.N+1)
	}
	if j < 0 || j > g.N+1 {
		return fmt.Errorf("y index %d out of range, must be between 0 and %d", j, g.N+1)
	}
	return nil
}
