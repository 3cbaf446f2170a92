package core

import (
	"errors"
	"fmt"
)

// ErrInvalidResolution is returned when a grid is requested with fewer than
// one interior cell per side.
var ErrInvalidResolution = errors.New("core: grid resolution must be at least 1")

// Grid describes an N×N interior surrounded by a one-cell boundary ring. Cells
// are stored column-fastest: index(i, j) = i + (N+2)*j for i, j in [0, N+1].
type Grid struct {
	N      int
	Stride int
}

// NewGrid returns the addressing scheme for an N×N interior.
func NewGrid(n int) (Grid, error) {
	if n < 1 {
		return Grid{}, fmt.Errorf("NewGrid: n=%d: %w", n, ErrInvalidResolution)
	}
	return Grid{N: n, Stride: n + 2}, nil
}

// Index returns the linear slice index for cell (i, j).
func (g Grid) Index(i, j int) int { return i + g.Stride*j }

// Cells reports the total number of cells including the boundary ring.
func (g Grid) Cells() int { return g.Stride * g.Stride }

// NewField allocates a zero-filled field sized for the grid.
func (g Grid) NewField() Field { return make(Field, g.Cells()) }

// Clamp constrains (i, j) to the addressable range [0, N+1].
func (g Grid) Clamp(i, j int) (int, int) {
	return clampInt(i, 0, g.N+1), clampInt(j, 0, g.N+1)
}

// ClampInterior constrains (i, j) to the interior range [1, N].
func (g Grid) ClampInterior(i, j int) (int, int) {
	return clampInt(i, 1, g.N), clampInt(j, 1, g.N)
}

// Interior calls fn for every interior cell, i fastest.
func (g Grid) Interior(fn func(i, j, idx int)) {
	for j := 1; j <= g.N; j++ {
		row := g.Stride * j
		for i := 1; i <= g.N; i++ {
			fn(i, j, row+i)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
