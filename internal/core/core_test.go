package core

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewGridRejectsEmptyInterior(t *testing.T) {
	_, err := NewGrid(0)
	require.ErrorIs(t, err, ErrInvalidResolution)
}

func TestGridAddressing(t *testing.T) {
	g, err := NewGrid(4)
	require.NoError(t, err)
	require.Equal(t, 36, g.Cells())
	require.Equal(t, 0, g.Index(0, 0))
	require.Equal(t, 2+6*3, g.Index(2, 3))
	require.Len(t, g.NewField(), 36)

	i, j := g.Clamp(-3, 9)
	require.Equal(t, 0, i)
	require.Equal(t, 5, j)
	i, j = g.ClampInterior(0, 9)
	require.Equal(t, 1, i)
	require.Equal(t, 4, j)
}

func TestGridInteriorVisitsEachCellOnce(t *testing.T) {
	g, err := NewGrid(3)
	require.NoError(t, err)
	seen := map[int]bool{}
	g.Interior(func(i, j, idx int) {
		require.Equal(t, g.Index(i, j), idx)
		require.False(t, seen[idx])
		seen[idx] = true
	})
	require.Len(t, seen, 9)
}

func TestFieldHelpers(t *testing.T) {
	f := Field{1, -4, 2}
	require.Equal(t, -1.0, f.Sum())
	require.Equal(t, 4.0, f.MaxAbs())
	require.Equal(t, -1, f.FirstNonFinite())

	c := f.Clone()
	c[0] = 9
	require.Equal(t, 1.0, f[0])

	f[2] = math.Inf(1)
	require.Equal(t, 2, f.FirstNonFinite())

	f.Zero()
	require.Equal(t, Field{0, 0, 0}, f)
}

func TestScalarFieldValueBounds(t *testing.T) {
	g, err := NewGrid(2)
	require.NoError(t, err)
	f := g.NewField()
	f[g.Index(1, 2)] = 5
	view := NewScalarField(g, f)

	v, err := view.Value(1, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	_, err = view.Value(4, 0)
	require.Error(t, err)
	_, err = view.Value(0, -1)
	require.Error(t, err)
}

func TestVectorFieldValue(t *testing.T) {
	g, err := NewGrid(2)
	require.NoError(t, err)
	u, v := g.NewField(), g.NewField()
	u[g.Index(2, 1)] = 1
	v[g.Index(2, 1)] = -1
	view := NewVectorField(g, u, v)

	a, b, err := view.Value(2, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, a)
	require.Equal(t, -1.0, b)
}

func TestRNGFillBinaryIsDeterministic(t *testing.T) {
	g, err := NewGrid(8)
	require.NoError(t, err)
	a, b := g.NewField(), g.NewField()
	NewRNG(42).FillBinary(g, a)
	NewRNG(42).FillBinary(g, b)
	require.Equal(t, a, b)

	require.Equal(t, 0.0, a[g.Index(0, 0)])
	ones := 0
	g.Interior(func(_, _, idx int) {
		require.Contains(t, []float64{0, 1}, a[idx])
		if a[idx] == 1 {
			ones++
		}
	})
	require.Greater(t, ones, 0)
}

func TestFixedStepPacing(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }
	require.InDelta(t, 0.1, fs.Seconds(), 1e-12)

	// The first call fires immediately from the primed accumulator.
	require.True(t, fs.ShouldStep())
	require.False(t, fs.ShouldStep())

	now = now.Add(50 * time.Millisecond)
	require.False(t, fs.ShouldStep())
	now = now.Add(60 * time.Millisecond)
	require.True(t, fs.ShouldStep())
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "Solver",
		Params: []Parameter{IntParam("iters", "Iterations", 20), FloatParam("diff", "Diffusion", 0.25)},
	}}}
	p, ok := snap.Lookup("diff")
	require.True(t, ok)
	require.Equal(t, "0.25", p.Value)
	require.Equal(t, ParamTypeFloat, p.Type)
	_, ok = snap.Lookup("missing")
	require.False(t, ok)
}
