package source

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"stablefluids/internal/core"
)

func grid(t *testing.T, n int) core.Grid {
	t.Helper()
	g, err := core.NewGrid(n)
	require.NoError(t, err)
	return g
}

func nonZero(f core.Field) []int {
	var out []int
	for idx, v := range f {
		if v != 0 {
			out = append(out, idx)
		}
	}
	return out
}

func TestCircularRateUsesNominalArea(t *testing.T) {
	g := grid(t, 4)
	src := NewCircular(g, 2, 2, 1, 10)

	rate := src.Source()
	require.InDelta(t, 10/math.Pi, rate[g.Index(2, 2)], 1e-12)
	require.InDelta(t, 3.1831, rate[g.Index(2, 2)], 1e-4)
	require.Zero(t, rate[g.Index(0, 0)])
	// Distance 1 is not strictly inside a unit radius.
	require.Zero(t, rate[g.Index(3, 2)])
	require.Equal(t, []int{g.Index(2, 2)}, nonZero(rate))
	require.Equal(t, KindCircular, src.Kind())
}

func TestCircularNonPositiveRadiusIsEmpty(t *testing.T) {
	g := grid(t, 8)
	require.Empty(t, nonZero(NewCircular(g, 4, 4, 0, 10).Source()))
	require.Empty(t, nonZero(NewCircular(g, 4, 4, -3, 10).Source()))
}

func TestCircularTickKeepsRates(t *testing.T) {
	g := grid(t, 8)
	src := NewCircular(g, 4, 4, 2, 5)
	before := src.Source().Clone()
	src.Tick()
	require.Equal(t, before, src.Source())
}

func TestRectFillsClampedRectangle(t *testing.T) {
	g := grid(t, 6)
	src := NewRect(g, 2, 3, 1, 2, 0.5, -0.25)
	u, v := src.Horizontal(), src.Vertical()
	require.Len(t, nonZero(u), 6)
	for j := 2; j < 5; j++ {
		for i := 1; i < 3; i++ {
			require.Equal(t, 0.5, u[g.Index(i, j)])
			require.Equal(t, -0.25, v[g.Index(i, j)])
		}
	}
	require.Zero(t, u[g.Index(3, 2)])
	require.Zero(t, v[g.Index(1, 5)])
}

func TestRectClampIdempotence(t *testing.T) {
	g := grid(t, 10)
	over := NewRect(g, 50, 4, 7, -3, 1, 2)
	pre := NewRect(g, 10, 4, 7, 0, 1, 2)
	require.Equal(t, pre.Horizontal(), over.Horizontal())
	require.Equal(t, pre.Vertical(), over.Vertical())
}

func TestRectBeyondGridCollapsesToCorner(t *testing.T) {
	g := grid(t, 10)
	src := NewRect(g, 2, 2, 11, 11, 1, 1)
	corner := g.Index(10, 10)
	require.Equal(t, []int{corner}, nonZero(src.Horizontal()))
	require.Equal(t, []int{corner}, nonZero(src.Vertical()))
	require.Equal(t, 1.0, src.Horizontal()[corner])
}

func TestFieldSourceCopiesInput(t *testing.T) {
	g := grid(t, 3)
	u, v := g.NewField(), g.NewField()
	u[g.Index(1, 1)] = 4
	v[g.Index(2, 3)] = -1
	src := NewField(g, u, v)
	u[g.Index(1, 1)] = 0

	require.Equal(t, 4.0, src.Horizontal()[g.Index(1, 1)])
	require.Equal(t, -1.0, src.Vertical()[g.Index(2, 3)])
	require.Equal(t, KindField, src.Kind())
}

func TestVortexRotation(t *testing.T) {
	g := grid(t, 8)
	tangential := NewVortex(g, 4, 4, 1, 0)
	idx := g.Index(6, 4)
	require.InDelta(t, 0, tangential.Horizontal()[idx], 1e-12)
	require.InDelta(t, 2, tangential.Vertical()[idx], 1e-12)

	radial := NewVortex(g, 4, 4, 1, 90)
	require.InDelta(t, -2, radial.Horizontal()[idx], 1e-12)
	require.InDelta(t, 0, radial.Vertical()[idx], 1e-12)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "rect", KindRect.String())
	require.Equal(t, "unknown", Kind(9).String())
}
