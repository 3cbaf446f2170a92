package scene

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stablefluids/internal/core"
	"stablefluids/internal/fluid"
	"stablefluids/internal/source"
)

func testGrid(t *testing.T, n int) core.Grid {
	t.Helper()
	g, err := core.NewGrid(n)
	require.NoError(t, err)
	return g
}

func TestNewCopiesSourceLists(t *testing.T) {
	g := testGrid(t, 8)
	dens := []fluid.DensitySource{source.NewCircular(g, 4, 4, 2, 1)}
	s := New("custom", dens, nil)
	dens[0] = nil

	require.Equal(t, "custom", s.Name())
	require.Len(t, s.DensitySources(), 1)
	require.NotNil(t, s.DensitySources()[0])
	require.Empty(t, s.VelocitySources())

	got := s.DensitySources()
	got[0] = nil
	require.NotNil(t, s.DensitySources()[0])
}

func TestBuiltinCatalogIsSorted(t *testing.T) {
	require.Equal(t, []string{Crosswind, Empty, TwinJets, WaterFountain, Whirlwind}, Names())

	scenes := Catalog(testGrid(t, 32))
	require.Len(t, scenes, 5)
	for i, s := range scenes {
		require.Equal(t, Names()[i], s.Name())
	}
}

func TestBuiltinScenesMatchGrid(t *testing.T) {
	g := testGrid(t, 40)
	solver, err := fluid.NewSolver(g, fluid.DefaultIterations)
	require.NoError(t, err)

	for _, s := range Catalog(g) {
		for _, d := range s.DensitySources() {
			require.NoError(t, solver.CheckSize(d.Source()), s.Name())
		}
		for _, v := range s.VelocitySources() {
			require.NoError(t, solver.CheckSize(v.Horizontal(), v.Vertical()), s.Name())
		}
	}
}

func TestBuiltinSourceCounts(t *testing.T) {
	g := testGrid(t, 100)
	counts := map[string][2]int{}
	for _, s := range Catalog(g) {
		counts[s.Name()] = [2]int{len(s.DensitySources()), len(s.VelocitySources())}
	}
	require.Equal(t, [2]int{0, 0}, counts[Empty])
	require.Equal(t, [2]int{1, 1}, counts[Crosswind])
	require.Equal(t, [2]int{1, 1}, counts[Whirlwind])
	require.Equal(t, [2]int{1, 2}, counts[WaterFountain])
	require.Equal(t, [2]int{2, 2}, counts[TwinJets])
}

func TestWaterFountainHasGravity(t *testing.T) {
	g := testGrid(t, 20)
	s := Builders()[WaterFountain](g)
	gravity := s.VelocitySources()[1].Vertical()
	g.Interior(func(i, j, idx int) {
		if i < g.N && j < g.N {
			require.Equal(t, -0.05, gravity[idx])
		}
	})
}

func TestRegisterIgnoresInvalidEntries(t *testing.T) {
	before := len(Builders())
	Register("", func(core.Grid) Scene { return Scene{} })
	Register("nil builder", nil)
	require.Len(t, Builders(), before)
}
