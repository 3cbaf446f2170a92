package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"stablefluids/internal/scene"
	"stablefluids/internal/sim"
)

func TestExpandBuildsCartesianProduct(t *testing.T) {
	sets := expand([]string{"a", "b"}, []float64{0, 1}, []float64{0}, []int{10, 20, 30})
	require.Len(t, sets, 12)
	require.Equal(t, paramSet{scene: "a", diffusion: 0, viscosity: 0, iterations: 10}, sets[0])
}

func TestParseLists(t *testing.T) {
	fs, err := parseFloats(" 0, 0.5 ,")
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.5}, fs)

	_, err = parseInts("1,x")
	require.Error(t, err)
}

func TestSweepRunsEveryScenario(t *testing.T) {
	base := sim.DefaultConfig()
	base.N = 16
	sets := expand([]string{scene.Whirlwind, scene.TwinJets}, []float64{0.0001}, []float64{0}, []int{10})

	results, err := sweep(context.Background(), base, sets, 5, 0.1, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for i, res := range results {
		require.Equal(t, sets[i], res.params)
		require.NoError(t, res.err)
		require.Equal(t, 5, res.steps)
		require.Greater(t, res.peakMass, 0.0)
	}
}

func TestSweepRejectsUnknownScene(t *testing.T) {
	base := sim.DefaultConfig()
	base.N = 8
	_, err := sweep(context.Background(), base, expand([]string{"Nowhere"}, []float64{0}, []float64{0}, []int{5}), 1, 0.1, 1)
	require.Error(t, err)
}
