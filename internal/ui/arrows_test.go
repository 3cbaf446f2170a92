package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayoutSamplesCoversGrid(t *testing.T) {
	samples, span := layoutSamples(100, 4)
	require.NotEmpty(t, samples)
	require.Equal(t, float64(6*4), span)
	for _, s := range samples {
		require.GreaterOrEqual(t, s.i, 1)
		require.LessOrEqual(t, s.i, 100)
		require.GreaterOrEqual(t, s.j, 1)
		require.LessOrEqual(t, s.j, 100)
	}
	// The first row on screen reads the top of the fluid.
	require.Greater(t, samples[0].j, samples[len(samples)-1].j)
}

func TestLayoutSamplesEmptyGrid(t *testing.T) {
	samples, span := layoutSamples(0, 2)
	require.Empty(t, samples)
	require.Zero(t, span)
}

func TestArrowSegmentsPointAlongVelocity(t *testing.T) {
	segs, norm, ok := arrowSegments(50, 50, 0, 1, 20, 2, 2)
	require.True(t, ok)
	require.InDelta(t, 0.5, norm, 1e-12)
	shaft := segs[0]
	// Positive v points up the screen.
	require.Less(t, shaft.y2, shaft.y1)
	require.InDelta(t, shaft.x1, shaft.x2, 1e-9)
}

func TestArrowSegmentsSkipsCalmCells(t *testing.T) {
	_, _, ok := arrowSegments(0, 0, 0, 0, 20, 2, 1)
	require.False(t, ok)
	_, _, ok = arrowSegments(0, 0, 1, 0, 20, 2, 0)
	require.False(t, ok)
}

func TestInterpolateColorEndpoints(t *testing.T) {
	require.Equal(t, uint8(80), interpolateColor(-1).R)
	require.Equal(t, uint8(240), interpolateColor(2).A)
}
