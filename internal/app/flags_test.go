package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBindParsesAppAndSimFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("fluid", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-n", "64", "-scene", "Whirlwind Scene", "-scale", "3", "-iters", "30"}))

	require.Equal(t, 64, cfg.Sim.N)
	require.Equal(t, "Whirlwind Scene", cfg.Sim.Scene)
	require.Equal(t, 30, cfg.Sim.Iterations)
	require.Equal(t, 3, cfg.Scale)
	require.Equal(t, 60, cfg.TPS)
}

func TestCellAt(t *testing.T) {
	i, j, ok := CellAt(0, 0, 4, 10)
	require.True(t, ok)
	require.Equal(t, 1, i)
	require.Equal(t, 10, j)

	i, j, ok = CellAt(39, 39, 4, 10)
	require.True(t, ok)
	require.Equal(t, 10, i)
	require.Equal(t, 1, j)

	_, _, ok = CellAt(40, 0, 4, 10)
	require.False(t, ok)
	_, _, ok = CellAt(-1, 3, 4, 10)
	require.False(t, ok)
}
