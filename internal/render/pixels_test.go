package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"stablefluids/internal/core"
)

func testGrid(t *testing.T, n int) core.Grid {
	t.Helper()
	g, err := core.NewGrid(n)
	require.NoError(t, err)
	return g
}

func TestNewPaletteSamplesPresets(t *testing.T) {
	for _, name := range PaletteNames {
		p, err := NewPalette(name, 16)
		require.NoError(t, err, name)
		require.Len(t, p, 16)
		require.Equal(t, uint8(255), p[0].A)
	}
	_, err := NewPalette("sepia", 16)
	require.Error(t, err)
}

func TestPaletteIndexClampsDensity(t *testing.T) {
	p := make(Palette, 11)
	require.Equal(t, 0, p.Index(-1))
	require.Equal(t, 0, p.Index(0))
	require.Equal(t, 5, p.Index(DensityScale/2))
	require.Equal(t, 10, p.Index(DensityScale))
	require.Equal(t, 10, p.Index(100))
}

func TestFillDensityRGBAFlipsRows(t *testing.T) {
	g := testGrid(t, 3)
	d := g.NewField()
	d[g.Index(1, 3)] = DensityScale
	p := Palette{{A: 255}, {R: 255, A: 255}}

	buf := make([]byte, 4*9)
	FillDensityRGBA(buf, g, d, p)

	// (1, 3) is the top-left pixel.
	require.Equal(t, []byte{255, 0, 0, 255}, buf[0:4])
	require.Equal(t, []byte{0, 0, 0, 255}, buf[4:8])
	require.Equal(t, []byte{0, 0, 0, 255}, buf[32:36])
}

func TestFillDensityRGBAEmptyPaletteClears(t *testing.T) {
	g := testGrid(t, 2)
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	FillDensityRGBA(buf, g, g.NewField(), nil)
	require.Equal(t, make([]byte, 16), buf)
}

func TestVelocityTexel(t *testing.T) {
	require.Equal(t, [4]float64{0.5, 0.5, 0.5, 0}, VelocityTexel(0, 0))

	right := VelocityTexel(5, 0)
	require.InDelta(t, 1, right[0], 1e-12)
	require.InDelta(t, 0.5, right[1], 1e-12)
	require.InDelta(t, 0.5, right[3], 1e-12)

	down := VelocityTexel(0, -40)
	require.InDelta(t, 0, down[1], 1e-12)
	require.Equal(t, 1.0, down[3])
}

func TestFillVelocityRGBAPremultiplies(t *testing.T) {
	g := testGrid(t, 1)
	u, v := g.NewField(), g.NewField()
	u[g.Index(1, 1)] = VelocityScale

	buf := make([]byte, 4)
	FillVelocityRGBA(buf, g, u, v)
	require.Equal(t, []byte{255, 128, 128, 255}, buf)
}

func TestDensityFrame(t *testing.T) {
	g := testGrid(t, 2)
	d := g.NewField()
	d[g.Index(2, 1)] = DensityScale
	p := Palette{{A: 255}, {G: 255, A: 255}}

	img := DensityFrame(g, d, p)
	require.Equal(t, 2, img.Bounds().Dx())
	require.Equal(t, uint8(1), img.ColorIndexAt(1, 1))
	require.Equal(t, uint8(0), img.ColorIndexAt(0, 0))
	require.Equal(t, color.RGBA{G: 255, A: 255}, img.Palette[1])
}
