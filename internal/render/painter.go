//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"stablefluids/internal/core"
)

// View selects which field the painter shows.
type View int

const (
	ViewDensity View = iota
	ViewVelocity
)

// FieldPainter uploads one field of a simulation into an N×N image.
type FieldPainter struct {
	grid    core.Grid
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewFieldPainter allocates a painter for g using palette p for density.
func NewFieldPainter(g core.Grid, p Palette) *FieldPainter {
	return &FieldPainter{
		grid:    g,
		img:     ebiten.NewImage(g.N, g.N),
		buf:     make([]byte, 4*g.N*g.N),
		palette: p,
	}
}

// SetPalette swaps the density palette.
func (fp *FieldPainter) SetPalette(p Palette) { fp.palette = p }

// Blit encodes the selected view of sim and draws it scaled onto dst.
func (fp *FieldPainter) Blit(dst *ebiten.Image, sim core.Sim, view View, scale int) {
	switch view {
	case ViewVelocity:
		u, v := sim.Velocity().Components()
		if len(u) != fp.grid.Cells() || len(v) != fp.grid.Cells() {
			return
		}
		FillVelocityRGBA(fp.buf, fp.grid, u, v)
	default:
		d := sim.Density().Values()
		if len(d) != fp.grid.Cells() {
			return
		}
		FillDensityRGBA(fp.buf, fp.grid, d, fp.palette)
	}
	fp.img.WritePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FieldPainter) Size() (int, int) { return fp.grid.N, fp.grid.N }
