// Package render turns density and velocity fields into pixels. Rows are
// emitted top-down with j = N on the first row, so the fluid appears with its
// y axis pointing up.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/mazznoer/colorgrad"

	"stablefluids/internal/core"
)

const (
	// DensityScale maps a density of this value to the top of the palette.
	DensityScale = 2.5
	// VelocityScale maps a speed of this value to full intensity.
	VelocityScale = 10.0
)

// Palette is an ordered list of colours indexed by normalised density.
type Palette []color.RGBA

// PaletteNames lists the names accepted by NewPalette.
var PaletteNames = []string{"viridis", "inferno", "magma", "turbo", "greys"}

// NewPalette samples a named colorgrad preset into n colours.
func NewPalette(name string, n int) (Palette, error) {
	if n < 2 {
		n = 2
	}
	var grad colorgrad.Gradient
	switch name {
	case "viridis":
		grad = colorgrad.Viridis()
	case "inferno":
		grad = colorgrad.Inferno()
	case "magma":
		grad = colorgrad.Magma()
	case "turbo":
		grad = colorgrad.Turbo()
	case "greys":
		grad = colorgrad.Greys()
	default:
		return nil, fmt.Errorf("NewPalette: unknown palette %q", name)
	}
	cols := grad.Colors(uint(n))
	p := make(Palette, len(cols))
	for i, c := range cols {
		p[i] = color.RGBAModel.Convert(c).(color.RGBA)
	}
	return p, nil
}

// Index maps a raw density to a palette slot.
func (p Palette) Index(density float64) int {
	if len(p) == 0 {
		return 0
	}
	t := clamp01(density / DensityScale)
	return int(math.Round(t * float64(len(p)-1)))
}

// Colors converts the palette for use with image.Paletted.
func (p Palette) Colors() color.Palette {
	out := make(color.Palette, len(p))
	for i, c := range p {
		out[i] = c
	}
	return out
}

// FillDensityRGBA writes the interior of d into buf as N×N RGBA pixels. When
// the palette is empty the buffer is cleared to transparent black.
func FillDensityRGBA(buf []byte, g core.Grid, d core.Field, p Palette) {
	n := g.N
	if len(p) == 0 {
		clear(buf[:4*n*n])
		return
	}
	for j := 1; j <= n; j++ {
		row := (n - j) * n
		for i := 1; i <= n; i++ {
			col := p[p.Index(d[g.Index(i, j)])]
			base := (row + i - 1) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// VelocityTexel encodes a velocity as (r, g, b, a) in [0, 1]: the unit
// direction mapped from [-1, 1] to [0, 1] and the speed over VelocityScale as
// alpha. A zero vector encodes as mid-grey with zero alpha.
func VelocityTexel(u, v float64) [4]float64 {
	speed := math.Hypot(u, v)
	if speed == 0 {
		return [4]float64{0.5, 0.5, 0.5, 0}
	}
	return [4]float64{
		(u/speed + 1) * 0.5,
		(v/speed + 1) * 0.5,
		0.5,
		clamp01(speed / VelocityScale),
	}
}

// FillVelocityRGBA writes the interior of (u, v) into buf as premultiplied
// RGBA pixels using VelocityTexel.
func FillVelocityRGBA(buf []byte, g core.Grid, u, v core.Field) {
	n := g.N
	for j := 1; j <= n; j++ {
		row := (n - j) * n
		for i := 1; i <= n; i++ {
			idx := g.Index(i, j)
			t := VelocityTexel(u[idx], v[idx])
			base := (row + i - 1) * 4
			a := t[3]
			buf[base+0] = to8(t[0] * a)
			buf[base+1] = to8(t[1] * a)
			buf[base+2] = to8(t[2] * a)
			buf[base+3] = to8(a)
		}
	}
}

// DensityFrame renders the interior of d as a paletted image for GIF output.
func DensityFrame(g core.Grid, d core.Field, p Palette) *image.Paletted {
	n := g.N
	img := image.NewPaletted(image.Rect(0, 0, n, n), p.Colors())
	for j := 1; j <= n; j++ {
		for i := 1; i <= n; i++ {
			img.SetColorIndex(i-1, n-j, uint8(p.Index(d[g.Index(i, j)])))
		}
	}
	return img
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
