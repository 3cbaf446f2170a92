//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"stablefluids/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws velocity arrows on top of the fluid view.
type Overlay struct {
	sim        core.Sim
	scale      int
	showArrows bool

	pixel      *ebiten.Image
	samples    []arrowSample
	span       float64
	cacheN     int
	cacheScale int
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the arrow layer.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showArrows = !o.showArrows
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showArrows {
		return
	}
	n := o.sim.Size().W
	scale := max(o.scale, 1)
	if o.cacheN != n || o.cacheScale != scale {
		o.samples, o.span = layoutSamples(n, scale)
		o.cacheN, o.cacheScale = n, scale
	}
	if len(o.samples) == 0 {
		return
	}

	vel := o.sim.Velocity()
	peak := 0.0
	for _, s := range o.samples {
		vx, vy, err := vel.Value(s.i, s.j)
		if err == nil {
			peak = math.Max(peak, math.Hypot(vx, vy))
		}
	}
	for _, s := range o.samples {
		vx, vy, err := vel.Value(s.i, s.j)
		if err != nil {
			continue
		}
		segs, normalized, ok := arrowSegments(s.sx, s.sy, vx, vy, o.span, scale, peak)
		if !ok {
			continue
		}
		col := interpolateColor(normalized)
		for _, seg := range segs {
			o.drawLine(screen, seg, col)
		}
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, s segment, col color.RGBA) {
	dx := s.x2 - s.x1
	dy := s.y2 - s.y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 || s.thickness <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, s.thickness)
	op.GeoM.Translate(0, -s.thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(s.x1, s.y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
