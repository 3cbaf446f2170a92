package ui

import (
	"image/color"
	"math"
)

// arrowSample is one arrow anchor: the fluid cell it reads and the screen
// position it is drawn at.
type arrowSample struct {
	i, j   int
	sx, sy float64
}

type segment struct {
	x1, y1, x2, y2 float64
	thickness      float64
}

const (
	targetSamples = 360.0
	minSpacing    = 6
	maxSpacing    = 20
)

// layoutSamples spreads roughly targetSamples anchors over an n×n view drawn
// at the given pixel scale and returns them with the spacing in pixels.
func layoutSamples(n, scale int) ([]arrowSample, float64) {
	if n <= 0 {
		return nil, 0
	}
	if scale <= 0 {
		scale = 1
	}
	spacing := int(math.Sqrt(float64(n*n) / targetSamples))
	if spacing < minSpacing {
		spacing = minSpacing
	}
	if spacing > maxSpacing {
		spacing = maxSpacing
	}

	count := (n + spacing - 1) / spacing
	start := (n - 1 - (count-1)*spacing) / 2
	if start < 0 {
		start = 0
	}

	samples := make([]arrowSample, 0, count*count)
	for yi := 0; yi < count; yi++ {
		row := min(start+yi*spacing, n-1)
		for xi := 0; xi < count; xi++ {
			col := min(start+xi*spacing, n-1)
			samples = append(samples, arrowSample{
				i:  col + 1,
				j:  n - row,
				sx: (float64(col) + 0.5) * float64(scale),
				sy: (float64(row) + 0.5) * float64(scale),
			})
		}
	}
	return samples, float64(spacing * scale)
}

// arrowSegments builds the shaft and two head strokes for a velocity (vx, vy)
// with y up. It returns false for a vector below calmThreshold.
func arrowSegments(sx, sy, vx, vy, span float64, scale int, maxSpeed float64) ([3]segment, float64, bool) {
	const (
		calmThreshold = 1e-4
		headAngle     = math.Pi / 6
		minThickness  = 0.65
		maxThickness  = 1.05
	)
	var segs [3]segment
	speed := math.Hypot(vx, vy)
	if speed < calmThreshold || maxSpeed <= 0 {
		return segs, 0, false
	}
	nx := vx / speed
	ny := -vy / speed
	normalized := clamp01(speed / maxSpeed)

	minLength := span * 0.35
	maxLength := span * 0.7
	length := minLength + (maxLength-minLength)*math.Sqrt(normalized)
	headLength := math.Min(length*0.3, float64(scale)*4.5)
	tailLength := length * 0.4
	tipX := sx + nx*(length-tailLength)
	tipY := sy + ny*(length-tailLength)
	tailX := sx - nx*tailLength
	tailY := sy - ny*tailLength

	thickness := math.Max(1, float64(scale)*(minThickness+(maxThickness-minThickness)*normalized))
	segs[0] = segment{tailX, tailY, tipX - nx*headLength, tipY - ny*headLength, thickness}

	angle := math.Atan2(ny, nx)
	segs[1] = segment{tipX, tipY, tipX - math.Cos(angle+headAngle)*headLength, tipY - math.Sin(angle+headAngle)*headLength, thickness * 0.85}
	segs[2] = segment{tipX, tipY, tipX - math.Cos(angle-headAngle)*headLength, tipY - math.Sin(angle-headAngle)*headLength, thickness * 0.85}
	return segs, normalized, true
}

func interpolateColor(t float64) color.RGBA {
	t = clamp01(t)
	r := uint8(math.Round(80 + 70*t))
	g := uint8(math.Round(170 + 70*t))
	b := uint8(math.Round(230 + 20*t))
	a := uint8(math.Round(150 + 90*t))
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
