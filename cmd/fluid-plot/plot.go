package main

import (
	"bufio"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"stablefluids/internal/core"
)

// densityGrid exposes an interior snapshot as a plotter.GridXYZ. Row r of the
// matrix holds fluid row j = r+1.
type densityGrid struct {
	m *mat.Dense
}

func (g densityGrid) Dims() (c, r int) {
	rows, cols := g.m.Dims()
	return cols, rows
}
func (g densityGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g densityGrid) X(c int) float64    { return float64(c + 1) }
func (g densityGrid) Y(r int) float64    { return float64(r + 1) }

// snapshot copies the interior of f into an N×N matrix.
func snapshot(g core.Grid, f core.Field) *mat.Dense {
	m := mat.NewDense(g.N, g.N, nil)
	g.Interior(func(i, j, idx int) {
		m.Set(j-1, i-1, f[idx])
	})
	return m
}

func saveHeatMap(m *mat.Dense, title, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "i"
	p.Y.Label.Text = "j"

	pal := moreland.Kindlmann().Palette(255)
	hm := plotter.NewHeatMap(densityGrid{m: m}, pal)
	if hm.Max <= hm.Min {
		hm.Max = hm.Min + 1
	}
	p.Add(hm)
	return savePlotPNG(p, 6, 6, filename)
}

func saveSeries(xs, ys []float64, title, yLabel, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("saveSeries: %w", err)
	}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)
	return savePlotPNG(p, 8, 5, filename)
}

// savePlotPNG renders a plot to a PNG at 150 DPI. Sizes are in inches.
func savePlotPNG(p *plot.Plot, widthIn, heightIn float64, filename string) error {
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(150),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("savePlotPNG: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(bw); err != nil {
		return fmt.Errorf("savePlotPNG: %w", err)
	}
	return bw.Flush()
}
