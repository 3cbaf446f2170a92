package main

import (
	"flag"
	"fmt"
	"image"
	"image/gif"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"stablefluids/internal/render"
	"stablefluids/internal/scene"
	"stablefluids/internal/sim"
)

func main() {
	cfg := sim.DefaultConfig()
	cfg.N = 64
	cfg.Scene = scene.WaterFountain
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 300, "ticks to simulate")
	dt := flag.Float64("dt", 0.1, "tick length in seconds")
	every := flag.Int("every", 50, "save a heatmap every this many ticks (0 disables)")
	outDir := flag.String("out", "out", "output directory")
	gifPath := flag.String("gif", "", "also write an animated GIF of the density to this file")
	gifEvery := flag.Int("gif-every", 2, "GIF frame interval in ticks")
	paletteName := flag.String("palette", "viridis", "GIF colour map")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	s, err := sim.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	var anim *gif.GIF
	var palette render.Palette
	if *gifPath != "" {
		palette, err = render.NewPalette(*paletteName, 256)
		if err != nil {
			log.Fatal(err)
		}
		anim = &gif.GIF{}
	}

	var series timeSeries
	g := s.Grid()
	for step := 1; step <= *steps; step++ {
		if err := s.Tick(*dt); err != nil {
			log.Fatalf("step %d: %v", step, err)
		}
		series.add(float64(step)*(*dt), s.Stats())

		if *every > 0 && step%*every == 0 {
			name := filepath.Join(*outDir, fmt.Sprintf("density_t%06d.png", step))
			title := fmt.Sprintf("%s density, t = %.2f s", cfg.Scene, float64(step)*(*dt))
			if err := saveHeatMap(snapshot(g, s.Density().Values()), title, name); err != nil {
				log.Fatal(err)
			}
			logger.Info("saved heatmap", "file", name)
		}
		if anim != nil && *gifEvery > 0 && step%*gifEvery == 0 {
			anim.Image = append(anim.Image, render.DensityFrame(g, s.Density().Values(), palette))
			anim.Delay = append(anim.Delay, 4)
		}
	}

	massFile := filepath.Join(*outDir, "mass.png")
	if err := saveSeries(series.t, series.mass, "Total density vs time", "mass", massFile); err != nil {
		log.Fatal(err)
	}
	speedFile := filepath.Join(*outDir, "max_speed.png")
	if err := saveSeries(series.t, series.speed, "Peak speed vs time", "|u|", speedFile); err != nil {
		log.Fatal(err)
	}
	logger.Info("saved time series", "mass", massFile, "speed", speedFile)

	if anim != nil {
		if err := writeGIF(*gifPath, anim); err != nil {
			log.Fatal(err)
		}
		logger.Info("saved animation", "file", *gifPath, "frames", len(anim.Image))
	}
}

type timeSeries struct {
	t, mass, speed []float64
}

func (ts *timeSeries) add(t float64, st sim.Stats) {
	ts.t = append(ts.t, t)
	ts.mass = append(ts.mass, st.Mass)
	ts.speed = append(ts.speed, st.MaxSpeed)
}

func writeGIF(path string, anim *gif.GIF) error {
	if len(anim.Image) == 0 {
		return fmt.Errorf("writeGIF: no frames")
	}
	anim.Config = image.Config{
		ColorModel: anim.Image[0].Palette,
		Width:      anim.Image[0].Rect.Dx(),
		Height:     anim.Image[0].Rect.Dy(),
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writeGIF: %w", err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, anim); err != nil {
		return fmt.Errorf("writeGIF: %w", err)
	}
	return nil
}
