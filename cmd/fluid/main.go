//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"stablefluids/internal/app"
	"stablefluids/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	configPath := flag.String("config", "", "JSON simulation config (flags still override)")
	verbose := flag.Bool("v", false, "log scene and reset events")
	flag.Parse()

	if *configPath != "" {
		loaded, err := sim.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Sim = overrideSet(loaded, cfg.Sim)
	}

	s, err := sim.New(cfg.Sim)
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		s.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	game, err := app.New(s, s.Grid(), *cfg)
	if err != nil {
		log.Fatal(err)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("stablefluids — " + s.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// overrideSet applies flags given on the command line on top of a loaded
// config.
func overrideSet(base, flags sim.Config) sim.Config {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			base.N = flags.N
		case "diff":
			base.Diffusion = flags.Diffusion
		case "visc":
			base.Viscosity = flags.Viscosity
		case "iters":
			base.Iterations = flags.Iterations
		case "scene":
			base.Scene = flags.Scene
		case "check-finite":
			base.CheckFinite = flags.CheckFinite
		case "seed":
			base.Seed = flags.Seed
		}
	})
	return base
}
