package app

import (
	"flag"

	"stablefluids/internal/sim"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      sim.Config
	Scale    int
	TPS      int
	HUDWidth int
	Palette  string
	// Brush is the density added per painted cell per frame.
	Brush float64
	// Force scales mouse drag distance, in cells, into injected velocity.
	Force float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      sim.DefaultConfig(),
		Scale:    6,
		TPS:      60,
		HUDWidth: 240,
		Palette:  "inferno",
		Brush:    0.5,
		Force:    5,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.Sim.Bind(fs)
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.Palette, "palette", c.Palette, "density colour map")
	fs.Float64Var(&c.Brush, "brush", c.Brush, "density painted per frame")
	fs.Float64Var(&c.Force, "force", c.Force, "velocity per cell of mouse drag")
}

// CellAt maps a cursor position in the simulation view to fluid cell
// coordinates, with j = N on the top pixel row.
func CellAt(x, y, scale, n int) (int, int, bool) {
	if scale <= 0 {
		scale = 1
	}
	if x < 0 || y < 0 || x >= n*scale || y >= n*scale {
		return 0, 0, false
	}
	return x/scale + 1, n - y/scale, true
}
