package sim

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"stablefluids/internal/fluid"
	"stablefluids/internal/scene"
)

// Config controls the grid resolution, transport coefficients and the scene a
// simulation starts with.
type Config struct {
	N           int     `json:"n"`
	Diffusion   float64 `json:"diffusion"`
	Viscosity   float64 `json:"viscosity"`
	Iterations  int     `json:"iterations"`
	Scene       string  `json:"scene"`
	CheckFinite bool    `json:"check_finite"`
	// Seed fills the density field with 0/1 noise when non-zero.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		N:           100,
		Diffusion:   0.0001,
		Viscosity:   0,
		Iterations:  fluid.DefaultIterations,
		Scene:       scene.Empty,
		CheckFinite: true,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.N = parsed
		}
	}
	if v, ok := cfg["diff"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && validCoefficient(parsed) {
			c.Diffusion = parsed
		}
	}
	if v, ok := cfg["visc"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && validCoefficient(parsed) {
			c.Viscosity = parsed
		}
	}
	if v, ok := cfg["iters"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Iterations = parsed
		}
	}
	if v, ok := cfg["scene"]; ok && v != "" {
		c.Scene = v
	}
	if v, ok := cfg["check_finite"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.CheckFinite = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// LoadConfig reads a JSON config file. Keys missing from the file keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("LoadConfig: %w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("LoadConfig: %s: %w", path, err)
	}
	return c, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.N, "n", c.N, "interior grid resolution")
	fs.Float64Var(&c.Diffusion, "diff", c.Diffusion, "density diffusion coefficient")
	fs.Float64Var(&c.Viscosity, "visc", c.Viscosity, "velocity viscosity coefficient")
	fs.IntVar(&c.Iterations, "iters", c.Iterations, "relaxation sweeps per solve")
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to activate at startup")
	fs.BoolVar(&c.CheckFinite, "check-finite", c.CheckFinite, "fail a tick that produces NaN or Inf")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for initial density noise (0 disables)")
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.N < 1 {
		return fmt.Errorf("Validate: n=%d: %w", c.N, ErrInvalidResolution)
	}
	if !validCoefficient(c.Diffusion) {
		return fmt.Errorf("Validate: diffusion=%g: %w", c.Diffusion, ErrInvalidCoefficient)
	}
	if !validCoefficient(c.Viscosity) {
		return fmt.Errorf("Validate: viscosity=%g: %w", c.Viscosity, ErrInvalidCoefficient)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("Validate: iterations=%d: %w", c.Iterations, ErrInvalidIterations)
	}
	return nil
}

func validCoefficient(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
