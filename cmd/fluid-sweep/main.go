package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"stablefluids/internal/scene"
	"stablefluids/internal/sim"
)

type paramSet struct {
	scene      string
	diffusion  float64
	viscosity  float64
	iterations int
}

func (p paramSet) String() string {
	return fmt.Sprintf("scene=%q diff=%g visc=%g iters=%d", p.scene, p.diffusion, p.viscosity, p.iterations)
}

type scenarioResult struct {
	params   paramSet
	mass     float64
	peakMass float64
	maxSpeed float64
	maxDiv   float64
	steps    int
	elapsed  time.Duration
	err      error
}

func main() {
	base := sim.DefaultConfig()
	base.N = 64
	base.Bind(flag.CommandLine)
	steps := flag.Int("steps", 200, "ticks to simulate per scenario")
	dt := flag.Float64("dt", 0.1, "tick length in seconds")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	scenes := flag.String("scenes", "", "comma-separated scenes to sweep (default: all)")
	diffs := flag.String("diffs", "0,0.0001,0.001", "comma-separated diffusion values")
	viscs := flag.String("viscs", "0,0.0001", "comma-separated viscosity values")
	iters := flag.String("iters-list", "10,20,40", "comma-separated relaxation sweep counts")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	sceneNames := scene.Names()
	if *scenes != "" {
		sceneNames = splitList(*scenes)
	}
	diffValues, err := parseFloats(*diffs)
	if err != nil {
		log.Fatal(err)
	}
	viscValues, err := parseFloats(*viscs)
	if err != nil {
		log.Fatal(err)
	}
	iterValues, err := parseInts(*iters)
	if err != nil {
		log.Fatal(err)
	}

	sets := expand(sceneNames, diffValues, viscValues, iterValues)
	logger.Info("sweep starting", "sets", len(sets), "workers", *workers, "steps", *steps, "n", base.N)

	start := time.Now()
	results, err := sweep(context.Background(), base, sets, *steps, *dt, *workers)
	if err != nil {
		log.Fatal(err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].maxDiv < results[j].maxDiv })

	fmt.Printf("\nResults by peak divergence (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i, res := range results {
		if res.err != nil {
			fmt.Printf("%2d) FAILED after %d steps: %v params=%s\n", i+1, res.steps, res.err, res.params)
			continue
		}
		fmt.Printf("%2d) mass=%.3f peakMass=%.3f maxSpeed=%.4f maxDiv=%.2e time=%s params=%s\n",
			i+1, res.mass, res.peakMass, res.maxSpeed, res.maxDiv, res.elapsed.Round(time.Millisecond), res.params)
	}
}

func expand(scenes []string, diffs, viscs []float64, iters []int) []paramSet {
	var sets []paramSet
	for _, name := range scenes {
		for _, d := range diffs {
			for _, v := range viscs {
				for _, it := range iters {
					sets = append(sets, paramSet{scene: name, diffusion: d, viscosity: v, iterations: it})
				}
			}
		}
	}
	return sets
}

// sweep runs every set on its own Simulation with at most workers running at
// once. Numerical failures are recorded per result, configuration errors
// abort the sweep.
func sweep(ctx context.Context, base sim.Config, sets []paramSet, steps int, dt float64, workers int) ([]scenarioResult, error) {
	results := make([]scenarioResult, len(sets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, params := range sets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runScenario(base, params, steps, dt)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(base sim.Config, params paramSet, steps int, dt float64) (scenarioResult, error) {
	cfg := base
	cfg.Scene = params.scene
	cfg.Diffusion = params.diffusion
	cfg.Viscosity = params.viscosity
	cfg.Iterations = params.iterations

	s, err := sim.New(cfg)
	if err != nil {
		return scenarioResult{}, fmt.Errorf("%s: %w", params, err)
	}
	if active, ok := s.ActiveScene(); !ok || active != params.scene {
		return scenarioResult{}, fmt.Errorf("%s: unknown scene", params)
	}

	res := scenarioResult{params: params}
	start := time.Now()
	for step := 0; step < steps; step++ {
		if err := s.Tick(dt); err != nil {
			res.err = err
			break
		}
		res.steps = step + 1
		st := s.Stats()
		res.peakMass = max(res.peakMass, st.Mass)
		res.maxSpeed = max(res.maxSpeed, st.MaxSpeed)
		res.maxDiv = max(res.maxDiv, st.MaxDivergence)
	}
	res.mass = s.Stats().Mass
	res.elapsed = time.Since(start)
	return res, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range splitList(s) {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range splitList(s) {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}
