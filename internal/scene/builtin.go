package scene

import (
	"math"

	"stablefluids/internal/core"
	"stablefluids/internal/fluid"
	"stablefluids/internal/source"
)

// Built-in scene names.
const (
	Empty         = "Empty Scene"
	Crosswind     = "Crosswind Scene"
	Whirlwind     = "Whirlwind Scene"
	WaterFountain = "Water Fountain Scene"
	TwinJets      = "Twin Jets Scene"
)

func init() {
	Register(Empty, func(core.Grid) Scene { return New(Empty, nil, nil) })
	Register(Crosswind, crosswind)
	Register(Whirlwind, whirlwind)
	Register(WaterFountain, waterFountain)
	Register(TwinJets, twinJets)
}

// crosswind feeds dye from the left edge into a rightward band.
func crosswind(g core.Grid) Scene {
	n := g.N
	fn := float64(n)
	return New(Crosswind,
		[]fluid.DensitySource{
			source.NewCircular(g, fn/8, fn/2, math.Max(fn/20, 1), 40),
		},
		[]fluid.VelocitySource{
			source.NewRect(g, n, n/5, 0, n/2-n/10, 0.08, 0),
		},
	)
}

// whirlwind drops dye off-centre into a grid-wide swirl turned 80° inwards.
func whirlwind(g core.Grid) Scene {
	n := g.N
	fn := float64(n)
	c := float64(n+2) * 0.5
	return New(Whirlwind,
		[]fluid.DensitySource{
			source.NewCircular(g, fn/2+fn/5, fn/2-fn/5, math.Max(fn/10, 1), 50),
		},
		[]fluid.VelocitySource{
			source.NewVortex(g, c, c, 0.002, 80),
		},
	)
}

// waterFountain pushes dye up from the bottom centre against gravity.
func waterFountain(g core.Grid) Scene {
	n := g.N
	fn := float64(n)
	return New(WaterFountain,
		[]fluid.DensitySource{
			source.NewCircular(g, fn*0.5, fn*0.2, math.Max(fn/40, 1), 30),
		},
		[]fluid.VelocitySource{
			source.NewRect(g, n/10, n/10, n/2-n/20, n/5-n/20, 0, 0.15),
			source.NewRect(g, n, n, 0, 0, 0, -0.05),
		},
	)
}

// twinJets fires two dye plumes at each other across the middle row.
func twinJets(g core.Grid) Scene {
	n := g.N
	fn := float64(n)
	r := math.Max(fn/20, 1)
	side := n / 5
	return New(TwinJets,
		[]fluid.DensitySource{
			source.NewCircular(g, fn/4, fn/2, r, 100),
			source.NewCircular(g, 3*fn/4, fn/2, r, 100),
		},
		[]fluid.VelocitySource{
			source.NewRect(g, side, side, n/4-n/10, n/2-n/10, 0.1, 0),
			source.NewRect(g, side, side, 3*n/4-n/10, n/2-n/10, -0.1, 0),
		},
	)
}
