package sim

import (
	"strconv"

	"stablefluids/internal/core"
)

// Parameters exposes the current configuration for the HUD and reports.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	active, _ := s.ActiveScene()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("n", "Resolution", s.grid.N),
				core.StringParam("scene", "Scene", active),
			},
		},
		{
			Name: "Solver",
			Params: []core.Parameter{
				core.FloatParam("diff", "Diffusion", s.cfg.Diffusion),
				core.FloatParam("visc", "Viscosity", s.cfg.Viscosity),
				core.IntParam("iters", "Iterations", s.solver.Iterations()),
				core.BoolParam("check_finite", "Check finite", s.cfg.CheckFinite),
			},
		},
	}}
}

// ParameterControls lists the values adjustable while running.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "diff", Label: "Diffusion", Type: core.ParamTypeFloat, Step: 0.0001, Min: 0, HasMin: true, Max: 0.01, HasMax: true},
		{Key: "visc", Label: "Viscosity", Type: core.ParamTypeFloat, Step: 0.0001, Min: 0, HasMin: true, Max: 0.01, HasMax: true},
		{Key: "iters", Label: "Iterations", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true, Max: 200, HasMax: true},
	}
}

// SetFloatParameter updates a float coefficient. Invalid keys or values are
// rejected.
func (s *Simulation) SetFloatParameter(key string, value float64) bool {
	if !validCoefficient(value) {
		return false
	}
	switch key {
	case "diff":
		s.cfg.Diffusion = value
	case "visc":
		s.cfg.Viscosity = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer setting. Invalid keys or values are
// rejected.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	switch key {
	case "iters":
		if err := s.solver.SetIterations(value); err != nil {
			return false
		}
		s.cfg.Iterations = value
		return true
	default:
		return false
	}
}

// Diagnostics reports Stats as a parameter snapshot for display.
func (s *Simulation) Diagnostics() core.ParameterSnapshot {
	st := s.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Stats",
		Params: []core.Parameter{
			{Key: "mass", Label: "Mass", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(st.Mass, 'f', 3, 64)},
			{Key: "max_speed", Label: "Max speed", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(st.MaxSpeed, 'f', 4, 64)},
			{Key: "max_div", Label: "Max div", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(st.MaxDivergence, 'e', 2, 64)},
		},
	}}}
}
