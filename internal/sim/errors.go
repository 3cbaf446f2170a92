package sim

import "errors"

var (
	// ErrInvalidResolution indicates a grid with fewer than one interior cell.
	ErrInvalidResolution = errors.New("sim: resolution must be at least 1")
	// ErrInvalidCoefficient indicates a negative or non-finite diffusion or viscosity.
	ErrInvalidCoefficient = errors.New("sim: coefficient must be finite and non-negative")
	// ErrInvalidIterations indicates a non-positive relaxation sweep count.
	ErrInvalidIterations = errors.New("sim: iterations must be at least 1")
	// ErrInvalidTimeStep indicates a negative or non-finite tick length.
	ErrInvalidTimeStep = errors.New("sim: time step must be finite and non-negative")
	// ErrNonFinite indicates that a tick produced NaN or Inf in a field.
	ErrNonFinite = errors.New("sim: non-finite value in field")
	// ErrDuplicateScene indicates a scene name that is already registered.
	ErrDuplicateScene = errors.New("sim: scene already registered")
	// ErrSceneName indicates a scene without a name.
	ErrSceneName = errors.New("sim: scene name must not be empty")
)
