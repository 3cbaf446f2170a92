package core

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// Sim defines what a viewer needs from a fluid simulation.
type Sim interface {
	Name() string
	Size() Size
	Tick(dt float64) error
	Reset()
	Density() ScalarField
	Velocity() VectorField
}

// SceneSelector is implemented by simulations that expose preset scenes.
type SceneSelector interface {
	SceneNames() []string
	ActiveScene() (string, bool)
	ActivateScene(name string)
}

// Painter is implemented by simulations that accept interactive injection.
type Painter interface {
	AddDensity(x, y int, amount float64)
	AddVelocity(x, y int, dx, dy float64)
}
