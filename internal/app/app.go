//go:build ebiten

package app

import (
	"image/color"

	"stablefluids/internal/core"
	"stablefluids/internal/render"
	"stablefluids/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a fluid simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.FieldPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	step    *core.FixedStep
	cfg     Config

	view     render.View
	paused   bool
	tickOnce bool

	dragging     bool
	lastX, lastY int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, grid core.Grid, cfg Config) (*Game, error) {
	palette, err := render.NewPalette(cfg.Palette, 256)
	if err != nil {
		return nil, err
	}
	return &Game{
		sim:     sim,
		painter: render.NewFieldPainter(grid, palette),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		step:    core.NewFixedStep(cfg.TPS),
		cfg:     cfg,
	}, nil
}

// Reset zeroes the fluid and keeps the active scene.
func (g *Game) Reset() {
	g.sim.Reset()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		if g.view == render.ViewDensity {
			g.view = render.ViewVelocity
		} else {
			g.view = render.ViewDensity
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.nextScene()
	}

	g.overlay.Update()
	g.hud.Update(g.viewSize())
	g.paint()

	if g.step.ShouldStep() && (!g.paused || g.tickOnce) {
		if err := g.sim.Tick(g.step.Seconds()); err != nil {
			return err
		}
		g.tickOnce = false
	}
	return nil
}

func (g *Game) nextScene() {
	sel, ok := g.sim.(core.SceneSelector)
	if !ok {
		return
	}
	names := sel.SceneNames()
	if len(names) == 0 {
		return
	}
	active, _ := sel.ActiveScene()
	next := names[0]
	for i, name := range names {
		if name == active {
			next = names[(i+1)%len(names)]
			break
		}
	}
	sel.ActivateScene(next)
}

// paint injects density with the left button and drag velocity with the
// right button.
func (g *Game) paint() {
	p, ok := g.sim.(core.Painter)
	if !ok {
		return
	}
	mx, my := ebiten.CursorPosition()
	n := g.sim.Size().W
	i, j, inside := CellAt(mx, my, g.cfg.Scale, n)
	if !inside {
		g.dragging = false
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		p.AddDensity(i, j, g.cfg.Brush)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if g.dragging {
			dx := float64(mx-g.lastX) / float64(g.cfg.Scale)
			dy := -float64(my-g.lastY) / float64(g.cfg.Scale)
			p.AddVelocity(i, j, dx*g.cfg.Force, dy*g.cfg.Force)
		}
		g.dragging = true
		g.lastX, g.lastY = mx, my
		return
	}
	g.dragging = false
}

func (g *Game) viewSize() int {
	return g.sim.Size().W * g.cfg.Scale
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.sim, g.view, g.cfg.Scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewSize(), g.cfg.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewSize() + max(g.cfg.HUDWidth, 0), g.viewSize()
}
