// Package springs implements a sandbox: a chain of blocks hanging from a
// fixed anchor on zero-rest-length springs, damped by drag, over a floor
// that absorbs most of each bounce. Impulse kicks let the player swing the
// chain around. There is no way to win or lose.
package springs

import (
	"github.com/polyarena/polyarena/internal/config"
	"github.com/polyarena/polyarena/internal/core"
	"github.com/polyarena/polyarena/internal/physics"
	"github.com/polyarena/polyarena/internal/registry"
)

const (
	blockSize   = 4.0
	floorHeight = 4.0
	anchorSize  = 3.0
	linkSpacing = 8.0

	// Mild pull so the chain hangs below the anchor instead of collapsing
	// onto it.
	gravityAccel = 5.0
)

var (
	anchorColor = physics.Color{R: 0.8, G: 0.8, B: 0.8}
	blockColor  = physics.Color{R: 0.1, G: 0.7, B: 0.7}
	activeColor = physics.Color{R: 1.0, G: 1.0, B: 0.3}
	floorColor  = physics.Color{R: 0.5, G: 0.5, B: 0.5}
)

var configPath string

// SetConfigPath sets the YAML config path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the spring-chain sandbox.
type Game struct {
	cfg   config.SpringsConfig
	rt    core.RuntimeConfig
	view  core.Viewport
	scene *physics.Scene

	anchor *physics.Body
	floor  *physics.Body
	blocks []*physics.Body

	selected int
	paused   bool
}

// New creates a springs game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("springs", func() registry.Game { return New() })
}

// ID returns the game identifier.
func (g *Game) ID() string { return "springs" }

// Title returns the display name.
func (g *Game) Title() string { return "Spring Chain" }

// Reset hangs a fresh chain: an immovable anchor near the top of the
// world, blocks spaced straight down from it, springs between neighbors,
// drag on every block, and an inelastic floor across the bottom.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadSprings(configPath)
	if err != nil {
		cfg = config.DefaultSpringsConfig()
	}
	g.cfg = cfg
	g.rt = rt
	g.view = core.NewViewport(cfg.World.Width, cfg.World.Height, rt.ScreenW, rt.ScreenH)
	g.scene = physics.NewScene()
	g.blocks = nil
	g.selected = 0
	g.paused = false

	g.floor = physics.NewBody(physics.NewBox(cfg.World.Width, floorHeight),
		physics.Immovable(), floorColor)
	g.floor.SetCentroid(physics.Vec{X: cfg.World.Width / 2, Y: floorHeight / 2})
	g.scene.AddBody(g.floor)

	top := physics.Vec{X: cfg.World.Width / 2, Y: cfg.World.Height - 10}
	g.anchor = physics.NewBody(physics.NewBox(anchorSize, anchorSize),
		physics.Immovable(), anchorColor)
	g.anchor.SetCentroid(top)
	g.scene.AddBody(g.anchor)

	prev := g.anchor
	for i := 0; i < cfg.Blocks; i++ {
		b := physics.NewBody(physics.NewBox(blockSize, blockSize),
			physics.Kilograms(cfg.BlockMass), blockColor)
		b.SetCentroid(physics.Vec{X: top.X, Y: top.Y - float64(i+1)*linkSpacing})
		g.scene.AddBody(b)
		g.blocks = append(g.blocks, b)

		physics.CreateSpring(g.scene, cfg.Stiffness, prev, b)
		physics.CreateDrag(g.scene, cfg.Drag, b)
		physics.CreateDownwardGravity(g.scene, gravityAccel, b)
		physics.CreatePhysicsCollision(g.scene, b, g.floor, cfg.Elasticity)
		prev = b
	}
}

// Step advances the chain one tick, applying kick impulses to the
// selected block.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionNext) && len(g.blocks) > 0 {
		g.selected = (g.selected + 1) % len(g.blocks)
	}
	if g.selected < len(g.blocks) {
		b := g.blocks[g.selected]
		j := g.cfg.Impulse
		if in.Has(core.ActionLeft) {
			b.AddImpulse(physics.Vec{X: -j})
		}
		if in.Has(core.ActionRight) {
			b.AddImpulse(physics.Vec{X: j})
		}
		if in.Has(core.ActionUp) {
			b.AddImpulse(physics.Vec{Y: j})
		}
		if in.Has(core.ActionDown) {
			b.AddImpulse(physics.Vec{Y: -j})
		}
	}

	g.scene.Tick(g.rt.Dt())
	return core.StepResult{State: g.State()}
}

// State marks the game as a sandbox: it never ends and records no scores.
func (g *Game) State() core.GameState {
	return core.GameState{
		Sandbox: true,
		Paused:  g.paused,
	}
}
