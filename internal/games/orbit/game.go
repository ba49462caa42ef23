// Package orbit implements a gravity sandbox: planets seeded on circular
// orbits around a heavy star, steered with small impulse nudges. Planets
// bounce off each other elastically and burn up on contact with the star;
// the score is how long at least one planet survives.
package orbit

import (
	"math"
	"math/rand"

	"github.com/polyarena/polyarena/internal/config"
	"github.com/polyarena/polyarena/internal/core"
	"github.com/polyarena/polyarena/internal/physics"
	"github.com/polyarena/polyarena/internal/registry"
)

const (
	starRadius   = 8.0
	planetRadius = 3.0
)

var (
	starColor    = physics.Color{R: 0.9, G: 0.9, B: 0.2}
	planetColors = []physics.Color{
		{R: 0.1, G: 0.7, B: 0.1},
		{R: 0.15, G: 0.15, B: 0.8},
		{R: 0.7, G: 0.1, B: 0.7},
		{R: 0.1, G: 0.7, B: 0.7},
		{R: 0.7, G: 0.1, B: 0.1},
		{R: 0.8, G: 0.8, B: 0.8},
	}
)

var configPath string

// SetConfigPath sets the YAML config path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the orbit sandbox.
type Game struct {
	cfg   config.OrbitConfig
	rt    core.RuntimeConfig
	view  core.Viewport
	scene *physics.Scene

	star    *physics.Body
	planets []*physics.Body

	selected int // Index into planets receiving nudge impulses
	ticks    int
	paused   bool
	gameOver bool
}

// New creates an orbit game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("orbit", func() registry.Game { return New() })
}

// ID returns the game identifier.
func (g *Game) ID() string { return "orbit" }

// Title returns the display name.
func (g *Game) Title() string { return "Orbit" }

// Reset seeds the system: a star at the world center and planets placed at
// random angles and radii with circular-orbit velocities, all pairs under
// mutual gravity.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadOrbit(configPath)
	if err != nil {
		cfg = config.DefaultOrbitConfig()
	}
	g.cfg = cfg
	g.rt = rt
	g.view = core.NewViewport(cfg.World.Width, cfg.World.Height, rt.ScreenW, rt.ScreenH)
	g.scene = physics.NewScene()
	g.planets = nil
	g.selected = 0
	g.ticks = 0
	g.paused = false
	g.gameOver = false

	center := physics.Vec{X: cfg.World.Width / 2, Y: cfg.World.Height / 2}
	g.star = physics.NewBody(physics.NewRegular(8, starRadius),
		physics.Kilograms(cfg.StarMass), starColor)
	g.star.SetCentroid(center)
	g.scene.AddBody(g.star)

	rng := rand.New(rand.NewSource(rt.Seed))
	minR := starRadius + planetRadius + physics.MinGravityDistance
	maxR := cfg.World.Height/2 - planetRadius
	for i := 0; i < cfg.Planets; i++ {
		r := minR + rng.Float64()*(maxR-minR)
		angle := rng.Float64() * 2 * math.Pi
		pos := center.Add(physics.Vec{X: r * math.Cos(angle), Y: r * math.Sin(angle)})

		p := physics.NewBody(physics.NewRegular(6, planetRadius),
			physics.Kilograms(cfg.PlanetMass), planetColors[i%len(planetColors)])
		p.SetCentroid(pos)

		// Circular orbit speed for the star's pull, tangential CCW.
		speed := math.Sqrt(cfg.G * cfg.StarMass / r)
		tangent := pos.Sub(center).Normalize().Perp()
		p.SetVelocity(tangent.Scale(speed))

		g.scene.AddBody(p)
		g.planets = append(g.planets, p)
	}

	for i, p := range g.planets {
		physics.CreateNewtonianGravity(g.scene, cfg.G, g.star, p)
		physics.CreateDestructiveCollision(g.scene, p, g.star)
		for _, q := range g.planets[i+1:] {
			physics.CreateNewtonianGravity(g.scene, cfg.G, p, q)
			physics.CreatePhysicsCollision(g.scene, p, q, cfg.Elasticity)
		}
	}
}

// Step advances the system one tick, applying nudge impulses to the
// selected planet.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionNext) {
		g.selectNext()
	}
	if p := g.selectedPlanet(); p != nil {
		j := g.cfg.NudgeImpulse
		if in.Has(core.ActionLeft) {
			p.AddImpulse(physics.Vec{X: -j})
		}
		if in.Has(core.ActionRight) {
			p.AddImpulse(physics.Vec{X: j})
		}
		if in.Has(core.ActionUp) {
			p.AddImpulse(physics.Vec{Y: j})
		}
		if in.Has(core.ActionDown) {
			p.AddImpulse(physics.Vec{Y: -j})
		}
	}

	g.scene.Tick(g.rt.Dt())

	// A planet hitting the star destroys both; the system is over when the
	// star is gone or no planet survives.
	if g.star.Removed() || g.aliveCount() == 0 {
		g.gameOver = true
	} else {
		g.ticks++
	}

	return core.StepResult{State: g.State()}
}

// selectedPlanet returns the planet under control, skipping destroyed ones.
func (g *Game) selectedPlanet() *physics.Body {
	for range g.planets {
		p := g.planets[g.selected]
		if !p.Removed() {
			return p
		}
		g.selected = (g.selected + 1) % len(g.planets)
	}
	return nil
}

// selectNext cycles selection to the next surviving planet.
func (g *Game) selectNext() {
	if len(g.planets) == 0 {
		return
	}
	g.selected = (g.selected + 1) % len(g.planets)
	g.selectedPlanet()
}

func (g *Game) aliveCount() int {
	n := 0
	for _, p := range g.planets {
		if !p.Removed() {
			n++
		}
	}
	return n
}

// State reports score as whole seconds survived with the system intact.
func (g *Game) State() core.GameState {
	rate := g.rt.TickRate
	if rate <= 0 {
		rate = 60
	}
	return core.GameState{
		Score:    g.ticks / rate,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
