package orbit

import (
	"math"
	"testing"

	"github.com/polyarena/polyarena/internal/core"
	"github.com/polyarena/polyarena/internal/physics"
)

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func TestResetSeedsSystem(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if g.star == nil || g.star.Removed() {
		t.Fatal("no star after reset")
	}
	if len(g.planets) != g.cfg.Planets {
		t.Fatalf("seeded %d planets, expected %d", len(g.planets), g.cfg.Planets)
	}

	center := g.star.Centroid()
	for i, p := range g.planets {
		r := p.Centroid().Dist(center)
		if r <= starRadius {
			t.Errorf("planet %d spawned inside the star (r=%v)", i, r)
		}
		// Circular-orbit speed, tangential to the radius vector.
		wantSpeed := math.Sqrt(g.cfg.G * g.cfg.StarMass / r)
		if got := p.Velocity().Len(); math.Abs(got-wantSpeed) > 1e-9 {
			t.Errorf("planet %d speed = %v, expected %v", i, got, wantSpeed)
		}
		radial := p.Centroid().Sub(center).Normalize()
		if got := math.Abs(p.Velocity().Dot(radial)); got > 1e-9 {
			t.Errorf("planet %d velocity has radial component %v", i, got)
		}
	}
}

func TestOrbitStaysBound(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	maxR := g.cfg.World.Height // Generous escape bound
	for i := 0; i < 600 && !g.star.Removed(); i++ {
		g.Step(core.InputFrame{})
	}
	if g.star.Removed() {
		// Planets fly free without the star's pull; nothing to bound.
		return
	}
	center := g.star.Centroid()
	for i, p := range g.planets {
		if p.Removed() {
			continue
		}
		if r := p.Centroid().Dist(center); r > maxR {
			t.Errorf("planet %d escaped to r=%v after 10s", i, r)
		}
	}
}

func TestNudgeChangesSelectedVelocity(t *testing.T) {
	// Run two identical systems, one with a nudge on the first tick. The
	// gravity contribution cancels, so the velocity difference is exactly
	// the impulse over the planet's mass.
	control := New()
	control.Reset(testConfig())
	nudged := New()
	nudged.Reset(testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	control.Step(core.InputFrame{})
	nudged.Step(in)

	i := nudged.selected
	dvx := nudged.planets[i].Velocity().X - control.planets[i].Velocity().X
	want := nudged.cfg.NudgeImpulse / nudged.cfg.PlanetMass
	if math.Abs(dvx-want) > 1e-9 {
		t.Errorf("velocity.X differs by %v, expected exactly %v from the nudge", dvx, want)
	}
}

func TestNextCyclesSelection(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	first := g.selectedPlanet()
	in := core.NewInputFrame()
	in.Set(core.ActionNext)
	g.Step(in)
	if g.selectedPlanet() == first {
		t.Error("selection did not advance")
	}

	// Destroyed planets are skipped.
	for i, p := range g.planets {
		if i != 0 {
			p.Remove()
		}
	}
	g.Step(core.InputFrame{})
	g.Step(in)
	if got := g.selectedPlanet(); got != g.planets[0] {
		t.Error("selection should skip destroyed planets")
	}
}

func TestStarCollisionDestroysBoth(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	p := g.planets[0]
	p.SetCentroid(g.star.Centroid())
	p.SetVelocity(physics.VecZero)
	g.Step(core.InputFrame{})

	if !p.Removed() || !g.star.Removed() {
		t.Error("planet-star contact should destroy both bodies")
	}
	g.Step(core.InputFrame{})
	if !g.State().GameOver {
		t.Error("losing the star should end the game")
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() []physics.Vec {
		g := New()
		g.Reset(testConfig())
		for i := 0; i < 300; i++ {
			g.Step(core.InputFrame{})
		}
		out := make([]physics.Vec, len(g.planets))
		for i, p := range g.planets {
			out[i] = p.Centroid()
		}
		return out
	}

	a := run()
	b := run()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("planet %d diverged between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
