package springs

import (
	"math"
	"testing"

	"github.com/polyarena/polyarena/internal/core"
	"github.com/polyarena/polyarena/internal/physics"
)

func newTestGame() *Game {
	g := New()
	g.Reset(core.DefaultConfig())
	return g
}

func TestResetBuildsChain(t *testing.T) {
	g := newTestGame()

	if len(g.blocks) != g.cfg.Blocks {
		t.Fatalf("chain has %d blocks, expected %d", len(g.blocks), g.cfg.Blocks)
	}
	// Anchor, floor, and the chain.
	if got := g.scene.Bodies(); got != g.cfg.Blocks+2 {
		t.Errorf("scene has %d bodies, expected %d", got, g.cfg.Blocks+2)
	}
	for i := 1; i < len(g.blocks); i++ {
		if g.blocks[i].Centroid().Y >= g.blocks[i-1].Centroid().Y {
			t.Errorf("block %d should start below block %d", i, i-1)
		}
	}
}

func TestAnchorNeverMoves(t *testing.T) {
	g := newTestGame()
	at := g.anchor.Centroid()

	kick := core.NewInputFrame()
	kick.Set(core.ActionDown)
	g.Step(kick)
	for i := 0; i < 300; i++ {
		g.Step(core.InputFrame{})
	}

	if got := g.anchor.Centroid(); got != at {
		t.Errorf("anchor moved from %+v to %+v", at, got)
	}
}

func TestChainSettles(t *testing.T) {
	g := newTestGame()

	// With drag and no input, every block should come close to rest.
	for i := 0; i < 3600; i++ {
		g.Step(core.InputFrame{})
	}
	for i, b := range g.blocks {
		if speed := b.Velocity().Len(); speed > 1.0 {
			t.Errorf("block %d still moving at %v after 60s of damping", i, speed)
		}
	}
}

func TestKickMovesSelectedBlock(t *testing.T) {
	g := newTestGame()
	before := g.blocks[0].Centroid()

	kick := core.NewInputFrame()
	kick.Set(core.ActionRight)
	g.Step(kick)

	after := g.blocks[0].Centroid()
	if after.X <= before.X {
		t.Errorf("kicked block did not move right: %+v -> %+v", before, after)
	}
	// Impulse yields J/m plus the tick's spring and drag contribution.
	dv := g.blocks[0].Velocity().X
	want := g.cfg.Impulse / g.cfg.BlockMass
	if math.Abs(dv-want) > want/2 {
		t.Errorf("velocity.X = %v, expected about %v from the kick", dv, want)
	}
}

func TestSelectionCycles(t *testing.T) {
	g := newTestGame()

	next := core.NewInputFrame()
	next.Set(core.ActionNext)
	for i := 1; i < len(g.blocks); i++ {
		g.Step(next)
		if g.selected != i {
			t.Fatalf("selected = %d after %d presses, expected %d", g.selected, i, i)
		}
	}
	g.Step(next)
	if g.selected != 0 {
		t.Errorf("selection should wrap to 0, got %d", g.selected)
	}
}

func TestFloorStopsFallingBlock(t *testing.T) {
	g := newTestGame()

	// Hurl the bottom block at the floor and let the contact resolve.
	b := g.blocks[len(g.blocks)-1]
	b.SetCentroid(physics.Vec{X: 30, Y: floorHeight + blockSize/2 + 1})
	b.SetVelocity(physics.Vec{X: 0, Y: -80})
	for i := 0; i < 120; i++ {
		g.Step(core.InputFrame{})
	}

	if bottom := b.Centroid().Y - blockSize/2; bottom < -1 {
		t.Errorf("block fell through the floor, bottom at %v", bottom)
	}
}

func TestSandboxNeverEnds(t *testing.T) {
	g := newTestGame()
	state := g.Step(core.InputFrame{}).State
	if !state.Sandbox {
		t.Error("springs should report itself as a sandbox")
	}
	if state.GameOver {
		t.Error("sandbox must never end")
	}
}
