package physics

import (
	"math"
	"testing"
)

// overlappingPair returns a scene with two unit-mass squares overlapping
// along x, with the given velocities.
func overlappingPair(va, vb Vec) (*Scene, *Body, *Body) {
	s := NewScene()
	a := bodyAt(NewBox(10, 10), Vec{0, 0})
	b := bodyAt(NewBox(10, 10), Vec{5, 0})
	a.SetVelocity(va)
	b.SetVelocity(vb)
	s.AddBody(a)
	s.AddBody(b)
	return s, a, b
}

func TestCollisionHandlerEdgeTriggered(t *testing.T) {
	s := NewScene()
	a := bodyAt(NewBox(10, 10), Vec{0, 0})
	b := bodyAt(NewBox(10, 10), Vec{5, 0})
	s.AddBody(a)
	s.AddBody(b)

	fired := 0
	CreateCollision(s, a, b, func(a, b *Body, axis Vec, _ float64) {
		fired++
	}, 0)

	// Continuously overlapping for many ticks: exactly one invocation.
	for i := 0; i < 10; i++ {
		s.Tick(0.01)
	}
	if fired != 1 {
		t.Fatalf("handler fired %d times during continuous overlap, expected 1", fired)
	}

	// Separate, then re-overlap: fires exactly once more.
	b.SetCentroid(Vec{50, 0})
	s.Tick(0.01)
	b.SetCentroid(Vec{5, 0})
	for i := 0; i < 5; i++ {
		s.Tick(0.01)
	}
	if fired != 2 {
		t.Errorf("handler fired %d times total, expected 2 after re-contact", fired)
	}
}

func TestCollisionHandlerAxisOrientation(t *testing.T) {
	s, a, b := overlappingPair(VecZero, VecZero)

	var gotAxis Vec
	CreateCollision(s, a, b, func(a, b *Body, axis Vec, _ float64) {
		gotAxis = axis
	}, 0)
	s.Tick(0.01)

	if !vecAlmostEqual(gotAxis, Vec{1, 0}) {
		t.Errorf("handler axis = %+v, expected {1 0} pointing from a to b", gotAxis)
	}
}

func TestCollisionHandlerSkipsRemovedBodies(t *testing.T) {
	s, a, b := overlappingPair(VecZero, VecZero)

	fired := 0
	CreateCollision(s, a, b, func(a, b *Body, _ Vec, _ float64) {
		fired++
	}, 0)

	a.Remove()
	s.Tick(0.01)

	if fired != 0 {
		t.Errorf("handler fired %d times for a removed body", fired)
	}
}

func TestDuplicateRegistrationsFireIndependently(t *testing.T) {
	s, a, b := overlappingPair(VecZero, VecZero)

	fired := 0
	CreateCollision(s, a, b, func(a, b *Body, _ Vec, _ float64) { fired++ }, 0)
	CreateCollision(s, a, b, func(a, b *Body, _ Vec, _ float64) { fired++ }, 0)

	s.Tick(0.01)

	if fired != 2 {
		t.Errorf("fired %d times, expected both registrations to fire", fired)
	}
}

func TestDestructiveCollision(t *testing.T) {
	s := NewScene()
	a := bodyAt(NewBox(4, 4), Vec{0, 0})
	b := bodyAt(NewBox(4, 4), Vec{20, 0})
	a.SetVelocity(Vec{100, 0})
	s.AddBody(a)
	s.AddBody(b)
	CreateDestructiveCollision(s, a, b)

	// Not touching yet: both survive.
	s.Tick(0.01)
	if s.Bodies() != 2 {
		t.Fatalf("bodies removed before contact: %d left", s.Bodies())
	}

	// Drive a into b.
	for i := 0; i < 100 && s.Bodies() == 2; i++ {
		s.Tick(0.01)
	}
	if s.Bodies() != 0 {
		t.Errorf("destructive collision left %d bodies, expected 0", s.Bodies())
	}
	if !a.Removed() || !b.Removed() {
		t.Error("destructive collision did not mark both bodies removed")
	}
}

func TestElasticCollisionSwapsVelocities(t *testing.T) {
	// Equal masses, equal opposite closing speeds, elasticity 1: the 1D
	// elastic identity says the velocities exactly swap.
	s, a, b := overlappingPair(Vec{2, 0}, Vec{-2, 0})
	CreatePhysicsCollision(s, a, b, 1)

	s.Tick(0.001)

	if got := a.Velocity(); !vecAlmostEqual(got, Vec{-2, 0}) {
		t.Errorf("a velocity = %+v, expected {-2 0}", got)
	}
	if got := b.Velocity(); !vecAlmostEqual(got, Vec{2, 0}) {
		t.Errorf("b velocity = %+v, expected {2 0}", got)
	}
}

func TestInelasticCollisionSharedVelocity(t *testing.T) {
	// Perfectly inelastic equal-mass head-on collision: both end at the
	// common momentum-conserving velocity.
	s, a, b := overlappingPair(Vec{4, 0}, Vec{0, 0})
	CreatePhysicsCollision(s, a, b, 0)

	s.Tick(0.001)

	if got := a.Velocity().X; !almostEqual(got, 2) {
		t.Errorf("a velocity.x = %v, expected 2", got)
	}
	if got := b.Velocity().X; !almostEqual(got, 2) {
		t.Errorf("b velocity.x = %v, expected 2", got)
	}
}

func TestPhysicsCollisionAgainstWall(t *testing.T) {
	s := NewScene()
	ball := bodyAt(NewBox(10, 10), Vec{0, 0})
	ball.SetVelocity(Vec{3, 0})
	wall := NewBody(NewBox(10, 40), Immovable(), Color{})
	wall.SetCentroid(Vec{5, 0})
	s.AddBody(ball)
	s.AddBody(wall)

	const e = 0.5
	CreatePhysicsCollision(s, ball, wall, e)

	s.Tick(0.001)

	// Wall is unchanged; the ball's axis component reverses scaled by the
	// restitution: v' = v - (1+e)*v = -e*v.
	if got := wall.Velocity(); !vecAlmostEqual(got, VecZero) {
		t.Errorf("wall velocity = %+v, expected zero", got)
	}
	if got := wall.Centroid(); !vecAlmostEqual(got, Vec{5, 0}) {
		t.Errorf("wall centroid = %+v, expected {5 0}", got)
	}
	if got := ball.Velocity().X; !almostEqual(got, -e*3) {
		t.Errorf("ball velocity.x = %v, expected %v", got, -e*3)
	}
}

func TestNewtonianGravityAttracts(t *testing.T) {
	s := NewScene()
	a := bodyAt(NewBox(2, 2), Vec{0, 0})
	b := bodyAt(NewBox(2, 2), Vec{100, 0})
	s.AddBody(a)
	s.AddBody(b)
	CreateNewtonianGravity(s, 1000, a, b)

	s.Tick(0.1)

	if a.Velocity().X <= 0 {
		t.Errorf("a velocity.x = %v, expected attraction toward b", a.Velocity().X)
	}
	if b.Velocity().X >= 0 {
		t.Errorf("b velocity.x = %v, expected attraction toward a", b.Velocity().X)
	}
	// Momentum conservation for equal masses.
	if sum := a.Velocity().X + b.Velocity().X; !almostEqual(sum, 0) {
		t.Errorf("net momentum %v, expected 0", sum)
	}
}

func TestNewtonianGravitySkipsNearCoincident(t *testing.T) {
	s := NewScene()
	a := bodyAt(NewBox(2, 2), Vec{0, 0})
	b := bodyAt(NewBox(2, 2), Vec{MinGravityDistance / 2, 0})
	s.AddBody(a)
	s.AddBody(b)
	CreateNewtonianGravity(s, 1e12, a, b)

	s.Tick(0.1)

	if got := a.Velocity(); !vecAlmostEqual(got, VecZero) {
		t.Errorf("near-coincident gravity applied anyway: velocity %+v", got)
	}
}

func TestNewtonianGravityRejectsImmovable(t *testing.T) {
	s := NewScene()
	a := testBody(Kilograms(1))
	wall := testBody(Immovable())

	defer func() {
		if recover() == nil {
			t.Error("expected panic for gravity on an immovable body")
		}
	}()
	CreateNewtonianGravity(s, 1, a, wall)
}

func TestSpringRestoringForce(t *testing.T) {
	s := NewScene()
	anchor := NewBody(NewBox(2, 2), Immovable(), Color{})
	block := bodyAt(NewBox(2, 2), Vec{10, 0})
	s.AddBody(anchor)
	s.AddBody(block)

	const k = 3.0
	CreateSpring(s, k, anchor, block)

	s.Tick(0.1)

	// Force on the block is -k*x = -30 along x; v = F/m*dt = -3.
	if got := block.Velocity().X; !almostEqual(got, -3) {
		t.Errorf("block velocity.x = %v, expected -3", got)
	}
	// The immovable anchor holds its ground.
	if got := anchor.Centroid(); !vecAlmostEqual(got, VecZero) {
		t.Errorf("anchor moved to %+v", got)
	}
}

func TestDragOpposesVelocity(t *testing.T) {
	s := NewScene()
	b := testBody(Kilograms(2))
	b.SetVelocity(Vec{10, -4})
	s.AddBody(b)
	CreateDrag(s, 0.5, b)

	before := b.Velocity().Len()
	s.Tick(0.1)
	after := b.Velocity().Len()

	if after >= before {
		t.Errorf("speed rose from %v to %v under drag", before, after)
	}
	// Direction is preserved, only magnitude shrinks.
	if math.Signbit(b.Velocity().X) || !math.Signbit(b.Velocity().Y) {
		t.Errorf("drag changed velocity direction: %+v", b.Velocity())
	}
}

func TestDownwardGravityWeight(t *testing.T) {
	s := NewScene()
	b := testBody(Kilograms(10))
	wall := testBody(Immovable())
	wall.SetCentroid(Vec{100, 100})
	s.AddBody(b)
	s.AddBody(wall)
	CreateDownwardGravity(s, 9.8, b)
	CreateDownwardGravity(s, 9.8, wall)

	s.Tick(1)

	if got := b.Velocity().Y; !almostEqual(got, -9.8) {
		t.Errorf("velocity.y = %v, expected -9.8 (independent of mass)", got)
	}
	if got := wall.Velocity(); !vecAlmostEqual(got, VecZero) {
		t.Errorf("immovable body accelerated under gravity: %+v", got)
	}
}
