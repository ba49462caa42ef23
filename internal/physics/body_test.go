package physics

import (
	"math"
	"testing"
)

func testBody(mass Mass) *Body {
	return NewBody(NewBox(10, 10), mass, Color{})
}

func TestBodyTickNoForces(t *testing.T) {
	b := testBody(Kilograms(2))
	b.SetVelocity(Vec{3, -1})

	b.Tick(0.5)

	// With no force or impulse the velocity is unchanged and the centroid
	// translates by exactly v*dt.
	if got := b.Velocity(); !vecAlmostEqual(got, Vec{3, -1}) {
		t.Errorf("velocity = %+v, expected unchanged {3 -1}", got)
	}
	if got := b.Centroid(); !vecAlmostEqual(got, Vec{1.5, -0.5}) {
		t.Errorf("centroid = %+v, expected {1.5 -0.5}", got)
	}
}

func TestBodyTickConstantForce(t *testing.T) {
	const (
		mass = 2.0
		dt   = 0.1
	)
	b := testBody(Kilograms(mass))
	b.SetVelocity(Vec{1, 0})
	b.AddForce(Vec{4, 0})

	b.Tick(dt)

	// v' = v + F/m*dt
	vNew := 1 + 4/mass*dt
	if got := b.Velocity(); !vecAlmostEqual(got, Vec{vNew, 0}) {
		t.Errorf("velocity = %+v, expected {%v 0}", got, vNew)
	}

	// Trapezoidal translation: 0.5*(v+v')*dt, not v*dt nor v'*dt.
	want := 0.5 * (1 + vNew) * dt
	if got := b.Centroid(); !vecAlmostEqual(got, Vec{want, 0}) {
		t.Errorf("centroid = %+v, expected {%v 0}", got, want)
	}
}

func TestBodyTickImpulse(t *testing.T) {
	b := testBody(Kilograms(4))
	b.AddImpulse(Vec{8, 0})

	b.Tick(1)

	// J/m velocity change, and half a step of translation in the same tick.
	if got := b.Velocity(); !vecAlmostEqual(got, Vec{2, 0}) {
		t.Errorf("velocity = %+v, expected {2 0}", got)
	}
	if got := b.Centroid(); !vecAlmostEqual(got, Vec{1, 0}) {
		t.Errorf("centroid = %+v, expected {1 0}", got)
	}
}

func TestBodyAccumulatorsAdd(t *testing.T) {
	b := testBody(Kilograms(1))
	b.AddForce(Vec{1, 0})
	b.AddForce(Vec{2, 0})
	b.Tick(1)

	if got := b.Velocity(); !vecAlmostEqual(got, Vec{3, 0}) {
		t.Errorf("velocity = %+v, expected forces to add to {3 0}", got)
	}

	// Accumulators reset after the tick: another tick adds nothing.
	b.SetVelocity(VecZero)
	b.Tick(1)
	if got := b.Velocity(); !vecAlmostEqual(got, VecZero) {
		t.Errorf("velocity = %+v, expected accumulators to have reset", got)
	}
}

func TestImmovableBodyNeverMoves(t *testing.T) {
	b := testBody(Immovable())
	b.SetCentroid(Vec{5, 5})
	b.AddForce(Vec{1000, 1000})
	b.AddImpulse(Vec{1000, 1000})

	b.Tick(1)

	if got := b.Velocity(); !vecAlmostEqual(got, VecZero) {
		t.Errorf("immovable velocity = %+v, expected zero", got)
	}
	if got := b.Centroid(); !vecAlmostEqual(got, Vec{5, 5}) {
		t.Errorf("immovable centroid = %+v, expected {5 5}", got)
	}
}

func TestBodySetCentroidRoundTrip(t *testing.T) {
	b := NewBody(NewPolygon([]Vec{{0, 0}, {4, 0}, {4, 2}, {0, 2}}), Kilograms(1), Color{})
	target := Vec{-7.25, 12.5}
	b.SetCentroid(target)

	// The returned shape's area-weighted centroid must land on the target.
	if got := b.Shape().Centroid(); !vecAlmostEqual(got, target) {
		t.Errorf("shape centroid = %+v, expected %+v", got, target)
	}
}

func TestBodySetRotation(t *testing.T) {
	b := testBody(Kilograms(1))
	b.SetCentroid(Vec{3, 3})

	b.SetRotation(math.Pi / 4)
	if got := b.Rotation(); !almostEqual(got, math.Pi/4) {
		t.Errorf("rotation = %v, expected pi/4", got)
	}
	if got := b.Centroid(); !vecAlmostEqual(got, Vec{3, 3}) {
		t.Errorf("rotation moved the centroid to %+v", got)
	}

	// The angle is absolute: setting the same angle again is a no-op.
	before := b.Shape()
	b.SetRotation(math.Pi / 4)
	after := b.Shape()
	for i := 0; i < before.Len(); i++ {
		if !vecAlmostEqual(before.Vertex(i), after.Vertex(i)) {
			t.Fatalf("vertex %d moved on redundant SetRotation", i)
		}
	}
}

func TestBodyRemoveIsIdempotent(t *testing.T) {
	b := testBody(Kilograms(1))
	if b.Removed() {
		t.Fatal("new body already removed")
	}
	b.Remove()
	b.Remove()
	if !b.Removed() {
		t.Error("body not removed after Remove")
	}
}

func TestBodyShapeIsCopy(t *testing.T) {
	b := testBody(Kilograms(1))
	shape := b.Shape()
	shape.Translate(Vec{100, 100})

	if got := b.Centroid(); !vecAlmostEqual(got, VecZero) {
		t.Errorf("mutating the Shape() copy moved the body to %+v", got)
	}
}

func TestBodyTickRejectsBadDt(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"negative", -1},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			testBody(Kilograms(1)).Tick(tc.dt)
		})
	}
}

func TestMassValidation(t *testing.T) {
	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Kilograms(%v) did not panic", bad)
				}
			}()
			Kilograms(bad)
		}()
	}

	if Immovable().Inv() != 0 {
		t.Error("immovable inverse mass should be zero")
	}
	if got := Kilograms(4).Inv(); !almostEqual(got, 0.25) {
		t.Errorf("Inv() = %v, expected 0.25", got)
	}
}
