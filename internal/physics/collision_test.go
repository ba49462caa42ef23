package physics

import (
	"math"
	"testing"
)

func bodyAt(poly Polygon, at Vec) *Body {
	b := NewBody(poly, Kilograms(1), Color{})
	b.SetCentroid(at)
	return b
}

func TestFindCollisionDisjoint(t *testing.T) {
	tests := []struct {
		name string
		a, b *Body
	}{
		{
			"disjoint x extents",
			bodyAt(NewBox(10, 10), Vec{0, 0}),
			bodyAt(NewBox(10, 10), Vec{25, 0}),
		},
		{
			"disjoint y extents",
			bodyAt(NewBox(10, 10), Vec{0, 0}),
			bodyAt(NewBox(10, 10), Vec{0, -30}),
		},
		{
			"touching edges count as separated",
			bodyAt(NewBox(10, 10), Vec{0, 0}),
			bodyAt(NewBox(10, 10), Vec{10, 0}),
		},
		{
			"diagonal separation",
			bodyAt(NewRegular(5, 4), Vec{0, 0}),
			bodyAt(NewRegular(5, 4), Vec{9, 9}),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FindCollision(tc.a, tc.b); got.Colliding {
				t.Errorf("FindCollision reported collision for %s", tc.name)
			}
		})
	}
}

func TestFindCollisionOverlappingSquares(t *testing.T) {
	// Two side-10 squares centered 5 apart along x overlap by 5; the
	// minimum-overlap axis is parallel to x and points from a toward b.
	a := bodyAt(NewBox(10, 10), Vec{0, 0})
	b := bodyAt(NewBox(10, 10), Vec{5, 0})

	got := FindCollision(a, b)
	if !got.Colliding {
		t.Fatal("expected collision")
	}
	if !vecAlmostEqual(got.Axis, Vec{1, 0}) {
		t.Errorf("axis = %+v, expected {1 0}", got.Axis)
	}

	// Swapping the argument order flips the axis orientation.
	rev := FindCollision(b, a)
	if !rev.Colliding {
		t.Fatal("expected collision (reversed)")
	}
	if !vecAlmostEqual(rev.Axis, Vec{-1, 0}) {
		t.Errorf("reversed axis = %+v, expected {-1 0}", rev.Axis)
	}
}

func TestFindCollisionMinimumOverlapAxis(t *testing.T) {
	// Offset mostly vertically: the y-projection overlap (2) is smaller
	// than the x overlap (8), so the reported axis is vertical.
	a := bodyAt(NewBox(10, 10), Vec{0, 0})
	b := bodyAt(NewBox(10, 10), Vec{2, 8})

	got := FindCollision(a, b)
	if !got.Colliding {
		t.Fatal("expected collision")
	}
	if !vecAlmostEqual(got.Axis, Vec{0, 1}) {
		t.Errorf("axis = %+v, expected {0 1}", got.Axis)
	}
}

func TestFindCollisionAxisIsUnit(t *testing.T) {
	a := bodyAt(NewRegular(7, 6), Vec{0, 0})
	b := bodyAt(NewRegular(5, 6), Vec{4, 3})

	got := FindCollision(a, b)
	if !got.Colliding {
		t.Fatal("expected collision")
	}
	if l := got.Axis.Len(); !almostEqual(l, 1) {
		t.Errorf("axis length = %v, expected unit", l)
	}

	// The axis must point from a's centroid toward b's.
	if got.Axis.Dot(b.Centroid().Sub(a.Centroid())) <= 0 {
		t.Errorf("axis %+v does not point from a toward b", got.Axis)
	}
}

func TestFindCollisionContainment(t *testing.T) {
	// A small square fully inside a large one still collides.
	a := bodyAt(NewBox(20, 20), Vec{0, 0})
	b := bodyAt(NewBox(2, 2), Vec{3, 0})

	if got := FindCollision(a, b); !got.Colliding {
		t.Error("contained square not reported as colliding")
	}
}

func TestFindCollisionRotated(t *testing.T) {
	// A diamond (rotated square) overlapping a box corner.
	a := bodyAt(NewBox(10, 10), Vec{0, 0})
	b := bodyAt(NewBox(10, 10), Vec{9, 0})
	b.SetRotation(math.Pi / 4)

	// Rotated square reaches sqrt(50) ~ 7.07 from its center, so the
	// shapes overlap even though the axis-aligned gap is 9 > 5+5-1.
	if got := FindCollision(a, b); !got.Colliding {
		t.Error("rotated overlap not detected")
	}

	b.SetCentroid(Vec{13, 0})
	if got := FindCollision(a, b); got.Colliding {
		t.Error("separated rotated squares reported as colliding")
	}
}

func TestFindCollisionIsPure(t *testing.T) {
	a := bodyAt(NewBox(10, 10), Vec{0, 0})
	b := bodyAt(NewBox(10, 10), Vec{5, 0})
	a.SetVelocity(Vec{1, 2})

	FindCollision(a, b)

	if got := a.Centroid(); !vecAlmostEqual(got, VecZero) {
		t.Errorf("FindCollision moved body a to %+v", got)
	}
	if got := a.Velocity(); !vecAlmostEqual(got, Vec{1, 2}) {
		t.Errorf("FindCollision changed velocity to %+v", got)
	}
}
