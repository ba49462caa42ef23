package physics

import "math"

// minEdgeLength is the threshold below which an edge is considered
// degenerate and contributes no separating axis.
const minEdgeLength = 1e-9

// Collision is the result of a collision test between two bodies.
type Collision struct {
	// Colliding reports whether the two shapes overlap.
	Colliding bool

	// Axis is the unit minimum-overlap separating axis, oriented to point
	// from the first body's centroid toward the second body's. Only valid
	// when Colliding is true. Collision handlers rely on this orientation,
	// e.g. platform-landing checks that compare Axis.Y to a threshold.
	Axis Vec
}

// FindCollision runs the separating axis theorem (SAT) test on two convex
// bodies. Two convex polygons are disjoint iff some axis exists onto which
// their projections do not overlap; the candidate axes are the edge normals
// of both shapes. When the shapes do overlap, the axis with the smallest
// projection overlap approximates the contact normal.
//
// Pure function: neither body is mutated.
func FindCollision(a, b *Body) Collision {
	shapeA := a.Shape()
	shapeB := b.Shape()

	okA, overlapA, axisA := satPass(shapeA, shapeB)
	if !okA {
		return Collision{}
	}
	okB, overlapB, axisB := satPass(shapeB, shapeA)
	if !okB {
		return Collision{}
	}

	// Both passes found full overlap, so the shapes collide. Report the
	// tighter of the two minimum-overlap estimates.
	axis := axisA
	if overlapB < overlapA {
		axis = axisB
	}

	// Orient the axis from a toward b; this is the contract handlers
	// depend on.
	if axis.Dot(shapeB.Centroid().Sub(shapeA.Centroid())) < 0 {
		axis = axis.Neg()
	}
	return Collision{Colliding: true, Axis: axis}
}

// satPass tests the edge normals of p1 against both shapes. It returns
// false as soon as a separating axis is found; otherwise it reports the
// smallest overlap seen and its axis.
func satPass(p1, p2 Polygon) (colliding bool, minOverlap float64, axis Vec) {
	minOverlap = math.MaxFloat64

	n := p1.Len()
	for i := 0; i < n; i++ {
		edge := p1.Vertex(i).Sub(p1.Vertex((i + 1) % n))
		if edge.Len() < minEdgeLength {
			continue
		}
		unit := edge.Perp().Normalize()

		min1, max1 := project(p1, unit)
		min2, max2 := project(p2, unit)

		// Touching intervals count as separated.
		if max1 <= min2 || max2 <= min1 {
			return false, 0, Vec{}
		}

		overlap := math.Min(max1, max2) - math.Max(min1, min2)
		if overlap < minOverlap {
			minOverlap = overlap
			axis = unit
		}
	}

	return true, minOverlap, axis
}

// project returns the [min, max] interval of the polygon's vertices
// projected onto the given unit axis.
func project(p Polygon, axis Vec) (min, max float64) {
	min = math.MaxFloat64
	max = -math.MaxFloat64
	for i := 0; i < p.Len(); i++ {
		d := p.Vertex(i).Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}
