package physics

// MinGravityDistance is the separation below which Newtonian gravity is not
// applied. The force magnitude blows up as the distance between centroids
// goes to zero, so nearly coincident bodies are skipped rather than flung.
const MinGravityDistance = 5.0

// CollisionHandler is called when two bodies begin to collide. The axis is
// a unit vector pointing from a toward b along the direction of minimum
// overlap. Any auxiliary state the handler needs is captured by closure;
// forceConst carries a per-registration tuning constant (elasticity,
// damage, etc.).
type CollisionHandler func(a, b *Body, axis Vec, forceConst float64)

// CreateCollision registers a force creator that watches a pair of bodies
// and calls handler exactly once per contact episode: on the tick the pair
// transitions from not overlapping to overlapping, and not again until they
// separate and re-overlap. Handlers that assume single-fire semantics
// (damage, knockback, removal) would corrupt game state if invoked every
// tick of a multi-tick overlap.
//
// Each call owns its own contact state; registering the same pair twice
// yields two independent handler invocations per episode.
func CreateCollision(s *Scene, a, b *Body, handler CollisionHandler, forceConst float64) {
	ct := s.newContact(a, b)
	s.AddForceCreator(func() {
		if a.Removed() || b.Removed() {
			return
		}
		col := FindCollision(a, b)
		if col.Colliding && !ct.touching {
			handler(a, b, col.Axis, forceConst)
		}
		ct.touching = col.Colliding
	})
}

// CreateDestructiveCollision removes both bodies on first contact.
func CreateDestructiveCollision(s *Scene, a, b *Body) {
	CreateCollision(s, a, b, func(a, b *Body, _ Vec, _ float64) {
		a.Remove()
		b.Remove()
	}, 0)
}

// CreatePhysicsCollision resolves contacts between two bodies with an
// impulse along the collision axis, using the 1D restitution formula
// generalized along the axis:
//
//	J = (1 + elasticity) * (closing speed along axis) / (1/mA + 1/mB)
//
// elasticity 0 is perfectly inelastic, 1 perfectly elastic. Either side may
// be immovable: its inverse mass is zero, so it absorbs the contact without
// receiving any impulse (the wall case). The impulse always separates the
// pair, never attracts it.
func CreatePhysicsCollision(s *Scene, a, b *Body, elasticity float64) {
	CreateCollision(s, a, b, func(a, b *Body, axis Vec, e float64) {
		invSum := a.Mass().Inv() + b.Mass().Inv()
		if invSum == 0 {
			// Two immovable bodies; nothing to resolve.
			return
		}
		closing := a.Velocity().Sub(b.Velocity()).Dot(axis)
		j := (1 + e) * closing / invSum
		a.AddImpulse(axis.Scale(-j))
		b.AddImpulse(axis.Scale(j))
	}, elasticity)
}

// CreateNewtonianGravity registers a force creator applying mutual
// gravitational attraction g*mA*mB/r^2 along the line between centroids.
// Both bodies must have finite mass. The force is skipped when the bodies
// are closer than MinGravityDistance.
func CreateNewtonianGravity(s *Scene, g float64, a, b *Body) {
	if a.Mass().IsImmovable() || b.Mass().IsImmovable() {
		panic("physics: newtonian gravity requires two finite masses")
	}
	s.AddForceCreator(func() {
		if a.Removed() || b.Removed() {
			return
		}
		d := b.Centroid().Sub(a.Centroid())
		r := d.Len()
		if r < MinGravityDistance {
			return
		}
		mag := g * a.Mass().Value() * b.Mass().Value() / (r * r)
		f := d.Normalize().Scale(mag)
		a.AddForce(f)
		b.AddForce(f.Neg())
	})
}

// CreateSpring registers a force creator applying a Hooke's-law spring of
// stiffness k and zero rest length between two bodies' centroids. No
// distance floor is needed: the force vanishes as the bodies approach.
func CreateSpring(s *Scene, k float64, a, b *Body) {
	s.AddForceCreator(func() {
		if a.Removed() || b.Removed() {
			return
		}
		d := b.Centroid().Sub(a.Centroid())
		a.AddForce(d.Scale(k))
		b.AddForce(d.Scale(-k))
	})
}

// CreateDrag registers a force creator applying a drag force -gamma*v
// opposing the body's velocity.
func CreateDrag(s *Scene, gamma float64, body *Body) {
	s.AddForceCreator(func() {
		if body.Removed() {
			return
		}
		body.AddForce(body.Velocity().Scale(-gamma))
	})
}

// CreateDownwardGravity registers a force creator applying a constant
// downward weight m*g to a body, the usual surface-gravity model for
// platformer scenes. Immovable bodies are skipped.
func CreateDownwardGravity(s *Scene, g float64, body *Body) {
	s.AddForceCreator(func() {
		if body.Removed() || body.Mass().IsImmovable() {
			return
		}
		body.AddForce(Vec{0, -body.Mass().Value() * g})
	})
}
