package physics

import (
	"fmt"
	"math"
)

// Color is a display-only RGB tag carried by a body. Components are in
// [0, 1]. The simulation never reads it; the render layer maps it to a
// terminal color.
type Color struct {
	R, G, B float64
}

// Body is a rigid polygonal body constrained to the plane. It owns its
// polygon exclusively. Forces and impulses accumulate between ticks and are
// consumed by Tick; nothing moves until the scene integrates.
type Body struct {
	poly Polygon
	mass Mass

	velocity Vec
	force    Vec
	impulse  Vec
	rotation float64

	color   Color
	info    any
	removed bool
}

// NewBody creates a body with no attached info. The body takes ownership of
// the polygon and starts at rest.
func NewBody(poly Polygon, mass Mass, color Color) *Body {
	return NewBodyWithInfo(poly, mass, color, nil)
}

// NewBodyWithInfo creates a body carrying an opaque payload. The payload is
// how a game tags bodies with domain state (entity kind, HP, flags) without
// the core needing to know its shape; the core never inspects it.
func NewBodyWithInfo(poly Polygon, mass Mass, color Color, info any) *Body {
	if poly.Len() < 3 {
		panic("physics: body requires a polygon with at least 3 vertices")
	}
	return &Body{
		poly:  poly.Clone(),
		mass:  mass,
		color: color,
		info:  info,
	}
}

// Centroid returns the body's center of mass.
func (b *Body) Centroid() Vec {
	return b.poly.Centroid()
}

// SetCentroid translates the body so its center of mass lands on p.
func (b *Body) SetCentroid(p Vec) {
	if !p.IsFinite() {
		panic(fmt.Sprintf("physics: centroid must be finite, got %+v", p))
	}
	b.poly.Translate(p.Sub(b.poly.Centroid()))
}

// Velocity returns the body's velocity.
func (b *Body) Velocity() Vec {
	return b.velocity
}

// SetVelocity overwrites the body's velocity.
func (b *Body) SetVelocity(v Vec) {
	b.velocity = v
}

// Rotation returns the body's orientation angle in radians.
func (b *Body) Rotation() float64 {
	return b.rotation
}

// SetRotation sets the body's absolute orientation, rotating the polygon
// about its centroid by the difference from the current angle. No angular
// velocity is ever integrated; rotation is purely kinematic.
func (b *Body) SetRotation(angle float64) {
	b.poly.RotateAbout(angle-b.rotation, b.poly.Centroid())
	b.rotation = angle
}

// Shape returns a copy of the body's polygon; the caller owns it.
func (b *Body) Shape() Polygon {
	return b.poly.Clone()
}

// Color returns the body's display color.
func (b *Body) Color() Color {
	return b.color
}

// SetColor changes the body's display color. Has no effect on physics.
func (b *Body) SetColor(c Color) {
	b.color = c
}

// Mass returns the body's mass.
func (b *Body) Mass() Mass {
	return b.mass
}

// Area returns the body's area.
func (b *Body) Area() float64 {
	return b.poly.Area()
}

// Info returns the opaque payload attached at construction.
func (b *Body) Info() any {
	return b.info
}

// AddForce accumulates a force to apply over the current tick. Forces from
// the same tick add; nothing moves until Tick.
func (b *Body) AddForce(f Vec) {
	b.force = b.force.Add(f)
}

// AddImpulse accumulates an instantaneous impulse, useful for modeling
// collisions. Impulses from the same tick add; nothing moves until Tick.
func (b *Body) AddImpulse(j Vec) {
	b.impulse = b.impulse.Add(j)
}

// ResetAccumulators zeroes the pending force and impulse.
func (b *Body) ResetAccumulators() {
	b.force = VecZero
	b.impulse = VecZero
}

// Remove marks the body for removal at the end of the current scene tick.
// Idempotent; the flag never clears.
func (b *Body) Remove() {
	b.removed = true
}

// Removed reports whether Remove has been called.
func (b *Body) Removed() bool {
	return b.removed
}

// Tick integrates the body's motion over dt seconds.
//
// The velocity change combines the accumulated force and impulse, and the
// translation uses the average of the old and new velocities (trapezoidal
// rule). That way an impulse applied this tick still contributes half a
// step of translation in the same tick rather than only affecting the next
// one. Immovable bodies only clear their accumulators.
func (b *Body) Tick(dt float64) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		panic(fmt.Sprintf("physics: tick requires a finite non-negative dt, got %v", dt))
	}
	if b.mass.IsImmovable() {
		b.ResetAccumulators()
		return
	}

	inv := b.mass.Inv()
	accel := b.force.Scale(inv)
	next := b.velocity.Add(accel.Scale(dt)).Add(b.impulse.Scale(inv))
	b.poly.Translate(b.velocity.Add(next).Scale(dt / 2))
	b.velocity = next
	b.ResetAccumulators()
}
