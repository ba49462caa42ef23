package physics

import (
	"fmt"
	"math"
)

// Mass is either a finite positive mass or the immovable marker used for
// static geometry (walls, platforms, water). Using an explicit two-variant
// type instead of an infinity sentinel keeps the integrator and impulse
// code free of magic-constant comparisons.
type Mass struct {
	kg        float64
	immovable bool
}

// Kilograms creates a finite mass. Panics unless kg is positive and finite.
func Kilograms(kg float64) Mass {
	if math.IsNaN(kg) || math.IsInf(kg, 0) || kg <= 0 {
		panic(fmt.Sprintf("physics: mass must be positive and finite, got %v", kg))
	}
	return Mass{kg: kg}
}

// Immovable creates the infinite-mass marker. An immovable body never
// accelerates or translates, regardless of applied forces and impulses.
func Immovable() Mass {
	return Mass{immovable: true}
}

// IsImmovable reports whether this is the immovable marker.
func (m Mass) IsImmovable() bool {
	return m.immovable
}

// Value returns the mass in kilograms. Panics for immovable masses; callers
// that may see static geometry should branch on IsImmovable or use Inv.
func (m Mass) Value() float64 {
	if m.immovable {
		panic("physics: immovable mass has no finite value")
	}
	return m.kg
}

// Inv returns the inverse mass, which is zero for immovable bodies. This is
// the form impulse resolution wants: an immovable side contributes nothing
// to the reduced mass and receives no velocity change.
func (m Mass) Inv() float64 {
	if m.immovable {
		return 0
	}
	return 1 / m.kg
}

// String implements fmt.Stringer.
func (m Mass) String() string {
	if m.immovable {
		return "immovable"
	}
	return fmt.Sprintf("%gkg", m.kg)
}
