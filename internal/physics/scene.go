package physics

import "fmt"

// ForceCreator is a per-tick callback registered with a scene. It closes
// over the bodies and constants it needs and applies forces, impulses, or
// collision-triggered logic each tick. Creators must check Removed on any
// body they touch: the scene does not guarantee registered bodies outlive
// the creator.
type ForceCreator func()

// contact tracks the overlap state of one registered collision pair across
// ticks. Each CreateCollision registration owns exactly one contact record;
// registering the same pair twice yields two independent records and two
// independent handler invocations per contact episode.
type contact struct {
	a, b     *Body
	touching bool
}

// Scene owns a set of live bodies and a set of force creators, and drives
// one discrete simulation step per Tick call. Bodies and creators run in
// insertion order; that order is deterministic and observable (later
// creators see forces already accumulated by earlier ones in the same
// tick).
//
// Single-threaded by design: one Tick fully completes before control
// returns, and nothing in the scene is safe for concurrent use.
type Scene struct {
	bodies   []*Body
	creators []ForceCreator
	contacts map[int]*contact
	nextID   int
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		contacts: make(map[int]*contact),
	}
}

// AddBody adds a body to the scene, which then owns it until it is purged.
// Adding the same body twice is a caller bug and panics.
func (s *Scene) AddBody(b *Body) {
	for _, existing := range s.bodies {
		if existing == b {
			panic(fmt.Sprintf("physics: body %p already in scene", b))
		}
	}
	s.bodies = append(s.bodies, b)
}

// Bodies returns the number of bodies currently in the scene. Indices are
// stable within a tick but not across removals.
func (s *Scene) Bodies() int {
	return len(s.bodies)
}

// Body returns the i-th body.
func (s *Scene) Body(i int) *Body {
	return s.bodies[i]
}

// AddForceCreator registers a per-tick callback. Creators run in
// registration order.
func (s *Scene) AddForceCreator(fc ForceCreator) {
	s.creators = append(s.creators, fc)
}

// newContact allocates a contact record owned by the scene. Keeping contact
// state here rather than hidden in per-creator closures makes the
// edge-trigger logic introspectable and testable.
func (s *Scene) newContact(a, b *Body) *contact {
	ct := &contact{a: a, b: b}
	s.contacts[s.nextID] = ct
	s.nextID++
	return ct
}

// Contacts returns the number of live contact records.
func (s *Scene) Contacts() int {
	return len(s.contacts)
}

// Tick advances the simulation by dt seconds, in strict order:
//
//  1. Every force creator runs once, in registration order.
//  2. Every body integrates via Body.Tick.
//  3. Bodies marked removed are detached from the scene.
//
// A body removed during step 1 still integrates once in step 2 before being
// purged; removal takes effect at the start of the next tick's force pass,
// not immediately.
func (s *Scene) Tick(dt float64) {
	for _, fc := range s.creators {
		fc()
	}

	for _, b := range s.bodies {
		b.Tick(dt)
	}

	live := s.bodies[:0]
	removedAny := false
	for _, b := range s.bodies {
		if b.Removed() {
			removedAny = true
			continue
		}
		live = append(live, b)
	}
	for i := len(live); i < len(s.bodies); i++ {
		s.bodies[i] = nil
	}
	s.bodies = live

	if removedAny {
		for id, ct := range s.contacts {
			if ct.a.Removed() || ct.b.Removed() {
				delete(s.contacts, id)
			}
		}
	}
}
