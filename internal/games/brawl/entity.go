package brawl

import "github.com/polyarena/polyarena/internal/physics"

// Kind tags what a body represents in the duel. Stored as the body's
// payload so collision handlers can tell combatants, bullets, and static
// geometry apart.
type Kind int

const (
	KindCharacter Kind = iota
	KindBullet
	KindWater
	KindPlatform
)

// Entity is the payload attached to every brawl body.
type Entity struct {
	Kind Kind
	ID   int // Character id (0 = player) or the shooter's id for bullets

	HP    float64
	MaxHP float64

	// Gravity marks a character as airborne: the conditional gravity
	// creator only pulls on characters that have been knocked off their
	// footing.
	Gravity bool

	// KnockedBack is set while a character is flying from a hit and
	// cleared when it lands on a platform.
	KnockedBack bool
}

// entityOf extracts the brawl payload from a body, or nil for foreign
// bodies.
func entityOf(b *physics.Body) *Entity {
	e, _ := b.Info().(*Entity)
	return e
}

// Display colors for the duel's bodies.
var (
	playerColor   = physics.Color{R: 0.0, G: 0.8, B: 0.0}
	enemy1Color   = physics.Color{R: 0.8, G: 0.0, B: 0.0}
	enemy2Color   = physics.Color{R: 0.9, G: 0.4, B: 0.0}
	bulletColor   = physics.Color{R: 0.9, G: 0.9, B: 0.2}
	waterColor    = physics.Color{R: 0.2, G: 0.2, B: 0.8}
	platformColor = physics.Color{R: 0.5, G: 0.5, B: 0.5}
	drownedColor  = physics.Color{R: 0.1, G: 0.1, B: 0.1}
)
