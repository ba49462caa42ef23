// Package config provides YAML-based tuning for the arena games: world
// dimensions, physical constants, and combat parameters, loaded from a
// search path with embedded defaults as the fallback.
package config

// WorldConfig defines a game's simulation rectangle in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BrawlConfig contains all tuning for the brawl duel.
type BrawlConfig struct {
	World   WorldConfig  `yaml:"world"`
	Physics BrawlPhysics `yaml:"physics"`
	Combat  BrawlCombat  `yaml:"combat"`
	Layout  BrawlLayout  `yaml:"layout"`
}

// BrawlPhysics defines the physical constants of the duel.
type BrawlPhysics struct {
	Gravity       float64 `yaml:"gravity"`        // Downward acceleration for airborne characters
	BulletSpeed   float64 `yaml:"bullet_speed"`   // Horizontal bullet velocity
	KnockbackX    float64 `yaml:"knockback_x"`    // Horizontal knockback speed on hit
	KnockbackY    float64 `yaml:"knockback_y"`    // Vertical knockback speed on hit
	CharacterMass float64 `yaml:"character_mass"` // Mass of player and enemies
	BulletMass    float64 `yaml:"bullet_mass"`
}

// BrawlCombat defines hit points and damage.
type BrawlCombat struct {
	MaxHP  float64 `yaml:"max_hp"`
	Damage float64 `yaml:"damage"` // HP lost per bullet hit
}

// BrawlLayout defines body sizes and positions in world units.
type BrawlLayout struct {
	PlatformWidth  float64 `yaml:"platform_width"`
	PlatformHeight float64 `yaml:"platform_height"`
	CharacterSize  float64 `yaml:"character_size"`
	BulletWidth    float64 `yaml:"bullet_width"`
	BulletHeight   float64 `yaml:"bullet_height"`
	WaterHeight    float64 `yaml:"water_height"`
}

// OrbitConfig contains all tuning for the orbit sandbox.
type OrbitConfig struct {
	World        WorldConfig `yaml:"world"`
	G            float64     `yaml:"g"`             // Gravitational constant
	StarMass     float64     `yaml:"star_mass"`     // Central body mass
	PlanetMass   float64     `yaml:"planet_mass"`   // Per-planet mass
	Planets      int         `yaml:"planets"`       // Number of planets
	Elasticity   float64     `yaml:"elasticity"`    // Planet-planet restitution
	NudgeImpulse float64     `yaml:"nudge_impulse"` // Impulse applied per key press
}

// SpringsConfig contains all tuning for the spring-chain sandbox.
type SpringsConfig struct {
	World      WorldConfig `yaml:"world"`
	Stiffness  float64     `yaml:"stiffness"`  // Hooke constant between links
	Drag       float64     `yaml:"drag"`       // Velocity damping coefficient
	Elasticity float64     `yaml:"elasticity"` // Floor bounce restitution
	Blocks     int         `yaml:"blocks"`     // Chain length
	BlockMass  float64     `yaml:"block_mass"`
	Impulse    float64     `yaml:"impulse"` // Impulse applied per key press
}
