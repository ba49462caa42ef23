package config

import (
	_ "embed"
)

//go:embed defaults/brawl.yaml
var defaultBrawlYAML []byte

//go:embed defaults/orbit.yaml
var defaultOrbitYAML []byte

//go:embed defaults/springs.yaml
var defaultSpringsYAML []byte

// DefaultBrawlConfig returns the built-in brawl tuning, mirroring the
// embedded YAML. Used as the last-resort fallback.
func DefaultBrawlConfig() BrawlConfig {
	return BrawlConfig{
		World: WorldConfig{Width: 1000, Height: 500},
		Physics: BrawlPhysics{
			Gravity:       250,
			BulletSpeed:   250,
			KnockbackX:    40,
			KnockbackY:    100,
			CharacterMass: 10,
			BulletMass:    1,
		},
		Combat: BrawlCombat{
			MaxHP:  100,
			Damage: 50,
		},
		Layout: BrawlLayout{
			PlatformWidth:  150,
			PlatformHeight: 20,
			CharacterSize:  30,
			BulletWidth:    20,
			BulletHeight:   10,
			WaterHeight:    20,
		},
	}
}

// DefaultOrbitConfig returns the built-in orbit sandbox tuning.
func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		World:        WorldConfig{Width: 400, Height: 200},
		G:            600,
		StarMass:     4000,
		PlanetMass:   10,
		Planets:      4,
		Elasticity:   1,
		NudgeImpulse: 120,
	}
}

// DefaultSpringsConfig returns the built-in spring-chain tuning.
func DefaultSpringsConfig() SpringsConfig {
	return SpringsConfig{
		World:      WorldConfig{Width: 200, Height: 100},
		Stiffness:  12,
		Drag:       1.5,
		Elasticity: 0.4,
		Blocks:     5,
		BlockMass:  4,
		Impulse:    60,
	}
}
