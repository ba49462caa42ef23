package brawl

import "github.com/polyarena/polyarena/internal/physics"

// waterHandler fires once when a character sinks into the water. Enemies
// are eliminated; the player drowning ends the duel.
func (g *Game) waterHandler(a, b *physics.Body, axis physics.Vec, _ float64) {
	ch := a
	if entityOf(ch) == nil || entityOf(ch).Kind != KindCharacter {
		ch = b
	}
	info := entityOf(ch)
	if info == nil || info.Kind != KindCharacter {
		return
	}

	ch.SetColor(drownedColor)
	ch.Remove()
	if ch == g.player {
		g.finish(OutcomeDrowned, false)
	}
}

// bulletHitHandler fires once when a bullet reaches a character: apply
// damage, knock the target back, retire the bullet, and pass the turn.
func (g *Game) bulletHitHandler(a, b *physics.Body, axis physics.Vec, damage float64) {
	bullet, target := a, b
	if info := entityOf(bullet); info == nil || info.Kind != KindBullet {
		bullet, target = b, a
	}
	info := entityOf(target)
	if info == nil || info.Kind != KindCharacter {
		return
	}

	info.HP -= damage
	if info.HP < 0 {
		info.HP = 0
	}

	dir := 1.0
	if bullet.Velocity().X < 0 {
		dir = -1.0
	}
	target.SetVelocity(physics.Vec{X: dir * g.cfg.Physics.KnockbackX, Y: g.cfg.Physics.KnockbackY})
	info.Gravity = true
	info.KnockedBack = true

	bullet.Remove()
	if bullet == g.bullet {
		g.bullet = nil
		g.advanceFrom(g.phase)
	}

	if info.HP <= 0 {
		if target == g.player {
			g.finish(OutcomeDefeated, false)
		} else {
			target.SetColor(drownedColor)
			target.Remove()
		}
	}
}

// registerPlatformContact keeps a character standing on its platform. This
// runs every tick rather than edge-triggered: resting contact must hold
// for as long as the overlap lasts, not only on the first touching frame.
func (g *Game) registerPlatformContact(ch, plat *physics.Body) {
	half := g.cfg.Layout.CharacterSize / 2
	platTop := plat.Centroid().Y + g.cfg.Layout.PlatformHeight/2

	g.scene.AddForceCreator(func() {
		if ch.Removed() {
			return
		}
		col := physics.FindCollision(ch, plat)
		if !col.Colliding {
			return
		}
		// Only treat it as a landing when approaching from above.
		bottom := ch.Centroid().Y - half
		if col.Axis.Y < -0.7 && bottom <= platTop+2.0 {
			ch.SetVelocity(physics.VecZero)
			c := ch.Centroid()
			ch.SetCentroid(physics.Vec{X: c.X, Y: platTop + half + 0.01})
			if info := entityOf(ch); info != nil {
				info.Gravity = false
				info.KnockedBack = false
			}
		}
	})
}

// registerConditionalGravity pulls down only on airborne characters.
// Grounded characters carry no gravity so they rest on their platform
// without a persistent contact force fighting the pull.
func (g *Game) registerConditionalGravity() {
	g.scene.AddForceCreator(func() {
		for _, ch := range g.characters {
			if ch.Removed() {
				continue
			}
			info := entityOf(ch)
			if info == nil || !info.Gravity {
				continue
			}
			weight := ch.Mass().Value() * g.cfg.Physics.Gravity
			ch.AddForce(physics.Vec{X: 0, Y: -weight})
		}
	})
}
