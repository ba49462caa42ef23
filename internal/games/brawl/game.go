// Package brawl implements the turn-based artillery duel: a player and two
// enemies trade shots across platforms suspended over water. It is a thin
// consumer of the physics core; all combat rules live in collision
// handlers registered with the scene.
package brawl

import (
	"github.com/polyarena/polyarena/internal/config"
	"github.com/polyarena/polyarena/internal/core"
	"github.com/polyarena/polyarena/internal/physics"
	"github.com/polyarena/polyarena/internal/registry"
)

// phase is the duel's turn state.
type phase int

const (
	waitingForPlayerShot phase = iota
	playerShotActive
	enemy1Firing
	enemy1ShotActive
	enemy2Firing
	enemy2ShotActive
	duelOver
)

// Outcome strings recorded with match results.
const (
	OutcomeWon      = "won"
	OutcomeDefeated = "defeated"
	OutcomeDrowned  = "drowned"
)

// Package-level config path, set by the CLI before game creation.
var configPath string

// SetConfigPath sets the YAML config path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the brawl duel.
type Game struct {
	cfg   config.BrawlConfig
	rt    core.RuntimeConfig
	view  core.Viewport
	scene *physics.Scene

	player *physics.Body
	enemy1 *physics.Body
	enemy2 *physics.Body
	water  *physics.Body
	platL  *physics.Body
	platR  *physics.Body

	// Live combatants, for the conditional gravity creator.
	characters []*physics.Body

	bullet *physics.Body // In-flight bullet, nil between shots

	phase    phase
	turns    int // Completed turn cycles
	outcome  string
	paused   bool
	gameOver bool
	won      bool
}

// New creates a brawl game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("brawl", func() registry.Game { return New() })
}

// ID returns the game identifier.
func (g *Game) ID() string { return "brawl" }

// Title returns the display name.
func (g *Game) Title() string { return "Platform Brawl" }

// Reset builds a fresh scene: water across the bottom, two platforms, the
// player on the left and both enemies on the right, with all standing
// collision registrations in place.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadBrawl(configPath)
	if err != nil {
		cfg = config.DefaultBrawlConfig()
	}
	g.cfg = cfg
	g.rt = rt
	g.view = core.NewViewport(cfg.World.Width, cfg.World.Height, rt.ScreenW, rt.ScreenH)
	g.scene = physics.NewScene()
	g.bullet = nil
	g.phase = waitingForPlayerShot
	g.turns = 0
	g.outcome = ""
	g.paused = false
	g.gameOver = false
	g.won = false

	l := cfg.Layout
	w := cfg.World

	waterY := l.WaterHeight / 2
	g.water = g.makeStatic(physics.NewBox(w.Width, l.WaterHeight),
		physics.Vec{X: w.Width / 2, Y: waterY}, waterColor, KindWater)

	platformY := waterY + l.WaterHeight/2 + 20 + l.PlatformHeight/2
	g.platL = g.makeStatic(physics.NewBox(l.PlatformWidth, l.PlatformHeight),
		physics.Vec{X: 150, Y: platformY}, platformColor, KindPlatform)
	g.platR = g.makeStatic(physics.NewBox(l.PlatformWidth, l.PlatformHeight),
		physics.Vec{X: w.Width - 150, Y: platformY}, platformColor, KindPlatform)

	standY := platformY + l.PlatformHeight/2 + l.CharacterSize/2 + 0.1
	g.player = g.makeCharacter(physics.Vec{X: 150 - 50, Y: standY}, playerColor, 0)
	g.enemy1 = g.makeCharacter(physics.Vec{X: w.Width - 150 - l.CharacterSize/1.5, Y: standY}, enemy1Color, 1)
	g.enemy2 = g.makeCharacter(physics.Vec{X: w.Width - 150 + l.CharacterSize/1.5, Y: standY}, enemy2Color, 2)
	g.characters = []*physics.Body{g.player, g.enemy1, g.enemy2}

	for _, ch := range g.characters {
		physics.CreateCollision(g.scene, ch, g.water, g.waterHandler, 0)
	}
	g.registerPlatformContact(g.player, g.platL)
	g.registerPlatformContact(g.enemy1, g.platR)
	g.registerPlatformContact(g.enemy2, g.platR)
	g.registerConditionalGravity()
}

// makeStatic adds an immovable body at the given center.
func (g *Game) makeStatic(poly physics.Polygon, at physics.Vec, c physics.Color, kind Kind) *physics.Body {
	b := physics.NewBodyWithInfo(poly, physics.Immovable(), c, &Entity{Kind: kind})
	b.SetCentroid(at)
	g.scene.AddBody(b)
	return b
}

// makeCharacter adds a combatant with full HP at the given center.
func (g *Game) makeCharacter(at physics.Vec, c physics.Color, id int) *physics.Body {
	info := &Entity{
		Kind:  KindCharacter,
		ID:    id,
		HP:    g.cfg.Combat.MaxHP,
		MaxHP: g.cfg.Combat.MaxHP,
	}
	b := physics.NewBodyWithInfo(physics.NewBox(g.cfg.Layout.CharacterSize, g.cfg.Layout.CharacterSize),
		physics.Kilograms(g.cfg.Physics.CharacterMass), c, info)
	b.SetCentroid(at)
	g.scene.AddBody(b)
	return b
}

// Step advances the duel by one tick: resolve enemy turns, tick the scene,
// and retire bullets that left the world.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionFire) && g.phase == waitingForPlayerShot {
		target := g.aliveEnemy()
		if target != nil {
			g.fireBullet(g.player, target)
			g.phase = playerShotActive
		}
	}

	switch g.phase {
	case enemy1Firing:
		g.enemyTurn(g.enemy1, enemy1ShotActive)
	case enemy2Firing:
		g.enemyTurn(g.enemy2, enemy2ShotActive)
	}

	g.scene.Tick(g.rt.Dt())
	g.retireLostBullet()
	g.checkVictory()

	return core.StepResult{State: g.State()}
}

// enemyTurn fires for an enemy, or passes its turn when it is dead.
func (g *Game) enemyTurn(enemy *physics.Body, active phase) {
	if enemy.Removed() {
		g.advanceFrom(active)
		return
	}
	g.fireBullet(enemy, g.player)
	g.phase = active
}

// aliveEnemy returns the preferred target for the player's shot.
func (g *Game) aliveEnemy() *physics.Body {
	if !g.enemy1.Removed() {
		return g.enemy1
	}
	if !g.enemy2.Removed() {
		return g.enemy2
	}
	return nil
}

// fireBullet spawns a bullet next to the shooter, aimed at the target, and
// registers the hit handler for this shot.
func (g *Game) fireBullet(shooter, target *physics.Body) {
	p := g.cfg.Physics
	l := g.cfg.Layout

	from := shooter.Centroid()
	dir := 1.0
	if target.Centroid().X < from.X {
		dir = -1.0
	}
	start := from.Add(physics.Vec{X: dir * (l.CharacterSize/2 + l.BulletWidth/2 + 5), Y: 0})

	shooterID := -1
	if info := entityOf(shooter); info != nil {
		shooterID = info.ID
	}
	bullet := physics.NewBodyWithInfo(physics.NewBox(l.BulletWidth, l.BulletHeight),
		physics.Kilograms(p.BulletMass), bulletColor,
		&Entity{Kind: KindBullet, ID: shooterID})
	bullet.SetCentroid(start)
	bullet.SetVelocity(physics.Vec{X: dir * p.BulletSpeed, Y: 0})
	g.scene.AddBody(bullet)
	g.bullet = bullet

	if shooter == g.player {
		physics.CreateCollision(g.scene, bullet, g.enemy1, g.bulletHitHandler, g.cfg.Combat.Damage)
		physics.CreateCollision(g.scene, bullet, g.enemy2, g.bulletHitHandler, g.cfg.Combat.Damage)
	} else {
		physics.CreateCollision(g.scene, bullet, g.player, g.bulletHitHandler, g.cfg.Combat.Damage)
	}
}

// retireLostBullet removes a bullet that left the world without hitting
// anything and passes the turn, so a miss cannot stall the duel.
func (g *Game) retireLostBullet() {
	if g.bullet == nil {
		return
	}
	if g.bullet.Removed() {
		g.bullet = nil
		return
	}
	c := g.bullet.Centroid()
	if c.X < -g.cfg.Layout.BulletWidth || c.X > g.cfg.World.Width+g.cfg.Layout.BulletWidth {
		g.bullet.Remove()
		g.bullet = nil
		g.advanceFrom(g.phase)
	}
}

// advanceFrom moves the turn machine past a resolved shot phase.
func (g *Game) advanceFrom(resolved phase) {
	switch resolved {
	case playerShotActive:
		g.phase = enemy1Firing
	case enemy1ShotActive:
		g.phase = enemy2Firing
	case enemy2ShotActive:
		g.phase = waitingForPlayerShot
		g.turns++
	}
}

// checkVictory ends the duel when one side has no combatants left.
func (g *Game) checkVictory() {
	if g.gameOver {
		return
	}
	if g.enemy1.Removed() && g.enemy2.Removed() {
		g.finish(OutcomeWon, true)
	}
}

// finish ends the duel with the given outcome.
func (g *Game) finish(outcome string, won bool) {
	g.outcome = outcome
	g.won = won
	g.gameOver = true
	g.phase = duelOver
}

// State returns the current platform-facing snapshot. Score is the number
// of completed turn cycles survived.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.turns,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Result describes the finished duel for match persistence.
func (g *Game) Result() (outcome string, turns int, playerHP float64) {
	hp := 0.0
	if info := entityOf(g.player); info != nil {
		hp = info.HP
	}
	return g.outcome, g.turns, hp
}
