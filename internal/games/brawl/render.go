package brawl

import (
	"fmt"

	"github.com/polyarena/polyarena/internal/core"
	"github.com/polyarena/polyarena/internal/physics"
)

// Fill runes per body kind.
const (
	waterRune     = '~'
	platformRune  = '='
	characterRune = '█'
	bulletRune    = '•'
)

// Render rasterizes the scene and HUD into the screen buffer.
func (g *Game) Render(s *core.Screen) {
	s.Clear()
	if g.scene == nil {
		return
	}

	for i := 0; i < g.scene.Bodies(); i++ {
		b := g.scene.Body(i)
		if b == nil || b.Removed() {
			continue
		}
		g.view.DrawBody(s, b, runeFor(b))
	}

	g.drawHUD(s)

	switch {
	case g.gameOver:
		g.drawGameOver(s)
	case g.paused:
		s.DrawTextCentered(s.Height()/2, "PAUSED", core.ColorYellow)
	}
}

func runeFor(b *physics.Body) rune {
	info := entityOf(b)
	if info == nil {
		return '?'
	}
	switch info.Kind {
	case KindWater:
		return waterRune
	case KindPlatform:
		return platformRune
	case KindBullet:
		return bulletRune
	default:
		return characterRune
	}
}

// drawHUD writes HP readouts along the top row and the turn prompt below.
func (g *Game) drawHUD(s *core.Screen) {
	s.DrawText(1, 0, hpLabel("YOU", g.player), core.ColorGreen)

	e1 := hpLabel("E1", g.enemy1)
	e2 := hpLabel("E2", g.enemy2)
	s.DrawText(s.Width()-len(e1)-len(e2)-3, 0, e1, core.ColorRed)
	s.DrawText(s.Width()-len(e2)-1, 0, e2, core.ColorOrange)

	if g.phase == waitingForPlayerShot {
		s.DrawTextCentered(1, "SPACE to fire", core.ColorGray)
	}
}

func hpLabel(name string, b *physics.Body) string {
	info := entityOf(b)
	if info == nil || b.Removed() {
		return fmt.Sprintf("%s ---", name)
	}
	return fmt.Sprintf("%s %3.0f", name, info.HP)
}

func (g *Game) drawGameOver(s *core.Screen) {
	mid := s.Height() / 2
	switch g.outcome {
	case OutcomeWon:
		s.DrawTextCentered(mid, "VICTORY", core.ColorGreen)
	case OutcomeDrowned:
		s.DrawTextCentered(mid, "DROWNED", core.ColorBlue)
	default:
		s.DrawTextCentered(mid, "DEFEATED", core.ColorRed)
	}
	s.DrawTextCentered(mid+1, fmt.Sprintf("turns survived: %d", g.turns), core.ColorGray)
	s.DrawTextCentered(mid+2, "R to restart, B for menu", core.ColorGray)
}
