package orbit

import (
	"fmt"

	"github.com/polyarena/polyarena/internal/core"
)

const (
	starRune     = '@'
	planetRune   = 'o'
	selectedRune = '#'
)

// Render rasterizes the system; the controlled planet is drawn with a
// distinct fill so the player can track it.
func (g *Game) Render(s *core.Screen) {
	s.Clear()
	if g.scene == nil {
		return
	}

	if !g.star.Removed() {
		g.view.DrawBody(s, g.star, starRune)
	}
	sel := g.selectedPlanet()
	for _, p := range g.planets {
		if p.Removed() {
			continue
		}
		fill := planetRune
		if p == sel {
			fill = selectedRune
		}
		g.view.DrawBody(s, p, fill)
	}

	state := g.State()
	s.DrawText(1, 0, fmt.Sprintf("planets %d  time %ds", g.aliveCount(), state.Score), core.ColorGray)
	s.DrawText(1, 1, "TAB select  arrows nudge", core.ColorGray)

	switch {
	case g.gameOver:
		s.DrawTextCentered(s.Height()/2, "SYSTEM LOST", core.ColorRed)
		s.DrawTextCentered(s.Height()/2+1, fmt.Sprintf("survived %ds", state.Score), core.ColorGray)
	case g.paused:
		s.DrawTextCentered(s.Height()/2, "PAUSED", core.ColorYellow)
	}
}
