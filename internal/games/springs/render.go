package springs

import (
	"github.com/polyarena/polyarena/internal/core"
)

const (
	anchorRune = '+'
	blockRune  = '▒'
	floorRune  = '='
)

// Render rasterizes the chain; the selected block is tinted so the player
// can see where the next kick lands.
func (g *Game) Render(s *core.Screen) {
	s.Clear()
	if g.scene == nil {
		return
	}

	g.view.DrawBody(s, g.floor, floorRune)
	g.view.DrawBody(s, g.anchor, anchorRune)
	for i, b := range g.blocks {
		if i == g.selected {
			g.view.FillPolygon(s, b.Shape(), blockRune, core.FromBodyColor(activeColor))
			continue
		}
		g.view.DrawBody(s, b, blockRune)
	}

	s.DrawText(1, 0, "TAB select  arrows kick", core.ColorGray)
	if g.paused {
		s.DrawTextCentered(s.Height()/2, "PAUSED", core.ColorYellow)
	}
}
