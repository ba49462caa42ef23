package core

import "github.com/polyarena/polyarena/internal/physics"

// Color identifies a foreground color for a screen cell. Values map to
// ANSI 256-color codes in the render layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// palette holds the RGB anchor for each Color, used to map a body's
// display tint onto the terminal palette.
var palette = []struct {
	c       Color
	r, g, b float64
}{
	{ColorRed, 0.7, 0.1, 0.1},
	{ColorGreen, 0.1, 0.7, 0.1},
	{ColorYellow, 0.7, 0.7, 0.1},
	{ColorBlue, 0.15, 0.15, 0.8},
	{ColorMagenta, 0.7, 0.1, 0.7},
	{ColorCyan, 0.1, 0.7, 0.7},
	{ColorWhite, 0.8, 0.8, 0.8},
	{ColorBrightRed, 1.0, 0.2, 0.2},
	{ColorBrightGreen, 0.2, 1.0, 0.2},
	{ColorBrightYellow, 1.0, 1.0, 0.3},
	{ColorBrightBlue, 0.3, 0.3, 1.0},
	{ColorBrightMagenta, 1.0, 0.3, 1.0},
	{ColorBrightCyan, 0.3, 1.0, 1.0},
	{ColorBrightWhite, 1.0, 1.0, 1.0},
	{ColorOrange, 0.95, 0.55, 0.1},
	{ColorGray, 0.45, 0.45, 0.45},
}

// FromBodyColor maps a physics display color (RGB in [0,1]) to the nearest
// terminal color by squared distance in RGB space.
func FromBodyColor(c physics.Color) Color {
	best := ColorDefault
	bestDist := 1e18
	for _, p := range palette {
		dr := c.R - p.r
		dg := c.G - p.g
		db := c.B - p.b
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = p.c
		}
	}
	return best
}
