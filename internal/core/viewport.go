package core

import (
	"math"

	"github.com/polyarena/polyarena/internal/physics"
)

// Viewport maps a world rectangle (y axis pointing up) onto a screen
// rectangle (row 0 at the top) and rasterizes physics shapes into cells.
// The render boundary is read-only: a viewport reads body shapes, colors,
// and centroids but never mutates simulation state.
type Viewport struct {
	worldW, worldH   float64
	screenW, screenH int
}

// NewViewport creates a viewport projecting the world rectangle
// [0,worldW] x [0,worldH] onto a screenW x screenH cell grid.
func NewViewport(worldW, worldH float64, screenW, screenH int) Viewport {
	return Viewport{
		worldW:  worldW,
		worldH:  worldH,
		screenW: screenW,
		screenH: screenH,
	}
}

// ToCell converts a world point to cell coordinates. The world y axis
// points up; cell rows grow downward.
func (v Viewport) ToCell(p physics.Vec) (x, y int) {
	x = int(math.Floor(p.X / v.worldW * float64(v.screenW)))
	y = int(math.Floor((1 - p.Y/v.worldH) * float64(v.screenH)))
	return x, y
}

// cellCenter returns the world coordinates of a cell's center.
func (v Viewport) cellCenter(x, y int) physics.Vec {
	return physics.Vec{
		X: (float64(x) + 0.5) / float64(v.screenW) * v.worldW,
		Y: (1 - (float64(y)+0.5)/float64(v.screenH)) * v.worldH,
	}
}

// DrawBody rasterizes a body's polygon into the screen using the body's
// display color.
func (v Viewport) DrawBody(dst *Screen, b *physics.Body, fill rune) {
	v.FillPolygon(dst, b.Shape(), fill, FromBodyColor(b.Color()))
}

// FillPolygon fills a convex polygon with the given rune. Cells whose
// centers fall inside the polygon are set; the polygon's bounding box
// bounds the scan.
func (v Viewport) FillPolygon(dst *Screen, poly physics.Polygon, fill rune, c Color) {
	minV := physics.Vec{X: math.MaxFloat64, Y: math.MaxFloat64}
	maxV := physics.Vec{X: -math.MaxFloat64, Y: -math.MaxFloat64}
	for i := 0; i < poly.Len(); i++ {
		p := poly.Vertex(i)
		minV.X = math.Min(minV.X, p.X)
		minV.Y = math.Min(minV.Y, p.Y)
		maxV.X = math.Max(maxV.X, p.X)
		maxV.Y = math.Max(maxV.Y, p.Y)
	}

	x0, y1 := v.ToCell(minV)
	x1, y0 := v.ToCell(maxV)
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, dst.Width()-1)
	y1 = min(y1, dst.Height()-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if polygonContains(poly, v.cellCenter(x, y)) {
				dst.Set(x, y, fill, c)
			}
		}
	}
}

// polygonContains reports whether a point lies inside a convex polygon
// with counterclockwise winding: the point must be on the left of every
// directed edge.
func polygonContains(poly physics.Polygon, p physics.Vec) bool {
	n := poly.Len()
	for i := 0; i < n; i++ {
		a := poly.Vertex(i)
		b := poly.Vertex((i + 1) % n)
		if b.Sub(a).Cross(p.Sub(a)) < 0 {
			return false
		}
	}
	return true
}
