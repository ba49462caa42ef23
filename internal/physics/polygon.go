package physics

import (
	"fmt"
	"math"
)

// Polygon is a simple convex polygon given by its vertices in
// counterclockwise order. A polygon is owned by at most one Body and is
// only ever mutated through whole-polygon transforms (Translate,
// RotateAbout); vertices are never edited individually from outside.
type Polygon struct {
	verts []Vec
}

// NewPolygon creates a polygon from the given vertices, which must be at
// least three finite points in counterclockwise order. The slice is copied.
// Panics on malformed input: a degenerate shape is a caller bug, not a
// recoverable runtime condition.
func NewPolygon(verts []Vec) Polygon {
	if len(verts) < 3 {
		panic(fmt.Sprintf("physics: polygon needs at least 3 vertices, got %d", len(verts)))
	}
	vs := make([]Vec, len(verts))
	for i, v := range verts {
		if !v.IsFinite() {
			panic(fmt.Sprintf("physics: polygon vertex %d is not finite: %+v", i, v))
		}
		vs[i] = v
	}
	return Polygon{verts: vs}
}

// NewBox creates an axis-aligned w x h rectangle centered at the origin.
func NewBox(w, h float64) Polygon {
	return NewPolygon([]Vec{
		{-w / 2, -h / 2},
		{+w / 2, -h / 2},
		{+w / 2, +h / 2},
		{-w / 2, +h / 2},
	})
}

// NewRegular creates a regular n-gon of the given circumradius centered at
// the origin, with the first vertex on the positive x axis.
func NewRegular(n int, radius float64) Polygon {
	if n < 3 {
		panic(fmt.Sprintf("physics: regular polygon needs at least 3 sides, got %d", n))
	}
	verts := make([]Vec, n)
	for i := range verts {
		angle := 2 * math.Pi * float64(i) / float64(n)
		verts[i] = Vec{radius * math.Cos(angle), radius * math.Sin(angle)}
	}
	return NewPolygon(verts)
}

// Clone returns a deep copy of the polygon.
func (p Polygon) Clone() Polygon {
	vs := make([]Vec, len(p.verts))
	copy(vs, p.verts)
	return Polygon{verts: vs}
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.verts)
}

// Vertex returns the i-th vertex.
func (p Polygon) Vertex(i int) Vec {
	return p.verts[i]
}

// Vertices returns a copy of the vertex slice; the caller owns it.
func (p Polygon) Vertices() []Vec {
	vs := make([]Vec, len(p.verts))
	copy(vs, p.verts)
	return vs
}

// signedArea returns the shoelace signed area: positive for
// counterclockwise winding.
func (p Polygon) signedArea() float64 {
	sum := 0.0
	n := len(p.verts)
	for i := 0; i < n; i++ {
		a := p.verts[i]
		b := p.verts[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area returns the polygon's area via the shoelace formula.
func (p Polygon) Area() float64 {
	return math.Abs(p.signedArea())
}

// Centroid returns the area-weighted centroid of the polygon.
func (p Polygon) Centroid() Vec {
	a := p.signedArea()
	if a == 0 {
		// Degenerate (collinear) polygon; fall back to the vertex mean so
		// callers still get a sensible reference point.
		sum := Vec{}
		for _, v := range p.verts {
			sum = sum.Add(v)
		}
		return sum.Scale(1 / float64(len(p.verts)))
	}

	var cx, cy float64
	n := len(p.verts)
	for i := 0; i < n; i++ {
		v := p.verts[i]
		w := p.verts[(i+1)%n]
		cross := v.X*w.Y - w.X*v.Y
		cx += (v.X + w.X) * cross
		cy += (v.Y + w.Y) * cross
	}
	return Vec{cx / (6 * a), cy / (6 * a)}
}

// Translate moves every vertex by d.
func (p *Polygon) Translate(d Vec) {
	for i := range p.verts {
		p.verts[i] = p.verts[i].Add(d)
	}
}

// RotateAbout rotates every vertex counterclockwise by angle radians
// around the pivot point.
func (p *Polygon) RotateAbout(angle float64, pivot Vec) {
	for i := range p.verts {
		p.verts[i] = p.verts[i].Sub(pivot).Rotate(angle).Add(pivot)
	}
}
