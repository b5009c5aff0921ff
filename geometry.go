package neopop

import (
	"math"

	"github.com/gogpu/gg"
)

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// R is a convenience constructor for Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p gg.Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// SameSize reports whether r and o have the same width and height.
func (r Rect) SameSize(o Rect) bool {
	return r.Width == o.Width && r.Height == o.Height
}

// Inset shrinks the rectangle by the given insets. Negative insets grow it.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  r.Width - in.Left - in.Right,
		Height: r.Height - in.Top - in.Bottom,
	}
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Lerp linearly interpolates between r and o.
func (r Rect) Lerp(o Rect, t float64) Rect {
	return Rect{
		X:      lerp(r.X, o.X, t),
		Y:      lerp(r.Y, o.Y, t),
		Width:  lerp(r.Width, o.Width, t),
		Height: lerp(r.Height, o.Height, t),
	}
}

// Insets are distances from each side of a rectangle, in UIKit order.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Scale multiplies every side by f.
func (in Insets) Scale(f float64) Insets {
	return Insets{Top: in.Top * f, Left: in.Left * f, Bottom: in.Bottom * f, Right: in.Right * f}
}

// Segment is a stroked line between two points.
type Segment struct {
	Start, End gg.Point
	Color      gg.RGBA
	Width      float64
}

// Offset returns s translated by (dx, dy).
func (s Segment) Offset(dx, dy float64) Segment {
	s.Start = gg.Pt(s.Start.X+dx, s.Start.Y+dy)
	s.End = gg.Pt(s.End.X+dx, s.End.Y+dy)
	return s
}

// Polygon is an ordered list of vertices. Polygons produced by this
// package are closed: the last point repeats the first.
type Polygon []gg.Point

// Quad builds a closed polygon from four vertices.
func Quad(p1, p2, p3, p4 gg.Point) Polygon {
	return Polygon{p1, p2, p3, p4, p1}
}

// Closed reports whether the polygon ends where it starts.
func (p Polygon) Closed() bool {
	return len(p) > 1 && p[0] == p[len(p)-1]
}

// Offset returns a translated copy of p.
func (p Polygon) Offset(dx, dy float64) Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = gg.Pt(pt.X+dx, pt.Y+dy)
	}
	return out
}

// Lerp interpolates vertex-wise between p and o, which must have the same
// length.
func (p Polygon) Lerp(o Polygon, t float64) Polygon {
	out := make(Polygon, len(p))
	for i := range p {
		out[i] = gg.Pt(lerp(p[i].X, o[i].X, t), lerp(p[i].Y, o[i].Y, t))
	}
	return out
}

// Bounds returns the smallest rectangle containing every vertex.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range p {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Wrap returns i modulo n in the range [0, n). It panics if n <= 0.
func Wrap(i, n int) int {
	if n <= 0 {
		panic("neopop: Wrap with non-positive divisor")
	}
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}
