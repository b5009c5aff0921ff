package neopop

import (
	"github.com/gogpu/gg"
)

// FaceShape computes the button face in face coordinates: the frame's
// rectangle, slanted by the direction's draw manager, filled with the
// background (grey when disabled) and outlined with the face border colors.
func FaceShape(frame Rect, m ButtonModel, disabled bool) Shape {
	dm := m.Direction.DrawManager()
	w, h := frame.Width, frame.Height
	pts := [4]gg.Point{gg.Pt(0, 0), gg.Pt(0, h), gg.Pt(w, h), gg.Pt(w, 0)}
	dm.UpdateFacePoints(&pts, frame, m)

	sh := Shape{Polygon: Quad(pts[0], pts[1], pts[2], pts[3]), Fill: m.Background}
	if disabled {
		sh.Fill = DisabledBackground
		return sh
	}

	bw := m.BorderWidth
	if bw <= 0 {
		return sh
	}
	c := m.FaceBorderColors
	var b FaceBorders
	if c.Left != nil {
		b.Left = &Segment{Start: pts[0], End: pts[1], Color: *c.Left, Width: bw}
	}
	if c.Bottom != nil {
		b.Bottom = &Segment{Start: pts[1], End: pts[2], Color: *c.Bottom, Width: bw}
	}
	if c.Right != nil {
		b.Right = &Segment{Start: pts[2], End: pts[3], Color: *c.Right, Width: bw}
	}
	if c.Top != nil {
		b.Top = &Segment{Start: pts[3], End: pts[0], Color: *c.Top, Width: bw}
	}
	dm.FineTuneBorders(&b, bw)
	sh.Borders = b.Segments()
	return sh
}

// TailShape computes the corner tail inside a size×size square: a
// right triangle filled with fill and, when the matching face border color
// is set, a border continuing the adjoining edge. It returns an empty
// Shape for TailNone.
func TailShape(c CornerShape, size float64, fill gg.RGBA, borders EdgeColors, borderWidth float64) Shape {
	var (
		poly       Polygon
		start, end gg.Point
		border     *gg.RGBA
	)
	s := size
	switch c.Kind {
	case TailLeftToBottomRight:
		poly = Polygon{gg.Pt(0, 0), gg.Pt(0, s), gg.Pt(s, s), gg.Pt(0, 0)}
		start, end, border = gg.Pt(0, s), gg.Pt(0, 0), borders.Left
		if c.Horizontal {
			end, border = gg.Pt(s, s), borders.Bottom
		}
	case TailLeftToTopRight:
		poly = Polygon{gg.Pt(0, 0), gg.Pt(0, s), gg.Pt(s, 0), gg.Pt(0, 0)}
		start, end, border = gg.Pt(0, 0), gg.Pt(0, s), borders.Left
		if c.Horizontal {
			end, border = gg.Pt(s, 0), borders.Top
		}
	case TailRightToBottomLeft:
		poly = Polygon{gg.Pt(0, s), gg.Pt(s, s), gg.Pt(s, 0), gg.Pt(0, s)}
		start, end, border = gg.Pt(s, s), gg.Pt(s, 0), borders.Right
		if c.Horizontal {
			end, border = gg.Pt(0, s), borders.Bottom
		}
	case TailRightToTopLeft:
		poly = Polygon{gg.Pt(0, 0), gg.Pt(s, s), gg.Pt(s, 0), gg.Pt(0, 0)}
		start, end, border = gg.Pt(s, 0), gg.Pt(s, s), borders.Right
		if c.Horizontal {
			end, border = gg.Pt(0, 0), borders.Top
		}
	default:
		return Shape{}
	}

	sh := Shape{Polygon: poly, Fill: fill}
	if border != nil && borderWidth > 0 {
		sh.Borders = []Segment{{Start: start, End: end, Color: *border, Width: borderWidth}}
	}
	return sh
}

// tailRect places the size×size tail square at a corner of r.
func tailRect(r Rect, corner Corner, size float64) Rect {
	switch corner {
	case CornerTopLeft:
		return Rect{X: r.X, Y: r.Y, Width: size, Height: size}
	case CornerTopRight:
		return Rect{X: r.MaxX() - size, Y: r.Y, Width: size, Height: size}
	case CornerBottomLeft:
		return Rect{X: r.X, Y: r.MaxY() - size, Width: size, Height: size}
	}
	return Rect{X: r.MaxX() - size, Y: r.MaxY() - size, Width: size, Height: size}
}
