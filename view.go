package neopop

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// Layer identifies one of the three polygons a View draws.
type Layer uint8

const (
	LayerCenter Layer = iota
	LayerVertical
	LayerHorizontal
)

func (l Layer) String() string {
	switch l {
	case LayerCenter:
		return "center"
	case LayerVertical:
		return "vertical"
	case LayerHorizontal:
		return "horizontal"
	}
	return "unknown"
}

// PathFunc overrides the polygon of a layer. Returning false keeps the
// default geometry; returning a nil polygon with true draws nothing.
type PathFunc func(layer Layer, frame Rect, m ViewModel) (Polygon, bool)

// Shape is a filled polygon and its borders, in view coordinates.
type Shape struct {
	// Polygon is nil when the layer is not drawn.
	Polygon Polygon
	Fill    gg.RGBA
	Borders []Segment
}

// Empty reports whether nothing is drawn for the shape.
func (s Shape) Empty() bool { return len(s.Polygon) == 0 }

// ViewShapes are the three layers of a View.
type ViewShapes struct {
	Center, Vertical, Horizontal Shape
}

// View renders the bevel of a 3D pop surface: a vertical edge, a horizontal
// edge and a center face, computed from a ViewModel and the view's size.
//
// Geometry is recomputed only when the model changes structurally or the
// size changes. A View is not safe for concurrent use.
type View struct {
	model    ViewModel
	hasModel bool
	bounds   Rect
	shapes   ViewShapes
	renders  int
	pathFunc PathFunc
}

// ViewOption configures a View during creation.
type ViewOption func(*View)

// WithPathFunc installs a geometry override.
func WithPathFunc(fn PathFunc) ViewOption {
	return func(v *View) {
		v.pathFunc = fn
	}
}

// NewView creates an unconfigured View with the given size.
func NewView(bounds Rect, opts ...ViewOption) *View {
	v := &View{bounds: Rect{Width: bounds.Width, Height: bounds.Height}}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Configure applies m. It returns false and does no work when m equals the
// model already applied.
func (v *View) Configure(m ViewModel) bool {
	if v.hasModel && v.model.Equal(m) {
		Logger().Debug("neopop: view render skipped", slog.String("id", m.Identifier))
		return false
	}
	v.model = m
	v.hasModel = true
	v.render()
	return true
}

// Model returns the applied model.
func (v *View) Model() ViewModel { return v.model }

// SetBounds resizes the view. Only the size matters; geometry is in view
// coordinates.
func (v *View) SetBounds(r Rect) {
	if v.bounds.SameSize(r) {
		return
	}
	v.bounds = Rect{Width: r.Width, Height: r.Height}
	if v.hasModel {
		v.render()
	}
}

// Bounds returns the view's local bounds.
func (v *View) Bounds() Rect { return v.bounds }

// Shapes returns the geometry of the last render.
func (v *View) Shapes() ViewShapes { return v.shapes }

// RenderCount returns how many times geometry has been computed.
func (v *View) RenderCount() int { return v.renders }

func (v *View) render() {
	v.renders++
	v.shapes = ComputeShapes(v.bounds, v.model, v.pathFunc)
}

// ComputeShapes computes the three layers of a view of the given size.
// pathFunc may be nil.
func ComputeShapes(bounds Rect, m ViewModel, pathFunc PathFunc) ViewShapes {
	frame := Rect{Width: bounds.Width, Height: bounds.Height}
	var s ViewShapes

	if !m.EdgeVisibility.HideCenter {
		s.Center = layerShape(LayerCenter, frame, m, centerPolygon(frame, m), pathFunc)
	}
	if p := verticalPolygon(frame, m); p != nil {
		s.Vertical = layerShape(LayerVertical, frame, m, p, pathFunc)
	}
	if p := horizontalPolygon(frame, m); p != nil {
		s.Horizontal = layerShape(LayerHorizontal, frame, m, p, pathFunc)
	}
	return s
}

func layerShape(layer Layer, frame Rect, m ViewModel, p Polygon, pathFunc PathFunc) Shape {
	if pathFunc != nil {
		if custom, ok := pathFunc(layer, frame, m); ok {
			p = custom
		}
	}
	if len(p) < 5 {
		return Shape{}
	}
	sh := Shape{Polygon: p}
	switch layer {
	case LayerCenter:
		sh.Fill = m.Background
		sh.Borders = polygonBorders(p, m.CenterBorderColors, m.BorderWidth, 1, 1)
	case LayerVertical:
		sh.Fill = m.verticalColor()
		if !m.BorderVisibility.hides(m.Direction.Kind().Sides().vertical()) {
			sh.Borders = polygonBorders(p, m.VerticalBorderColors, m.BorderWidth, 1, 2)
		}
	case LayerHorizontal:
		sh.Fill = m.horizontalColor()
		if !m.BorderVisibility.hides(m.Direction.Kind().Sides().horizontal()) {
			sh.Borders = polygonBorders(p, m.HorizontalBorderColors, m.BorderWidth, 2, 1)
		}
	}
	return sh
}

// polygonBorders strokes the sides of a closed quad: left v1-v2, bottom
// v2-v3, right v3-v4, top v4-v5. Borders are clipped to the view, so the
// scale factors double the width of the sides that lie on its boundary.
// Border visibility applies to a whole edge, so callers skip hidden edges.
func polygonBorders(p Polygon, colors EdgeColors, width, topBottomScale, leftRightScale float64) []Segment {
	if colors.IsZero() || width <= 0 {
		return nil
	}
	sides := []struct {
		side  Side
		a, b  int
		scale float64
	}{
		{SideLeft, 0, 1, leftRightScale},
		{SideBottom, 1, 2, topBottomScale},
		{SideRight, 2, 3, leftRightScale},
		{SideTop, 3, 4, topBottomScale},
	}
	var out []Segment
	for _, sd := range sides {
		c := colors.side(sd.side)
		if c == nil {
			continue
		}
		out = append(out, Segment{Start: p[sd.a], End: p[sd.b], Color: *c, Width: width * sd.scale})
	}
	return out
}

func centerPolygon(f Rect, m ViewModel) Polygon {
	w, h, off := f.Width, f.Height, m.EdgeDepth
	offW, offH := w-off, h-off

	switch m.Direction.Kind() {
	case KindTop:
		s := SlantOffset(w, off, m.Direction.Inclination())
		return Quad(gg.Pt(0, off), gg.Pt(s, h), gg.Pt(w-s, h), gg.Pt(w, off))
	case KindBottom:
		s := SlantOffset(w, off, m.Direction.Inclination())
		return Quad(gg.Pt(s, 0), gg.Pt(0, offH), gg.Pt(w, offH), gg.Pt(w-s, 0))
	case KindLeft:
		s := SlantOffset(h, off, m.Direction.Inclination())
		return Quad(gg.Pt(off, 0), gg.Pt(off, h), gg.Pt(w, h-s), gg.Pt(w, s))
	case KindRight:
		s := SlantOffset(h, off, m.Direction.Inclination())
		return Quad(gg.Pt(0, s), gg.Pt(0, h-s), gg.Pt(offW, h), gg.Pt(offW, 0))
	case KindBottomRight:
		return Quad(gg.Pt(0, 0), gg.Pt(0, offH), gg.Pt(offW, offH), gg.Pt(offW, 0))
	case KindBottomLeft:
		return Quad(gg.Pt(off, 0), gg.Pt(off, offH), gg.Pt(w, offH), gg.Pt(w, 0))
	case KindTopRight:
		return Quad(gg.Pt(0, off), gg.Pt(0, h), gg.Pt(offW, h), gg.Pt(offW, off))
	case KindTopLeft:
		return Quad(gg.Pt(off, off), gg.Pt(off, h), gg.Pt(w, h), gg.Pt(w, off))
	}
	return nil
}

// heightClip returns the vertical extent of a vertical edge polygon.
func heightClip(f Rect, m ViewModel) (originY, maxY float64) {
	h, off := f.Height, m.EdgeDepth
	k := m.Direction.Kind()
	top := k == KindTopLeft || k == KindTopRight
	bottom := k == KindBottomLeft || k == KindBottomRight

	switch m.ClipHeight {
	case ClipDistantCorners:
		if bottom {
			return off, h
		}
		return 0, h - off
	case ClipJoinedCorners:
		if top || !bottom {
			return off, h
		}
		return 0, h - off
	}
	return 0, h
}

// widthClip returns the horizontal extent of a horizontal edge polygon.
func widthClip(f Rect, m ViewModel) (originX, maxX float64) {
	w, off := f.Width, m.EdgeDepth
	k := m.Direction.Kind()
	left := k == KindBottomLeft || k == KindTopLeft
	right := k == KindBottomRight || k == KindTopRight

	switch m.ClipWidth {
	case ClipDistantCorners:
		if right {
			return off, w
		}
		return 0, w - off
	case ClipJoinedCorners:
		if left {
			return off, w
		}
		return 0, w - off
	}
	return 0, w
}

func verticalPolygon(f Rect, m ViewModel) Polygon {
	if !m.Direction.HasVerticalEdge() {
		return nil
	}
	w, h, off := f.Width, f.Height, m.EdgeDepth
	offW, offH := w-off, h-off
	oy, maxH := heightClip(f, m)
	vis := m.EdgeVisibility

	switch m.Direction.Kind() {
	case KindLeft:
		if vis.HideLeft {
			return nil
		}
		return Quad(gg.Pt(0, off/2), gg.Pt(0, offH+off/2), gg.Pt(off, maxH), gg.Pt(off, 0))
	case KindRight:
		if vis.HideRight {
			return nil
		}
		return Quad(gg.Pt(offW, 0), gg.Pt(offW, maxH), gg.Pt(w, offH+off/2), gg.Pt(w, off/2))
	case KindBottomRight:
		if vis.HideRight {
			return nil
		}
		return Quad(gg.Pt(offW, oy), gg.Pt(offW, offH), gg.Pt(w, maxH), gg.Pt(w, off))
	case KindBottomLeft:
		if vis.HideLeft {
			return nil
		}
		return Quad(gg.Pt(0, off), gg.Pt(0, maxH), gg.Pt(off, offH), gg.Pt(off, oy))
	case KindTopRight:
		if vis.HideRight {
			return nil
		}
		return Quad(gg.Pt(offW, off), gg.Pt(offW, maxH), gg.Pt(w, offH), gg.Pt(w, oy))
	case KindTopLeft:
		if vis.HideLeft {
			return nil
		}
		return Quad(gg.Pt(0, oy), gg.Pt(0, offH), gg.Pt(off, maxH), gg.Pt(off, off))
	}
	return nil
}

func horizontalPolygon(f Rect, m ViewModel) Polygon {
	if !m.Direction.HasHorizontalEdge() {
		return nil
	}
	w, h, off := f.Width, f.Height, m.EdgeDepth
	offW, offH := w-off, h-off
	ox, maxW := widthClip(f, m)
	vis := m.EdgeVisibility

	switch m.Direction.Kind() {
	case KindTop:
		if vis.HideTop {
			return nil
		}
		return Quad(gg.Pt(off/2, 0), gg.Pt(0, off), gg.Pt(maxW, off), gg.Pt(offW+off/2, 0))
	case KindBottom:
		if vis.HideBottom {
			return nil
		}
		return Quad(gg.Pt(0, offH), gg.Pt(off/2, h), gg.Pt(offW+off/2, h), gg.Pt(maxW, offH))
	case KindBottomRight:
		if vis.HideBottom {
			return nil
		}
		return Quad(gg.Pt(ox, offH), gg.Pt(off, h), gg.Pt(maxW, h), gg.Pt(offW, offH))
	case KindBottomLeft:
		if vis.HideBottom {
			return nil
		}
		return Quad(gg.Pt(off, offH), gg.Pt(ox, h), gg.Pt(offW, h), gg.Pt(maxW, offH))
	case KindTopRight:
		if vis.HideTop {
			return nil
		}
		return Quad(gg.Pt(off, 0), gg.Pt(ox, off), gg.Pt(offW, off), gg.Pt(maxW, 0))
	case KindTopLeft:
		if vis.HideTop {
			return nil
		}
		return Quad(gg.Pt(ox, 0), gg.Pt(off, off), gg.Pt(maxW, off), gg.Pt(offW, 0))
	}
	return nil
}
