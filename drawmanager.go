package neopop

import (
	"math"

	"github.com/gogpu/gg"
)

// DrawManager holds the direction-specific geometry rules of a Button.
// Each of the eight edge directions has exactly one manager, obtained from
// EdgeDirection.DrawManager.
type DrawManager interface {
	// Kind returns the direction the manager serves.
	Kind() DirectionKind

	// CornerTail returns the tail drawn for a button at the given position.
	CornerTail(pos Position) CornerShape

	// TailAnchor returns the face corner the tail is attached to. The
	// second result is false for side directions, which have no tail.
	TailAnchor() (Corner, bool)

	// UpdateFacePoints slants the face quad (p1..p4 counter-clockwise from
	// the top-left) of a side direction. Corner directions leave it alone.
	UpdateFacePoints(pts *[4]gg.Point, frame Rect, m ButtonModel)

	// FineTuneBorders nudges face border end points so that strokes of
	// adjoining sides do not overlap at the corners.
	FineTuneBorders(b *FaceBorders, borderWidth float64)

	// StaticBorders returns the 0 to 2 border segments that stay in place
	// while the button is pressed.
	StaticBorders(colors StaticBorderColors, frame Rect, borderWidth, edgeDepth float64) []Segment

	// NormalStateInsets offsets the normal-state view while pressed.
	NormalStateInsets(m ButtonModel) Insets

	// FaceInsets reveals or hides face area depending on the position.
	FaceInsets(m ButtonModel) Insets

	// ContentTransitionInsets places the face inside its holder for the
	// pressed or released layout.
	ContentTransitionInsets(pressed bool, m ButtonModel) Insets
}

// FaceBorders are the four border segments of a button face. Nil sides
// are not drawn.
type FaceBorders struct {
	Left, Right, Top, Bottom *Segment
}

// Segments returns the non-nil segments in left, bottom, right, top order.
func (b FaceBorders) Segments() []Segment {
	var out []Segment
	for _, s := range []*Segment{b.Left, b.Bottom, b.Right, b.Top} {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}

// nudge moves the start and end of a segment, in multiples of the border
// width.
type nudge struct {
	sx, sy, ex, ey float64
}

func (n nudge) apply(s *Segment, bw float64) {
	if s == nil {
		return
	}
	s.Start = gg.Pt(s.Start.X+n.sx*bw, s.Start.Y+n.sy*bw)
	s.End = gg.Pt(s.End.X+n.ex*bw, s.End.Y+n.ey*bw)
}

// manager is a table-driven DrawManager.
type manager struct {
	kind DirectionKind

	// tails maps positions to tail shapes; missing positions have none.
	tails map[Position]CornerShape

	// face maps positions to the sides inset by one edge length; missing
	// positions are not inset.
	face map[Position]Side

	// normal holds the sign of each side's normal-state inset.
	normal Insets

	left, right, top, bottom nudge
}

var managers = [...]*manager{
	KindBottomRight: {
		kind: KindBottomRight,
		tails: map[Position]CornerShape{
			PositionBottomEdge: {TailLeftToBottomRight, true},
			PositionBottomLeft: {TailLeftToBottomRight, true},
			PositionRightEdge:  {TailRightToTopLeft, false},
			PositionTopRight:   {TailRightToTopLeft, false},
		},
		face: map[Position]Side{
			PositionBottomEdge: SideRight,
			PositionBottomLeft: SideRight,
			PositionLeftEdge:   SideBottom | SideRight,
			PositionTopLeft:    SideBottom | SideRight,
			PositionTopEdge:    SideBottom | SideRight,
			PositionTopRight:   SideBottom,
			PositionRightEdge:  SideBottom,
			PositionCenter:     SideBottom | SideRight,
		},
		normal: Insets{Top: 1, Left: 1, Bottom: -1, Right: -1},
		bottom: nudge{1, -0.5, 0, -0.5},
		right:  nudge{-0.5, -1, -0.5, 1},
		top:    nudge{0, 0.5, 1, 0.5},
		left:   nudge{0.5, 0, 0.5, 0},
	},
	KindBottomLeft: {
		kind: KindBottomLeft,
		tails: map[Position]CornerShape{
			PositionBottomEdge:  {TailRightToBottomLeft, true},
			PositionBottomRight: {TailRightToBottomLeft, true},
			PositionLeftEdge:    {TailLeftToTopRight, false},
			PositionTopLeft:     {TailLeftToTopRight, false},
		},
		face: map[Position]Side{
			PositionBottomEdge:  SideLeft,
			PositionBottomRight: SideLeft,
			PositionTopLeft:     SideBottom,
			PositionLeftEdge:    SideBottom,
			PositionRightEdge:   SideLeft | SideBottom,
			PositionTopRight:    SideLeft | SideBottom,
			PositionTopEdge:     SideLeft | SideBottom,
			PositionCenter:      SideLeft | SideBottom,
		},
		normal: Insets{Top: 1, Left: -1, Bottom: -1, Right: 1},
		bottom: nudge{-0.5, 0.5, -1, 0.5},
		left:   nudge{0, 1, 0, 0.5},
		top:    nudge{0, 0.5, -0.5, 0.5},
		right:  nudge{-0.5, 0.5, -0.5, 0},
	},
	KindTopRight: {
		kind: KindTopRight,
		tails: map[Position]CornerShape{
			PositionRightEdge:   {TailRightToBottomLeft, false},
			PositionBottomRight: {TailRightToBottomLeft, false},
			PositionTopEdge:     {TailLeftToTopRight, true},
			PositionTopLeft:     {TailLeftToTopRight, true},
		},
		face: map[Position]Side{
			PositionBottomEdge:  SideTop | SideRight,
			PositionBottomLeft:  SideTop | SideRight,
			PositionBottomRight: SideTop,
			PositionTopLeft:     SideRight,
			PositionTopEdge:     SideRight,
			PositionLeftEdge:    SideTop | SideRight,
			PositionRightEdge:   SideTop,
			PositionCenter:      SideTop | SideRight,
		},
		normal: Insets{Top: -1, Left: 1, Bottom: 1, Right: -1},
		top:    nudge{0.5, 0, 0.5, 0},
		right:  nudge{0, -0.5, 0, -0.5},
		bottom: nudge{0, -0.5, 0.5, -0.5},
		left:   nudge{0.5, -0.5, 0.5, 0},
	},
	KindTopLeft: {
		kind: KindTopLeft,
		tails: map[Position]CornerShape{
			PositionLeftEdge:   {TailLeftToBottomRight, false},
			PositionBottomLeft: {TailLeftToBottomRight, false},
			PositionTopEdge:    {TailRightToTopLeft, true},
			PositionTopRight:   {TailRightToTopLeft, true},
		},
		face: map[Position]Side{
			PositionBottomEdge:  SideTop | SideLeft,
			PositionBottomRight: SideTop | SideLeft,
			PositionBottomLeft:  SideTop,
			PositionTopRight:    SideLeft,
			PositionTopEdge:     SideLeft,
			PositionRightEdge:   SideTop | SideLeft,
			PositionLeftEdge:    SideTop,
			PositionCenter:      SideTop | SideLeft,
		},
		normal: Insets{Top: -1, Left: -1, Bottom: 1, Right: 1},
		top:    nudge{0, 0.5, 0, 0.5},
		left:   nudge{0.5, 1, 0.5, 0},
		bottom: nudge{1, -0.5, 0, -0.5},
		right:  nudge{-0.5, 0, -0.5, 0},
	},
	KindBottom: {
		kind:   KindBottom,
		normal: Insets{Top: 1, Bottom: -1},
		left:   nudge{0, 0.5, 0, 0},
		bottom: nudge{0, -0.5, 0, -0.5},
		right:  nudge{0, 0, 0, 0.5},
		top:    nudge{0, 0.5, 0, 0.5},
	},
	KindTop: {
		kind:   KindTop,
		normal: Insets{Top: -1, Bottom: 1},
	},
	KindLeft: {
		kind:   KindLeft,
		normal: Insets{Left: -1, Right: 1},
	},
	KindRight: {
		kind:   KindRight,
		normal: Insets{Left: 1, Right: -1},
	},
}

var tailAnchors = map[DirectionKind]Corner{
	KindBottomRight: CornerBottomRight,
	KindBottomLeft:  CornerBottomLeft,
	KindTopRight:    CornerTopRight,
	KindTopLeft:     CornerTopLeft,
}

// DrawManager returns the manager for the direction's kind.
func (d EdgeDirection) DrawManager() DrawManager { return managers[d.kind] }

func (m *manager) Kind() DirectionKind { return m.kind }

func (m *manager) CornerTail(pos Position) CornerShape { return m.tails[pos] }

func (m *manager) TailAnchor() (Corner, bool) {
	c, ok := tailAnchors[m.kind]
	return c, ok
}

// SlantOffset returns how far a side direction's face corners are pulled
// in: depth*inclination, clamped to half the extent it runs along.
func SlantOffset(extent, depth, inclination float64) float64 {
	return math.Min(extent/2, depth*inclination)
}

func (m *manager) UpdateFacePoints(pts *[4]gg.Point, frame Rect, bm ButtonModel) {
	if bm.Direction.Kind() != m.kind {
		return
	}
	e, incl := bm.edgeLength(), bm.Direction.Inclination()
	switch m.kind {
	case KindBottom:
		s := SlantOffset(frame.Width, e, incl)
		pts[0].X = s
		pts[3].X = frame.Width - s
	case KindTop:
		s := SlantOffset(frame.Width, e, incl)
		pts[1].X = s
		pts[2].X -= s
	case KindLeft:
		s := SlantOffset(frame.Height, e, incl)
		pts[2].Y -= s
		pts[3].Y = s
	case KindRight:
		s := SlantOffset(frame.Height, e, incl)
		pts[0].Y = s
		pts[1].Y -= s
	}
}

func (m *manager) FineTuneBorders(b *FaceBorders, bw float64) {
	m.left.apply(b.Left, bw)
	m.right.apply(b.Right, bw)
	m.top.apply(b.Top, bw)
	m.bottom.apply(b.Bottom, bw)
}

func (m *manager) StaticBorders(colors StaticBorderColors, frame Rect, bw, depth float64) []Segment {
	if !m.kind.IsCorner() {
		return nil
	}
	sides := m.kind.Sides()
	right, bottom := sides.Has(SideRight), sides.Has(SideBottom)
	w, h := frame.Width, frame.Height

	var out []Segment
	if colors.Vertical != nil {
		x := bw / 2
		if right {
			x = w - bw/2
		}
		y0, y1 := 0.0, h-depth
		if bottom {
			y0, y1 = depth, h
		}
		out = append(out, Segment{Start: gg.Pt(x, y0), End: gg.Pt(x, y1), Color: *colors.Vertical, Width: bw})
	}
	if colors.Horizontal != nil {
		y := bw / 2
		if bottom {
			y = h - bw/2
		}
		x0, x1 := 0.0, w-depth
		if right {
			x0, x1 = depth, w
		}
		out = append(out, Segment{Start: gg.Pt(x0, y), End: gg.Pt(x1, y), Color: *colors.Horizontal, Width: bw})
	}
	return out
}

func (m *manager) NormalStateInsets(bm ButtonModel) Insets {
	return m.normal.Scale(bm.edgeLength())
}

func (m *manager) FaceInsets(bm ButtonModel) Insets {
	return m.face[bm.Position].insets(bm.edgeLength())
}

func (m *manager) ContentTransitionInsets(pressed bool, bm ButtonModel) Insets {
	e := bm.edgeLength()
	face := m.FaceInsets(bm)
	down := m.kind.Sides()
	if pressed {
		down = down.Opposite()
	}
	lift := down.insets(e)
	return Insets{
		Top:    lift.Top - face.Top,
		Left:   lift.Left - face.Left,
		Bottom: lift.Bottom - face.Bottom,
		Right:  lift.Right - face.Right,
	}
}
