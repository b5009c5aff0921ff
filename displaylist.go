package neopop

import (
	"fmt"

	"github.com/gogpu/gg"
)

// OpKind identifies a DrawOp.
type OpKind uint8

const (
	// OpFill fills Polygon with Color.
	OpFill OpKind = iota
	// OpStroke strokes Segment.
	OpStroke
	// OpPushClip intersects the clip with Polygon, or with Rect when
	// Polygon is nil.
	OpPushClip
	// OpPopClip restores the clip saved by the matching OpPushClip.
	OpPopClip
	// OpPushAlpha starts a group composited with Alpha.
	OpPushAlpha
	// OpPopAlpha ends the group started by the matching OpPushAlpha.
	OpPopAlpha
	// OpContent asks Content to draw itself into Rect.
	OpContent
)

func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	case OpPushClip:
		return "push-clip"
	case OpPopClip:
		return "pop-clip"
	case OpPushAlpha:
		return "push-alpha"
	case OpPopAlpha:
		return "pop-alpha"
	case OpContent:
		return "content"
	}
	return fmt.Sprintf("OpKind(%d)", uint8(k))
}

// DrawOp is one drawing instruction in absolute coordinates.
type DrawOp struct {
	Kind    OpKind
	Polygon Polygon
	Segment Segment
	Rect    Rect
	Color   gg.RGBA
	Alpha   float64
	Content Container
}

// DisplayList is a flat list of drawing instructions. Push and pop
// operations are balanced.
type DisplayList struct {
	Ops []DrawOp
}

// Count returns the number of ops of the given kind.
func (l *DisplayList) Count(kind OpKind) int {
	n := 0
	for _, op := range l.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (l *DisplayList) fill(p Polygon, c gg.RGBA) {
	if len(p) == 0 || c.A == 0 {
		return
	}
	l.Ops = append(l.Ops, DrawOp{Kind: OpFill, Polygon: p, Color: c})
}

func (l *DisplayList) stroke(s Segment) {
	if s.Width <= 0 || s.Color.A == 0 {
		return
	}
	l.Ops = append(l.Ops, DrawOp{Kind: OpStroke, Segment: s, Color: s.Color})
}

// shape adds the fill and borders of s translated by (dx, dy).
func (l *DisplayList) shape(s Shape, dx, dy float64) {
	if s.Empty() {
		return
	}
	l.fill(s.Polygon.Offset(dx, dy), s.Fill)
	for _, b := range s.Borders {
		l.stroke(b.Offset(dx, dy))
	}
}

func (l *DisplayList) pushClipRect(r Rect) {
	l.Ops = append(l.Ops, DrawOp{Kind: OpPushClip, Rect: r})
}

func (l *DisplayList) pushClipPolygon(p Polygon) {
	l.Ops = append(l.Ops, DrawOp{Kind: OpPushClip, Polygon: p, Rect: p.Bounds()})
}

func (l *DisplayList) popClip() {
	l.Ops = append(l.Ops, DrawOp{Kind: OpPopClip})
}

// pushAlpha starts an alpha group and reports whether one was started.
// Fully opaque groups are omitted.
func (l *DisplayList) pushAlpha(a float64) bool {
	if a >= 1 {
		return false
	}
	l.Ops = append(l.Ops, DrawOp{Kind: OpPushAlpha, Alpha: clamp01(a)})
	return true
}

func (l *DisplayList) popAlpha() {
	l.Ops = append(l.Ops, DrawOp{Kind: OpPopAlpha})
}

func (l *DisplayList) content(c Container, r Rect) {
	if c == nil || r.IsEmpty() {
		return
	}
	l.Ops = append(l.Ops, DrawOp{Kind: OpContent, Content: c, Rect: r})
}

// Append adds every op of o to l.
func (l *DisplayList) Append(o DisplayList) {
	l.Ops = append(l.Ops, o.Ops...)
}

// Draw paints the list with dc. It returns the first error reported by a
// fill, stroke or content op; the remaining ops are still drawn so that the
// context's state stack stays balanced.
func (l *DisplayList) Draw(dc *gg.Context) error {
	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}
	for _, op := range l.Ops {
		switch op.Kind {
		case OpFill:
			tracePolygon(dc, op.Polygon)
			dc.SetColor(op.Color.Color())
			keep(dc.Fill())
		case OpStroke:
			dc.MoveTo(op.Segment.Start.X, op.Segment.Start.Y)
			dc.LineTo(op.Segment.End.X, op.Segment.End.Y)
			dc.SetColor(op.Segment.Color.Color())
			dc.SetLineWidth(op.Segment.Width)
			keep(dc.Stroke())
		case OpPushClip:
			dc.Push()
			if op.Polygon != nil {
				tracePolygon(dc, op.Polygon)
				dc.Clip()
			} else {
				dc.ClipRect(op.Rect.X, op.Rect.Y, op.Rect.Width, op.Rect.Height)
			}
		case OpPopClip:
			dc.Pop()
		case OpPushAlpha:
			dc.PushLayer(gg.BlendNormal, op.Alpha)
		case OpPopAlpha:
			dc.PopLayer()
		case OpContent:
			if err := op.Content.Draw(dc, op.Rect); err != nil {
				keep(fmt.Errorf("neopop: draw content: %w", err))
			}
		}
	}
	return first
}

func tracePolygon(dc *gg.Context, p Polygon) {
	if len(p) == 0 {
		return
	}
	dc.MoveTo(p[0].X, p[0].Y)
	for _, pt := range p[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	dc.ClosePath()
}

// AppendTo adds the view's layers to l with the view placed at frame. The
// layers are clipped to the frame and painted center, vertical, horizontal.
func (v *View) AppendTo(l *DisplayList, frame Rect) {
	if !v.hasModel || frame.IsEmpty() {
		return
	}
	s := v.shapes
	if s.Center.Empty() && s.Vertical.Empty() && s.Horizontal.Empty() {
		return
	}
	l.pushClipRect(frame)
	l.shape(s.Center, frame.X, frame.Y)
	l.shape(s.Vertical, frame.X, frame.Y)
	l.shape(s.Horizontal, frame.X, frame.Y)
	l.popClip()
}
