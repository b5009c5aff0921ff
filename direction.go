package neopop

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Side is one side of a rectangle. Sides combine as a bit set.
type Side uint8

const (
	SideTop Side = 1 << iota
	SideLeft
	SideBottom
	SideRight

	SideNone Side = 0
)

// Has reports whether s includes every side in o.
func (s Side) Has(o Side) bool { return o != 0 && s&o == o }

// Opposite mirrors each side in the set.
func (s Side) Opposite() Side {
	var o Side
	if s.Has(SideTop) {
		o |= SideBottom
	}
	if s.Has(SideBottom) {
		o |= SideTop
	}
	if s.Has(SideLeft) {
		o |= SideRight
	}
	if s.Has(SideRight) {
		o |= SideLeft
	}
	return o
}

// vertical returns the left/right component of the set.
func (s Side) vertical() Side { return s & (SideLeft | SideRight) }

// horizontal returns the top/bottom component of the set.
func (s Side) horizontal() Side { return s & (SideTop | SideBottom) }

// insets returns v on every side in s and 0 elsewhere.
func (s Side) insets(v float64) Insets {
	var in Insets
	if s.Has(SideTop) {
		in.Top = v
	}
	if s.Has(SideLeft) {
		in.Left = v
	}
	if s.Has(SideBottom) {
		in.Bottom = v
	}
	if s.Has(SideRight) {
		in.Right = v
	}
	return in
}

// DirectionKind enumerates the eight edge directions.
type DirectionKind uint8

const (
	KindBottomRight DirectionKind = iota
	KindBottomLeft
	KindTopRight
	KindTopLeft
	KindTop
	KindBottom
	KindLeft
	KindRight
)

var kindNames = [...]string{
	KindBottomRight: "BottomRight",
	KindBottomLeft:  "BottomLeft",
	KindTopRight:    "TopRight",
	KindTopLeft:     "TopLeft",
	KindTop:         "Top",
	KindBottom:      "Bottom",
	KindLeft:        "Left",
	KindRight:       "Right",
}

var kindSides = [...]Side{
	KindBottomRight: SideBottom | SideRight,
	KindBottomLeft:  SideBottom | SideLeft,
	KindTopRight:    SideTop | SideRight,
	KindTopLeft:     SideTop | SideLeft,
	KindTop:         SideTop,
	KindBottom:      SideBottom,
	KindLeft:        SideLeft,
	KindRight:       SideRight,
}

func (k DirectionKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "DirectionKind(" + strconv.Itoa(int(k)) + ")"
}

// Sides returns the sides on which this direction's edges appear.
func (k DirectionKind) Sides() Side { return kindSides[k] }

// IsCorner reports whether k names a diagonal direction.
func (k DirectionKind) IsCorner() bool { return k <= KindTopLeft }

// EdgeDirection names the corner or side of a button that recedes into the
// screen. Side directions carry an inclination controlling how far the
// face's neighbouring edges slant; 0 draws a flat edge.
//
// The zero value is BottomRight.
type EdgeDirection struct {
	kind        DirectionKind
	inclination float64
	custom      bool
}

func TopLeft() EdgeDirection     { return EdgeDirection{kind: KindTopLeft} }
func TopRight() EdgeDirection    { return EdgeDirection{kind: KindTopRight} }
func BottomLeft() EdgeDirection  { return EdgeDirection{kind: KindBottomLeft} }
func BottomRight() EdgeDirection { return EdgeDirection{kind: KindBottomRight} }
func Top() EdgeDirection         { return EdgeDirection{kind: KindTop} }
func Bottom() EdgeDirection      { return EdgeDirection{kind: KindBottom} }
func Left() EdgeDirection        { return EdgeDirection{kind: KindLeft} }
func Right() EdgeDirection       { return EdgeDirection{kind: KindRight} }

// WithInclination sets a custom inclination on a side direction. Corner
// directions are returned unchanged. Values that the text form rejects
// (negative or not finite) give a flat direction.
func (d EdgeDirection) WithInclination(v float64) EdgeDirection {
	if d.kind.IsCorner() {
		return d
	}
	if !validInclination(v) {
		v = 0
	}
	d.inclination = v
	d.custom = true
	return d
}

func validInclination(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// Kind returns the direction without its inclination.
func (d EdgeDirection) Kind() DirectionKind { return d.kind }

// Inclination returns the slant factor: the custom value when set, else 1.
func (d EdgeDirection) Inclination() float64 {
	if d.custom {
		return d.inclination
	}
	return 1
}

// HasCustomInclination reports whether an inclination was set explicitly.
func (d EdgeDirection) HasCustomInclination() bool { return d.custom }

// Selected returns the direction used while the button is pressed. It is
// an involution: top and bottom swap, left and right swap, and each corner
// swaps with its diagonal opposite. Inclination is preserved.
func (d EdgeDirection) Selected() EdgeDirection {
	switch d.kind {
	case KindTop:
		d.kind = KindBottom
	case KindBottom:
		d.kind = KindTop
	case KindLeft:
		d.kind = KindRight
	case KindRight:
		d.kind = KindLeft
	case KindTopLeft:
		d.kind = KindBottomRight
	case KindBottomRight:
		d.kind = KindTopLeft
	case KindTopRight:
		d.kind = KindBottomLeft
	case KindBottomLeft:
		d.kind = KindTopRight
	}
	return d
}

// HasVerticalEdge reports whether a left or right edge is drawn.
func (d EdgeDirection) HasVerticalEdge() bool { return d.kind.Sides().vertical() != 0 }

// HasHorizontalEdge reports whether a top or bottom edge is drawn.
func (d EdgeDirection) HasHorizontalEdge() bool { return d.kind.Sides().horizontal() != 0 }

// Name returns a display name, e.g. "TopLeft", "Bottom" or "Bottom-flat".
func (d EdgeDirection) Name() string {
	if !d.kind.IsCorner() && d.Inclination() == 0 {
		return d.kind.String() + "-flat"
	}
	return d.kind.String()
}

func (d EdgeDirection) String() string {
	if d.custom && d.inclination != 0 {
		return d.kind.String() + "(" + strconv.FormatFloat(d.inclination, 'g', -1, 64) + ")"
	}
	return d.Name()
}

// MarshalText encodes the direction as e.g. "bottomRight", "bottom",
// "bottom:0.5" or "bottom-flat".
func (d EdgeDirection) MarshalText() ([]byte, error) {
	name := lowerFirst(d.kind.String())
	switch {
	case !d.custom:
		return []byte(name), nil
	case d.inclination == 0:
		return []byte(name + "-flat"), nil
	default:
		return []byte(name + ":" + strconv.FormatFloat(d.inclination, 'g', -1, 64)), nil
	}
}

// UnmarshalText decodes the forms produced by MarshalText. Names are case
// insensitive and may use '-' or '_' between words.
func (d *EdgeDirection) UnmarshalText(b []byte) error {
	v, err := ParseEdgeDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// ParseEdgeDirection parses a direction name with an optional inclination.
func ParseEdgeDirection(s string) (EdgeDirection, error) {
	name, incl, hasIncl := strings.Cut(strings.TrimSpace(s), ":")
	flat := false
	if base, ok := strings.CutSuffix(strings.ToLower(name), "-flat"); ok {
		name, flat = base, true
	}
	key := normalizeName(name)
	var d EdgeDirection
	found := false
	for k, n := range kindNames {
		if normalizeName(n) == key {
			d, found = EdgeDirection{kind: DirectionKind(k)}, true
			break
		}
	}
	if !found {
		return EdgeDirection{}, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
	switch {
	case flat && hasIncl:
		return EdgeDirection{}, fmt.Errorf("%w: %q has both -flat and a value", ErrInvalidInclination, s)
	case flat:
		d = d.WithInclination(0)
	case hasIncl:
		v, err := strconv.ParseFloat(strings.TrimSpace(incl), 64)
		if err != nil || !validInclination(v) {
			return EdgeDirection{}, fmt.Errorf("%w: %q", ErrInvalidInclination, s)
		}
		d = d.WithInclination(v)
	}
	if (flat || hasIncl) && d.kind.IsCorner() {
		return EdgeDirection{}, fmt.Errorf("%w: corner %q takes no inclination", ErrInvalidInclination, s)
	}
	return d, nil
}

// Position is the cell a button occupies in a grid of adjoining buttons.
// It decides which shared edges are hidden or clipped.
type Position uint8

const (
	PositionBottomRight Position = iota
	PositionBottomLeft
	PositionTopRight
	PositionTopLeft
	PositionBottomEdge
	PositionTopEdge
	PositionLeftEdge
	PositionRightEdge
	PositionCenter
)

// Positions lists every position in declaration order.
var Positions = []Position{
	PositionBottomRight, PositionBottomLeft, PositionTopRight, PositionTopLeft,
	PositionBottomEdge, PositionTopEdge, PositionLeftEdge, PositionRightEdge,
	PositionCenter,
}

var positionNames = [...]string{
	PositionBottomRight: "bottomRight",
	PositionBottomLeft:  "bottomLeft",
	PositionTopRight:    "topRight",
	PositionTopLeft:     "topLeft",
	PositionBottomEdge:  "bottomEdge",
	PositionTopEdge:     "topEdge",
	PositionLeftEdge:    "leftEdge",
	PositionRightEdge:   "rightEdge",
	PositionCenter:      "center",
}

var positionSides = [...]Side{
	PositionBottomRight: SideBottom | SideRight,
	PositionBottomLeft:  SideBottom | SideLeft,
	PositionTopRight:    SideTop | SideRight,
	PositionTopLeft:     SideTop | SideLeft,
	PositionBottomEdge:  SideBottom,
	PositionTopEdge:     SideTop,
	PositionLeftEdge:    SideLeft,
	PositionRightEdge:   SideRight,
	PositionCenter:      SideNone,
}

func (p Position) String() string {
	if int(p) < len(positionNames) {
		return positionNames[p]
	}
	return "Position(" + strconv.Itoa(int(p)) + ")"
}

// Touches reports whether the cell lies along the given side of the grid.
func (p Position) Touches(s Side) bool { return positionSides[p].Has(s) }

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(b []byte) error {
	v, err := ParsePosition(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePosition parses a position name such as "topLeft" or "center".
func ParsePosition(s string) (Position, error) {
	key := normalizeName(s)
	for i, n := range positionNames {
		if normalizeName(n) == key {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPosition, s)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// Corner is one corner of a rectangle.
type Corner uint8

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

var cornerNames = [...]string{
	CornerTopLeft:     "topLeft",
	CornerTopRight:    "topRight",
	CornerBottomLeft:  "bottomLeft",
	CornerBottomRight: "bottomRight",
}

func (c Corner) String() string {
	if int(c) < len(cornerNames) {
		return cornerNames[c]
	}
	return "Corner(" + strconv.Itoa(int(c)) + ")"
}

// TailKind selects one of the four corner tail triangles.
type TailKind uint8

const (
	TailNone TailKind = iota
	TailRightToBottomLeft
	TailRightToTopLeft
	TailLeftToBottomRight
	TailLeftToTopRight
)

var tailNames = [...]string{
	TailNone:              "none",
	TailRightToBottomLeft: "rightToBottomLeft",
	TailRightToTopLeft:    "rightToTopLeft",
	TailLeftToBottomRight: "leftToBottomRight",
	TailLeftToTopRight:    "leftToTopRight",
}

func (k TailKind) String() string {
	if int(k) < len(tailNames) {
		return tailNames[k]
	}
	return "TailKind(" + strconv.Itoa(int(k)) + ")"
}

// CornerShape describes the small triangle that fills the gap between a
// button face and an adjoining button's edge. Horizontal reports whether
// the adjoining edge runs horizontally.
type CornerShape struct {
	Kind       TailKind
	Horizontal bool
}

// None reports whether no tail is drawn.
func (c CornerShape) None() bool { return c.Kind == TailNone }

func (c CornerShape) String() string {
	if c.Horizontal && !c.None() {
		return c.Kind.String() + "/h"
	}
	return c.Kind.String()
}
