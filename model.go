package neopop

import (
	"github.com/gogpu/gg"
)

// EdgeColors holds an optional color per side. A nil side draws nothing.
type EdgeColors struct {
	Left, Right, Top, Bottom *gg.RGBA
}

// AllEdges returns EdgeColors with c on every side.
func AllEdges(c gg.RGBA) EdgeColors {
	return EdgeColors{Left: ColorRef(c), Right: ColorRef(c), Top: ColorRef(c), Bottom: ColorRef(c)}
}

// IsZero reports whether no side has a color.
func (e EdgeColors) IsZero() bool {
	return e.Left == nil && e.Right == nil && e.Top == nil && e.Bottom == nil
}

// Equal compares the colors by value.
func (e EdgeColors) Equal(o EdgeColors) bool {
	return colorEqual(e.Left, o.Left) && colorEqual(e.Right, o.Right) &&
		colorEqual(e.Top, o.Top) && colorEqual(e.Bottom, o.Bottom)
}

// side returns the color for a single side.
func (e EdgeColors) side(s Side) *gg.RGBA {
	switch s {
	case SideLeft:
		return e.Left
	case SideRight:
		return e.Right
	case SideTop:
		return e.Top
	case SideBottom:
		return e.Bottom
	}
	return nil
}

// without clears the color of a single side.
func (e EdgeColors) without(s Side) EdgeColors {
	switch s {
	case SideLeft:
		e.Left = nil
	case SideRight:
		e.Right = nil
	case SideTop:
		e.Top = nil
	case SideBottom:
		e.Bottom = nil
	}
	return e
}

// BorderModel holds the border colors of each of the four bevel edges.
type BorderModel struct {
	Left, Right, Top, Bottom EdgeColors
}

// AllBorders uses the same border colors on every edge.
func AllBorders(e EdgeColors) BorderModel {
	return BorderModel{Left: e, Right: e, Top: e, Bottom: e}
}

func (b BorderModel) edge(s Side) EdgeColors {
	switch s {
	case SideLeft:
		return b.Left
	case SideRight:
		return b.Right
	case SideTop:
		return b.Top
	case SideBottom:
		return b.Bottom
	}
	return EdgeColors{}
}

// AdjacentButtons records which sides of a button touch another button.
type AdjacentButtons struct {
	Top, Bottom, Left, Right bool
}

func (a AdjacentButtons) has(s Side) bool {
	switch s {
	case SideTop:
		return a.Top
	case SideBottom:
		return a.Bottom
	case SideLeft:
		return a.Left
	case SideRight:
		return a.Right
	}
	return false
}

// EdgeVisibility hides individual edges. In a view model it is used twice:
// once to hide whole edges and once to hide only their borders.
type EdgeVisibility struct {
	HideTop, HideBottom, HideLeft, HideRight bool
	HideCenter                               bool
}

func (v EdgeVisibility) hides(s Side) bool {
	switch s {
	case SideTop:
		return v.HideTop
	case SideBottom:
		return v.HideBottom
	case SideLeft:
		return v.HideLeft
	case SideRight:
		return v.HideRight
	}
	return false
}

func (v *EdgeVisibility) set(s Side, hide bool) {
	switch s {
	case SideTop:
		v.HideTop = hide
	case SideBottom:
		v.HideBottom = hide
	case SideLeft:
		v.HideLeft = hide
	case SideRight:
		v.HideRight = hide
	}
}

// EdgeClipping controls where an edge polygon stops along its length so
// that the edges of adjoining buttons either merge or stay separate.
type EdgeClipping uint8

const (
	ClipNone EdgeClipping = iota
	ClipDistantCorners
	ClipJoinedCorners
)

// Default model values.
const (
	DefaultEdgeLength   = 3.0
	DefaultContentInset = 20.0
)

// ButtonModel configures a Button.
type ButtonModel struct {
	Direction EdgeDirection
	Position  Position

	Background gg.RGBA
	// SuperviewColor is the color behind the button; it seeds the colors of
	// the pressed-state edges.
	SuperviewColor *gg.RGBA
	// ParentColor paints the pressed-state edges that border the grid's
	// outside. Nil means transparent.
	ParentColor *gg.RGBA

	FaceBorderColors EdgeColors
	BorderColors     BorderModel
	BorderWidth      float64

	// EdgeLength is the bevel depth.
	EdgeLength float64

	Adjacent         AdjacentButtons
	CustomEdgeColors EdgeColors

	// ShowStaticBaseEdges draws the outer edge borders on a layer that does
	// not move when the button is pressed.
	ShowStaticBaseEdges bool

	Shimmer ShimmerStyle
}

// NewButtonModel returns a model with the given direction and face color
// and default values elsewhere.
func NewButtonModel(dir EdgeDirection, background gg.RGBA) ButtonModel {
	return ButtonModel{
		Direction:  dir,
		Position:   PositionBottomRight,
		Background: background,
		EdgeLength: DefaultEdgeLength,
	}
}

// edgeLength returns the bevel depth, substituting the default for zero.
func (m ButtonModel) edgeLength() float64 {
	if m.EdgeLength == 0 {
		return DefaultEdgeLength
	}
	return m.EdgeLength
}

// ViewModel is the render configuration of a single View.
type ViewModel struct {
	Direction EdgeDirection

	// EdgeVisibility hides edges entirely; BorderVisibility hides only
	// their borders.
	EdgeVisibility   EdgeVisibility
	BorderVisibility EdgeVisibility

	EdgeDepth  float64
	Background gg.RGBA
	// VerticalEdgeColor and HorizontalEdgeColor default to colors derived
	// from Background when nil.
	VerticalEdgeColor   *gg.RGBA
	HorizontalEdgeColor *gg.RGBA

	VerticalBorderColors   EdgeColors
	HorizontalBorderColors EdgeColors
	CenterBorderColors     EdgeColors

	ClipWidth  EdgeClipping
	ClipHeight EdgeClipping

	Identifier  string
	BorderWidth float64
}

// NewViewModel returns a model with the default edge depth.
func NewViewModel(dir EdgeDirection, background gg.RGBA) ViewModel {
	return ViewModel{Direction: dir, Background: background, EdgeDepth: DefaultEdgeLength}
}

// Equal reports whether two models render identically.
func (m ViewModel) Equal(o ViewModel) bool {
	return m.Direction == o.Direction &&
		m.EdgeVisibility == o.EdgeVisibility &&
		m.BorderVisibility == o.BorderVisibility &&
		m.EdgeDepth == o.EdgeDepth &&
		m.Background == o.Background &&
		colorEqual(m.VerticalEdgeColor, o.VerticalEdgeColor) &&
		colorEqual(m.HorizontalEdgeColor, o.HorizontalEdgeColor) &&
		m.VerticalBorderColors.Equal(o.VerticalBorderColors) &&
		m.HorizontalBorderColors.Equal(o.HorizontalBorderColors) &&
		m.CenterBorderColors.Equal(o.CenterBorderColors) &&
		m.ClipWidth == o.ClipWidth &&
		m.ClipHeight == o.ClipHeight &&
		m.Identifier == o.Identifier &&
		m.BorderWidth == o.BorderWidth
}

func (m ViewModel) verticalColor() gg.RGBA {
	return colorOr(m.VerticalEdgeColor, VerticalEdgeColor(m.Background))
}

func (m ViewModel) horizontalColor() gg.RGBA {
	return colorOr(m.HorizontalEdgeColor, HorizontalEdgeColor(m.Background))
}

// StaticBorderColors are the border colors moved off the normal-state view
// onto the static layer when ShowStaticBaseEdges is set.
type StaticBorderColors struct {
	Horizontal, Vertical *gg.RGBA
}

// IsZero reports whether neither color is set.
func (s StaticBorderColors) IsZero() bool { return s.Horizontal == nil && s.Vertical == nil }
