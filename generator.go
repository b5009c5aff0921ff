package neopop

import (
	"github.com/gogpu/gg"
)

// Identifiers of the view models derived from a ButtonModel.
const (
	HighlightedModelID = "btn_highlighted_state_model"
	NormalModelID      = "btn_normal_state_model"
)

// HighlightedViewModel derives the model of the view shown behind a pressed
// button: the cavity the face sinks into, drawn in the selected direction
// with colors taken from the surface around the button.
//
// Edges on the outer sides of a grid of adjoining buttons take the parent
// color and lose their borders; edges shared with a neighbour are clipped
// so the neighbours' cavities join.
func HighlightedViewModel(m ButtonModel) ViewModel {
	sel := m.Direction.Selected()
	super := colorOr(m.SuperviewColor, gg.Transparent)
	parent := colorOr(m.ParentColor, gg.Transparent)
	vertical := VerticalEdgeColor(super)
	horizontal := HorizontalEdgeColor(super)

	vm := ViewModel{
		Direction:   sel,
		EdgeDepth:   m.edgeLength(),
		Background:  gg.Transparent,
		BorderWidth: m.BorderWidth,
		Identifier:  HighlightedModelID,
	}
	vm.EdgeVisibility.HideCenter = true
	vm.BorderVisibility.HideCenter = true

	sides := sel.Kind().Sides()
	if sel.Kind().IsCorner() {
		v, h := sides.vertical(), sides.horizontal()
		vm.VerticalBorderColors = m.BorderColors.edge(v)
		vm.HorizontalBorderColors = m.BorderColors.edge(h)

		vm.EdgeVisibility.set(v, m.Adjacent.has(v))
		vm.EdgeVisibility.set(h, m.Adjacent.has(h))
		vm.BorderVisibility = vm.EdgeVisibility

		vertical = colorOr(m.CustomEdgeColors.side(v), vertical)
		horizontal = colorOr(m.CustomEdgeColors.side(h), horizontal)

		pos := m.Position
		if pos.Touches(v) {
			vertical = parent
			vm.BorderVisibility.set(v, true)
		}
		if pos.Touches(h) {
			horizontal = parent
			vm.BorderVisibility.set(h, true)
		}
		if !pos.Touches(v.Opposite()) {
			vm.ClipWidth = ClipDistantCorners
		}
		if !pos.Touches(h.Opposite()) {
			vm.ClipHeight = ClipDistantCorners
		}
	} else {
		// The pressed view of a side direction hides its only edge; the
		// normal edge's custom color carries over.
		vm.EdgeVisibility.set(sides, true)
		vm.BorderVisibility = vm.EdgeVisibility
		custom := m.CustomEdgeColors.side(sides.Opposite())
		if sides.horizontal() != 0 {
			horizontal = colorOr(custom, horizontal)
		} else {
			vertical = colorOr(custom, vertical)
		}
	}

	vm.VerticalEdgeColor = ColorRef(vertical)
	vm.HorizontalEdgeColor = ColorRef(horizontal)
	return vm
}

// NormalViewModel derives the model of the view carrying the button's
// bevel at rest. When disabled the bevel is grey and has no borders.
//
// With ShowStaticBaseEdges the outer edge borders are moved off the view
// and returned separately, to be drawn on a layer that does not move.
func NormalViewModel(m ButtonModel, disabled bool) (ViewModel, StaticBorderColors) {
	bg := m.Background
	if disabled {
		bg = DisabledBackground
	}
	showStatic := !disabled && m.ShowStaticBaseEdges
	vertical := VerticalEdgeColor(bg)
	horizontal := HorizontalEdgeColor(bg)

	vm := ViewModel{
		Direction:   m.Direction,
		EdgeDepth:   m.edgeLength(),
		Background:  gg.Transparent,
		BorderWidth: m.BorderWidth,
		Identifier:  NormalModelID,
	}
	vm.EdgeVisibility.HideCenter = true

	var static StaticBorderColors
	sides := m.Direction.Kind().Sides()
	v, h := sides.vertical(), sides.horizontal()
	pos := m.Position

	if v != 0 {
		vm.VerticalBorderColors = m.BorderColors.edge(v)
		vertical = colorOr(m.CustomEdgeColors.side(v), vertical)
		// An edge on the grid's outer side stays unless a neighbour is
		// there; an inner edge shows only next to a neighbour.
		if pos.Touches(v) {
			vm.EdgeVisibility.set(v, m.Adjacent.has(v))
		} else {
			vm.EdgeVisibility.set(v, !m.Adjacent.has(v))
		}
		if showStatic {
			static.Vertical = vm.VerticalBorderColors.side(v)
			vm.VerticalBorderColors = vm.VerticalBorderColors.without(v)
		}
	}
	if h != 0 {
		vm.HorizontalBorderColors = m.BorderColors.edge(h)
		horizontal = colorOr(m.CustomEdgeColors.side(h), horizontal)
		if pos.Touches(h) {
			vm.EdgeVisibility.set(h, m.Adjacent.has(h))
		} else {
			vm.EdgeVisibility.set(h, !m.Adjacent.has(h))
		}
		if showStatic {
			static.Horizontal = vm.HorizontalBorderColors.side(h)
			vm.HorizontalBorderColors = vm.HorizontalBorderColors.without(h)
		}
	}
	if !sides.Has(v) || !sides.Has(h) {
		// Side directions only hide their edge when a neighbour covers it.
		vm.EdgeVisibility.set(sides, m.Adjacent.has(sides))
	} else if !pos.Touches(v) && !pos.Touches(h) && pos != PositionCenter {
		vm.ClipWidth = ClipJoinedCorners
		vm.ClipHeight = ClipJoinedCorners
	}

	if disabled {
		vm.VerticalBorderColors = EdgeColors{}
		vm.HorizontalBorderColors = EdgeColors{}
	}
	vm.VerticalEdgeColor = ColorRef(vertical)
	vm.HorizontalEdgeColor = ColorRef(horizontal)
	return vm, static
}
