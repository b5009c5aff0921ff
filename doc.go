// Package neopop draws "3D pop" buttons: flat faces with slanted bevel
// edges that sink into their edges when pressed.
//
// # Overview
//
// A pop surface is described by an EdgeDirection, the side or corner
// towards which its edges extend, and a ViewModel holding colors, edge
// depth and border settings. A View turns the model into three closed
// polygons (center face, vertical edge, horizontal edge) plus their
// border segments.
//
// Button composes two views, one for the pressed look and one for the
// normal look, with a corner tail and the face content. FloatingButton
// hovers a slanted face over its shadow.
//
// # Quick Start
//
//	b := neopop.NewButton()
//	b.SetFrame(neopop.R(0, 0, 200, 56))
//	b.Configure(neopop.NewButtonModel(neopop.BottomRight(), neopop.HexARGB("FFE0A0")))
//	_ = b.ConfigureContent(neopop.NewContentModel("Pay now"))
//
//	dc := gg.NewContext(220, 76)
//	_ = b.Draw(dc)
//	_ = dc.SavePNG("button.png")
//
// # Rendering
//
// Buttons produce a DisplayList of fills, strokes, clips and alpha groups
// in absolute coordinates. DisplayList.Draw paints it with a gg.Context;
// other backends (see integration/giopop) can walk the ops themselves.
//
// # Animation
//
// Transitions and timers are driven through the Animator and Scheduler
// interfaces. The default animator completes every transition at once.
// The motion package provides a Timeline for tests and a Loop that runs
// one in real time.
//
// # Coordinate System
//
// Origin at the top-left, X grows right and Y grows down, in points.
package neopop
