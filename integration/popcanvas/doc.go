// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package popcanvas shows neopop buttons in gogpu windows.
//
// A Canvas rasterizes display lists with gg on the CPU and uploads the
// pixels to a GPU texture:
//
//	DisplayList -> gg.Context -> Pixmap -> GPU Texture -> Window
//
// # Usage
//
//	canvas, err := popcanvas.New(app.GPUContextProvider(), 800, 600,
//	    popcanvas.WithBackground(gg.White))
//	if err != nil {
//	    return err
//	}
//	defer canvas.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = canvas.Render(pay.DisplayList(), cancel.DisplayList())
//	    _ = canvas.RenderTo(dc.AsTextureDrawer(), 0, 0)
//	})
//
// The texture is created lazily on the first RenderTo and updated in place
// afterwards; an unchanged canvas is not uploaded again.
//
// Canvas is not safe for concurrent use.
package popcanvas
