// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package giopop paints neopop display lists into Gio operation lists.
//
// Fills, strokes, clips and alpha groups map to Gio clip and paint
// operations. Content ops (titles and images) are rasterized with gg and
// painted as images.
//
//	var p giopop.Painter
//	p.Scale = gtx.Metric.PxPerDp
//	if err := p.Paint(gtx.Ops, button.DisplayList()); err != nil {
//	    log.Print(err)
//	}
package giopop

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/gogpu/gg"
	"github.com/gogpu/neopop"
)

// ErrUnbalanced is returned when a display list pops more clips or alpha
// groups than it pushed.
var ErrUnbalanced = errors.New("giopop: unbalanced display list")

// Painter paints display lists. The zero value paints at one pixel per
// point.
type Painter struct {
	// Scale converts points to pixels. Zero means 1.
	Scale float32
}

func (p *Painter) scale() float32 {
	if p.Scale <= 0 {
		return 1
	}
	return p.Scale
}

// Paint adds the ops of l to ops. Pushes left open by a failing content op
// are still popped.
func (p *Painter) Paint(ops *op.Ops, l neopop.DisplayList) error {
	s := p.scale()
	var clips []clip.Stack
	var alphas []paint.OpacityStack
	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}

	for _, o := range l.Ops {
		switch o.Kind {
		case neopop.OpFill:
			paint.FillShape(ops, nrgba(o.Color), clip.Outline{Path: polygonPath(ops, o.Polygon, s)}.Op())
		case neopop.OpStroke:
			var path clip.Path
			path.Begin(ops)
			path.MoveTo(pt(o.Segment.Start, s))
			path.LineTo(pt(o.Segment.End, s))
			paint.FillShape(ops, nrgba(o.Color), clip.Stroke{Path: path.End(), Width: float32(o.Segment.Width) * s}.Op())
		case neopop.OpPushClip:
			poly := o.Polygon
			if poly == nil {
				r := o.Rect
				poly = neopop.Quad(gg.Pt(r.X, r.Y), gg.Pt(r.MaxX(), r.Y), gg.Pt(r.MaxX(), r.MaxY()), gg.Pt(r.X, r.MaxY()))
			}
			clips = append(clips, clip.Outline{Path: polygonPath(ops, poly, s)}.Op().Push(ops))
		case neopop.OpPopClip:
			if len(clips) == 0 {
				keep(ErrUnbalanced)
				continue
			}
			clips[len(clips)-1].Pop()
			clips = clips[:len(clips)-1]
		case neopop.OpPushAlpha:
			alphas = append(alphas, paint.PushOpacity(ops, float32(o.Alpha)))
		case neopop.OpPopAlpha:
			if len(alphas) == 0 {
				keep(ErrUnbalanced)
				continue
			}
			alphas[len(alphas)-1].Pop()
			alphas = alphas[:len(alphas)-1]
		case neopop.OpContent:
			keep(paintContent(ops, o.Content, o.Rect, s))
		}
	}

	for i := len(clips) - 1; i >= 0; i-- {
		clips[i].Pop()
	}
	for i := len(alphas) - 1; i >= 0; i-- {
		alphas[i].Pop()
	}
	return first
}

// Paint paints l at one pixel per point.
func Paint(ops *op.Ops, l neopop.DisplayList) error {
	var p Painter
	return p.Paint(ops, l)
}

// paintContent rasterizes c at pixel resolution and paints the image at r.
func paintContent(ops *op.Ops, c neopop.Container, r neopop.Rect, s float32) error {
	w := int(math.Ceil(r.Width * float64(s)))
	h := int(math.Ceil(r.Height * float64(s)))
	if w <= 0 || h <= 0 {
		return nil
	}
	img, err := Rasterize(c, r.Width, r.Height, float64(s))
	if err != nil {
		return err
	}
	defer op.Affine(f32.Affine2D{}.Offset(pt(gg.Pt(r.X, r.Y), s))).Push(ops).Pop()
	defer clip.Rect{Max: image.Pt(w, h)}.Push(ops).Pop()
	paint.NewImageOp(img).Add(ops)
	paint.PaintOp{}.Add(ops)
	return nil
}

// Rasterize draws c into a transparent image of w×h points at the given
// pixel scale.
func Rasterize(c neopop.Container, w, h, scale float64) (image.Image, error) {
	pw := int(math.Ceil(w * scale))
	ph := int(math.Ceil(h * scale))
	dc := gg.NewContext(pw, ph)
	dc.Scale(scale, scale)
	if err := c.Draw(dc, neopop.Rect{Width: w, Height: h}); err != nil {
		return nil, fmt.Errorf("giopop: rasterize content: %w", err)
	}
	// Close flushes queued accelerator work into the pixmap.
	if err := dc.Close(); err != nil {
		return nil, fmt.Errorf("giopop: rasterize content: %w", err)
	}
	return dc.Image(), nil
}

func polygonPath(ops *op.Ops, poly neopop.Polygon, s float32) clip.PathSpec {
	var path clip.Path
	path.Begin(ops)
	if len(poly) > 0 {
		path.MoveTo(pt(poly[0], s))
		for _, q := range poly[1:] {
			path.LineTo(pt(q, s))
		}
		path.Close()
	}
	return path.End()
}

func pt(p gg.Point, s float32) f32.Point {
	return f32.Pt(float32(p.X)*s, float32(p.Y)*s)
}

func nrgba(c gg.RGBA) color.NRGBA {
	return color.NRGBAModel.Convert(c.Color()).(color.NRGBA)
}
