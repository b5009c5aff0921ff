// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package giopop

import (
	"errors"
	"image/color"
	"testing"

	"gioui.org/op"
	"github.com/gogpu/gg"
	"github.com/gogpu/neopop"
)

type fillContainer struct {
	color gg.RGBA
	err   error
	calls int
}

func (f *fillContainer) UpdateOnStateChange(neopop.State) {}

func (f *fillContainer) Draw(dc *gg.Context, r neopop.Rect) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	dc.SetColor(f.color.Color())
	dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	return dc.Fill()
}

func TestPaintButton(t *testing.T) {
	b := neopop.NewButton()
	b.SetFrame(neopop.R(10, 10, 160, 48))
	b.Configure(neopop.NewButtonModel(neopop.BottomRight(), neopop.HexARGB("FFE0A0")))
	c := &fillContainer{color: gg.Black}
	b.SetContainer(c)

	var ops op.Ops
	p := Painter{Scale: 2}
	if err := p.Paint(&ops, b.DisplayList()); err != nil {
		t.Fatalf("Paint() = %v", err)
	}
	if c.calls != 1 {
		t.Errorf("content drawn %d times, want 1", c.calls)
	}
}

func TestPaintUnbalanced(t *testing.T) {
	for _, kind := range []neopop.OpKind{neopop.OpPopClip, neopop.OpPopAlpha} {
		t.Run(kind.String(), func(t *testing.T) {
			var ops op.Ops
			l := neopop.DisplayList{Ops: []neopop.DrawOp{{Kind: kind}}}
			if err := Paint(&ops, l); !errors.Is(err, ErrUnbalanced) {
				t.Errorf("Paint() = %v, want ErrUnbalanced", err)
			}
		})
	}
}

func TestPaintContentError(t *testing.T) {
	boom := errors.New("boom")
	l := neopop.DisplayList{Ops: []neopop.DrawOp{
		{Kind: neopop.OpPushAlpha, Alpha: 0.5},
		{Kind: neopop.OpContent, Content: &fillContainer{err: boom}, Rect: neopop.R(0, 0, 10, 10)},
	}}
	var ops op.Ops
	if err := Paint(&ops, l); !errors.Is(err, boom) {
		t.Errorf("Paint() = %v, want wrapped %v", err, boom)
	}
}

func TestRasterizeScale(t *testing.T) {
	c := &fillContainer{color: gg.RGB(1, 0, 0)}
	img, err := Rasterize(c, 10.5, 4, 2)
	if err != nil {
		t.Fatalf("Rasterize() = %v", err)
	}
	if got := img.Bounds().Dx(); got != 21 {
		t.Errorf("width = %d, want 21", got)
	}
	if got := img.Bounds().Dy(); got != 8 {
		t.Errorf("height = %d, want 8", got)
	}
	r, g, _, a := img.At(10, 4).RGBA()
	if r>>8 != 0xff || g != 0 || a>>8 != 0xff {
		t.Errorf("center pixel = %v, want opaque red", img.At(10, 4))
	}
}

func TestNRGBA(t *testing.T) {
	got := nrgba(gg.RGBA2(1, 0, 0, 0.5))
	if got.R != 0xff || got.A < 0x7f || got.A > 0x80 {
		t.Errorf("nrgba() = %v, want half-transparent red", got)
	}
	if want := (color.NRGBA{}); nrgba(gg.Transparent) != want {
		t.Errorf("nrgba(Transparent) = %v, want %v", nrgba(gg.Transparent), want)
	}
}
