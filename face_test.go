package neopop

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
)

func TestFaceShape(t *testing.T) {
	bg := HexARGB("FFE0A0")
	frame := R(0, 0, 100, 40)

	m := NewButtonModel(BottomRight(), bg)
	sh := FaceShape(frame, m, false)
	want := Quad(gg.Pt(0, 0), gg.Pt(0, 40), gg.Pt(100, 40), gg.Pt(100, 0))
	if diff := cmp.Diff(want, sh.Polygon); diff != "" {
		t.Errorf("face (-want +got):\n%s", diff)
	}
	if sh.Fill != bg || len(sh.Borders) != 0 {
		t.Errorf("fill = %v, borders = %d", sh.Fill, len(sh.Borders))
	}

	m.BorderWidth = 2
	m.FaceBorderColors = AllEdges(gg.Black)
	if got := len(FaceShape(frame, m, false).Borders); got != 4 {
		t.Errorf("bordered face has %d borders, want 4", got)
	}
	m.FaceBorderColors.Top = nil
	if got := len(FaceShape(frame, m, false).Borders); got != 3 {
		t.Errorf("face without top border has %d borders, want 3", got)
	}

	disabled := FaceShape(frame, m, true)
	if disabled.Fill != DisabledBackground || len(disabled.Borders) != 0 {
		t.Errorf("disabled face fill = %v, borders = %d", disabled.Fill, len(disabled.Borders))
	}
}

func TestFaceShapeSlanted(t *testing.T) {
	m := NewButtonModel(Bottom(), gg.White)
	sh := FaceShape(R(0, 0, 100, 40), m, false)
	want := Quad(gg.Pt(3, 0), gg.Pt(0, 40), gg.Pt(100, 40), gg.Pt(97, 0))
	if diff := cmp.Diff(want, sh.Polygon); diff != "" {
		t.Errorf("slanted face (-want +got):\n%s", diff)
	}
}

func TestTailShape(t *testing.T) {
	borders := EdgeColors{Left: ColorRef(gg.Black)}

	if sh := TailShape(CornerShape{}, 3, gg.White, borders, 1); !sh.Empty() {
		t.Errorf("TailNone drew %v", sh.Polygon)
	}

	sh := TailShape(CornerShape{Kind: TailLeftToBottomRight}, 3, gg.White, borders, 1)
	want := Polygon{gg.Pt(0, 0), gg.Pt(0, 3), gg.Pt(3, 3), gg.Pt(0, 0)}
	if diff := cmp.Diff(want, sh.Polygon); diff != "" {
		t.Errorf("tail (-want +got):\n%s", diff)
	}
	wantBorder := []Segment{{Start: gg.Pt(0, 3), End: gg.Pt(0, 0), Color: gg.Black, Width: 1}}
	if diff := cmp.Diff(wantBorder, sh.Borders); diff != "" {
		t.Errorf("tail border (-want +got):\n%s", diff)
	}

	// A horizontal tail continues the bottom border, which is unset here.
	sh = TailShape(CornerShape{Kind: TailLeftToBottomRight, Horizontal: true}, 3, gg.White, borders, 1)
	if len(sh.Borders) != 0 {
		t.Errorf("horizontal tail borders = %v", sh.Borders)
	}

	for _, k := range []TailKind{TailRightToBottomLeft, TailRightToTopLeft, TailLeftToBottomRight, TailLeftToTopRight} {
		p := TailShape(CornerShape{Kind: k}, 4, gg.White, EdgeColors{}, 0).Polygon
		if !p.Closed() || p.Bounds() != R(0, 0, 4, 4) {
			t.Errorf("%v tail = %v", k, p)
		}
	}
}

func TestTailRect(t *testing.T) {
	r := R(10, 10, 100, 40)
	tests := []struct {
		c    Corner
		want Rect
	}{
		{CornerTopLeft, R(10, 10, 3, 3)},
		{CornerTopRight, R(107, 10, 3, 3)},
		{CornerBottomLeft, R(10, 47, 3, 3)},
		{CornerBottomRight, R(107, 47, 3, 3)},
	}
	for _, tt := range tests {
		if got := tailRect(r, tt.c, 3); got != tt.want {
			t.Errorf("tailRect(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}
