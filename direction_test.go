package neopop

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/gogpu/gg"
)

var allKinds = []EdgeDirection{
	TopLeft(), TopRight(), BottomLeft(), BottomRight(),
	Top(), Bottom(), Left(), Right(),
}

func TestSelectedIsInvolution(t *testing.T) {
	for _, d := range append(allKinds, Bottom().WithInclination(0.5), Left().WithInclination(0)) {
		sel := d.Selected()
		if sel.Kind() == d.Kind() {
			t.Errorf("%v.Selected() kept the kind", d)
		}
		if back := sel.Selected(); back != d {
			t.Errorf("%v.Selected().Selected() = %v", d, back)
		}
		if sel.Inclination() != d.Inclination() {
			t.Errorf("%v.Selected() changed inclination to %v", d, sel.Inclination())
		}
		if sel.Kind().Sides() != d.Kind().Sides().Opposite() {
			t.Errorf("%v.Selected() sides = %v, want the opposite of %v", d, sel.Kind().Sides(), d.Kind().Sides())
		}
	}
}

func TestEdgeAxes(t *testing.T) {
	tests := []struct {
		d                    EdgeDirection
		vertical, horizontal bool
	}{
		{TopLeft(), true, true},
		{BottomRight(), true, true},
		{Top(), false, true},
		{Bottom(), false, true},
		{Left(), true, false},
		{Right(), true, false},
	}
	for _, tt := range tests {
		if tt.d.HasVerticalEdge() != tt.vertical || tt.d.HasHorizontalEdge() != tt.horizontal {
			t.Errorf("%v edges = %v/%v, want %v/%v", tt.d,
				tt.d.HasVerticalEdge(), tt.d.HasHorizontalEdge(), tt.vertical, tt.horizontal)
		}
	}
}

func TestInclination(t *testing.T) {
	if got := Bottom().Inclination(); got != 1 {
		t.Errorf("default inclination = %v, want 1", got)
	}
	if got := TopLeft().WithInclination(3); got != TopLeft() {
		t.Errorf("corner WithInclination = %v, want unchanged", got)
	}
	flat := Bottom().WithInclination(0)
	if !flat.HasCustomInclination() || flat.Inclination() != 0 {
		t.Errorf("flat = %v", flat)
	}
	var zero EdgeDirection
	if zero != BottomRight() {
		t.Errorf("zero value = %v, want BottomRight", zero)
	}
}

func TestWithInclinationRejectsInvalid(t *testing.T) {
	for _, v := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		d := Bottom().WithInclination(v)
		if d != Bottom().WithInclination(0) {
			t.Errorf("WithInclination(%v) = %v, want flat", v, d)
		}
		if _, err := ParseEdgeDirection("bottom:" + strconv.FormatFloat(v, 'g', -1, 64)); !errors.Is(err, ErrInvalidInclination) {
			t.Errorf("ParseEdgeDirection(bottom:%v) error = %v", v, err)
		}
	}

	// A flat face stays inside its frame.
	m := NewButtonModel(Bottom().WithInclination(-2), gg.White)
	b := FaceShape(R(0, 0, 100, 40), m, false).Polygon.Bounds()
	if b != R(0, 0, 100, 40) {
		t.Errorf("face bounds = %v, want the frame", b)
	}
}

func TestEdgeDirectionNames(t *testing.T) {
	tests := []struct {
		d         EdgeDirection
		name, str string
		text      string
	}{
		{TopLeft(), "TopLeft", "TopLeft", "topLeft"},
		{Bottom(), "Bottom", "Bottom", "bottom"},
		{Bottom().WithInclination(0), "Bottom-flat", "Bottom-flat", "bottom-flat"},
		{Left().WithInclination(0.5), "Left", "Left(0.5)", "left:0.5"},
	}
	for _, tt := range tests {
		if got := tt.d.Name(); got != tt.name {
			t.Errorf("Name() = %q, want %q", got, tt.name)
		}
		if got := tt.d.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		b, err := tt.d.MarshalText()
		if err != nil || string(b) != tt.text {
			t.Errorf("MarshalText() = %q, %v, want %q", b, err, tt.text)
		}
		var back EdgeDirection
		if err := back.UnmarshalText(b); err != nil || back != tt.d {
			t.Errorf("UnmarshalText(%q) = %v, %v, want %v", b, back, err, tt.d)
		}
	}
}

func TestParseEdgeDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    EdgeDirection
		wantErr error
	}{
		{in: "bottomRight", want: BottomRight()},
		{in: "bottom_right", want: BottomRight()},
		{in: " Top-Left ", want: TopLeft()},
		{in: "Bottom:0.5", want: Bottom().WithInclination(0.5)},
		{in: "right-flat", want: Right().WithInclination(0)},
		{in: "sideways", wantErr: ErrUnknownDirection},
		{in: "", wantErr: ErrUnknownDirection},
		{in: "topLeft:1", wantErr: ErrInvalidInclination},
		{in: "bottom:-1", wantErr: ErrInvalidInclination},
		{in: "bottom:abc", wantErr: ErrInvalidInclination},
		{in: "bottom:Inf", wantErr: ErrInvalidInclination},
		{in: "bottom-flat:1", wantErr: ErrInvalidInclination},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEdgeDirection(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseEdgeDirection(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseEdgeDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePosition(t *testing.T) {
	for _, p := range Positions {
		got, err := ParsePosition(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePosition(%q) = %v, %v", p.String(), got, err)
		}
	}
	if got, _ := ParsePosition("TOP_EDGE"); got != PositionTopEdge {
		t.Errorf("ParsePosition(TOP_EDGE) = %v", got)
	}
	if _, err := ParsePosition("middle"); !errors.Is(err, ErrUnknownPosition) {
		t.Errorf("ParsePosition(middle) error = %v, want ErrUnknownPosition", err)
	}
	var zero Position
	if zero != PositionBottomRight {
		t.Errorf("zero Position = %v, want bottomRight", zero)
	}
}

func TestPositionTouches(t *testing.T) {
	if !PositionTopLeft.Touches(SideTop) || !PositionTopLeft.Touches(SideLeft) || PositionTopLeft.Touches(SideRight) {
		t.Error("topLeft touches top and left only")
	}
	for _, s := range []Side{SideTop, SideLeft, SideBottom, SideRight} {
		if PositionCenter.Touches(s) {
			t.Errorf("center touches %v", s)
		}
	}
}

func TestSideOpposite(t *testing.T) {
	tests := []struct{ in, want Side }{
		{SideTop, SideBottom},
		{SideLeft | SideBottom, SideRight | SideTop},
		{SideNone, SideNone},
	}
	for _, tt := range tests {
		if got := tt.in.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{CornerBottomRight.String(), "bottomRight"},
		{Corner(9).String(), "Corner(9)"},
		{TailRightToTopLeft.String(), "rightToTopLeft"},
		{CornerShape{Kind: TailLeftToBottomRight, Horizontal: true}.String(), "leftToBottomRight/h"},
		{CornerShape{Horizontal: true}.String(), "none"},
		{KindTop.String(), "Top"},
		{PositionCenter.String(), "center"},
		{StateDisabledWithOpacity.String(), "disabledWithOpacity"},
		{EventTouchUpInside.String(), "touchUpInside"},
		{OpPushAlpha.String(), "push-alpha"},
		{LayerHorizontal.String(), "horizontal"},
		{ShimmerDouble.String(), "double"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
