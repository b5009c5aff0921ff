package neopop

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
)

func TestHexARGB(t *testing.T) {
	tests := []struct {
		hex  string
		want gg.RGBA
	}{
		{"FF0000", gg.RGBA{R: 1, A: 1}},
		{"#00ff00", gg.RGBA{G: 1, A: 1}},
		{"000000FF", gg.RGBA{B: 1}},
		{"80FFFFFF", gg.RGBA{R: 1, G: 1, B: 1, A: 128.0 / 255}},
		{"FFF", gg.Black},
		{"GG0000", gg.Black},
		{"", gg.Black},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, HexARGB(tt.hex), approx); diff != "" {
			t.Errorf("HexARGB(%q) (-want +got):\n%s", tt.hex, diff)
		}
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		c    gg.RGBA
		want float64
	}{
		{gg.White, 1},
		{gg.Black, 0},
		{gg.RGB(1, 0, 0), 0.5},
		{gg.RGBA{R: 2, G: -1}, 0.5},
	}
	for _, tt := range tests {
		if got := Luminance(tt.c); got != tt.want {
			t.Errorf("Luminance(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestEdgeColors(t *testing.T) {
	// Dark faces get lighter edges, light faces darker ones.
	tests := []struct {
		name             string
		face             gg.RGBA
		horizontal, vert gg.RGBA
	}{
		{"black", gg.Black, gg.RGB(0.3, 0.3, 0.3), gg.RGB(0.1, 0.1, 0.1)},
		{"white", gg.White, gg.RGB(0.7, 0.7, 0.7), gg.RGB(0.9, 0.9, 0.9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.horizontal, HorizontalEdgeColor(tt.face), approx); diff != "" {
				t.Errorf("HorizontalEdgeColor (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.vert, VerticalEdgeColor(tt.face), approx); diff != "" {
				t.Errorf("VerticalEdgeColor (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLighterKeepsAlpha(t *testing.T) {
	c := Lighter(gg.RGBA2(0.9, 0.5, 0, 0.4), 20)
	if diff := cmp.Diff(gg.RGBA2(1, 0.7, 0.2, 0.4), c, approx); diff != "" {
		t.Errorf("Lighter (-want +got):\n%s", diff)
	}
}

func TestColorRef(t *testing.T) {
	c := gg.White
	p := ColorRef(c)
	c.R = 0
	if p.R != 1 {
		t.Error("ColorRef shares storage with its argument")
	}
	if !colorEqual(ColorRef(gg.Black), ColorRef(gg.Black)) || colorEqual(nil, ColorRef(gg.Black)) || !colorEqual(nil, nil) {
		t.Error("colorEqual compares by value with nil only equal to nil")
	}
}
