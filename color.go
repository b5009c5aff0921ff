package neopop

import (
	"math"

	"github.com/gogpu/gg"
)

// Palette used by the library itself.
var (
	// DisabledBackground is the face color of a button disabled without
	// opacity.
	DisabledBackground = HexARGB("8A8A8A")
	DarkGreen          = HexARGB("E6F9F1")
	BrightGreen        = HexARGB("06C270")
	SwitchOff          = HexARGB("E0E0E0")
)

// ColorRef returns a pointer to a copy of c, for optional color fields.
func ColorRef(c gg.RGBA) *gg.RGBA { return &c }

// HexARGB parses a hex color. The last six digits are RGB; when at least
// eight digits are given, the two before them are alpha. A leading '#' is
// ignored. Unparseable input yields opaque black.
func HexARGB(hex string) gg.RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) < 6 {
		return gg.Black
	}
	rgb, ok := parseHex(hex[len(hex)-6:])
	if !ok {
		return gg.Black
	}
	a := uint32(255)
	if len(hex) >= 8 {
		if v, ok := parseHex(hex[len(hex)-8 : len(hex)-6]); ok {
			a = v
		}
	}
	return gg.RGBA{
		R: float64(rgb>>16&0xff) / 255,
		G: float64(rgb>>8&0xff) / 255,
		B: float64(rgb&0xff) / 255,
		A: float64(a) / 255,
	}
}

func parseHex(s string) (uint32, bool) {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}

// Luminance returns the HSL lightness of c: the mean of its largest and
// smallest channel, each clamped to [0, 1].
func Luminance(c gg.RGBA) float64 {
	r, g, b := clamp01(c.R), clamp01(c.G), clamp01(c.B)
	return (math.Min(r, math.Min(g, b)) + math.Max(r, math.Max(g, b))) / 2
}

// Lighter raises each channel by percent/100. Alpha is kept.
func Lighter(c gg.RGBA, percent float64) gg.RGBA {
	return adjust(c, percent/100)
}

// Darker lowers each channel by percent/100. Alpha is kept.
func Darker(c gg.RGBA, percent float64) gg.RGBA {
	return adjust(c, -percent/100)
}

func adjust(c gg.RGBA, d float64) gg.RGBA {
	return gg.RGBA{R: clamp01(c.R + d), G: clamp01(c.G + d), B: clamp01(c.B + d), A: c.A}
}

// darkThreshold separates dark faces, whose edges are lightened, from light
// ones, whose edges are darkened.
const darkThreshold = 0.3

// HorizontalEdgeColor derives the horizontal (top/bottom) edge color for a
// face color.
func HorizontalEdgeColor(face gg.RGBA) gg.RGBA {
	if Luminance(face) < darkThreshold {
		return Lighter(face, 30)
	}
	return Darker(face, 30)
}

// VerticalEdgeColor derives the vertical (left/right) edge color for a
// face color.
func VerticalEdgeColor(face gg.RGBA) gg.RGBA {
	if Luminance(face) < darkThreshold {
		return Lighter(face, 10)
	}
	return Darker(face, 10)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func colorEqual(a, b *gg.RGBA) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func colorOr(c *gg.RGBA, def gg.RGBA) gg.RGBA {
	if c == nil {
		return def
	}
	return *c
}
