package neopop

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gogpu/gg"
)

// ShimmerKind selects the strip layout of a ShimmerStyle.
type ShimmerKind uint8

const (
	ShimmerNone ShimmerKind = iota
	ShimmerSingle
	ShimmerDouble
)

func (k ShimmerKind) String() string {
	switch k {
	case ShimmerSingle:
		return "single"
	case ShimmerDouble:
		return "double"
	}
	return "none"
}

// MarshalText implements encoding.TextMarshaler.
func (k ShimmerKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ShimmerKind) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "", "none":
		*k = ShimmerNone
	case "single":
		*k = ShimmerSingle
	case "double":
		*k = ShimmerDouble
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShimmer, b)
	}
	return nil
}

// ShimmerStyle describes the highlight strips swept across a button face.
// Angle is in degrees from the horizontal.
type ShimmerStyle struct {
	Kind    ShimmerKind
	Angle   float64
	Width   float64
	Width2  float64
	Spacing float64
	Color   gg.RGBA

	Duration time.Duration
	Delay    time.Duration
}

// SingleShimmer returns a one-strip style.
func SingleShimmer(angle, width float64, c gg.RGBA, duration, delay time.Duration) ShimmerStyle {
	return ShimmerStyle{Kind: ShimmerSingle, Angle: angle, Width: width, Color: c, Duration: duration, Delay: delay}
}

// DoubleShimmer returns a two-strip style; the strips are spacing apart.
func DoubleShimmer(angle, width1, width2, spacing float64, c gg.RGBA, duration, delay time.Duration) ShimmerStyle {
	return ShimmerStyle{
		Kind: ShimmerDouble, Angle: angle, Width: width1, Width2: width2, Spacing: spacing,
		Color: c, Duration: duration, Delay: delay,
	}
}

// shimmerProgress maps elapsed time onto the sweep of the current
// repetition. Each repetition sweeps for duration and then rests for
// delay. repeat <= 0 repeats forever. ok is false while resting and after
// the last repetition.
func shimmerProgress(elapsed, duration, delay time.Duration, repeat int) (t float64, ok bool) {
	if duration <= 0 || elapsed < 0 {
		return 0, false
	}
	period := duration + delay
	n := elapsed / period
	if repeat > 0 && int64(n) >= int64(repeat) {
		return 0, false
	}
	in := elapsed - n*period
	if in >= duration {
		return 0, false
	}
	return float64(in) / float64(duration), true
}

func inclinedSpacing(h, angle float64) float64 {
	t := math.Tan(angle * math.Pi / 180)
	if t == 0 || math.IsInf(t, 0) {
		return 0
	}
	return h / t
}

// strip is a parallelogram of the given width whose top-right corner sits
// at (startX, 0).
func strip(h, angle, width, startX float64) Polygon {
	is := inclinedSpacing(h, angle)
	return Quad(
		gg.Pt(startX-is, h),
		gg.Pt(startX-is-width, h),
		gg.Pt(startX-width, 0),
		gg.Pt(startX, 0),
	)
}

// Strips returns the strips to draw over a face of the given size, elapsed
// time after the shimmer started. Nothing is returned between sweeps or
// once repeat sweeps have played (repeat <= 0 repeats forever).
func (s ShimmerStyle) Strips(size Rect, elapsed time.Duration, repeat int) []Polygon {
	t, ok := shimmerProgress(elapsed, s.Duration, s.Delay, repeat)
	if !ok {
		return nil
	}
	w, h := size.Width, size.Height
	is := inclinedSpacing(h, s.Angle)

	switch s.Kind {
	case ShimmerSingle:
		from := strip(h, s.Angle, s.Width, 0)
		to := strip(h, s.Angle, s.Width, w+is+s.Width)
		return []Polygon{from.Lerp(to, t)}
	case ShimmerDouble:
		dx := lerp(-s.Spacing-s.Width2, w+s.Width+s.Width2+is+s.Spacing, t)
		return []Polygon{
			strip(h, s.Angle, s.Width2, s.Spacing+s.Width2).Offset(dx, 0),
			strip(h, s.Angle, s.Width, 0).Offset(dx, 0),
		}
	}
	return nil
}

// FloatingShimmer describes the shimmer of a FloatingButton: one or two
// strips that follow the slant of the face and continue, dimmed, over the
// bottom edge.
type FloatingShimmer struct {
	Spacing float64
	Color   gg.RGBA
	// EdgeAlpha is the strip alpha over the bottom edge.
	EdgeAlpha float64
	Width1    float64
	// Width2 is the width of the second strip; 0 draws a single strip.
	Width2 float64

	Duration time.Duration
	Delay    time.Duration
}

// DefaultFloatingShimmer returns the stock two-strip shimmer.
func DefaultFloatingShimmer() FloatingShimmer {
	return FloatingShimmer{
		Spacing:   8,
		Color:     gg.White,
		EdgeAlpha: 0.4,
		Width1:    15,
		Width2:    25,
		Duration:  3 * time.Second,
	}
}

// FloatingShimmerFrame is one frame of a FloatingShimmer.
type FloatingShimmerFrame struct {
	// Mask bounds every strip: the slanted face plus its bottom edge.
	Mask Polygon
	// Face is the area above the bottom edge, where strips are drawn at
	// full strength.
	Face Polygon

	Strips    []Polygon
	EdgeColor gg.RGBA
	FaceColor gg.RGBA
}

// Frame computes the shimmer over a floating face of the given size,
// inclination and edge depth. ok is false when nothing is drawn.
func (s FloatingShimmer) Frame(size Rect, inclination, edge float64, elapsed time.Duration, repeat int) (FloatingShimmerFrame, bool) {
	t, ok := shimmerProgress(elapsed, s.Duration, s.Delay, repeat)
	if !ok {
		return FloatingShimmerFrame{}, false
	}
	w, h := size.Width, size.Height
	offH := h - edge
	incl := edge * inclination

	first := func(lw, x float64) Polygon {
		return Polygon{
			gg.Pt(x+incl, 0), gg.Pt(x+incl+lw, 0), gg.Pt(x+lw, offH),
			gg.Pt(x+edge/2+lw, h), gg.Pt(x+edge/2, h), gg.Pt(x, offH), gg.Pt(x+incl, 0),
		}
	}
	last := func(lw, x float64) Polygon {
		p3 := gg.Pt(x+lw+incl, offH)
		return Polygon{
			gg.Pt(x, 0), gg.Pt(x+lw, 0), p3,
			gg.Pt(p3.X-edge/2, h), gg.Pt(p3.X-edge/2-lw, h), gg.Pt(x+incl, offH), gg.Pt(x, 0),
		}
	}

	dx := lerp(-s.Width1-s.Spacing-s.Width2, w-s.Width1, t)
	strips := []Polygon{first(s.Width1, 0).Lerp(last(s.Width1, 0), t).Offset(dx, 0)}
	if s.Width2 > 0 {
		x := s.Width1 + s.Spacing
		strips = append(strips, first(s.Width2, x).Lerp(last(s.Width2, x), t).Offset(dx, 0))
	}

	edgeColor := s.Color
	edgeColor.A *= s.EdgeAlpha
	return FloatingShimmerFrame{
		Mask: Polygon{
			gg.Pt(incl, 0), gg.Pt(0, offH), gg.Pt(edge/2, h),
			gg.Pt(w-edge+edge/2, h), gg.Pt(w, offH), gg.Pt(w-incl, 0), gg.Pt(incl, 0),
		},
		Face:      Quad(gg.Pt(0, 0), gg.Pt(0, offH), gg.Pt(w, offH), gg.Pt(w, 0)),
		Strips:    strips,
		EdgeColor: edgeColor,
		FaceColor: s.Color,
	}, true
}

// shimmerClock tracks when a button's shimmer started. A pending start
// delay runs on the scheduler; restarting or stopping invalidates it.
type shimmerClock struct {
	active  bool
	running bool
	repeat  int
	delay   time.Duration
	start   time.Time
	stop    func() bool
	gen     uint64
}

// schedule (re)starts the shimmer after the configured delay. Without a
// scheduler the shimmer starts at once.
func (c *shimmerClock) schedule(o *options) {
	c.cancel()
	gen := c.gen
	begin := func() {
		if gen != c.gen {
			Logger().Debug("neopop: stale shimmer timer ignored")
			return
		}
		c.stop = nil
		c.running = true
		c.start = o.now()
	}
	if o.scheduler == nil || c.delay <= 0 {
		begin()
		return
	}
	c.stop = o.scheduler.AfterFunc(c.delay, begin)
}

// cancel stops a pending start and hides the shimmer.
func (c *shimmerClock) cancel() {
	c.gen++
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
	c.running = false
}

// elapsed returns the time since the shimmer started.
func (c *shimmerClock) elapsed(now time.Time) (time.Duration, bool) {
	if !c.running {
		return 0, false
	}
	return now.Sub(c.start), true
}
