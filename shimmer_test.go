package neopop

import (
	"errors"
	"testing"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/neopop/motion"
)

func TestShimmerProgress(t *testing.T) {
	const d, delay = time.Second, 500 * time.Millisecond
	tests := []struct {
		name    string
		elapsed time.Duration
		repeat  int
		want    float64
		ok      bool
	}{
		{"start", 0, 0, 0, true},
		{"midway", 500 * time.Millisecond, 0, 0.5, true},
		{"resting", 1200 * time.Millisecond, 0, 0, false},
		{"second sweep", 1500 * time.Millisecond, 0, 0, true},
		{"second sweep over limit", 1500 * time.Millisecond, 1, 0, false},
		{"before start", -time.Millisecond, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := shimmerProgress(tt.elapsed, d, delay, tt.repeat)
			if got != tt.want || ok != tt.ok {
				t.Errorf("shimmerProgress(%v) = %v, %v, want %v, %v", tt.elapsed, got, ok, tt.want, tt.ok)
			}
		})
	}
	if _, ok := shimmerProgress(0, 0, 0, 0); ok {
		t.Error("zero duration shimmer is visible")
	}
}

func TestShimmerStrips(t *testing.T) {
	size := R(0, 0, 200, 40)
	single := SingleShimmer(45, 20, gg.White, time.Second, 0)

	strips := single.Strips(size, 0, 0)
	if len(strips) != 1 {
		t.Fatalf("single shimmer gave %d strips", len(strips))
	}
	// The sweep starts with the strip just left of the face.
	if got := strips[0][3]; got != gg.Pt(0, 0) {
		t.Errorf("first strip top-right = %v, want origin", got)
	}
	later := single.Strips(size, 500*time.Millisecond, 0)
	if later[0][3].X <= 0 {
		t.Errorf("strip did not move: %v", later[0])
	}

	double := DoubleShimmer(45, 10, 20, 5, gg.White, time.Second, 0)
	if got := len(double.Strips(size, 100*time.Millisecond, 0)); got != 2 {
		t.Errorf("double shimmer gave %d strips", got)
	}
	if got := (ShimmerStyle{}).Strips(size, 0, 0); got != nil {
		t.Errorf("ShimmerNone gave %v", got)
	}
	if got := single.Strips(size, 2*time.Second, 1); got != nil {
		t.Errorf("finished shimmer gave %v", got)
	}
}

func TestShimmerKindText(t *testing.T) {
	var k ShimmerKind
	if err := k.UnmarshalText([]byte("Double")); err != nil || k != ShimmerDouble {
		t.Errorf("UnmarshalText(Double) = %v, %v", k, err)
	}
	if err := k.UnmarshalText([]byte("zigzag")); !errors.Is(err, ErrUnknownShimmer) {
		t.Errorf("UnmarshalText(zigzag) error = %v", err)
	}
}

func TestFloatingShimmerFrame(t *testing.T) {
	s := DefaultFloatingShimmer()
	size := R(0, 0, 200, 50)

	fr, ok := s.Frame(size, 1.5, 10, 0, 0)
	if !ok {
		t.Fatal("Frame() not visible at start")
	}
	if len(fr.Strips) != 2 {
		t.Errorf("strips = %d, want 2", len(fr.Strips))
	}
	if fr.EdgeColor.A != 0.4 || fr.FaceColor != gg.White {
		t.Errorf("colors = %v / %v", fr.EdgeColor, fr.FaceColor)
	}
	if !fr.Mask.Closed() || fr.Face.Bounds() != R(0, 0, 200, 40) {
		t.Errorf("mask = %v, face = %v", fr.Mask, fr.Face)
	}
	for _, p := range fr.Strips {
		if !p.Closed() {
			t.Errorf("strip %v not closed", p)
		}
	}

	s.Width2 = 0
	if fr, _ := s.Frame(size, 1.5, 10, time.Second, 0); len(fr.Strips) != 1 {
		t.Errorf("single-strip shimmer gave %d strips", len(fr.Strips))
	}
	if _, ok := s.Frame(size, 1.5, 10, 4*time.Second, 1); ok {
		t.Error("shimmer visible after its only sweep")
	}
}

func TestShimmerClockDelay(t *testing.T) {
	tl := motion.NewTimeline(time.Unix(0, 0))
	o := newOptions([]Option{WithScheduler(tl)})
	c := shimmerClock{delay: time.Second}

	c.schedule(&o)
	if c.running {
		t.Fatal("shimmer started before its delay")
	}
	tl.Advance(time.Second)
	if !c.running {
		t.Fatal("shimmer not started after its delay")
	}
	if got, ok := c.elapsed(tl.Now().Add(250 * time.Millisecond)); !ok || got != 250*time.Millisecond {
		t.Errorf("elapsed = %v, %v", got, ok)
	}

	c.schedule(&o)
	c.cancel()
	tl.Advance(2 * time.Second)
	if c.running || tl.Pending() != 0 {
		t.Errorf("cancelled shimmer running=%v pending=%d", c.running, tl.Pending())
	}
}

func TestShimmerClockWithoutScheduler(t *testing.T) {
	o := newOptions(nil)
	c := shimmerClock{delay: time.Hour}
	c.schedule(&o)
	if !c.running {
		t.Error("shimmer without a scheduler did not start at once")
	}
}
