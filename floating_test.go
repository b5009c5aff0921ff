package neopop

import (
	"testing"
	"time"

	"github.com/gogpu/neopop/motion"
)

func newTestFloating(t *testing.T, opts ...Option) (*FloatingButton, *motion.Timeline) {
	t.Helper()
	tl := motion.NewTimeline(time.Unix(0, 0))
	b := NewFloatingButton(append([]Option{WithAnimator(tl), WithScheduler(tl)}, opts...)...)
	b.SetFrame(R(0, 0, 200, 50))
	b.Configure(NewFloatingModel())
	t.Cleanup(b.Close)
	return b, tl
}

func TestFloatingGeometry(t *testing.T) {
	b, _ := newTestFloating(t)
	if got := b.Inclination(); got != 1.5 {
		t.Errorf("Inclination() = %v, want 1.5", got)
	}
	tests := []struct {
		name string
		got  floatPos
		want floatPos
	}{
		{"up", b.upPos(), floatPos{floatTop: 0, shadowTop: 22.5}},
		{"pressed", b.downPos(false), floatPos{floatTop: 6.25, shadowTop: 16.25}},
		{"levitating", b.downPos(true), floatPos{floatTop: 5, shadowTop: 20}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s position = %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
	if got := b.ShadowFrame(); got != R(10, 22.5, 180, 50) {
		t.Errorf("ShadowFrame() at rest = %v", got)
	}
	if got := b.ContentFrame(); got != R(0, -5, 200, 50) {
		t.Errorf("ContentFrame() at rest = %v", got)
	}
	if got := NewFloatingButton().Inclination(); got != 0 {
		t.Errorf("unsized Inclination() = %v", got)
	}
}

func TestFloatingPressAndRelease(t *testing.T) {
	h := &countingHaptics{}
	b, tl := newTestFloating(t, WithHaptics(h))
	taps := 0
	b.OnTap(func() { taps++ })

	b.TouchDown()
	if !b.IsMoving() || h.n != 1 {
		t.Fatalf("after TouchDown moving=%v impacts=%d", b.IsMoving(), h.n)
	}
	tl.Advance(200 * time.Millisecond)
	if got := b.FloatingFrame().Y; got != 6.25 {
		t.Errorf("pressed float top = %v, want 6.25", got)
	}
	if got := b.ShadowFrame(); got != R(10, 16.25, 180, 50) {
		t.Errorf("pressed ShadowFrame() = %v", got)
	}

	b.TouchUp(true)
	if taps != 0 {
		t.Fatal("tap delivered before the face rose")
	}
	tl.Advance(500 * time.Millisecond)
	if taps != 1 || b.IsMoving() {
		t.Errorf("after release taps=%d moving=%v", taps, b.IsMoving())
	}
	if got := b.FloatingFrame().Y; got != 0 {
		t.Errorf("released float top = %v, want 0", got)
	}
}

func TestFloatingReleaseDuringPress(t *testing.T) {
	b, tl := newTestFloating(t)
	taps := 0
	b.OnTap(func() { taps++ })
	b.TouchDown()
	b.TouchUp(true)
	tl.Advance(200 * time.Millisecond)
	if taps != 0 || !b.IsMoving() {
		t.Fatalf("press end: taps=%d moving=%v, want the rise to start", taps, b.IsMoving())
	}
	tl.Advance(500 * time.Millisecond)
	if taps != 1 {
		t.Errorf("taps = %d, want 1", taps)
	}
}

func TestFloatingDisableOnNextClick(t *testing.T) {
	b, tl := newTestFloating(t)
	rec := &recordingContainer{}
	b.SetContainer(rec)
	taps := 0
	b.OnTap(func() { taps++ })

	b.DisableOnNextClick(false)
	b.TouchDown()
	tl.Advance(200 * time.Millisecond)
	if b.IsDisabled() {
		t.Fatal("disabled on touch down")
	}
	b.TouchUp(true)
	if !b.IsDisabled() || taps != 1 {
		t.Fatalf("after tap disabled=%v taps=%d", b.IsDisabled(), taps)
	}
	if got := b.floating.Model().Background; got != b.Model().DisabledBackground {
		t.Errorf("disabled face = %v", got)
	}
	if len(rec.states) != 1 || rec.states[0] != StateDisabled {
		t.Errorf("container states = %v", rec.states)
	}
	tl.Advance(time.Second)
	if got := b.FloatingFrame().Y; got != 6.25 {
		t.Errorf("disabled float top = %v, want the pressed position", got)
	}

	b.TouchDown()
	b.TouchUp(true)
	if taps != 1 {
		t.Error("disabled button delivered a tap")
	}
}

func TestFloatingDisableOnNextClickDuringPress(t *testing.T) {
	b, tl := newTestFloating(t)
	taps := 0
	b.OnTap(func() { taps++ })

	b.DisableOnNextClick(true)
	b.TouchDown()
	b.TouchUp(true)
	if b.IsDisabled() {
		t.Fatal("disabled before the press movement ended")
	}
	tl.Advance(200 * time.Millisecond)
	if !b.IsDisabled() || taps != 1 {
		t.Fatalf("after press disabled=%v taps=%d", b.IsDisabled(), taps)
	}
	if b.floatAlpha != 0.5 || b.shadowAlpha != 0 {
		t.Errorf("alpha float=%v shadow=%v, want 0.5 and 0", b.floatAlpha, b.shadowAlpha)
	}
	l := b.DisplayList()
	if l.Ops[0].Kind != OpPushAlpha || l.Ops[0].Alpha != 0.5 {
		t.Errorf("first op = %+v, want the faded face group", l.Ops[0])
	}
	checkBalanced(t, "disabled with alpha", l)
}

func TestFloatingDisableImmediatelyAndEnable(t *testing.T) {
	b, tl := newTestFloating(t)
	rec := &recordingContainer{}
	b.SetContainer(rec)

	b.DisableImmediately(false)
	b.DisableImmediately(true)
	if !b.IsDisabled() || b.disabledAlpha {
		t.Fatal("second disable was not ignored")
	}
	b.TouchDown()
	if b.IsHighlighted() {
		t.Error("disabled button highlighted on touch")
	}
	tl.Advance(200 * time.Millisecond)

	b.Enable()
	if b.IsDisabled() || b.floating.Model().Background != b.Model().Background {
		t.Fatal("Enable did not restore the face")
	}
	tl.Advance(500 * time.Millisecond)
	if got := b.FloatingFrame().Y; got != 0 {
		t.Errorf("enabled float top = %v, want 0", got)
	}
	want := []State{StateDisabled, StateNormal}
	if len(rec.states) != 2 || rec.states[0] != want[0] || rec.states[1] != want[1] {
		t.Errorf("container states = %v, want %v", rec.states, want)
	}
}

func TestFloatingEnableCancelsPendingDisable(t *testing.T) {
	b, tl := newTestFloating(t)
	b.DisableOnNextClick(false)
	b.Enable()
	b.TouchDown()
	tl.Advance(200 * time.Millisecond)
	b.TouchUp(true)
	tl.Advance(500 * time.Millisecond)
	if b.IsDisabled() {
		t.Error("cancelled DisableOnNextClick still disabled the button")
	}
}

func TestFloatingLevitation(t *testing.T) {
	b, tl := newTestFloating(t)
	b.StartLevitating()
	if !b.IsLevitating() {
		t.Fatal("not levitating")
	}
	tl.Advance(0)
	tl.Advance(2 * time.Second)
	if got := b.FloatingFrame().Y; got != 5 {
		t.Errorf("levitated float top = %v, want 5", got)
	}
	tl.Advance(time.Second)
	if got := b.FloatingFrame().Y; got != 2.5 {
		t.Errorf("settling float top = %v, want 2.5", got)
	}
	if b.IsMoving() {
		t.Error("levitation counts as a touch movement")
	}

	b.StopLevitating()
	if b.IsLevitating() || tl.Pending() != 0 {
		t.Errorf("after StopLevitating levitating=%v pending=%d", b.IsLevitating(), tl.Pending())
	}
}

func TestFloatingLevitationNeedsScheduler(t *testing.T) {
	b := NewFloatingButton()
	b.SetFrame(R(0, 0, 200, 50))
	b.Configure(NewFloatingModel())
	b.StartLevitating()
	if b.IsLevitating() {
		t.Error("levitating without a scheduler")
	}
}

func TestFloatingDisplayList(t *testing.T) {
	b, tl := newTestFloating(t)
	b.SetFrame(R(20, 30, 200, 50))
	l := b.DisplayList()
	checkBalanced(t, "rest", l)
	if l.Count(OpContent) != 1 {
		t.Errorf("content ops = %d, want 1", l.Count(OpContent))
	}

	b.StartShimmer(0, 0)
	tl.Advance(100 * time.Millisecond)
	shimmering := b.DisplayList()
	checkBalanced(t, "shimmer", shimmering)
	if got, want := shimmering.Count(OpFill), l.Count(OpFill)+4; got != want {
		t.Errorf("fills while shimmering = %d, want %d", got, want)
	}

	b.EndShimmer()
	if b.IsShimmering() {
		t.Error("EndShimmer left the shimmer running")
	}
	if got := (&FloatingButton{}).DisplayList(); len(got.Ops) != 0 {
		t.Errorf("unconfigured button draws %d ops", len(got.Ops))
	}
}
