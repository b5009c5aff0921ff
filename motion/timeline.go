// Package motion drives neopop animations and timers.
//
// Timeline is a virtual clock advanced explicitly by its owner, which makes
// transitions reproducible in tests and frame-by-frame renderers. Loop runs
// a Timeline in real time on a single goroutine.
package motion

import (
	"time"
)

type timer struct {
	due     time.Time
	seq     uint64
	f       func()
	stopped bool
}

type animation struct {
	start time.Time
	d     time.Duration
	step  func(float64)
	done  func(bool)
}

// Timeline is a virtual clock that runs animations and timers. It
// satisfies neopop.Animator and neopop.Scheduler.
//
// Callbacks run synchronously inside Animate, Advance and Stop. Animations
// and timers added from a callback start at the timeline's current time.
// A Timeline is not safe for concurrent use.
type Timeline struct {
	now    time.Time
	seq    uint64
	timers []*timer
	anims  []*animation
}

// NewTimeline returns a timeline whose clock reads start.
func NewTimeline(start time.Time) *Timeline {
	return &Timeline{now: start}
}

// Now returns the timeline's current time.
func (t *Timeline) Now() time.Time { return t.now }

// Animate starts an animation of duration d. step receives the linear
// progress in [0, 1]; done receives true when the animation ran to the
// end. A non-positive duration completes at once.
func (t *Timeline) Animate(d time.Duration, step func(float64), done func(bool)) {
	if d <= 0 {
		if step != nil {
			step(1)
		}
		if done != nil {
			done(true)
		}
		return
	}
	t.anims = append(t.anims, &animation{start: t.now, d: d, step: step, done: done})
}

// AfterFunc runs f once d has elapsed on the timeline. A non-positive d
// runs f on the next Advance. The returned stop function cancels f and
// reports whether it was still pending.
func (t *Timeline) AfterFunc(d time.Duration, f func()) (stop func() bool) {
	if d < 0 {
		d = 0
	}
	t.seq++
	tm := &timer{due: t.now.Add(d), seq: t.seq, f: f}
	t.timers = append(t.timers, tm)
	return func() bool {
		if tm.stopped {
			return false
		}
		tm.stopped = true
		t.removeTimer(tm)
		return true
	}
}

func (t *Timeline) removeTimer(tm *timer) {
	for i, x := range t.timers {
		if x == tm {
			t.timers = append(t.timers[:i], t.timers[i+1:]...)
			return
		}
	}
}

// next returns the earliest timer due at or before limit.
func (t *Timeline) next(limit time.Time) *timer {
	var best *timer
	for _, tm := range t.timers {
		if tm.due.After(limit) {
			continue
		}
		if best == nil || tm.due.Before(best.due) || (tm.due.Equal(best.due) && tm.seq < best.seq) {
			best = tm
		}
	}
	return best
}

// Advance moves the clock forward by dt. Timers fire in due order, each
// after the animations have been stepped to its due time.
func (t *Timeline) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := t.now.Add(dt)
	for {
		tm := t.next(target)
		if tm == nil {
			break
		}
		if tm.due.After(t.now) {
			t.now = tm.due
		}
		t.stepAnimations()
		tm.stopped = true
		t.removeTimer(tm)
		tm.f()
	}
	t.now = target
	t.stepAnimations()
}

func (t *Timeline) stepAnimations() {
	running := t.anims
	t.anims = nil
	var keep []*animation
	for _, a := range running {
		elapsed := t.now.Sub(a.start)
		if elapsed >= a.d {
			if a.step != nil {
				a.step(1)
			}
			if a.done != nil {
				a.done(true)
			}
			continue
		}
		if a.step != nil {
			a.step(float64(elapsed) / float64(a.d))
		}
		keep = append(keep, a)
	}
	t.anims = append(keep, t.anims...)
}

// Stop interrupts every running animation, calling done(false), and
// cancels every pending timer.
func (t *Timeline) Stop() {
	running := t.anims
	t.anims = nil
	for _, tm := range t.timers {
		tm.stopped = true
	}
	t.timers = nil
	for _, a := range running {
		if a.done != nil {
			a.done(false)
		}
	}
}

// Animating returns the number of running animations.
func (t *Timeline) Animating() int { return len(t.anims) }

// Pending returns the number of timers that have not fired.
func (t *Timeline) Pending() int { return len(t.timers) }

// Idle reports whether nothing is running or pending.
func (t *Timeline) Idle() bool { return len(t.anims) == 0 && len(t.timers) == 0 }
