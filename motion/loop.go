package motion

import (
	"context"
	"time"
)

// DefaultInterval is the frame interval of a Loop, about 60 frames per
// second.
const DefaultInterval = time.Second / 60

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithInterval sets the frame interval. Non-positive values are ignored.
func WithInterval(d time.Duration) LoopOption {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithFrameFunc sets a function called after every frame, for example to
// repaint.
func WithFrameFunc(fn func(now time.Time)) LoopOption {
	return func(l *Loop) {
		l.frame = fn
	}
}

// Loop advances a Timeline in real time. Run owns the timeline: buttons
// using it must only be touched from functions passed to Do.
type Loop struct {
	tl       *Timeline
	interval time.Duration
	frame    func(time.Time)
	posts    chan func()
	done     chan struct{}
}

// NewLoop returns a loop whose timeline starts at the current time.
func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{
		tl:       NewTimeline(time.Now()),
		interval: DefaultInterval,
		posts:    make(chan func(), 64),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Timeline returns the loop's timeline. Use it only from the loop
// goroutine.
func (l *Loop) Timeline() *Timeline { return l.tl }

// Do runs f on the loop goroutine. It is safe for concurrent use and
// reports false, without running f, once Run has returned.
func (l *Loop) Do(f func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.posts <- f:
		return true
	case <-l.done:
		return false
	}
}

// Run drives the timeline until ctx ends and returns ctx.Err(). Pending
// animations are interrupted on return. Run must be called at most once.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	defer l.tl.Stop()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f := <-l.posts:
			f()
		case now := <-ticker.C:
			l.tl.Advance(now.Sub(last))
			last = now
			if l.frame != nil {
				l.frame(l.tl.Now())
			}
		}
	}
}
