package neopop

import "time"

// Config holds the animation timings of Button and FloatingButton.
type Config struct {
	// PressDuration is the length of a Button press or release transition.
	PressDuration time.Duration

	// FloatingTouchDown and FloatingTouchUp are the lengths of the
	// FloatingButton sink and rise transitions.
	FloatingTouchDown time.Duration
	FloatingTouchUp   time.Duration

	// Levitation is the length of one levitation movement. A new
	// levitation starts every 2.5 Levitation periods.
	Levitation time.Duration
}

// DefaultConfig returns the stock timings.
func DefaultConfig() Config {
	return Config{
		PressDuration:     150 * time.Millisecond,
		FloatingTouchDown: 200 * time.Millisecond,
		FloatingTouchUp:   500 * time.Millisecond,
		Levitation:        2 * time.Second,
	}
}

func (c Config) levitationPeriod() time.Duration {
	return c.Levitation * 5 / 2
}

// Animator plays a property animation. step receives the linear progress
// in [0, 1]; done is called once, with finished false when the animation
// was interrupted. Both are called on the UI goroutine.
type Animator interface {
	Animate(d time.Duration, step func(progress float64), done func(finished bool))
}

// Scheduler runs delayed callbacks on the UI goroutine.
type Scheduler interface {
	// AfterFunc calls f once after d. The returned stop function cancels
	// the call and reports whether it was still pending.
	AfterFunc(d time.Duration, f func()) (stop func() bool)

	// Now returns the scheduler's clock.
	Now() time.Time
}

// Haptics produces the light impact felt when a button is pressed.
type Haptics interface {
	Impact()
}

// immediateAnimator jumps straight to the end of every animation.
type immediateAnimator struct{}

func (immediateAnimator) Animate(_ time.Duration, step func(float64), done func(bool)) {
	step(1)
	done(true)
}

// Option configures a Button or FloatingButton during creation.
//
// Example:
//
//	tl := motion.NewTimeline(time.Now())
//	b := neopop.NewButton(
//	    neopop.WithAnimator(tl),
//	    neopop.WithScheduler(tl),
//	)
type Option func(*options)

// options holds the collaborators of a button.
type options struct {
	config           Config
	animator         Animator
	scheduler        Scheduler
	haptics          Haptics
	delayTouchEvents bool
}

func defaultOptions() options {
	return options{
		config:           DefaultConfig(),
		animator:         immediateAnimator{},
		delayTouchEvents: true,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// now returns the scheduler's clock, or the wall clock without one.
func (o *options) now() time.Time {
	if o.scheduler != nil {
		return o.scheduler.Now()
	}
	return time.Now()
}

func (o *options) impact() {
	if o.haptics != nil {
		o.haptics.Impact()
	}
}

// WithConfig replaces the animation timings.
func WithConfig(c Config) Option {
	return func(o *options) {
		o.config = c
	}
}

// WithAnimator sets the animator that plays transitions. Without one,
// transitions complete immediately.
func WithAnimator(a Animator) Option {
	return func(o *options) {
		if a != nil {
			o.animator = a
		}
	}
}

// WithScheduler sets the scheduler used for shimmer delays and
// levitation. Without one, delays collapse to zero and levitation is
// unavailable.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithHaptics sets the haptic feedback generator.
func WithHaptics(h Haptics) Option {
	return func(o *options) {
		o.haptics = h
	}
}

// WithDelayTouchEvents controls whether TouchUpInside actions wait for the
// release transition to finish. The default is true.
func WithDelayTouchEvents(delay bool) Option {
	return func(o *options) {
		o.delayTouchEvents = delay
	}
}
