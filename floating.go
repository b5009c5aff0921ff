package neopop

import (
	"log/slog"
	"time"

	"github.com/gogpu/gg"
	"github.com/google/uuid"
)

// FloatingModel configures a FloatingButton.
type FloatingModel struct {
	Background  gg.RGBA
	ShadowColor gg.RGBA
	// EdgeWidth is the depth of the bottom edge.
	EdgeWidth float64
	// CustomEdgeColor overrides the derived bottom edge color.
	CustomEdgeColor *gg.RGBA
	BorderColor     *gg.RGBA
	BorderWidth     float64

	Shimmer FloatingShimmer

	// DisabledBackground is the face color after disabling without alpha.
	DisabledBackground gg.RGBA
}

// NewFloatingModel returns the stock floating model: a white face over a
// black shadow with a 10-point edge.
func NewFloatingModel() FloatingModel {
	return FloatingModel{
		Background:         gg.White,
		ShadowColor:        gg.Black,
		EdgeWidth:          10,
		Shimmer:            DefaultFloatingShimmer(),
		DisabledBackground: gg.RGBA2(1, 1, 1, 0.3),
	}
}

// Movement ratios of the visible shadow height.
const (
	touchDownFloatRatio  = 0.5
	touchDownShadowRatio = 0.5
	levitateFloatRatio   = 0.4
	levitateShadowRatio  = 0.2
)

// floatPos is the vertical placement of the floating face and its shadow.
type floatPos struct {
	// floatTop is the face's offset from the top of the bounds.
	floatTop float64
	// shadowTop is the shadow's offset from the top of the bounds.
	shadowTop float64
}

func (p floatPos) lerp(o floatPos, t float64) floatPos {
	return floatPos{floatTop: lerp(p.floatTop, o.floatTop, t), shadowTop: lerp(p.shadowTop, o.shadowTop, t)}
}

// FloatingButton is a slanted button hovering over its shadow. Pressing it
// sinks the face onto the shadow; while idle it can levitate.
//
// A FloatingButton is not safe for concurrent use.
type FloatingButton struct {
	id   uuid.UUID
	opts options

	model      FloatingModel
	configured bool
	frame      Rect

	floating *View
	shadow   *View

	pos    floatPos
	motion uint64

	highlighted     bool
	moving          bool
	levitationArmed bool
	disabled        bool
	disabledAlpha   bool
	disableNext     *bool
	endedInside     bool
	floatAlpha      float64
	shadowAlpha     float64
	levitating      bool
	levitationStop  func() bool
	levitationGen   uint64

	container Container
	content   *ContentContainer

	actions actions
	shimmer shimmerClock
	closed  bool
}

// NewFloatingButton returns an unconfigured floating button.
func NewFloatingButton(opts ...Option) *FloatingButton {
	b := &FloatingButton{
		id:              uuid.New(),
		opts:            newOptions(opts),
		model:           NewFloatingModel(),
		floating:        NewView(Rect{}),
		shadow:          NewView(Rect{}),
		floatAlpha:      1,
		shadowAlpha:     1,
		levitationArmed: true,
		content:         NewContentContainer(),
	}
	b.container = b.content
	return b
}

func (b *FloatingButton) logger() *slog.Logger {
	return Logger().With(slog.String("button", b.id.String()))
}

// ID returns the button's unique identifier.
func (b *FloatingButton) ID() uuid.UUID { return b.id }

// Configure applies m and places the button at rest.
func (b *FloatingButton) Configure(m FloatingModel) {
	b.model = m
	b.configured = true
	b.normalStateSetup()
	if b.container != nil {
		b.container.UpdateOnStateChange(StateNormal)
	}
}

// Model returns the applied model.
func (b *FloatingButton) Model() FloatingModel { return b.model }

func (b *FloatingButton) normalStateSetup() {
	b.reconfigureViews()
	b.updateButton(b.highlighted, false, false, false)
}

// Inclination returns the slant of the face for the current height.
func (b *FloatingButton) Inclination() float64 {
	if b.model.EdgeWidth <= 0 {
		return 0
	}
	return (b.frame.Height / 50 * 15) / b.model.EdgeWidth
}

func (b *FloatingButton) direction() EdgeDirection {
	return Bottom().WithInclination(b.Inclination())
}

// reconfigureViews recomputes both views. It does nothing while the
// inclination is zero, as before the button has a height.
func (b *FloatingButton) reconfigureViews() {
	incl := b.Inclination()
	if incl == 0 {
		return
	}
	w, h, e := b.frame.Width, b.frame.Height, b.model.EdgeWidth
	b.floating.SetBounds(Rect{Width: w, Height: h})
	b.shadow.SetBounds(Rect{Width: w - 2*e, Height: h})

	if b.disabled && !b.disabledAlpha {
		b.floating.Configure(b.disabledViewModel())
	} else {
		fm := ViewModel{
			Direction:           b.direction(),
			EdgeDepth:           e,
			Background:          b.model.Background,
			HorizontalEdgeColor: b.model.CustomEdgeColor,
			BorderWidth:         b.model.BorderWidth,
		}
		if b.model.BorderColor != nil {
			fm.CenterBorderColors = AllEdges(*b.model.BorderColor)
		}
		b.floating.Configure(fm)
	}
	b.shadow.Configure(ViewModel{
		Direction:      b.direction(),
		EdgeVisibility: EdgeVisibility{HideBottom: true},
		EdgeDepth:      e,
		Background:     b.model.ShadowColor,
	})
}

func (b *FloatingButton) disabledViewModel() ViewModel {
	return ViewModel{
		Direction:  b.direction(),
		EdgeDepth:  b.model.EdgeWidth,
		Background: b.model.DisabledBackground,
	}
}

// SetFrame places the button in its parent. A size change re-slants the
// views and re-seats the button at rest.
func (b *FloatingButton) SetFrame(r Rect) {
	old := b.frame
	b.frame = r
	if old.SameSize(r) || !b.configured {
		return
	}
	b.reconfigureViews()
	if !b.moving {
		if b.highlighted || b.disabled {
			b.pos = b.downPos(false)
		} else {
			b.pos = b.upPos()
		}
	}
}

// Frame returns the button's frame.
func (b *FloatingButton) Frame() Rect { return b.frame }

func (b *FloatingButton) shadowOffset() float64 {
	return b.frame.Height/4 + b.model.EdgeWidth
}

func (b *FloatingButton) visibleShadow() float64 {
	return b.shadowOffset() - b.model.EdgeWidth
}

func (b *FloatingButton) downPos(levitating bool) floatPos {
	fr, sr := touchDownFloatRatio, touchDownShadowRatio
	if levitating {
		fr, sr = levitateFloatRatio, levitateShadowRatio
	}
	v := b.visibleShadow()
	return floatPos{floatTop: v * fr, shadowTop: v*(1-sr) + b.model.EdgeWidth}
}

func (b *FloatingButton) upPos() floatPos {
	return floatPos{shadowTop: b.shadowOffset()}
}

// IsHighlighted reports the live highlight.
func (b *FloatingButton) IsHighlighted() bool { return b.highlighted }

// IsDisabled reports whether the button is disabled.
func (b *FloatingButton) IsDisabled() bool { return b.disabled }

// IsMoving reports whether a touch movement is playing.
func (b *FloatingButton) IsMoving() bool { return b.moving }

// SetHighlighted changes the live highlight and moves the face.
func (b *FloatingButton) SetHighlighted(h bool) {
	if h == b.highlighted {
		return
	}
	b.highlighted = h
	b.updateButton(h, true, false, true)
}

// updateButton moves the face down (h) or up. Nothing moves while a touch
// movement plays, while disabled, or for a levitation while levitation is
// suspended by a touch.
func (b *FloatingButton) updateButton(h, animate, levitating, haptic bool) {
	if b.moving || (!b.levitationArmed && levitating) || b.disabled {
		return
	}
	if b.endedInside && !h && !levitating && b.disableNext != nil {
		b.triggerDisable(*b.disableNext)
		return
	}

	b.moving = !levitating
	toNormal := !h
	var target floatPos
	if h {
		if !levitating {
			b.levitationArmed = false
		}
		target = b.downPos(levitating)
	} else {
		b.levitationArmed = true
		target = b.upPos()
	}
	if haptic && h {
		b.opts.impact()
	}

	if !animate {
		b.motion++
		b.pos = target
		b.moving = false
		return
	}

	c := b.opts.config
	d := c.FloatingTouchUp
	switch {
	case levitating:
		d = c.Levitation
	case h:
		d = c.FloatingTouchDown
	}
	b.moveTo(target, d, func(finished bool) {
		b.moving = false
		if b.endedInside && finished && h && !levitating && b.disableNext != nil {
			b.triggerDisable(*b.disableNext)
			return
		}
		if finished && toNormal {
			b.actions.fire()
		}
		if h != b.highlighted {
			b.updateButton(b.highlighted, true, levitating, false)
		}
	})
}

// moveTo animates the face to target. A newer movement supersedes an
// older one; the older one's steps and completion are ignored.
func (b *FloatingButton) moveTo(target floatPos, d time.Duration, done func(finished bool)) {
	b.motion++
	gen := b.motion
	from := b.pos
	b.opts.animator.Animate(d,
		func(p float64) {
			if !b.closed && gen == b.motion {
				b.pos = from.lerp(target, p)
			}
		},
		func(finished bool) {
			if b.closed || gen != b.motion {
				return
			}
			if done != nil {
				done(finished)
			}
		})
}

// TouchDown starts a press.
func (b *FloatingButton) TouchDown() {
	if b.disabled {
		return
	}
	b.endedInside = false
	b.actions.dispatch(EventTouchDown, b.opts.delayTouchEvents)
	b.SetHighlighted(true)
}

// TouchUp ends a press.
func (b *FloatingButton) TouchUp(inside bool) {
	if b.disabled {
		return
	}
	b.endedInside = inside
	ev := EventTouchUpOutside
	if inside {
		ev = EventTouchUpInside
	}
	b.actions.dispatch(ev, b.opts.delayTouchEvents)
	b.SetHighlighted(false)
	if !b.moving {
		b.actions.fire()
	}
}

// TouchCancel abandons a press.
func (b *FloatingButton) TouchCancel() {
	b.endedInside = false
	b.actions.dispatch(EventTouchCancel, b.opts.delayTouchEvents)
	b.SetHighlighted(false)
}

// On registers fn for ev.
func (b *FloatingButton) On(ev ControlEvent, fn func()) { b.actions.on(ev, fn) }

// OnTap registers fn for EventTouchUpInside.
func (b *FloatingButton) OnTap(fn func()) { b.actions.on(EventTouchUpInside, fn) }

// SendAction delivers fn for ev, holding TouchUpInside actions until the
// release movement completes when touch events are delayed.
func (b *FloatingButton) SendAction(ev ControlEvent, fn func()) {
	if fn == nil {
		return
	}
	b.actions.send(ev, b.opts.delayTouchEvents, fn)
	if ev == EventTouchUpInside && !b.moving && !b.highlighted {
		b.actions.fire()
	}
}

// DisableImmediately sinks and disables the button. withAlpha fades the
// face and hides the shadow instead of greying the face.
func (b *FloatingButton) DisableImmediately(withAlpha bool) {
	if b.disabled {
		return
	}
	b.changeToDisabled(withAlpha)
}

// DisableOnNextClick disables the button when the next tap completes.
func (b *FloatingButton) DisableOnNextClick(withAlpha bool) {
	if b.disabled {
		return
	}
	b.disableNext = &withAlpha
}

// Enable restores a disabled button and cancels a pending
// DisableOnNextClick.
func (b *FloatingButton) Enable() {
	b.disableNext = nil
	if !b.disabled {
		return
	}
	b.disabled = false
	b.disabledAlpha = false
	b.floatAlpha, b.shadowAlpha = 1, 1
	b.reconfigureViews()
	b.levitationArmed = true
	b.moving = false
	if b.container != nil {
		b.container.UpdateOnStateChange(StateNormal)
	}
	target := b.upPos()
	if b.highlighted {
		target = b.downPos(false)
	}
	b.moveTo(target, b.opts.config.FloatingTouchUp, nil)
}

func (b *FloatingButton) triggerDisable(withAlpha bool) {
	b.changeToDisabled(withAlpha)
	b.actions.fire()
	b.disableNext = nil
}

func (b *FloatingButton) changeToDisabled(withAlpha bool) {
	b.disabled = true
	b.disabledAlpha = withAlpha
	b.moving = false
	b.moveTo(b.downPos(false), b.opts.config.FloatingTouchDown, nil)
	b.StopLevitating()
	b.EndShimmer()

	state := StateDisabled
	if withAlpha {
		state = StateDisabledWithOpacity
	}
	if b.container != nil {
		b.container.UpdateOnStateChange(state)
	}
	b.logger().Info("neopop: floating button disabled", slog.Bool("alpha", withAlpha))

	if !withAlpha {
		if b.Inclination() != 0 {
			b.floating.Configure(b.disabledViewModel())
		}
		return
	}
	b.floatAlpha = 0.5
	b.shadowAlpha = 0
}

// StartLevitating bobs the face every 2.5 levitation periods, starting at
// once. It needs a Scheduler.
func (b *FloatingButton) StartLevitating() {
	b.StopLevitating()
	s := b.opts.scheduler
	if s == nil {
		b.logger().Warn("neopop: levitation needs a scheduler")
		return
	}
	b.levitating = true
	gen := b.levitationGen
	var tick func()
	tick = func() {
		if b.closed || gen != b.levitationGen {
			return
		}
		b.levitationStop = s.AfterFunc(b.opts.config.levitationPeriod(), tick)
		if b.levitationArmed {
			b.updateButton(true, true, true, false)
		}
	}
	b.levitationStop = s.AfterFunc(0, tick)
}

// StopLevitating cancels the levitation timer. A movement already playing
// completes.
func (b *FloatingButton) StopLevitating() {
	b.levitationGen++
	b.levitating = false
	if b.levitationStop != nil {
		b.levitationStop()
		b.levitationStop = nil
	}
}

// IsLevitating reports whether the levitation timer runs.
func (b *FloatingButton) IsLevitating() bool { return b.levitating }

// StartShimmer starts the shimmer after delay. repeat <= 0 repeats forever.
func (b *FloatingButton) StartShimmer(repeat int, delay time.Duration) {
	b.shimmer.active = true
	b.shimmer.repeat = repeat
	b.shimmer.delay = delay
	b.shimmer.schedule(&b.opts)
}

// SetShimmer replaces the shimmer model.
func (b *FloatingButton) SetShimmer(s FloatingShimmer) {
	b.model.Shimmer = s
}

// EndShimmer stops the shimmer and any pending start.
func (b *FloatingButton) EndShimmer() {
	b.shimmer.active = false
	b.shimmer.cancel()
}

// IsShimmering reports whether shimmer strips are being drawn.
func (b *FloatingButton) IsShimmering() bool { return b.shimmer.running }

// SetContainer replaces the content.
func (b *FloatingButton) SetContainer(c Container) { b.container = c }

// RemoveContainer removes the content.
func (b *FloatingButton) RemoveContainer() { b.container = nil }

// ConfigureContent configures the default content container. It does
// nothing when a custom container was set.
func (b *FloatingButton) ConfigureContent(m ContentModel) error {
	if b.container != Container(b.content) {
		return nil
	}
	return b.content.Configure(m)
}

// Close stops the levitation and shimmer timers.
func (b *FloatingButton) Close() {
	b.closed = true
	b.StopLevitating()
	b.shimmer.cancel()
	b.actions.armed = nil
}

// FloatingFrame returns the frame of the face in button coordinates.
func (b *FloatingButton) FloatingFrame() Rect {
	return Rect{Y: b.pos.floatTop, Width: b.frame.Width, Height: b.frame.Height}
}

// ShadowFrame returns the frame of the shadow in button coordinates. The
// shadow may extend below the bounds.
func (b *FloatingButton) ShadowFrame() Rect {
	e := b.model.EdgeWidth
	return Rect{X: e, Y: b.pos.shadowTop, Width: b.frame.Width - 2*e, Height: b.frame.Height}
}

// ContentFrame returns the frame of the content in button coordinates:
// the face raised by half the edge depth.
func (b *FloatingButton) ContentFrame() Rect {
	f := b.FloatingFrame()
	f.Y -= b.model.EdgeWidth / 2
	return f
}

// DisplayList returns the button's drawing instructions at its frame.
func (b *FloatingButton) DisplayList() DisplayList {
	var l DisplayList
	if !b.configured || b.frame.IsEmpty() {
		return l
	}
	ox, oy := b.frame.X, b.frame.Y

	if b.shadowAlpha > 0 {
		grouped := l.pushAlpha(b.shadowAlpha)
		b.shadow.AppendTo(&l, b.ShadowFrame().Offset(ox, oy))
		if grouped {
			l.popAlpha()
		}
	}

	grouped := l.pushAlpha(b.floatAlpha)
	ff := b.FloatingFrame().Offset(ox, oy)
	b.floating.AppendTo(&l, ff)

	if elapsed, ok := b.shimmer.elapsed(b.opts.now()); ok {
		size := Rect{Width: ff.Width, Height: ff.Height}
		if fr, ok := b.model.Shimmer.Frame(size, b.Inclination(), b.model.EdgeWidth, elapsed, b.shimmer.repeat); ok {
			l.pushClipPolygon(fr.Mask.Offset(ff.X, ff.Y))
			for _, p := range fr.Strips {
				l.fill(p.Offset(ff.X, ff.Y), fr.EdgeColor)
			}
			l.pushClipPolygon(fr.Face.Offset(ff.X, ff.Y))
			for _, p := range fr.Strips {
				l.fill(p.Offset(ff.X, ff.Y), fr.FaceColor)
			}
			l.popClip()
			l.popClip()
		}
	}

	l.content(b.container, b.ContentFrame().Offset(ox, oy))
	if grouped {
		l.popAlpha()
	}
	return l
}

// Draw paints the button with dc.
func (b *FloatingButton) Draw(dc *gg.Context) error {
	l := b.DisplayList()
	return l.Draw(dc)
}
