package neopop

import (
	"log/slog"
	"time"

	"github.com/gogpu/gg"
	"github.com/google/uuid"
)

// buttonFrames are the frames of a Button's parts in button coordinates.
type buttonFrames struct {
	selected Rect
	normal   Rect
	holder   Rect
	content  Rect
}

func (f buttonFrames) lerp(o buttonFrames, t float64) buttonFrames {
	return buttonFrames{
		selected: f.selected.Lerp(o.selected, t),
		normal:   f.normal.Lerp(o.normal, t),
		holder:   f.holder.Lerp(o.holder, t),
		content:  f.content.Lerp(o.content, t),
	}
}

// Button is a 3D pop button. It stacks the pressed-state view, the
// normal-state view, a corner tail and the face with its content. A press
// slides the normal view and the face towards the receding edge.
//
// A Button is not safe for concurrent use; all methods must be called on
// the goroutine that drives its Animator and Scheduler.
type Button struct {
	id   uuid.UUID
	opts options

	model      ButtonModel
	configured bool
	dm         DrawManager
	tail       CornerShape

	frame       Rect
	state       State
	highlighted bool
	enabled     bool
	alpha       float64

	inTransition bool
	presented    buttonFrames

	selected *View
	normal   *View

	static       StaticBorderColors
	staticHidden bool
	faceDisabled bool
	face         Shape
	staticLines  []Segment

	container Container
	content   *ContentContainer

	actions actions
	shimmer shimmerClock
	closed  bool
}

// NewButton returns an unconfigured button in StateUnknown. Call Configure
// before drawing it.
func NewButton(opts ...Option) *Button {
	b := &Button{
		id:       uuid.New(),
		opts:     newOptions(opts),
		enabled:  true,
		alpha:    1,
		selected: NewView(Rect{}),
		normal:   NewView(Rect{}),
		content:  NewContentContainer(),
	}
	b.container = b.content
	return b
}

func (b *Button) logger() *slog.Logger {
	return Logger().With(slog.String("button", b.id.String()))
}

// ID returns the button's unique identifier.
func (b *Button) ID() uuid.UUID { return b.id }

// Configure applies m and redraws every part of the button. The current
// highlight is applied without animation.
func (b *Button) Configure(m ButtonModel) {
	b.model = m
	b.configured = true
	b.dm = m.Direction.DrawManager()
	b.tail = b.dm.CornerTail(m.Position)

	b.selected.Configure(HighlightedViewModel(m))
	disabled := b.state == StateDisabled
	nm, static := NormalViewModel(m, disabled)
	b.normal.Configure(nm)
	b.static = static
	b.staticHidden = disabled
	b.faceDisabled = disabled

	b.presented = b.targetFrames(b.state.IsHighlighted())
	b.applyHighlight(b.highlighted, false)
	b.relayout()
	b.logger().Debug("neopop: button configured",
		slog.String("direction", m.Direction.String()),
		slog.String("position", m.Position.String()))
}

// Model returns the applied model.
func (b *Button) Model() ButtonModel { return b.model }

// State returns the current state.
func (b *Button) State() State { return b.state }

// IsHighlighted reports the live highlight, which may run ahead of the
// visual state while a transition plays.
func (b *Button) IsHighlighted() bool { return b.highlighted }

// IsEnabled reports whether the button accepts touches.
func (b *Button) IsEnabled() bool { return b.enabled }

// Alpha returns the button's opacity.
func (b *Button) Alpha() float64 { return b.alpha }

// InTransition reports whether a press or release transition is playing.
func (b *Button) InTransition() bool { return b.inTransition }

// Tail returns the corner tail drawn for the configured position.
func (b *Button) Tail() CornerShape { return b.tail }

// SetFrame places the button in its parent. A size change after
// configuration re-lays the face and the static borders, and restarts an
// active shimmer.
func (b *Button) SetFrame(r Rect) {
	old := b.frame
	b.frame = r
	if old.SameSize(r) || !b.configured {
		return
	}
	b.presented = b.targetFrames(b.state.IsHighlighted())
	b.relayout()
	if b.shimmer.active {
		b.scheduleShimmer()
	}
}

// Frame returns the button's frame.
func (b *Button) Frame() Rect { return b.frame }

func (b *Button) bounds() Rect { return Rect{Width: b.frame.Width, Height: b.frame.Height} }

// SetHighlighted changes the live highlight. Changes in the loading,
// success and disabled states are recorded but not shown.
func (b *Button) SetHighlighted(h bool) {
	if h == b.highlighted {
		return
	}
	b.highlighted = h
	b.applyHighlight(h, true)
}

func (b *Button) applyHighlight(h bool, animate bool) {
	if b.state.frozen() {
		return
	}
	target := StateNormal
	if h {
		target = StatePressed
	}
	b.changeUIWithState(target, animate)
}

// changeUIWithState commits s at once and plays the visual transition to
// it. Requests arriving during a transition are dropped; the completion
// re-applies the live highlight if it no longer matches.
func (b *Button) changeUIWithState(s State, animate bool) {
	if b.inTransition {
		b.logger().Debug("neopop: transition dropped", slog.String("target", s.String()))
		return
	}
	if b.state != s {
		b.state = s
		if animate && s == StatePressed {
			b.opts.impact()
		}
	}
	b.inTransition = true

	toNormal := s != StatePressed
	from := b.presented
	to := b.targetFrames(!toNormal)
	if !animate || !b.configured {
		b.presented = to
		b.inTransition = false
		if b.configured {
			b.relayout()
		}
		return
	}

	b.opts.animator.Animate(b.opts.config.PressDuration,
		func(p float64) {
			if !b.closed {
				b.presented = from.lerp(to, p)
				b.relayout()
			}
		},
		func(finished bool) {
			if b.closed {
				return
			}
			b.inTransition = false
			if finished && b.state.IsHighlighted() != b.highlighted {
				b.applyHighlight(b.highlighted, true)
			}
			if finished && toNormal {
				b.actions.fire()
			}
		})
}

// targetFrames computes the resting frames of the pressed or released
// layout.
func (b *Button) targetFrames(pressed bool) buttonFrames {
	bounds := b.bounds()
	if b.dm == nil {
		return buttonFrames{selected: bounds, normal: bounds, holder: bounds, content: bounds}
	}
	var normal Insets
	if pressed {
		normal = b.dm.NormalStateInsets(b.model)
	}
	holder := bounds.Inset(b.dm.FaceInsets(b.model))
	return buttonFrames{
		selected: bounds,
		normal:   bounds.Inset(normal),
		holder:   holder,
		content:  holder.Inset(b.dm.ContentTransitionInsets(pressed, b.model)),
	}
}

// relayout recomputes the geometry that depends on the button's size.
func (b *Button) relayout() {
	bounds := b.bounds()
	b.selected.SetBounds(b.presented.selected)
	b.normal.SetBounds(b.presented.normal)
	b.face = FaceShape(Rect{Width: b.presented.content.Width, Height: b.presented.content.Height}, b.model, b.faceDisabled)
	b.staticLines = nil
	if !b.staticHidden {
		b.staticLines = b.dm.StaticBorders(b.static, bounds, b.model.BorderWidth, b.model.edgeLength())
	}
}

// ChangeState moves the button to s and reports whether it did. Moving to
// the current state, StatePressed or StateUnknown is rejected; the pressed
// state is reached only through SetHighlighted.
func (b *Button) ChangeState(s State) bool {
	if s == b.state || s == StatePressed || s == StateUnknown {
		b.logger().Debug("neopop: state change rejected",
			slog.String("from", b.state.String()), slog.String("to", s.String()))
		return false
	}

	if b.state == StateDisabled && b.configured {
		nm, static := NormalViewModel(b.model, false)
		b.normal.Configure(nm)
		b.static = static
		b.faceDisabled = false
		b.staticHidden = false
		b.relayout()
	}
	b.alpha = 1

	switch s {
	case StateNormal:
		b.enabled = true
	case StateLoading, StateSuccess:
		b.enabled = false
	case StateDisabledWithOpacity:
		b.enabled = false
		b.alpha = 0.6
	case StateDisabled:
		b.enabled = false
		if b.configured {
			nm, _ := NormalViewModel(b.model, true)
			b.normal.Configure(nm)
			b.faceDisabled = true
			b.staticHidden = true
			b.relayout()
		}
	}

	from := b.state
	b.state = s
	switch {
	case s.IsDisabled():
		b.shimmer.cancel()
	case from.IsDisabled() && b.shimmer.active:
		b.scheduleShimmer()
	}
	if b.container != nil {
		b.container.UpdateOnStateChange(s)
	}
	b.logger().Info("neopop: state changed",
		slog.String("from", from.String()), slog.String("to", s.String()))
	return true
}

// TouchDown starts a press.
func (b *Button) TouchDown() {
	if !b.enabled {
		return
	}
	b.actions.dispatch(EventTouchDown, b.opts.delayTouchEvents)
	b.SetHighlighted(true)
}

// TouchUp ends a press. Tap handlers run once the release transition has
// finished, or at once when touch events are not delayed.
func (b *Button) TouchUp(inside bool) {
	if !b.enabled {
		return
	}
	ev := EventTouchUpOutside
	if inside {
		ev = EventTouchUpInside
	}
	b.actions.dispatch(ev, b.opts.delayTouchEvents)
	b.SetHighlighted(false)
	if !b.inTransition {
		b.actions.fire()
	}
}

// TouchCancel abandons a press without a tap.
func (b *Button) TouchCancel() {
	b.actions.dispatch(EventTouchCancel, b.opts.delayTouchEvents)
	b.SetHighlighted(false)
}

// On registers fn for ev.
func (b *Button) On(ev ControlEvent, fn func()) { b.actions.on(ev, fn) }

// OnTap registers fn for EventTouchUpInside.
func (b *Button) OnTap(fn func()) { b.actions.on(EventTouchUpInside, fn) }

// SendAction delivers fn for ev. With delayed touch events, a
// TouchUpInside action is held until the release transition completes;
// a later action replaces a held one.
func (b *Button) SendAction(ev ControlEvent, fn func()) {
	if fn == nil {
		return
	}
	b.actions.send(ev, b.opts.delayTouchEvents, fn)
	if ev == EventTouchUpInside && !b.inTransition && !b.highlighted {
		b.actions.fire()
	}
}

// StartShimmer starts the shimmer after delay. repeat <= 0 repeats
// forever. Disabled buttons do not shimmer.
func (b *Button) StartShimmer(repeat int, delay time.Duration) {
	b.shimmer.active = true
	b.shimmer.repeat = repeat
	b.shimmer.delay = delay
	b.scheduleShimmer()
}

func (b *Button) scheduleShimmer() {
	if b.state.IsDisabled() || b.closed {
		b.shimmer.cancel()
		return
	}
	b.shimmer.schedule(&b.opts)
}

// EndShimmer stops the shimmer and any pending start.
func (b *Button) EndShimmer() {
	b.shimmer.active = false
	b.shimmer.cancel()
}

// IsShimmering reports whether shimmer strips are being drawn.
func (b *Button) IsShimmering() bool { return b.shimmer.running }

// SetContainer replaces the face content.
func (b *Button) SetContainer(c Container) {
	b.container = c
}

// RemoveContainer removes the face content.
func (b *Button) RemoveContainer() {
	b.container = nil
}

// ConfigureContent configures the default content container. It does
// nothing when a custom container was set.
func (b *Button) ConfigureContent(m ContentModel) error {
	if b.container != Container(b.content) {
		return nil
	}
	return b.content.Configure(m)
}

// Close stops pending timers. Callbacks that fire afterwards are ignored.
func (b *Button) Close() {
	b.closed = true
	b.shimmer.cancel()
	b.actions.armed = nil
}

// DisplayList returns the button's drawing instructions at its frame.
func (b *Button) DisplayList() DisplayList {
	var l DisplayList
	if !b.configured || b.frame.IsEmpty() {
		return l
	}
	ox, oy := b.frame.X, b.frame.Y
	at := func(r Rect) Rect { return r.Offset(ox, oy) }
	f := b.presented

	grouped := l.pushAlpha(b.alpha)
	l.pushClipRect(b.frame)

	b.selected.AppendTo(&l, at(f.selected))
	b.normal.AppendTo(&l, at(f.normal))

	if corner, ok := b.dm.TailAnchor(); ok && !b.tail.None() {
		size := b.model.edgeLength()
		r := at(tailRect(f.content, corner, size))
		tail := TailShape(b.tail, size, b.model.Background, b.model.FaceBorderColors, b.model.BorderWidth)
		l.shape(tail, r.X, r.Y)
	}

	content := at(f.content)
	l.pushClipRect(at(f.holder))
	l.shape(b.face, content.X, content.Y)
	if elapsed, ok := b.shimmer.elapsed(b.opts.now()); ok {
		st := b.model.Shimmer
		for _, p := range st.Strips(Rect{Width: content.Width, Height: content.Height}, elapsed, b.shimmer.repeat) {
			l.fill(p.Offset(content.X, content.Y), st.Color)
		}
	}
	l.content(b.container, content)
	l.popClip()

	for _, s := range b.staticLines {
		l.stroke(s.Offset(ox, oy))
	}

	l.popClip()
	if grouped {
		l.popAlpha()
	}
	return l
}

// Draw paints the button with dc.
func (b *Button) Draw(dc *gg.Context) error {
	l := b.DisplayList()
	return l.Draw(dc)
}
