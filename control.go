package neopop

import (
	"fmt"

	"github.com/gogpu/gg"
)

// State is the interaction state of a Button.
type State uint8

const (
	StateUnknown State = iota
	StateNormal
	StatePressed
	StateLoading
	StateSuccess
	StateDisabled
	StateDisabledWithOpacity
)

var stateNames = [...]string{
	StateUnknown:             "unknown",
	StateNormal:              "normal",
	StatePressed:             "pressed",
	StateLoading:             "loading",
	StateSuccess:             "success",
	StateDisabled:            "disabled",
	StateDisabledWithOpacity: "disabledWithOpacity",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// IsHighlighted reports whether s is the pressed state.
func (s State) IsHighlighted() bool { return s == StatePressed }

// IsDisabled reports whether s is either disabled state.
func (s State) IsDisabled() bool { return s == StateDisabled || s == StateDisabledWithOpacity }

// frozen reports whether highlight changes are ignored in s.
func (s State) frozen() bool {
	return s == StateLoading || s == StateSuccess || s.IsDisabled()
}

// Container is the content drawn on a button face. The default is a
// ContentContainer; any type implementing Container can replace it.
type Container interface {
	// UpdateOnStateChange is called on every accepted state change.
	UpdateOnStateChange(s State)

	// Draw paints the content into r.
	Draw(dc *gg.Context, r Rect) error
}

// ControlEvent is a touch event delivered to action handlers.
type ControlEvent uint8

const (
	EventTouchDown ControlEvent = iota
	EventTouchDownRepeat
	EventTouchDragInside
	EventTouchDragEnter
	EventTouchDragExit
	EventTouchDragOutside
	EventTouchUpInside
	EventTouchUpOutside
	EventTouchCancel
)

var controlEventNames = [...]string{
	EventTouchDown:        "touchDown",
	EventTouchDownRepeat:  "touchDownRepeat",
	EventTouchDragInside:  "touchDragInside",
	EventTouchDragEnter:   "touchDragEnter",
	EventTouchDragExit:    "touchDragExit",
	EventTouchDragOutside: "touchDragOutside",
	EventTouchUpInside:    "touchUpInside",
	EventTouchUpOutside:   "touchUpOutside",
	EventTouchCancel:      "touchCancel",
}

func (e ControlEvent) String() string {
	if int(e) < len(controlEventNames) {
		return controlEventNames[e]
	}
	return fmt.Sprintf("ControlEvent(%d)", uint8(e))
}

// TouchPhase is the phase of a Touch.
type TouchPhase uint8

const (
	PhaseBegan TouchPhase = iota
	PhaseMoved
	PhaseStationary
	PhaseEnded
	PhaseCancelled
)

// Touch is a single touch sample in the button's local coordinates.
type Touch struct {
	Phase    TouchPhase
	Location gg.Point
	Previous gg.Point
	TapCount int
}

// ControlEventFor maps a touch on a control with the given local bounds to
// the control event it produces. ok is false when the touch produces none,
// as for a touch that begins outside the bounds or a stationary touch.
func ControlEventFor(t Touch, bounds Rect) (ev ControlEvent, ok bool) {
	inside := bounds.Contains(t.Location)
	wasInside := bounds.Contains(t.Previous)
	switch t.Phase {
	case PhaseBegan:
		if !inside {
			return 0, false
		}
		if t.TapCount > 1 {
			return EventTouchDownRepeat, true
		}
		return EventTouchDown, true
	case PhaseMoved:
		switch {
		case inside && wasInside:
			return EventTouchDragInside, true
		case inside:
			return EventTouchDragEnter, true
		case wasInside:
			return EventTouchDragExit, true
		}
		return EventTouchDragOutside, true
	case PhaseEnded:
		if inside {
			return EventTouchUpInside, true
		}
		return EventTouchUpOutside, true
	case PhaseCancelled:
		return EventTouchCancel, true
	}
	return 0, false
}

// actions dispatches control events to handlers. TouchUpInside handlers
// may be held in an armed slot until the release transition completes.
type actions struct {
	handlers map[ControlEvent][]func()
	armed    func()
}

func (a *actions) on(ev ControlEvent, fn func()) {
	if fn == nil {
		return
	}
	if a.handlers == nil {
		a.handlers = make(map[ControlEvent][]func())
	}
	a.handlers[ev] = append(a.handlers[ev], fn)
}

// dispatch sends ev to its registered handlers.
func (a *actions) dispatch(ev ControlEvent, delay bool) {
	hs := a.handlers[ev]
	if len(hs) == 0 {
		return
	}
	a.send(ev, delay, func() {
		for _, h := range hs {
			h()
		}
	})
}

// send calls fn now, or arms it when delay is set and ev is
// TouchUpInside. A newer armed callback replaces an older one.
func (a *actions) send(ev ControlEvent, delay bool, fn func()) {
	if delay && ev == EventTouchUpInside {
		a.armed = fn
		return
	}
	fn()
}

// fire calls the armed callback, if any, exactly once.
func (a *actions) fire() {
	fn := a.armed
	a.armed = nil
	if fn != nil {
		fn()
	}
}
