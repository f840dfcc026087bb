// Package synth builds and dispatches synthetic pointer events.
package synth

import (
	"errors"

	"github.com/lberan7/touchglide/internal/geom"
)

// EventType identifies the kind of pointer event.
type EventType string

const (
	// EventMove is a pointer move with no button pressed.
	EventMove EventType = "move"
	// EventDown is a button press.
	EventDown EventType = "down"
	// EventUp is a button release.
	EventUp EventType = "up"
)

// Button is a pointer button code.
type Button int

const (
	// ButtonNone means no button is involved.
	ButtonNone Button = -1
	// ButtonPrimary is the left mouse button.
	ButtonPrimary Button = 0
	// ButtonSecondary is the right mouse button.
	ButtonSecondary Button = 2
)

// Mask returns the held-buttons bitmask bit for the button.
func (b Button) Mask() int {
	switch b {
	case ButtonPrimary:
		return 1
	case ButtonSecondary:
		return 2
	default:
		return 0
	}
}

// PointerEvent is a synthesized pointer event in viewport coordinates.
type PointerEvent struct {
	Type    EventType
	X       float64
	Y       float64
	Button  Button
	Buttons int
}

// Sink dispatches synthesized pointer events onto a target surface.
type Sink interface {
	Dispatch(ev PointerEvent) error
}

// ErrNoSink indicates no dispatch target could be resolved.
var ErrNoSink = errors.New("no dispatch target available")

// Synthesizer converts semantic pointer actions into dispatched events.
//
// The sink is resolved fresh on every dispatch: the surface may not exist
// yet when the synthesizer is built, or may be replaced at runtime.
type Synthesizer struct {
	resolve func() Sink
}

// New returns a synthesizer dispatching through the given sink resolver.
func New(resolve func() Sink) *Synthesizer {
	return &Synthesizer{resolve: resolve}
}

// Move dispatches a move event at the cursor with no button pressed.
func (s *Synthesizer) Move(cursor geom.Point, viewport geom.Size) error {
	return s.dispatch(EventMove, cursor, viewport, ButtonNone)
}

// ButtonDown dispatches a button press at the cursor.
func (s *Synthesizer) ButtonDown(cursor geom.Point, viewport geom.Size, b Button) error {
	return s.dispatch(EventDown, cursor, viewport, b)
}

// ButtonUp dispatches a button release at the cursor.
func (s *Synthesizer) ButtonUp(cursor geom.Point, viewport geom.Size, b Button) error {
	return s.dispatch(EventUp, cursor, viewport, b)
}

// dispatch clamps the cursor to the viewport and sends one event.
func (s *Synthesizer) dispatch(typ EventType, cursor geom.Point, viewport geom.Size, b Button) error {
	sink := s.resolve()
	if sink == nil {
		return ErrNoSink
	}
	p := geom.ClampToSize(cursor, viewport)
	ev := PointerEvent{Type: typ, X: p.X, Y: p.Y, Button: b, Buttons: b.Mask()}
	if typ == EventMove {
		ev.Button = ButtonNone
		ev.Buttons = 0
	}
	return sink.Dispatch(ev)
}
