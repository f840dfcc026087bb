// Package track resolves multi-touch input into a single logical pointer.
package track

import "github.com/lberan7/touchglide/internal/geom"

// Phase identifies the lifecycle stage of a touch frame.
type Phase string

const (
	// PhaseStart reports newly-began contacts.
	PhaseStart Phase = "start"
	// PhaseMove reports contacts that changed position.
	PhaseMove Phase = "move"
	// PhaseEnd reports contacts lifted from the surface.
	PhaseEnd Phase = "end"
	// PhaseCancel reports contacts aborted by the environment.
	PhaseCancel Phase = "cancel"
)

// Sample is one contact point within a frame.
type Sample struct {
	ID int
	X  float64
	Y  float64
}

// Frame is one batched touch notification: the changed contacts for a phase.
type Frame struct {
	Phase   Phase
	Touches []Sample
}

// NoOwner marks the tracker as not owning any touch.
const NoOwner = -1

// Tracker owns the single active touch and the shared cursor state.
type Tracker struct {
	owner  int
	cursor geom.Point
}

// New returns a tracker with the cursor at the given starting position.
func New(start geom.Point) *Tracker {
	return &Tracker{owner: NoOwner, cursor: start}
}

// Cursor returns the current cursor position.
func (t *Tracker) Cursor() geom.Point {
	return t.cursor
}

// Owner returns the owned touch identifier, or NoOwner.
func (t *Tracker) Owner() int {
	return t.owner
}

// Handle processes one touch frame and reports whether the cursor moved.
//
// The first contact of a start frame is adopted when no touch is owned; its
// landing position is itself a move (direct hover, no pickup phase). A frame
// that does not mention the owned identifier changes nothing: the owner is
// only released by an end or cancel frame that names it, and lifting the
// owner never moves the cursor.
func (t *Tracker) Handle(f Frame) bool {
	switch f.Phase {
	case PhaseStart, PhaseMove:
		return t.handleContact(f)
	case PhaseEnd, PhaseCancel:
		t.handleRelease(f)
		return false
	default:
		return false
	}
}

// handleContact adopts or follows the owned touch for start/move frames.
func (t *Tracker) handleContact(f Frame) bool {
	if t.owner == NoOwner {
		if f.Phase != PhaseStart || len(f.Touches) == 0 {
			return false
		}
		// Concurrent starts in one frame: first in frame order wins.
		s := f.Touches[0]
		t.owner = s.ID
		t.cursor = geom.Point{X: s.X, Y: s.Y}
		return true
	}
	for _, s := range f.Touches {
		if s.ID == t.owner {
			t.cursor = geom.Point{X: s.X, Y: s.Y}
			return true
		}
	}
	return false
}

// handleRelease clears ownership when an end/cancel frame names the owner.
func (t *Tracker) handleRelease(f Frame) {
	if t.owner == NoOwner {
		return
	}
	for _, s := range f.Touches {
		if s.ID == t.owner {
			t.owner = NoOwner
			return
		}
	}
}
