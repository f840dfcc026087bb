// Package session holds runtime state for the active overlay.
package session

import (
	"sync"

	"github.com/lberan7/touchglide/internal/geom"
)

// Snapshot is a read-only view of the current session state.
type Snapshot struct {
	Viewport     geom.Size
	TouchCapable bool
	InputEnabled bool
}

// Session is the shared state between the control channel and HTTP handlers.
//
// Cursor state lives in the tracker, scoped to the active connection; the
// session only carries what outlives a connection.
type Session struct {
	mu           sync.RWMutex
	viewport     geom.Size
	touchCapable bool
	inputEnabled bool
}

// New returns an initialized session with input forwarding enabled.
func New() *Session {
	return &Session{inputEnabled: true}
}

// SetViewport records the latest reported viewport geometry.
func (s *Session) SetViewport(size geom.Size) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport = size
}

// Viewport returns the last reported viewport geometry.
func (s *Session) Viewport() geom.Size {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewport
}

// SetTouchCapable records the client's touch capability report.
func (s *Session) SetTouchCapable(capable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchCapable = capable
}

// TouchCapable reports whether the connected client supports touch input.
func (s *Session) TouchCapable() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.touchCapable
}

// SetInputEnabled toggles whether input is translated and dispatched.
func (s *Session) SetInputEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputEnabled = enabled
}

// InputEnabled reports whether input is translated and dispatched.
func (s *Session) InputEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputEnabled
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Viewport:     s.viewport,
		TouchCapable: s.touchCapable,
		InputEnabled: s.inputEnabled,
	}
}
