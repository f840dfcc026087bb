//go:build !windows

// Package wininject dispatches synthesized pointer events into the OS cursor.
package wininject

import (
	"errors"

	"github.com/lberan7/touchglide/internal/synth"
)

// ErrUnsupported indicates native injection is not available on this platform.
var ErrUnsupported = errors.New("native injection is only supported on Windows")

// NoopSink is a placeholder sink for non-Windows builds.
type NoopSink struct{}

// New returns a non-functional sink on non-Windows platforms.
func New() (synth.Sink, error) {
	return &NoopSink{}, ErrUnsupported
}

// Dispatch returns ErrUnsupported.
func (n *NoopSink) Dispatch(ev synth.PointerEvent) error {
	_ = ev
	return ErrUnsupported
}
