// Package testutil provides test doubles for the dispatch boundary.
package testutil

import "github.com/lberan7/touchglide/internal/synth"

// FakeSink implements synth.Sink and records dispatched events for tests.
type FakeSink struct {
	Events []synth.PointerEvent
	Err    error
}

// Ensure FakeSink implements the interface.
var _ synth.Sink = (*FakeSink)(nil)

// Dispatch records the event and returns the configured error.
func (f *FakeSink) Dispatch(ev synth.PointerEvent) error {
	f.Events = append(f.Events, ev)
	return f.Err
}
