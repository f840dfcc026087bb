// Package hint gates the one-time first-run tutorial prompt.
package hint

import (
	"log"
	"sync"
)

// State is the gate lifecycle stage.
type State string

const (
	// StatePending means the hint has not been dismissed this version.
	StatePending State = "pending"
	// StateDismissed means the hint was dismissed and stays hidden.
	StateDismissed State = "dismissed"
)

// Gate decides whether the first-run hint should be shown for one version key.
//
// Storage failures degrade to showing the hint every run; they are logged and
// never propagate, so a broken data dir cannot block input handling.
type Gate struct {
	mu      sync.Mutex
	path    string
	version string
	state   State
}

// NewGate returns a pending gate for the given store path and version key.
func NewGate(path, version string) *Gate {
	return &Gate{path: path, version: version, state: StatePending}
}

// Version returns the hint version key the gate tracks.
func (g *Gate) Version() string {
	return g.version
}

// State returns the current gate state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// ShouldShow consults the persisted flag for this version.
func (g *Gate) ShouldShow() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == StateDismissed {
		return false
	}
	flags, err := Load(g.path)
	if err != nil {
		log.Printf("hint store unavailable, showing hint: %v", err)
		return true
	}
	if flags[g.version] {
		g.state = StateDismissed
		return false
	}
	return true
}

// Dismiss persists the seen flag and transitions the gate. One-shot.
func (g *Gate) Dismiss() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == StateDismissed {
		return
	}
	g.state = StateDismissed

	flags, err := Load(g.path)
	if err != nil {
		log.Printf("hint store read failed on dismiss: %v", err)
		flags = Flags{}
	}
	flags[g.version] = true
	if err := Save(g.path, flags); err != nil {
		log.Printf("hint store write failed: %v", err)
	}
}
