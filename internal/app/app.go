// Package app wires the HTTP server, control channel, and hint gate together.
package app

import (
	"errors"

	"github.com/lberan7/touchglide/internal/config"
	"github.com/lberan7/touchglide/internal/control"
	"github.com/lberan7/touchglide/internal/hint"
	"github.com/lberan7/touchglide/internal/layout"
	"github.com/lberan7/touchglide/internal/session"
	"github.com/lberan7/touchglide/internal/synth"
)

// App coordinates the HTTP API and the control websocket server.
type App struct {
	cfg     config.Config
	session *session.Session
	gate    *hint.Gate
	control *control.Server
}

// New creates a new application with its dependencies wired.
//
// native may be nil; then synthesized events go to the overlay surface.
func New(cfg config.Config, sess *session.Session, gate *hint.Gate, native synth.Sink) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}
	if gate == nil {
		return nil, errors.New("hint gate is required")
	}

	params := layout.Params{
		ScaleMultiplier:    cfg.Scale,
		EdgePaddingPercent: cfg.PaddingPercent,
	}

	return &App{
		cfg:     cfg,
		session: sess,
		gate:    gate,
		control: control.NewServer(sess, gate, params, native),
	}, nil
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}
