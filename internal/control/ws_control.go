// Package control handles the overlay websocket protocol and input translation.
package control

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/lberan7/touchglide/internal/geom"
	"github.com/lberan7/touchglide/internal/hint"
	"github.com/lberan7/touchglide/internal/layout"
	"github.com/lberan7/touchglide/internal/session"
	"github.com/lberan7/touchglide/internal/synth"
	"github.com/lberan7/touchglide/internal/track"
)

// Server handles the overlay websocket: touch frames in, directives out.
type Server struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	session  *session.Session
	gate     *hint.Gate
	params   layout.Params
	native   synth.Sink
	tracker  *track.Tracker
	synth    *synth.Synthesizer
	conn     *websocket.Conn
	disabled bool
}

// NewServer creates a control websocket server.
//
// native is an optional OS-level sink; when nil, synthesized events are
// echoed to the connected overlay surface, falling back to a logging root
// target when no surface is attached.
func NewServer(sess *session.Session, gate *hint.Gate, params layout.Params, native synth.Sink) *Server {
	s := &Server{
		session: sess,
		gate:    gate,
		params:  params,
		native:  native,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	s.synth = synth.New(s.resolveSink)
	return s
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		replies, err := s.handleMessage(msg)
		if err != nil {
			log.Printf("control: %v", err)
			return
		}
		for _, reply := range replies {
			if err := s.writeMessage(reply); err != nil {
				return
			}
		}
	}
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	s.disabled = false
	s.tracker = nil
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// handleMessage dispatches a single control message and returns replies.
func (s *Server) handleMessage(msg Message) ([]Message, error) {
	switch msg.T {
	case "hello":
		return s.handleHello(msg), nil
	case "resize":
		return s.handleResize(msg), nil
	case "touch":
		return nil, s.handleTouch(msg)
	case "button":
		return nil, s.handleButton(msg)
	case "hintSeen":
		s.gate.Dismiss()
		return nil, nil
	case "inputEnabled":
		if msg.Enabled != nil {
			s.session.SetInputEnabled(*msg.Enabled)
		}
		return nil, nil
	default:
		return nil, nil
	}
}

// handleHello applies the capability gate and primes layout and hint state.
func (s *Server) handleHello(msg Message) []Message {
	capable := msg.TouchPoints > 0
	s.session.SetTouchCapable(capable)
	if !capable {
		// One-time gate: the subsystem stays inert for this client.
		s.setDisabled(true)
		return []Message{{T: "disabled"}}
	}
	s.setDisabled(false)

	viewport := geom.Size{W: msg.W, H: msg.H}
	s.session.SetViewport(viewport)
	s.setTracker(track.New(viewport.Center()))

	replies := []Message{s.layoutMessage(viewport)}
	if s.gate.ShouldShow() {
		replies = append(replies, Message{T: "hint", Version: s.gate.Version()})
	}
	return replies
}

// handleResize records new geometry and recomputes layout synchronously.
func (s *Server) handleResize(msg Message) []Message {
	if s.isDisabled() {
		return nil
	}
	viewport := geom.Size{W: msg.W, H: msg.H}
	s.session.SetViewport(viewport)
	return []Message{s.layoutMessage(viewport)}
}

// handleTouch feeds one touch frame through the tracker.
func (s *Server) handleTouch(msg Message) error {
	tracker := s.currentTracker()
	if s.isDisabled() || tracker == nil || !s.session.InputEnabled() {
		return nil
	}
	frame := track.Frame{Phase: track.Phase(msg.Phase)}
	for _, t := range msg.Touches {
		frame.Touches = append(frame.Touches, track.Sample{ID: t.ID, X: t.X, Y: t.Y})
	}
	if !tracker.Handle(frame) {
		return nil
	}
	return s.synth.Move(tracker.Cursor(), s.session.Viewport())
}

// handleButton translates a button-affordance event into down/up dispatch.
func (s *Server) handleButton(msg Message) error {
	tracker := s.currentTracker()
	if s.isDisabled() || tracker == nil || !s.session.InputEnabled() {
		return nil
	}
	var button synth.Button
	switch msg.Button {
	case "primary":
		button = synth.ButtonPrimary
	case "secondary":
		button = synth.ButtonSecondary
	default:
		return nil
	}
	cursor := tracker.Cursor()
	viewport := s.session.Viewport()
	switch msg.Phase {
	case "down":
		return s.synth.ButtonDown(cursor, viewport, button)
	case "up":
		return s.synth.ButtonUp(cursor, viewport, button)
	default:
		return nil
	}
}

// layoutMessage builds a layout directive for the given viewport.
func (s *Server) layoutMessage(viewport geom.Size) Message {
	return Message{T: "layout", Layout: layoutPayload(layout.Compute(viewport, s.params))}
}

// CurrentLayout computes the layout for the last reported viewport.
func (s *Server) CurrentLayout() LayoutPayload {
	return *layoutPayload(layout.Compute(s.session.Viewport(), s.params))
}

// layoutPayload converts a computed layout to its wire form.
func layoutPayload(l layout.Layout) *LayoutPayload {
	return &LayoutPayload{
		Trackpad: RectPayload{
			X: l.Trackpad.X, Y: l.Trackpad.Y, W: l.Trackpad.W, H: l.Trackpad.H,
		},
		Primary: PlacementPayload{
			Right: l.Primary.Right, Bottom: l.Primary.Bottom, Diameter: l.Primary.Diameter,
		},
		Secondary: PlacementPayload{
			Right: l.Secondary.Right, Bottom: l.Secondary.Bottom, Diameter: l.Secondary.Diameter,
		},
	}
}

// resolveSink picks the dispatch target, fresh for every dispatch.
func (s *Server) resolveSink() synth.Sink {
	if s.native != nil {
		return s.native
	}
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn != nil {
		return &surfaceSink{server: s}
	}
	return rootSink{}
}

// writeMessage sends one message on the active connection.
func (s *Server) writeMessage(msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return fmt.Errorf("no active control connection")
	}
	return s.conn.WriteJSON(msg)
}

// setDisabled records the capability gate outcome for the connection.
func (s *Server) setDisabled(disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disabled = disabled
}

// isDisabled reports whether the capability gate rejected the connection.
func (s *Server) isDisabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disabled
}

// setTracker installs the tracker for the current connection.
func (s *Server) setTracker(t *track.Tracker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker = t
}

// currentTracker returns the tracker for the current connection.
func (s *Server) currentTracker() *track.Tracker {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker
}

// surfaceSink dispatches pointer events to the attached overlay surface.
type surfaceSink struct {
	server *Server
}

// Dispatch sends the event to the overlay for delivery into the host page.
func (d *surfaceSink) Dispatch(ev synth.PointerEvent) error {
	return d.server.writeMessage(Message{T: "pointer", Event: &EventPayload{
		Type:    string(ev.Type),
		X:       ev.X,
		Y:       ev.Y,
		Button:  int(ev.Button),
		Buttons: ev.Buttons,
	}})
}

// rootSink is the document-root fallback when no surface is attached.
type rootSink struct{}

// Dispatch logs the event so a missing surface never drops it silently.
func (rootSink) Dispatch(ev synth.PointerEvent) error {
	log.Printf("no surface attached, pointer %s at (%.0f,%.0f) button=%d", ev.Type, ev.X, ev.Y, ev.Button)
	return nil
}
