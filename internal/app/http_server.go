// Package app wires the HTTP server, control channel, and hint gate together.
package app

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/lberan7/touchglide/internal/web"
)

// RegisterRoutes wires API and static handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux, staticDir string) {
	mux.Handle("/ws/touch", a.Control())
	mux.HandleFunc("/api/state", a.handleState)
	mux.HandleFunc("/api/layout", a.handleLayout)
	mux.HandleFunc("/favicon.ico", handleFavicon)
	mux.Handle("/", staticFileServer(staticDir))
}

type stateResponse struct {
	TouchCapable bool         `json:"touchCapable"`
	InputEnabled bool         `json:"inputEnabled"`
	Viewport     viewportBody `json:"viewport"`
	HintVersion  string       `json:"hintVersion"`
	HintState    string       `json:"hintState"`
}

type viewportBody struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// handleState returns current session and hint state.
func (a *App) handleState(w http.ResponseWriter, _ *http.Request) {
	snap := a.session.Snapshot()
	resp := stateResponse{
		TouchCapable: snap.TouchCapable,
		InputEnabled: snap.InputEnabled,
		Viewport:     viewportBody{W: snap.Viewport.W, H: snap.Viewport.H},
		HintVersion:  a.gate.Version(),
		HintState:    string(a.gate.State()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// handleLayout returns the layout for the last reported viewport.
func (a *App) handleLayout(w http.ResponseWriter, _ *http.Request) {
	payload := a.control.CurrentLayout()
	_ = json.NewEncoder(w).Encode(payload)
}

// staticFileServer returns a handler for static assets, preferring disk then embed.
func staticFileServer(staticDir string) http.Handler {
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			return http.FileServer(http.Dir(staticDir))
		}
	}

	embedded, err := web.StaticFS()
	if err != nil {
		log.Printf("static assets unavailable: %v", err)
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(embedded))
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
