// Package main starts the touchglide server.
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/lberan7/touchglide/internal/app"
	"github.com/lberan7/touchglide/internal/config"
	"github.com/lberan7/touchglide/internal/hint"
	"github.com/lberan7/touchglide/internal/session"
	"github.com/lberan7/touchglide/internal/synth"
	"github.com/lberan7/touchglide/internal/wininject"
)

// run wires the application and blocks until shutdown.
func run(staticDir string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logStartup(cfg)

	sess := session.New()
	gate := hint.NewGate(cfg.HintPath, cfg.HintVersion)

	var native synth.Sink
	if cfg.Sink == config.SinkNative {
		native, err = wininject.New()
		if err != nil {
			return err
		}
	}

	appInstance, err := app.New(cfg, sess, gate, native)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux, staticDir)
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("touchglide starting")
	logHintStoreStatus(cfg.HintPath)
	log.Printf("layout: scale=%.2f padding=%.1f%%", cfg.Scale, cfg.PaddingPercent)
	log.Printf("sink: %s", cfg.Sink)
	logListenStatus(cfg.ListenAddr)
}

// logHintStoreStatus reports whether the hint store is readable.
func logHintStoreStatus(path string) {
	if _, err := hint.Load(path); err != nil {
		log.Printf("hint store check: degraded (%v)", err)
		return
	}
	log.Printf("hint store check: ok (%s)", path)
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("local url: http://%s", net.JoinHostPort(host, port))
}
