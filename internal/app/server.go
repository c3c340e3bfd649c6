package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

// Server runs the storefront listener and owns the shutdown order.
// Stopping is two-phase: the HTTP side drains in-flight requests first,
// then the drain hooks run so work those requests scheduled in the
// background (debounced address resolutions, buffered log writes, pending
// order events) completes against a live process.
type Server struct {
	httpServer   *http.Server
	drainTimeout time.Duration
	drains       []func()
}

// NewServer builds the storefront HTTP server. Handlers only do fast
// document reads and writes; the slow path (geocoding) is scheduled
// asynchronously and never holds a connection, so request timeouts stay
// tight while idle keep-alive is generous for browsing sessions. Drain
// hooks run during shutdown, after the listener has drained.
func NewServer(handler http.Handler, port string, drains ...func()) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:           ":" + port,
			Handler:        handler,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   20 * time.Second,
			IdleTimeout:    90 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1MB
		},
		drainTimeout: 15 * time.Second,
		drains:       drains,
	}
}

// Run starts the listener and blocks until SIGINT/SIGTERM, then shuts
// down gracefully. A listener error is returned as-is.
func (s *Server) Run() error {
	errChan := make(chan error, 1)

	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("Storefront listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	return s.Shutdown()
}

// Shutdown drains in-flight requests within the drain timeout and then
// runs the drain hooks in registration order. Hooks run even when the
// HTTP drain times out, so background workers are never orphaned.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.drainTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("HTTP drain incomplete, stopping workers anyway")
	}

	for _, drain := range s.drains {
		drain()
	}

	if err != nil {
		return err
	}
	log.Info().Msg("Storefront stopped")
	return nil
}
