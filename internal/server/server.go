package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/MasonDill/waveform-visualizer/internal/j1939"
	"github.com/MasonDill/waveform-visualizer/internal/logging"
)

// Config holds the server configuration
type Config struct {
	Addr     string // listen address, e.g. "localhost:8173"
	LogLevel string
	// Defaults applied when a request omits its probe settings
	Probe    j1939.ProbeConfiguration
	Extended bool
}

// Server serves waveform generation over a websocket endpoint so that
// browser-based renderers can plot frames live.
type Server struct {
	config     *Config
	httpServer *http.Server
}

// New creates a new Server instance
func New(config *Config) (*Server, error) {
	if err := logging.Initialize(config.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Fail fast on a bad default probe rather than per connection.
	if _, _, err := config.Probe.Voltages(); err != nil {
		return nil, err
	}

	s := &Server{config: config}
	s.httpServer = &http.Server{
		Addr:              config.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// Handler returns the HTTP handler serving the websocket endpoint and a
// health check. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	return mux
}

// Start starts the server and blocks until shutdown
func (s *Server) Start() error {
	logging.Info("Starting waveform server",
		zap.String("addr", s.config.Addr),
		zap.String("default_probe", s.config.Probe.String()),
		zap.Bool("default_extended", s.config.Extended),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		logging.Info("Shutdown signal received, stopping server...")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logging.Info("Server stopped")
	return nil
}
