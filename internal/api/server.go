package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"
)

// ServerConfig holds configuration for the HTTP server. Port 0 binds an
// ephemeral port; Addr reports the one chosen.
type ServerConfig struct {
	Host              string
	Port              int
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// DefaultServerConfig returns the loopback defaults. There is no write
// timeout so event streams stay open.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:              "127.0.0.1",
		Port:              8080,
		ReadHeaderTimeout: 10 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Server serves the casino API. Listen binds the socket so address errors
// surface before Serve is started in the background.
type Server struct {
	http     *http.Server
	listener net.Listener
	logger   *slog.Logger
	config   ServerConfig
}

// NewServer creates a new API server
func NewServer(handler http.Handler, config ServerConfig, logger *slog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
			Handler:           handler,
			ReadHeaderTimeout: config.ReadHeaderTimeout,
		},
		logger: logger.With(slog.String("component", "http")),
		config: config,
	}
}

// Listen binds the configured address
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.http.Addr, err)
	}
	s.listener = ln
	return nil
}

// Serve accepts connections until Shutdown, binding first if Listen was not
// called. It returns nil after a clean shutdown.
func (s *Server) Serve() error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}
	s.logger.Info("serving casino api", slog.String("addr", s.Addr()))

	err := s.http.Serve(s.listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("serve: %w", err)
}

// Shutdown stops accepting connections and waits for in-flight requests,
// up to the configured timeout
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("casino api stopped")
	return nil
}

// Addr is the bound address once listening, else the configured one
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.http.Addr
}
