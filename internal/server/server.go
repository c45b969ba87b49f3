// Package server exposes the assessment as an HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
	sweepInterval     = 5 * time.Minute
)

// Server runs the HTTP API with graceful shutdown and periodic session
// eviction.
type Server struct {
	addr     string
	handler  http.Handler
	registry *Registry
	logger   *zap.Logger
}

// New creates a server. logger may be nil.
func New(addr string, handler http.Handler, registry *Registry, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{addr: addr, handler: handler, registry: registry, logger: logger}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sweeper := time.NewTicker(sweepInterval)
	defer sweeper.Stop()

	for {
		select {
		case err := <-errCh:
			return err
		case <-sweeper.C:
			if n := s.registry.Sweep(time.Now()); n > 0 {
				s.logger.Info("evicted idle sessions", zap.Int("count", n))
			}
		case <-ctx.Done():
			s.logger.Info("shutting down http server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	}
}
