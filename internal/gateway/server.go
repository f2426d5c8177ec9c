package gateway

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const (
	readTimeout  = 15 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second

	// shutdownGrace bounds how long in-flight requests may run after a
	// termination signal. Export archive builds are the slowest requests.
	shutdownGrace = 20 * time.Second
)

// Server wraps http.Server with signal-driven graceful shutdown.
type Server struct {
	httpServer *http.Server
	port       string
	logger     *zap.Logger
}

func NewServer(port string, handler http.Handler, logger *zap.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + port,
			Handler:      handler,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		port:   port,
		logger: logger,
	}
}

// Start runs the server until it fails or a termination signal arrives, then
// shuts down gracefully. Websocket connections are hijacked away from the
// server, so the grace period only waits on plain HTTP requests.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting", zap.String("port", s.port))
		serverErrors <- s.httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		s.logger.Info("server shutting down", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.httpServer.Close()
			return fmt.Errorf("could not gracefully shutdown server: %w", err)
		}

		s.logger.Info("server stopped")
	}

	return nil
}
