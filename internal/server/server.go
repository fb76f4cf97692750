package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/BossRush_Go/docs"
	"github.com/osse101/BossRush_Go/internal/handler"
	"github.com/osse101/BossRush_Go/internal/logger"
	"github.com/osse101/BossRush_Go/internal/metrics"
)

// Server is an HTTP server with the standard middleware stack and the
// health, version and metrics routes already mounted
type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewRouter builds a chi router with the shared middleware and base routes.
// Callers mount their own routes on the result.
func NewRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(SecurityHeadersMiddleware)
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(LoggingMiddleware)

	r.Get(PathHealthz, handler.HandleHealthz())
	r.Get(PathVersion, handler.HandleVersion())
	r.Handle(PathMetrics, promhttp.Handler())
	r.Get(PathSwagger, httpSwagger.WrapHandler)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		handler.RespondError(w, http.StatusNotFound, handler.ErrMsgNotFound)
	})

	return r
}

// New creates a server listening on port and serving router
func New(port int, router chi.Router) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: router,
	}
}

// NewStatusServer creates the simulation status server: health, version,
// metrics and the live run status
func NewStatusServer(port int, source handler.StatusSource) *Server {
	r := NewRouter()
	r.Get(PathStatus, handler.HandleStatus(source))
	return New(port, r)
}

// Handler returns the root handler, for use with httptest
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens and serves until Stop is called. It returns nil after a
// graceful shutdown.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Serve serves on an existing listener
func (s *Server) Serve(l net.Listener) error {
	logger.Info(LogMsgServerStarting, "addr", l.Addr().String())
	if err := s.httpServer.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	defer logger.Info(LogMsgServerStopped, "addr", s.httpServer.Addr)
	return s.httpServer.Shutdown(ctx)
}
