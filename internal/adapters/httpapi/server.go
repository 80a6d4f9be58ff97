// internal/adapters/httpapi/server.go
package httpapi

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"phishscan/internal/core/ports"
	"phishscan/internal/platform/config"
	perrors "phishscan/internal/platform/errors"
	"phishscan/internal/platform/logx"
)

// ServiceName is reported by the health endpoints.
const ServiceName = "phishscan"

// Server is the HTTP front end of the classifier.
type Server struct {
	cfg        config.Server
	classifier ports.Classifier
	logger     logx.Logger
	metrics    *Metrics

	ready   atomic.Bool
	handler http.Handler
	srv     *http.Server
}

// NewServer builds the routes and middleware for cfg.
func NewServer(cfg config.Server, classifier ports.Classifier, logger logx.Logger) *Server {
	if logger == nil {
		logger = logx.Discard()
	}

	s := &Server{
		cfg:        cfg,
		classifier: classifier,
		logger:     logger.With("component", "http"),
		metrics:    NewMetrics(),
	}
	s.ready.Store(true)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /predict", s.handlePredict)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /readyz", s.handleReadyz)
	if cfg.Metrics {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
	if cfg.StaticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	mws := []Middleware{RequestID(), Logging(s.logger, s.metrics)}
	if cfg.CORS {
		mws = append(mws, CORS())
	}
	mws = append(mws, Recover(s.logger))
	s.handler = chain(mux, mws...)

	s.srv = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler returns the fully wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Listen opens the configured address.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return nil, perrors.Wrapf(err, "listen %s", s.cfg.Addr)
	}
	return ln, nil
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully within
// the configured shutdown timeout. A clean shutdown returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("listening", "addr", ln.Addr().String())
		if err := s.srv.Serve(ln); err != nil && !perrors.Is(err, http.ErrServerClosed) {
			return perrors.Wrap(err, "serve")
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.ready.Store(false)
		s.logger.Info("shutting down", "timeout", s.cfg.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return perrors.Wrap(err, "shutdown")
		}
		return nil
	})

	return g.Wait()
}
