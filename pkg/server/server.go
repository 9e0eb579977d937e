package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/appshell"
	"github.com/vango-dev/appshell/pkg/middleware"
	"github.com/vango-dev/appshell/pkg/render"
)

// Server serves one Root.
type Server struct {
	root     *appshell.Root
	config   *Config
	renderer *render.Renderer
	metrics  *middleware.Metrics
	handler  http.Handler
}

// New creates a server for root. A nil config means DefaultConfig.
func New(root *appshell.Root, config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	config = config.withDefaults()

	s := &Server{
		root:     root,
		config:   config,
		renderer: render.NewRenderer(render.RendererConfig{Pretty: config.Pretty}),
	}
	if config.MetricsPath != "" {
		s.metrics = middleware.NewMetrics(
			middleware.WithNamespace(config.MetricsNamespace),
			middleware.WithRegistry(config.Registry),
		)
	}
	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(s.config.Logger))
	if s.metrics != nil {
		r.Use(s.metrics.Handler)
	}
	if s.config.Tracing {
		r.Use(middleware.Tracing(
			middleware.WithTracerName(s.config.TracerName),
			middleware.WithTracerProvider(s.config.TracerProvider),
			middleware.WithRequestFilter(func(r *http.Request) bool {
				return r.URL.Path != "/healthz" && r.URL.Path != s.config.MetricsPath
			}),
		))
	}
	// Recoverer sits inside metrics and tracing so a panicking page is
	// still recorded as a 500.
	r.Use(chimw.Recoverer)
	r.Use(s.config.Middleware...)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, s.config.MetricsPath,
			promhttp.HandlerFor(s.config.Registry, promhttp.HandlerOpts{Registry: s.config.Registry}))
	}
	r.Get("/*", s.servePage)
	r.Head("/*", s.servePage)
	return r
}

// Handler returns the server's http.Handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Config returns the effective configuration.
func (s *Server) Config() *Config {
	return s.config
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves on the configured address until ctx is done, then
// shuts down gracefully within ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.config.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler: s.handler,
		BaseContext: func(net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	s.config.Logger.Info("server listening", "address", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	s.config.Logger.Info("server shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
