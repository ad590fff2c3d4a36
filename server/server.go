// Package server exposes the search engine over HTTP.
//
// Routes:
//
//	POST /api/search      solve one maze with one strategy
//	POST /api/compare     solve one maze with every strategy
//	GET  /api/strategies  list strategy names
//	GET  /metrics         prometheus metrics
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/pathfinder/search"
)

// Options configures a Server.
type Options struct {
	// Listen is the TCP address for Run.
	Listen string
	// DefaultStrategy is used when a request names none.
	DefaultStrategy search.Strategy
	// MaxExpansions caps every search; 0 means no cap.
	MaxExpansions int
	// Timeout bounds each request; 0 disables it.
	Timeout time.Duration
	// Logger receives search and server logs; nil means slog.Default().
	Logger *slog.Logger
	// AccessLog enables chi's request logger.
	AccessLog bool
}

// Server is the HTTP API.
type Server struct {
	opts    Options
	reg     *prometheus.Registry
	metrics *Metrics
	router  *chi.Mux
}

// New builds the router and metrics registry.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := chi.NewRouter()
	if opts.AccessLog {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(promMiddleware(m))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if opts.Timeout > 0 {
		r.Use(middleware.Timeout(opts.Timeout))
	}

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	newSearchHandler(opts, m).routes(r)

	return &Server{opts: opts, reg: reg, metrics: m, router: r}
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// Registry returns the prometheus registry the server reports to.
func (s *Server) Registry() *prometheus.Registry { return s.reg }

// Run serves on Options.Listen until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.opts.Logger.Info("server started", "listen", s.opts.Listen)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.opts.Logger.Info("server stopped")
	return nil
}
