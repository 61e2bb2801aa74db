// Package server exposes the flowchart pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz                 liveness probe with build info
//	POST /api/steps               {text} → classified steps
//	POST /api/flowchart           {text, format, ...} → artifact bytes
//	POST /api/flowchart/data-url  {text, ...} → PNG data URL
//	POST /api/describe            {topic} → generated paragraph and steps
//
// Errors are JSON objects {"error": message, "code": code} whose status is
// derived from the error code.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/paraflow/pkg/pipeline"
)

const shutdownTimeout = 10 * time.Second

// Describer generates a process paragraph for a topic.
type Describer interface {
	Describe(ctx context.Context, topic string, refresh bool) (string, error)
}

// Options configures a [Server].
type Options struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxBodyBytes int64

	// Runner executes the pipeline. Required.
	Runner *pipeline.Runner
	// Defaults seeds every request; request fields override it.
	Defaults pipeline.Options
	// Describer backs /api/describe. Nil makes the endpoint return 503.
	Describer Describer
	Logger    *log.Logger
}

// Server is the HTTP API.
type Server struct {
	opts   Options
	router chi.Router
	logger *log.Logger
}

var _ http.Handler = (*Server)(nil)

// New creates a server and registers its routes.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 2 << 20
	}
	s := &Server{
		opts:   opts,
		router: chi.NewRouter(),
		logger: opts.Logger.WithPrefix("http"),
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	r := s.router
	r.Use(requestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(bodyLimit(s.opts.MaxBodyBytes))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errMethodNotAllowed)
	})

	r.Get("/healthz", s.healthz)
	r.Route("/api", func(r chi.Router) {
		r.Post("/steps", s.steps)
		r.Post("/flowchart", s.flowchart)
		r.Post("/flowchart/data-url", s.dataURL)
		r.Post("/describe", s.describe)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.opts.Addr,
		Handler:      s,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.opts.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
