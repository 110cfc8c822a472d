// Package server exposes the drafting engine as a small JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sant0-9/quill/internal/compose"
	"github.com/sant0-9/quill/internal/config"
	"github.com/sant0-9/quill/internal/observability"
	"github.com/sant0-9/quill/internal/rng"
)

type Server struct {
	composer  *compose.Composer
	cfg       config.ServerConfig
	newSource func() rng.Source
	validate  *validator.Validate
	strip     *bluemonday.Policy
}

type Option func(*Server)

// WithSource sets the factory that yields one random source per request.
func WithSource(fn func() rng.Source) Option {
	return func(s *Server) { s.newSource = fn }
}

func New(composer *compose.Composer, cfg *config.Config, opts ...Option) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &Server{
		composer:  composer,
		cfg:       cfg.Server,
		newSource: rng.NewRandom,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		strip:     bluemonday.StrictPolicy(),
	}
	if cfg.Seed != nil {
		seed := *cfg.Seed
		s.newSource = func() rng.Source { return rng.New(seed) }
	}
	if s.composer == nil {
		s.composer = compose.New(nil)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(logRequests)
	r.Use(metricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/classify", s.handleClassify)
		r.Post("/drafts", s.handleDrafts)
		r.Post("/drafts/upload", s.handleUpload)
		r.Post("/remediations", s.handleRemediation)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then drains in-flight
// requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		observability.WithFields("addr", s.cfg.Addr, "origins", s.cfg.AllowedOrigins).Info("quill api listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
