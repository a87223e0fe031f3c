package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/reelvault/reelvault/internal/config"
	"github.com/reelvault/reelvault/internal/movies"
)

// Server represents the catalog API server.
type Server struct {
	handler *Handler
	server  *http.Server
	port    string
}

// NewServer creates a new catalog API server. The repository may be
// nil when the backing store failed to open; the API then answers 503
// on catalog routes while staying alive for /health.
func NewServer(repo movies.Repository, cfg config.ServerConfig, verbose bool) *Server {
	handler := NewHandler(repo)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      NewRouter(handler, verbose),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		handler: handler,
		server:  server,
		port:    cfg.Port,
	}
}

// NewRouter builds the catalog API routes around the given handler.
func NewRouter(handler *Handler, verbose bool) chi.Router {
	r := chi.NewRouter()
	r.Use(Logging(verbose))
	r.Use(Metrics)

	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", handler.ListMovies)
		r.Get("/search", handler.SearchMovies)
		r.Get("/{id}", handler.GetMovie)
	})
	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	log.Printf("Catalog server starting on port %s", s.port)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Catalog server shutting down...")
	return s.server.Shutdown(ctx)
}

// Port returns the server port.
func (s *Server) Port() string {
	return s.port
}
