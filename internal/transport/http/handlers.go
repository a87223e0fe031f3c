package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reelvault/reelvault/internal/domain"
	"github.com/reelvault/reelvault/internal/movies"
)

// Result caps, matching the catalog contract.
const (
	maxListResults   = 100
	maxSearchResults = 50
)

// Handler holds the HTTP handlers for the catalog API. A nil
// repository means the backing store is unavailable; handlers answer
// 503 so clients can tell "try again" from a broken request.
type Handler struct {
	repo movies.Repository
}

// NewHandler creates a new catalog API handler.
func NewHandler(repo movies.Repository) *Handler {
	return &Handler{
		repo: repo,
	}
}

// ListMovies handles GET /api/movies
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		http.Error(w, "Database service is unavailable", http.StatusServiceUnavailable)
		return
	}

	result, err := h.repo.GetMovies(r.Context(), maxListResults)
	if err != nil {
		log.Printf("[ERROR] Failed to list movies: %v", err)
		http.Error(w, "An error occurred while fetching movies", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, moviesOrEmpty(result))
}

// GetMovie handles GET /api/movies/{id}
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		http.Error(w, "Database service is unavailable", http.StatusServiceUnavailable)
		return
	}

	id := chi.URLParam(r, "id")

	movie, err := h.repo.GetMovie(r.Context(), id)
	if err != nil {
		if errors.Is(err, movies.ErrNotFound) {
			http.Error(w, "Movie with ID "+id+" not found", http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] Failed to get movie '%s': %v", id, err)
		http.Error(w, "An error occurred while fetching the movie", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, movie)
}

// SearchMovies handles GET /api/movies/search
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		http.Error(w, "Database service is unavailable", http.StatusServiceUnavailable)
		return
	}

	genre := r.URL.Query().Get("genre")
	title := r.URL.Query().Get("title")

	result, err := h.repo.SearchMovies(r.Context(), genre, title, maxSearchResults)
	if err != nil {
		log.Printf("[ERROR] Failed to search movies (genre=%q, title=%q): %v", genre, title, err)
		http.Error(w, "An error occurred while searching movies", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, moviesOrEmpty(result))
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, HealthResponse{Status: "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// moviesOrEmpty keeps empty results as [] on the wire rather than null.
func moviesOrEmpty(m []domain.Movie) []domain.Movie {
	if m == nil {
		return []domain.Movie{}
	}
	return m
}
