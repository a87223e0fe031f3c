package movies

import (
	"context"
	"errors"

	"github.com/reelvault/reelvault/internal/domain"
)

// ErrNotFound is returned when no movie exists for the requested id.
var ErrNotFound = errors.New("movie not found")

// Repository defines the interface for catalog movie storage.
type Repository interface {
	// GetMovies retrieves movies up to the given limit.
	GetMovies(ctx context.Context, limit int) ([]domain.Movie, error)

	// GetMovie retrieves a single movie by id.
	// Returns ErrNotFound if no movie exists.
	GetMovie(ctx context.Context, id string) (*domain.Movie, error)

	// SearchMovies retrieves movies matching the given filters, up to
	// the limit. Genre is matched exactly, title as a case-insensitive
	// substring; empty filters match everything (AND semantics).
	SearchMovies(ctx context.Context, genre, title string, limit int) ([]domain.Movie, error)

	// CreateMovie persists a movie. A movie with no id is assigned one
	// by the store; the persisted movie is returned.
	CreateMovie(ctx context.Context, movie domain.Movie) (*domain.Movie, error)

	// CountMovies returns the number of stored movies.
	CountMovies(ctx context.Context) (int64, error)

	// Close closes the repository connection.
	Close() error
}
