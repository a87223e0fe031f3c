package catalog

import (
	"context"

	"github.com/reelvault/reelvault/internal/domain"
)

// Fetcher defines the remote catalog operations the cache is built
// over. Implementations return errors; the Cache owns the
// degrade-on-failure policy.
type Fetcher interface {
	// FetchMovies retrieves the full movie catalog.
	FetchMovies(ctx context.Context) ([]domain.Movie, error)

	// FetchMovie retrieves a single movie by id. Returns an error
	// when the movie does not exist or the fetch fails.
	FetchMovie(ctx context.Context, id string) (*domain.Movie, error)

	// SearchMovies queries the remote search endpoint. Genre is
	// matched exactly, title as a case-insensitive substring; both
	// filters are optional and combined with AND semantics.
	SearchMovies(ctx context.Context, genre, title string) ([]domain.Movie, error)
}
