package rental

import (
	"context"

	"github.com/reelvault/reelvault/internal/domain"
)

// Repository defines the interface for durable rental persistence.
// Implementations return errors; the Store facade owns the
// degrade-on-failure policy.
type Repository interface {
	// PutRental upserts a rental keyed by its movie id, overwriting
	// any prior record for the same movie.
	PutRental(ctx context.Context, rental *domain.Rental) error

	// GetRental retrieves the rental for a movie id.
	// Returns ErrNotFound if no record exists.
	GetRental(ctx context.Context, movieID string) (*domain.Rental, error)

	// GetAllRentals retrieves every stored rental. Order is not
	// meaningful.
	GetAllRentals(ctx context.Context) ([]*domain.Rental, error)

	// DeleteRental removes the rental for a movie id. Deleting an
	// absent record is not an error.
	DeleteRental(ctx context.Context, movieID string) error

	// Close closes the underlying store.
	Close() error
}

// OpenFunc opens the underlying durable store. The Store calls it
// lazily and again on retry after a failed open.
type OpenFunc func() (Repository, error)
