package rental

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/reelvault/reelvault/internal/domain"
	"github.com/reelvault/reelvault/internal/metrics"
)

// Store is the consumer-facing rental lifecycle API. Every operation
// has a total contract: storage failures are caught here, logged, and
// degraded to zero values so a broken local store never interrupts
// browsing or renting. Rental history is a convenience, not critical
// data.
type Store struct {
	mu   sync.Mutex
	repo Repository
	open OpenFunc
	now  func() time.Time
}

// New creates a rental store over the given opener. A nil clock
// defaults to time.Now.
func New(open OpenFunc, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		open: open,
		now:  now,
	}
}

// Initialize opens the underlying durable store. It is idempotent and
// safe to call multiple times; a failed open leaves the store in
// degraded mode until a later call succeeds.
func (s *Store) Initialize() {
	if _, err := s.ensureOpen(); err != nil {
		log.Printf("[ERROR] Failed to initialize rental store: %v", err)
	}
}

// ensureOpen returns the repository, opening it on first use.
func (s *Store) ensureOpen() (Repository, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo != nil {
		return s.repo, nil
	}

	repo, err := s.open()
	if err != nil {
		return nil, err
	}

	s.repo = repo
	return repo, nil
}

// AddRental snapshots the movie into a new 24-hour rental and upserts
// it, overwriting any prior rental for the same movie and resetting
// its timer. Returns false if the movie has no id or storage fails.
func (s *Store) AddRental(ctx context.Context, movie domain.Movie) bool {
	rental, err := domain.NewRental(movie, s.now())
	if err != nil {
		log.Printf("[ERROR] Rejected rental request: %v", err)
		metrics.RentalOperationsTotal.WithLabelValues(metrics.OpAdd, metrics.StatusRejected).Inc()
		return false
	}

	repo, err := s.ensureOpen()
	if err != nil {
		log.Printf("[ERROR] Rental store unavailable: %v", err)
		metrics.RentalOperationsTotal.WithLabelValues(metrics.OpAdd, metrics.StatusError).Inc()
		return false
	}

	if err := repo.PutRental(ctx, rental); err != nil {
		log.Printf("[ERROR] Failed to store rental for movie '%s': %v", movie.ID, err)
		metrics.RentalOperationsTotal.WithLabelValues(metrics.OpAdd, metrics.StatusError).Inc()
		return false
	}

	metrics.RentalOperationsTotal.WithLabelValues(metrics.OpAdd, metrics.StatusSuccess).Inc()
	return true
}

// GetRental returns the stored rental for a movie id, or nil if none
// exists. Expired rentals are not filtered out; expiry is a derived
// property the caller evaluates.
func (s *Store) GetRental(ctx context.Context, movieID string) *domain.Rental {
	repo, err := s.ensureOpen()
	if err != nil {
		log.Printf("[ERROR] Rental store unavailable: %v", err)
		return nil
	}

	rental, err := repo.GetRental(ctx, movieID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[ERROR] Failed to get rental for movie '%s': %v", movieID, err)
		}
		return nil
	}

	metrics.RentalOperationsTotal.WithLabelValues(metrics.OpGet, metrics.StatusSuccess).Inc()
	return rental
}

// GetAllRentals returns all stored rentals, or an empty slice when
// storage is unavailable.
func (s *Store) GetAllRentals(ctx context.Context) []*domain.Rental {
	repo, err := s.ensureOpen()
	if err != nil {
		log.Printf("[ERROR] Rental store unavailable: %v", err)
		return []*domain.Rental{}
	}

	rentals, err := repo.GetAllRentals(ctx)
	if err != nil {
		log.Printf("[ERROR] Failed to get rentals: %v", err)
		return []*domain.Rental{}
	}

	metrics.RentalOperationsTotal.WithLabelValues(metrics.OpGetAll, metrics.StatusSuccess).Inc()
	return rentals
}

// RemoveRental deletes the rental for a movie id. Removing an absent
// rental is a no-op.
func (s *Store) RemoveRental(ctx context.Context, movieID string) {
	repo, err := s.ensureOpen()
	if err != nil {
		log.Printf("[ERROR] Rental store unavailable: %v", err)
		return
	}

	if err := repo.DeleteRental(ctx, movieID); err != nil {
		log.Printf("[ERROR] Failed to remove rental for movie '%s': %v", movieID, err)
		metrics.RentalOperationsTotal.WithLabelValues(metrics.OpRemove, metrics.StatusError).Inc()
		return
	}

	metrics.RentalOperationsTotal.WithLabelValues(metrics.OpRemove, metrics.StatusSuccess).Inc()
}

// RemoveExpiredRentals deletes every rental whose expiry is strictly
// before a single timestamp taken at the start of the sweep. Records
// that expire mid-sweep, after the snapshot, survive until the next
// pass.
func (s *Store) RemoveExpiredRentals(ctx context.Context) {
	repo, err := s.ensureOpen()
	if err != nil {
		log.Printf("[ERROR] Rental store unavailable: %v", err)
		return
	}

	rentals, err := repo.GetAllRentals(ctx)
	if err != nil {
		log.Printf("[ERROR] Failed to list rentals for expiry sweep: %v", err)
		metrics.RentalOperationsTotal.WithLabelValues(metrics.OpSweep, metrics.StatusError).Inc()
		return
	}

	now := s.now()
	for _, rental := range rentals {
		if !rental.ExpiresAt.Before(now) {
			continue
		}
		if err := repo.DeleteRental(ctx, rental.MovieID); err != nil {
			log.Printf("[ERROR] Failed to sweep expired rental for movie '%s': %v", rental.MovieID, err)
			continue
		}
		metrics.RentalsSweptTotal.Inc()
	}

	metrics.RentalOperationsTotal.WithLabelValues(metrics.OpSweep, metrics.StatusSuccess).Inc()
}

// IsMovieRented reports whether an unexpired rental exists for the
// movie id. This is the single predicate consumers use to decide
// "rent" vs "already rented".
func (s *Store) IsMovieRented(ctx context.Context, movieID string) bool {
	rental := s.GetRental(ctx, movieID)
	rented := rental != nil && !rental.IsExpired(s.now())
	metrics.RentalOperationsTotal.WithLabelValues(metrics.OpIsRented, metrics.StatusSuccess).Inc()
	return rented
}

// Close closes the underlying store if it was opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo == nil {
		return nil
	}

	err := s.repo.Close()
	s.repo = nil
	return err
}
