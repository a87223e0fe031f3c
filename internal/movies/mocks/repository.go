package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/reelvault/reelvault/internal/domain"
)

// Repository is a mock implementation of movies.Repository
type Repository struct {
	mock.Mock
}

// GetMovies retrieves movies up to the given limit
func (m *Repository) GetMovies(ctx context.Context, limit int) ([]domain.Movie, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movie), args.Error(1)
}

// GetMovie retrieves a single movie by id
func (m *Repository) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

// SearchMovies retrieves movies matching the given filters
func (m *Repository) SearchMovies(ctx context.Context, genre, title string, limit int) ([]domain.Movie, error) {
	args := m.Called(ctx, genre, title, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movie), args.Error(1)
}

// CreateMovie persists a movie
func (m *Repository) CreateMovie(ctx context.Context, movie domain.Movie) (*domain.Movie, error) {
	args := m.Called(ctx, movie)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

// CountMovies returns the number of stored movies
func (m *Repository) CountMovies(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Close closes the repository connection
func (m *Repository) Close() error {
	args := m.Called()
	return args.Error(0)
}
