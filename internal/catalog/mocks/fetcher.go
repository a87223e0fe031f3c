package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/reelvault/reelvault/internal/domain"
)

// Fetcher is a mock implementation of catalog.Fetcher
type Fetcher struct {
	mock.Mock
}

// FetchMovies retrieves the full movie catalog
func (m *Fetcher) FetchMovies(ctx context.Context) ([]domain.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movie), args.Error(1)
}

// FetchMovie retrieves a single movie by id
func (m *Fetcher) FetchMovie(ctx context.Context, id string) (*domain.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

// SearchMovies queries the remote search endpoint
func (m *Fetcher) SearchMovies(ctx context.Context, genre, title string) ([]domain.Movie, error) {
	args := m.Called(ctx, genre, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movie), args.Error(1)
}
