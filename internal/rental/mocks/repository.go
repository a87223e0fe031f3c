package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/reelvault/reelvault/internal/domain"
)

// Repository is a mock implementation of rental.Repository
type Repository struct {
	mock.Mock
}

// PutRental upserts a rental keyed by its movie id
func (m *Repository) PutRental(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

// GetRental retrieves the rental for a movie id
func (m *Repository) GetRental(ctx context.Context, movieID string) (*domain.Rental, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

// GetAllRentals retrieves every stored rental
func (m *Repository) GetAllRentals(ctx context.Context) ([]*domain.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Rental), args.Error(1)
}

// DeleteRental removes the rental for a movie id
func (m *Repository) DeleteRental(ctx context.Context, movieID string) error {
	args := m.Called(ctx, movieID)
	return args.Error(0)
}

// Close closes the underlying store
func (m *Repository) Close() error {
	args := m.Called()
	return args.Error(0)
}
