package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRental(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		movie   Movie
		wantErr bool
	}{
		{
			name: "valid movie",
			movie: Movie{
				ID:       "3",
				Title:    "The Dark Knight",
				Price:    5.99,
				ImageURL: "https://example.com/tdk.jpg",
			},
			wantErr: false,
		},
		{
			name: "missing id",
			movie: Movie{
				Title: "Unsaved Movie",
				Price: 4.99,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rental, err := NewRental(tt.movie, now)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, rental)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.movie.ID, rental.MovieID)
			assert.Equal(t, tt.movie.Title, rental.MovieTitle)
			assert.Equal(t, tt.movie.Price, rental.Price)
			assert.Equal(t, tt.movie.ImageURL, rental.ImageURL)
			assert.Equal(t, now, rental.RentedAt)
			assert.Equal(t, now.Add(RentalDuration), rental.ExpiresAt)
		})
	}
}

func TestRental_IsExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rental, err := NewRental(Movie{ID: "3", Title: "The Dark Knight", Price: 5.99}, now)
	require.NoError(t, err)

	assert.False(t, rental.IsExpired(now))
	assert.False(t, rental.IsExpired(now.Add(time.Hour)))
	assert.False(t, rental.IsExpired(now.Add(RentalDuration)))
	assert.True(t, rental.IsExpired(now.Add(RentalDuration+time.Second)))
	assert.True(t, rental.IsExpired(now.Add(25*time.Hour)))
}

func TestRental_TimeRemaining(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rental, err := NewRental(Movie{ID: "1", Title: "The Matrix"}, now)
	require.NoError(t, err)

	assert.Equal(t, RentalDuration, rental.TimeRemaining(now))
	assert.Equal(t, 23*time.Hour, rental.TimeRemaining(now.Add(time.Hour)))

	// Negative once expired
	assert.Equal(t, -time.Hour, rental.TimeRemaining(now.Add(25*time.Hour)))
}
