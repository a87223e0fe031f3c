package domain

import (
	"fmt"
	"time"
)

// RentalDuration is how long a rental grants access after creation.
const RentalDuration = 24 * time.Hour

// Movie represents a catalog item as served by the catalog API.
// The ID is assigned by the catalog store and is empty until persisted.
type Movie struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Rating      float64 `json:"rating"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description"`
	Genre       string  `json:"genre"`
	ReleaseYear int     `json:"releaseYear"`
}

// Rental is a client-local record granting rented status for one movie.
// Title, price and image are snapshotted at rental time so catalog
// changes do not invalidate an active rental.
type Rental struct {
	MovieID    string    `json:"movieId"`
	MovieTitle string    `json:"movieTitle"`
	RentedAt   time.Time `json:"rentedAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
	Price      float64   `json:"price"`
	ImageURL   string    `json:"imageUrl"`
}

// NewRental builds a rental snapshot from a movie. ExpiresAt is always
// exactly RentalDuration after now and is never recomputed afterwards.
func NewRental(movie Movie, now time.Time) (*Rental, error) {
	if movie.ID == "" {
		return nil, fmt.Errorf("movie has no id")
	}

	return &Rental{
		MovieID:    movie.ID,
		MovieTitle: movie.Title,
		RentedAt:   now,
		ExpiresAt:  now.Add(RentalDuration),
		Price:      movie.Price,
		ImageURL:   movie.ImageURL,
	}, nil
}

// IsExpired reports whether the rental has passed its expiry at the
// given instant.
func (r *Rental) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// TimeRemaining returns the time left until expiry. The result is
// negative once the rental has expired.
func (r *Rental) TimeRemaining(now time.Time) time.Duration {
	return r.ExpiresAt.Sub(now)
}
