package client

import (
	"context"
	"fmt"
	"time"

	"github.com/reelvault/reelvault/internal/catalog"
	"github.com/reelvault/reelvault/internal/domain"
	"github.com/reelvault/reelvault/internal/rental"
)

// Commands provides the command-line consumer surface: browsing the
// catalog through the cache and managing local rentals.
type Commands struct {
	cache *catalog.Cache
	store *rental.Store
	now   func() time.Time
}

// NewCommands creates a new Commands instance. A nil clock defaults to
// time.Now.
func NewCommands(cache *catalog.Cache, store *rental.Store, now func() time.Time) *Commands {
	if now == nil {
		now = time.Now
	}
	return &Commands{
		cache: cache,
		store: store,
		now:   now,
	}
}

// ListMovies displays the movie catalog, marking rented titles.
func (c *Commands) ListMovies(ctx context.Context) error {
	c.store.RemoveExpiredRentals(ctx)

	movies := c.cache.GetMovies(ctx)
	if len(movies) == 0 {
		fmt.Println("No movies available")
		return nil
	}

	fmt.Printf("%-38s %-28s %-8s %-7s %s\n", "ID", "TITLE", "RATING", "PRICE", "STATUS")
	for _, movie := range movies {
		status := ""
		if c.store.IsMovieRented(ctx, movie.ID) {
			status = "rented"
		}
		fmt.Printf("%-38s %-28s %-8.1f $%-6.2f %s\n", movie.ID, movie.Title, movie.Rating, movie.Price, status)
	}

	return nil
}

// GetMovie displays details for a single movie.
func (c *Commands) GetMovie(ctx context.Context, id string) error {
	movie := c.cache.GetMovieByID(ctx, id)
	if movie == nil {
		fmt.Printf("Movie '%s' not found\n", id)
		return nil
	}

	printMovie(movie)

	if r := c.store.GetRental(ctx, movie.ID); r != nil && !r.IsExpired(c.now()) {
		fmt.Printf("Rented: expires %s\n", r.ExpiresAt.Format(time.RFC3339))
	}

	return nil
}

// Search displays movies matching the given filters.
func (c *Commands) Search(ctx context.Context, genre, title string) error {
	movies := c.cache.SearchMovies(ctx, genre, title)
	if len(movies) == 0 {
		fmt.Println("No movies matched")
		return nil
	}

	for i := range movies {
		printMovie(&movies[i])
		fmt.Println()
	}

	return nil
}

// Rent rents a movie for 24 hours.
func (c *Commands) Rent(ctx context.Context, movieID string) error {
	movie := c.cache.GetMovieByID(ctx, movieID)
	if movie == nil {
		fmt.Printf("Movie '%s' not found\n", movieID)
		return nil
	}

	// GetRental degrades to nil on storage failure, so the same read
	// must serve both the rented check and the expiry shown
	if r := c.store.GetRental(ctx, movieID); r != nil && !r.IsExpired(c.now()) {
		fmt.Printf("'%s' is already rented (expires %s)\n", movie.Title, r.ExpiresAt.Format(time.RFC3339))
		return nil
	}

	if !c.store.AddRental(ctx, *movie) {
		fmt.Printf("Could not rent '%s'\n", movie.Title)
		return nil
	}

	fmt.Printf("Rented '%s' for 24 hours ($%.2f)\n", movie.Title, movie.Price)
	return nil
}

// Return removes a rental before its expiry.
func (c *Commands) Return(ctx context.Context, movieID string) error {
	c.store.RemoveRental(ctx, movieID)
	fmt.Printf("Returned movie '%s'\n", movieID)
	return nil
}

// ListRentals displays all local rentals and their remaining time.
func (c *Commands) ListRentals(ctx context.Context) error {
	rentals := c.store.GetAllRentals(ctx)
	if len(rentals) == 0 {
		fmt.Println("No rentals")
		return nil
	}

	now := c.now()
	fmt.Printf("%-38s %-28s %-22s %s\n", "MOVIE ID", "TITLE", "EXPIRES", "REMAINING")
	for _, r := range rentals {
		remaining := "expired"
		if !r.IsExpired(now) {
			remaining = r.TimeRemaining(now).Round(time.Minute).String()
		}
		fmt.Printf("%-38s %-28s %-22s %s\n", r.MovieID, r.MovieTitle, r.ExpiresAt.Format(time.RFC3339), remaining)
	}

	return nil
}

// Sweep removes all expired rentals.
func (c *Commands) Sweep(ctx context.Context) error {
	c.store.RemoveExpiredRentals(ctx)
	fmt.Println("Removed expired rentals")
	return nil
}

// Refresh clears the catalog cache so the next listing refetches.
func (c *Commands) Refresh(ctx context.Context) error {
	c.cache.ClearCache()
	fmt.Println("Catalog cache cleared")
	return nil
}

func printMovie(m *domain.Movie) {
	fmt.Printf("%s (%d)\n", m.Title, m.ReleaseYear)
	fmt.Printf("ID: %s\n", m.ID)
	fmt.Printf("Genre: %s\n", m.Genre)
	fmt.Printf("Rating: %.1f\n", m.Rating)
	fmt.Printf("Price: $%.2f\n", m.Price)
	fmt.Printf("Description: %s\n", m.Description)
}
