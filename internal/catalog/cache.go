package catalog

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/reelvault/reelvault/internal/domain"
	"github.com/reelvault/reelvault/internal/metrics"
)

// Config holds configuration for the catalog cache.
type Config struct {
	// TTL is the validity window for a cached bulk catalog fetch.
	TTL time.Duration
	// FetchTimeout bounds every remote fetch.
	FetchTimeout time.Duration
	// Now supplies the clock. Defaults to time.Now when nil.
	Now func() time.Time
}

// DefaultConfig returns the default cache configuration.
func DefaultConfig() Config {
	return Config{
		TTL:          5 * time.Minute,
		FetchTimeout: 15 * time.Second,
	}
}

// Cache is a short-lived whole-collection cache of the movie catalog.
// The cached list and its expiry are a single pair, replaced or
// cleared atomically under one lock. Every operation has a total
// contract: remote failures are logged and degraded to empty results,
// and a failed or empty fetch is never remembered as the catalog —
// the next call retries.
type Cache struct {
	fetcher Fetcher
	sfGroup singleflight.Group

	ttl          time.Duration
	fetchTimeout time.Duration
	now          func() time.Time

	mu        sync.Mutex
	movies    []domain.Movie
	expiresAt time.Time
}

// NewCache creates a catalog cache over the given fetcher.
func NewCache(fetcher Fetcher, cfg Config) *Cache {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultConfig().TTL
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultConfig().FetchTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Cache{
		fetcher:      fetcher,
		ttl:          cfg.TTL,
		fetchTimeout: cfg.FetchTimeout,
		now:          cfg.Now,
	}
}

// GetMovies returns the cached catalog while it is fresh, otherwise
// fetches from the remote service. Only a non-empty successful fetch
// populates the cache. Callers must treat the returned slice as
// read-only.
func (c *Cache) GetMovies(ctx context.Context) []domain.Movie {
	if movies, ok := c.cached(); ok {
		metrics.CatalogCacheTotal.WithLabelValues(metrics.OpGetMovies, metrics.CacheStatusHit).Inc()
		return movies
	}
	metrics.CatalogCacheTotal.WithLabelValues(metrics.OpGetMovies, metrics.CacheStatusMiss).Inc()

	// Coalesce concurrent misses into one remote fetch
	result, err, shared := c.sfGroup.Do("movies", func() (any, error) {
		return c.fetchAndCache(ctx)
	})

	if shared {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightShared).Inc()
	} else {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightInitiated).Inc()
	}

	if err != nil {
		log.Printf("[ERROR] Failed to fetch movie catalog: %v", err)
		return []domain.Movie{}
	}

	return result.([]domain.Movie)
}

// cached returns the movie list if a valid cache exists.
func (c *Cache) cached() ([]domain.Movie, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.movies != nil && c.now().Before(c.expiresAt) {
		return c.movies, true
	}
	return nil, false
}

// fetchAndCache performs the bounded bulk fetch and atomically
// replaces the cached (movies, expiry) pair on non-empty success.
func (c *Cache) fetchAndCache(ctx context.Context) ([]domain.Movie, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	movies, err := c.fetcher.FetchMovies(fetchCtx)
	if err != nil {
		metrics.CatalogFetchesTotal.WithLabelValues(metrics.OpGetMovies, metrics.StatusError).Inc()
		return nil, err
	}
	metrics.CatalogFetchesTotal.WithLabelValues(metrics.OpGetMovies, metrics.StatusSuccess).Inc()

	if len(movies) == 0 {
		// An empty catalog is not remembered; the next call retries
		log.Printf("[ERROR] Catalog service returned empty movie list")
		return []domain.Movie{}, nil
	}

	c.mu.Lock()
	c.movies = movies
	c.expiresAt = c.now().Add(c.ttl)
	c.mu.Unlock()

	return movies, nil
}

// GetMovieByID returns a movie by id, served from a valid cache when
// possible and fetched directly otherwise. The point fetch never
// populates the bulk cache. Returns nil on failure or when the movie
// does not exist.
func (c *Cache) GetMovieByID(ctx context.Context, id string) *domain.Movie {
	if movies, ok := c.cached(); ok {
		for i := range movies {
			if movies[i].ID == id {
				metrics.CatalogCacheTotal.WithLabelValues(metrics.OpGetMovieByID, metrics.CacheStatusHit).Inc()
				movie := movies[i]
				return &movie
			}
		}
	}
	metrics.CatalogCacheTotal.WithLabelValues(metrics.OpGetMovieByID, metrics.CacheStatusMiss).Inc()

	fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	movie, err := c.fetcher.FetchMovie(fetchCtx, id)
	if err != nil {
		log.Printf("[ERROR] Failed to fetch movie '%s': %v", id, err)
		metrics.CatalogFetchesTotal.WithLabelValues(metrics.OpGetMovieByID, metrics.StatusError).Inc()
		return nil
	}

	metrics.CatalogFetchesTotal.WithLabelValues(metrics.OpGetMovieByID, metrics.StatusSuccess).Inc()
	return movie
}

// SearchMovies always bypasses the cache and queries the remote
// search endpoint. Results are never cached.
func (c *Cache) SearchMovies(ctx context.Context, genre, title string) []domain.Movie {
	fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	movies, err := c.fetcher.SearchMovies(fetchCtx, genre, title)
	if err != nil {
		log.Printf("[ERROR] Failed to search movies (genre=%q, title=%q): %v", genre, title, err)
		metrics.CatalogFetchesTotal.WithLabelValues(metrics.OpSearch, metrics.StatusError).Inc()
		return []domain.Movie{}
	}

	metrics.CatalogFetchesTotal.WithLabelValues(metrics.OpSearch, metrics.StatusSuccess).Inc()
	if movies == nil {
		movies = []domain.Movie{}
	}
	return movies
}

// ClearCache resets the cached state immediately. The next GetMovies
// call forces a remote fetch.
func (c *Cache) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.movies = nil
	c.expiresAt = time.Time{}
}
