package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reelvault/reelvault/internal/catalog/mocks"
	"github.com/reelvault/reelvault/internal/domain"
)

// testClock is an advanceable fake clock.
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestCache(fetcher *mocks.Fetcher, clock *testClock) *Cache {
	return NewCache(fetcher, Config{
		TTL:          5 * time.Minute,
		FetchTimeout: 15 * time.Second,
		Now:          clock.Now,
	})
}

var testMovies = []domain.Movie{
	{ID: "1", Title: "The Matrix", Genre: "Sci-Fi", Rating: 8.7, Price: 4.99},
	{ID: "3", Title: "The Dark Knight", Genre: "Action", Rating: 9.0, Price: 5.99},
}

func TestCache_GetMovies_CachesWithinWindow(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()

	fetcher := &mocks.Fetcher{}
	fetcher.On("FetchMovies", mock.Anything).Return(testMovies, nil).Once()

	cache := newTestCache(fetcher, clock)

	// First call fetches and caches
	assert.Equal(t, testMovies, cache.GetMovies(ctx))

	// Second call within the window is served from cache
	clock.Advance(4 * time.Minute)
	assert.Equal(t, testMovies, cache.GetMovies(ctx))

	fetcher.AssertNumberOfCalls(t, "FetchMovies", 1)
}

func TestCache_GetMovies_ConcurrentMissesCoalesce(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()

	// The remote fetch blocks until released, so every caller arrives
	// while the first fetch is still in flight
	release := make(chan struct{})
	fetcher := &mocks.Fetcher{}
	fetcher.On("FetchMovies", mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(testMovies, nil)

	cache := newTestCache(fetcher, clock)

	const callers = 10
	results := make([][]domain.Movie, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cache.GetMovies(ctx)
		}(i)
	}

	// Give every goroutine time to reach the coalesced fetch, then
	// let it complete
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		assert.Equal(t, testMovies, results[i])
	}
	fetcher.AssertNumberOfCalls(t, "FetchMovies", 1)
}

func TestCache_GetMovies_RefetchesAfterExpiry(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()

	fetcher := &mocks.Fetcher{}
	fetcher.On("FetchMovies", mock.Anything).Return(testMovies, nil)

	cache := newTestCache(fetcher, clock)

	cache.GetMovies(ctx)
	clock.Advance(5*time.Minute + time.Second)
	cache.GetMovies(ctx)

	fetcher.AssertNumberOfCalls(t, "FetchMovies", 2)
}

func TestCache_GetMovies_FailedFetchNotCached(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()

	fetcher := &mocks.Fetcher{}
	fetcher.On("FetchMovies", mock.Anything).Return(nil, assert.AnError).Once()
	fetcher.On("FetchMovies", mock.Anything).Return(testMovies, nil).Once()

	cache := newTestCache(fetcher, clock)

	// Failure degrades to empty and is not remembered
	assert.Empty(t, cache.GetMovies(ctx))

	// The very next call retries and succeeds
	assert.Equal(t, testMovies, cache.GetMovies(ctx))
	fetcher.AssertNumberOfCalls(t, "FetchMovies", 2)
}

func TestCache_GetMovies_EmptyResultNotCached(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()

	fetcher := &mocks.Fetcher{}
	fetcher.On("FetchMovies", mock.Anything).Return([]domain.Movie{}, nil)

	cache := newTestCache(fetcher, clock)

	assert.Empty(t, cache.GetMovies(ctx))
	assert.Empty(t, cache.GetMovies(ctx))

	// An empty catalog is never remembered as "the" catalog
	fetcher.AssertNumberOfCalls(t, "FetchMovies", 2)
}

func TestCache_GetMovieByID(t *testing.T) {
	ctx := context.Background()

	t.Run("served from valid cache without remote call", func(t *testing.T) {
		clock := newTestClock()
		fetcher := &mocks.Fetcher{}
		fetcher.On("FetchMovies", mock.Anything).Return(testMovies, nil).Once()

		cache := newTestCache(fetcher, clock)
		cache.GetMovies(ctx)

		movie := cache.GetMovieByID(ctx, "3")
		require.NotNil(t, movie)
		assert.Equal(t, "The Dark Knight", movie.Title)

		fetcher.AssertNotCalled(t, "FetchMovie", mock.Anything, mock.Anything)
	})

	t.Run("cache miss falls through to point fetch", func(t *testing.T) {
		clock := newTestClock()
		fetcher := &mocks.Fetcher{}
		fetcher.On("FetchMovies", mock.Anything).Return(testMovies, nil).Once()
		fetcher.On("FetchMovie", mock.Anything, "99").
			Return(&domain.Movie{ID: "99", Title: "Obscure Movie"}, nil)

		cache := newTestCache(fetcher, clock)
		cache.GetMovies(ctx)

		// Id absent from the valid cache
		movie := cache.GetMovieByID(ctx, "99")
		require.NotNil(t, movie)
		assert.Equal(t, "Obscure Movie", movie.Title)

		// The point fetch does not populate the bulk cache
		fetcher.AssertNumberOfCalls(t, "FetchMovies", 1)
	})

	t.Run("expired cache forces point fetch", func(t *testing.T) {
		clock := newTestClock()
		fetcher := &mocks.Fetcher{}
		fetcher.On("FetchMovies", mock.Anything).Return(testMovies, nil).Once()
		fetcher.On("FetchMovie", mock.Anything, "3").
			Return(&domain.Movie{ID: "3", Title: "The Dark Knight"}, nil)

		cache := newTestCache(fetcher, clock)
		cache.GetMovies(ctx)
		clock.Advance(6 * time.Minute)

		movie := cache.GetMovieByID(ctx, "3")
		require.NotNil(t, movie)
		fetcher.AssertCalled(t, "FetchMovie", mock.Anything, "3")
	})

	t.Run("fetch failure degrades to nil", func(t *testing.T) {
		clock := newTestClock()
		fetcher := &mocks.Fetcher{}
		fetcher.On("FetchMovie", mock.Anything, "3").Return(nil, assert.AnError)

		cache := newTestCache(fetcher, clock)
		assert.Nil(t, cache.GetMovieByID(ctx, "3"))
	})
}

func TestCache_SearchMovies_BypassesCache(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()

	fetcher := &mocks.Fetcher{}
	fetcher.On("FetchMovies", mock.Anything).Return(testMovies, nil).Once()
	fetcher.On("SearchMovies", mock.Anything, "Sci-Fi", "matrix").
		Return([]domain.Movie{testMovies[0]}, nil)

	cache := newTestCache(fetcher, clock)
	cache.GetMovies(ctx)

	// Search always hits the remote endpoint, valid cache or not
	result := cache.SearchMovies(ctx, "Sci-Fi", "matrix")
	require.Len(t, result, 1)
	assert.Equal(t, "The Matrix", result[0].Title)

	cache.SearchMovies(ctx, "Sci-Fi", "matrix")
	fetcher.AssertNumberOfCalls(t, "SearchMovies", 2)
}

func TestCache_SearchMovies_FailureDegradesToEmpty(t *testing.T) {
	ctx := context.Background()

	fetcher := &mocks.Fetcher{}
	fetcher.On("SearchMovies", mock.Anything, "", "nope").Return(nil, assert.AnError)

	cache := newTestCache(fetcher, newTestClock())
	result := cache.SearchMovies(ctx, "", "nope")
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestCache_ClearCache(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()

	fetcher := &mocks.Fetcher{}
	fetcher.On("FetchMovies", mock.Anything).Return(testMovies, nil)

	cache := newTestCache(fetcher, clock)

	cache.GetMovies(ctx)
	cache.ClearCache()
	cache.GetMovies(ctx)

	// Clearing forces the next call to refetch inside the window
	fetcher.AssertNumberOfCalls(t, "FetchMovies", 2)
}
