package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelvault/reelvault/internal/domain"
	"github.com/reelvault/reelvault/internal/movies"
)

func setupSeededRepo(t *testing.T) *Repository {
	t.Helper()

	repo, err := New(filepath.Join(t.TempDir(), "movies.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, repo.Close())
	})

	require.NoError(t, movies.SeedCatalog(context.Background(), repo))
	return repo
}

func TestSeedCatalog(t *testing.T) {
	repo := setupSeededRepo(t)
	ctx := context.Background()

	count, err := repo.CountMovies(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8), count)

	// Seeding again is a no-op
	require.NoError(t, movies.SeedCatalog(ctx, repo))
	count, err = repo.CountMovies(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8), count)
}

func TestRepository_GetMovies(t *testing.T) {
	repo := setupSeededRepo(t)

	result, err := repo.GetMovies(context.Background(), 100)
	require.NoError(t, err)
	assert.Len(t, result, 8)

	limited, err := repo.GetMovies(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, limited, 3)
}

func TestRepository_GetMovie(t *testing.T) {
	repo := setupSeededRepo(t)
	ctx := context.Background()

	movie, err := repo.GetMovie(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "The Dark Knight", movie.Title)
	assert.Equal(t, "Action", movie.Genre)
	assert.Equal(t, 9.0, movie.Rating)
	assert.Equal(t, 5.99, movie.Price)
	assert.Equal(t, 2008, movie.ReleaseYear)

	_, err = repo.GetMovie(ctx, "missing")
	assert.ErrorIs(t, err, movies.ErrNotFound)
}

func TestRepository_SearchMovies(t *testing.T) {
	repo := setupSeededRepo(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		genre      string
		title      string
		wantTitles []string
	}{
		{
			name:       "genre exact match",
			genre:      "Crime",
			wantTitles: []string{"Pulp Fiction"},
		},
		{
			name:       "genre is not a substring match",
			genre:      "Sci",
			wantTitles: nil,
		},
		{
			name:       "title case-insensitive substring",
			title:      "dark",
			wantTitles: []string{"The Dark Knight"},
		},
		{
			name:       "genre and title combine with AND",
			genre:      "Sci-Fi",
			title:      "inter",
			wantTitles: []string{"Interstellar"},
		},
		{
			name:       "AND semantics excludes cross matches",
			genre:      "Drama",
			title:      "matrix",
			wantTitles: nil,
		},
		{
			name:       "no filters returns everything",
			wantTitles: []string{"The Shawshank Redemption", "The Dark Knight", "Pulp Fiction", "Forrest Gump", "Inception", "The Matrix", "Interstellar", "Avatar"}, // rating desc, title tiebreak
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repo.SearchMovies(ctx, tt.genre, tt.title, 50)
			require.NoError(t, err)

			var titles []string
			for _, m := range result {
				titles = append(titles, m.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestRepository_SearchMovies_Limit(t *testing.T) {
	repo := setupSeededRepo(t)

	result, err := repo.SearchMovies(context.Background(), "", "", 2)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestRepository_CreateMovie_AssignsID(t *testing.T) {
	repo := setupSeededRepo(t)
	ctx := context.Background()

	created, err := repo.CreateMovie(ctx, domain.Movie{
		Title:       "Blade Runner",
		Rating:      8.1,
		Price:       3.99,
		Genre:       "Sci-Fi",
		ReleaseYear: 1982,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	retrieved, err := repo.GetMovie(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blade Runner", retrieved.Title)
}
