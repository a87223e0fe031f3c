package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/reelvault/reelvault/internal/domain"
	"github.com/reelvault/reelvault/internal/movies"
)

// Repository implements movies.Repository using SQLite.
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite movie repository at the given path.
func New(databasePath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", databasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	repo := &Repository{db: db}

	if err := repo.runMigrations(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

const movieColumns = "id, title, rating, price, image_url, description, genre, release_year"

// GetMovies retrieves movies up to the given limit.
func (r *Repository) GetMovies(ctx context.Context, limit int) ([]domain.Movie, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+movieColumns+" FROM movies ORDER BY title LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get movies: %w", err)
	}
	defer rows.Close()

	return collectMovies(rows)
}

// GetMovie retrieves a single movie by id.
func (r *Repository) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+movieColumns+" FROM movies WHERE id = ?", id)

	var m domain.Movie
	if err := scanMovie(row, &m); err != nil {
		if err == sql.ErrNoRows {
			return nil, movies.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	return &m, nil
}

// SearchMovies retrieves movies matching the given filters. Genre is
// matched exactly, title as a case-insensitive substring.
func (r *Repository) SearchMovies(ctx context.Context, genre, title string, limit int) ([]domain.Movie, error) {
	query := "SELECT " + movieColumns + " FROM movies WHERE 1=1"
	var args []any

	if genre != "" {
		query += " AND genre = ?"
		args = append(args, genre)
	}
	if title != "" {
		query += " AND title LIKE '%' || ? || '%' COLLATE NOCASE"
		args = append(args, title)
	}

	query += " ORDER BY rating DESC, title LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}
	defer rows.Close()

	return collectMovies(rows)
}

// CreateMovie persists a movie, assigning an id when none is set.
func (r *Repository) CreateMovie(ctx context.Context, movie domain.Movie) (*domain.Movie, error) {
	if movie.ID == "" {
		movie.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO movies (id, title, rating, price, image_url, description, genre, release_year)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		movie.ID, movie.Title, movie.Rating, movie.Price, movie.ImageURL,
		movie.Description, movie.Genre, movie.ReleaseYear)
	if err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	return &movie, nil
}

// CountMovies returns the number of stored movies.
func (r *Repository) CountMovies(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return count, nil
}

// Close closes the repository connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMovie(s scanner, m *domain.Movie) error {
	return s.Scan(&m.ID, &m.Title, &m.Rating, &m.Price, &m.ImageURL,
		&m.Description, &m.Genre, &m.ReleaseYear)
}

func collectMovies(rows *sql.Rows) ([]domain.Movie, error) {
	var result []domain.Movie
	for rows.Next() {
		var m domain.Movie
		if err := scanMovie(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movies: %w", err)
	}

	return result, nil
}

// Ensure Repository implements the interface
var _ movies.Repository = (*Repository)(nil)
