package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/reelvault/reelvault/internal/domain"
	"github.com/reelvault/reelvault/internal/rental"
)

// Repository implements rental.Repository using SQLite. One row per
// rental, keyed by movie id; timestamps round-trip through the same
// columns the expiry sweep reads back.
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite rental repository at the given path.
func New(databasePath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", databasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for better concurrent read behavior
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

// PutRental upserts a rental keyed by its movie id.
func (r *Repository) PutRental(ctx context.Context, rec *domain.Rental) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rentals (movie_id, movie_title, rented_at, expires_at, price, image_url)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(movie_id) DO UPDATE SET
			movie_title = excluded.movie_title,
			rented_at = excluded.rented_at,
			expires_at = excluded.expires_at,
			price = excluded.price,
			image_url = excluded.image_url`,
		rec.MovieID, rec.MovieTitle, rec.RentedAt.UTC(), rec.ExpiresAt.UTC(), rec.Price, rec.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to put rental: %w", err)
	}
	return nil
}

// GetRental retrieves the rental for a movie id.
func (r *Repository) GetRental(ctx context.Context, movieID string) (*domain.Rental, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT movie_id, movie_title, rented_at, expires_at, price, image_url
		FROM rentals WHERE movie_id = ?`, movieID)

	rec, err := scanRental(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, rental.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get rental: %w", err)
	}

	return rec, nil
}

// GetAllRentals retrieves every stored rental.
func (r *Repository) GetAllRentals(ctx context.Context) ([]*domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT movie_id, movie_title, rented_at, expires_at, price, image_url
		FROM rentals`)
	if err != nil {
		return nil, fmt.Errorf("failed to get all rentals: %w", err)
	}
	defer rows.Close()

	var rentals []*domain.Rental
	for rows.Next() {
		rec, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rental: %w", err)
		}
		rentals = append(rentals, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rentals: %w", err)
	}

	return rentals, nil
}

// DeleteRental removes the rental for a movie id. Absent rows are a
// no-op.
func (r *Repository) DeleteRental(ctx context.Context, movieID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM rentals WHERE movie_id = ?", movieID); err != nil {
		return fmt.Errorf("failed to delete rental: %w", err)
	}
	return nil
}

// Close closes the repository connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// scanner matches both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRental(s scanner) (*domain.Rental, error) {
	var rec domain.Rental
	if err := s.Scan(&rec.MovieID, &rec.MovieTitle, &rec.RentedAt, &rec.ExpiresAt, &rec.Price, &rec.ImageURL); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Ensure Repository implements the interface
var _ rental.Repository = (*Repository)(nil)
