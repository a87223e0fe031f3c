package sqlite

import (
	"context"
	"fmt"
)

// Index shapes mirror the catalog query paths: title search, genre
// filtering, and genre+rating listings.
const schema = `
CREATE TABLE IF NOT EXISTS movies (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	rating REAL NOT NULL DEFAULT 0,
	price REAL NOT NULL DEFAULT 0,
	image_url TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	genre TEXT NOT NULL DEFAULT '',
	release_year INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_movies_title ON movies(title);
CREATE INDEX IF NOT EXISTS idx_movies_genre ON movies(genre);
CREATE INDEX IF NOT EXISTS idx_movies_rating ON movies(rating DESC);
CREATE INDEX IF NOT EXISTS idx_movies_genre_rating ON movies(genre, rating DESC);
`

// runMigrations applies the catalog schema. Statements are idempotent
// so reopening an existing database is safe.
func (r *Repository) runMigrations(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
