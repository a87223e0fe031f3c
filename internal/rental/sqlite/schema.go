package sqlite

import (
	"context"
	"fmt"
)

// A single row per rental, keyed by movie id. The expires_at index
// serves the expiry sweep.
const schema = `
CREATE TABLE IF NOT EXISTS rentals (
	movie_id TEXT PRIMARY KEY,
	movie_title TEXT NOT NULL,
	rented_at DATETIME NOT NULL,
	expires_at DATETIME NOT NULL,
	price REAL NOT NULL DEFAULT 0,
	image_url TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_rentals_expires_at ON rentals(expires_at);
`

// runMigrations applies the rental schema. Statements are idempotent
// so reopening an existing database is safe.
func (r *Repository) runMigrations(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
