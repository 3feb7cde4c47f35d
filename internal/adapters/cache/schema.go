package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the Postgres tables used by SQLDirectionsCache.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDirectionsCacheQuery := `
	CREATE TABLE IF NOT EXISTS directions_cache (
        cache_key TEXT PRIMARY KEY,
        profile TEXT NOT NULL,
        distance_meters DOUBLE PRECISION NOT NULL,
        payload JSONB NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_directions_cache_created_at
    ON directions_cache(created_at);
	`

	statements := []string{
		createDirectionsCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// PurgeOlderThan deletes cached routes created before the cutoff age.
func PurgeOlderThan(ctx context.Context, db *sql.DB, age string) (int64, error) {
	if db == nil {
		return 0, errors.New("purge directions cache: DB is nil")
	}

	res, err := db.ExecContext(ctx, `
	DELETE FROM directions_cache
	WHERE created_at < now() - $1::interval;
	`, age)
	if err != nil {
		return 0, fmt.Errorf("purge directions cache: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge directions cache: rows affected: %w", err)
	}
	return n, nil
}
