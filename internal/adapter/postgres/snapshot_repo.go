package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"printcraft/internal/domain"
)

var _ domain.SnapshotRepository = (*DB)(nil)

// Get retrieves the snapshot stored under key.
func (d *DB) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := d.sql.QueryRowContext(ctx,
		"SELECT value FROM snapshots WHERE key = $1",
		key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put upserts the snapshot stored under key.
func (d *DB) Put(ctx context.Context, key string, value []byte) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO snapshots (key, value, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value, time.Now().UTC(),
	)
	return err
}

// Delete deletes the snapshot stored under key.
func (d *DB) Delete(ctx context.Context, key string) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM snapshots WHERE key = $1", key)
	return err
}
