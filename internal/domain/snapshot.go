package domain

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound indicates that a key was never written or was removed.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotRepository is the port for durable key-value storage of serialized
// snapshots. Get returns ErrSnapshotNotFound for missing keys; Delete of a
// missing key is not an error.
type SnapshotRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
