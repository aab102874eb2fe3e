// Package memory implements an in-memory snapshot repository for development and testing.
package memory

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"

	"printcraft/internal/domain"
)

// DB implements an in-memory snapshot storage. Values are copied on the way
// in and out so callers never share buffers with the store.
type DB struct {
	mu        sync.Mutex
	snapshots map[string][]byte

	writes int
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		snapshots: make(map[string][]byte),
	}
}

// Ensure interfaces are met.
var _ domain.SnapshotRepository = (*DB)(nil)

// Get returns a copy of the value stored under key.
func (db *DB) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	v, ok := db.snapshots[key]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	return bytes.Clone(v), nil
}

// Put stores a copy of value under key, replacing any previous value.
func (db *DB) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	db.snapshots[key] = bytes.Clone(value)
	db.writes++
	return nil
}

// Delete removes key. Missing keys are ignored.
func (db *DB) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.snapshots, key)
	return nil
}

// --- test helpers ---

// Keys returns the stored keys with the given prefix, sorted.
func (db *DB) Keys(prefix string) []string {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []string
	for k := range db.snapshots {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Writes returns the number of successful Put calls.
func (db *DB) Writes() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.writes
}
