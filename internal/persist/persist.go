// Package persist loads and saves JSON snapshots of store state under
// namespaced keys of a domain.SnapshotRepository.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"printcraft/internal/domain"
)

// DefaultNamespace prefixes every key written by the storefront.
const DefaultNamespace = "printcraft"

// Adapter scopes a SnapshotRepository to a namespace. It never owns data;
// it only serializes values on behalf of the stores.
type Adapter struct {
	repo      domain.SnapshotRepository
	namespace string
	log       *zap.Logger
}

// New creates an Adapter. An empty namespace falls back to DefaultNamespace
// and a nil logger to a no-op logger.
func New(repo domain.SnapshotRepository, namespace string, log *zap.Logger) *Adapter {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{repo: repo, namespace: namespace, log: log}
}

// Key returns the namespaced storage key for name.
func (a *Adapter) Key(name string) string {
	return a.namespace + ":" + name
}

// Slot is a typed handle on a single key.
type Slot[T any] struct {
	a   *Adapter
	key string
}

// NewSlot returns the slot for name in a's namespace.
func NewSlot[T any](a *Adapter, name string) *Slot[T] {
	return &Slot[T]{a: a, key: a.Key(name)}
}

// Key returns the fully qualified key of the slot.
func (s *Slot[T]) Key() string { return s.key }

// Load reads the slot. It reports false when the slot was never written,
// holds malformed data, or cannot be read: callers substitute their empty
// default in every case.
func (s *Slot[T]) Load(ctx context.Context) (T, bool) {
	var zero T
	raw, err := s.a.repo.Get(ctx, s.key)
	if errors.Is(err, domain.ErrSnapshotNotFound) {
		return zero, false
	}
	if err != nil {
		s.a.log.Warn("snapshot read failed, using default", zap.String("key", s.key), zap.Error(err))
		return zero, false
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.a.log.Warn("snapshot corrupt, using default", zap.String("key", s.key), zap.Error(err))
		return zero, false
	}
	return v, true
}

// Save writes the complete value to the slot.
func (s *Slot[T]) Save(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", s.key, err)
	}
	if err := s.a.repo.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}

// Remove deletes the slot. Removing an empty slot is not an error.
func (s *Slot[T]) Remove(ctx context.Context) error {
	if err := s.a.repo.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("remove %s: %w", s.key, err)
	}
	return nil
}
