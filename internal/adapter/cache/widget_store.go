package cache

import (
	"context"
	"slices"
	"time"

	"github.com/bornholm/vitrine/internal/core/port"
)

// WidgetStore caches reads of a port.KeyValueStore. Writes go through to the
// backend before the cache entry is replaced.
type WidgetStore struct {
	backend port.KeyValueStore
	cache   *MultiIndexCache[*CacheableWidgetEntry]
}

// Get implements [port.KeyValueStore].
func (s *WidgetStore) Get(ctx context.Context, scope string, key string) ([]byte, error) {
	if entry, exists := s.cache.Get(getWidgetEntryCacheKey(scope, key)); exists {
		return slices.Clone(entry.value), nil
	}

	value, err := s.backend.Get(ctx, scope, key)
	if err != nil {
		return nil, err
	}

	s.cache.Add(NewCacheableWidgetEntry(scope, key, slices.Clone(value)))

	return value, nil
}

// Put implements [port.KeyValueStore].
func (s *WidgetStore) Put(ctx context.Context, scope string, key string, value []byte) error {
	defer s.cache.Remove(getWidgetEntryCacheKey(scope, key))

	if err := s.backend.Put(ctx, scope, key, value); err != nil {
		return err
	}

	return nil
}

// Delete implements [port.KeyValueStore].
func (s *WidgetStore) Delete(ctx context.Context, scope string, key string) error {
	defer s.cache.Remove(getWidgetEntryCacheKey(scope, key))

	return s.backend.Delete(ctx, scope, key)
}

// Keys implements [port.KeyValueStore].
func (s *WidgetStore) Keys(ctx context.Context, scope string) ([]string, error) {
	return s.backend.Keys(ctx, scope)
}

func NewWidgetStore(backend port.KeyValueStore, size int, ttl time.Duration) *WidgetStore {
	return &WidgetStore{
		backend: backend,
		cache:   NewMultiIndexCache[*CacheableWidgetEntry](size, ttl),
	}
}

var _ port.KeyValueStore = &WidgetStore{}
