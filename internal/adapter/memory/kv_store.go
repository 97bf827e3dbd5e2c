package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/bornholm/vitrine/internal/core/port"
	"github.com/pkg/errors"
)

type KeyValueStore struct {
	mu      sync.RWMutex
	entries map[string]map[string][]byte
}

// Get implements port.KeyValueStore.
func (s *KeyValueStore) Get(ctx context.Context, scope string, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, exists := s.entries[scope][key]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return slices.Clone(value), nil
}

// Put implements port.KeyValueStore.
func (s *KeyValueStore) Put(ctx context.Context, scope string, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, exists := s.entries[scope]
	if !exists {
		entries = map[string][]byte{}
		s.entries[scope] = entries
	}

	entries[key] = slices.Clone(value)

	return nil
}

// Delete implements port.KeyValueStore.
func (s *KeyValueStore) Delete(ctx context.Context, scope string, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, exists := s.entries[scope]
	if !exists {
		return nil
	}

	delete(entries, key)

	if len(entries) == 0 {
		delete(s.entries, scope)
	}

	return nil
}

// Keys implements port.KeyValueStore.
func (s *KeyValueStore) Keys(ctx context.Context, scope string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries[scope]))
	for k := range s.entries[scope] {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys, nil
}

func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{
		entries: map[string]map[string][]byte{},
	}
}

var _ port.KeyValueStore = &KeyValueStore{}
