package cache

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/vitrine/internal/adapter/memory"
	"github.com/bornholm/vitrine/internal/core/port"
	"github.com/pkg/errors"
)

type countingStore struct {
	port.KeyValueStore
	gets int
}

func (s *countingStore) Get(ctx context.Context, scope string, key string) ([]byte, error) {
	s.gets++
	return s.KeyValueStore.Get(ctx, scope, key)
}

func TestWidgetStore(t *testing.T) {
	ctx := context.Background()

	backend := &countingStore{KeyValueStore: memory.NewKeyValueStore()}
	store := NewWidgetStore(backend, 10, time.Minute)

	if err := store.Put(ctx, "session", "key", []byte("v1")); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for range 3 {
		value, err := store.Get(ctx, "session", "key")
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := "v1", string(value); e != g {
			t.Errorf("store.Get(): expected %s, got %s", e, g)
		}
	}

	if e, g := 1, backend.gets; e != g {
		t.Errorf("backend.gets: expected %d, got %d", e, g)
	}

	if err := store.Put(ctx, "session", "key", []byte("v2")); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	value, err := store.Get(ctx, "session", "key")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "v2", string(value); e != g {
		t.Errorf("store.Get(): expected %s after write, got %s", e, g)
	}

	if err := store.Delete(ctx, "session", "key"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := store.Get(ctx, "session", "key"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("store.Get(): expected port.ErrNotFound after delete, got %+v", err)
	}
}
