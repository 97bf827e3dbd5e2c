package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/vitrine/internal/core/port"
	"github.com/bornholm/vitrine/internal/metrics"
	"github.com/pkg/errors"
)

var (
	errInvalidJSON     = errors.New("invalid json")
	errUnknownVersion  = errors.New("unknown version")
	errMissingUpgrader = errors.New("missing upgrader")
)

const (
	reasonRead    = "read"
	reasonCorrupt = "corrupt"
	reasonVersion = "version"
	reasonUpgrade = "upgrade"
)

type Store[T any] struct {
	backend port.KeyValueStore
	schema  Schema[T]
}

func NewStore[T any](backend port.KeyValueStore, schema Schema[T]) *Store[T] {
	return &Store[T]{
		backend: backend,
		schema:  schema,
	}
}

func (s *Store[T]) Key() string {
	return s.schema.Key
}

// Load returns the stored value. It never fails: a missing, unreadable or
// unsupported payload yields the schema default. An upgraded or repaired
// payload is written back so that generated ids stay stable across loads.
func (s *Store[T]) Load(ctx context.Context, scope string) T {
	ctx = slogx.WithAttrs(ctx, slog.String("widget", s.schema.Key))

	raw, err := s.backend.Get(ctx, scope, s.schema.Key)
	if err != nil {
		if !errors.Is(err, port.ErrNotFound) {
			s.fallback(ctx, reasonRead, err)
		}
		return s.schema.defaultValue()
	}

	value, repaired, reason, err := s.decode(raw)
	if err != nil {
		s.fallback(ctx, reason, err)
		return s.schema.defaultValue()
	}

	if repaired {
		if err := s.Save(ctx, scope, value); err != nil {
			slog.WarnContext(ctx, "could not write back repaired widget payload", slogx.Error(err))
		}
	}

	return value
}

// Save writes the value with the current schema version.
func (s *Store[T]) Save(ctx context.Context, scope string, value T) error {
	if s.schema.Normalize != nil {
		value = s.schema.Normalize(value)
	}

	raw, err := wrap(s.schema.Version, value)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.backend.Put(ctx, scope, s.schema.Key, raw); err != nil {
		return errors.Wrapf(err, "could not write widget '%s'", s.schema.Key)
	}

	metrics.WidgetWrites.With(map[string]string{metrics.LabelKey: s.schema.Key}).Inc()

	return nil
}

// Update loads the current value, applies fn and saves the result.
func (s *Store[T]) Update(ctx context.Context, scope string, fn func(T) T) (T, error) {
	value := fn(s.Load(ctx, scope))

	if err := s.Save(ctx, scope, value); err != nil {
		return value, errors.WithStack(err)
	}

	return value, nil
}

// Reset removes the stored value.
func (s *Store[T]) Reset(ctx context.Context, scope string) error {
	if err := s.backend.Delete(ctx, scope, s.schema.Key); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// decode reads a stored payload. repaired reports whether the value differs
// from what is stored, either because it was upgraded from an older version
// or because normalization changed it.
func (s *Store[T]) decode(raw []byte) (value T, repaired bool, reason string, err error) {
	version, data, err := unwrap(raw)
	if err != nil {
		return value, false, reasonCorrupt, errors.WithStack(err)
	}

	if version > s.schema.Version || version < 0 {
		return value, false, reasonVersion, errors.Wrapf(errUnknownVersion, "version %d", version)
	}

	stored := data

	for v := version; v < s.schema.Version; v++ {
		upgrade, exists := s.schema.Upgrades[v]
		if !exists {
			return value, false, reasonUpgrade, errors.Wrapf(errMissingUpgrader, "from version %d", v)
		}

		data, err = upgrade(data)
		if err != nil {
			return value, false, reasonUpgrade, errors.Wrapf(err, "could not upgrade from version %d", v)
		}
	}

	if err := json.Unmarshal(data, &value); err != nil {
		return value, false, reasonCorrupt, errors.WithStack(err)
	}

	if s.schema.Normalize != nil {
		value = s.schema.Normalize(value)
	}

	repaired = version < s.schema.Version || !sameJSON(stored, value)

	return value, repaired, "", nil
}

func sameJSON(stored json.RawMessage, value any) bool {
	encoded, err := json.Marshal(value)
	if err != nil {
		return false
	}

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, stored); err != nil {
		return false
	}

	return bytes.Equal(compacted.Bytes(), encoded)
}

func (s *Store[T]) fallback(ctx context.Context, reason string, err error) {
	slog.WarnContext(ctx, "could not load widget payload, using default", slog.String("reason", reason), slogx.Error(err))
	metrics.WidgetLoadFallbacks.With(map[string]string{
		metrics.LabelKey:    s.schema.Key,
		metrics.LabelReason: reason,
	}).Inc()
}
