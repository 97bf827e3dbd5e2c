package gorm

import (
	"context"

	"github.com/bornholm/vitrine/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WidgetStore implements port.KeyValueStore on top of a gorm database.
type WidgetStore struct {
	retrier *retrier
}

// Get implements port.KeyValueStore.
func (s *WidgetStore) Get(ctx context.Context, scope string, key string) ([]byte, error) {
	var entry WidgetEntry

	err := s.retrier.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&entry, "scope = ? AND name = ?", scope, key).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return entry.Value, nil
}

// Put implements port.KeyValueStore.
func (s *WidgetStore) Put(ctx context.Context, scope string, key string, value []byte) error {
	err := s.retrier.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		entry := &WidgetEntry{
			Scope: scope,
			Name:  key,
			Value: value,
		}

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "scope"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(entry).Error
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Delete implements port.KeyValueStore.
func (s *WidgetStore) Delete(ctx context.Context, scope string, key string) error {
	err := s.retrier.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Delete(&WidgetEntry{}, "scope = ? AND name = ?", scope, key).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Keys implements port.KeyValueStore.
func (s *WidgetStore) Keys(ctx context.Context, scope string) ([]string, error) {
	var keys []string

	err := s.retrier.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		err := db.Model(&WidgetEntry{}).
			Where("scope = ?", scope).
			Order("name asc").
			Pluck("name", &keys).Error
		if err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if keys == nil {
		keys = make([]string, 0)
	}

	return keys, nil
}

func NewWidgetStore(db *gorm.DB) *WidgetStore {
	return &WidgetStore{
		retrier: &retrier{
			getDatabase: createGetDatabase(db, &WidgetEntry{}),
		},
	}
}

var _ port.KeyValueStore = &WidgetStore{}
