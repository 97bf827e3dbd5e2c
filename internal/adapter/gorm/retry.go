package gorm

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	maxRetries  = 5
	baseBackoff = 50 * time.Millisecond
)

type retrier struct {
	getDatabase func(ctx context.Context) (*gorm.DB, error)
	writeLock   sync.Mutex
}

// withRetry runs fn, retrying when it fails with one of the given sqlite
// error codes. Writes are serialized.
func (r *retrier) withRetry(ctx context.Context, write bool, fn func(ctx context.Context, db *gorm.DB) error, codes ...sqlite3.ErrorCode) error {
	if write {
		r.writeLock.Lock()
		defer r.writeLock.Unlock()
	}

	db, err := r.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	db = db.WithContext(ctx)

	backoff := baseBackoff

	for attempt := 0; ; attempt++ {
		err = fn(ctx, db)
		if err == nil {
			return nil
		}

		if attempt >= maxRetries || !isRetryable(err, codes...) {
			return errors.WithStack(err)
		}

		slog.DebugContext(ctx, "retrying database operation", slog.Int("attempt", attempt+1), slog.Any("error", err))

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(backoff):
		}

		backoff *= 2
	}
}

func isRetryable(err error, codes ...sqlite3.ErrorCode) bool {
	for _, c := range codes {
		if errors.Is(err, c) {
			return true
		}
	}

	return false
}

func createGetDatabase(db *gorm.DB, models ...any) func(ctx context.Context) (*gorm.DB, error) {
	var (
		migrateOnce sync.Once
		migrateErr  error
	)

	return func(ctx context.Context) (*gorm.DB, error) {
		migrateOnce.Do(func() {
			if err := db.AutoMigrate(models...); err != nil {
				migrateErr = errors.WithStack(err)
				return
			}
		})
		if migrateErr != nil {
			return nil, errors.WithStack(migrateErr)
		}

		return db, nil
	}
}
