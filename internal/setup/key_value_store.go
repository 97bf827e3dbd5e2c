package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/vitrine/internal/adapter/cache"
	gormAdapter "github.com/bornholm/vitrine/internal/adapter/gorm"
	"github.com/bornholm/vitrine/internal/adapter/memory"
	"github.com/bornholm/vitrine/internal/config"
	"github.com/bornholm/vitrine/internal/core/port"
	"github.com/bornholm/vitrine/internal/core/widget"
	"github.com/pkg/errors"
)

// DSNMemory keeps widget payloads in memory only.
const DSNMemory = ":memory:"

var getKeyValueStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.KeyValueStore, error) {
	if conf.Storage.Database.DSN == DSNMemory {
		slog.DebugContext(ctx, "using in-memory widget store")
		return memory.NewKeyValueStore(), nil
	}

	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var store port.KeyValueStore = gormAdapter.NewWidgetStore(db)

	if conf.Storage.Database.Cache.Enabled {
		slog.DebugContext(ctx, "using cached widget store", slog.Duration("ttl", conf.Storage.Database.Cache.TTL), slog.Int("cache_size", conf.Storage.Database.Cache.Size))
		store = cache.NewWidgetStore(store, conf.Storage.Database.Cache.Size, conf.Storage.Database.Cache.TTL)
	}

	return store, nil
})

var getWidgetsFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*widget.Widgets, error) {
	store, err := getKeyValueStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create key value store from config")
	}

	return widget.NewWidgets(store), nil
})
