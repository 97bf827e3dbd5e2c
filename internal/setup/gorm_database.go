package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/vitrine/internal/config"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

var getGormDatabaseFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gorm.DB, error) {
	dialector := gormlite.Open(conf.Storage.Database.DSN)

	level := slog.Level(conf.Logger.Level)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(level)),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if level == slog.LevelDebug {
		db = db.Debug()
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA journal_mode=wal; PRAGMA busy_timeout=5000").Error; err != nil {
		return nil, errors.Wrapf(err, "could not configure database '%s'", conf.Storage.Database.DSN)
	}

	slog.DebugContext(ctx, "database opened", slog.String("dsn", conf.Storage.Database.DSN))

	return db, nil
})

func gormLogLevel(level slog.Level) logger.LogLevel {
	switch level {
	case slog.LevelWarn:
		return logger.Warn
	case slog.LevelInfo, slog.LevelDebug:
		return logger.Info
	default:
		return logger.Error
	}
}
