// Package app assembles the snapshot store backend selected in the configuration.
package app

import (
	"context"
	"fmt"

	"quiz-board/internal/adapter"
	"quiz-board/internal/cache"
	"quiz-board/internal/config"
	"quiz-board/internal/database"
	"quiz-board/internal/domain"
	"quiz-board/internal/logger"
	"quiz-board/internal/repository"

	"go.uber.org/zap"
)

// CloseFunc releases the backend connection.
type CloseFunc func() error

func noClose() error { return nil }

// OpenSnapshotCache connects the configured backend. Backend "none" returns a
// nil cache, which the snapshot store treats as persistence disabled.
func OpenSnapshotCache(ctx context.Context, cfg *config.Config) (domain.Cache, CloseFunc, error) {
	switch cfg.Store.Backend {
	case config.StoreNone:
		logger.Get().Warn("Snapshot persistence disabled")
		return nil, noClose, nil

	case config.StoreRedis:
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, noClose, err
		}
		logger.Get().Info("Snapshot store ready", zap.String("backend", "redis"), zap.String("address", cfg.Redis.Address))
		return adapter.NewRedisCacheAdapter(client), client.Close, nil

	case config.StoreSQLite, config.StoreOracle:
		driver, dsn, dialect := database.DriverSQLite, cfg.Store.DSN, repository.DialectSQLite
		if cfg.Store.Backend == config.StoreOracle {
			driver, dsn, dialect = database.DriverOracle, cfg.GetDSN(), repository.DialectOracle
		}

		db, err := database.NewSQLXDB(ctx, driver, dsn)
		if err != nil {
			return nil, noClose, err
		}
		if cfg.Store.AutoMigrate {
			if err := database.RunMigrations(ctx, db.DB, driver); err != nil {
				_ = db.Close()
				return nil, noClose, err
			}
		}
		kv, err := repository.NewKVDatabaseAdapter(db, dialect)
		if err != nil {
			_ = db.Close()
			return nil, noClose, err
		}
		logger.Get().Info("Snapshot store ready", zap.String("backend", cfg.Store.Backend))
		return kv, db.Close, nil

	default:
		return nil, noClose, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
