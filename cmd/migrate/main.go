package main

import (
	"context"
	"log"

	"quiz-board/internal/config"
	"quiz-board/internal/database"
	"quiz-board/internal/logger"

	"go.uber.org/zap"
)

// Applies the kv_store schema for the configured SQL backend.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer func() { _ = logger.Sync() }()

	var driver, dsn string
	switch cfg.Store.Backend {
	case config.StoreSQLite:
		driver, dsn = database.DriverSQLite, cfg.Store.DSN
	case config.StoreOracle:
		driver, dsn = database.DriverOracle, cfg.GetDSN()
	default:
		l.Info("Nothing to migrate", zap.String("backend", cfg.Store.Backend))
		return
	}

	ctx := context.Background()
	db, err := database.NewSQLXDB(ctx, driver, dsn)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db.DB, driver); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations completed successfully", zap.String("driver", driver))
}
