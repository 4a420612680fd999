package main

// Run database migrations:
//   go run ./cmd/migrate

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"intern-portal/internal/shared/config"
	"intern-portal/internal/shared/storage/db"
	"intern-portal/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	logger, err := telemetry.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions(), logger)
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		logger.Error("failed to connect database", zap.Error(err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	version, err := db.RunMigrations(ctx, sqlDB)
	if err != nil {
		logger.Error("failed to run migrations", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("migrations applied", zap.Int64("version", version))
}
