package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"intern-portal/internal/admin"
	"intern-portal/internal/applicants"
	"intern-portal/internal/services/health"
	"intern-portal/internal/shared/config"
	"intern-portal/internal/shared/server"
	"intern-portal/internal/shared/storage/db"
	"intern-portal/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Logger           *zap.Logger
	Router           *gin.Engine
	DB               *sql.DB
	ApplicantsRepo   applicants.Repo
	ApplicantsSvc    *applicants.Service
	AdminSvc         *admin.Service
	ApplicantHandler *applicants.Handler
	AdminHandler     *admin.Handler
	Health           *health.Service
}

// Build connects the store, runs migrations and wires services, handlers
// and the router. A configured database that cannot be reached is an error;
// an empty DATABASE_URL falls back to the in-memory store in dev only.
func Build(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	sqlDB, err := buildDB(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		Logger: logger,
		DB:     sqlDB,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		Logger:           logger,
		ApplicantHandler: app.ApplicantHandler,
		AdminHandler:     app.AdminHandler,
		Health:           app.Health,
	})
	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config, logger *zap.Logger) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if cfg.IsDevLike() {
			logger.Warn("bootstrap: DATABASE_URL empty; using in-memory applicant store")
			return nil, nil
		}
		return nil, errors.New("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions(), logger))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	logger.Info("db init", telemetry.Fields(db.PoolStats(sqlDB))...)

	version, err := db.RunMigrations(ctx, sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("db migrations applied", zap.Int64("version", version))
	return sqlDB, nil
}

func buildServices(app *App) {
	var repo applicants.Repo
	var pinger health.Pinger
	if app.DB != nil {
		repo = &applicants.PGRepo{DB: app.DB}
		pinger = app.DB
	} else {
		repo = applicants.NewMemoryRepo()
	}

	adminSvc := admin.NewService(app.Config.AdminUsername, app.Config.AdminPassword, app.Logger.Named("admin"))
	if !adminSvc.Configured() {
		app.Logger.Warn("bootstrap: admin credentials not configured; admin login will always fail")
	}
	app.Logger.Warn("bootstrap: admin login issues no session or token; applicant listing is unauthenticated")

	app.ApplicantsRepo = repo
	app.ApplicantsSvc = applicants.NewService(repo, app.Logger.Named("applicants"), app.Config.StoreTimeout)
	app.AdminSvc = adminSvc
	app.ApplicantHandler = applicants.NewHandler(app.ApplicantsSvc)
	app.AdminHandler = admin.NewHandler(adminSvc)
	app.Health = health.NewService(pinger, app.Config.StoreTimeout)
}
