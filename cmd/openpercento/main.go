package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/services"
	"github.com/captainmuzzol/OpenPercento/internal/handlers"
	"github.com/captainmuzzol/OpenPercento/internal/middleware"
	"github.com/captainmuzzol/OpenPercento/internal/platform/config"
	"github.com/captainmuzzol/OpenPercento/internal/platform/scheduler"
	"github.com/captainmuzzol/OpenPercento/internal/repositories/database/pgsql"
	"github.com/captainmuzzol/OpenPercento/internal/utils"
	"github.com/captainmuzzol/OpenPercento/pkg/database"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title OpenPercento API
// @version 1.0
// @description Personal finance ledger with recurring income, transfers and dollar-cost averaging.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, cfg.PosthogDistinctID, logger)
	defer posthogClient.Close()

	// One writer at a time: HTTP mutations and recurring passes share this lock.
	var writeLock sync.Mutex

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer, runner := services.NewServiceContainer(cfg, repos, &writeLock, logger)

	recurringScheduler, err := scheduler.New(
		scheduler.WithName("recurring-rules"),
		scheduler.WithInterval(cfg.RecurringRunInterval),
		scheduler.WithContext(ctx),
		scheduler.WithLogger(logger),
		scheduler.WithRunOnStart(cfg.RecurringRunOnStart),
		scheduler.WithHandler(func(ctx context.Context) error {
			result, err := runner.RunDue(ctx)
			if err != nil {
				return err
			}
			logger.Info("Recurring pass completed",
				slog.Int("processed", result.Processed),
				slog.Int("executed", result.Executed),
				slog.Int("stuck", len(result.Stuck)))
			posthogClient.ReportRecurringPass("scheduler", result)
			return nil
		}),
	)
	if err != nil {
		logger.Error("Failed to configure recurring scheduler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, posthogClient); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := recurringScheduler.Start(); err != nil {
		logger.Error("Failed to start recurring scheduler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}

	recurringScheduler.Stop()
	<-recurringScheduler.Done()
}
