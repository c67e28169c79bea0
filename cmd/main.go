package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campaign-insights/internal/adapter/archive"
	httpadapter "campaign-insights/internal/adapter/http"
	"campaign-insights/internal/adapter/postgres"
	"campaign-insights/internal/adapter/report"
	"campaign-insights/internal/adapter/usecase"
	"campaign-insights/internal/config"
	"campaign-insights/internal/core/port"
	"campaign-insights/internal/db"
)

// main loads configuration, optionally migrates and seeds the database,
// wires the report parsers, archive and repository into the use case, then
// serves the HTTP API until SIGINT or SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	dims, err := config.LoadDimensions(cfg.Analytics.DimensionsFile)
	if err != nil {
		logger.Error("dimensions config error", slog.Any("error", err))
		return
	}
	plan, err := usecase.NewPlan(dims.Outliers, dims.LowVolume)
	if err != nil {
		logger.Error("dimensions config error", slog.Any("error", err))
		return
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	repo := postgres.NewCampaignRepository(pool)
	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, repo, time.Now()); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo campaigns seeded")
		}
	}

	var reportArchive port.ReportArchive = archive.Nop{}
	if cfg.Archive.Enabled() {
		s3Archive, err := archive.NewS3(ctx, cfg.Archive)
		if err != nil {
			logger.Error("archive setup error", slog.Any("error", err))
			return
		}
		reportArchive = s3Archive
		logger.Info("archiving reports", slog.String("bucket", cfg.Archive.Bucket))
	}

	svc := usecase.NewCampaignUseCase(repo, report.NewRegistry(), reportArchive, plan, logger)

	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			return
		}
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
