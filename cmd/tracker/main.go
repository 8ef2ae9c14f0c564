package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/billyhines/kalshi-liquidity/internal/api"
	"github.com/billyhines/kalshi-liquidity/internal/config"
	"github.com/billyhines/kalshi-liquidity/internal/schedule"
	"github.com/billyhines/kalshi-liquidity/internal/store"
	"github.com/billyhines/kalshi-liquidity/internal/store/postgres"
	"github.com/billyhines/kalshi-liquidity/internal/store/sqlite"
	"github.com/billyhines/kalshi-liquidity/internal/tracker"
	"github.com/billyhines/kalshi-liquidity/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/tracker.yaml", "path to config file")
	once := flag.Bool("once", false, "discover games, run one dispatch pass, then exit")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	// Set up structured logging
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	logger.Info("starting tracker",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"series", cfg.API.SeriesTicker,
		"backend", cfg.Database.Backend,
		"api_url", cfg.API.BaseURL,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Open the snapshot store
	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()
	logger.Info("store ready", "backend", cfg.Database.Backend)

	// Create API client
	apiClient := api.NewClient(
		cfg.API.BaseURL,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout.Duration()),
		api.WithRetries(cfg.API.MaxRetries, cfg.API.RetryBackoff.Duration()),
	)

	trackerCfg := tracker.Config{
		Series: cfg.API.SeriesTicker,
		Schedule: schedule.Config{
			FarInterval:   cfg.Schedule.FarInterval.Duration(),
			NearInterval:  cfg.Schedule.NearInterval.Duration(),
			LiveInterval:  cfg.Schedule.LiveInterval.Duration(),
			NearThreshold: cfg.Schedule.NearThreshold.Duration(),
			EventDuration: cfg.Schedule.EventDuration.Duration(),
		},
		RefreshInterval: cfg.Schedule.RefreshInterval.Duration(),
		IdleSleep:       cfg.Schedule.IdleSleep.Duration(),
		MinSleep:        cfg.Schedule.MinSleep.Duration(),
		CollectTimeout:  cfg.Schedule.CollectTimeout.Duration(),
	}
	tr := tracker.New(trackerCfg, apiClient, st, logger)

	if *once {
		runOnce(ctx, tr, logger)
		return
	}

	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Health.Port),
		Handler: createHealthHandler(st, tr, logger),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting health server", "port", cfg.Health.Port)
		if err := healthServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("health server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return tr.Run(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return healthServer.Shutdown(shutdownCtx)
	})

	logger.Info("tracker running",
		"health_url", fmt.Sprintf("http://localhost:%d/health", cfg.Health.Port),
	)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("tracker exited with error", "error", err)
		os.Exit(1)
	}

	logger.Info("tracker stopped")
}

// runOnce refreshes the game set and serves whatever is already due,
// for cron-style invocations and smoke tests.
func runOnce(ctx context.Context, tr *tracker.Tracker, logger *slog.Logger) {
	if err := tr.Refresh(ctx); err != nil {
		logger.Error("refresh failed", "error", err)
		os.Exit(1)
	}
	served := tr.RunOnce(ctx)
	logger.Info("single pass complete",
		"tracked", tr.TrackedCount(),
		"served", served,
	)
}

// openStore opens the configured persistence backend.
func openStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (store.Store, error) {
	switch cfg.Backend {
	case "sqlite":
		return sqlite.Open(ctx, cfg.SQLite.Path, logger)
	case "postgres":
		return postgres.Open(ctx, cfg.Postgres, logger)
	default:
		return nil, fmt.Errorf("unknown database backend %q", cfg.Backend)
	}
}
