package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gridironsim/gridiron/internal/adapters/http/api"
	"github.com/gridironsim/gridiron/internal/adapters/repository"
	service "github.com/gridironsim/gridiron/internal/app"
	"github.com/gridironsim/gridiron/internal/config"
	"github.com/gridironsim/gridiron/pkg/logger"

	// SQL drivers selected by store_driver at runtime.
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		log.Error(ctx, "failed to open store",
			logger.String("driver", cfg.StoreDriver), logger.Error(err))
		return
	}

	// Create and start the engine with configuration options
	svc := service.New(
		service.WithLogger(log),
		service.WithStore(store),
		service.WithProfilePath(cfg.ProfilePath),
		service.WithWorkerCount(cfg.WorkerCount),
		service.WithSeed(cfg.Seed),
		service.WithDraftClassCounts(cfg.DraftClassCounts),
	)
	if err := svc.Start(ctx); err != nil {
		log.Error(ctx, "failed to start engine", logger.Error(err))
		return
	}
	defer svc.Stop()

	apiServer := api.NewServer(svc, cfg.MaxLeaderboardLimit)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           apiServer.Router(ctx),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// buildStore opens the player store named by the config.
func buildStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		return repository.NewSQLStore(ctx, "sqlite", cfg.StoreDSN)
	case config.StorePostgres:
		return repository.NewSQLStore(ctx, "postgres", cfg.StoreDSN)
	default:
		return repository.NewMemStore(), nil
	}
}
