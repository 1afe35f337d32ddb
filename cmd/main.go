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

	"bagpresto/internal/adapter/http"
	"bagpresto/internal/adapter/memory"
	"bagpresto/internal/adapter/postgres"
	"bagpresto/internal/adapter/redis"
	"bagpresto/internal/adapter/storage"
	"bagpresto/internal/adapter/usecase"
	"bagpresto/internal/config"
	"bagpresto/internal/core/port"
	"bagpresto/internal/db"
	"bagpresto/internal/fixtures"
)

// main loads configuration, opens the table and session stores, wires the
// services and serves HTTP until SIGINT or SIGTERM, then shuts down
// gracefully. Missing required configuration is the only fatal error that
// happens before anything is served.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("fatal error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	var store port.Store
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		mem := memory.NewStore()
		if err := mem.Load(fixtures.Demo(time.Now())); err != nil {
			return fmt.Errorf("load fixtures: %w", err)
		}
		logger.Warn("using in-memory store with demo data")
		store = mem
	default:
		if cfg.Psql.RunMigrations {
			from, to, err := db.Migrate(cfg.Backend.URL.String())
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied", slog.Uint64("from", uint64(from)), slog.Uint64("to", uint64(to)))
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Backend.URL, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()
		if cfg.Psql.Seed {
			if err = db.Seed(ctx, pool); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			logger.Info("demo data seeded")
		}
		store = postgres.NewStore(pool)
	}

	var sessions port.SessionStore
	if cfg.Redis.URL != "" {
		rs, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rs.Close()
		sessions = rs
	} else {
		logger.Warn("REDIS_URL not set, sessions are kept in process memory")
		sessions = memory.NewSessionStore()
	}

	logos, err := storage.NewLogoStorage(cfg.Storage)
	if err != nil {
		return err
	}

	auth := usecase.NewAuthService(store, sessions, cfg.Auth, logger)
	if err = auth.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	handler := httpadapter.NewHandler(httpadapter.Services{
		Campaigns:    usecase.NewCampaignUseCase(store, store, store, logos, logger),
		Admin:        usecase.NewAdminUseCase(store, store, store, logger),
		Partners:     usecase.NewPartnerUseCase(store, store),
		Registration: usecase.NewRegistrationUseCase(auth, store, store, store, logger),
		Statistics:   usecase.NewStatisticsUseCase(store),
		Auth:         auth,
		Store:        store,
	}, httpadapter.Options{
		APIKey:         cfg.Backend.APIKey,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
		LogoDir:        cfg.Storage.LogoDir,
		LogoBasePath:   cfg.Storage.BasePath,
	}, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}
