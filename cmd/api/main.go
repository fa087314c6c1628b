// Package main is the entry point for the trip planner API server.
// It only wires dependencies together and starts the server.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/api"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/cache"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/config"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/directory"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/handler"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/middleware"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/remote"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/repo"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/service"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("reading .env", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// --- Storage ----------------------------------------------------------
	var rdb *redis.Client
	if cfg.UsesRedis() {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Error("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
	}

	slot, closeSlot, err := openSlot(ctx, cfg, rdb)
	if err != nil {
		slog.Error("failed to open trip storage", "backend", cfg.StorageBackend, "error", err)
		os.Exit(1)
	}
	defer closeSlot()
	slog.Info("trip storage ready", "backend", cfg.StorageBackend)

	// --- Services ---------------------------------------------------------
	store := service.NewTripStore(ctx, slot,
		service.WithSlotKey(cfg.SlotKey),
		service.WithStoreLogger(logger),
	)
	planner := service.NewPlanner(store)

	dir := directory.NewRateLimited(directory.NewMock(), directory.RateLimitConfig{
		RequestsPerSecond: cfg.SearchRateLimit,
		BurstSize:         directory.DefaultRateLimitConfig().BurstSize,
	})

	var searchCache cache.Cache = cache.NewMemoryCache(cache.DefaultCapacity)
	if cfg.SearchCache == config.CacheRedis {
		rc := cache.DefaultRedisConfig()
		rc.TTL = cfg.SearchCacheTTL
		searchCache = cache.NewRedisCache(rdb, rc)
	}
	search := service.NewLocationSearch(dir,
		service.WithDebounce(cfg.SearchDebounce),
		service.WithSearchCache(searchCache),
		service.WithSearchLogger(logger),
	)
	defer search.Close()

	var remoteTrips handler.RemoteTrips
	if cfg.RemoteAPIURL != "" {
		remoteTrips = remote.NewClient(remote.WithBaseURL(cfg.RemoteAPIURL))
	}

	srv := handler.NewServer(handler.Deps{
		Store:     store,
		Planner:   planner,
		Search:    search,
		Directory: dir,
		Export:    service.NewExportService(store),
		Remote:    remoteTrips,
		OpenAPI:   api.OpenAPI,
		Logger:    logger,
	})

	// --- Router -----------------------------------------------------------
	// RequestID → RealIP → Logger → Recoverer → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openSlot builds the key/value slot the trip store persists to. The returned
// func releases whatever the backend holds open.
func openSlot(ctx context.Context, cfg config.Config, rdb *redis.Client) (repo.SlotRepo, func(), error) {
	noop := func() {}
	switch cfg.StorageBackend {
	case config.StorageMemory:
		return repo.NewMemorySlotRepo(), noop, nil
	case config.StorageRedis:
		return repo.NewRedisSlotRepo(rdb, "trips:"), noop, nil
	case config.StoragePostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("create pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping: %w", err)
		}
		db := stdlib.OpenDBFromPool(pool)
		applied, err := migrations.Up(ctx, db)
		_ = db.Close()
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		slog.Info("migrations applied", "count", applied)
		return repo.NewPostgresSlotRepo(pool), pool.Close, nil
	default:
		slot, err := repo.NewFileSlotRepo(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return slot, noop, nil
	}
}
