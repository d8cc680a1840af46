package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"items-api/config"
	_ "items-api/docs" // registers the OpenAPI document served under /swagger
	"items-api/internal/app"
	"items-api/internal/database"
	"items-api/internal/logger"
	"items-api/internal/server"
	"items-api/internal/storage"
	"items-api/internal/storage/cache"
	"items-api/internal/storage/postgres"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// @title           Items API
// @version         1.0
// @description     CRUD service for items backed by PostgreSQL.

// @host      localhost:8080
// @BasePath  /api
// @schemes   http https
func main() {
	if err := run(); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("Application gracefully stopped.")
}

// run wires the service and blocks until a shutdown signal or a server
// error. Every resource it opened is released before it returns.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Setup(cfg.Log)

	ctx := context.Background()

	dbPool, err := database.NewConnectionPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbPool.Close()

	if err := database.EnsureSchema(ctx, dbPool); err != nil {
		return fmt.Errorf("failed to prepare database schema: %w", err)
	}

	var repo storage.ItemRepository = postgres.NewItemRepo(dbPool)

	// --- Item cache ---
	var redisClient *redis.Client
	switch cfg.Cache.Driver {
	case config.CacheDriverRedis:
		redisClient, err = database.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		defer redisClient.Close()
		repo = cache.NewCachedItemRepository(repo, cache.NewRedisCache(redisClient), cfg.Cache.TTL)
	case config.CacheDriverMemory:
		repo = cache.NewCachedItemRepository(repo, cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL), cfg.Cache.TTL)
	default:
		logrus.Info("Item cache disabled")
	}

	application := &app.Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		ItemRepo:    repo,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case sig := <-quit:
		logrus.WithField("signal", sig.String()).Info("Shutting down server...")
	case runErr = <-serverErr:
		if runErr != nil {
			runErr = fmt.Errorf("server error: %w", runErr)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown did not complete cleanly")
	}
	return runErr
}

func shutdownTimeout(cfg *config.Config) time.Duration {
	if cfg.Server.ShutdownTimeout > 0 {
		return cfg.Server.ShutdownTimeout
	}
	return 15 * time.Second
}
