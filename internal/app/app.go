package app

import (
	"items-api/config"
	"items-api/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies. The pool and the redis
// client are shared handles owned by main.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client // nil unless cache.driver is redis
	ItemRepo    storage.ItemRepository
}
