package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/robohr/ai-service/config"
)

const (
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
)

// Cache is a TTL key value store shared by the NLP and translation services.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Clear removes all entries and returns the number removed.
	Clear(ctx context.Context) (int64, error)
	Len(ctx context.Context) (int64, error)
}

// NewCache creates a cache based on the cache.type config value.
func NewCache(cfg *config.Config) (Cache, error) {
	switch cfg.Cache.Type {
	case CacheTypeMemory, "":
		return NewMemoryCache(), nil
	case CacheTypeRedis:
		return NewRedisCache(cfg.Cache.Redis.URL)
	default:
		return nil, fmt.Errorf("cache.type (%s) is not supported", cfg.Cache.Type)
	}
}
