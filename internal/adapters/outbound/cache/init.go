package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/agentauri/agentindex/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/redis/go-redis/v9"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// InitCache registers the configured domain.Cache backend in the dependency container.
type InitCache struct {
	Logger         *log.Logger                `resolve:""`
	TimeProvider   domain.CurrentTimeProvider `resolve:""`
	Backend        string                     `config:"CACHE_BACKEND" default:"memory"`
	Size           int                        `config:"FACET_CACHE_SIZE" default:"1024"`
	MaxTTL         time.Duration              `config:"FACET_CACHE_TTL" default:"5m"`
	RedisAddr      string                     `config:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword  string                     `config:"REDIS_PASSWORD" default:"-"`
	RedisDB        int                        `config:"REDIS_DB" default:"0"`
	RedisKeyPrefix string                     `config:"REDIS_KEY_PREFIX" default:"agentindex:"`
	client         *redis.Client
}

// Initialize creates the cache backend.
func (ic *InitCache) Initialize(ctx context.Context) (context.Context, error) {
	switch ic.Backend {
	case BackendMemory, "":
		depend.Register[domain.Cache](NewMemoryCache(ic.Size, ic.MaxTTL, ic.TimeProvider))
	case BackendRedis:
		password := ic.RedisPassword
		if password == "-" {
			password = ""
		}
		ic.client = redis.NewClient(&redis.Options{
			Addr:     ic.RedisAddr,
			Password: password,
			DB:       ic.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := ic.client.Ping(pingCtx).Err(); err != nil {
			return ctx, fmt.Errorf("failed to connect to redis at %s: %w", ic.RedisAddr, err)
		}
		depend.Register[domain.Cache](NewRedisCache(ic.client, ic.RedisKeyPrefix))
	default:
		return ctx, fmt.Errorf("unknown cache backend %q", ic.Backend)
	}

	ic.Logger.Printf("InitCache: using %s backend", ic.backendName())
	return ctx, nil
}

// Close closes the Redis client, if any.
func (ic *InitCache) Close() {
	if ic.client == nil {
		return
	}
	if err := ic.client.Close(); err != nil {
		ic.Logger.Printf("InitCache: failed to close redis client: %v", err)
	}
}

func (ic *InitCache) backendName() string {
	if ic.Backend == "" {
		return BackendMemory
	}
	return ic.Backend
}
