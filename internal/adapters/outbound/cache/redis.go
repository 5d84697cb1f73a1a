package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agentauri/agentindex/internal/telemetry"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RedisCache is a domain.Cache shared by every replica of the service.
type RedisCache struct {
	client redis.Cmdable
	prefix string
}

// NewRedisCache creates a RedisCache that namespaces every key with prefix.
func NewRedisCache(client redis.Cmdable, prefix string) RedisCache {
	return RedisCache{
		client: client,
		prefix: prefix,
	}
}

// Get decodes the cached value of key into dest.
func (rc RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("cache.key", key),
	))
	defer span.End()

	data, err := rc.client.Get(spanCtx, rc.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		span.SetAttributes(attribute.Bool("cache.hit", false))
		telemetry.RecordErrorAndStatus(span, nil)
		return false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, fmt.Errorf("redis get: %w", err)
	}

	if err := decode(data, dest); telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	span.SetAttributes(attribute.Bool("cache.hit", true))
	return true, nil
}

// Set stores value under key with the given ttl. A non-positive ttl means no expiry.
func (rc RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("cache.key", key),
		attribute.String("cache.ttl", ttl.String()),
	))
	defer span.End()

	data, err := encode(value)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if ttl < 0 {
		ttl = 0
	}

	err = rc.client.Set(spanCtx, rc.prefix+key, data, ttl).Err()
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
