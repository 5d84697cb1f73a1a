package cache

import (
	"context"
	"time"

	"github.com/agentauri/agentindex/internal/domain"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCache is a process local domain.Cache bounded by entry count.
//
// The LRU evicts entries after maxTTL. Shorter per-entry TTLs passed to Set are
// enforced on read.
type MemoryCache struct {
	lru   *expirable.LRU[string, memoryEntry]
	clock domain.CurrentTimeProvider
}

// NewMemoryCache creates a MemoryCache holding at most size entries.
func NewMemoryCache(size int, maxTTL time.Duration, clock domain.CurrentTimeProvider) MemoryCache {
	if size <= 0 {
		size = 1024
	}
	if maxTTL <= 0 {
		maxTTL = domain.DefaultFacetCacheTTL
	}
	if clock == nil {
		clock = domain.CurrentTimeFunc(time.Now)
	}
	return MemoryCache{
		lru:   expirable.NewLRU[string, memoryEntry](size, nil, maxTTL),
		clock: clock,
	}
}

// Get decodes the cached value of key into dest.
func (mc MemoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	entry, ok := mc.lru.Get(key)
	if !ok {
		return false, nil
	}
	if !entry.expiresAt.IsZero() && !mc.clock.Now().Before(entry.expiresAt) {
		mc.lru.Remove(key)
		return false, nil
	}
	if err := decode(entry.data, dest); err != nil {
		mc.lru.Remove(key)
		return false, err
	}
	return true, nil
}

// Set stores value under key. A non-positive ttl keeps the entry until the LRU evicts it.
func (mc MemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := encode(value)
	if err != nil {
		return err
	}
	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = mc.clock.Now().Add(ttl)
	}
	mc.lru.Add(key, entry)
	return nil
}

// Len returns the number of cached entries, including ones whose TTL elapsed but were not read yet.
func (mc MemoryCache) Len() int {
	return mc.lru.Len()
}
