// Package cache holds the Redis-backed read cache for the dish catalog.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dishes:list"

// DishCache caches serialized dish listings keyed by their query parameters.
// Any dish mutation drops the whole keyspace; entries otherwise age out on
// TTL.
type DishCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDishCache builds a cache. A nil client disables caching.
func NewDishCache(client *redis.Client, ttl time.Duration) *DishCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &DishCache{client: client, ttl: ttl}
}

// Key derives a stable cache key from the listing query parameters.
func (c *DishCache) Key(page, limit int, keyword, category string) string {
	sum := sha1.Sum(fmt.Appendf(nil, "%d|%d|%s|%s", page, limit, keyword, category))
	return fmt.Sprintf("%s:%x", keyPrefix, sum)
}

// Get returns the cached value for key into dest, reporting a hit.
func (c *DishCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// Set stores a value under key. Failures are ignored; the cache is best
// effort and the store remains the source of truth.
func (c *DishCache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, raw, c.ttl)
}

// Invalidate drops every cached listing. Called after any dish mutation.
func (c *DishCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, keyPrefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}
