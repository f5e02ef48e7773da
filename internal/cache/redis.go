// Package cache provides a shared, cross-process implementation of the
// profile snapshot cache. Deployments with a single engine per process can
// skip it entirely; the engine's in-process memo already satisfies the
// performance contract.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pascolabs/neuralsim/internal/profile"
)

const defaultPrefix = "neuralprofile"

// RedisCache stores profile snapshots in Redis, keyed by the engine cache
// key. Entries are immutable: a key fully determines its profile, so stale
// reads cannot occur and eviction is purely a space concern.
type RedisCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	ctx    context.Context
}

// RedisCacheConfig configures the cache.
type RedisCacheConfig struct {
	Prefix string        // key prefix, default "neuralprofile"
	TTL    time.Duration // entry TTL, 0 = no expiry
}

// NewRedisCache wraps a go-redis client as a profile.SnapshotCache.
func NewRedisCache(client redis.UniversalClient, config ...RedisCacheConfig) *RedisCache {
	cfg := RedisCacheConfig{Prefix: defaultPrefix}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Prefix == "" {
		cfg.Prefix = defaultPrefix
	}
	return &RedisCache{
		client: client,
		prefix: cfg.Prefix,
		ttl:    cfg.TTL,
		ctx:    context.Background(),
	}
}

func (c *RedisCache) key(key uint64) string {
	return fmt.Sprintf("%s:%016x", c.prefix, key)
}

// Get returns the cached snapshot for key, if present. Failures degrade to
// a cache miss: the engine recomputes, which is always safe.
func (c *RedisCache) Get(key uint64) (*profile.NeuralProfile, bool) {
	raw, err := c.client.Get(c.ctx, c.key(key)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("profile cache get failed", "key", c.key(key), "error", err.Error())
		}
		return nil, false
	}
	var snapshot profile.NeuralProfile
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		slog.Warn("profile cache entry corrupt", "key", c.key(key), "error", err.Error())
		return nil, false
	}
	return &snapshot, true
}

// Put stores a snapshot under key.
func (c *RedisCache) Put(key uint64, snapshot *profile.NeuralProfile) {
	if snapshot == nil {
		return
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		slog.Warn("profile cache encode failed", "error", err.Error())
		return
	}
	if err := c.client.Set(c.ctx, c.key(key), data, c.ttl).Err(); err != nil {
		slog.Warn("profile cache put failed", "key", c.key(key), "error", err.Error())
	}
}

var _ profile.SnapshotCache = (*RedisCache)(nil)
