package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// namespace prefixes every key of one cached collection. Entries are stored
// under "<ns>:v<version>:<field>" and a write bumps "<ns>:version", so a
// read that raced with the write can only land under a version nobody reads
// anymore. Dead entries age out through their own TTL.
type namespace string

const (
	todoNS  namespace = "todo-cache"
	labelNS namespace = "label-cache"
)

func (n namespace) versionKey() string {
	return string(n) + ":version"
}

func (n namespace) key(version int64, field string) string {
	return fmt.Sprintf("%s:v%d:%s", n, version, field)
}

type versionedCache struct {
	redis  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func newVersionedCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) versionedCache {
	if ttl < 0 {
		ttl = 0
	}
	return versionedCache{redis: client, ttl: ttl, logger: logger}
}

// version returns the current generation of ns. It must be read before the
// underlying store is consulted; ok is false when the cache is unusable.
func (c versionedCache) version(ctx context.Context, ns namespace) (int64, bool) {
	if c.redis == nil {
		return 0, false
	}
	v, err := c.redis.Get(ctx, ns.versionKey()).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, true
		}
		c.warn("cache version read failed", ns.versionKey(), err)
		return 0, false
	}
	return v, true
}

func (c versionedCache) load(ctx context.Context, key string, dst any) bool {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.warn("cache read failed", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		c.warn("cache entry corrupt", key, err)
		_ = c.redis.Del(ctx, key).Err()
		return false
	}
	return true
}

func (c versionedCache) store(ctx context.Context, key string, value any) {
	if c.ttl == 0 {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.warn("cache write failed", key, err)
	}
}

// invalidate moves every given namespace to a new version.
func (c versionedCache) invalidate(ctx context.Context, namespaces ...namespace) {
	if c.redis == nil {
		return
	}
	_, err := c.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, ns := range namespaces {
			pipe.Incr(ctx, ns.versionKey())
		}
		return nil
	})
	if err != nil {
		c.warn("cache invalidation failed", string(namespaces[0]), err)
	}
}

func (c versionedCache) warn(msg, key string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Warn(msg, "key", key, "error", err)
}
