package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Store is a best-effort key/value cache. Implementations never
// surface backend errors to callers: a failed get is a miss, a failed
// set or delete is a no-op. The cache is an optimization, not a
// correctness dependency.
type Store interface {
	// Get unmarshals the cached JSON value into dest. Returns false
	// on a miss or any backend error.
	Get(ctx context.Context, key string, dest interface{}) bool

	// Set stores value as JSON with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration)

	// Delete removes a single key.
	Delete(ctx context.Context, key string)

	// DeletePattern removes all keys matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string)
}

// RedisStore implements Store on a redis backend.
type RedisStore struct {
	rdb    *goredis.Client
	logger *slog.Logger
}

// NewRedisStore connects to redis at addr. Connection failure is
// reported as an error so the caller can fall back to a NoopStore.
func NewRedisStore(addr string, logger *slog.Logger) (*RedisStore, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &RedisStore{
		rdb:    rdb,
		logger: logger.With("component", "redis_cache"),
	}, nil
}

// Close releases the redis connection.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

func (s *RedisStore) Get(ctx context.Context, key string, dest interface{}) bool {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			s.logger.Warn("cache get failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.logger.Warn("cache value unmarshal failed", "key", key, "error", err)
		return false
	}
	return true
}

func (s *RedisStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("cache value marshal failed", "key", key, "error", err)
		return
	}
	if err := s.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		s.logger.Warn("cache set failed", "key", key, "error", err)
	}
}

func (s *RedisStore) Delete(ctx context.Context, key string) {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Warn("cache delete failed", "key", key, "error", err)
	}
}

// DeletePattern scans for matching keys rather than using KEYS, which
// blocks the server on large keyspaces.
func (s *RedisStore) DeletePattern(ctx context.Context, pattern string) {
	iter := s.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.logger.Warn("cache scan failed", "pattern", pattern, "error", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("cache pattern delete failed", "pattern", pattern, "error", err)
	}
}

// NoopStore is the fallback when no cache backend is configured or
// reachable. All reads miss; all writes are dropped.
type NoopStore struct{}

func (NoopStore) Get(ctx context.Context, key string, dest interface{}) bool       { return false }
func (NoopStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {}
func (NoopStore) Delete(ctx context.Context, key string)                           {}
func (NoopStore) DeletePattern(ctx context.Context, pattern string)                {}
