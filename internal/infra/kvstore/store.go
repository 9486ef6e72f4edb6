package kvstore

import (
	"context"
	"errors"
	"time"

	"seckill-guard/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Store is the subset of key-value operations the lock, id generator and
// cache layers rely on. Every method is a single atomic server-side command.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes value; ttl <= 0 stores the key without expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Del(ctx context.Context, keys ...string) (int64, error)
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Run(ctx context.Context, script *Script, keys []string, args ...any) (any, error)
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// Script is a server-side Lua script executed atomically.
type Script struct {
	inner *redis.Script
}

func NewScript(src string) *Script {
	return &Script{inner: redis.NewScript(src)}
}

type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, transient(err, "get %s", key)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return transient(err, "set %s", key)
	}
	return nil
}

func (s *RedisStore) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, transient(err, "setnx %s", key)
	}
	return ok, nil
}

func (s *RedisStore) Del(ctx context.Context, keys ...string) (int64, error) {
	n, err := s.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, transient(err, "del %v", keys)
	}
	return n, nil
}

func (s *RedisStore) Incr(ctx context.Context, key string) (int64, error) {
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, transient(err, "incr %s", key)
	}
	return n, nil
}

func (s *RedisStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
		return transient(err, "expire %s", key)
	}
	return nil
}

// Run uses EVALSHA and falls back to EVAL when the script is not cached yet.
func (s *RedisStore) Run(ctx context.Context, script *Script, keys []string, args ...any) (any, error) {
	v, err := script.inner.Run(ctx, s.client, keys, args...).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, transient(err, "eval script on %v", keys)
	}
	return v, nil
}

func (s *RedisStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	values := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		values = append(values, k, v)
	}
	if err := s.client.HSet(ctx, key, values...).Err(); err != nil {
		return transient(err, "hset %s", key)
	}
	return nil
}

func (s *RedisStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	m, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, transient(err, "hgetall %s", key)
	}
	return m, nil
}

func transient(err error, format string, args ...any) error {
	return errs.Mark(errs.Wrapf(err, "redis "+format, args...), errs.ErrTransientStore)
}
