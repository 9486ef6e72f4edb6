//go:build unit || e2e

package redistest

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"seckill-guard/internal/infra/cache"
	"seckill-guard/internal/infra/idgen"
	"seckill-guard/internal/infra/kvstore"
	"seckill-guard/internal/infra/lock"
	"seckill-guard/internal/pkg/clock"
	"seckill-guard/internal/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// Env wires the Redis-backed components against one miniredis instance.
type Env struct {
	MR     *miniredis.Miniredis
	Store  *kvstore.RedisStore
	Locks  *lock.Client
	IDs    *idgen.Generator
	Clock  *clock.MockClock
	Pool   *cache.RebuildPool
	Cache  *cache.Client
	Config config.Config
	Logger *slog.Logger
}

var DefaultNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func New(t *testing.T) *Env {
	t.Helper()
	return NewWithConfig(t, config.NewTestConfig())
}

func NewWithConfig(t *testing.T, cfg config.Config) *Env {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), PoolSize: 128})
	t.Cleanup(func() { _ = rdb.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := kvstore.NewRedisStore(rdb)
	locks := lock.NewClient(store)
	clk := clock.NewMockClock(DefaultNow)

	ids, err := idgen.NewGenerator(store, clk, cfg.IDGen)
	require.NoError(t, err)

	pool := cache.NewRebuildPool(cfg.Cache, logger)
	t.Cleanup(func() { _ = pool.Close(context.Background()) })

	cli := cache.NewClient(store, locks, clk, pool, logger, cfg.Cache, cfg.Lock)

	return &Env{
		MR:     mr,
		Store:  store,
		Locks:  locks,
		IDs:    ids,
		Clock:  clk,
		Pool:   pool,
		Cache:  cli,
		Config: cfg,
		Logger: logger,
	}
}
