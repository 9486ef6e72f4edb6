package cache

import (
	"context"
	"log/slog"
	"time"

	"seckill-guard/internal/infra/kvstore"
	"seckill-guard/internal/infra/lock"
	"seckill-guard/internal/pkg/clock"
	"seckill-guard/internal/pkg/config"
	"seckill-guard/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
)

type Strategy string

const (
	StrategyPassThrough   Strategy = "pass_through"
	StrategyMutex         Strategy = "mutex"
	StrategyLogicalExpire Strategy = "logical_expire"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyPassThrough, StrategyMutex, StrategyLogicalExpire:
		return Strategy(s), nil
	default:
		return "", errs.Newf("unknown cache strategy %q", s)
	}
}

// Client holds what every namespace shares: the store, the distributed lock
// client, the rebuild pool and an in-process load coalescer. The distributed
// lock stays the only mutual-exclusion authority across processes.
type Client struct {
	store  kvstore.Store
	locks  *lock.Client
	clock  clock.Clock
	pool   *RebuildPool
	logger *slog.Logger
	group  singleflight.Group

	mutexMaxRetries int
	mutexRetryDelay time.Duration
	rebuildLockTTL  time.Duration
}

func NewClient(
	store kvstore.Store,
	locks *lock.Client,
	clk clock.Clock,
	pool *RebuildPool,
	logger *slog.Logger,
	cacheCfg config.CacheConfig,
	lockCfg config.LockConfig,
) *Client {
	return &Client{
		store:           store,
		locks:           locks,
		clock:           clk,
		pool:            pool,
		logger:          logger,
		mutexMaxRetries: cacheCfg.MutexMaxRetries,
		mutexRetryDelay: cacheCfg.MutexRetryDelay,
		rebuildLockTTL:  lockCfg.RebuildTTL,
	}
}

func (c *Client) Store() kvstore.Store { return c.store }

func (c *Client) release(ctx context.Context, m *lock.Mutex) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	released, err := m.Unlock(ctx)
	if err != nil {
		c.logger.Warn("failed to release cache lock", "key", m.Key(), "error", err.Error())
		return
	}
	if !released {
		c.logger.Warn("cache lock expired before release", "key", m.Key())
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
