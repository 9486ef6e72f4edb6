package cache

import (
	"context"
	"fmt"
	"time"

	"seckill-guard/internal/infra/lock"
	"seckill-guard/internal/pkg/errs"
)

// Loader reads the source of truth. Returning an error matching
// errs.ErrNotFound means the id does not exist.
type Loader[ID comparable, T any] func(ctx context.Context, id ID) (T, error)

type NamespaceConfig struct {
	// Key prefix, e.g. "cache:shop:".
	Prefix string
	// Rebuild lock name prefix, e.g. "shop:". The lock client adds "lock:".
	LockPrefix string
	TTL        time.Duration
	NullTTL    time.Duration
	LogicalTTL time.Duration
}

// Namespace is a typed view over one key prefix. Each read strategy targets a
// different failure mode: penetration (GetPassThrough), breakdown
// (GetWithMutex) and stampede on expiry (GetLogicalExpire).
type Namespace[ID comparable, T any] struct {
	c    *Client
	cfg  NamespaceConfig
	load Loader[ID, T]
}

func NewNamespace[ID comparable, T any](c *Client, cfg NamespaceConfig, load Loader[ID, T]) *Namespace[ID, T] {
	return &Namespace[ID, T]{c: c, cfg: cfg, load: load}
}

func (n *Namespace[ID, T]) Key(id ID) string {
	return n.cfg.Prefix + fmt.Sprint(id)
}

func (n *Namespace[ID, T]) lockName(id ID) string {
	return n.cfg.LockPrefix + fmt.Sprint(id)
}

func (n *Namespace[ID, T]) Get(ctx context.Context, id ID, strategy Strategy) (T, error) {
	switch strategy {
	case StrategyMutex:
		return n.GetWithMutex(ctx, id)
	case StrategyLogicalExpire:
		return n.GetLogicalExpire(ctx, id)
	default:
		return n.GetPassThrough(ctx, id)
	}
}

// GetPassThrough caches misses as empty entries so repeated lookups of an
// unknown id stay off the database until the null TTL passes.
func (n *Namespace[ID, T]) GetPassThrough(ctx context.Context, id ID) (T, error) {
	key := n.Key(id)
	if v, hit, err := n.lookup(ctx, key); hit || err != nil {
		return v, err
	}

	res, err, _ := n.c.group.Do(key, func() (any, error) {
		return n.fill(ctx, id, key)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}

// GetWithMutex lets exactly one caller per key rebuild a missing entry while
// the others poll the cache. Polling is bounded; running out of attempts
// returns ErrLockTimeout.
func (n *Namespace[ID, T]) GetWithMutex(ctx context.Context, id ID) (T, error) {
	var zero T
	key := n.Key(id)

	for attempt := 0; ; attempt++ {
		if v, hit, err := n.lookup(ctx, key); hit || err != nil {
			return v, err
		}

		m := n.c.locks.NewMutex(n.lockName(id))
		acquired, err := m.TryLock(ctx, n.c.rebuildLockTTL)
		if err != nil {
			return zero, err
		}
		if acquired {
			return n.fillLocked(ctx, id, key, m)
		}

		if attempt >= n.c.mutexMaxRetries {
			return zero, errs.Wrapf(errs.ErrLockTimeout, "cache %s: gave up after %d attempts", key, attempt+1)
		}
		if err := sleepCtx(ctx, n.c.mutexRetryDelay); err != nil {
			return zero, errs.Mark(errs.Wrapf(err, "cache %s", key), errs.ErrLockTimeout)
		}
	}
}

func (n *Namespace[ID, T]) fillLocked(ctx context.Context, id ID, key string, m *lock.Mutex) (T, error) {
	defer n.c.release(ctx, m)

	// Another holder may have filled it between our miss and the lock.
	if v, hit, err := n.lookup(ctx, key); hit || err != nil {
		return v, err
	}
	return n.fill(ctx, id, key)
}

// GetLogicalExpire never falls back to the database on the request path.
// Entries are pre-warmed; expired ones are served stale while one rebuild
// runs on the pool under the rebuild lock.
func (n *Namespace[ID, T]) GetLogicalExpire(ctx context.Context, id ID) (T, error) {
	var zero T
	key := n.Key(id)

	raw, ok, err := n.c.store.Get(ctx, key)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, errs.Wrapf(errs.ErrNotFound, "cache %s", key)
	}
	e, err := decodeEntry(raw)
	if err != nil {
		return zero, errs.Wrapf(err, "cache %s", key)
	}
	if e.Kind == KindEmpty {
		return zero, errs.Wrapf(errs.ErrNotFound, "cache %s", key)
	}
	v, err := decodePayload[T](e)
	if err != nil {
		return zero, errs.Wrapf(err, "cache %s", key)
	}

	if e.Kind != KindLogical || !e.ExpiredAt(n.c.clock.Now()) {
		return v, nil
	}

	n.scheduleRebuild(ctx, id, key)
	return v, nil
}

func (n *Namespace[ID, T]) scheduleRebuild(ctx context.Context, id ID, key string) {
	m := n.c.locks.NewMutex(n.lockName(id))
	acquired, err := m.TryLock(ctx, n.c.rebuildLockTTL)
	if err != nil {
		n.c.logger.Warn("rebuild lock attempt failed, serving stale", "key", key, "error", err.Error())
		return
	}
	if !acquired {
		return
	}

	submitted := n.c.pool.Submit(key, func(taskCtx context.Context) error {
		defer n.c.release(taskCtx, m)
		return n.rebuildLogical(taskCtx, id, key)
	})
	if !submitted {
		n.c.logger.Warn("rebuild pool rejected task, serving stale", "key", key)
		n.c.release(ctx, m)
	}
}

func (n *Namespace[ID, T]) rebuildLogical(ctx context.Context, id ID, key string) error {
	raw, ok, err := n.c.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if ok {
		if e, derr := decodeEntry(raw); derr == nil && e.Kind == KindLogical && !e.ExpiredAt(n.c.clock.Now()) {
			return nil
		}
	}

	v, err := n.load(ctx, id)
	if errs.Is(err, errs.ErrNotFound) {
		_, derr := n.c.store.Del(ctx, key)
		return derr
	}
	if err != nil {
		return errs.Wrapf(err, "reload %s", key)
	}
	return n.SetLogical(ctx, id, v, n.cfg.LogicalTTL)
}

// Set writes a value entry with the namespace TTL.
func (n *Namespace[ID, T]) Set(ctx context.Context, id ID, v T) error {
	raw, err := encodeEntry(KindValue, v, nil)
	if err != nil {
		return err
	}
	return n.c.store.Set(ctx, n.Key(id), raw, n.cfg.TTL)
}

// SetLogical writes a logical entry expiring ttl from now (the namespace
// default when ttl <= 0). The key itself never expires.
func (n *Namespace[ID, T]) SetLogical(ctx context.Context, id ID, v T, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = n.cfg.LogicalTTL
	}
	expireAt := n.c.clock.Now().Add(ttl)
	raw, err := encodeEntry(KindLogical, v, &expireAt)
	if err != nil {
		return err
	}
	return n.c.store.Set(ctx, n.Key(id), raw, 0)
}

// Warm loads id from the source and stores it as a logical entry.
func (n *Namespace[ID, T]) Warm(ctx context.Context, id ID, ttl time.Duration) error {
	v, err := n.load(ctx, id)
	if err != nil {
		return err
	}
	return n.SetLogical(ctx, id, v, ttl)
}

func (n *Namespace[ID, T]) Invalidate(ctx context.Context, id ID) error {
	_, err := n.c.store.Del(ctx, n.Key(id))
	return err
}

// lookup reports hit=true for value, logical and empty entries. An empty
// entry is a hit carrying ErrNotFound. Corrupt entries count as a miss.
func (n *Namespace[ID, T]) lookup(ctx context.Context, key string) (T, bool, error) {
	var zero T
	raw, ok, err := n.c.store.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}
	e, err := decodeEntry(raw)
	if err != nil {
		n.c.logger.Warn("discarding unreadable cache entry", "key", key, "error", err.Error())
		return zero, false, nil
	}
	if e.Kind == KindEmpty {
		return zero, true, errs.Wrapf(errs.ErrNotFound, "cache %s", key)
	}
	v, err := decodePayload[T](e)
	if err != nil {
		n.c.logger.Warn("discarding unreadable cache payload", "key", key, "error", err.Error())
		return zero, false, nil
	}
	return v, true, nil
}

// fill loads from the source and writes the outcome through. A failed cache
// write is logged; the loaded value is still returned.
func (n *Namespace[ID, T]) fill(ctx context.Context, id ID, key string) (T, error) {
	var zero T
	v, err := n.load(ctx, id)
	if errs.Is(err, errs.ErrNotFound) {
		raw, eerr := encodeEntry(KindEmpty, nil, nil)
		if eerr == nil {
			eerr = n.c.store.Set(ctx, key, raw, n.cfg.NullTTL)
		}
		if eerr != nil {
			n.c.logger.Warn("failed to write negative cache entry", "key", key, "error", eerr.Error())
		}
		return zero, errs.Wrapf(err, "cache %s", key)
	}
	if err != nil {
		return zero, err
	}

	raw, err := encodeEntry(KindValue, v, nil)
	if err == nil {
		err = n.c.store.Set(ctx, key, raw, n.cfg.TTL)
	}
	if err != nil {
		n.c.logger.Warn("failed to write cache entry", "key", key, "error", err.Error())
	}
	return v, nil
}
