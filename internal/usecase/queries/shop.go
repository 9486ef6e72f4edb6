package queries

import (
	"context"
	"time"

	"seckill-guard/internal/infra/cache"
	"seckill-guard/internal/pkg/config"
)

const (
	shopCachePrefix = "cache:shop:"
	shopLockPrefix  = "shop:"
)

//go:generate mockgen -source=shop.go -destination=../../../tests/mock/queries/shop.go -package=queriesmock

type ShopReadStore interface {
	FindByID(ctx context.Context, id int64) (*ShopView, error)
	ListTypes(ctx context.Context) ([]*ShopTypeView, error)
}

type ShopQueries interface {
	GetByID(ctx context.Context, id int64) (*ShopView, error)
	// Warm stores a fresh logical-expiry entry for id.
	Warm(ctx context.Context, id int64, ttl time.Duration) error
	Invalidate(ctx context.Context, id int64) error
}

type shopQueriesImpl struct {
	ns       *cache.Namespace[int64, ShopView]
	strategy cache.Strategy
}

func NewShopQueries(cc *cache.Client, store ShopReadStore, cfg config.CacheConfig) (ShopQueries, error) {
	strategy, err := cache.ParseStrategy(cfg.ShopStrategy)
	if err != nil {
		return nil, err
	}

	load := func(ctx context.Context, id int64) (ShopView, error) {
		v, err := store.FindByID(ctx, id)
		if err != nil {
			return ShopView{}, sourceErr(err)
		}
		return *v, nil
	}

	ns := cache.NewNamespace(cc, cache.NamespaceConfig{
		Prefix:     shopCachePrefix,
		LockPrefix: shopLockPrefix,
		TTL:        cfg.TTL,
		NullTTL:    cfg.NullTTL,
		LogicalTTL: cfg.LogicalTTL,
	}, load)

	return &shopQueriesImpl{ns: ns, strategy: strategy}, nil
}

func (q *shopQueriesImpl) GetByID(ctx context.Context, id int64) (*ShopView, error) {
	v, err := q.ns.Get(ctx, id, q.strategy)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (q *shopQueriesImpl) Warm(ctx context.Context, id int64, ttl time.Duration) error {
	return q.ns.Warm(ctx, id, ttl)
}

func (q *shopQueriesImpl) Invalidate(ctx context.Context, id int64) error {
	return q.ns.Invalidate(ctx, id)
}
