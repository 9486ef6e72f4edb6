package queries

import (
	"context"

	"seckill-guard/internal/infra/cache"
	"seckill-guard/internal/pkg/config"
)

const (
	voucherCachePrefix = "cache:seckill-voucher:"
	voucherLockPrefix  = "seckill-voucher:"
)

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/queries/voucher.go -package=queriesmock

type SeckillVoucherReadStore interface {
	FindByID(ctx context.Context, id int64) (*SeckillVoucherView, error)
}

type VoucherQueries interface {
	// GetByID reads through the cache with a per-key rebuild mutex.
	GetByID(ctx context.Context, id int64) (*SeckillVoucherView, error)
	Invalidate(ctx context.Context, id int64) error
}

type voucherQueriesImpl struct {
	ns *cache.Namespace[int64, SeckillVoucherView]
}

func NewVoucherQueries(cc *cache.Client, store SeckillVoucherReadStore, cfg config.CacheConfig) VoucherQueries {
	load := func(ctx context.Context, id int64) (SeckillVoucherView, error) {
		v, err := store.FindByID(ctx, id)
		if err != nil {
			return SeckillVoucherView{}, sourceErr(err)
		}
		return *v, nil
	}

	ns := cache.NewNamespace(cc, cache.NamespaceConfig{
		Prefix:     voucherCachePrefix,
		LockPrefix: voucherLockPrefix,
		TTL:        cfg.TTL,
		NullTTL:    cfg.NullTTL,
		LogicalTTL: cfg.LogicalTTL,
	}, load)

	return &voucherQueriesImpl{ns: ns}
}

func (q *voucherQueriesImpl) GetByID(ctx context.Context, id int64) (*SeckillVoucherView, error) {
	v, err := q.ns.GetWithMutex(ctx, id)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (q *voucherQueriesImpl) Invalidate(ctx context.Context, id int64) error {
	return q.ns.Invalidate(ctx, id)
}
