package commands

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"seckill-guard/internal/domain/shop"
	"seckill-guard/internal/infra"
	"seckill-guard/internal/pkg/config"
	"seckill-guard/internal/pkg/errs"
	"seckill-guard/internal/usecase/queries"
	"seckill-guard/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=shop.go -destination=../../../tests/mock/commands/shop.go -package=commandsmock
type ShopCommands interface {
	// Update writes the row, then drops the cache entry.
	Update(ctx context.Context, id int64, p shop.UpdateParams) error
	Warm(ctx context.Context, id int64, ttl time.Duration) error
	// WarmShops warms ids concurrently and returns how many were stored.
	// Unknown ids are skipped.
	WarmShops(ctx context.Context, ids []int64) (int, error)
}

type shopUseCaseImpl struct {
	uow         shared.UnitOfWork
	shops       queries.ShopQueries
	logger      *slog.Logger
	concurrency int
}

func NewShopUseCase(uow shared.UnitOfWork, shops queries.ShopQueries, logger *slog.Logger, cfg config.CacheConfig) ShopCommands {
	return &shopUseCaseImpl{
		uow:         uow,
		shops:       shops,
		logger:      logger,
		concurrency: max(cfg.WarmConcurrency, 1),
	}
}

func (uc *shopUseCaseImpl) Update(ctx context.Context, id int64, p shop.UpdateParams) error {
	u, err := shop.NewUpdate(id, p)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Shops().Update(ctx, tx.DB(), u)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, errs.ErrNotFound)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return errs.Mark(err, shop.ErrInvalidTypeID)
		default:
			return markTransient(err)
		}
	}

	// Delete failures are returned, not logged: the row is already committed.
	if err := uc.shops.Invalidate(ctx, id); err != nil {
		return errs.Wrapf(err, "invalidate shop %d", id)
	}
	return nil
}

func (uc *shopUseCaseImpl) Warm(ctx context.Context, id int64, ttl time.Duration) error {
	return uc.shops.Warm(ctx, id, ttl)
}

func (uc *shopUseCaseImpl) WarmShops(ctx context.Context, ids []int64) (int, error) {
	var warmed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)
	for _, id := range ids {
		g.Go(func() error {
			err := uc.shops.Warm(gctx, id, 0)
			switch {
			case err == nil:
				warmed.Add(1)
				return nil
			case errs.Is(err, errs.ErrNotFound):
				uc.logger.Warn("skipping warm-up of unknown shop", "shop_id", id)
				return nil
			default:
				return errs.Wrapf(err, "warm shop %d", id)
			}
		})
	}

	err := g.Wait()
	return int(warmed.Load()), err
}
