package components

import (
	"context"
	"log/slog"

	"seckill-guard/internal/pkg/config"
	"seckill-guard/internal/usecase/commands"
	"seckill-guard/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
	fx.Invoke(warmShops),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSeckillUseCase,
		commands.NewVoucherUseCase,
		commands.NewShopUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVoucherQueries,
		queries.NewShopQueries,
		queries.NewShopTypeQueries,
		func(store queries.OrderReadStore, counter queries.DailyCounter, cfg config.Config) queries.OrderQueries {
			return queries.NewOrderQueries(store, counter, cfg.Seckill.OrderBizTag)
		},
	),
)

// warmShops stores logical-expiry entries for CACHE_WARM_SHOP_IDS before the
// server accepts traffic. Failures are logged; reads still rebuild lazily.
func warmShops(lc fx.Lifecycle, shops commands.ShopCommands, cfg config.CacheConfig, logger *slog.Logger) {
	if len(cfg.WarmShopIDs) == 0 {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			warmed, err := shops.WarmShops(ctx, cfg.WarmShopIDs)
			if err != nil {
				logger.Warn("shop cache warm-up incomplete", "warmed", warmed, "requested", len(cfg.WarmShopIDs), "error", err)
				return nil
			}
			logger.Info("shop cache warmed", "warmed", warmed, "requested", len(cfg.WarmShopIDs))
			return nil
		},
	})
}
