package components

import (
	"context"
	"log/slog"

	"seckill-guard/internal/infra/cache"
	"seckill-guard/internal/infra/idgen"
	"seckill-guard/internal/infra/lock"
	"seckill-guard/internal/pkg/clock"
	"seckill-guard/internal/pkg/config"
	"seckill-guard/internal/usecase/commands"
	"seckill-guard/internal/usecase/queries"

	"go.uber.org/fx"
)

// CoordinationModule holds everything that coordinates instances through
// Redis: locks, id counters and the cache.
var CoordinationModule = fx.Module("coordination",
	fx.Provide(
		clock.NewRealClock,
		lock.NewClient,
		fx.Annotate(
			idgen.NewGenerator,
			fx.As(new(commands.IDGenerator)),
			fx.As(new(queries.DailyCounter)),
		),
		NewRebuildPool,
		cache.NewClient,
	),
)

func NewRebuildPool(lc fx.Lifecycle, cfg config.CacheConfig, logger *slog.Logger) *cache.RebuildPool {
	pool := cache.NewRebuildPool(cfg, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return pool.Close(ctx)
		},
	})
	return pool
}
