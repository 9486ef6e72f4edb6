package components

import (
	"seckill-guard/internal/infra/readstore"
	sqlc "seckill-guard/internal/infra/sqlc/generated"
	"seckill-guard/internal/infra/uow"
	"seckill-guard/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	// Write repositories are built per transaction by the unit of work.
	fx.Provide(uow.NewPostgresUoW),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// SeckillVoucher
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SeckillVoucherQueries)),
		),
		fx.Annotate(
			readstore.NewSeckillVoucherReadStore,
			fx.As(new(queries.SeckillVoucherReadStore)),
		),
		// Shop
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ShopQueries)),
		),
		fx.Annotate(
			readstore.NewShopReadStore,
			fx.As(new(queries.ShopReadStore)),
		),
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
