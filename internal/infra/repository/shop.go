package repository

import (
	"context"

	"seckill-guard/internal/domain/shop"
	"seckill-guard/internal/infra"
	sqlc "seckill-guard/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=shop.go -destination=../../../tests/mock/repository/shop.go -package=repositorymock

type ShopWriteQueries interface {
	UpdateShop(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateShopParams) (int64, error)
}

type ShopRepository struct {
	queries ShopWriteQueries
	db      sqlc.DBTX
}

func NewShopRepository(queries ShopWriteQueries, db sqlc.DBTX) *ShopRepository {
	return &ShopRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ShopRepository) Update(ctx context.Context, tx sqlc.DBTX, u *shop.Update) error {
	rows, err := r.queries.UpdateShop(ctx, tx, sqlc.UpdateShopParams{
		ID:        u.ID(),
		Name:      u.Name(),
		TypeID:    u.TypeID(),
		Area:      u.Area(),
		Address:   u.Address(),
		X:         u.X(),
		Y:         u.Y(),
		AvgPrice:  u.AvgPrice(),
		OpenHours: u.OpenHours(),
		Score:     u.Score(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update shop", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("shop not found", nil, infra.KindNotFound)
	}
	return nil
}
