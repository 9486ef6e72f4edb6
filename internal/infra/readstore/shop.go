package readstore

import (
	"context"

	"seckill-guard/internal/infra"
	sqlc "seckill-guard/internal/infra/sqlc/generated"
	"seckill-guard/internal/pkg/pgconv"
	"seckill-guard/internal/usecase/queries"
)

//go:generate mockgen -source=shop.go -destination=../../../tests/mock/readstore/shop.go -package=readstoremock

type ShopQueries interface {
	GetShopByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.TbShop, error)
	ListShopTypes(ctx context.Context, db sqlc.DBTX) ([]sqlc.TbShopType, error)
}

type ShopReadStore struct {
	queries ShopQueries
	db      sqlc.DBTX
}

func NewShopReadStore(queries ShopQueries, db sqlc.DBTX) *ShopReadStore {
	return &ShopReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ShopReadStore) FindByID(ctx context.Context, id int64) (*queries.ShopView, error) {
	row, err := r.queries.GetShopByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get shop by id", err)
	}
	return toShopView(row), nil
}

func (r *ShopReadStore) ListTypes(ctx context.Context) ([]*queries.ShopTypeView, error) {
	rows, err := r.queries.ListShopTypes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shop types", err)
	}

	result := make([]*queries.ShopTypeView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ShopTypeView{
			ID:   row.ID,
			Name: row.Name,
			Icon: row.Icon,
			Sort: row.Sort,
		}
	}
	return result, nil
}

func toShopView(row sqlc.TbShop) *queries.ShopView {
	return &queries.ShopView{
		ID:        row.ID,
		Name:      row.Name,
		TypeID:    row.TypeID,
		Images:    row.Images,
		Area:      row.Area,
		Address:   row.Address,
		X:         row.X,
		Y:         row.Y,
		AvgPrice:  row.AvgPrice,
		Sold:      row.Sold,
		Comments:  row.Comments,
		Score:     row.Score,
		OpenHours: row.OpenHours,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
