package readstore

import (
	"context"

	"seckill-guard/internal/infra"
	sqlc "seckill-guard/internal/infra/sqlc/generated"
	"seckill-guard/internal/pkg/pgconv"
	"seckill-guard/internal/usecase/queries"
)

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/readstore/voucher.go -package=readstoremock

type SeckillVoucherQueries interface {
	GetSeckillVoucher(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetSeckillVoucherRow, error)
}

type SeckillVoucherReadStore struct {
	queries SeckillVoucherQueries
	db      sqlc.DBTX
}

func NewSeckillVoucherReadStore(queries SeckillVoucherQueries, db sqlc.DBTX) *SeckillVoucherReadStore {
	return &SeckillVoucherReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SeckillVoucherReadStore) FindByID(ctx context.Context, id int64) (*queries.SeckillVoucherView, error) {
	row, err := r.queries.GetSeckillVoucher(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("seckill voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get seckill voucher", err)
	}
	return &queries.SeckillVoucherView{
		ID:          row.ID,
		ShopID:      row.ShopID,
		Title:       row.Title,
		SubTitle:    row.SubTitle,
		Rules:       row.Rules,
		PayValue:    row.PayValue,
		ActualValue: row.ActualValue,
		Stock:       row.Stock,
		BeginTime:   pgconv.TimeFromPgtype(row.BeginTime),
		EndTime:     pgconv.TimeFromPgtype(row.EndTime),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
