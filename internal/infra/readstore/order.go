package readstore

import (
	"context"

	"seckill-guard/internal/infra"
	sqlc "seckill-guard/internal/infra/sqlc/generated"
	"seckill-guard/internal/pkg/pgconv"
	"seckill-guard/internal/usecase/queries"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/readstore/order.go -package=readstoremock

type OrderQueries interface {
	GetVoucherOrder(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.TbVoucherOrder, error)
}

type OrderReadStore struct {
	queries OrderQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id int64) (*queries.OrderView, error) {
	row, err := r.queries.GetVoucherOrder(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get voucher order", err)
	}
	return &queries.OrderView{
		ID:        row.ID,
		UserID:    row.UserID,
		VoucherID: row.VoucherID,
		Status:    row.Status,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
