package repository

import (
	"context"

	"seckill-guard/internal/domain/order"
	"seckill-guard/internal/infra"
	sqlc "seckill-guard/internal/infra/sqlc/generated"
	"seckill-guard/internal/pkg/pgconv"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/repository/order.go -package=repositorymock

type OrderWriteQueries interface {
	CountVoucherOrdersByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CountVoucherOrdersByUserParams) (int64, error)
	CreateVoucherOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVoucherOrderParams) error
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) CountByUser(ctx context.Context, tx sqlc.DBTX, userID, voucherID int64) (int64, error) {
	n, err := r.queries.CountVoucherOrdersByUser(ctx, tx, sqlc.CountVoucherOrdersByUserParams{
		UserID:    userID,
		VoucherID: voucherID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count voucher orders", err)
	}
	return n, nil
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.VoucherOrder) error {
	err := r.queries.CreateVoucherOrder(ctx, tx, sqlc.CreateVoucherOrderParams{
		ID:        o.ID(),
		UserID:    o.UserID(),
		VoucherID: o.VoucherID(),
		Status:    string(o.Status()),
		CreatedAt: pgconv.TimeToPgtype(o.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create voucher order", err)
	}
	return nil
}
