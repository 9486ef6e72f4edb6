package repository

import (
	"context"

	"seckill-guard/internal/domain/voucher"
	"seckill-guard/internal/infra"
	sqlc "seckill-guard/internal/infra/sqlc/generated"
	"seckill-guard/internal/pkg/errs"
	"seckill-guard/internal/pkg/pgconv"
)

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/repository/voucher.go -package=repositorymock

type VoucherWriteQueries interface {
	CreateVoucher(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVoucherParams) (sqlc.CreateVoucherRow, error)
	CreateSeckillVoucher(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSeckillVoucherParams) error
	DecrementSeckillStock(ctx context.Context, db sqlc.DBTX, voucherID int64) (int32, error)
}

type VoucherRepository struct {
	queries VoucherWriteQueries
	db      sqlc.DBTX
}

func NewVoucherRepository(queries VoucherWriteQueries, db sqlc.DBTX) *VoucherRepository {
	return &VoucherRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the voucher row and its seckill extension; tx must be a transaction.
func (r *VoucherRepository) Create(ctx context.Context, tx sqlc.DBTX, v *voucher.SeckillVoucher) (int64, error) {
	row, err := r.queries.CreateVoucher(ctx, tx, sqlc.CreateVoucherParams{
		ShopID:      v.ShopID(),
		Title:       v.Title(),
		SubTitle:    v.SubTitle(),
		Rules:       v.Rules(),
		PayValue:    v.PayValue(),
		ActualValue: v.ActualValue(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create voucher", err)
	}

	err = r.queries.CreateSeckillVoucher(ctx, tx, sqlc.CreateSeckillVoucherParams{
		VoucherID: row.ID,
		Stock:     v.Stock(),
		BeginTime: pgconv.TimeToPgtype(v.BeginTime()),
		EndTime:   pgconv.TimeToPgtype(v.EndTime()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create seckill voucher", err)
	}
	return row.ID, nil
}

func (r *VoucherRepository) DecrementStock(ctx context.Context, tx sqlc.DBTX, voucherID int64) (int32, error) {
	stock, err := r.queries.DecrementSeckillStock(ctx, tx, voucherID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, errs.ErrStockExhausted
		}
		return 0, infra.WrapRepoErr("failed to decrement seckill stock", err)
	}
	return stock, nil
}
