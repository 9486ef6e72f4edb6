package commands

import (
	"context"
	"time"

	"seckill-guard/internal/domain/voucher"
	"seckill-guard/internal/infra"
	"seckill-guard/internal/pkg/clock"
	"seckill-guard/internal/pkg/errs"
	"seckill-guard/internal/usecase/shared"
)

type CreateVoucherRequest struct {
	ShopID      int64
	Title       string
	SubTitle    string
	Rules       string
	PayValue    int64
	ActualValue int64
	Stock       int32
	BeginTime   time.Time
	EndTime     time.Time
}

type CreateVoucherResult struct {
	VoucherID int64
}

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/commands/voucher.go -package=commandsmock
type VoucherCommands interface {
	CreateSeckillVoucher(ctx context.Context, req CreateVoucherRequest) (*CreateVoucherResult, error)
}

type voucherUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewVoucherUseCase(uow shared.UnitOfWork, clk clock.Clock) VoucherCommands {
	return &voucherUseCaseImpl{uow: uow, clock: clk}
}

func (uc *voucherUseCaseImpl) CreateSeckillVoucher(ctx context.Context, req CreateVoucherRequest) (*CreateVoucherResult, error) {
	v, err := voucher.NewSeckillVoucher(voucher.NewSeckillVoucherParams{
		ShopID:      req.ShopID,
		Title:       req.Title,
		SubTitle:    req.SubTitle,
		Rules:       req.Rules,
		PayValue:    req.PayValue,
		ActualValue: req.ActualValue,
		Stock:       req.Stock,
		BeginTime:   req.BeginTime,
		EndTime:     req.EndTime,
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Vouchers().Create(ctx, tx.DB(), v)
		if derr != nil {
			return derr
		}
		id = created
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, voucher.ErrInvalidShopID)
		}
		return nil, markTransient(err)
	}
	return &CreateVoucherResult{VoucherID: id}, nil
}
