//go:build unit || e2e

package builder

import (
	"time"

	"seckill-guard/internal/domain/voucher"
	reqdto "seckill-guard/internal/handler/dto/request"
	"seckill-guard/internal/usecase/commands"
	"seckill-guard/internal/usecase/queries"
)

type VoucherBuilder struct {
	ID          int64
	ShopID      int64
	Title       string
	SubTitle    string
	Rules       string
	PayValue    int64
	ActualValue int64
	Stock       int32
	BeginTime   time.Time
	EndTime     time.Time
	Now         time.Time
}

func NewVoucherBuilder() *VoucherBuilder {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &VoucherBuilder{
		ID:          1,
		ShopID:      1,
		Title:       "100 off 150",
		SubTitle:    "weekdays only",
		Rules:       "one per user",
		PayValue:    10000,
		ActualValue: 15000,
		Stock:       100,
		BeginTime:   now.Add(-time.Hour),
		EndTime:     now.Add(time.Hour),
		Now:         now,
	}
}

func (b *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(b)
	return b
}

func (b *VoucherBuilder) Params() voucher.NewSeckillVoucherParams {
	return voucher.NewSeckillVoucherParams{
		ShopID:      b.ShopID,
		Title:       b.Title,
		SubTitle:    b.SubTitle,
		Rules:       b.Rules,
		PayValue:    b.PayValue,
		ActualValue: b.ActualValue,
		Stock:       b.Stock,
		BeginTime:   b.BeginTime,
		EndTime:     b.EndTime,
	}
}

// Build methods
func (b *VoucherBuilder) BuildDomain() (*voucher.SeckillVoucher, error) {
	return voucher.NewSeckillVoucher(b.Params(), b.Now)
}

func (b *VoucherBuilder) BuildView() queries.SeckillVoucherView {
	return queries.SeckillVoucherView{
		ID:          b.ID,
		ShopID:      b.ShopID,
		Title:       b.Title,
		SubTitle:    b.SubTitle,
		Rules:       b.Rules,
		PayValue:    b.PayValue,
		ActualValue: b.ActualValue,
		Stock:       b.Stock,
		BeginTime:   b.BeginTime,
		EndTime:     b.EndTime,
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
	}
}

func (b *VoucherBuilder) BuildCommand() commands.CreateVoucherRequest {
	return commands.CreateVoucherRequest{
		ShopID:      b.ShopID,
		Title:       b.Title,
		SubTitle:    b.SubTitle,
		Rules:       b.Rules,
		PayValue:    b.PayValue,
		ActualValue: b.ActualValue,
		Stock:       b.Stock,
		BeginTime:   b.BeginTime,
		EndTime:     b.EndTime,
	}
}

func (b *VoucherBuilder) BuildCreateRequestDTO() reqdto.CreateSeckillVoucherRequest {
	return reqdto.CreateSeckillVoucherRequest{
		ShopID:      b.ShopID,
		Title:       b.Title,
		SubTitle:    b.SubTitle,
		Rules:       b.Rules,
		PayValue:    b.PayValue,
		ActualValue: b.ActualValue,
		Stock:       b.Stock,
		BeginTime:   b.BeginTime,
		EndTime:     b.EndTime,
	}
}
