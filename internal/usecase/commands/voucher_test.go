//go:build unit

package commands_test

import (
	"context"
	"testing"

	"seckill-guard/internal/domain/voucher"
	"seckill-guard/internal/pkg/clock"
	"seckill-guard/internal/pkg/errs"
	"seckill-guard/internal/usecase/commands"
	"seckill-guard/tests/common/builder"
	"seckill-guard/tests/common/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSeckillVoucher(t *testing.T) {
	b := builder.NewVoucherBuilder()

	newUseCase := func() (*memstore.Store, commands.VoucherCommands) {
		db := memstore.New()
		db.PutShop(builder.NewShopBuilder().BuildView())
		return db, commands.NewVoucherUseCase(db, clock.NewMockClock(b.Now))
	}

	t.Run("creates voucher with stock", func(t *testing.T) {
		db, uc := newUseCase()
		res, err := uc.CreateSeckillVoucher(context.Background(), b.BuildCommand())
		require.NoError(t, err)
		assert.Positive(t, res.VoucherID)
		assert.Equal(t, b.Stock, db.Stock(res.VoucherID))
	})

	tests := []struct {
		name   string
		mutate func(*builder.VoucherBuilder)
		is     error
	}{
		{name: "inverted window", mutate: func(v *builder.VoucherBuilder) { v.EndTime = v.BeginTime }, is: voucher.ErrInvalidWindow},
		{name: "negative stock", mutate: func(v *builder.VoucherBuilder) { v.Stock = -1 }, is: voucher.ErrNegativeStock},
		{name: "unknown shop", mutate: func(v *builder.VoucherBuilder) { v.ShopID = 404 }, is: voucher.ErrInvalidShopID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, uc := newUseCase()
			req := builder.NewVoucherBuilder().With(tt.mutate).BuildCommand()
			res, err := uc.CreateSeckillVoucher(context.Background(), req)
			assert.Nil(t, res)
			assert.True(t, errs.Is(err, tt.is), "got %v", err)
		})
	}
}
