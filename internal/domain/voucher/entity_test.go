//go:build unit

package voucher_test

import (
	"testing"
	"time"

	"seckill-guard/internal/domain/voucher"
	"seckill-guard/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(voucher.SeckillVoucher{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.VoucherBuilder)
	errIs  error
}

func TestSeckillVoucher(t *testing.T) {
	t.Run("valid voucher", func(t *testing.T) {
		b := builder.NewVoucherBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		expected := voucher.ReconstructSeckillVoucher(0, b.Params(), b.Now, b.Now)
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("SeckillVoucher mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, actual.HasStock())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "zero stock OK", mutate: func(b *builder.VoucherBuilder) { b.Stock = 0 }},
			{name: "negative stock NG", mutate: func(b *builder.VoucherBuilder) { b.Stock = -1 }, errIs: voucher.ErrNegativeStock},
			{name: "missing shop NG", mutate: func(b *builder.VoucherBuilder) { b.ShopID = 0 }, errIs: voucher.ErrInvalidShopID},
			{name: "empty title NG", mutate: func(b *builder.VoucherBuilder) { b.Title = "" }, errIs: voucher.ErrEmptyTitle},
			{name: "pay above actual NG", mutate: func(b *builder.VoucherBuilder) { b.PayValue = b.ActualValue + 1 }, errIs: voucher.ErrInvalidPayValue},
			{name: "negative amount NG", mutate: func(b *builder.VoucherBuilder) { b.PayValue = -1 }, errIs: voucher.ErrNegativeAmount},
			{name: "end equal to begin NG", mutate: func(b *builder.VoucherBuilder) { b.EndTime = b.BeginTime }, errIs: voucher.ErrInvalidWindow},
			{name: "end before begin NG", mutate: func(b *builder.VoucherBuilder) { b.EndTime = b.BeginTime.Add(-time.Hour) }, errIs: voucher.ErrInvalidWindow},
		})
	})
}

func TestWindow(t *testing.T) {
	begin := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	end := begin.Add(2 * time.Hour)

	tests := []struct {
		name  string
		at    time.Time
		state voucher.WindowState
		err   error
	}{
		{name: "before begin", at: begin.Add(-time.Nanosecond), state: voucher.WindowNotStarted, err: voucher.ErrNotStarted},
		{name: "at begin", at: begin, state: voucher.WindowOpen},
		{name: "inside", at: begin.Add(time.Hour), state: voucher.WindowOpen},
		{name: "at end", at: end, state: voucher.WindowOpen},
		{name: "after end", at: end.Add(time.Nanosecond), state: voucher.WindowEnded, err: voucher.ErrEnded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.state, voucher.Window(begin, end, tt.at))
			err := voucher.ValidateWindow(begin, end, tt.at)
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewVoucherBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, c.errIs)
			assert.Nil(t, actual)
		})
	}
}
