//go:build unit

package shop_test

import (
	"strings"
	"testing"

	"seckill-guard/internal/domain/shop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() shop.UpdateParams {
	return shop.UpdateParams{
		Name:     "  Tea House  ",
		TypeID:   1,
		Area:     "Downtown",
		Address:  "1 Main St",
		AvgPrice: 80,
		Score:    45,
	}
}

func TestNewUpdate(t *testing.T) {
	u, err := shop.NewUpdate(3, validParams())
	require.NoError(t, err)
	assert.Equal(t, "Tea House", u.Name())
	assert.Equal(t, int64(3), u.ID())

	tests := []struct {
		name   string
		mutate func(*shop.UpdateParams)
		errIs  error
	}{
		{name: "blank name", mutate: func(p *shop.UpdateParams) { p.Name = "   " }, errIs: shop.ErrEmptyName},
		{name: "long name", mutate: func(p *shop.UpdateParams) { p.Name = strings.Repeat("a", shop.MaxNameLength+1) }, errIs: shop.ErrNameTooLong},
		{name: "missing type", mutate: func(p *shop.UpdateParams) { p.TypeID = 0 }, errIs: shop.ErrInvalidTypeID},
		{name: "negative price", mutate: func(p *shop.UpdateParams) { p.AvgPrice = -1 }, errIs: shop.ErrInvalidPrice},
		{name: "score above 50", mutate: func(p *shop.UpdateParams) { p.Score = 51 }, errIs: shop.ErrInvalidScore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			u, err := shop.NewUpdate(3, p)
			assert.ErrorIs(t, err, tt.errIs)
			assert.Nil(t, u)
		})
	}
}
