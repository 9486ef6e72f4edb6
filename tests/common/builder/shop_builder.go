//go:build unit || e2e

package builder

import (
	"time"

	"seckill-guard/internal/domain/shop"
	reqdto "seckill-guard/internal/handler/dto/request"
	"seckill-guard/internal/usecase/queries"
)

type ShopBuilder struct {
	ID        int64
	Name      string
	TypeID    int64
	Area      string
	Address   string
	X         float64
	Y         float64
	AvgPrice  int64
	Score     int32
	OpenHours string
	Now       time.Time
}

func NewShopBuilder() *ShopBuilder {
	return &ShopBuilder{
		ID:        1,
		Name:      "Tea House",
		TypeID:    1,
		Area:      "Downtown",
		Address:   "1 Main St",
		X:         120.149993,
		Y:         30.334229,
		AvgPrice:  80,
		Score:     45,
		OpenHours: "10:00-22:00",
		Now:       time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *ShopBuilder) With(mutate func(*ShopBuilder)) *ShopBuilder {
	mutate(b)
	return b
}

func (b *ShopBuilder) BuildView() queries.ShopView {
	return queries.ShopView{
		ID:        b.ID,
		Name:      b.Name,
		TypeID:    b.TypeID,
		Area:      b.Area,
		Address:   b.Address,
		X:         b.X,
		Y:         b.Y,
		AvgPrice:  b.AvgPrice,
		Score:     b.Score,
		OpenHours: b.OpenHours,
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}

func (b *ShopBuilder) BuildUpdateParams() shop.UpdateParams {
	return shop.UpdateParams{
		Name:      b.Name,
		TypeID:    b.TypeID,
		Area:      b.Area,
		Address:   b.Address,
		X:         b.X,
		Y:         b.Y,
		AvgPrice:  b.AvgPrice,
		OpenHours: b.OpenHours,
		Score:     b.Score,
	}
}

func (b *ShopBuilder) BuildUpdate() (*shop.Update, error) {
	return shop.NewUpdate(b.ID, b.BuildUpdateParams())
}

func (b *ShopBuilder) BuildUpdateRequestDTO() reqdto.UpdateShopRequest {
	return reqdto.UpdateShopRequest{
		Name:      b.Name,
		TypeID:    b.TypeID,
		Area:      b.Area,
		Address:   b.Address,
		X:         b.X,
		Y:         b.Y,
		AvgPrice:  b.AvgPrice,
		OpenHours: b.OpenHours,
		Score:     b.Score,
	}
}
