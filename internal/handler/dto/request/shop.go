package request

import (
	"time"

	"seckill-guard/internal/domain/shop"
)

type UpdateShopRequest struct {
	Name      string  `json:"name" binding:"required,max=128"`
	TypeID    int64   `json:"type_id" binding:"required,min=1"`
	Area      string  `json:"area" binding:"max=128"`
	Address   string  `json:"address" binding:"max=255"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	AvgPrice  int64   `json:"avg_price" binding:"min=0"`
	OpenHours string  `json:"open_hours" binding:"max=32"`
	Score     int32   `json:"score" binding:"min=0,max=50"`
}

func (r *UpdateShopRequest) ToDomain() shop.UpdateParams {
	return shop.UpdateParams{
		Name:      r.Name,
		TypeID:    r.TypeID,
		Area:      r.Area,
		Address:   r.Address,
		X:         r.X,
		Y:         r.Y,
		AvgPrice:  r.AvgPrice,
		OpenHours: r.OpenHours,
		Score:     r.Score,
	}
}

// WarmShopQuery overrides the logical TTL of a pre-warmed entry, e.g. ?ttl=10m.
type WarmShopQuery struct {
	TTL string `form:"ttl"`
}

func (q *WarmShopQuery) Duration() (time.Duration, error) {
	if q.TTL == "" {
		return 0, nil
	}
	return time.ParseDuration(q.TTL)
}

type WarmShopsRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1,max=1000,dive,min=1"`
}
