package response

import (
	"seckill-guard/internal/usecase/queries"
)

type ShopResponse struct {
	ID        int64   `json:"id,string"`
	Name      string  `json:"name"`
	TypeID    int64   `json:"type_id"`
	Images    string  `json:"images"`
	Area      string  `json:"area"`
	Address   string  `json:"address"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	AvgPrice  int64   `json:"avg_price"`
	Sold      int32   `json:"sold"`
	Comments  int32   `json:"comments"`
	Score     int32   `json:"score"`
	OpenHours string  `json:"open_hours"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

func FromShopView(v *queries.ShopView) *ShopResponse {
	return &ShopResponse{
		ID:        v.ID,
		Name:      v.Name,
		TypeID:    v.TypeID,
		Images:    v.Images,
		Area:      v.Area,
		Address:   v.Address,
		X:         v.X,
		Y:         v.Y,
		AvgPrice:  v.AvgPrice,
		Sold:      v.Sold,
		Comments:  v.Comments,
		Score:     v.Score,
		OpenHours: v.OpenHours,
		CreatedAt: v.CreatedAt.Unix(),
		UpdatedAt: v.UpdatedAt.Unix(),
	}
}

type ShopTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Sort int32  `json:"sort"`
}

func FromShopTypeViews(items []*queries.ShopTypeView) []*ShopTypeResponse {
	res := make([]*ShopTypeResponse, len(items))
	for i, it := range items {
		res[i] = &ShopTypeResponse{ID: it.ID, Name: it.Name, Icon: it.Icon, Sort: it.Sort}
	}
	return res
}

type WarmShopResponse struct {
	Warmed int `json:"warmed"`
}
