package response

import (
	"seckill-guard/internal/usecase/queries"
)

type OrderResponse struct {
	ID        int64  `json:"id,string"`
	UserID    int64  `json:"user_id,string"`
	VoucherID int64  `json:"voucher_id,string"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:        v.ID,
		UserID:    v.UserID,
		VoucherID: v.VoucherID,
		Status:    v.Status,
		CreatedAt: v.CreatedAt.Unix(),
	}
}

type DailyOrderCountResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
