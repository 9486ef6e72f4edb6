package response

import (
	"seckill-guard/internal/usecase/queries"
)

// Order and voucher ids exceed 2^53, so they travel as JSON strings.
type SeckillOrderResponse struct {
	OrderID int64 `json:"order_id,string"`
}

type SeckillFailureDetail struct {
	Reason string `json:"reason"`
}

type CreateVoucherResponse struct {
	VoucherID int64 `json:"voucher_id,string"`
}

type SeckillVoucherResponse struct {
	ID          int64  `json:"id,string"`
	ShopID      int64  `json:"shop_id,string"`
	Title       string `json:"title"`
	SubTitle    string `json:"sub_title"`
	Rules       string `json:"rules"`
	PayValue    int64  `json:"pay_value"`
	ActualValue int64  `json:"actual_value"`
	Stock       int32  `json:"stock"`
	BeginTime   int64  `json:"begin_time"`
	EndTime     int64  `json:"end_time"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

func FromSeckillVoucherView(v *queries.SeckillVoucherView) *SeckillVoucherResponse {
	return &SeckillVoucherResponse{
		ID:          v.ID,
		ShopID:      v.ShopID,
		Title:       v.Title,
		SubTitle:    v.SubTitle,
		Rules:       v.Rules,
		PayValue:    v.PayValue,
		ActualValue: v.ActualValue,
		Stock:       v.Stock,
		BeginTime:   v.BeginTime.Unix(),
		EndTime:     v.EndTime.Unix(),
		CreatedAt:   v.CreatedAt.Unix(),
		UpdatedAt:   v.UpdatedAt.Unix(),
	}
}
