package request

import (
	"time"

	"seckill-guard/internal/usecase/commands"
)

type CreateSeckillVoucherRequest struct {
	ShopID      int64     `json:"shop_id" binding:"required,min=1"`
	Title       string    `json:"title" binding:"required,max=255"`
	SubTitle    string    `json:"sub_title" binding:"max=255"`
	Rules       string    `json:"rules"`
	PayValue    int64     `json:"pay_value" binding:"min=0"`
	ActualValue int64     `json:"actual_value" binding:"min=0"`
	Stock       int32     `json:"stock" binding:"min=0"`
	BeginTime   time.Time `json:"begin_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required,gtfield=BeginTime"`
}

func (r *CreateSeckillVoucherRequest) ToCommand() commands.CreateVoucherRequest {
	return commands.CreateVoucherRequest{
		ShopID:      r.ShopID,
		Title:       r.Title,
		SubTitle:    r.SubTitle,
		Rules:       r.Rules,
		PayValue:    r.PayValue,
		ActualValue: r.ActualValue,
		Stock:       r.Stock,
		BeginTime:   r.BeginTime,
		EndTime:     r.EndTime,
	}
}
