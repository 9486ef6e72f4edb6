package queries

import (
	"time"
)

// SeckillVoucherView is the cached voucher snapshot the seckill path reads.
type SeckillVoucherView struct {
	ID          int64     `json:"id"`
	ShopID      int64     `json:"shop_id"`
	Title       string    `json:"title"`
	SubTitle    string    `json:"sub_title"`
	Rules       string    `json:"rules"`
	PayValue    int64     `json:"pay_value"`
	ActualValue int64     `json:"actual_value"`
	Stock       int32     `json:"stock"`
	BeginTime   time.Time `json:"begin_time"`
	EndTime     time.Time `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ShopView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TypeID    int64     `json:"type_id"`
	Images    string    `json:"images"`
	Area      string    `json:"area"`
	Address   string    `json:"address"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	AvgPrice  int64     `json:"avg_price"`
	Sold      int32     `json:"sold"`
	Comments  int32     `json:"comments"`
	Score     int32     `json:"score"`
	OpenHours string    `json:"open_hours"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ShopTypeView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Sort int32  `json:"sort"`
}

type OrderView struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	VoucherID int64     `json:"voucher_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
