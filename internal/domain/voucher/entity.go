package voucher

import (
	"time"

	"seckill-guard/internal/pkg/errs"
)

var (
	ErrNotStarted      = errs.New("seckill has not started")
	ErrEnded           = errs.New("seckill has ended")
	ErrInvalidWindow   = errs.New("seckill end time must be after begin time")
	ErrNegativeStock   = errs.New("stock cannot be negative")
	ErrInvalidShopID   = errs.New("shop id must be positive")
	ErrEmptyTitle      = errs.New("voucher title cannot be empty")
	ErrInvalidPayValue = errs.New("pay value must not exceed actual value")
	ErrNegativeAmount  = errs.New("voucher amounts cannot be negative")
)

type WindowState int

const (
	WindowOpen WindowState = iota
	WindowNotStarted
	WindowEnded
)

// SeckillVoucher is a voucher sold in limited quantity inside a time window.
type SeckillVoucher struct {
	id          int64
	shopID      int64
	title       string
	subTitle    string
	rules       string
	payValue    int64
	actualValue int64
	stock       int32
	beginTime   time.Time
	endTime     time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

type NewSeckillVoucherParams struct {
	ShopID      int64
	Title       string
	SubTitle    string
	Rules       string
	PayValue    int64
	ActualValue int64
	Stock       int32
	BeginTime   time.Time
	EndTime     time.Time
}

func NewSeckillVoucher(p NewSeckillVoucherParams, now time.Time) (*SeckillVoucher, error) {
	if p.ShopID <= 0 {
		return nil, ErrInvalidShopID
	}
	if p.Title == "" {
		return nil, ErrEmptyTitle
	}
	if p.PayValue < 0 || p.ActualValue < 0 {
		return nil, ErrNegativeAmount
	}
	if p.PayValue > p.ActualValue {
		return nil, ErrInvalidPayValue
	}
	if p.Stock < 0 {
		return nil, ErrNegativeStock
	}
	if !p.EndTime.After(p.BeginTime) {
		return nil, ErrInvalidWindow
	}

	return &SeckillVoucher{
		shopID:      p.ShopID,
		title:       p.Title,
		subTitle:    p.SubTitle,
		rules:       p.Rules,
		payValue:    p.PayValue,
		actualValue: p.ActualValue,
		stock:       p.Stock,
		beginTime:   p.BeginTime,
		endTime:     p.EndTime,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructSeckillVoucher rebuilds a voucher from persisted state without validation.
func ReconstructSeckillVoucher(id int64, p NewSeckillVoucherParams, createdAt, updatedAt time.Time) *SeckillVoucher {
	return &SeckillVoucher{
		id:          id,
		shopID:      p.ShopID,
		title:       p.Title,
		subTitle:    p.SubTitle,
		rules:       p.Rules,
		payValue:    p.PayValue,
		actualValue: p.ActualValue,
		stock:       p.Stock,
		beginTime:   p.BeginTime,
		endTime:     p.EndTime,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (v *SeckillVoucher) ValidateWindow(t time.Time) error {
	return ValidateWindow(v.beginTime, v.endTime, t)
}

func (v *SeckillVoucher) HasStock() bool { return v.stock > 0 }

func (v *SeckillVoucher) ID() int64            { return v.id }
func (v *SeckillVoucher) ShopID() int64        { return v.shopID }
func (v *SeckillVoucher) Title() string        { return v.title }
func (v *SeckillVoucher) SubTitle() string     { return v.subTitle }
func (v *SeckillVoucher) Rules() string        { return v.rules }
func (v *SeckillVoucher) PayValue() int64      { return v.payValue }
func (v *SeckillVoucher) ActualValue() int64   { return v.actualValue }
func (v *SeckillVoucher) Stock() int32         { return v.stock }
func (v *SeckillVoucher) BeginTime() time.Time { return v.beginTime }
func (v *SeckillVoucher) EndTime() time.Time   { return v.endTime }
func (v *SeckillVoucher) CreatedAt() time.Time { return v.createdAt }
func (v *SeckillVoucher) UpdatedAt() time.Time { return v.updatedAt }

// Window classifies t against [begin, end]. Both bounds are inclusive.
func Window(begin, end, t time.Time) WindowState {
	if t.Before(begin) {
		return WindowNotStarted
	}
	if t.After(end) {
		return WindowEnded
	}
	return WindowOpen
}

func ValidateWindow(begin, end, t time.Time) error {
	switch Window(begin, end, t) {
	case WindowNotStarted:
		return ErrNotStarted
	case WindowEnded:
		return ErrEnded
	default:
		return nil
	}
}
