package order

import (
	"time"

	"seckill-guard/internal/pkg/errs"
)

var (
	ErrInvalidOrderID   = errs.New("order id must be positive")
	ErrInvalidUserID    = errs.New("user id must be positive")
	ErrInvalidVoucherID = errs.New("voucher id must be positive")
)

type Status string

const (
	StatusUnpaid   Status = "unpaid"
	StatusPaid     Status = "paid"
	StatusCanceled Status = "canceled"
)

func (s Status) String() string { return string(s) }

// VoucherOrder is immutable once created. One per (user, voucher).
type VoucherOrder struct {
	id        int64
	userID    int64
	voucherID int64
	status    Status
	createdAt time.Time
}

func NewVoucherOrder(id, userID, voucherID int64, now time.Time) (*VoucherOrder, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	if voucherID <= 0 {
		return nil, ErrInvalidVoucherID
	}
	return &VoucherOrder{
		id:        id,
		userID:    userID,
		voucherID: voucherID,
		status:    StatusUnpaid,
		createdAt: now,
	}, nil
}

func (o *VoucherOrder) ID() int64            { return o.id }
func (o *VoucherOrder) UserID() int64        { return o.userID }
func (o *VoucherOrder) VoucherID() int64     { return o.voucherID }
func (o *VoucherOrder) Status() Status       { return o.status }
func (o *VoucherOrder) CreatedAt() time.Time { return o.createdAt }

// CreatedEvent is the payload published after the order commits.
type CreatedEvent struct {
	OrderID   int64     `json:"order_id"`
	UserID    int64     `json:"user_id"`
	VoucherID int64     `json:"voucher_id"`
	CreatedAt time.Time `json:"created_at"`
}

const CreatedEventKind = "voucher_order.created"

func (o *VoucherOrder) CreatedEvent() CreatedEvent {
	return CreatedEvent{
		OrderID:   o.id,
		UserID:    o.userID,
		VoucherID: o.voucherID,
		CreatedAt: o.createdAt,
	}
}
