package shared

import (
	"context"
	"time"

	"seckill-guard/internal/domain/order"
	"seckill-guard/internal/domain/shop"
	"seckill-guard/internal/domain/voucher"
	sqlc "seckill-guard/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Vouchers() VoucherRepository
	Orders() OrderRepository
	Shops() ShopRepository
	Outbox() OutboxRepository
	DB() sqlc.DBTX
}

type VoucherRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, v *voucher.SeckillVoucher) (int64, error)
	// DecrementStock returns errs.ErrStockExhausted when no row satisfied stock > 0.
	DecrementStock(ctx context.Context, tx sqlc.DBTX, voucherID int64) (int32, error)
}

type OrderRepository interface {
	CountByUser(ctx context.Context, tx sqlc.DBTX, userID, voucherID int64) (int64, error)
	Create(ctx context.Context, tx sqlc.DBTX, o *order.VoucherOrder) error
}

type ShopRepository interface {
	Update(ctx context.Context, tx sqlc.DBTX, u *shop.Update) error
}

type OutboxRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, job NewOutboxJob) error
	Claim(ctx context.Context, tx sqlc.DBTX, limit int32) ([]OutboxJob, error)
	MarkDone(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, maxAttempts int32, lastError string, runAt time.Time) error
}

type NewOutboxJob struct {
	Kind    string
	Topic   string
	Key     string
	Payload []byte
	RunAt   time.Time
}

type OutboxJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Key      string
	Payload  []byte
	Attempts int32
}
