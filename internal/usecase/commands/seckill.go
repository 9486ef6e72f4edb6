package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"seckill-guard/internal/domain/order"
	"seckill-guard/internal/domain/voucher"
	"seckill-guard/internal/infra"
	"seckill-guard/internal/infra/lock"
	"seckill-guard/internal/pkg/clock"
	"seckill-guard/internal/pkg/config"
	"seckill-guard/internal/pkg/errs"
	"seckill-guard/internal/usecase/queries"
	"seckill-guard/internal/usecase/shared"
)

const (
	orderLockPrefix = "order:"
	releaseTimeout  = 2 * time.Second
)

type SeckillReason string

const (
	ReasonStockExhausted  SeckillReason = "stock_exhausted"
	ReasonDuplicateOrder  SeckillReason = "duplicate_order"
	ReasonNotStarted      SeckillReason = "not_started"
	ReasonEnded           SeckillReason = "ended"
	ReasonVoucherNotFound SeckillReason = "voucher_not_found"
)

// SeckillResult is either a placed order (Reason empty) or a business failure.
type SeckillResult struct {
	OrderID int64
	Reason  SeckillReason
}

func (r *SeckillResult) Succeeded() bool { return r.Reason == "" }

//go:generate mockgen -source=seckill.go -destination=../../../tests/mock/commands/seckill.go -package=commandsmock
type SeckillCommands interface {
	// Seckill places at most one order per (user, voucher). Errors are
	// infrastructure failures (lock wait exhausted, store unavailable); every
	// business outcome is reported in the result.
	Seckill(ctx context.Context, userID, voucherID int64) (*SeckillResult, error)
}

type seckillUseCaseImpl struct {
	uow      shared.UnitOfWork
	vouchers queries.VoucherQueries
	locks    *lock.Client
	ids      IDGenerator
	clock    clock.Clock
	logger   *slog.Logger

	bizTag        string
	orderTopic    string
	lockTTL       time.Duration
	lockWait      time.Duration
	retryInterval time.Duration
}

func NewSeckillUseCase(
	uow shared.UnitOfWork,
	vouchers queries.VoucherQueries,
	locks *lock.Client,
	ids IDGenerator,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) SeckillCommands {
	return &seckillUseCaseImpl{
		uow:           uow,
		vouchers:      vouchers,
		locks:         locks,
		ids:           ids,
		clock:         clk,
		logger:        logger,
		bizTag:        cfg.Seckill.OrderBizTag,
		orderTopic:    cfg.Kafka.OrderTopic,
		lockTTL:       cfg.Lock.TTL,
		lockWait:      cfg.Seckill.LockWait,
		retryInterval: cfg.Seckill.LockRetryInterval,
	}
}

func (uc *seckillUseCaseImpl) Seckill(ctx context.Context, userID, voucherID int64) (*SeckillResult, error) {
	v, err := uc.vouchers.GetByID(ctx, voucherID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return failed(ReasonVoucherNotFound), nil
		}
		return nil, err
	}

	switch voucher.Window(v.BeginTime, v.EndTime, uc.clock.Now()) {
	case voucher.WindowNotStarted:
		return failed(ReasonNotStarted), nil
	case voucher.WindowEnded:
		return failed(ReasonEnded), nil
	}

	// Cached stock is a hint; the guarded update below is authoritative.
	if v.Stock < 1 {
		return failed(ReasonStockExhausted), nil
	}

	m := uc.locks.NewMutex(orderLockPrefix + strconv.FormatInt(userID, 10))
	if err := m.LockWithin(ctx, uc.lockTTL, uc.lockWait, uc.retryInterval); err != nil {
		return nil, err
	}
	defer uc.release(ctx, m)

	orderID, remaining, err := uc.placeOrder(ctx, userID, voucherID)
	switch {
	case err == nil:
	case errs.Is(err, errs.ErrDuplicateOrder):
		return failed(ReasonDuplicateOrder), nil
	case errs.Is(err, errs.ErrStockExhausted):
		uc.dropVoucherCache(ctx, voucherID)
		return failed(ReasonStockExhausted), nil
	default:
		return nil, markTransient(err)
	}

	if remaining == 0 {
		uc.dropVoucherCache(ctx, voucherID)
	}
	return &SeckillResult{OrderID: orderID}, nil
}

// placeOrder runs the duplicate check, the guarded decrement and both inserts
// in one transaction. Any returned error rolls all of them back.
func (uc *seckillUseCaseImpl) placeOrder(ctx context.Context, userID, voucherID int64) (int64, int32, error) {
	var (
		orderID   int64
		remaining int32
	)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Orders().CountByUser(ctx, tx.DB(), userID, voucherID)
		if err != nil {
			return err
		}
		if n >= 1 {
			return errs.ErrDuplicateOrder
		}

		stock, err := tx.Vouchers().DecrementStock(ctx, tx.DB(), voucherID)
		if err != nil {
			return err
		}
		if stock < 0 {
			uc.logger.Error("seckill stock went negative", "voucher_id", voucherID, "stock", stock)
			return errs.Mark(errs.Newf("voucher %d stock is %d after decrement", voucherID, stock), errs.ErrConsistencyViolation)
		}

		id, err := uc.ids.NextID(ctx, uc.bizTag)
		if err != nil {
			return err
		}
		o, err := order.NewVoucherOrder(id, userID, voucherID, uc.clock.Now())
		if err != nil {
			return err
		}

		if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				uc.logger.Error("second order for user and voucher reached the database",
					"user_id", userID, "voucher_id", voucherID, "order_id", id)
				return errs.Mark(err, errs.ErrConsistencyViolation)
			}
			return err
		}

		payload, err := json.Marshal(o.CreatedEvent())
		if err != nil {
			return errs.Wrap(err, "encode order created event")
		}
		err = tx.Outbox().CreateJob(ctx, tx.DB(), shared.NewOutboxJob{
			Kind:    order.CreatedEventKind,
			Topic:   uc.orderTopic,
			Key:     strconv.FormatInt(voucherID, 10),
			Payload: payload,
			RunAt:   o.CreatedAt(),
		})
		if err != nil {
			return err
		}

		orderID, remaining = id, stock
		return nil
	})
	return orderID, remaining, err
}

func (uc *seckillUseCaseImpl) release(ctx context.Context, m *lock.Mutex) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	ok, err := m.Unlock(ctx)
	if err != nil {
		uc.logger.Warn("failed to release order lock", "key", m.Key(), "error", err.Error())
		return
	}
	if !ok {
		uc.logger.Warn("order lock expired before release", "key", m.Key())
	}
}

// dropVoucherCache lets the next reader see the database stock. Best effort.
func (uc *seckillUseCaseImpl) dropVoucherCache(ctx context.Context, voucherID int64) {
	if err := uc.vouchers.Invalidate(context.WithoutCancel(ctx), voucherID); err != nil {
		uc.logger.Warn("failed to invalidate voucher cache", "voucher_id", voucherID, "error", err.Error())
	}
}

func failed(reason SeckillReason) *SeckillResult {
	return &SeckillResult{Reason: reason}
}

func markTransient(err error) error {
	if infra.IsKind(err, infra.KindDBFailure) {
		return errs.Mark(err, errs.ErrTransientStore)
	}
	return err
}
