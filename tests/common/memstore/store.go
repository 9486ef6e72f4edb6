//go:build unit || e2e

// Package memstore is an in-memory stand-in for the PostgreSQL unit of work
// and read stores. Each statement is atomic and the stock decrement is
// guarded like the SQL version; a failed transaction is undone in reverse.
package memstore

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"seckill-guard/internal/domain/order"
	"seckill-guard/internal/domain/shop"
	"seckill-guard/internal/domain/voucher"
	"seckill-guard/internal/infra"
	sqlc "seckill-guard/internal/infra/sqlc/generated"
	"seckill-guard/internal/pkg/errs"
	"seckill-guard/internal/usecase/queries"
	"seckill-guard/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type Store struct {
	mu        sync.Mutex
	vouchers  map[int64]queries.SeckillVoucherView
	shops     map[int64]queries.ShopView
	shopTypes []queries.ShopTypeView
	orders    map[int64]queries.OrderView
	outbox    []*OutboxRecord
	nextID    int64

	// Clock for outbox due-time checks.
	Now func() time.Time

	voucherReads atomic.Int64
	shopReads    atomic.Int64
	typeReads    atomic.Int64

	// Overrides the insert for tests that need a failing transaction.
	FailOrderInsert error
}

func New() *Store {
	return &Store{
		vouchers: map[int64]queries.SeckillVoucherView{},
		shops:    map[int64]queries.ShopView{},
		orders:   map[int64]queries.OrderView{},
		nextID:   1,
		Now:      time.Now,
	}
}

func (s *Store) PutVoucher(v queries.SeckillVoucherView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vouchers[v.ID] = v
}

func (s *Store) PutShop(v queries.ShopView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shops[v.ID] = v
}

func (s *Store) PutShopTypes(types ...queries.ShopTypeView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shopTypes = append(s.shopTypes, types...)
}

func (s *Store) Stock(voucherID int64) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vouchers[voucherID].Stock
}

func (s *Store) Shop(id int64) (queries.ShopView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.shops[id]
	return v, ok
}

// Orders returns committed orders sorted by id.
func (s *Store) Orders() []queries.OrderView {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]queries.OrderView, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type OutboxRecord struct {
	shared.NewOutboxJob
	ID        uuid.UUID
	Status    string
	Attempts  int32
	LastError string
}

// OutboxJobs returns copies of every job in insertion order.
func (s *Store) OutboxJobs() []OutboxRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]OutboxRecord, len(s.outbox))
	for i, j := range s.outbox {
		out[i] = *j
	}
	return out
}

func (s *Store) VoucherReads() int64 { return s.voucherReads.Load() }
func (s *Store) ShopReads() int64    { return s.shopReads.Load() }
func (s *Store) TypeReads() int64    { return s.typeReads.Load() }

// UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{s: s}
	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

type memTx struct {
	s    *Store
	undo []func()
}

func (t *memTx) rollback() {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
}

func (t *memTx) DB() sqlc.DBTX                      { return nil }
func (t *memTx) Vouchers() shared.VoucherRepository { return voucherRepo{t} }
func (t *memTx) Orders() shared.OrderRepository     { return orderRepo{t} }
func (t *memTx) Shops() shared.ShopRepository       { return shopRepo{t} }
func (t *memTx) Outbox() shared.OutboxRepository    { return outboxRepo{t} }

type voucherRepo struct{ t *memTx }

func (r voucherRepo) Create(_ context.Context, _ sqlc.DBTX, v *voucher.SeckillVoucher) (int64, error) {
	s := r.t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.shops[v.ShopID()]; !ok {
		return 0, infra.WrapRepoErr("failed to create voucher", &pgconn.PgError{Code: "23503"})
	}
	id := s.nextID
	s.nextID++
	s.vouchers[id] = queries.SeckillVoucherView{
		ID:          id,
		ShopID:      v.ShopID(),
		Title:       v.Title(),
		SubTitle:    v.SubTitle(),
		Rules:       v.Rules(),
		PayValue:    v.PayValue(),
		ActualValue: v.ActualValue(),
		Stock:       v.Stock(),
		BeginTime:   v.BeginTime(),
		EndTime:     v.EndTime(),
		CreatedAt:   v.CreatedAt(),
		UpdatedAt:   v.UpdatedAt(),
	}
	r.t.undo = append(r.t.undo, func() { delete(s.vouchers, id) })
	return id, nil
}

func (r voucherRepo) DecrementStock(_ context.Context, _ sqlc.DBTX, voucherID int64) (int32, error) {
	s := r.t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vouchers[voucherID]
	if !ok || v.Stock <= 0 {
		return 0, errs.ErrStockExhausted
	}
	v.Stock--
	s.vouchers[voucherID] = v
	r.t.undo = append(r.t.undo, func() {
		v := s.vouchers[voucherID]
		v.Stock++
		s.vouchers[voucherID] = v
	})
	return v.Stock, nil
}

type orderRepo struct{ t *memTx }

func (r orderRepo) CountByUser(_ context.Context, _ sqlc.DBTX, userID, voucherID int64) (int64, error) {
	s := r.t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, o := range s.orders {
		if o.UserID == userID && o.VoucherID == voucherID {
			n++
		}
	}
	return n, nil
}

func (r orderRepo) Create(_ context.Context, _ sqlc.DBTX, o *order.VoucherOrder) error {
	s := r.t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailOrderInsert != nil {
		return infra.WrapRepoErr("failed to create voucher order", s.FailOrderInsert)
	}
	for _, existing := range s.orders {
		if existing.UserID == o.UserID() && existing.VoucherID == o.VoucherID() {
			return infra.WrapRepoErr("failed to create voucher order", &pgconn.PgError{Code: "23505"})
		}
	}
	s.orders[o.ID()] = queries.OrderView{
		ID:        o.ID(),
		UserID:    o.UserID(),
		VoucherID: o.VoucherID(),
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt(),
	}
	id := o.ID()
	r.t.undo = append(r.t.undo, func() { delete(s.orders, id) })
	return nil
}

type shopRepo struct{ t *memTx }

func (r shopRepo) Update(_ context.Context, _ sqlc.DBTX, u *shop.Update) error {
	s := r.t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.shops[u.ID()]
	if !ok {
		return infra.WrapRepoErr("shop not found", nil, infra.KindNotFound)
	}
	next := prev
	next.Name = u.Name()
	next.TypeID = u.TypeID()
	next.Area = u.Area()
	next.Address = u.Address()
	next.X = u.X()
	next.Y = u.Y()
	next.AvgPrice = u.AvgPrice()
	next.OpenHours = u.OpenHours()
	next.Score = u.Score()
	s.shops[u.ID()] = next
	r.t.undo = append(r.t.undo, func() { s.shops[prev.ID] = prev })
	return nil
}

type outboxRepo struct{ t *memTx }

func (r outboxRepo) CreateJob(_ context.Context, _ sqlc.DBTX, job shared.NewOutboxJob) error {
	s := r.t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outbox = append(s.outbox, &OutboxRecord{NewOutboxJob: job, ID: uuid.New(), Status: "queued"})
	n := len(s.outbox)
	r.t.undo = append(r.t.undo, func() { s.outbox = s.outbox[:n-1] })
	return nil
}

func (r outboxRepo) Claim(_ context.Context, _ sqlc.DBTX, limit int32) ([]shared.OutboxJob, error) {
	s := r.t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.Now()
	var out []shared.OutboxJob
	for _, j := range s.outbox {
		if int32(len(out)) >= limit {
			break
		}
		if j.Status != "queued" || j.RunAt.After(now) {
			continue
		}
		prev := *j
		j.Status = "running"
		j.Attempts++
		r.t.undo = append(r.t.undo, func() { *j = prev })
		out = append(out, shared.OutboxJob{
			ID:       j.ID,
			Kind:     j.Kind,
			Topic:    j.Topic,
			Key:      j.Key,
			Payload:  j.Payload,
			Attempts: j.Attempts,
		})
	}
	return out, nil
}

func (r outboxRepo) MarkDone(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	return r.update(id, func(j *OutboxRecord) {
		j.Status = "done"
		j.LastError = ""
	})
}

func (r outboxRepo) Reschedule(_ context.Context, _ sqlc.DBTX, id uuid.UUID, maxAttempts int32, lastError string, runAt time.Time) error {
	return r.update(id, func(j *OutboxRecord) {
		j.Status = "queued"
		if j.Attempts >= maxAttempts {
			j.Status = "failed"
		}
		j.LastError = lastError
		j.RunAt = runAt
	})
}

func (r outboxRepo) update(id uuid.UUID, fn func(*OutboxRecord)) error {
	s := r.t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.outbox {
		if j.ID == id {
			prev := *j
			fn(j)
			r.t.undo = append(r.t.undo, func() { *j = prev })
			return nil
		}
	}
	return nil
}

// Read stores

func (s *Store) VoucherReadStore() queries.SeckillVoucherReadStore { return voucherReads{s} }
func (s *Store) ShopReadStore() queries.ShopReadStore              { return shopReads{s} }
func (s *Store) OrderReadStore() queries.OrderReadStore            { return orderReads{s} }

type voucherReads struct{ s *Store }

func (r voucherReads) FindByID(_ context.Context, id int64) (*queries.SeckillVoucherView, error) {
	r.s.voucherReads.Add(1)
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.vouchers[id]
	if !ok {
		return nil, infra.WrapRepoErr("seckill voucher not found", nil, infra.KindNotFound)
	}
	return &v, nil
}

type shopReads struct{ s *Store }

func (r shopReads) FindByID(_ context.Context, id int64) (*queries.ShopView, error) {
	r.s.shopReads.Add(1)
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.shops[id]
	if !ok {
		return nil, infra.WrapRepoErr("shop not found", nil, infra.KindNotFound)
	}
	return &v, nil
}

func (r shopReads) ListTypes(context.Context) ([]*queries.ShopTypeView, error) {
	r.s.typeReads.Add(1)
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*queries.ShopTypeView, len(r.s.shopTypes))
	for i := range r.s.shopTypes {
		t := r.s.shopTypes[i]
		out[i] = &t
	}
	return out, nil
}

type orderReads struct{ s *Store }

func (r orderReads) FindByID(_ context.Context, id int64) (*queries.OrderView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.orders[id]
	if !ok {
		return nil, infra.WrapRepoErr("voucher order not found", nil, infra.KindNotFound)
	}
	return &v, nil
}

var _ shared.UnitOfWork = (*Store)(nil)
