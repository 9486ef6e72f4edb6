//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"seckill-guard/internal/domain/order"
	"seckill-guard/internal/infra/lock"
	"seckill-guard/internal/pkg/config"
	"seckill-guard/internal/pkg/errs"
	"seckill-guard/internal/usecase/commands"
	"seckill-guard/internal/usecase/queries"
	"seckill-guard/tests/common/builder"
	"seckill-guard/tests/common/memstore"
	"seckill-guard/tests/common/redistest"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const voucherID int64 = 1

type seckillFixture struct {
	env      *redistest.Env
	db       *memstore.Store
	vouchers queries.VoucherQueries
	uc       commands.SeckillCommands
}

func newSeckillFixture(t *testing.T, stock int32, mutate ...func(*config.Config)) *seckillFixture {
	t.Helper()
	cfg := config.NewTestConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	env := redistest.NewWithConfig(t, cfg)
	db := memstore.New()
	db.PutVoucher(builder.NewVoucherBuilder().With(func(b *builder.VoucherBuilder) {
		b.ID = voucherID
		b.Stock = stock
		b.Now = redistest.DefaultNow
		b.BeginTime = redistest.DefaultNow.Add(-time.Hour)
		b.EndTime = redistest.DefaultNow.Add(time.Hour)
	}).BuildView())

	vouchers := queries.NewVoucherQueries(env.Cache, db.VoucherReadStore(), cfg.Cache)
	uc := commands.NewSeckillUseCase(db, vouchers, env.Locks, env.IDs, env.Clock, env.Logger, cfg)
	return &seckillFixture{env: env, db: db, vouchers: vouchers, uc: uc}
}

func TestSeckill_Success(t *testing.T) {
	f := newSeckillFixture(t, 5)
	ctx := context.Background()

	res, err := f.uc.Seckill(ctx, 7, voucherID)
	require.NoError(t, err)
	require.True(t, res.Succeeded())
	assert.Positive(t, res.OrderID)

	assert.Equal(t, int32(4), f.db.Stock(voucherID))
	orders := f.db.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, res.OrderID, orders[0].ID)
	assert.Equal(t, int64(7), orders[0].UserID)
	assert.Equal(t, string(order.StatusUnpaid), orders[0].Status)

	issued, seq := f.env.IDs.Decompose(res.OrderID)
	assert.Equal(t, redistest.DefaultNow, issued)
	assert.Equal(t, int64(1), seq)

	jobs := f.db.OutboxJobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, order.CreatedEventKind, jobs[0].Kind)
	assert.Equal(t, f.env.Config.Kafka.OrderTopic, jobs[0].Topic)
	var ev order.CreatedEvent
	require.NoError(t, json.Unmarshal(jobs[0].Payload, &ev))
	assert.Equal(t, order.CreatedEvent{OrderID: res.OrderID, UserID: 7, VoucherID: voucherID, CreatedAt: redistest.DefaultNow}, ev)

	assert.False(t, f.env.MR.Exists(lock.KeyPrefix+"order:7"), "order lock must be released")
}

func TestSeckill_BusinessFailures(t *testing.T) {
	tests := []struct {
		name      string
		stock     int32
		voucherID int64
		now       time.Time
		want      commands.SeckillReason
	}{
		{name: "unknown voucher", stock: 5, voucherID: 99, now: redistest.DefaultNow, want: commands.ReasonVoucherNotFound},
		{name: "before begin", stock: 5, voucherID: voucherID, now: redistest.DefaultNow.Add(-2 * time.Hour), want: commands.ReasonNotStarted},
		{name: "after end", stock: 5, voucherID: voucherID, now: redistest.DefaultNow.Add(2 * time.Hour), want: commands.ReasonEnded},
		{name: "no stock", stock: 0, voucherID: voucherID, now: redistest.DefaultNow, want: commands.ReasonStockExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSeckillFixture(t, tt.stock)
			f.env.Clock.Set(tt.now)

			res, err := f.uc.Seckill(context.Background(), 7, tt.voucherID)
			require.NoError(t, err)
			assert.False(t, res.Succeeded())
			assert.Equal(t, tt.want, res.Reason)
			assert.Empty(t, f.db.Orders())
			assert.Equal(t, tt.stock, f.db.Stock(voucherID))
		})
	}
}

func TestSeckill_UnknownVoucherIsNegativelyCached(t *testing.T) {
	f := newSeckillFixture(t, 5)
	for range 3 {
		res, err := f.uc.Seckill(context.Background(), 7, 99)
		require.NoError(t, err)
		assert.Equal(t, commands.ReasonVoucherNotFound, res.Reason)
	}
	assert.Equal(t, int64(1), f.db.VoucherReads())
}

func TestSeckill_SecondAttemptIsDuplicate(t *testing.T) {
	f := newSeckillFixture(t, 5)
	ctx := context.Background()

	first, err := f.uc.Seckill(ctx, 7, voucherID)
	require.NoError(t, err)
	require.True(t, first.Succeeded())

	second, err := f.uc.Seckill(ctx, 7, voucherID)
	require.NoError(t, err)
	assert.Equal(t, commands.ReasonDuplicateOrder, second.Reason)
	assert.Equal(t, int32(4), f.db.Stock(voucherID))
	assert.Len(t, f.db.OutboxJobs(), 1)
}

func TestSeckill_OneStockManyUsers(t *testing.T) {
	f := newSeckillFixture(t, 1)
	results := runConcurrently(t, 50, func(i int) (*commands.SeckillResult, error) {
		return f.uc.Seckill(context.Background(), int64(i+1), voucherID)
	})

	counts := countReasons(results)
	assert.Equal(t, 1, counts[""])
	assert.Equal(t, 49, counts[commands.ReasonStockExhausted])
	assert.Equal(t, int32(0), f.db.Stock(voucherID))
	assert.Len(t, f.db.Orders(), 1)
}

func TestSeckill_OneUserManyAttempts(t *testing.T) {
	f := newSeckillFixture(t, 50)
	results := runConcurrently(t, 50, func(int) (*commands.SeckillResult, error) {
		return f.uc.Seckill(context.Background(), 7, voucherID)
	})

	counts := countReasons(results)
	assert.Equal(t, 1, counts[""])
	assert.Equal(t, 49, counts[commands.ReasonDuplicateOrder])
	assert.Equal(t, int32(49), f.db.Stock(voucherID))
	assert.Len(t, f.db.Orders(), 1)
}

func TestSeckill_RandomizedStockNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	for trial := range 10 {
		stock := int32(rng.IntN(10) + 1)
		users := rng.IntN(15) + 1
		attempts := 40

		f := newSeckillFixture(t, stock)
		picks := make([]int64, attempts)
		for i := range picks {
			picks[i] = int64(rng.IntN(users) + 1)
		}

		results := runConcurrently(t, attempts, func(i int) (*commands.SeckillResult, error) {
			return f.uc.Seckill(context.Background(), picks[i], voucherID)
		})

		distinct := map[int64]bool{}
		for _, u := range picks {
			distinct[u] = true
		}
		successes := countReasons(results)[""]
		want := min(int(stock), len(distinct))

		assert.Equal(t, want, successes, "trial %d", trial)
		assert.GreaterOrEqual(t, f.db.Stock(voucherID), int32(0), "trial %d", trial)
		assert.Equal(t, stock-int32(successes), f.db.Stock(voucherID), "trial %d", trial)

		perUser := map[int64]int{}
		for _, o := range f.db.Orders() {
			perUser[o.UserID]++
		}
		for u, n := range perUser {
			assert.Equal(t, 1, n, "trial %d user %d", trial, u)
		}
	}
}

func TestSeckill_LockWaitExhausted(t *testing.T) {
	f := newSeckillFixture(t, 5, func(c *config.Config) {
		c.Seckill.LockWait = 30 * time.Millisecond
		c.Seckill.LockRetryInterval = 5 * time.Millisecond
	})
	ctx := context.Background()

	holder := f.env.Locks.NewMutex("order:7")
	ok, err := holder.TryLock(ctx, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	res, err := f.uc.Seckill(ctx, 7, voucherID)
	assert.Nil(t, res)
	assert.True(t, errs.Is(err, errs.ErrLockTimeout), "got %v", err)
	assert.Equal(t, int32(5), f.db.Stock(voucherID))

	owner, _ := f.env.MR.Get(holder.Key())
	assert.Equal(t, holder.Owner(), owner, "foreign lock must be left alone")
}

func TestSeckill_FailedInsertRollsBack(t *testing.T) {
	tests := []struct {
		name   string
		insert error
		is     error
	}{
		{name: "database failure", insert: &pgconn.PgError{Code: "08006"}, is: errs.ErrTransientStore},
		{name: "unique index violation", insert: &pgconn.PgError{Code: "23505"}, is: errs.ErrConsistencyViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSeckillFixture(t, 5)
			f.db.FailOrderInsert = tt.insert

			res, err := f.uc.Seckill(context.Background(), 7, voucherID)
			assert.Nil(t, res)
			assert.True(t, errs.Is(err, tt.is), "got %v", err)

			assert.Equal(t, int32(5), f.db.Stock(voucherID))
			assert.Empty(t, f.db.Orders())
			assert.Empty(t, f.db.OutboxJobs())
			assert.False(t, f.env.MR.Exists(lock.KeyPrefix+"order:7"))
		})
	}
}

func TestSeckill_LastUnitDropsVoucherCache(t *testing.T) {
	f := newSeckillFixture(t, 1)
	ctx := context.Background()

	res, err := f.uc.Seckill(ctx, 7, voucherID)
	require.NoError(t, err)
	require.True(t, res.Succeeded())

	v, err := f.vouchers.GetByID(ctx, voucherID)
	require.NoError(t, err)
	assert.Equal(t, int32(0), v.Stock)

	res, err = f.uc.Seckill(ctx, 8, voucherID)
	require.NoError(t, err)
	assert.Equal(t, commands.ReasonStockExhausted, res.Reason)
}

func runConcurrently(t *testing.T, n int, fn func(i int) (*commands.SeckillResult, error)) []*commands.SeckillResult {
	t.Helper()
	results := make([]*commands.SeckillResult, n)
	errList := make([]error, n)

	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i], errList[i] = fn(i)
		}()
	}
	close(start)
	wg.Wait()

	for i, err := range errList {
		require.NoError(t, err, "call %d", i)
	}
	return results
}

func countReasons(results []*commands.SeckillResult) map[commands.SeckillReason]int {
	counts := map[commands.SeckillReason]int{}
	for _, r := range results {
		counts[r.Reason]++
	}
	return counts
}
