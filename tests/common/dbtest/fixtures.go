//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultShopTypeID is seeded by SeedReferenceData.
const DefaultShopTypeID int64 = 1

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateShop(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO tb_shop (name, type_id, area, address, avg_price, score, open_hours) VALUES ($1, $2, 'Downtown', '1 Main St', 80, 45, '10:00-22:00') RETURNING id",
		name, DefaultShopTypeID).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateSeckillVoucher inserts a voucher and its seckill row in one statement.
func CreateSeckillVoucher(t *testing.T, db DBLike, shopID int64, stock int32, begin, end time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		WITH v AS (
			INSERT INTO tb_voucher (shop_id, title, pay_value, actual_value, is_seckill)
			VALUES ($1, 'seckill voucher', 10000, 15000, TRUE)
			RETURNING id
		)
		INSERT INTO tb_seckill_voucher (voucher_id, stock, begin_time, end_time)
		SELECT id, $2, $3, $4 FROM v
		RETURNING voucher_id`,
		shopID, stock, begin, end).Scan(&id)
	require.NoError(t, err)
	return id
}

func Stock(t *testing.T, db DBLike, voucherID int64) int32 {
	t.Helper()

	var stock int32
	err := db.QueryRow(context.Background(), "SELECT stock FROM tb_seckill_voucher WHERE voucher_id = $1", voucherID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func CountOrders(t *testing.T, db DBLike, voucherID int64) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM tb_voucher_order WHERE voucher_id = $1", voucherID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountOutboxJobs(t *testing.T, db DBLike, kind string) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM outbox_jobs WHERE kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO tb_shop_type (id, name, icon, sort) VALUES
		    (1, 'Food', '/types/food.png', 1),
		    (2, 'KTV', '/types/ktv.png', 2),
		    (3, 'Spa', '/types/spa.png', 3)
		ON CONFLICT (id) DO NOTHING;
		SELECT setval('tb_shop_type_id_seq', 3);
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
