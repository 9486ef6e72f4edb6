//go:build e2e

package seckill_test

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"seckill-guard/internal/domain/order"
	"seckill-guard/tests/common/authtest"
	"seckill-guard/tests/common/builder"
	"seckill-guard/tests/common/dbtest"
	"seckill-guard/tests/common/httptest"
	"seckill-guard/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	seckillURL = "/api/vouchers/seckill/%d"
	createURL  = "/api/vouchers/seckill"
	orderURL   = "/api/orders/%s"
	dailyURL   = "/api/orders/stats/daily"
)

type SeckillSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *SeckillSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *SeckillSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestSeckillSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SeckillSuite))
}

func (s *SeckillSuite) openVoucher(stock int32) int64 {
	t := s.T()
	now := time.Now()
	shopID := dbtest.CreateShop(t, s.DB, "Tea House")
	return dbtest.CreateSeckillVoucher(t, s.DB, shopID, stock, now.Add(-time.Hour), now.Add(time.Hour))
}

// race fires one request per token at the same instant and tallies status codes.
func (s *SeckillSuite) race(voucherID int64, tokens []string) (map[int]int, []string) {
	var (
		mu       sync.Mutex
		codes    = map[int]int{}
		orderIDs []string
		start    = make(chan struct{})
		wg       sync.WaitGroup
	)
	for _, token := range tokens {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf(seckillURL, voucherID), nil, token)

			mu.Lock()
			defer mu.Unlock()
			codes[rec.Code]++
			if rec.Code == http.StatusCreated {
				var body map[string]string
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
				orderIDs = append(orderIDs, body["order_id"])
			}
		}()
	}
	close(start)
	wg.Wait()
	return codes, orderIDs
}

// =============================================================================
// TestSeckill - ordering under contention
// =============================================================================

func (s *SeckillSuite) TestSeckill() {
	s.Run("one unit, many users: exactly one order", func() {
		t := s.T()
		voucherID := s.openVoucher(1)

		tokens := make([]string, 30)
		for i := range tokens {
			tokens[i] = s.jwt.GenerateToken(t, int64(1000+i))
		}

		codes, orderIDs := s.race(voucherID, tokens)

		s.Equal(1, codes[http.StatusCreated], codes)
		s.Equal(29, codes[http.StatusGone], codes)
		s.Len(orderIDs, 1)
		s.Equal(int32(0), dbtest.Stock(t, s.DB, voucherID))
		s.Equal(int64(1), dbtest.CountOrders(t, s.DB, voucherID))
		s.Equal(int64(1), dbtest.CountOutboxJobs(t, s.DB, order.CreatedEventKind))
	})

	s.Run("plenty of stock, one user: exactly one order", func() {
		t := s.T()
		voucherID := s.openVoucher(20)

		token := s.jwt.GenerateToken(t, 7)
		tokens := make([]string, 20)
		for i := range tokens {
			tokens[i] = token
		}

		codes, _ := s.race(voucherID, tokens)

		s.Equal(1, codes[http.StatusCreated], codes)
		s.Equal(19, codes[http.StatusConflict], codes)
		s.Equal(int32(19), dbtest.Stock(t, s.DB, voucherID))
		s.Equal(int64(1), dbtest.CountOrders(t, s.DB, voucherID))
	})

	s.Run("window and lookup failures", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, 8)
		now := time.Now()
		shopID := dbtest.CreateShop(t, s.DB, "Noodle Bar")

		notStarted := dbtest.CreateSeckillVoucher(t, s.DB, shopID, 5, now.Add(time.Hour), now.Add(2*time.Hour))
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(seckillURL, notStarted), nil, token)
		httptest.AssertSeckillFailure(t, rec, http.StatusTooEarly, "not_started")

		ended := dbtest.CreateSeckillVoucher(t, s.DB, shopID, 5, now.Add(-2*time.Hour), now.Add(-time.Hour))
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(seckillURL, ended), nil, token)
		httptest.AssertSeckillFailure(t, rec, http.StatusGone, "ended")

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(seckillURL, 999999), nil, token,
			httptest.WithHeader("X-Request-ID", "e2e-unknown-voucher"))
		httptest.AssertSeckillFailure(t, rec, http.StatusNotFound, "voucher_not_found")
		httptest.AssertHeaders(t, rec, map[string]string{"X-Request-ID": "e2e-unknown-voucher"})

		// Stock untouched for rejected attempts.
		s.Equal(int32(5), dbtest.Stock(t, s.DB, notStarted))
		s.Equal(int32(5), dbtest.Stock(t, s.DB, ended))
	})

	s.Run("unauthenticated and expired tokens", func() {
		t := s.T()
		voucherID := s.openVoucher(1)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(seckillURL, voucherID), nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "")

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(seckillURL, voucherID), nil, s.jwt.CreateExpiredToken(t, 1))
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "")

		s.Equal(int32(1), dbtest.Stock(t, s.DB, voucherID))
	})
}

// =============================================================================
// TestVoucherLifecycle - create, read, order, read back
// =============================================================================

func (s *SeckillSuite) TestVoucherLifecycle() {
	s.Run("created voucher can be read and ordered", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, 42)
		shopID := dbtest.CreateShop(t, s.DB, "Hot Pot")

		now := time.Now().UTC().Truncate(time.Second)
		req := builder.NewVoucherBuilder().With(func(b *builder.VoucherBuilder) {
			b.ShopID = shopID
			b.Stock = 3
			b.BeginTime = now.Add(-time.Minute)
			b.EndTime = now.Add(time.Hour)
		}).BuildCreateRequestDTO()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, createURL, req, token)
		var created map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
		voucherID, err := strconv.ParseInt(created["voucher_id"], 10, 64)
		require.NoError(t, err)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(seckillURL, voucherID), nil, "")
		var view map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &view)
		s.EqualValues(3, view["stock"])

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(seckillURL, voucherID), nil, token)
		var placed map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &placed)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(orderURL, placed["order_id"]), nil, token)
		var got map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		s.Equal(placed["order_id"], got["id"])
		s.Equal("unpaid", got["status"])

		// Another user cannot see it.
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(orderURL, placed["order_id"]), nil, s.jwt.GenerateToken(t, 43))
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "")

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, dailyURL, nil, token)
		var daily map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &daily)
		s.EqualValues(1, daily["count"])
	})

	s.Run("unknown shop is rejected", func() {
		t := s.T()
		req := builder.NewVoucherBuilder().With(func(b *builder.VoucherBuilder) {
			b.ShopID = 424242
			b.BeginTime = time.Now().Add(time.Minute)
			b.EndTime = time.Now().Add(time.Hour)
		}).BuildCreateRequestDTO()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, createURL, req, s.jwt.GenerateToken(t, 1))
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid voucher")
	})
}
