//go:build e2e

package shop_test

import (
	"fmt"
	"net/http"
	"testing"

	"seckill-guard/internal/usecase/queries"
	"seckill-guard/tests/common/authtest"
	"seckill-guard/tests/common/builder"
	"seckill-guard/tests/common/dbtest"
	"seckill-guard/tests/common/httptest"
	"seckill-guard/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	shopURL      = "/api/shops/%d"
	warmURL      = "/api/shops/%d/warm"
	warmManyURL  = "/api/shops/warm"
	shopTypesURL = "/api/shop-types"
)

type ShopSuite struct {
	e2e.SharedSuite
	token string
}

func (s *ShopSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.token = authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), 1)
}

func (s *ShopSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestShopSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ShopSuite))
}

func (s *ShopSuite) getShop(id int64) (int, map[string]any) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(shopURL, id), nil, "")
	var body map[string]any
	if rec.Code == http.StatusOK {
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	}
	return rec.Code, body
}

// =============================================================================
// TestLogicalExpiry - the default shop strategy only serves warmed entries
// =============================================================================

func (s *ShopSuite) TestLogicalExpiry() {
	s.Run("warm, read, update, re-warm", func() {
		t := s.T()
		id := dbtest.CreateShop(t, s.DB, "Tea House")

		code, _ := s.getShop(id)
		s.Equal(http.StatusNotFound, code, "cold entry is not loaded on read")

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(warmURL, id), nil, s.token)
		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		code, body := s.getShop(id)
		s.Equal(http.StatusOK, code)
		s.Equal("Tea House", body["name"])

		update := builder.NewShopBuilder().With(func(b *builder.ShopBuilder) {
			b.Name = "Tea House II"
			b.TypeID = dbtest.DefaultShopTypeID
		}).BuildUpdateRequestDTO()
		rec = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(shopURL, id), update, s.token)
		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		code, _ = s.getShop(id)
		s.Equal(http.StatusNotFound, code, "update drops the cache entry")

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, warmManyURL, map[string]any{"ids": []int64{id, 999999}}, s.token)
		var warmed map[string]int
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &warmed)
		s.Equal(1, warmed["warmed"])

		code, body = s.getShop(id)
		s.Equal(http.StatusOK, code)
		s.Equal("Tea House II", body["name"])
	})

	s.Run("update of unknown shop or type", func() {
		t := s.T()
		id := dbtest.CreateShop(t, s.DB, "Tea House")
		update := builder.NewShopBuilder().BuildUpdateRequestDTO()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(shopURL, 999999), update, s.token)
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "")

		update.TypeID = 99
		rec = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(shopURL, id), update, s.token)
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "")
	})
}

// =============================================================================
// TestShopTypes - hash-cached list
// =============================================================================

func (s *ShopSuite) TestShopTypes() {
	s.Run("sorted list survives a second read from cache", func() {
		t := s.T()
		for range 2 {
			rec := httptest.PerformRequest(t, s.Router, http.MethodGet, shopTypesURL, nil, "")
			var body []map[string]any
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			s.Require().Len(body, 3)
			s.Equal("Food", body[0]["name"])
			s.Equal("Spa", body[2]["name"])
		}

		n, err := s.Redis.HLen(t.Context(), queries.ShopTypeCacheKey).Result()
		s.Require().NoError(err)
		s.Equal(int64(3), n)
	})
}
