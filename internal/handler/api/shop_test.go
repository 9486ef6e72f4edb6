//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"seckill-guard/internal/domain/shop"
	"seckill-guard/internal/handler/api"
	"seckill-guard/internal/pkg/errs"
	"seckill-guard/internal/usecase/queries"
	"seckill-guard/tests/common/builder"
	"seckill-guard/tests/common/httptest"
	"seckill-guard/tests/common/testutil"
	commandsmock "seckill-guard/tests/mock/commands"
	queriesmock "seckill-guard/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ShopHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockShopCommands
	mockQueries   *queriesmock.MockShopQueries
	mockTypeQuery *queriesmock.MockShopTypeQueries
}

func (s *ShopHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockShopCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockShopQueries(s.mockCtrl)
	s.mockTypeQuery = queriesmock.NewMockShopTypeQueries(s.mockCtrl)
	h := api.NewShopHandler(s.mockCommands, s.mockQueries)
	th := api.NewShopTypeHandler(s.mockTypeQuery)

	s.router.GET("/api/shops/:id", h.Get)
	s.router.PUT("/api/shops/:id", fakeAuth, h.Update)
	s.router.POST("/api/shops/:id/warm", fakeAuth, h.Warm)
	s.router.POST("/api/shops/warm", fakeAuth, h.WarmMany)
	s.router.GET("/api/shop-types", th.List)
}

func (s *ShopHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestShopHandlerSuite(t *testing.T) {
	suite.Run(t, new(ShopHandlerTestSuite))
}

func (s *ShopHandlerTestSuite) TestGet() {
	view := builder.NewShopBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shops/1", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("1", body["id"])
		s.Equal(view.Name, body["name"])
		s.InDelta(view.X, body["x"], 1e-9)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, errs.ErrNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shops/2", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 503 on store failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(2)).
			Return(nil, errs.Mark(errors.New("timeout"), errs.ErrTransientStore)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shops/2", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
		s.Equal("1", rec.Header().Get("Retry-After"))
	})
}

func (s *ShopHandlerTestSuite) TestUpdate() {
	b := builder.NewShopBuilder()
	reqBody := b.BuildUpdateRequestDTO()

	s.Run("success: 204 and domain params forwarded", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), b.BuildUpdateParams()).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/shops/1", reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	validation := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "missing name", mutate: testutil.Field("name", nil)},
		{name: "zero type", mutate: testutil.Field("type_id", 0)},
		{name: "negative price", mutate: testutil.Field("avg_price", -1)},
		{name: "score above 50", mutate: testutil.Field("score", 51)},
	}
	for _, tc := range validation {
		s.Run("validation: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/shops/1",
				testutil.DtoMap(s.T(), reqBody, tc.mutate), "bearer-token")
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}

	errCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "unknown shop", err: errs.Mark(errors.New("0 rows"), errs.ErrNotFound), expectCode: http.StatusNotFound},
		{name: "unknown type", err: errs.Mark(errors.New("fk"), shop.ErrInvalidTypeID), expectCode: http.StatusBadRequest},
		{name: "blank name after trim", err: shop.ErrEmptyName, expectCode: http.StatusBadRequest},
		{name: "cache delete failed", err: errs.Mark(errors.New("redis down"), errs.ErrTransientStore), expectCode: http.StatusServiceUnavailable},
	}
	for _, tc := range errCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(tc.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/shops/1", reqBody, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}
}

func (s *ShopHandlerTestSuite) TestWarm() {
	s.Run("default ttl", func() {
		s.mockCommands.EXPECT().Warm(gomock.Any(), int64(1), time.Duration(0)).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/shops/1/warm", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("explicit ttl", func() {
		s.mockCommands.EXPECT().Warm(gomock.Any(), int64(1), 10*time.Minute).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/shops/1/warm?ttl=10m", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: bad ttl", func() {
		for _, ttl := range []string{"soon", "-5s"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/shops/1/warm?ttl="+ttl, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ttl")
		}
	})

	s.Run("error: unknown shop", func() {
		s.mockCommands.EXPECT().Warm(gomock.Any(), int64(3), gomock.Any()).Return(errs.ErrNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/shops/3/warm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("bulk", func() {
		s.mockCommands.EXPECT().WarmShops(gomock.Any(), []int64{1, 2, 3}).Return(2, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/shops/warm",
			map[string]any{"ids": []int64{1, 2, 3}}, "bearer-token")

		var body map[string]int
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body["warmed"])
	})

	s.Run("bulk: empty ids rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/shops/warm",
			map[string]any{"ids": []int64{}}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ShopHandlerTestSuite) TestListTypes() {
	s.Run("success keeps order", func() {
		s.mockTypeQuery.EXPECT().List(gomock.Any()).Return([]*queries.ShopTypeView{
			{ID: 2, Name: "KTV", Sort: 1},
			{ID: 1, Name: "Food", Sort: 2},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shop-types", nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("KTV", body[0]["name"])
		s.Equal("Food", body[1]["name"])
	})

	s.Run("error: 503", func() {
		s.mockTypeQuery.EXPECT().List(gomock.Any()).Return(nil, errs.ErrTransientStore).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shop-types", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}
