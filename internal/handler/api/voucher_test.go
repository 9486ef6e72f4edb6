//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"seckill-guard/internal/domain/voucher"
	"seckill-guard/internal/handler/api"
	"seckill-guard/internal/pkg/errs"
	"seckill-guard/internal/usecase/commands"
	"seckill-guard/tests/common/builder"
	"seckill-guard/tests/common/httptest"
	"seckill-guard/tests/common/testutil"
	commandsmock "seckill-guard/tests/mock/commands"
	queriesmock "seckill-guard/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VoucherHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockVoucherCommands
	mockQueries  *queriesmock.MockVoucherQueries
}

func (s *VoucherHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVoucherCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVoucherQueries(s.mockCtrl)
	h := api.NewVoucherHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/vouchers/seckill", fakeAuth, h.Create)
	s.router.GET("/api/vouchers/seckill/:id", h.Get)
}

func (s *VoucherHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVoucherHandlerSuite(t *testing.T) {
	suite.Run(t, new(VoucherHandlerTestSuite))
}

type testCaseVoucher struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *VoucherHandlerTestSuite) TestCreate() {
	url := "/api/vouchers/seckill"
	b := builder.NewVoucherBuilder()
	reqBody := b.BuildCreateRequestDTO()
	expectedResult := &commands.CreateVoucherResult{VoucherID: 42}

	s.Run("success: returns 201 and forwards the command", func() {
		s.mockCommands.EXPECT().CreateSeckillVoucher(gomock.Any(), b.BuildCommand()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("42", body["voucher_id"])
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/vouchers/seckill/42"})
	})

	validation := []testCaseVoucher{
		{name: "stock zero OK", mutate: testutil.Field("stock", 0), expectCode: http.StatusCreated},
		{name: "negative stock", mutate: testutil.Field("stock", -1), expectCode: http.StatusBadRequest},
		{name: "missing shop_id", mutate: testutil.Field("shop_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing title", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
		{name: "title too long", mutate: testutil.Field("title", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest},
		{name: "missing begin_time", mutate: testutil.Field("begin_time", nil), expectCode: http.StatusBadRequest},
		{name: "end before begin", mutate: testutil.Field("end_time", b.BeginTime.Add(-1).Format("2006-01-02T15:04:05.999999999Z07:00")), expectCode: http.StatusBadRequest},
		{name: "malformed time", mutate: testutil.Field("end_time", "tomorrow"), expectCode: http.StatusBadRequest},
	}

	s.Run("validation", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateSeckillVoucher(gomock.Any(), gomock.Any()).
						Return(expectedResult, nil).Times(1)
				}
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	errCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "domain validation", err: voucher.ErrInvalidPayValue, expectCode: http.StatusBadRequest},
		{name: "unknown shop", err: errs.Mark(errors.New("fk"), voucher.ErrInvalidShopID), expectCode: http.StatusBadRequest},
		{name: "store down", err: errs.Mark(errors.New("conn refused"), errs.ErrTransientStore), expectCode: http.StatusServiceUnavailable},
		{name: "unexpected", err: errors.New("boom"), expectCode: http.StatusInternalServerError},
	}
	for _, tc := range errCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().CreateSeckillVoucher(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *VoucherHandlerTestSuite) TestGet() {
	view := builder.NewVoucherBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/vouchers/seckill/1", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("1", body["id"])
		s.EqualValues(view.Stock, body["stock"])
		s.EqualValues(view.BeginTime.Unix(), body["begin_time"])
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(9)).
			Return(nil, errs.Wrap(errs.ErrNotFound, "cache")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/vouchers/seckill/9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 503 when lock wait exhausted", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, errs.ErrLockTimeout).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/vouchers/seckill/9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}
