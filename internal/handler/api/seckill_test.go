//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"seckill-guard/internal/handler/api"
	"seckill-guard/internal/pkg/errs"
	"seckill-guard/internal/usecase/commands"
	"seckill-guard/tests/common/httptest"
	commandsmock "seckill-guard/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SeckillHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSeckillCommands
}

func (s *SeckillHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSeckillCommands(s.mockCtrl)
	h := api.NewSeckillHandler(s.mockCommands)

	s.router.POST("/api/vouchers/seckill/:id", fakeAuth, h.Seckill)
}

func (s *SeckillHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSeckillHandlerSuite(t *testing.T) {
	suite.Run(t, new(SeckillHandlerTestSuite))
}

func (s *SeckillHandlerTestSuite) TestSeckill() {
	url := "/api/vouchers/seckill/7"

	s.Run("success: 201 with order id as string", func() {
		const orderID int64 = 1<<60 + 5
		s.mockCommands.EXPECT().Seckill(gomock.Any(), testUserID, int64(7)).
			Return(&commands.SeckillResult{OrderID: orderID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("1152921504606846981", body["order_id"])
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/orders/1152921504606846981"})
	})

	reasons := []struct {
		reason     commands.SeckillReason
		expectCode int
	}{
		{commands.ReasonDuplicateOrder, http.StatusConflict},
		{commands.ReasonStockExhausted, http.StatusGone},
		{commands.ReasonEnded, http.StatusGone},
		{commands.ReasonNotStarted, http.StatusTooEarly},
		{commands.ReasonVoucherNotFound, http.StatusNotFound},
	}
	for _, tc := range reasons {
		s.Run("business failure: "+string(tc.reason), func() {
			s.mockCommands.EXPECT().Seckill(gomock.Any(), testUserID, int64(7)).
				Return(&commands.SeckillResult{Reason: tc.reason}, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

			httptest.AssertSeckillFailure(s.T(), rec, tc.expectCode, string(tc.reason))
		})
	}

	infraErrs := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "lock wait exhausted", err: errs.Wrap(errs.ErrLockTimeout, "order lock"), expectCode: http.StatusServiceUnavailable},
		{name: "store unavailable", err: errs.Mark(errors.New("dial tcp"), errs.ErrTransientStore), expectCode: http.StatusServiceUnavailable},
		{name: "consistency violation", err: errs.Mark(errors.New("stock below zero"), errs.ErrConsistencyViolation), expectCode: http.StatusInternalServerError},
	}
	for _, tc := range infraErrs {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Seckill(gomock.Any(), testUserID, int64(7)).
				Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			if tc.expectCode == http.StatusServiceUnavailable {
				httptest.AssertRetryAfter(s.T(), rec)
			}
		})
	}

	s.Run("error: 400 on invalid id", func() {
		for _, bad := range []string{"abc", "0", "-3"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/vouchers/seckill/"+bad, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		}
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
