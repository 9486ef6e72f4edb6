package api

import (
	"net/http"

	reqdto "seckill-guard/internal/handler/dto/request"
	resdto "seckill-guard/internal/handler/dto/response"
	"seckill-guard/internal/handler/httperr"
	"seckill-guard/internal/handler/middleware"
	"seckill-guard/internal/pkg/clock"
	"seckill-guard/internal/pkg/errs"
	"seckill-guard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	q     queries.OrderQueries
	clock clock.Clock
}

func NewOrderHandler(q queries.OrderQueries, clk clock.Clock) *OrderHandler {
	return &OrderHandler{q: q, clock: clk}
}

// @Summary Get order
// @Description Get one of the caller's voucher orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		abortInfra(c, err, "Failed to load order")
		return
	}
	// Other users' orders are reported as missing.
	if view.UserID != userID {
		httperr.AbortWithError(c, http.StatusNotFound, nil, "Not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Daily order count
// @Description Number of order ids issued on a UTC day
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day as YYYY-MM-DD, defaults to today"
// @Success 200 {object} resdto.DailyOrderCountResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/orders/stats/daily [get]
func (h *OrderHandler) DailyCount(c *gin.Context) {
	var q reqdto.DailyCountQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	day, err := q.Day(h.clock.Now())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	count, err := h.q.DailyCount(c.Request.Context(), day)
	if err != nil {
		abortInfra(c, err, "Failed to count orders")
		return
	}
	c.JSON(http.StatusOK, resdto.DailyOrderCountResponse{Date: day.Format(reqdto.DayLayout), Count: count})
}
