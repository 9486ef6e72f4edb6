package api

import (
	"net/http"
	"strconv"

	resdto "seckill-guard/internal/handler/dto/response"
	"seckill-guard/internal/handler/httperr"
	"seckill-guard/internal/handler/middleware"
	"seckill-guard/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SeckillHandler struct {
	cmds commands.SeckillCommands
}

func NewSeckillHandler(cmds commands.SeckillCommands) *SeckillHandler {
	return &SeckillHandler{cmds: cmds}
}

var seckillFailures = map[commands.SeckillReason]struct {
	status int
	msg    string
}{
	commands.ReasonDuplicateOrder:  {http.StatusConflict, "Voucher already claimed"},
	commands.ReasonStockExhausted:  {http.StatusGone, "Voucher sold out"},
	commands.ReasonEnded:           {http.StatusGone, "Seckill has ended"},
	commands.ReasonNotStarted:      {http.StatusTooEarly, "Seckill has not started"},
	commands.ReasonVoucherNotFound: {http.StatusNotFound, "Voucher not found"},
}

// @Summary Seckill a voucher
// @Description Place at most one order per user for a seckill voucher
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Voucher ID"
// @Success 201 {object} resdto.SeckillOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 425 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/vouchers/seckill/{id} [post]
func (h *SeckillHandler) Seckill(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	voucherID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.cmds.Seckill(c.Request.Context(), userID, voucherID)
	if err != nil {
		abortInfra(c, err, "Seckill failed")
		return
	}
	if !result.Succeeded() {
		f, known := seckillFailures[result.Reason]
		if !known {
			f.status, f.msg = http.StatusUnprocessableEntity, "Seckill rejected"
		}
		httperr.AbortWithError(c, f.status, nil, f.msg, resdto.SeckillFailureDetail{Reason: string(result.Reason)})
		return
	}

	c.Header("Location", "/api/orders/"+strconv.FormatInt(result.OrderID, 10))
	c.JSON(http.StatusCreated, resdto.SeckillOrderResponse{OrderID: result.OrderID})
}
