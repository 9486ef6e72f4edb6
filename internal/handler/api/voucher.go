package api

import (
	"net/http"
	"strconv"

	"seckill-guard/internal/domain/voucher"
	reqdto "seckill-guard/internal/handler/dto/request"
	resdto "seckill-guard/internal/handler/dto/response"
	"seckill-guard/internal/handler/httperr"
	"seckill-guard/internal/pkg/errs"
	"seckill-guard/internal/usecase/commands"
	"seckill-guard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	cmds commands.VoucherCommands
	q    queries.VoucherQueries
}

func NewVoucherHandler(cmds commands.VoucherCommands, q queries.VoucherQueries) *VoucherHandler {
	return &VoucherHandler{cmds: cmds, q: q}
}

var voucherValidationErrs = []error{
	voucher.ErrInvalidWindow,
	voucher.ErrNegativeStock,
	voucher.ErrInvalidShopID,
	voucher.ErrEmptyTitle,
	voucher.ErrInvalidPayValue,
	voucher.ErrNegativeAmount,
}

// @Summary Create seckill voucher
// @Description Create a voucher with a stock and a sale window
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSeckillVoucherRequest true "Create seckill voucher request"
// @Success 201 {object} resdto.CreateVoucherResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/vouchers/seckill [post]
func (h *VoucherHandler) Create(c *gin.Context) {
	var req reqdto.CreateSeckillVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateSeckillVoucher(c.Request.Context(), req.ToCommand())
	if err != nil {
		for _, target := range voucherValidationErrs {
			if errs.Is(err, target) {
				httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid voucher", target.Error())
				return
			}
		}
		abortInfra(c, err, "Create voucher failed")
		return
	}

	c.Header("Location", "/api/vouchers/seckill/"+strconv.FormatInt(result.VoucherID, 10))
	c.JSON(http.StatusCreated, resdto.CreateVoucherResponse{VoucherID: result.VoucherID})
}

// @Summary Get seckill voucher
// @Tags vouchers
// @Produce json
// @Param id path int true "Voucher ID"
// @Success 200 {object} resdto.SeckillVoucherResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/vouchers/seckill/{id} [get]
func (h *VoucherHandler) Get(c *gin.Context) {
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
		abortInfra(c, err, "Failed to load voucher")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSeckillVoucherView(view))
}
