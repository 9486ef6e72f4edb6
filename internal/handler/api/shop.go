package api

import (
	"net/http"

	"seckill-guard/internal/domain/shop"
	reqdto "seckill-guard/internal/handler/dto/request"
	resdto "seckill-guard/internal/handler/dto/response"
	"seckill-guard/internal/handler/httperr"
	"seckill-guard/internal/pkg/errs"
	"seckill-guard/internal/usecase/commands"
	"seckill-guard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	cmds commands.ShopCommands
	q    queries.ShopQueries
}

func NewShopHandler(cmds commands.ShopCommands, q queries.ShopQueries) *ShopHandler {
	return &ShopHandler{cmds: cmds, q: q}
}

// @Summary Get shop
// @Description Read a shop through the cache
// @Tags shops
// @Produce json
// @Param id path int true "Shop ID"
// @Success 200 {object} resdto.ShopResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/shops/{id} [get]
func (h *ShopHandler) Get(c *gin.Context) {
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
		abortInfra(c, err, "Failed to load shop")
		return
	}
	c.JSON(http.StatusOK, resdto.FromShopView(view))
}

// @Summary Update shop
// @Description Write the shop row, then drop its cache entry
// @Tags shops
// @Accept json
// @Security BearerAuth
// @Param id path int true "Shop ID"
// @Param request body reqdto.UpdateShopRequest true "Update shop request"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/shops/{id} [put]
func (h *ShopHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToDomain()); err != nil {
		switch {
		case errs.Is(err, errs.ErrNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		case errs.Is(err, shop.ErrEmptyName), errs.Is(err, shop.ErrNameTooLong),
			errs.Is(err, shop.ErrInvalidTypeID), errs.Is(err, shop.ErrInvalidPrice),
			errs.Is(err, shop.ErrInvalidScore):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shop", nil)
		default:
			abortInfra(c, err, "Update shop failed")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Warm shop cache
// @Description Store a logical-expiry cache entry for one shop
// @Tags shops
// @Security BearerAuth
// @Param id path int true "Shop ID"
// @Param ttl query string false "Logical TTL, e.g. 30m"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/shops/{id}/warm [post]
func (h *ShopHandler) Warm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.WarmShopQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	ttl, err := q.Duration()
	if err != nil || ttl < 0 {
		if err == nil {
			err = errs.Newf("negative ttl %s", ttl)
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ttl", nil)
		return
	}

	if err := h.cmds.Warm(c.Request.Context(), id, ttl); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		abortInfra(c, err, "Warm shop failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Warm many shops
// @Description Store logical-expiry entries for a batch of shops; unknown ids are skipped
// @Tags shops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.WarmShopsRequest true "Shop ids"
// @Success 200 {object} resdto.WarmShopResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/shops/warm [post]
func (h *ShopHandler) WarmMany(c *gin.Context) {
	var req reqdto.WarmShopsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	warmed, err := h.cmds.WarmShops(c.Request.Context(), req.IDs)
	if err != nil {
		abortInfra(c, err, "Warm shops failed")
		return
	}
	c.JSON(http.StatusOK, resdto.WarmShopResponse{Warmed: warmed})
}

type ShopTypeHandler struct {
	q queries.ShopTypeQueries
}

func NewShopTypeHandler(q queries.ShopTypeQueries) *ShopTypeHandler {
	return &ShopTypeHandler{q: q}
}

// @Summary List shop types
// @Tags shops
// @Produce json
// @Success 200 {array} resdto.ShopTypeResponse
// @Failure 503 {object} httperr.Response
// @Router /api/shop-types [get]
func (h *ShopTypeHandler) List(c *gin.Context) {
	types, err := h.q.List(c.Request.Context())
	if err != nil {
		abortInfra(c, err, "Failed to load shop types")
		return
	}
	c.JSON(http.StatusOK, resdto.FromShopTypeViews(types))
}
