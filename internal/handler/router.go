package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"seckill-guard/internal/handler/api"
	"seckill-guard/internal/handler/middleware"
	"seckill-guard/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Seckill  *api.SeckillHandler
	Voucher  *api.VoucherHandler
	Shop     *api.ShopHandler
	ShopType *api.ShopTypeHandler
	Order    *api.OrderHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	slogger := logger.GetSlogLogger()
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, slogger))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(slogger))
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	rateLimit := middleware.RateLimit(cfg.RateLimit)

	apiGroup := engine.Group("/api")
	{
		vouchers := apiGroup.Group("/vouchers/seckill")
		{
			addRoutes(vouchers, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Voucher.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Voucher.Create, Mw: []gin.HandlerFunc{requireAuth}},
				// Shed load before touching auth or Redis.
				{Method: http.MethodPost, Path: "/:id", Handler: h.Seckill.Seckill, Mw: []gin.HandlerFunc{rateLimit, requireAuth}},
			})
		}

		shops := apiGroup.Group("/shops")
		{
			addRoutes(shops, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Shop.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Shop.Update, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/:id/warm", Handler: h.Shop.Warm, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/warm", Handler: h.Shop.WarmMany, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/shop-types", Handler: h.ShopType.List},
		})

		orders := apiGroup.Group("/orders")
		orders.Use(requireAuth)
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "/stats/daily", Handler: h.Order.DailyCount},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

// chainHandlers runs hs in order within one gin handler. Middleware in hs
// must not rely on c.Next to reach the handler.
func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
