package components

import (
	"seckill-guard/internal/handler"
	"seckill-guard/internal/handler/api"
	"seckill-guard/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSeckillHandler,
		api.NewVoucherHandler,
		api.NewShopHandler,
		api.NewShopTypeHandler,
		api.NewOrderHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	seckill *api.SeckillHandler,
	voucher *api.VoucherHandler,
	shop *api.ShopHandler,
	shopType *api.ShopTypeHandler,
	order *api.OrderHandler,
) handler.Handlers {
	return handler.Handlers{
		Seckill:  seckill,
		Voucher:  voucher,
		Shop:     shop,
		ShopType: shopType,
		Order:    order,
	}
}
