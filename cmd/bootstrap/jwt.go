package bootstrap

import (
	"time"

	"seckill-guard/internal/handler/middleware"
	"seckill-guard/internal/pkg/config"
	"seckill-guard/internal/pkg/errs"
	"seckill-guard/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid JWT_DURATION %q", cfg.JWT.Duration)
	}
	return jwt.NewService(cfg.JWT.Secret, duration), nil
}
