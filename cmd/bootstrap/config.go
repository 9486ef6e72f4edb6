package bootstrap

import (
	"seckill-guard/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		SplitConfig,
	),
)

// ConfigSections lets constructors depend on the section they read instead
// of the whole Config.
type ConfigSections struct {
	fx.Out

	Cache  config.CacheConfig
	Lock   config.LockConfig
	IDGen  config.IDGenConfig
	Kafka  config.KafkaConfig
	Outbox config.OutboxConfig
}

func SplitConfig(cfg config.Config) ConfigSections {
	return ConfigSections{
		Cache:  cfg.Cache,
		Lock:   cfg.Lock,
		IDGen:  cfg.IDGen,
		Kafka:  cfg.Kafka,
		Outbox: cfg.Outbox,
	}
}
