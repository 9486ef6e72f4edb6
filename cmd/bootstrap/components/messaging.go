package components

import (
	"context"
	"log/slog"

	"seckill-guard/internal/infra/messaging"
	"seckill-guard/internal/pkg/clock"
	"seckill-guard/internal/pkg/config"
	"seckill-guard/internal/usecase/shared"

	"go.uber.org/fx"
)

// MessagingModule relays outbox jobs to Kafka when OUTBOX_RELAY_ENABLED is
// set. Jobs are still written in the order transaction otherwise.
var MessagingModule = fx.Module("messaging",
	fx.Invoke(startOutboxRelay),
)

func startOutboxRelay(
	lc fx.Lifecycle,
	uow shared.UnitOfWork,
	clk clock.Clock,
	logger *slog.Logger,
	kafkaCfg config.KafkaConfig,
	outboxCfg config.OutboxConfig,
) error {
	if !outboxCfg.Enabled {
		logger.Info("outbox relay disabled")
		return nil
	}

	pub, err := messaging.NewKafkaPublisher(kafkaCfg)
	if err != nil {
		return err
	}
	relay := messaging.NewRelay(uow, pub, clk, logger, outboxCfg)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopErr := relay.Stop(ctx)
			if err := pub.Close(); err != nil {
				logger.Warn("failed to close kafka writer", "error", err)
			}
			return stopErr
		},
	})
	return nil
}
