package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"seckill-guard/internal/pkg/clock"
	"seckill-guard/internal/pkg/config"
	"seckill-guard/internal/usecase/shared"
)

const maxRetryDelay = 5 * time.Minute

// Relay moves outbox jobs to the publisher. Delivery is at-least-once: a job
// whose publish succeeded is redelivered if marking it done fails.
type Relay struct {
	uow    shared.UnitOfWork
	pub    Publisher
	clock  clock.Clock
	logger *slog.Logger
	cfg    config.OutboxConfig

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRelay(uow shared.UnitOfWork, pub Publisher, clk clock.Clock, logger *slog.Logger, cfg config.OutboxConfig) *Relay {
	return &Relay{uow: uow, pub: pub, clock: clk, logger: logger, cfg: cfg}
}

func (r *Relay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)
	go r.loop(ctx)
}

// Stop cancels polling and waits for the in-flight batch or ctx, whichever ends first.
func (r *Relay) Stop(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Relay) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		for {
			n, err := r.RelayOnce(ctx)
			if err != nil {
				if ctx.Err() == nil {
					r.logger.Error("outbox relay batch failed", "error", err.Error())
				}
				break
			}
			// A full batch means more jobs are probably due.
			if n < int(r.cfg.BatchSize) {
				break
			}
		}
	}
}

// RelayOnce claims one batch and publishes it inside a single transaction.
// It returns the number of claimed jobs.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	var claimed int
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		jobs, err := tx.Outbox().Claim(ctx, tx.DB(), r.cfg.BatchSize)
		if err != nil {
			return err
		}
		claimed = len(jobs)

		for _, job := range jobs {
			if perr := r.pub.Publish(ctx, job.Topic, job.Key, job.Payload); perr != nil {
				r.logger.Warn("outbox publish failed",
					"job_id", job.ID.String(),
					"kind", job.Kind,
					"attempts", job.Attempts,
					"error", perr.Error())
				runAt := r.clock.Now().Add(retryDelay(job.Attempts))
				if err := tx.Outbox().Reschedule(ctx, tx.DB(), job.ID, r.cfg.MaxAttempts, perr.Error(), runAt); err != nil {
					return err
				}
				if job.Attempts >= r.cfg.MaxAttempts {
					r.logger.Error("outbox job failed permanently", "job_id", job.ID.String(), "kind", job.Kind)
				}
				continue
			}
			if err := tx.Outbox().MarkDone(ctx, tx.DB(), job.ID); err != nil {
				return err
			}
		}
		return nil
	})
	return claimed, err
}

func retryDelay(attempts int32) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	if attempts > 16 {
		return maxRetryDelay
	}
	d := time.Duration(1<<(attempts-1)) * time.Second
	return min(d, maxRetryDelay)
}
