package repository

import (
	"context"
	"time"

	"seckill-guard/internal/infra"
	sqlc "seckill-guard/internal/infra/sqlc/generated"
	"seckill-guard/internal/pkg/pgconv"
	"seckill-guard/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=outbox.go -destination=../../../tests/mock/repository/outbox.go -package=repositorymock

type OutboxWriteQueries interface {
	CreateOutboxJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOutboxJobParams) error
	ClaimOutboxJobs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.OutboxJobs, error)
	MarkOutboxJobDone(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	RescheduleOutboxJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleOutboxJobParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, job shared.NewOutboxJob) error {
	params := sqlc.CreateOutboxJobParams{
		Kind:    job.Kind,
		Topic:   job.Topic,
		MsgKey:  job.Key,
		Payload: job.Payload,
		RunAt:   pgconv.TimeToPgtype(job.RunAt),
	}

	if err := r.queries.CreateOutboxJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create outbox job", err)
	}
	return nil
}

// Claim marks up to limit due jobs as running; rows locked by other relays are skipped.
func (r *OutboxRepository) Claim(ctx context.Context, tx sqlc.DBTX, limit int32) ([]shared.OutboxJob, error) {
	rows, err := r.queries.ClaimOutboxJobs(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox jobs", err)
	}

	jobs := make([]shared.OutboxJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.OutboxJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Key:      row.MsgKey,
			Payload:  row.Payload,
			Attempts: row.Attempts,
		}
	}
	return jobs, nil
}

func (r *OutboxRepository) MarkDone(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkOutboxJobDone(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark outbox job done", err)
	}
	return nil
}

// Reschedule requeues the job at runAt, or fails it permanently once maxAttempts is reached.
func (r *OutboxRepository) Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, maxAttempts int32, lastError string, runAt time.Time) error {
	params := sqlc.RescheduleOutboxJobParams{
		MaxAttempts: maxAttempts,
		LastError:   pgconv.StringToPgtype(lastError),
		RunAt:       pgconv.TimeToPgtype(runAt),
		ID:          id,
	}
	if err := r.queries.RescheduleOutboxJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to reschedule outbox job", err)
	}
	return nil
}
