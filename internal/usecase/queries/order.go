package queries

import (
	"context"
	"time"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order.go -package=queriesmock
type OrderReadStore interface {
	FindByID(ctx context.Context, id int64) (*OrderView, error)
}

type DailyCounter interface {
	DailyCount(ctx context.Context, bizTag string, day time.Time) (int64, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, id int64) (*OrderView, error)
	// DailyCount is the number of order ids issued on day (UTC).
	DailyCount(ctx context.Context, day time.Time) (int64, error)
}

type orderQueriesImpl struct {
	store   OrderReadStore
	counter DailyCounter
	bizTag  string
}

func NewOrderQueries(store OrderReadStore, counter DailyCounter, bizTag string) OrderQueries {
	return &orderQueriesImpl{store: store, counter: counter, bizTag: bizTag}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id int64) (*OrderView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, sourceErr(err)
	}
	return v, nil
}

func (q *orderQueriesImpl) DailyCount(ctx context.Context, day time.Time) (int64, error) {
	return q.counter.DailyCount(ctx, q.bizTag, day)
}
