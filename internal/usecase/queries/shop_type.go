package queries

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"seckill-guard/internal/infra/kvstore"
	"seckill-guard/internal/pkg/config"
	"seckill-guard/internal/pkg/errs"
)

// ShopTypeCacheKey is a hash of type id to JSON-encoded ShopTypeView.
const ShopTypeCacheKey = "cache:shop-type"

//go:generate mockgen -source=shop_type.go -destination=../../../tests/mock/queries/shop_type.go -package=queriesmock
type ShopTypeQueries interface {
	List(ctx context.Context) ([]*ShopTypeView, error)
}

type shopTypeQueriesImpl struct {
	kv     kvstore.Store
	store  ShopReadStore
	ttl    time.Duration
	logger *slog.Logger
}

func NewShopTypeQueries(kv kvstore.Store, store ShopReadStore, cfg config.CacheConfig, logger *slog.Logger) ShopTypeQueries {
	return &shopTypeQueriesImpl{kv: kv, store: store, ttl: cfg.TTL, logger: logger}
}

func (q *shopTypeQueriesImpl) List(ctx context.Context) ([]*ShopTypeView, error) {
	fields, err := q.kv.HGetAll(ctx, ShopTypeCacheKey)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		types, derr := decodeShopTypes(fields)
		if derr == nil {
			return types, nil
		}
		q.logger.Warn("discarding unreadable shop type cache", "error", derr.Error())
	}

	types, err := q.store.ListTypes(ctx)
	if err != nil {
		return nil, sourceErr(err)
	}
	if len(types) == 0 {
		return types, nil
	}

	q.fill(ctx, types)
	return types, nil
}

// fill is best effort; a failed write only costs the next reader a database hit.
func (q *shopTypeQueriesImpl) fill(ctx context.Context, types []*ShopTypeView) {
	fields := make(map[string]string, len(types))
	for _, t := range types {
		raw, err := json.Marshal(t)
		if err != nil {
			q.logger.Error("failed to encode shop type", "id", t.ID, "error", err.Error())
			return
		}
		fields[strconv.FormatInt(t.ID, 10)] = string(raw)
	}

	if err := q.kv.HSet(ctx, ShopTypeCacheKey, fields); err != nil {
		q.logger.Warn("failed to cache shop types", "error", err.Error())
		return
	}
	if err := q.kv.Expire(ctx, ShopTypeCacheKey, q.ttl); err != nil {
		q.logger.Warn("failed to set shop type cache expiry", "error", err.Error())
	}
}

func decodeShopTypes(fields map[string]string) ([]*ShopTypeView, error) {
	types := make([]*ShopTypeView, 0, len(fields))
	for field, raw := range fields {
		var t ShopTypeView
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			return nil, errs.Wrapf(err, "decode shop type %s", field)
		}
		types = append(types, &t)
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i].Sort != types[j].Sort {
			return types[i].Sort < types[j].Sort
		}
		return types[i].ID < types[j].ID
	})
	return types, nil
}
