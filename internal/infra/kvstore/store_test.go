//go:build unit

package kvstore_test

import (
	"context"
	"testing"
	"time"

	"seckill-guard/internal/infra/kvstore"
	"seckill-guard/internal/pkg/errs"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*kvstore.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return kvstore.NewRedisStore(client), mr
}

func TestRedisStore_GetSet(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))
	v, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
	assert.Equal(t, time.Minute, mr.TTL("k"))

	require.NoError(t, store.Set(ctx, "forever", "v", 0))
	assert.Equal(t, time.Duration(0), mr.TTL("forever"))
}

func TestRedisStore_SetNX(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	ok, err := store.SetNX(ctx, "lock:a", "owner-1", 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.SetNX(ctx, "lock:a", "owner-2", 10*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	got, _ := mr.Get("lock:a")
	assert.Equal(t, "owner-1", got)
}

func TestRedisStore_IncrExpireDel(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	n, err := store.Incr(ctx, "icr:order:2024:01:01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = store.Incr(ctx, "icr:order:2024:01:01")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, store.Expire(ctx, "icr:order:2024:01:01", time.Hour))
	assert.Equal(t, time.Hour, mr.TTL("icr:order:2024:01:01"))

	deleted, err := store.Del(ctx, "icr:order:2024:01:01", "nope")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestRedisStore_Run(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)
	require.NoError(t, mr.Set("k", "a"))

	script := kvstore.NewScript(`if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) end return 0`)

	res, err := store.Run(ctx, script, []string{"k"}, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res)
	assert.True(t, mr.Exists("k"))

	res, err = store.Run(ctx, script, []string{"k"}, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res)
	assert.False(t, mr.Exists("k"))
}

func TestRedisStore_Hash(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	require.NoError(t, store.HSet(ctx, "cache:shop-type", map[string]string{"1": "food", "2": "ktv"}))
	m, err := store.HGetAll(ctx, "cache:shop-type")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"1": "food", "2": "ktv"}, m)

	empty, err := store.HGetAll(ctx, "none")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRedisStore_TransportFailureIsTransient(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)
	mr.Close()

	_, _, err := store.Get(ctx, "k")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrTransientStore))

	_, err = store.SetNX(ctx, "k", "v", time.Second)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrTransientStore))
}
