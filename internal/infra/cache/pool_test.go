//go:build unit

package cache_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"seckill-guard/internal/infra/cache"
	"seckill-guard/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPool(t *testing.T, workers, queue int, timeout time.Duration) *cache.RebuildPool {
	t.Helper()
	p := cache.NewRebuildPool(config.CacheConfig{
		RebuildWorkers:   workers,
		RebuildQueueSize: queue,
		RebuildTimeout:   timeout,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	return p
}

func TestRebuildPool_RunsTasks(t *testing.T) {
	p := newPool(t, 2, 8, time.Second)
	var ran atomic.Int32

	for range 5 {
		require.True(t, p.Submit("k", func(context.Context) error {
			ran.Add(1)
			return nil
		}))
	}
	require.NoError(t, p.Close(context.Background()))
	assert.Equal(t, int32(5), ran.Load())
	assert.Equal(t, int64(5), p.Completed())
}

func TestRebuildPool_RecoversFromPanicAndFailure(t *testing.T) {
	p := newPool(t, 1, 4, time.Second)

	require.True(t, p.Submit("panics", func(context.Context) error { panic("boom") }))
	require.True(t, p.Submit("fails", func(context.Context) error { return errors.New("nope") }))

	var ran atomic.Bool
	require.True(t, p.Submit("after", func(context.Context) error {
		ran.Store(true)
		return nil
	}))
	require.NoError(t, p.Close(context.Background()))

	assert.True(t, ran.Load(), "worker must survive a panicking task")
	assert.Equal(t, int64(2), p.Failed())
	assert.Equal(t, int64(1), p.Completed())
}

func TestRebuildPool_TaskTimeout(t *testing.T) {
	p := newPool(t, 1, 1, 20*time.Millisecond)
	done := make(chan error, 1)

	require.True(t, p.Submit("slow", func(ctx context.Context) error {
		<-ctx.Done()
		done <- ctx.Err()
		return ctx.Err()
	}))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("task context was not cancelled")
	}
}

func TestRebuildPool_RejectsWhenFullOrClosed(t *testing.T) {
	p := newPool(t, 1, 1, time.Second)
	block := make(chan struct{})
	started := make(chan struct{})

	require.True(t, p.Submit("busy", func(context.Context) error {
		close(started)
		<-block
		return nil
	}))
	<-started
	require.True(t, p.Submit("queued", func(context.Context) error { return nil }))
	assert.False(t, p.Submit("overflow", func(context.Context) error { return nil }))
	assert.Equal(t, 1, p.ActiveCount())
	assert.Equal(t, 1, p.QueueSize())

	close(block)
	require.NoError(t, p.Close(context.Background()))
	assert.False(t, p.Submit("late", func(context.Context) error { return nil }))
}

func TestRebuildPool_CloseHonoursDeadline(t *testing.T) {
	p := newPool(t, 1, 1, 0)
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })

	require.True(t, p.Submit("stuck", func(context.Context) error {
		<-block
		return nil
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.Error(t, p.Close(ctx))
}
