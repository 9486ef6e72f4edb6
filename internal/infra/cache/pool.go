package cache

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"seckill-guard/internal/pkg/config"
	"seckill-guard/internal/pkg/errs"
)

type Task func(ctx context.Context) error

type rebuildTask struct {
	key string
	fn  Task
}

// RebuildPool runs cache rebuilds on a fixed set of workers fed by a bounded
// queue. Submit never blocks; a full or closed pool rejects the task.
type RebuildPool struct {
	tasks   chan rebuildTask
	timeout time.Duration
	logger  *slog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup

	active    atomic.Int32
	completed atomic.Int64
	failed    atomic.Int64
}

func NewRebuildPool(cfg config.CacheConfig, logger *slog.Logger) *RebuildPool {
	workers := max(cfg.RebuildWorkers, 1)
	queue := max(cfg.RebuildQueueSize, 1)

	p := &RebuildPool{
		tasks:   make(chan rebuildTask, queue),
		timeout: cfg.RebuildTimeout,
		logger:  logger,
	}
	for i := range workers {
		p.wg.Add(1)
		go p.runWorker(i)
	}
	return p
}

func (p *RebuildPool) Submit(key string, fn Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	select {
	case p.tasks <- rebuildTask{key: key, fn: fn}:
		return true
	default:
		return false
	}
}

// Close stops accepting tasks, lets queued ones finish and waits for the
// workers until ctx is done.
func (p *RebuildPool) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "rebuild pool did not drain")
	}
}

func (p *RebuildPool) ActiveCount() int { return int(p.active.Load()) }
func (p *RebuildPool) QueueSize() int   { return len(p.tasks) }
func (p *RebuildPool) Completed() int64 { return p.completed.Load() }
func (p *RebuildPool) Failed() int64    { return p.failed.Load() }

func (p *RebuildPool) runWorker(id int) {
	defer p.wg.Done()
	for task := range p.tasks {
		p.active.Add(1)
		p.execute(id, task)
		p.active.Add(-1)
	}
}

func (p *RebuildPool) execute(workerID int, task rebuildTask) {
	ctx := context.Background()
	var cancel context.CancelFunc
	if p.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			p.failed.Add(1)
			p.logger.Error("cache rebuild panicked",
				"worker", workerID,
				"key", task.key,
				"panic", r)
		}
	}()

	start := time.Now()
	if err := task.fn(ctx); err != nil {
		p.failed.Add(1)
		p.logger.Warn("cache rebuild failed",
			"worker", workerID,
			"key", task.key,
			"duration", time.Since(start),
			"error", err.Error())
		return
	}
	p.completed.Add(1)
	p.logger.Debug("cache rebuilt", "key", task.key, "duration", time.Since(start))
}
