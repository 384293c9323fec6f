package viewstat

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Task represents a unit of work
type Task func(ctx context.Context) error

// WorkerPool runs tasks on a fixed number of workers. A failed task is
// logged and counted; it does not stop the other workers. Only cancellation
// ends a worker early, and that error is what Wait returns.
type WorkerPool struct {
	workerCount int
	taskQueue   chan Task
	group       *errgroup.Group
	ctx         context.Context
	cancel      context.CancelFunc
	logger      *slog.Logger
	failed      atomic.Int64
	closed      bool
	closeMux    sync.Mutex
}

// NewWorkerPool creates a pool bound to parent; cancelling parent stops the workers
func NewWorkerPool(parent context.Context, workerCount int, logger *slog.Logger) *WorkerPool {
	if workerCount < 1 {
		workerCount = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(parent)
	group, ctx := errgroup.WithContext(ctx)
	return &WorkerPool{
		workerCount: workerCount,
		taskQueue:   make(chan Task, workerCount*2),
		group:       group,
		ctx:         ctx,
		cancel:      cancel,
		logger:      logger,
	}
}

// Start launches worker goroutines
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.workerCount; i++ {
		id := i
		wp.group.Go(func() error {
			return wp.worker(id)
		})
	}
	wp.logger.Debug("worker_pool_started", "workers", wp.workerCount)
}

// Submit adds a task to the queue; it reports false once the pool is cancelled
func (wp *WorkerPool) Submit(task Task) bool {
	select {
	case wp.taskQueue <- task:
		return true
	case <-wp.ctx.Done():
		return false
	}
}

// Wait closes the queue and blocks until every worker returns. It reports how
// many tasks failed and, if the pool was cancelled first, the cancellation error.
func (wp *WorkerPool) Wait() (int64, error) {
	wp.closeMux.Lock()
	if !wp.closed {
		close(wp.taskQueue)
		wp.closed = true
	}
	wp.closeMux.Unlock()

	err := wp.group.Wait()
	wp.cancel()
	return wp.failed.Load(), err
}

// Shutdown cancels all workers and drops queued tasks
func (wp *WorkerPool) Shutdown() int64 {
	wp.cancel()
	failed, _ := wp.Wait()
	return failed
}

// worker processes tasks from the queue
func (wp *WorkerPool) worker(id int) error {
	for {
		if err := wp.ctx.Err(); err != nil {
			return err
		}
		select {
		case task, ok := <-wp.taskQueue:
			if !ok {
				return nil
			}
			if err := task(wp.ctx); err != nil {
				wp.failed.Add(1)
				wp.logger.Warn("rollup_task_failed", "worker", id, "error", err)
			}
		case <-wp.ctx.Done():
			return wp.ctx.Err()
		}
	}
}
