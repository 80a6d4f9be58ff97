// internal/platform/workerpool/worker_pool.go
package workerpool

import (
	"context"
	"sync"
	"time"

	"phishscan/internal/platform/logx"
)

// Task is a unit of work executed by the pool.
type Task interface {
	// Execute runs the task. ctx is the context passed to Submit.
	Execute(ctx context.Context) error

	// Priority orders tasks under the priority scheduler (higher first).
	Priority() int

	// Weight is the estimated cost of the task (0-100).
	Weight() int

	// Name identifies the task in logs.
	Name() string
}

// Scheduler decides the order in which submitted tasks are queued.
type Scheduler interface {
	Schedule(tasks []Task) []Task
	Name() string
}

// job pairs a task with the context of the Submit call that queued it.
type job struct {
	ctx  context.Context
	task Task
}

// WorkerPool runs tasks on a fixed number of goroutines.
type WorkerPool struct {
	workers   int
	scheduler Scheduler
	logger    logx.Logger

	jobs    chan job
	results chan TaskResult

	// submitMu serialises Submit calls so each one collects its own results.
	submitMu sync.Mutex

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

// TaskResult is the outcome of one task.
type TaskResult struct {
	Task     Task
	Error    error
	Duration time.Duration
}

// WorkerPoolConfig configures a WorkerPool.
type WorkerPoolConfig struct {
	Workers   int
	Scheduler Scheduler
	Logger    logx.Logger
}

// NewWorkerPool creates a pool. Zero values get defaults: 4 workers,
// FIFO scheduling and a stderr logger.
func NewWorkerPool(cfg WorkerPoolConfig) *WorkerPool {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewFIFOScheduler()
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.New()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		workers:   cfg.Workers,
		scheduler: cfg.Scheduler,
		logger:    cfg.Logger.With("component", "worker-pool"),
		jobs:      make(chan job, cfg.Workers*2),
		results:   make(chan TaskResult, cfg.Workers*2),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start launches the workers.
func (wp *WorkerPool) Start() {
	wp.logger.Debug("starting worker pool", "workers", wp.workers, "scheduler", wp.scheduler.Name())

	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.ctx.Done():
			wp.logger.Debug("worker stopped", "worker_id", id)
			return

		case j := <-wp.jobs:
			wp.execute(id, j)
		}
	}
}

func (wp *WorkerPool) execute(workerID int, j job) {
	start := time.Now()

	var err error
	if cerr := j.ctx.Err(); cerr != nil {
		err = cerr
	} else {
		err = j.task.Execute(j.ctx)
	}
	duration := time.Since(start)

	wp.logger.Debug("task completed",
		"worker_id", workerID,
		"task", j.task.Name(),
		"duration_ms", duration.Milliseconds(),
		"error", err != nil,
	)

	select {
	case wp.results <- TaskResult{Task: j.task, Error: err, Duration: duration}:
	case <-wp.ctx.Done():
	}
}

// Submit schedules tasks, waits for all of them and returns their results
// in completion order. Tasks still queued when ctx is cancelled report
// ctx.Err() without running. If the pool is stopped, the results gathered
// so far are returned.
func (wp *WorkerPool) Submit(ctx context.Context, tasks []Task) []TaskResult {
	if len(tasks) == 0 {
		return []TaskResult{}
	}

	wp.submitMu.Lock()
	defer wp.submitMu.Unlock()

	scheduled := wp.scheduler.Schedule(tasks)

	wp.logger.Debug("submitting tasks",
		"total", len(scheduled),
		"scheduler", wp.scheduler.Name(),
	)

	go func() {
		for _, task := range scheduled {
			select {
			case wp.jobs <- job{ctx: ctx, task: task}:
			case <-wp.ctx.Done():
				return
			}
		}
	}()

	results := make([]TaskResult, 0, len(tasks))
	for len(results) < len(tasks) {
		select {
		case r := <-wp.results:
			results = append(results, r)
		case <-wp.ctx.Done():
			wp.logger.Warn("pool stopped while waiting for results", "pending", len(tasks)-len(results))
			return results
		}
	}

	return results
}

// Stop cancels the workers and waits for them to exit. It is safe to call
// more than once.
func (wp *WorkerPool) Stop() {
	wp.once.Do(func() {
		wp.cancel()
		wp.wg.Wait()
		wp.logger.Debug("worker pool stopped")
	})
}

// Stats returns a snapshot of the pool.
func (wp *WorkerPool) Stats() WorkerPoolStats {
	return WorkerPoolStats{
		Workers:       wp.workers,
		SchedulerName: wp.scheduler.Name(),
		QueueSize:     len(wp.jobs),
		ResultsSize:   len(wp.results),
	}
}

// WorkerPoolStats describes a pool.
type WorkerPoolStats struct {
	Workers       int
	SchedulerName string
	QueueSize     int
	ResultsSize   int
}
