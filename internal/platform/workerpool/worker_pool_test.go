// internal/platform/workerpool/worker_pool_test.go
package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"phishscan/internal/platform/logx"
	"phishscan/internal/testutil"
)

type fakeTask struct {
	name     string
	priority int
	weight   int
	err      error
	ran      *int32
}

func (f *fakeTask) Execute(ctx context.Context) error {
	if f.ran != nil {
		atomic.AddInt32(f.ran, 1)
	}
	return f.err
}

func (f *fakeTask) Priority() int { return f.priority }
func (f *fakeTask) Weight() int   { return f.weight }
func (f *fakeTask) Name() string  { return f.name }

func names(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Name()
	}
	return out
}

func TestSchedulers(t *testing.T) {
	tasks := []Task{
		&fakeTask{name: "a", priority: 1, weight: 50},
		&fakeTask{name: "b", priority: 3, weight: 90},
		&fakeTask{name: "c", priority: 3, weight: 10},
		&fakeTask{name: "d", priority: 0, weight: 5},
	}

	tests := []struct {
		scheduler Scheduler
		expected  []string
	}{
		{NewFIFOScheduler(), []string{"a", "b", "c", "d"}},
		{NewPriorityScheduler(), []string{"c", "b", "a", "d"}},
		{NewWeightedScheduler(), []string{"d", "c", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.scheduler.Name(), func(t *testing.T) {
			got := names(tt.scheduler.Schedule(tasks))
			testutil.AssertDeepEqual(t, got, tt.expected, "schedule order")
			testutil.AssertEqual(t, tasks[0].Name(), "a", "input must not be reordered")
		})
	}
}

func TestSchedulerByName(t *testing.T) {
	for _, name := range []string{"", "fifo", "FIFO", "priority", "weighted"} {
		s, err := SchedulerByName(name)
		testutil.AssertNoError(t, err, "known scheduler "+name)
		testutil.AssertNotNil(t, s, "scheduler")
	}

	_, err := SchedulerByName("hybrid")
	testutil.AssertError(t, err, "unknown scheduler")
}

func TestWorkerPool_Submit(t *testing.T) {
	pool := NewWorkerPool(WorkerPoolConfig{Workers: 3, Logger: logx.Discard()})
	pool.Start()
	defer pool.Stop()

	var ran int32
	boom := errors.New("boom")

	tasks := make([]Task, 0, 10)
	for i := 0; i < 10; i++ {
		ft := &fakeTask{name: "t", ran: &ran}
		if i == 4 {
			ft.err = boom
		}
		tasks = append(tasks, ft)
	}

	results := pool.Submit(context.Background(), tasks)
	testutil.AssertEqual(t, len(results), 10, "result count")
	testutil.AssertEqual(t, atomic.LoadInt32(&ran), int32(10), "every task ran once")

	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			testutil.AssertTrue(t, errors.Is(r.Error, boom), "task error is propagated")
		}
	}
	testutil.AssertEqual(t, failed, 1, "failed count")

	// The pool is reusable.
	again := pool.Submit(context.Background(), tasks[:2])
	testutil.AssertEqual(t, len(again), 2, "second submit")
}

func TestWorkerPool_CancelledContext(t *testing.T) {
	pool := NewWorkerPool(WorkerPoolConfig{Workers: 2, Logger: logx.Discard()})
	pool.Start()
	defer pool.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran int32
	tasks := []Task{&fakeTask{name: "x", ran: &ran}, &fakeTask{name: "y", ran: &ran}}

	results := pool.Submit(ctx, tasks)
	testutil.AssertEqual(t, len(results), 2, "results still reported")
	for _, r := range results {
		testutil.AssertTrue(t, errors.Is(r.Error, context.Canceled), "cancelled tasks report ctx error")
	}
	testutil.AssertEqual(t, atomic.LoadInt32(&ran), int32(0), "no task ran")
}

func TestWorkerPool_EmptyAndStop(t *testing.T) {
	pool := NewWorkerPool(WorkerPoolConfig{Logger: logx.Discard()})
	pool.Start()

	testutil.AssertEqual(t, len(pool.Submit(context.Background(), nil)), 0, "empty submit")

	stats := pool.Stats()
	testutil.AssertEqual(t, stats.Workers, 4, "default workers")
	testutil.AssertEqual(t, stats.SchedulerName, "fifo", "default scheduler")

	pool.Stop()
	pool.Stop()
}
