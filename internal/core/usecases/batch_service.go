// internal/core/usecases/batch_service.go
package usecases

import (
	"context"
	"fmt"

	"phishscan/internal/core/domain"
	"phishscan/internal/core/ports"
	"phishscan/internal/platform/logx"
	"phishscan/internal/platform/validator"
	"phishscan/internal/platform/workerpool"
)

// BatchConfig configures a BatchService.
type BatchConfig struct {
	Workers   int
	Scheduler string // fifo, priority or weighted
}

// BatchService classifies many URLs concurrently. Every URL goes through
// the same submission checks as a single request before it is classified.
type BatchService struct {
	classifier ports.Classifier
	workers    int
	scheduler  workerpool.Scheduler
	logger     logx.Logger
}

// NewBatchService creates a BatchService on top of classifier.
func NewBatchService(classifier ports.Classifier, cfg BatchConfig, logger logx.Logger) (*BatchService, error) {
	if classifier == nil {
		return nil, fmt.Errorf("batch service: nil classifier")
	}
	if logger == nil {
		logger = logx.Discard()
	}
	sched, err := workerpool.SchedulerByName(cfg.Scheduler)
	if err != nil {
		return nil, err
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}

	return &BatchService{
		classifier: classifier,
		workers:    cfg.Workers,
		scheduler:  sched,
		logger:     logger.With("component", "batch"),
	}, nil
}

// ClassifyAll returns one item per URL, in input order.
func (b *BatchService) ClassifyAll(ctx context.Context, urls []string) []domain.BatchItem {
	items := make([]domain.BatchItem, len(urls))
	if len(urls) == 0 {
		return items
	}

	tasks := make([]*classifyTask, len(urls))
	poolTasks := make([]workerpool.Task, len(urls))
	for i, u := range urls {
		tasks[i] = &classifyTask{classifier: b.classifier, index: i, url: u}
		poolTasks[i] = tasks[i]
	}

	workers := b.workers
	if workers > len(urls) {
		workers = len(urls)
	}

	pool := workerpool.NewWorkerPool(workerpool.WorkerPoolConfig{
		Workers:   workers,
		Scheduler: b.scheduler,
		Logger:    b.logger,
	})
	pool.Start()
	defer pool.Stop()

	// Tasks the pool never ran carry the context error in their result.
	for _, r := range pool.Submit(ctx, poolTasks) {
		if t, ok := r.Task.(*classifyTask); ok && r.Error != nil && t.err == nil {
			t.err = r.Error
		}
	}

	failed := 0
	for i, t := range tasks {
		items[i] = domain.NewBatchItem(t.index, t.url, t.report, t.err)
		if t.err != nil {
			failed++
		}
	}

	stats := pool.Stats()
	b.logger.Debug("batch classified",
		"total", len(urls),
		"failed", failed,
		"workers", stats.Workers,
		"scheduler", stats.SchedulerName,
	)
	return items
}

// classifyTask classifies one URL and keeps the outcome until the batch
// collects it. Each task is run at most once, so no locking is needed.
type classifyTask struct {
	classifier ports.Classifier
	index      int
	url        string

	report *domain.Report
	err    error
}

func (t *classifyTask) Execute(ctx context.Context) error {
	if err := validator.ValidateSubmission(t.url); err != nil {
		t.err = err
		return err
	}

	report, err := t.classifier.Classify(ctx, t.url)
	if err != nil {
		t.err = err
		return err
	}
	t.report = report
	return nil
}

func (t *classifyTask) Priority() int { return 0 }

// Weight grows with URL length; longer URLs do more substring work.
func (t *classifyTask) Weight() int {
	w := len(t.url) / 4
	if w > 100 {
		w = 100
	}
	return w
}

func (t *classifyTask) Name() string { return fmt.Sprintf("classify#%d", t.index) }
