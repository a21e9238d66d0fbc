package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/autodiag/refinery/pkg/config"
	"github.com/autodiag/refinery/pkg/database"
	"github.com/autodiag/refinery/pkg/jobqueue"
)

// Pool runs the worker goroutines for every registered stage plus the
// reaper background task.
type Pool struct {
	db       *database.Client
	queue    *jobqueue.Client
	config   *config.PipelineConfig
	stages   []Stage
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// NewPool creates a pool over the given stages.
func NewPool(db *database.Client, queue *jobqueue.Client, cfg *config.PipelineConfig, stages ...Stage) *Pool {
	return &Pool{
		db:     db,
		queue:  queue,
		config: cfg,
		stages: stages,
		stopCh: make(chan struct{}),
	}
}

// Start spawns the per-stage workers and the reaper. Safe to call more
// than once; subsequent calls are no-ops.
func (p *Pool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call")
		return nil
	}
	p.started = true

	for _, stage := range p.stages {
		count := p.config.Workers[stage.Name()]
		if count <= 0 {
			return fmt.Errorf("no worker count configured for stage %q", stage.Name())
		}
		slog.Info("Starting stage workers", "stage", stage.Name(), "count", count)
		for i := 0; i < count; i++ {
			worker := NewWorker(fmt.Sprintf("%s-%d", stage.Name(), i), stage, p.queue, p.config)
			p.workers = append(p.workers, worker)
			worker.Start(ctx)
		}
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runReaper(ctx)
	}()

	slog.Info("Worker pool started", "stages", len(p.stages), "workers", len(p.workers))
	return nil
}

// Stop signals all workers to stop and waits for in-flight jobs to
// finish.
func (p *Pool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}
