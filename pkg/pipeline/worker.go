package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/autodiag/refinery/pkg/config"
	"github.com/autodiag/refinery/pkg/jobqueue"
)

// Worker pops jobs from one stage's queue and processes them. Each worker
// owns one goroutine; a stage usually runs several.
type Worker struct {
	id       string
	stage    Stage
	queue    *jobqueue.Client
	config   *config.PipelineConfig
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu            sync.Mutex
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a worker for the given stage.
func NewWorker(id string, stage Stage, queue *jobqueue.Client, cfg *config.PipelineConfig) *Worker {
	return &Worker{
		id:           id,
		stage:        stage,
		queue:        queue,
		config:       cfg,
		stopCh:       make(chan struct{}),
		lastActivity: time.Now(),
	}
}

// Start begins the worker loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for the in-flight job to
// finish. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// JobsProcessed returns how many jobs this worker has completed.
func (w *Worker) JobsProcessed() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.jobsProcessed
}

// run is the main worker loop: blocking-pop with a bounded timeout so the
// stop signal is observed within one pop interval.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "stage", w.stage.Name())
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			jobID, err := w.queue.Pop(ctx, w.stage.Queue(), w.config.QueuePopTimeout)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Error("Failed to pop job", "error", err)
				w.sleep(time.Second)
				continue
			}
			if jobID == "" {
				continue
			}
			w.processJob(ctx, jobID, log)
		}
	}
}

// processJob runs one job through the stage and classifies the outcome.
// Fatal errors drop the job (the stage has already marked its subject
// failed); transient errors leave the document mid-stage for the reaper
// to re-enqueue after the stuck threshold.
func (w *Worker) processJob(ctx context.Context, jobID string, log *slog.Logger) {
	start := time.Now()
	err := w.stage.Process(ctx, jobID)
	duration := time.Since(start)

	w.mu.Lock()
	w.jobsProcessed++
	w.lastActivity = time.Now()
	w.mu.Unlock()

	switch {
	case err == nil:
		log.Info("Job processed", "job_id", jobID, "duration", duration)
	case IsFatal(err):
		log.Error("Job failed permanently, dropping", "job_id", jobID, "duration", duration, "error", err)
	default:
		log.Warn("Job failed, reaper will retry", "job_id", jobID, "duration", duration, "error", err)
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}
