package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autodiag/refinery/pkg/config"
	"github.com/autodiag/refinery/pkg/jobqueue"
)

type recordingStage struct {
	mu   sync.Mutex
	jobs []string
	err  error
}

func (s *recordingStage) Name() string  { return "chunk" }
func (s *recordingStage) Queue() string { return jobqueue.QueueChunk }

func (s *recordingStage) Process(_ context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, jobID)
	return s.err
}

func (s *recordingStage) processed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.jobs...)
}

func newTestQueue(t *testing.T) *jobqueue.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return jobqueue.NewClientFromRedis(rdb)
}

func testPipelineConfig() *config.PipelineConfig {
	cfg := config.DefaultPipelineConfig()
	cfg.QueuePopTimeout = 50 * time.Millisecond
	return cfg
}

func TestWorker_ProcessesJobsInOrder(t *testing.T) {
	queue := newTestQueue(t)
	stage := &recordingStage{}
	ctx := context.Background()

	require.NoError(t, queue.Push(ctx, jobqueue.QueueChunk, "doc-1"))
	require.NoError(t, queue.Push(ctx, jobqueue.QueueChunk, "doc-2"))

	worker := NewWorker("chunk-0", stage, queue, testPipelineConfig())
	worker.Start(ctx)

	require.Eventually(t, func() bool {
		return worker.JobsProcessed() == 2
	}, 3*time.Second, 10*time.Millisecond)
	worker.Stop()

	assert.Equal(t, []string{"doc-1", "doc-2"}, stage.processed())
}

func TestWorker_StopIsIdempotent(t *testing.T) {
	queue := newTestQueue(t)
	worker := NewWorker("chunk-0", &recordingStage{}, queue, testPipelineConfig())
	worker.Start(context.Background())

	worker.Stop()
	worker.Stop()
}

func TestWorker_FatalErrorDropsJob(t *testing.T) {
	queue := newTestQueue(t)
	stage := &recordingStage{err: Fatal(errors.New("document not found"))}
	ctx := context.Background()

	require.NoError(t, queue.Push(ctx, jobqueue.QueueChunk, "doc-gone"))

	worker := NewWorker("chunk-0", stage, queue, testPipelineConfig())
	worker.Start(ctx)

	require.Eventually(t, func() bool {
		return worker.JobsProcessed() == 1
	}, 3*time.Second, 10*time.Millisecond)
	worker.Stop()

	// The job is not re-enqueued.
	depth, err := queue.Depth(ctx, jobqueue.QueueChunk)
	require.NoError(t, err)
	assert.Equal(t, int64(0), depth)
}

func TestFatalClassification(t *testing.T) {
	assert.False(t, IsFatal(errors.New("transient")))
	assert.True(t, IsFatal(Fatal(errors.New("permanent"))))
	assert.True(t, IsFatal(Fatalf("bad input: %s", "x")))
	assert.NoError(t, Fatal(nil))

	// Wrapped fatal errors stay fatal.
	wrapped := errors.Join(errors.New("context"), Fatal(errors.New("inner")))
	assert.True(t, IsFatal(wrapped))
}
