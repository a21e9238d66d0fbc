package jobqueue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewClientFromRedis(rdb)
}

func TestPushPop_FIFO(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Push(ctx, QueueChunk, "doc-1"))
	require.NoError(t, client.Push(ctx, QueueChunk, "doc-2"))
	require.NoError(t, client.Push(ctx, QueueChunk, "doc-3"))

	depth, err := client.Depth(ctx, QueueChunk)
	require.NoError(t, err)
	assert.Equal(t, int64(3), depth)

	for _, want := range []string{"doc-1", "doc-2", "doc-3"} {
		got, err := client.Pop(ctx, QueueChunk, time.Second)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	depth, err = client.Depth(ctx, QueueChunk)
	require.NoError(t, err)
	assert.Equal(t, int64(0), depth)
}

func TestPop_EmptyQueueTimesOut(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	start := time.Now()
	got, err := client.Pop(ctx, QueueEmbed, 50*time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestQueues_AreIndependent(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Push(ctx, QueueExtract, "doc-a"))
	require.NoError(t, client.Push(ctx, QueueResolve, "doc-b"))

	got, err := client.Pop(ctx, QueueResolve, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "doc-b", got)

	depth, err := client.Depth(ctx, QueueExtract)
	require.NoError(t, err)
	assert.Equal(t, int64(1), depth)
}

func TestPush_SameJobTwiceDeliversTwice(t *testing.T) {
	// The queue does not deduplicate; stages must tolerate replays.
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Push(ctx, QueueEvaluate, "doc-1"))
	require.NoError(t, client.Push(ctx, QueueEvaluate, "doc-1"))

	depth, err := client.Depth(ctx, QueueEvaluate)
	require.NoError(t, err)
	assert.Equal(t, int64(2), depth)
}
