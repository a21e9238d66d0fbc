// Package jobqueue provides the Redis-backed job queues connecting
// pipeline stages. Each queue is a Redis list: producers LPUSH job IDs,
// workers BRPOP them, so every job is delivered to exactly one worker.
package jobqueue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/autodiag/refinery/pkg/config"
)

// Queue names, one per pipeline stage.
const (
	QueueCrawl    = "jobs:crawl"
	QueueChunk    = "jobs:chunk"
	QueueEmbed    = "jobs:embed"
	QueueEvaluate = "jobs:evaluate"
	QueueExtract  = "jobs:extract"
	QueueResolve  = "jobs:resolve"
)

// AllQueues lists every stage queue, in pipeline order.
var AllQueues = []string{
	QueueCrawl, QueueChunk, QueueEmbed, QueueEvaluate, QueueExtract, QueueResolve,
}

// Client wraps a Redis connection with list-based queue operations.
type Client struct {
	rdb *redis.Client
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return &Client{rdb: rdb}, nil
}

// NewClientFromRedis wraps an existing Redis client (useful for testing).
func NewClientFromRedis(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

// Push enqueues a job ID onto the named queue.
func (c *Client) Push(ctx context.Context, queue, jobID string) error {
	if err := c.rdb.LPush(ctx, queue, jobID).Err(); err != nil {
		return fmt.Errorf("failed to push job to %s: %w", queue, err)
	}
	return nil
}

// Pop blocks up to timeout waiting for a job on the named queue. Returns
// an empty string when the queue stays empty for the full timeout; callers
// use that to re-check for shutdown.
func (c *Client) Pop(ctx context.Context, queue string, timeout time.Duration) (string, error) {
	res, err := c.rdb.BRPop(ctx, timeout, queue).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to pop job from %s: %w", queue, err)
	}
	// BRPOP returns [key, value].
	if len(res) != 2 {
		return "", fmt.Errorf("unexpected BRPOP reply from %s: %v", queue, res)
	}
	return res[1], nil
}

// Depth returns the number of jobs waiting on the named queue.
func (c *Client) Depth(ctx context.Context, queue string) (int64, error) {
	n, err := c.rdb.LLen(ctx, queue).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read depth of %s: %w", queue, err)
	}
	return n, nil
}

// Ping verifies the Redis connection is still alive.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close releases the underlying Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
