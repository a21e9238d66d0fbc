// Refinery worker binary: runs the crawl-to-resolve pipeline that turns
// raw automotive pages into the diagnostic knowledge graph.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/autodiag/refinery/pkg/blobstore"
	"github.com/autodiag/refinery/pkg/chunker"
	"github.com/autodiag/refinery/pkg/cleanup"
	"github.com/autodiag/refinery/pkg/config"
	"github.com/autodiag/refinery/pkg/crawl"
	"github.com/autodiag/refinery/pkg/database"
	"github.com/autodiag/refinery/pkg/embedder"
	"github.com/autodiag/refinery/pkg/evaluate"
	"github.com/autodiag/refinery/pkg/extract"
	"github.com/autodiag/refinery/pkg/jobqueue"
	"github.com/autodiag/refinery/pkg/llm"
	"github.com/autodiag/refinery/pkg/pipeline"
	"github.com/autodiag/refinery/pkg/resolve"
	"github.com/autodiag/refinery/pkg/version"
)

func main() {
	envFile := flag.String("env-file", ".env", "Path to environment file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envFile, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envFile)
	}

	slog.Info("Starting refinery", "version", version.Full())

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Connect to PostgreSQL (applies pending migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	db, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	if health, err := db.Health(ctx); err != nil {
		slog.Warn("Database health check failed", "error", err)
	} else {
		slog.Info("Connected to PostgreSQL database",
			"response_time", health.ResponseTime,
			"max_open_conns", health.MaxOpenConns)
	}

	// 3. Connect to Redis
	queue, err := jobqueue.NewClient(ctx, cfg.Redis)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := queue.Close(); err != nil {
			slog.Error("Error closing job queue client", "error", err)
		}
	}()
	slog.Info("Connected to Redis job queues")

	// 4. Connect to the blob store and make sure the bucket exists
	blobs, err := blobstore.New(ctx, cfg.Blob)
	if err != nil {
		slog.Error("Failed to build blob store client", "error", err)
		os.Exit(1)
	}
	if err := blobs.EnsureBucket(ctx); err != nil {
		slog.Error("Failed to ensure blob bucket", "bucket", cfg.Blob.Bucket, "error", err)
		os.Exit(1)
	}
	slog.Info("Blob store ready", "bucket", cfg.Blob.Bucket)

	// 5. Build the LLM clients
	reasoner, embedClient := llm.NewClients(cfg.LLM)

	// 6. Build the stages and start the worker pool
	pool := pipeline.NewPool(db, queue, cfg.Pipeline,
		crawl.NewStage(db, queue, blobs, cfg.Pipeline),
		chunker.NewStage(db, queue, blobs, cfg.Pipeline),
		embedder.NewStage(db, queue, embedClient, cfg.Pipeline),
		evaluate.NewStage(db, queue, reasoner, cfg.LLM.ReasonerModel),
		extract.NewStage(db, queue, reasoner, cfg.Pipeline),
		resolve.NewStage(db, queue),
	)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. Start the retention cleanup loop
	cleanupService := cleanup.NewService(cfg.Retention, db)
	cleanupService.Start(ctx)

	// 8. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("Received shutdown signal", "signal", sig.String())

	// 9. Graceful shutdown: stop taking jobs, let in-flight ones finish
	stopped := make(chan struct{})
	go func() {
		cleanupService.Stop()
		pool.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
		slog.Info("Shutdown complete")
	case <-time.After(cfg.Pipeline.GracefulShutdownTimeout):
		slog.Warn("Shutdown timed out, exiting with jobs in flight",
			"timeout", cfg.Pipeline.GracefulShutdownTimeout)
	}
}
