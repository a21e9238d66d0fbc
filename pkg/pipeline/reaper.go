package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/autodiag/refinery/ent/document"
)

// runReaper periodically re-enqueues documents stuck mid-stage. A crashed
// worker or a lost queue push leaves a document in a non-terminal stage
// with no job carrying it; the reaper is the retry path for both. All
// replicas run it independently since re-delivery is tolerated.
func (p *Pool) runReaper(ctx context.Context) {
	ticker := time.NewTicker(p.config.ReaperInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.reapStuckDocuments(ctx); err != nil {
				slog.Error("Reaper scan failed", "error", err)
			}
		}
	}
}

// reapStuckDocuments finds documents sitting in a non-terminal stage past
// the stuck threshold and pushes them back onto the stage's queue.
func (p *Pool) reapStuckDocuments(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.ReaperThreshold)

	stuck, err := p.db.Document.Query().
		Where(
			document.ProcessingStageNotIn(
				document.ProcessingStageComplete,
				document.ProcessingStageError,
			),
			document.UpdatedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query stuck documents: %w", err)
	}
	if len(stuck) == 0 {
		return nil
	}

	slog.Warn("Detected stuck documents", "count", len(stuck))

	for _, doc := range stuck {
		queueName, ok := stageQueues[doc.ProcessingStage]
		if !ok {
			continue
		}

		// Bump updated_at first so the next scan does not re-enqueue the
		// same document while this attempt is still in flight.
		if err := doc.Update().SetUpdatedAt(time.Now()).Exec(ctx); err != nil {
			slog.Error("Failed to touch stuck document", "document_id", doc.ID, "error", err)
			continue
		}
		if err := p.queue.Push(ctx, queueName, doc.ID); err != nil {
			slog.Error("Failed to re-enqueue stuck document",
				"document_id", doc.ID, "queue", queueName, "error", err)
			continue
		}

		slog.Info("Stuck document re-enqueued",
			"document_id", doc.ID,
			"stage", doc.ProcessingStage,
			"queue", queueName)
	}

	return nil
}
