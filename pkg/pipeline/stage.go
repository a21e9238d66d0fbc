// Package pipeline provides the worker runtime that drives documents
// through the processing stages. Stages implement the domain work; this
// package owns popping jobs, logging attempts, advancing documents, and
// recovering the stuck ones.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/pkg/database"
	"github.com/autodiag/refinery/pkg/jobqueue"
)

// Stage is one unit of pipeline work. Process receives a job ID popped
// from the stage's queue; for every stage except crawl the job ID is a
// document ID. Process must tolerate replays of the same job.
type Stage interface {
	Name() string
	Queue() string
	Process(ctx context.Context, jobID string) error
}

// stageQueues maps a document's processing_stage to the queue that
// resumes it. Used by the reaper.
var stageQueues = map[document.ProcessingStage]string{
	document.ProcessingStagePending:    jobqueue.QueueChunk,
	document.ProcessingStageChunking:   jobqueue.QueueChunk,
	document.ProcessingStageEmbedding:  jobqueue.QueueEmbed,
	document.ProcessingStageEvaluating: jobqueue.QueueEvaluate,
	document.ProcessingStageExtracting: jobqueue.QueueExtract,
	document.ProcessingStageResolving:  jobqueue.QueueResolve,
}

// AdvanceDocument moves a document to its next stage and enqueues the
// follow-up job. The stage column commits before the push: if the push is
// lost the document sits visibly mid-stage and the reaper re-enqueues it,
// whereas pushing first could process a document whose state never
// committed.
func AdvanceDocument(ctx context.Context, db *database.Client, queue *jobqueue.Client,
	docID string, next document.ProcessingStage) error {

	err := db.Document.UpdateOneID(docID).
		SetProcessingStage(next).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to advance document %s to %s: %w", docID, next, err)
	}

	nextQueue, ok := stageQueues[next]
	if !ok {
		// Terminal stage (complete, error): nothing to enqueue.
		return nil
	}
	if err := queue.Push(ctx, nextQueue, docID); err != nil {
		return fmt.Errorf("failed to enqueue document %s for %s: %w", docID, next, err)
	}
	return nil
}

// FailDocument marks a document terminally failed with the given cause.
func FailDocument(ctx context.Context, db *database.Client, docID string, cause error) error {
	return db.Document.UpdateOneID(docID).
		SetProcessingStage(document.ProcessingStageError).
		SetErrorMessage(cause.Error()).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
}
