package chunker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/autodiag/refinery/ent"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/ent/documentchunk"
	"github.com/autodiag/refinery/pkg/blobstore"
	"github.com/autodiag/refinery/pkg/config"
	"github.com/autodiag/refinery/pkg/database"
	"github.com/autodiag/refinery/pkg/jobqueue"
	"github.com/autodiag/refinery/pkg/pipeline"
)

// Stage splits a document's stored text into chunks and hands the
// document to the embedding stage.
type Stage struct {
	db       *database.Client
	queue    *jobqueue.Client
	blobs    *blobstore.Store
	splitter *Splitter
	recorder *pipeline.Recorder
}

// NewStage builds the chunk stage.
func NewStage(db *database.Client, queue *jobqueue.Client, blobs *blobstore.Store,
	cfg *config.PipelineConfig) *Stage {
	return &Stage{
		db:       db,
		queue:    queue,
		blobs:    blobs,
		splitter: New(cfg.ChunkSize, cfg.ChunkOverlap),
		recorder: pipeline.NewRecorder(db),
	}
}

// Name implements pipeline.Stage.
func (s *Stage) Name() string { return "chunk" }

// Queue implements pipeline.Stage.
func (s *Stage) Queue() string { return jobqueue.QueueChunk }

// Process chunks one document. Replays wipe and rewrite the document's
// chunks, so a job interrupted mid-write leaves no partial state behind.
func (s *Stage) Process(ctx context.Context, docID string) error {
	doc, err := s.db.Document.Get(ctx, docID)
	if err != nil {
		if ent.IsNotFound(err) {
			return pipeline.Fatalf("document %s not found", docID)
		}
		return fmt.Errorf("failed to load document %s: %w", docID, err)
	}
	if doc.ProcessingStage != document.ProcessingStagePending &&
		doc.ProcessingStage != document.ProcessingStageChunking {
		// Replayed job for a document that already moved on.
		return nil
	}

	start := time.Now()
	s.recorder.Started(ctx, docID, s.Name())

	if err := s.db.Document.UpdateOne(doc).
		SetProcessingStage(document.ProcessingStageChunking).
		SetUpdatedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark document %s chunking: %w", docID, err)
	}

	if doc.BlobKey == nil || *doc.BlobKey == "" {
		err := fmt.Errorf("document %s has no stored text", docID)
		s.recorder.Error(ctx, docID, s.Name(), err.Error(), time.Since(start))
		if failErr := pipeline.FailDocument(ctx, s.db, docID, err); failErr != nil {
			return failErr
		}
		return pipeline.Fatal(err)
	}

	text, err := s.blobs.Get(ctx, *doc.BlobKey)
	if err != nil {
		return fmt.Errorf("failed to read text for document %s: %w", docID, err)
	}

	count, err := s.writeChunks(ctx, docID, string(text))
	if err != nil {
		return err
	}
	if count == 0 {
		err := fmt.Errorf("document %s produced no chunks", docID)
		s.recorder.Error(ctx, docID, s.Name(), err.Error(), time.Since(start))
		if failErr := pipeline.FailDocument(ctx, s.db, docID, err); failErr != nil {
			return failErr
		}
		return pipeline.Fatal(err)
	}

	if err := s.db.Document.UpdateOneID(docID).
		SetChunkCount(count).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to record chunk count for document %s: %w", docID, err)
	}

	s.recorder.Completed(ctx, docID, s.Name(),
		fmt.Sprintf("split into %d chunks", count), time.Since(start))
	return pipeline.AdvanceDocument(ctx, s.db, s.queue, docID, document.ProcessingStageEmbedding)
}

// writeChunks replaces the document's chunks inside one transaction.
func (s *Stage) writeChunks(ctx context.Context, docID, text string) (int, error) {
	count := 0
	err := database.WithTx(ctx, s.db.Client, func(tx *ent.Tx) error {
		count = 0
		if _, err := tx.DocumentChunk.Delete().
			Where(documentchunk.DocumentIDEQ(docID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to clear existing chunks: %w", err)
		}

		var builders []*ent.DocumentChunkCreate
		for chunk := range s.splitter.All(text) {
			builders = append(builders, tx.DocumentChunk.Create().
				SetID(uuid.NewString()).
				SetDocumentID(docID).
				SetChunkIndex(chunk.Index).
				SetContent(chunk.Content).
				SetCharStart(chunk.CharStart).
				SetCharEnd(chunk.CharEnd).
				SetTokenCount(chunk.TokenCount))
		}
		if len(builders) == 0 {
			return nil
		}
		if err := tx.DocumentChunk.CreateBulk(builders...).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert chunks: %w", err)
		}
		count = len(builders)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to write chunks for document %s: %w", docID, err)
	}
	return count, nil
}
