// Package embedder implements the embed stage: computing dense vectors
// for every chunk of a document.
package embedder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/autodiag/refinery/ent"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/ent/documentchunk"
	"github.com/autodiag/refinery/pkg/config"
	"github.com/autodiag/refinery/pkg/database"
	"github.com/autodiag/refinery/pkg/jobqueue"
	"github.com/autodiag/refinery/pkg/llm"
	"github.com/autodiag/refinery/pkg/pipeline"
)

// batchSize bounds how many chunk texts go into one embedding request.
const batchSize = 32

// Stage computes embeddings for a document's chunks.
type Stage struct {
	db       *database.Client
	queue    *jobqueue.Client
	embedder *llm.Embedder
	recorder *pipeline.Recorder
	dim      int
}

// NewStage builds the embed stage.
func NewStage(db *database.Client, queue *jobqueue.Client, embedder *llm.Embedder,
	cfg *config.PipelineConfig) *Stage {
	return &Stage{
		db:       db,
		queue:    queue,
		embedder: embedder,
		recorder: pipeline.NewRecorder(db),
		dim:      cfg.EmbeddingDim,
	}
}

// Name implements pipeline.Stage.
func (s *Stage) Name() string { return "embed" }

// Queue implements pipeline.Stage.
func (s *Stage) Queue() string { return jobqueue.QueueEmbed }

// Process embeds one document's chunks. Chunks that already carry a
// vector are skipped, so replays only pay for the work that was lost.
func (s *Stage) Process(ctx context.Context, docID string) error {
	doc, err := s.db.Document.Get(ctx, docID)
	if err != nil {
		if ent.IsNotFound(err) {
			return pipeline.Fatalf("document %s not found", docID)
		}
		return fmt.Errorf("failed to load document %s: %w", docID, err)
	}
	if doc.ProcessingStage != document.ProcessingStageEmbedding {
		return nil
	}

	start := time.Now()
	s.recorder.Started(ctx, docID, s.Name())

	chunks, err := s.db.DocumentChunk.Query().
		Where(
			documentchunk.DocumentIDEQ(docID),
			documentchunk.EmbeddingIsNil(),
		).
		Order(ent.Asc(documentchunk.FieldChunkIndex)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load chunks for document %s: %w", docID, err)
	}

	embedded := 0
	for i := 0; i < len(chunks); i += batchSize {
		batch := chunks[i:min(i+batchSize, len(chunks))]
		n, err := s.embedBatch(ctx, docID, batch)
		if err != nil {
			return err
		}
		embedded += n
	}

	s.recorder.Completed(ctx, docID, s.Name(),
		fmt.Sprintf("embedded %d chunks", embedded), time.Since(start))
	return pipeline.AdvanceDocument(ctx, s.db, s.queue, docID, document.ProcessingStageEvaluating)
}

func (s *Stage) embedBatch(ctx context.Context, docID string, batch []*ent.DocumentChunk) (int, error) {
	texts := make([]string, len(batch))
	for i, chunk := range batch {
		texts[i] = chunk.Content
	}

	vectors, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("failed to embed chunks for document %s: %w", docID, err)
	}

	stored := 0
	for i, vector := range vectors {
		if len(vector) != s.dim {
			// Wrong dimension is a misconfiguration, not a transport error.
			// The chunk keeps going through the pipeline without a vector.
			slog.Warn("Embedding dimension mismatch, dropping vector",
				"chunk_id", batch[i].ID, "got", len(vector), "want", s.dim)
			continue
		}
		if err := s.db.DocumentChunk.UpdateOne(batch[i]).
			SetEmbedding(vector).
			Exec(ctx); err != nil {
			return 0, fmt.Errorf("failed to store embedding for chunk %s: %w", batch[i].ID, err)
		}
		stored++
	}
	return stored, nil
}
