// Package evaluate implements the evaluation stage: scoring each chunk's
// trustworthiness and automotive relevance with the reasoning model.
package evaluate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/autodiag/refinery/ent"
	"github.com/autodiag/refinery/ent/chunkevaluation"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/ent/documentchunk"
	"github.com/autodiag/refinery/pkg/database"
	"github.com/autodiag/refinery/pkg/jobqueue"
	"github.com/autodiag/refinery/pkg/llm"
	"github.com/autodiag/refinery/pkg/pipeline"
)

const systemPrompt = `You are a quality rater for automotive diagnostic content.
Rate the text the user provides on two axes:

- trust: how technically reliable the content is (0.0 to 1.0). Service
  manual excerpts and TSBs rate high; unverified forum speculation rates low.
- relevance: how much of the text is about diagnosing or repairing
  vehicles (0.0 to 1.0). Off-topic chatter rates near zero.

Also classify the dominant automotive domain as one of: obd, electrical,
engine, transmission, brakes, suspension, hvac, body, general, unknown.

Respond with a single JSON object:
{"trust_score": 0.0, "relevance_score": 0.0, "automotive_domain": "unknown",
 "reasoning": "one sentence"}`

// verdict is the JSON contract the model must satisfy.
type verdict struct {
	Trust     float64 `json:"trust_score"`
	Relevance float64 `json:"relevance_score"`
	Domain    string  `json:"automotive_domain"`
	Reasoning string  `json:"reasoning"`
}

// Stage evaluates every chunk of a document.
type Stage struct {
	db       *database.Client
	queue    *jobqueue.Client
	reasoner *llm.Reasoner
	recorder *pipeline.Recorder
	model    string
}

// NewStage builds the evaluation stage. The model name is recorded on
// each verdict for audit.
func NewStage(db *database.Client, queue *jobqueue.Client, reasoner *llm.Reasoner, model string) *Stage {
	return &Stage{
		db:       db,
		queue:    queue,
		reasoner: reasoner,
		recorder: pipeline.NewRecorder(db),
		model:    model,
	}
}

// Name implements pipeline.Stage.
func (s *Stage) Name() string { return "evaluate" }

// Queue implements pipeline.Stage.
func (s *Stage) Queue() string { return jobqueue.QueueEvaluate }

// Process evaluates one document's chunks. Chunks already carrying a
// verdict are skipped on replay.
func (s *Stage) Process(ctx context.Context, docID string) error {
	doc, err := s.db.Document.Get(ctx, docID)
	if err != nil {
		if ent.IsNotFound(err) {
			return pipeline.Fatalf("document %s not found", docID)
		}
		return fmt.Errorf("failed to load document %s: %w", docID, err)
	}
	if doc.ProcessingStage != document.ProcessingStageEvaluating {
		return nil
	}

	start := time.Now()
	s.recorder.Started(ctx, docID, s.Name())

	chunks, err := s.db.DocumentChunk.Query().
		Where(
			documentchunk.DocumentIDEQ(docID),
			documentchunk.Not(documentchunk.HasEvaluation()),
		).
		Order(ent.Asc(documentchunk.FieldChunkIndex)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load chunks for document %s: %w", docID, err)
	}

	for _, chunk := range chunks {
		if err := s.evaluateChunk(ctx, chunk); err != nil {
			return err
		}
	}

	s.recorder.Completed(ctx, docID, s.Name(),
		fmt.Sprintf("evaluated %d chunks", len(chunks)), time.Since(start))
	return pipeline.AdvanceDocument(ctx, s.db, s.queue, docID, document.ProcessingStageExtracting)
}

func (s *Stage) evaluateChunk(ctx context.Context, chunk *ent.DocumentChunk) error {
	raw, err := s.reasoner.Complete(ctx, systemPrompt, chunk.Content)
	if err != nil {
		return fmt.Errorf("evaluation call failed for chunk %s: %w", chunk.ID, err)
	}

	var v verdict
	if parseErr := llm.ParseJSONObject(raw, &v); parseErr != nil {
		// A garbled verdict zeroes the chunk rather than stalling the
		// document; the relevance gate then keeps it out of extraction.
		slog.Warn("Unparseable evaluation verdict, scoring chunk zero",
			"chunk_id", chunk.ID, "error", parseErr)
		v = verdict{Reasoning: "parse failed"}
	}

	return s.saveVerdict(ctx, chunk.ID, v)
}

// saveVerdict upserts the chunk's verdict. Re-evaluation overwrites the
// previous row in place.
func (s *Stage) saveVerdict(ctx context.Context, chunkID string, v verdict) error {
	trust := clamp01(v.Trust)
	relevance := clamp01(v.Relevance)
	domain := normalizeDomain(v.Domain)

	existing, err := s.db.ChunkEvaluation.Query().
		Where(chunkevaluation.ChunkIDEQ(chunkID)).
		Only(ctx)
	switch {
	case err == nil:
		return existing.Update().
			SetTrustScore(trust).
			SetRelevanceScore(relevance).
			SetAutomotiveDomain(domain).
			SetReasoning(v.Reasoning).
			SetModelUsed(s.model).
			Exec(ctx)
	case ent.IsNotFound(err):
		return s.db.ChunkEvaluation.Create().
			SetID(uuid.NewString()).
			SetChunkID(chunkID).
			SetTrustScore(trust).
			SetRelevanceScore(relevance).
			SetAutomotiveDomain(domain).
			SetReasoning(v.Reasoning).
			SetModelUsed(s.model).
			Exec(ctx)
	default:
		return fmt.Errorf("failed to look up verdict for chunk %s: %w", chunkID, err)
	}
}

// normalizeDomain maps a model-supplied label onto the closed domain set.
func normalizeDomain(domain string) chunkevaluation.AutomotiveDomain {
	d := chunkevaluation.AutomotiveDomain(domain)
	if err := chunkevaluation.AutomotiveDomainValidator(d); err != nil {
		return chunkevaluation.AutomotiveDomainUnknown
	}
	return d
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
