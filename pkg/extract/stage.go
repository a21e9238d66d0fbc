package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/autodiag/refinery/ent"
	"github.com/autodiag/refinery/ent/chunkevaluation"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/ent/documentchunk"
	"github.com/autodiag/refinery/ent/extractedcategory"
	"github.com/autodiag/refinery/ent/extractedcause"
	"github.com/autodiag/refinery/ent/extracteddtc"
	"github.com/autodiag/refinery/ent/extractedsensor"
	"github.com/autodiag/refinery/ent/extractedstep"
	"github.com/autodiag/refinery/ent/extractedtsb"
	"github.com/autodiag/refinery/ent/vehiclemention"
	"github.com/autodiag/refinery/pkg/config"
	"github.com/autodiag/refinery/pkg/database"
	"github.com/autodiag/refinery/pkg/jobqueue"
	"github.com/autodiag/refinery/pkg/llm"
	"github.com/autodiag/refinery/pkg/pipeline"
)

const systemPrompt = `You extract structured automotive diagnostic knowledge from text.
From the text the user provides, extract:

- dtc_codes: OBD-II trouble codes with their described meaning. Each entry:
  {"code": "P0300", "description": "...", "category": "powertrain",
   "severity": "critical|moderate|minor|informational"}
- causes: possible causes attributed to a specific code. Each entry:
  {"dtc_code": "P0300", "description": "...", "likelihood": "high|medium|low"}
- diagnostic_steps: diagnostic procedure steps for a specific code. Each entry:
  {"dtc_code": "P0300", "step_order": 1, "description": "...",
   "tools_required": "...", "expected_values": "..."}
- sensors: sensors or measurable parameters discussed. Each entry:
  {"name": "...", "sensor_type": "...", "typical_range": "...",
   "unit": "...", "related_dtc_codes": ["P0300"]}
- tsb_references: technical service bulletins referenced. Each entry:
  {"tsb_number": "...", "title": "...", "affected_models": "...",
   "related_dtc_codes": [], "summary": "..."}
- vehicles_mentioned: specific vehicles the text is about. Each entry:
  {"make": "...", "model": "...", "year_start": 0, "year_end": 0,
   "engine": "...", "transmission": "...", "related_dtc_codes": []}
- document_category: one of repair_procedure, diagnostic_guide,
  dtc_reference, tsb_bulletin, wiring_diagram, parts_catalog,
  forum_discussion, owners_manual, recall_notice, general_reference.

Only extract what the text actually states. Empty arrays are fine.
Respond with a single JSON object holding exactly those keys.`

// evaluatedChunk pairs a chunk with its verdict so staged rows inherit
// the chunk's trust and relevance.
type evaluatedChunk struct {
	chunk     *ent.DocumentChunk
	trust     float64
	relevance float64
}

// Stage extracts structured entities from a document's relevant chunks.
type Stage struct {
	db            *database.Client
	queue         *jobqueue.Client
	reasoner      *llm.Reasoner
	recorder      *pipeline.Recorder
	relevanceGate float64
}

// NewStage builds the extraction stage.
func NewStage(db *database.Client, queue *jobqueue.Client, reasoner *llm.Reasoner,
	cfg *config.PipelineConfig) *Stage {
	return &Stage{
		db:            db,
		queue:         queue,
		reasoner:      reasoner,
		recorder:      pipeline.NewRecorder(db),
		relevanceGate: cfg.RelevanceGate,
	}
}

// Name implements pipeline.Stage.
func (s *Stage) Name() string { return "extract" }

// Queue implements pipeline.Stage.
func (s *Stage) Queue() string { return jobqueue.QueueExtract }

// Process extracts one document. Staged rows from a previous attempt are
// wiped first, so a replay never double-counts evidence.
func (s *Stage) Process(ctx context.Context, docID string) error {
	doc, err := s.db.Document.Get(ctx, docID)
	if err != nil {
		if ent.IsNotFound(err) {
			return pipeline.Fatalf("document %s not found", docID)
		}
		return fmt.Errorf("failed to load document %s: %w", docID, err)
	}
	if doc.ProcessingStage != document.ProcessingStageExtracting {
		return nil
	}

	start := time.Now()
	s.recorder.Started(ctx, docID, s.Name())

	eligible, err := s.eligibleChunks(ctx, docID)
	if err != nil {
		return err
	}

	if err := s.clearStagedRows(ctx, docID); err != nil {
		return err
	}

	extractedFrom := 0
	for _, ec := range eligible {
		raw, err := s.reasoner.Complete(ctx, systemPrompt, ec.chunk.Content)
		if err != nil {
			return fmt.Errorf("extraction call failed for chunk %s: %w", ec.chunk.ID, err)
		}

		var ex extraction
		if parseErr := llm.ParseJSONObject(raw, &ex); parseErr != nil {
			// One garbled chunk is not worth failing the document over.
			slog.Warn("Unparseable extraction response, skipping chunk",
				"chunk_id", ec.chunk.ID, "error", parseErr)
			continue
		}

		if err := s.stageEntities(ctx, docID, ec, &ex); err != nil {
			return err
		}
		extractedFrom++
	}

	s.recorder.Completed(ctx, docID, s.Name(),
		fmt.Sprintf("extracted from %d of %d eligible chunks", extractedFrom, len(eligible)),
		time.Since(start))
	return pipeline.AdvanceDocument(ctx, s.db, s.queue, docID, document.ProcessingStageResolving)
}

// eligibleChunks returns the document's chunks whose relevance clears the
// gate, with their verdicts. The gate is inclusive.
func (s *Stage) eligibleChunks(ctx context.Context, docID string) ([]evaluatedChunk, error) {
	chunks, err := s.db.DocumentChunk.Query().
		Where(
			documentchunk.DocumentIDEQ(docID),
			documentchunk.HasEvaluationWith(
				chunkevaluation.RelevanceScoreGTE(s.relevanceGate),
			),
		).
		WithEvaluation().
		Order(ent.Asc(documentchunk.FieldChunkIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load eligible chunks for document %s: %w", docID, err)
	}

	out := make([]evaluatedChunk, 0, len(chunks))
	for _, chunk := range chunks {
		eval := chunk.Edges.Evaluation
		if eval == nil {
			continue
		}
		out = append(out, evaluatedChunk{
			chunk:     chunk,
			trust:     eval.TrustScore,
			relevance: eval.RelevanceScore,
		})
	}
	return out, nil
}

// clearStagedRows removes every staged row for the document in one
// transaction.
func (s *Stage) clearStagedRows(ctx context.Context, docID string) error {
	err := database.WithTx(ctx, s.db.Client, func(tx *ent.Tx) error {
		if _, err := tx.ExtractedDTC.Delete().
			Where(extracteddtc.DocumentIDEQ(docID)).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.ExtractedCause.Delete().
			Where(extractedcause.DocumentIDEQ(docID)).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.ExtractedStep.Delete().
			Where(extractedstep.DocumentIDEQ(docID)).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.ExtractedSensor.Delete().
			Where(extractedsensor.DocumentIDEQ(docID)).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.ExtractedTSB.Delete().
			Where(extractedtsb.DocumentIDEQ(docID)).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.VehicleMention.Delete().
			Where(vehiclemention.DocumentIDEQ(docID)).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.ExtractedCategory.Delete().
			Where(extractedcategory.DocumentIDEQ(docID)).Exec(ctx); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to clear staged rows for document %s: %w", docID, err)
	}
	return nil
}

// stageEntities validates one chunk's extraction and writes the surviving
// entities as staged rows. Malformed elements are dropped individually.
func (s *Stage) stageEntities(ctx context.Context, docID string, ec evaluatedChunk, ex *extraction) error {
	return database.WithTx(ctx, s.db.Client, func(tx *ent.Tx) error {
		chunkID := ec.chunk.ID

		for _, d := range ex.DTCs {
			code, ok := CanonicalDTCCode(d.Code)
			if !ok {
				slog.Debug("Dropping malformed DTC code", "code", d.Code, "chunk_id", chunkID)
				continue
			}
			if err := tx.ExtractedDTC.Create().
				SetID(uuid.NewString()).
				SetDocumentID(docID).
				SetCode(code).
				SetDescription(strings.TrimSpace(d.Description)).
				SetCategory(strings.TrimSpace(d.Category)).
				SetSeverity(NormalizeSeverity(d.Severity)).
				SetSourceChunkID(chunkID).
				SetTrust(ec.trust).
				SetRelevance(ec.relevance).
				Exec(ctx); err != nil {
				return err
			}
		}

		for _, c := range ex.Causes {
			code, ok := CanonicalDTCCode(c.DTCCode)
			if !ok || strings.TrimSpace(c.Description) == "" {
				continue
			}
			if err := tx.ExtractedCause.Create().
				SetID(uuid.NewString()).
				SetDocumentID(docID).
				SetDtcCode(code).
				SetDescription(strings.TrimSpace(c.Description)).
				SetLikelihood(NormalizeLikelihood(c.Likelihood)).
				SetSourceChunkID(chunkID).
				SetTrust(ec.trust).
				SetRelevance(ec.relevance).
				Exec(ctx); err != nil {
				return err
			}
		}

		for _, st := range ex.Steps {
			code, ok := CanonicalDTCCode(st.DTCCode)
			if !ok || strings.TrimSpace(st.Description) == "" {
				continue
			}
			if err := tx.ExtractedStep.Create().
				SetID(uuid.NewString()).
				SetDocumentID(docID).
				SetDtcCode(code).
				SetStepOrder(max(st.Order, 0)).
				SetDescription(strings.TrimSpace(st.Description)).
				SetToolsRequired(strings.TrimSpace(st.ToolsRequired)).
				SetExpectedValues(strings.TrimSpace(st.ExpectedValues)).
				SetSourceChunkID(chunkID).
				SetTrust(ec.trust).
				SetRelevance(ec.relevance).
				Exec(ctx); err != nil {
				return err
			}
		}

		for _, sn := range ex.Sensors {
			if strings.TrimSpace(sn.Name) == "" {
				continue
			}
			if err := tx.ExtractedSensor.Create().
				SetID(uuid.NewString()).
				SetDocumentID(docID).
				SetName(strings.TrimSpace(sn.Name)).
				SetSensorType(strings.TrimSpace(sn.SensorType)).
				SetTypicalRange(strings.TrimSpace(sn.TypicalRange)).
				SetUnit(strings.TrimSpace(sn.Unit)).
				SetRelatedDtcCodes(canonicalCodes(sn.RelatedDTCCodes)).
				SetSourceChunkID(chunkID).
				SetTrust(ec.trust).
				SetRelevance(ec.relevance).
				Exec(ctx); err != nil {
				return err
			}
		}

		for _, t := range ex.TSBs {
			if strings.TrimSpace(t.TSBNumber) == "" {
				continue
			}
			if err := tx.ExtractedTSB.Create().
				SetID(uuid.NewString()).
				SetDocumentID(docID).
				SetTsbNumber(strings.TrimSpace(t.TSBNumber)).
				SetTitle(strings.TrimSpace(t.Title)).
				SetAffectedModels(strings.TrimSpace(t.AffectedModels)).
				SetRelatedDtcCodes(canonicalCodes(t.RelatedDTCCodes)).
				SetSummary(strings.TrimSpace(t.Summary)).
				SetSourceChunkID(chunkID).
				SetTrust(ec.trust).
				SetRelevance(ec.relevance).
				Exec(ctx); err != nil {
				return err
			}
		}

		for _, v := range ex.Vehicles {
			if strings.TrimSpace(v.Make) == "" {
				continue
			}
			create := tx.VehicleMention.Create().
				SetID(uuid.NewString()).
				SetDocumentID(docID).
				SetMake(strings.TrimSpace(v.Make)).
				SetModel(strings.TrimSpace(v.Model)).
				SetEngine(strings.TrimSpace(v.Engine)).
				SetTransmission(strings.TrimSpace(v.Transmission)).
				SetRelatedDtcCodes(canonicalCodes(v.RelatedDTCCodes)).
				SetSourceChunkID(chunkID).
				SetTrust(ec.trust).
				SetRelevance(ec.relevance)
			if v.YearStart > 0 {
				create = create.SetYearStart(v.YearStart)
			}
			if v.YearEnd > 0 {
				create = create.SetYearEnd(v.YearEnd)
			}
			if err := create.Exec(ctx); err != nil {
				return err
			}
		}

		if category, ok := NormalizeCategory(ex.Category); ok {
			if err := tx.ExtractedCategory.Create().
				SetID(uuid.NewString()).
				SetDocumentID(docID).
				SetCategory(category).
				SetSourceChunkID(chunkID).
				Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}
