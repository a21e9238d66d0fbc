package resolve

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/autodiag/refinery/ent"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/ent/entitysource"
	"github.com/autodiag/refinery/ent/extractedcategory"
	"github.com/autodiag/refinery/ent/extractedcause"
	"github.com/autodiag/refinery/ent/extracteddtc"
	"github.com/autodiag/refinery/ent/extractedsensor"
	"github.com/autodiag/refinery/ent/extractedstep"
	"github.com/autodiag/refinery/ent/extractedtsb"
	"github.com/autodiag/refinery/ent/resolutionlog"
	"github.com/autodiag/refinery/ent/vehiclemention"
	"github.com/autodiag/refinery/pkg/database"
	"github.com/autodiag/refinery/pkg/jobqueue"
	"github.com/autodiag/refinery/pkg/pipeline"
)

// Stage merges one document's staged extractions into the knowledge
// graph. The whole merge runs in a single transaction: either every
// entity of the document lands, or none do.
type Stage struct {
	db       *database.Client
	queue    *jobqueue.Client
	recorder *pipeline.Recorder
}

// NewStage builds the resolve stage.
func NewStage(db *database.Client, queue *jobqueue.Client) *Stage {
	return &Stage{
		db:       db,
		queue:    queue,
		recorder: pipeline.NewRecorder(db),
	}
}

// Name implements pipeline.Stage.
func (s *Stage) Name() string { return "resolve" }

// Queue implements pipeline.Stage.
func (s *Stage) Queue() string { return jobqueue.QueueResolve }

// Process resolves one document. Replays are idempotent: provenance rows
// carry a unique (entity, chunk) key, and evidence already recorded is
// never counted twice.
func (s *Stage) Process(ctx context.Context, docID string) error {
	doc, err := s.db.Document.Get(ctx, docID)
	if err != nil {
		if ent.IsNotFound(err) {
			return pipeline.Fatalf("document %s not found", docID)
		}
		return fmt.Errorf("failed to load document %s: %w", docID, err)
	}
	if doc.ProcessingStage != document.ProcessingStageResolving {
		return nil
	}

	start := time.Now()
	s.recorder.Started(ctx, docID, s.Name())

	runID := uuid.NewString()
	var summary string
	err = database.WithTx(ctx, s.db.Client, func(tx *ent.Tx) error {
		r := &run{ctx: ctx, tx: tx, runID: runID, docID: docID}
		var runErr error
		summary, runErr = r.resolve()
		return runErr
	})
	if err != nil {
		return fmt.Errorf("failed to resolve document %s: %w", docID, err)
	}

	s.recorder.Completed(ctx, docID, s.Name(), summary, time.Since(start))
	return pipeline.AdvanceDocument(ctx, s.db, s.queue, docID, document.ProcessingStageComplete)
}

// run carries the state of one resolution run. Every write goes through
// the run's transaction.
type run struct {
	ctx   context.Context
	tx    *ent.Tx
	runID string
	docID string

	// codeToMaster caches dtc_master IDs resolved during this run.
	codeToMaster map[string]string
}

// resolve executes the run and returns a human-readable summary for the
// processing log.
func (r *run) resolve() (string, error) {
	r.codeToMaster = make(map[string]string)

	// Row order feeds canonical-text selection downstream, so every load
	// is pinned to ID order to keep reruns reproducible.
	dtcs, err := r.tx.ExtractedDTC.Query().
		Where(extracteddtc.DocumentIDEQ(r.docID)).
		Order(ent.Asc(extracteddtc.FieldID)).All(r.ctx)
	if err != nil {
		return "", err
	}
	causes, err := r.tx.ExtractedCause.Query().
		Where(extractedcause.DocumentIDEQ(r.docID)).
		Order(ent.Asc(extractedcause.FieldID)).All(r.ctx)
	if err != nil {
		return "", err
	}
	steps, err := r.tx.ExtractedStep.Query().
		Where(extractedstep.DocumentIDEQ(r.docID)).
		Order(ent.Asc(extractedstep.FieldID)).All(r.ctx)
	if err != nil {
		return "", err
	}
	sensors, err := r.tx.ExtractedSensor.Query().
		Where(extractedsensor.DocumentIDEQ(r.docID)).
		Order(ent.Asc(extractedsensor.FieldID)).All(r.ctx)
	if err != nil {
		return "", err
	}
	tsbs, err := r.tx.ExtractedTSB.Query().
		Where(extractedtsb.DocumentIDEQ(r.docID)).
		Order(ent.Asc(extractedtsb.FieldID)).All(r.ctx)
	if err != nil {
		return "", err
	}
	mentions, err := r.tx.VehicleMention.Query().
		Where(vehiclemention.DocumentIDEQ(r.docID)).
		Order(ent.Asc(vehiclemention.FieldID)).All(r.ctx)
	if err != nil {
		return "", err
	}
	votes, err := r.tx.ExtractedCategory.Query().
		Where(extractedcategory.DocumentIDEQ(r.docID)).
		Order(ent.Asc(extractedcategory.FieldID)).All(r.ctx)
	if err != nil {
		return "", err
	}

	total := len(dtcs) + len(causes) + len(steps) + len(sensors) + len(tsbs) + len(mentions)
	if total == 0 && len(votes) == 0 {
		if err := r.logAction(resolutionlog.ActionRejected, "", "", map[string]interface{}{
			"reason": "no eligible chunks",
		}); err != nil {
			return "", err
		}
		if err := r.tx.Document.UpdateOneID(r.docID).
			SetConfidenceScore(0).
			Exec(r.ctx); err != nil {
			return "", err
		}
		return "nothing to resolve", nil
	}

	vehicleCtx := DocumentVehicleContext(mentions)
	mentionByChunk := make(map[string]*ent.VehicleMention, len(mentions))
	for _, m := range mentions {
		if _, ok := mentionByChunk[m.SourceChunkID]; !ok {
			mentionByChunk[m.SourceChunkID] = m
		}
	}

	if err := r.resolveDTCs(dtcs, vehicleCtx, mentionByChunk); err != nil {
		return "", err
	}
	if err := r.resolveCauses(causes); err != nil {
		return "", err
	}
	if err := r.resolveSteps(steps); err != nil {
		return "", err
	}
	if err := r.resolveSensors(sensors); err != nil {
		return "", err
	}
	if err := r.resolveTSBs(tsbs); err != nil {
		return "", err
	}
	if err := r.resolveVehicles(mentions); err != nil {
		return "", err
	}
	if err := r.finalizeDocument(votes, dtcs, causes, steps, sensors, tsbs, mentions); err != nil {
		return "", err
	}

	return fmt.Sprintf("resolved %d staged entities across %d DTC codes",
		total, len(r.codeToMaster)), nil
}

// finalizeDocument records the document's category vote and confidence.
func (r *run) finalizeDocument(votes []*ent.ExtractedCategory,
	dtcs []*ent.ExtractedDTC, causes []*ent.ExtractedCause, steps []*ent.ExtractedStep,
	sensors []*ent.ExtractedSensor, tsbs []*ent.ExtractedTSB, mentions []*ent.VehicleMention) error {

	update := r.tx.Document.UpdateOneID(r.docID)

	labels := make([]string, 0, len(votes))
	for _, v := range votes {
		labels = append(labels, v.Category)
	}
	if category, ok := MajorityVote(labels); ok {
		update = update.SetDocumentCategory(category)
	}

	agg := Aggregate{}
	seen := make(map[string]bool)
	fold := func(chunkID string, trust, relevance float64) {
		if chunkID == "" || seen[chunkID] {
			return
		}
		seen[chunkID] = true
		agg = Merge(agg, Evidence{ChunkID: chunkID, Trust: trust, Relevance: relevance})
	}
	for _, d := range dtcs {
		fold(d.SourceChunkID, d.Trust, d.Relevance)
	}
	for _, c := range causes {
		fold(c.SourceChunkID, c.Trust, c.Relevance)
	}
	for _, st := range steps {
		fold(st.SourceChunkID, st.Trust, st.Relevance)
	}
	for _, sn := range sensors {
		fold(sn.SourceChunkID, sn.Trust, sn.Relevance)
	}
	for _, t := range tsbs {
		fold(t.SourceChunkID, t.Trust, t.Relevance)
	}
	for _, m := range mentions {
		fold(m.SourceChunkID, m.Trust, m.Relevance)
	}

	return update.SetConfidenceScore(agg.Confidence()).Exec(r.ctx)
}

// logAction appends one resolution log row.
func (r *run) logAction(action resolutionlog.Action, table, entityID string,
	details map[string]interface{}) error {

	create := r.tx.ResolutionLog.Create().
		SetID(uuid.NewString()).
		SetRunID(r.runID).
		SetDocumentID(r.docID).
		SetAction(action)
	if table != "" {
		create = create.SetEntityTable(table)
	}
	if entityID != "" {
		create = create.SetEntityID(entityID)
	}
	if len(details) > 0 {
		create = create.SetDetails(details)
	}
	return create.Exec(r.ctx)
}

// recordSources writes provenance rows for evidence not yet linked to the
// entity and returns only the evidence that was new. Evidence whose
// (entity, chunk) pair already exists contributes nothing, which is what
// makes replayed resolve runs idempotent.
func (r *run) recordSources(table, entityID string, evidence []Evidence) ([]Evidence, error) {
	if len(evidence) == 0 {
		return nil, nil
	}

	chunkIDs := make([]string, 0, len(evidence))
	for _, ev := range evidence {
		chunkIDs = append(chunkIDs, ev.ChunkID)
	}

	existing, err := r.tx.EntitySource.Query().
		Where(
			entitysource.EntityTableEQ(table),
			entitysource.EntityIDEQ(entityID),
			entitysource.ChunkIDIn(chunkIDs...),
		).
		All(r.ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(existing))
	for _, src := range existing {
		known[src.ChunkID] = true
	}

	var fresh []Evidence
	for _, ev := range evidence {
		if known[ev.ChunkID] {
			continue
		}
		known[ev.ChunkID] = true
		if err := r.tx.EntitySource.Create().
			SetID(uuid.NewString()).
			SetEntityTable(table).
			SetEntityID(entityID).
			SetChunkID(ev.ChunkID).
			SetTrustScore(ev.Trust).
			SetRelevanceScore(ev.Relevance).
			Exec(r.ctx); err != nil {
			return nil, err
		}
		fresh = append(fresh, ev)
	}
	return fresh, nil
}

// dedupEvidence keeps the first evidence entry per chunk, in input order.
func dedupEvidence(evidence []Evidence) []Evidence {
	seen := make(map[string]bool, len(evidence))
	var out []Evidence
	for _, ev := range evidence {
		if ev.ChunkID == "" || seen[ev.ChunkID] {
			continue
		}
		seen[ev.ChunkID] = true
		out = append(out, ev)
	}
	return out
}

// sortedKeys returns the map's keys in ascending order so every run
// visits entities in the same sequence.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
