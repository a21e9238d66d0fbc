package resolve

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/ent/dtccause"
	"github.com/autodiag/refinery/ent/dtcdiagnosticstep"
	"github.com/autodiag/refinery/ent/dtcmaster"
	"github.com/autodiag/refinery/ent/entitysource"
	"github.com/autodiag/refinery/ent/resolutionlog"
	"github.com/autodiag/refinery/pkg/database"
)

// seedLeanConditionDocument stages a small but complete extraction set: two
// P0171 observations across two chunks, one cause, one diagnostic step, and
// two category votes.
func seedLeanConditionDocument(t *testing.T, db *database.Client) (docID, chunk1, chunk2 string) {
	t.Helper()
	ctx := context.Background()

	docID = seedDocument(t, db, document.ProcessingStageResolving)
	chunk1 = seedChunk(t, db, docID, 0)
	chunk2 = seedChunk(t, db, docID, 1)

	require.NoError(t, db.ExtractedDTC.Create().
		SetID(uuid.NewString()).
		SetDocumentID(docID).
		SetCode("P0171").
		SetDescription("System too lean bank 1").
		SetSeverity("moderate").
		SetSourceChunkID(chunk1).
		SetTrust(0.8).
		SetRelevance(0.9).
		Exec(ctx))
	require.NoError(t, db.ExtractedDTC.Create().
		SetID(uuid.NewString()).
		SetDocumentID(docID).
		SetCode("P0171").
		SetSeverity("moderate").
		SetSourceChunkID(chunk2).
		SetTrust(0.6).
		SetRelevance(0.7).
		Exec(ctx))
	require.NoError(t, db.ExtractedCause.Create().
		SetID(uuid.NewString()).
		SetDocumentID(docID).
		SetDtcCode("P0171").
		SetDescription("Vacuum leak at the intake boot").
		SetLikelihood("high").
		SetSourceChunkID(chunk1).
		SetTrust(0.8).
		SetRelevance(0.9).
		Exec(ctx))
	require.NoError(t, db.ExtractedStep.Create().
		SetID(uuid.NewString()).
		SetDocumentID(docID).
		SetDtcCode("P0171").
		SetStepOrder(1).
		SetDescription("Inspect the intake boot for cracks").
		SetSourceChunkID(chunk2).
		SetTrust(0.6).
		SetRelevance(0.7).
		Exec(ctx))
	for _, chunk := range []string{chunk1, chunk2} {
		require.NoError(t, db.ExtractedCategory.Create().
			SetID(uuid.NewString()).
			SetDocumentID(docID).
			SetCategory("repair_procedure").
			SetSourceChunkID(chunk).
			Exec(ctx))
	}
	return docID, chunk1, chunk2
}

func TestStage_Process_ResolvesDocument(t *testing.T) {
	ctx := context.Background()
	db := setupTestDatabase(t)
	stage := NewStage(db, setupTestQueue(t))

	docID, chunk1, chunk2 := seedLeanConditionDocument(t, db)

	require.NoError(t, stage.Process(ctx, docID))

	master, err := db.DTCMaster.Query().
		Where(dtcmaster.CodeEQ("P0171")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "System too lean bank 1", master.GenericDescription)
	assert.InDelta(t, 0.8, master.DescriptionTrust, 1e-9)
	assert.Equal(t, "powertrain", master.SystemCategory)
	assert.Equal(t, 3, master.SeverityLevel)
	assert.False(t, master.EmissionsRelated)
	assert.Equal(t, 2, master.EvidenceCount)
	assert.InDelta(t, 0.7, master.AvgTrust, 1e-9)
	assert.InDelta(t, 0.8, master.AvgRelevance, 1e-9)
	assert.InDelta(t, 0.61, master.ConfidenceScore, 1e-9)
	assert.False(t, master.ConflictFlag)

	cause, err := db.DTCCause.Query().
		Where(dtccause.DtcMasterIDEQ(master.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Vacuum leak at the intake boot", cause.Cause)
	assert.InDelta(t, 0.85, cause.ProbabilityWeight, 1e-9)
	assert.Equal(t, 1, cause.EvidenceCount)

	step, err := db.DTCDiagnosticStep.Query().
		Where(dtcdiagnosticstep.DtcMasterIDEQ(master.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, step.StepOrder)
	assert.Equal(t, "Inspect the intake boot for cracks", step.Instruction)

	// Provenance: two chunks back the master, one each for cause and step.
	masterSources, err := db.EntitySource.Query().
		Where(
			entitysource.EntityTableEQ("dtc_master"),
			entitysource.EntityIDEQ(master.ID),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, masterSources, 2)
	chunkIDs := []string{masterSources[0].ChunkID, masterSources[1].ChunkID}
	assert.ElementsMatch(t, []string{chunk1, chunk2}, chunkIDs)

	total, err := db.EntitySource.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, total)

	// Every log row of the run shares one run ID.
	logs, err := db.ResolutionLog.Query().
		Where(resolutionlog.DocumentIDEQ(docID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	for _, row := range logs {
		assert.Equal(t, logs[0].RunID, row.RunID)
		assert.Equal(t, resolutionlog.ActionCreated, row.Action)
	}

	doc, err := db.Document.Get(ctx, docID)
	require.NoError(t, err)
	assert.Equal(t, document.ProcessingStageComplete, doc.ProcessingStage)
	require.NotNil(t, doc.DocumentCategory)
	assert.Equal(t, "repair_procedure", *doc.DocumentCategory)
	require.NotNil(t, doc.ConfidenceScore)
	assert.InDelta(t, 0.61, *doc.ConfidenceScore, 1e-9)
}

func TestStage_Process_ReplayDoesNotDoubleEvidence(t *testing.T) {
	ctx := context.Background()
	db := setupTestDatabase(t)
	stage := NewStage(db, setupTestQueue(t))

	docID, _, _ := seedLeanConditionDocument(t, db)
	require.NoError(t, stage.Process(ctx, docID))

	// Replay the job as the reaper would after a lost acknowledgement.
	require.NoError(t, db.Document.UpdateOneID(docID).
		SetProcessingStage(document.ProcessingStageResolving).
		Exec(ctx))
	require.NoError(t, stage.Process(ctx, docID))

	master, err := db.DTCMaster.Query().
		Where(dtcmaster.CodeEQ("P0171")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, master.EvidenceCount)
	assert.InDelta(t, 0.7, master.AvgTrust, 1e-9)
	assert.InDelta(t, 0.61, master.ConfidenceScore, 1e-9)

	total, err := db.EntitySource.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, total)

	// The second run merged instead of creating and brought no new evidence.
	merged, err := db.ResolutionLog.Query().
		Where(
			resolutionlog.DocumentIDEQ(docID),
			resolutionlog.ActionEQ(resolutionlog.ActionMerged),
			resolutionlog.EntityTableEQ("dtc_master"),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, merged.Details["new_evidence"])
}

func TestStage_Process_NothingStagedIsRejected(t *testing.T) {
	ctx := context.Background()
	db := setupTestDatabase(t)
	stage := NewStage(db, setupTestQueue(t))

	docID := seedDocument(t, db, document.ProcessingStageResolving)

	require.NoError(t, stage.Process(ctx, docID))

	row, err := db.ResolutionLog.Query().
		Where(resolutionlog.DocumentIDEQ(docID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, resolutionlog.ActionRejected, row.Action)
	assert.Equal(t, "no eligible chunks", row.Details["reason"])

	doc, err := db.Document.Get(ctx, docID)
	require.NoError(t, err)
	assert.Equal(t, document.ProcessingStageComplete, doc.ProcessingStage)
	require.NotNil(t, doc.ConfidenceScore)
	assert.Zero(t, *doc.ConfidenceScore)
}

func TestStage_Process_MergesEvidenceAcrossDocuments(t *testing.T) {
	ctx := context.Background()
	db := setupTestDatabase(t)
	stage := NewStage(db, setupTestQueue(t))

	seedMisfire := func(desc, severity string, trust, relevance float64) string {
		docID := seedDocument(t, db, document.ProcessingStageResolving)
		chunk := seedChunk(t, db, docID, 0)
		require.NoError(t, db.ExtractedDTC.Create().
			SetID(uuid.NewString()).
			SetDocumentID(docID).
			SetCode("P0300").
			SetDescription(desc).
			SetSeverity(severity).
			SetSourceChunkID(chunk).
			SetTrust(trust).
			SetRelevance(relevance).
			Exec(ctx))
		return docID
	}

	first := seedMisfire("Random or multiple cylinder misfire detected", "critical", 0.9, 0.9)
	require.NoError(t, stage.Process(ctx, first))
	second := seedMisfire("Misfire on several cylinders", "moderate", 0.5, 0.5)
	require.NoError(t, stage.Process(ctx, second))

	master, err := db.DTCMaster.Query().
		Where(dtcmaster.CodeEQ("P0300")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, master.EvidenceCount)
	assert.InDelta(t, 0.7, master.AvgTrust, 1e-9)
	// Lower-trust evidence never displaces the description.
	assert.Equal(t, "Random or multiple cylinder misfire detected", master.GenericDescription)
	assert.InDelta(t, 0.9, master.DescriptionTrust, 1e-9)
	assert.Equal(t, 5, master.SeverityLevel)

	merged, err := db.ResolutionLog.Query().
		Where(
			resolutionlog.DocumentIDEQ(second),
			resolutionlog.ActionEQ(resolutionlog.ActionMerged),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, merged)
}

func TestStage_Process_CanonicalDescriptionIsDeterministic(t *testing.T) {
	ctx := context.Background()
	db := setupTestDatabase(t)
	stage := NewStage(db, setupTestQueue(t))

	docID := seedDocument(t, db, document.ProcessingStageResolving)
	chunk1 := seedChunk(t, db, docID, 0)
	chunk2 := seedChunk(t, db, docID, 1)

	// Equal trust and relevance: the tie must break on row ID, regardless
	// of insertion order.
	require.NoError(t, db.ExtractedDTC.Create().
		SetID("dtc-b").
		SetDocumentID(docID).
		SetCode("P0420").
		SetDescription("Cat converter not storing oxygen").
		SetSourceChunkID(chunk2).
		SetTrust(0.7).
		SetRelevance(0.7).
		Exec(ctx))
	require.NoError(t, db.ExtractedDTC.Create().
		SetID("dtc-a").
		SetDocumentID(docID).
		SetCode("P0420").
		SetDescription("Catalyst system efficiency below threshold").
		SetSourceChunkID(chunk1).
		SetTrust(0.7).
		SetRelevance(0.7).
		Exec(ctx))

	require.NoError(t, stage.Process(ctx, docID))

	master, err := db.DTCMaster.Query().
		Where(dtcmaster.CodeEQ("P0420")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Catalyst system efficiency below threshold", master.GenericDescription)
}

func TestStage_Process_ChunkDeleteCascadesProvenance(t *testing.T) {
	ctx := context.Background()
	db := setupTestDatabase(t)
	stage := NewStage(db, setupTestQueue(t))

	docID, chunk1, chunk2 := seedLeanConditionDocument(t, db)
	require.NoError(t, stage.Process(ctx, docID))

	require.NoError(t, db.DocumentChunk.DeleteOneID(chunk1).Exec(ctx))

	// Provenance rows of the deleted chunk go with it; the knowledge rows
	// they backed stay.
	orphaned, err := db.EntitySource.Query().
		Where(entitysource.ChunkIDEQ(chunk1)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, orphaned)

	remaining, err := db.EntitySource.Query().
		Where(entitysource.ChunkIDEQ(chunk2)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)

	exists, err := db.DTCMaster.Query().
		Where(dtcmaster.CodeEQ("P0171")).
		Exist(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}
