package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/autodiag/refinery/ent/processinglog"
	"github.com/autodiag/refinery/pkg/database"
)

// Recorder writes per-stage attempt rows to the processing log. Rows are
// append-only; failures to write them never fail the job itself.
type Recorder struct {
	db *database.Client
}

// NewRecorder returns a Recorder backed by db.
func NewRecorder(db *database.Client) *Recorder {
	return &Recorder{db: db}
}

// Started records the beginning of a stage attempt.
func (r *Recorder) Started(ctx context.Context, docID, stage string) {
	r.write(ctx, docID, stage, processinglog.StatusStarted, "", nil)
}

// Completed records a successful stage attempt with its wall time.
func (r *Recorder) Completed(ctx context.Context, docID, stage, message string, duration time.Duration) {
	ms := duration.Milliseconds()
	r.write(ctx, docID, stage, processinglog.StatusCompleted, message, &ms)
}

// Error records a failed stage attempt with its wall time.
func (r *Recorder) Error(ctx context.Context, docID, stage, message string, duration time.Duration) {
	ms := duration.Milliseconds()
	r.write(ctx, docID, stage, processinglog.StatusError, message, &ms)
}

func (r *Recorder) write(ctx context.Context, docID, stage string, status processinglog.Status, message string, durationMS *int64) {
	create := r.db.ProcessingLog.Create().
		SetID(uuid.NewString()).
		SetDocumentID(docID).
		SetStage(stage).
		SetStatus(status)
	if message != "" {
		create = create.SetMessage(message)
	}
	if durationMS != nil {
		create = create.SetDurationMs(*durationMS)
	}
	if err := create.Exec(ctx); err != nil {
		slog.Warn("Failed to write processing log row",
			"document_id", docID, "stage", stage, "status", status, "error", err)
	}
}
