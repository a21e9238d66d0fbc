package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProcessingLog holds one append-only row per stage attempt per document.
type ProcessingLog struct {
	ent.Schema
}

// Fields of the ProcessingLog.
func (ProcessingLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("document_id"),
		field.String("stage"),
		field.Enum("status").
			Values("started", "completed", "error"),
		field.Text("message").
			Optional(),
		field.Int64("duration_ms").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ProcessingLog.
func (ProcessingLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("processing_logs").
			Field("document_id").
			Unique().
			Required(),
	}
}

// Indexes of the ProcessingLog.
func (ProcessingLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "created_at"),
		index.Fields("created_at"),
	}
}
