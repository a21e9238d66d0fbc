package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResolutionLog is one append-only row per action taken during a resolve
// run; all rows of a run share its run_id.
type ResolutionLog struct {
	ent.Schema
}

// Fields of the ResolutionLog.
func (ResolutionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("run_id"),
		field.String("document_id"),
		field.Enum("action").
			Values("created", "updated", "merged", "rejected"),
		field.String("entity_table").
			Optional(),
		field.String("entity_id").
			Optional(),
		field.JSON("details", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ResolutionLog.
func (ResolutionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("document_id"),
		index.Fields("created_at"),
	}
}
