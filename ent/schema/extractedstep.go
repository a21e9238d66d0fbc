package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExtractedStep is a staged diagnostic-step observation for a DTC.
type ExtractedStep struct {
	ent.Schema
}

// Fields of the ExtractedStep.
func (ExtractedStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("document_id"),
		field.String("dtc_code"),
		field.Int("step_order").
			Default(0),
		field.Text("description"),
		field.Text("tools_required").
			Optional(),
		field.Text("expected_values").
			Optional(),
		field.String("source_chunk_id"),
		field.Float("trust").
			Default(0),
		field.Float("relevance").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ExtractedStep.
func (ExtractedStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
		index.Fields("dtc_code", "step_order"),
	}
}
