package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExtractedCause is a staged possible-cause observation for a DTC.
type ExtractedCause struct {
	ent.Schema
}

// Fields of the ExtractedCause.
func (ExtractedCause) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("document_id"),
		field.String("dtc_code"),
		field.Text("description"),
		field.String("likelihood").
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

// Indexes of the ExtractedCause.
func (ExtractedCause) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
		index.Fields("dtc_code"),
	}
}
