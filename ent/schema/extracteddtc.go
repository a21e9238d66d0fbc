package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExtractedDTC is a staged DTC observation produced by the extraction
// stage, prior to resolution into the knowledge graph.
type ExtractedDTC struct {
	ent.Schema
}

// Fields of the ExtractedDTC.
func (ExtractedDTC) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("document_id"),
		field.String("code").
			Comment("Canonical uppercase, validated against ^[PBCU][0-9A-F]{4}$"),
		field.Text("description").
			Optional(),
		field.String("category").
			Optional(),
		field.String("severity").
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

// Annotations of the ExtractedDTC.
func (ExtractedDTC) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_dtcs"},
	}
}

// Indexes of the ExtractedDTC.
func (ExtractedDTC) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
		index.Fields("code"),
	}
}
