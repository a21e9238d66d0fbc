package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExtractedTSB is a staged technical-service-bulletin reference.
type ExtractedTSB struct {
	ent.Schema
}

// Fields of the ExtractedTSB.
func (ExtractedTSB) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("document_id"),
		field.String("tsb_number"),
		field.String("title").
			Optional(),
		field.String("affected_models").
			Optional(),
		field.JSON("related_dtc_codes", []string{}).
			Optional(),
		field.Text("summary").
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

// Annotations of the ExtractedTSB.
func (ExtractedTSB) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_tsbs"},
	}
}

// Indexes of the ExtractedTSB.
func (ExtractedTSB) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
		index.Fields("tsb_number"),
	}
}
