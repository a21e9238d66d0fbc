package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExtractedCategory is a per-chunk document-category vote; the resolve
// stage rolls these up into the document's category by majority.
type ExtractedCategory struct {
	ent.Schema
}

// Fields of the ExtractedCategory.
func (ExtractedCategory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("document_id"),
		field.String("category"),
		field.String("source_chunk_id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ExtractedCategory.
func (ExtractedCategory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
	}
}
