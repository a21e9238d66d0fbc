package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocumentChunk holds the schema definition for an indexed substring of a
// document. Chunks are immutable once created.
type DocumentChunk struct {
	ent.Schema
}

// Fields of the DocumentChunk.
func (DocumentChunk) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chunk_id").
			Unique().
			Immutable(),
		field.String("document_id"),
		field.Int("chunk_index").
			NonNegative(),
		field.Text("content"),
		field.Int("char_start"),
		field.Int("char_end"),
		field.Int("token_count").
			Default(0),
		field.JSON("embedding", []float32{}).
			Optional().
			Comment("Dense vector, dimension fixed by config (default 768)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the DocumentChunk.
func (DocumentChunk) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("chunks").
			Field("document_id").
			Unique().
			Required(),
		edge.To("evaluation", ChunkEvaluation.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sources", EntitySource.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the DocumentChunk.
func (DocumentChunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "chunk_index").
			Unique(),
	}
}
