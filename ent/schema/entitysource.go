package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntitySource is the append-only provenance link from a knowledge-graph
// row back to the chunk that evidenced it. The unique key makes evidence
// replay idempotent: re-resolving the same (entity, chunk) pair records
// nothing new.
type EntitySource struct {
	ent.Schema
}

// Fields of the EntitySource.
func (EntitySource) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("entity_table"),
		field.String("entity_id"),
		field.String("chunk_id"),
		field.Float("trust_score").
			Default(0),
		field.Float("relevance_score").
			Default(0),
		field.Time("extracted_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EntitySource.
func (EntitySource) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chunk", DocumentChunk.Type).
			Ref("sources").
			Field("chunk_id").
			Unique().
			Required(),
	}
}

// Indexes of the EntitySource.
func (EntitySource) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_table", "entity_id", "chunk_id").
			Unique(),
		index.Fields("chunk_id"),
	}
}
