package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChunkEvaluation holds the per-chunk trust/relevance verdict produced by
// the evaluation stage. Exactly one row per chunk; re-evaluation overwrites.
type ChunkEvaluation struct {
	ent.Schema
}

// Fields of the ChunkEvaluation.
func (ChunkEvaluation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("evaluation_id").
			Unique().
			Immutable(),
		field.String("chunk_id").
			Unique(),
		field.Float("trust_score").
			Min(0).
			Max(1),
		field.Float("relevance_score").
			Min(0).
			Max(1),
		field.Enum("automotive_domain").
			Values("obd", "electrical", "engine", "transmission", "brakes",
				"suspension", "hvac", "body", "general", "unknown").
			Default("unknown"),
		field.Text("reasoning").
			Optional(),
		field.String("model_used").
			Optional(),
		field.Time("evaluated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ChunkEvaluation.
func (ChunkEvaluation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chunk", DocumentChunk.Type).
			Ref("evaluation").
			Field("chunk_id").
			Unique().
			Required(),
	}
}

// Indexes of the ChunkEvaluation.
func (ChunkEvaluation) Indexes() []ent.Index {
	return []ent.Index{
		// The relevance gate filters on this column.
		index.Fields("relevance_score"),
	}
}
