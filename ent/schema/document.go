package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document holds the schema definition for an ingested source document.
type Document struct {
	ent.Schema
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("document_id").
			Unique().
			Immutable(),
		field.String("title").
			Default("Untitled"),
		field.String("source_url").
			Optional().
			Nillable(),
		field.String("content_hash").
			Unique().
			Comment("SHA-256 of the extracted text, used for ingest dedup"),
		field.String("mime_type").
			Default("text/plain"),
		field.String("blob_bucket").
			Optional().
			Nillable(),
		field.String("blob_key").
			Optional().
			Nillable(),
		field.Enum("processing_stage").
			Values("pending", "chunking", "embedding", "evaluating",
				"extracting", "resolving", "complete", "error").
			Default("pending"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("chunk_count").
			Default(0),
		field.String("document_category").
			Optional().
			Nillable().
			Comment("Majority vote over per-chunk categories, set at resolve time"),
		field.Float("confidence_score").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("chunks", DocumentChunk.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("processing_logs", ProcessingLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("processing_stage"),
		// The reaper scans for documents stuck in a stage.
		index.Fields("processing_stage", "updated_at"),
	}
}
