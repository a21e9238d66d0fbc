package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CrawlRequest holds the schema definition for a URL submitted for crawling.
// Completed and failed requests are retained for audit.
type CrawlRequest struct {
	ent.Schema
}

// Fields of the CrawlRequest.
func (CrawlRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("crawl_request_id").
			Unique().
			Immutable(),
		field.String("url").
			Unique(),
		field.Enum("status").
			Values("pending", "active", "completed", "failed").
			Default("pending"),
		field.Int("depth").
			Default(0).
			NonNegative(),
		field.Int("max_depth").
			Default(1).
			NonNegative(),
		field.String("parent_url").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the CrawlRequest.
func (CrawlRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
	}
}
