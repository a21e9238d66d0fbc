package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// TSBBulletin is a reference-table row for a technical service bulletin,
// keyed by its bulletin number.
type TSBBulletin struct {
	ent.Schema
}

// Annotations of the TSBBulletin.
func (TSBBulletin) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tsb_bulletins"},
	}
}

// Fields of the TSBBulletin.
func (TSBBulletin) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tsb_number").
			Unique(),
		field.String("title").
			Optional(),
		field.String("affected_models").
			Optional(),
		field.JSON("related_dtc_codes", []string{}).
			Optional(),
		field.Text("summary").
			Optional(),
		field.Int("evidence_count").
			Default(1),
		field.Float("avg_trust").
			Default(0),
		field.Float("avg_relevance").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
