package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DTCCause is a canonical possible cause for a DTC. Deduplicated on
// (dtc_master_id, fingerprint), where the fingerprint is the normalized
// cause text.
type DTCCause struct {
	ent.Schema
}

// Fields of the DTCCause.
func (DTCCause) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("dtc_master_id"),
		field.Text("cause"),
		field.String("fingerprint"),
		field.Float("probability_weight").
			Default(0.5).
			Min(0).
			Max(1),
		field.Int("evidence_count").
			Default(1),
		field.Float("avg_trust").
			Default(0),
		field.Float("avg_relevance").
			Default(0),
		field.Bool("conflict_flag").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Annotations of the DTCCause.
func (DTCCause) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "dtc_possible_causes"},
	}
}

// Indexes of the DTCCause.
func (DTCCause) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dtc_master_id", "fingerprint").
			Unique(),
	}
}
