package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DTCMaster is the canonical knowledge-graph row for a diagnostic trouble
// code. Keyed by the uppercase code; shared by every extraction that
// contributes evidence for it.
type DTCMaster struct {
	ent.Schema
}

// Fields of the DTCMaster.
func (DTCMaster) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("dtc_master_id").
			Unique().
			Immutable(),
		field.String("code").
			Unique().
			MaxLen(5),
		field.String("system_category").
			Default("unknown"),
		field.Text("generic_description").
			Optional(),
		field.Float("description_trust").
			Default(0).
			Comment("Trust of the observation that supplied generic_description; replaced only by strictly higher trust"),
		field.Int("severity_level").
			Default(3).
			Min(1).
			Max(5),
		field.Bool("emissions_related").
			Default(false),
		field.Int("evidence_count").
			Default(0),
		field.Float("avg_trust").
			Default(0),
		field.Float("avg_relevance").
			Default(0),
		field.Float("confidence_score").
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

// Annotations of the DTCMaster.
func (DTCMaster) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "dtc_master"},
	}
}

// Indexes of the DTCMaster.
func (DTCMaster) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("system_category"),
	}
}
