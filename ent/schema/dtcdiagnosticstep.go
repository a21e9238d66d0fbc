package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DTCDiagnosticStep is a canonical diagnostic step for a DTC. Steps form a
// decision tree: pass/fail pointers reference sibling rows and are walked
// one level at a time, never loaded eagerly.
type DTCDiagnosticStep struct {
	ent.Schema
}

// Fields of the DTCDiagnosticStep.
func (DTCDiagnosticStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("dtc_master_id"),
		field.Int("step_order").
			Default(1),
		field.Text("instruction"),
		field.String("fingerprint"),
		field.Text("tools_required").
			Optional(),
		field.Text("expected_values").
			Optional(),
		field.String("pass_next_step_id").
			Optional().
			Nillable(),
		field.String("fail_next_step_id").
			Optional().
			Nillable(),
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

// Annotations of the DTCDiagnosticStep.
func (DTCDiagnosticStep) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "dtc_diagnostic_steps"},
	}
}

// Indexes of the DTCDiagnosticStep.
func (DTCDiagnosticStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dtc_master_id", "fingerprint").
			Unique(),
		index.Fields("dtc_master_id", "step_order"),
	}
}
