package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VehicleMention is a staged vehicle observation awaiting linkage to the
// canonical vehicle catalog.
type VehicleMention struct {
	ent.Schema
}

// Fields of the VehicleMention.
func (VehicleMention) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("document_id"),
		field.String("make"),
		field.String("model").
			Optional(),
		field.Int("year_start").
			Optional().
			Nillable(),
		field.Int("year_end").
			Optional().
			Nillable(),
		field.String("engine").
			Optional(),
		field.String("transmission").
			Optional(),
		field.JSON("related_dtc_codes", []string{}).
			Optional(),
		field.Bool("linked").
			Default(false),
		field.String("source_chunk_id"),
		field.Float("trust").
			Default(0),
		field.Float("relevance").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the VehicleMention.
func (VehicleMention) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "linked"),
	}
}
