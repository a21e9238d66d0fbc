package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Vehicle is a canonical catalog row. Mentions are matched on
// (make, model) with year-range overlap; unmatched mentions create rows.
type Vehicle struct {
	ent.Schema
}

// Fields of the Vehicle.
func (Vehicle) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("vehicle_id").
			Unique().
			Immutable(),
		field.String("make"),
		field.String("model"),
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
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Vehicle.
func (Vehicle) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("make", "model"),
	}
}
