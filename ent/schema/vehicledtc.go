package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VehicleDTC is the junction row linking a DTC to a vehicle it is known to
// affect.
type VehicleDTC struct {
	ent.Schema
}

// Fields of the VehicleDTC.
func (VehicleDTC) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("vehicle_id"),
		field.String("dtc_master_id"),
		field.String("source_chunk_id").
			Optional(),
		field.Float("confidence_score").
			Default(0.5),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Annotations of the VehicleDTC.
func (VehicleDTC) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vehicle_dtcs"},
	}
}

// Indexes of the VehicleDTC.
func (VehicleDTC) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vehicle_id", "dtc_master_id").
			Unique(),
	}
}
