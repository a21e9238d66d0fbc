package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DTCRelatedSensor links a DTC to a sensor involved in diagnosing it,
// carrying the usual evidence aggregates.
type DTCRelatedSensor struct {
	ent.Schema
}

// Fields of the DTCRelatedSensor.
func (DTCRelatedSensor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("dtc_master_id"),
		field.String("sensor_id"),
		field.Int("priority_rank").
			Default(1),
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

// Annotations of the DTCRelatedSensor.
func (DTCRelatedSensor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "dtc_related_sensors"},
	}
}

// Indexes of the DTCRelatedSensor.
func (DTCRelatedSensor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dtc_master_id", "sensor_id").
			Unique(),
	}
}
