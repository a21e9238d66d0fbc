package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Sensor is a reference-table row: insert-or-lookup on name.
type Sensor struct {
	ent.Schema
}

// Fields of the Sensor.
func (Sensor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sensor_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.String("sensor_type").
			Optional(),
		field.String("typical_range").
			Optional(),
		field.String("unit").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
