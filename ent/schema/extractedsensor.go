package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExtractedSensor is a staged sensor observation; a sensor can relate to
// several DTC codes at once.
type ExtractedSensor struct {
	ent.Schema
}

// Fields of the ExtractedSensor.
func (ExtractedSensor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("document_id"),
		field.String("name"),
		field.String("sensor_type").
			Optional(),
		field.String("typical_range").
			Optional(),
		field.String("unit").
			Optional(),
		field.JSON("related_dtc_codes", []string{}).
			Optional(),
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

// Indexes of the ExtractedSensor.
func (ExtractedSensor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
	}
}
