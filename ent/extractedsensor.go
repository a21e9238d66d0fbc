// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/extractedsensor"
)

// ExtractedSensor is the model entity for the ExtractedSensor schema.
type ExtractedSensor struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// SensorType holds the value of the "sensor_type" field.
	SensorType string `json:"sensor_type,omitempty"`
	// TypicalRange holds the value of the "typical_range" field.
	TypicalRange string `json:"typical_range,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// RelatedDtcCodes holds the value of the "related_dtc_codes" field.
	RelatedDtcCodes []string `json:"related_dtc_codes,omitempty"`
	// SourceChunkID holds the value of the "source_chunk_id" field.
	SourceChunkID string `json:"source_chunk_id,omitempty"`
	// Trust holds the value of the "trust" field.
	Trust float64 `json:"trust,omitempty"`
	// Relevance holds the value of the "relevance" field.
	Relevance float64 `json:"relevance,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedSensor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedsensor.FieldRelatedDtcCodes:
			values[i] = new([]byte)
		case extractedsensor.FieldTrust, extractedsensor.FieldRelevance:
			values[i] = new(sql.NullFloat64)
		case extractedsensor.FieldID, extractedsensor.FieldDocumentID, extractedsensor.FieldName, extractedsensor.FieldSensorType, extractedsensor.FieldTypicalRange, extractedsensor.FieldUnit, extractedsensor.FieldSourceChunkID:
			values[i] = new(sql.NullString)
		case extractedsensor.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedSensor fields.
func (_m *ExtractedSensor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedsensor.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case extractedsensor.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case extractedsensor.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case extractedsensor.FieldSensorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sensor_type", values[i])
			} else if value.Valid {
				_m.SensorType = value.String
			}
		case extractedsensor.FieldTypicalRange:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field typical_range", values[i])
			} else if value.Valid {
				_m.TypicalRange = value.String
			}
		case extractedsensor.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case extractedsensor.FieldRelatedDtcCodes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field related_dtc_codes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RelatedDtcCodes); err != nil {
					return fmt.Errorf("unmarshal field related_dtc_codes: %w", err)
				}
			}
		case extractedsensor.FieldSourceChunkID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_chunk_id", values[i])
			} else if value.Valid {
				_m.SourceChunkID = value.String
			}
		case extractedsensor.FieldTrust:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field trust", values[i])
			} else if value.Valid {
				_m.Trust = value.Float64
			}
		case extractedsensor.FieldRelevance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance", values[i])
			} else if value.Valid {
				_m.Relevance = value.Float64
			}
		case extractedsensor.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedSensor.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedSensor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExtractedSensor.
// Note that you need to call ExtractedSensor.Unwrap() before calling this method if this ExtractedSensor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedSensor) Update() *ExtractedSensorUpdateOne {
	return NewExtractedSensorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedSensor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedSensor) Unwrap() *ExtractedSensor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedSensor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedSensor) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedSensor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("sensor_type=")
	builder.WriteString(_m.SensorType)
	builder.WriteString(", ")
	builder.WriteString("typical_range=")
	builder.WriteString(_m.TypicalRange)
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteString(", ")
	builder.WriteString("related_dtc_codes=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelatedDtcCodes))
	builder.WriteString(", ")
	builder.WriteString("source_chunk_id=")
	builder.WriteString(_m.SourceChunkID)
	builder.WriteString(", ")
	builder.WriteString("trust=")
	builder.WriteString(fmt.Sprintf("%v", _m.Trust))
	builder.WriteString(", ")
	builder.WriteString("relevance=")
	builder.WriteString(fmt.Sprintf("%v", _m.Relevance))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedSensors is a parsable slice of ExtractedSensor.
type ExtractedSensors []*ExtractedSensor
