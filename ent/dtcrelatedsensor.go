// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/dtcrelatedsensor"
)

// DTCRelatedSensor is the model entity for the DTCRelatedSensor schema.
type DTCRelatedSensor struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DtcMasterID holds the value of the "dtc_master_id" field.
	DtcMasterID string `json:"dtc_master_id,omitempty"`
	// SensorID holds the value of the "sensor_id" field.
	SensorID string `json:"sensor_id,omitempty"`
	// PriorityRank holds the value of the "priority_rank" field.
	PriorityRank int `json:"priority_rank,omitempty"`
	// EvidenceCount holds the value of the "evidence_count" field.
	EvidenceCount int `json:"evidence_count,omitempty"`
	// AvgTrust holds the value of the "avg_trust" field.
	AvgTrust float64 `json:"avg_trust,omitempty"`
	// AvgRelevance holds the value of the "avg_relevance" field.
	AvgRelevance float64 `json:"avg_relevance,omitempty"`
	// ConflictFlag holds the value of the "conflict_flag" field.
	ConflictFlag bool `json:"conflict_flag,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DTCRelatedSensor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dtcrelatedsensor.FieldConflictFlag:
			values[i] = new(sql.NullBool)
		case dtcrelatedsensor.FieldAvgTrust, dtcrelatedsensor.FieldAvgRelevance:
			values[i] = new(sql.NullFloat64)
		case dtcrelatedsensor.FieldPriorityRank, dtcrelatedsensor.FieldEvidenceCount:
			values[i] = new(sql.NullInt64)
		case dtcrelatedsensor.FieldID, dtcrelatedsensor.FieldDtcMasterID, dtcrelatedsensor.FieldSensorID:
			values[i] = new(sql.NullString)
		case dtcrelatedsensor.FieldCreatedAt, dtcrelatedsensor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DTCRelatedSensor fields.
func (_m *DTCRelatedSensor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dtcrelatedsensor.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dtcrelatedsensor.FieldDtcMasterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dtc_master_id", values[i])
			} else if value.Valid {
				_m.DtcMasterID = value.String
			}
		case dtcrelatedsensor.FieldSensorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sensor_id", values[i])
			} else if value.Valid {
				_m.SensorID = value.String
			}
		case dtcrelatedsensor.FieldPriorityRank:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority_rank", values[i])
			} else if value.Valid {
				_m.PriorityRank = int(value.Int64)
			}
		case dtcrelatedsensor.FieldEvidenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_count", values[i])
			} else if value.Valid {
				_m.EvidenceCount = int(value.Int64)
			}
		case dtcrelatedsensor.FieldAvgTrust:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_trust", values[i])
			} else if value.Valid {
				_m.AvgTrust = value.Float64
			}
		case dtcrelatedsensor.FieldAvgRelevance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_relevance", values[i])
			} else if value.Valid {
				_m.AvgRelevance = value.Float64
			}
		case dtcrelatedsensor.FieldConflictFlag:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field conflict_flag", values[i])
			} else if value.Valid {
				_m.ConflictFlag = value.Bool
			}
		case dtcrelatedsensor.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dtcrelatedsensor.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DTCRelatedSensor.
// This includes values selected through modifiers, order, etc.
func (_m *DTCRelatedSensor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DTCRelatedSensor.
// Note that you need to call DTCRelatedSensor.Unwrap() before calling this method if this DTCRelatedSensor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DTCRelatedSensor) Update() *DTCRelatedSensorUpdateOne {
	return NewDTCRelatedSensorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DTCRelatedSensor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DTCRelatedSensor) Unwrap() *DTCRelatedSensor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DTCRelatedSensor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DTCRelatedSensor) String() string {
	var builder strings.Builder
	builder.WriteString("DTCRelatedSensor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("dtc_master_id=")
	builder.WriteString(_m.DtcMasterID)
	builder.WriteString(", ")
	builder.WriteString("sensor_id=")
	builder.WriteString(_m.SensorID)
	builder.WriteString(", ")
	builder.WriteString("priority_rank=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityRank))
	builder.WriteString(", ")
	builder.WriteString("evidence_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvidenceCount))
	builder.WriteString(", ")
	builder.WriteString("avg_trust=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgTrust))
	builder.WriteString(", ")
	builder.WriteString("avg_relevance=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgRelevance))
	builder.WriteString(", ")
	builder.WriteString("conflict_flag=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConflictFlag))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DTCRelatedSensors is a parsable slice of DTCRelatedSensor.
type DTCRelatedSensors []*DTCRelatedSensor
