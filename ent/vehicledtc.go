// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/vehicledtc"
)

// VehicleDTC is the model entity for the VehicleDTC schema.
type VehicleDTC struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// VehicleID holds the value of the "vehicle_id" field.
	VehicleID string `json:"vehicle_id,omitempty"`
	// DtcMasterID holds the value of the "dtc_master_id" field.
	DtcMasterID string `json:"dtc_master_id,omitempty"`
	// SourceChunkID holds the value of the "source_chunk_id" field.
	SourceChunkID string `json:"source_chunk_id,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VehicleDTC) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vehicledtc.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case vehicledtc.FieldID, vehicledtc.FieldVehicleID, vehicledtc.FieldDtcMasterID, vehicledtc.FieldSourceChunkID:
			values[i] = new(sql.NullString)
		case vehicledtc.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VehicleDTC fields.
func (_m *VehicleDTC) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vehicledtc.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case vehicledtc.FieldVehicleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_id", values[i])
			} else if value.Valid {
				_m.VehicleID = value.String
			}
		case vehicledtc.FieldDtcMasterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dtc_master_id", values[i])
			} else if value.Valid {
				_m.DtcMasterID = value.String
			}
		case vehicledtc.FieldSourceChunkID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_chunk_id", values[i])
			} else if value.Valid {
				_m.SourceChunkID = value.String
			}
		case vehicledtc.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = value.Float64
			}
		case vehicledtc.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the VehicleDTC.
// This includes values selected through modifiers, order, etc.
func (_m *VehicleDTC) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VehicleDTC.
// Note that you need to call VehicleDTC.Unwrap() before calling this method if this VehicleDTC
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VehicleDTC) Update() *VehicleDTCUpdateOne {
	return NewVehicleDTCClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VehicleDTC entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VehicleDTC) Unwrap() *VehicleDTC {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VehicleDTC is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VehicleDTC) String() string {
	var builder strings.Builder
	builder.WriteString("VehicleDTC(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("vehicle_id=")
	builder.WriteString(_m.VehicleID)
	builder.WriteString(", ")
	builder.WriteString("dtc_master_id=")
	builder.WriteString(_m.DtcMasterID)
	builder.WriteString(", ")
	builder.WriteString("source_chunk_id=")
	builder.WriteString(_m.SourceChunkID)
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VehicleDTCs is a parsable slice of VehicleDTC.
type VehicleDTCs []*VehicleDTC
