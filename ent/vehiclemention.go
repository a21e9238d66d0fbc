// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/vehiclemention"
)

// VehicleMention is the model entity for the VehicleMention schema.
type VehicleMention struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// Make holds the value of the "make" field.
	Make string `json:"make,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// YearStart holds the value of the "year_start" field.
	YearStart *int `json:"year_start,omitempty"`
	// YearEnd holds the value of the "year_end" field.
	YearEnd *int `json:"year_end,omitempty"`
	// Engine holds the value of the "engine" field.
	Engine string `json:"engine,omitempty"`
	// Transmission holds the value of the "transmission" field.
	Transmission string `json:"transmission,omitempty"`
	// RelatedDtcCodes holds the value of the "related_dtc_codes" field.
	RelatedDtcCodes []string `json:"related_dtc_codes,omitempty"`
	// Linked holds the value of the "linked" field.
	Linked bool `json:"linked,omitempty"`
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
func (*VehicleMention) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vehiclemention.FieldRelatedDtcCodes:
			values[i] = new([]byte)
		case vehiclemention.FieldLinked:
			values[i] = new(sql.NullBool)
		case vehiclemention.FieldTrust, vehiclemention.FieldRelevance:
			values[i] = new(sql.NullFloat64)
		case vehiclemention.FieldYearStart, vehiclemention.FieldYearEnd:
			values[i] = new(sql.NullInt64)
		case vehiclemention.FieldID, vehiclemention.FieldDocumentID, vehiclemention.FieldMake, vehiclemention.FieldModel, vehiclemention.FieldEngine, vehiclemention.FieldTransmission, vehiclemention.FieldSourceChunkID:
			values[i] = new(sql.NullString)
		case vehiclemention.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VehicleMention fields.
func (_m *VehicleMention) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vehiclemention.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case vehiclemention.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case vehiclemention.FieldMake:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field make", values[i])
			} else if value.Valid {
				_m.Make = value.String
			}
		case vehiclemention.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case vehiclemention.FieldYearStart:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year_start", values[i])
			} else if value.Valid {
				_m.YearStart = new(int)
				*_m.YearStart = int(value.Int64)
			}
		case vehiclemention.FieldYearEnd:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year_end", values[i])
			} else if value.Valid {
				_m.YearEnd = new(int)
				*_m.YearEnd = int(value.Int64)
			}
		case vehiclemention.FieldEngine:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engine", values[i])
			} else if value.Valid {
				_m.Engine = value.String
			}
		case vehiclemention.FieldTransmission:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transmission", values[i])
			} else if value.Valid {
				_m.Transmission = value.String
			}
		case vehiclemention.FieldRelatedDtcCodes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field related_dtc_codes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RelatedDtcCodes); err != nil {
					return fmt.Errorf("unmarshal field related_dtc_codes: %w", err)
				}
			}
		case vehiclemention.FieldLinked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field linked", values[i])
			} else if value.Valid {
				_m.Linked = value.Bool
			}
		case vehiclemention.FieldSourceChunkID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_chunk_id", values[i])
			} else if value.Valid {
				_m.SourceChunkID = value.String
			}
		case vehiclemention.FieldTrust:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field trust", values[i])
			} else if value.Valid {
				_m.Trust = value.Float64
			}
		case vehiclemention.FieldRelevance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance", values[i])
			} else if value.Valid {
				_m.Relevance = value.Float64
			}
		case vehiclemention.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the VehicleMention.
// This includes values selected through modifiers, order, etc.
func (_m *VehicleMention) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VehicleMention.
// Note that you need to call VehicleMention.Unwrap() before calling this method if this VehicleMention
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VehicleMention) Update() *VehicleMentionUpdateOne {
	return NewVehicleMentionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VehicleMention entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VehicleMention) Unwrap() *VehicleMention {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VehicleMention is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VehicleMention) String() string {
	var builder strings.Builder
	builder.WriteString("VehicleMention(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("make=")
	builder.WriteString(_m.Make)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	if v := _m.YearStart; v != nil {
		builder.WriteString("year_start=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.YearEnd; v != nil {
		builder.WriteString("year_end=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("engine=")
	builder.WriteString(_m.Engine)
	builder.WriteString(", ")
	builder.WriteString("transmission=")
	builder.WriteString(_m.Transmission)
	builder.WriteString(", ")
	builder.WriteString("related_dtc_codes=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelatedDtcCodes))
	builder.WriteString(", ")
	builder.WriteString("linked=")
	builder.WriteString(fmt.Sprintf("%v", _m.Linked))
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

// VehicleMentions is a parsable slice of VehicleMention.
type VehicleMentions []*VehicleMention
