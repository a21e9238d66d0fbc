// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/extracteddtc"
)

// ExtractedDTC is the model entity for the ExtractedDTC schema.
type ExtractedDTC struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// Canonical uppercase, validated against ^[PBCU][0-9A-F]{4}$
	Code string `json:"code,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity string `json:"severity,omitempty"`
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
func (*ExtractedDTC) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extracteddtc.FieldTrust, extracteddtc.FieldRelevance:
			values[i] = new(sql.NullFloat64)
		case extracteddtc.FieldID, extracteddtc.FieldDocumentID, extracteddtc.FieldCode, extracteddtc.FieldDescription, extracteddtc.FieldCategory, extracteddtc.FieldSeverity, extracteddtc.FieldSourceChunkID:
			values[i] = new(sql.NullString)
		case extracteddtc.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedDTC fields.
func (_m *ExtractedDTC) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extracteddtc.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case extracteddtc.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case extracteddtc.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case extracteddtc.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case extracteddtc.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case extracteddtc.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = value.String
			}
		case extracteddtc.FieldSourceChunkID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_chunk_id", values[i])
			} else if value.Valid {
				_m.SourceChunkID = value.String
			}
		case extracteddtc.FieldTrust:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field trust", values[i])
			} else if value.Valid {
				_m.Trust = value.Float64
			}
		case extracteddtc.FieldRelevance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance", values[i])
			} else if value.Valid {
				_m.Relevance = value.Float64
			}
		case extracteddtc.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedDTC.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedDTC) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExtractedDTC.
// Note that you need to call ExtractedDTC.Unwrap() before calling this method if this ExtractedDTC
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedDTC) Update() *ExtractedDTCUpdateOne {
	return NewExtractedDTCClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedDTC entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedDTC) Unwrap() *ExtractedDTC {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedDTC is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedDTC) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedDTC(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(_m.Severity)
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

// ExtractedDTCs is a parsable slice of ExtractedDTC.
type ExtractedDTCs []*ExtractedDTC
