// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/extractedstep"
)

// ExtractedStep is the model entity for the ExtractedStep schema.
type ExtractedStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// DtcCode holds the value of the "dtc_code" field.
	DtcCode string `json:"dtc_code,omitempty"`
	// StepOrder holds the value of the "step_order" field.
	StepOrder int `json:"step_order,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// ToolsRequired holds the value of the "tools_required" field.
	ToolsRequired string `json:"tools_required,omitempty"`
	// ExpectedValues holds the value of the "expected_values" field.
	ExpectedValues string `json:"expected_values,omitempty"`
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
func (*ExtractedStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedstep.FieldTrust, extractedstep.FieldRelevance:
			values[i] = new(sql.NullFloat64)
		case extractedstep.FieldStepOrder:
			values[i] = new(sql.NullInt64)
		case extractedstep.FieldID, extractedstep.FieldDocumentID, extractedstep.FieldDtcCode, extractedstep.FieldDescription, extractedstep.FieldToolsRequired, extractedstep.FieldExpectedValues, extractedstep.FieldSourceChunkID:
			values[i] = new(sql.NullString)
		case extractedstep.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedStep fields.
func (_m *ExtractedStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedstep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case extractedstep.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case extractedstep.FieldDtcCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dtc_code", values[i])
			} else if value.Valid {
				_m.DtcCode = value.String
			}
		case extractedstep.FieldStepOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_order", values[i])
			} else if value.Valid {
				_m.StepOrder = int(value.Int64)
			}
		case extractedstep.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case extractedstep.FieldToolsRequired:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tools_required", values[i])
			} else if value.Valid {
				_m.ToolsRequired = value.String
			}
		case extractedstep.FieldExpectedValues:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expected_values", values[i])
			} else if value.Valid {
				_m.ExpectedValues = value.String
			}
		case extractedstep.FieldSourceChunkID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_chunk_id", values[i])
			} else if value.Valid {
				_m.SourceChunkID = value.String
			}
		case extractedstep.FieldTrust:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field trust", values[i])
			} else if value.Valid {
				_m.Trust = value.Float64
			}
		case extractedstep.FieldRelevance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance", values[i])
			} else if value.Valid {
				_m.Relevance = value.Float64
			}
		case extractedstep.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedStep.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExtractedStep.
// Note that you need to call ExtractedStep.Unwrap() before calling this method if this ExtractedStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedStep) Update() *ExtractedStepUpdateOne {
	return NewExtractedStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedStep) Unwrap() *ExtractedStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedStep) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("dtc_code=")
	builder.WriteString(_m.DtcCode)
	builder.WriteString(", ")
	builder.WriteString("step_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepOrder))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("tools_required=")
	builder.WriteString(_m.ToolsRequired)
	builder.WriteString(", ")
	builder.WriteString("expected_values=")
	builder.WriteString(_m.ExpectedValues)
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

// ExtractedSteps is a parsable slice of ExtractedStep.
type ExtractedSteps []*ExtractedStep
