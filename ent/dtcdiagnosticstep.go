// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/dtcdiagnosticstep"
)

// DTCDiagnosticStep is the model entity for the DTCDiagnosticStep schema.
type DTCDiagnosticStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DtcMasterID holds the value of the "dtc_master_id" field.
	DtcMasterID string `json:"dtc_master_id,omitempty"`
	// StepOrder holds the value of the "step_order" field.
	StepOrder int `json:"step_order,omitempty"`
	// Instruction holds the value of the "instruction" field.
	Instruction string `json:"instruction,omitempty"`
	// Fingerprint holds the value of the "fingerprint" field.
	Fingerprint string `json:"fingerprint,omitempty"`
	// ToolsRequired holds the value of the "tools_required" field.
	ToolsRequired string `json:"tools_required,omitempty"`
	// ExpectedValues holds the value of the "expected_values" field.
	ExpectedValues string `json:"expected_values,omitempty"`
	// PassNextStepID holds the value of the "pass_next_step_id" field.
	PassNextStepID *string `json:"pass_next_step_id,omitempty"`
	// FailNextStepID holds the value of the "fail_next_step_id" field.
	FailNextStepID *string `json:"fail_next_step_id,omitempty"`
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
func (*DTCDiagnosticStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dtcdiagnosticstep.FieldConflictFlag:
			values[i] = new(sql.NullBool)
		case dtcdiagnosticstep.FieldAvgTrust, dtcdiagnosticstep.FieldAvgRelevance:
			values[i] = new(sql.NullFloat64)
		case dtcdiagnosticstep.FieldStepOrder, dtcdiagnosticstep.FieldEvidenceCount:
			values[i] = new(sql.NullInt64)
		case dtcdiagnosticstep.FieldID, dtcdiagnosticstep.FieldDtcMasterID, dtcdiagnosticstep.FieldInstruction, dtcdiagnosticstep.FieldFingerprint, dtcdiagnosticstep.FieldToolsRequired, dtcdiagnosticstep.FieldExpectedValues, dtcdiagnosticstep.FieldPassNextStepID, dtcdiagnosticstep.FieldFailNextStepID:
			values[i] = new(sql.NullString)
		case dtcdiagnosticstep.FieldCreatedAt, dtcdiagnosticstep.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DTCDiagnosticStep fields.
func (_m *DTCDiagnosticStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dtcdiagnosticstep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dtcdiagnosticstep.FieldDtcMasterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dtc_master_id", values[i])
			} else if value.Valid {
				_m.DtcMasterID = value.String
			}
		case dtcdiagnosticstep.FieldStepOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_order", values[i])
			} else if value.Valid {
				_m.StepOrder = int(value.Int64)
			}
		case dtcdiagnosticstep.FieldInstruction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instruction", values[i])
			} else if value.Valid {
				_m.Instruction = value.String
			}
		case dtcdiagnosticstep.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case dtcdiagnosticstep.FieldToolsRequired:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tools_required", values[i])
			} else if value.Valid {
				_m.ToolsRequired = value.String
			}
		case dtcdiagnosticstep.FieldExpectedValues:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expected_values", values[i])
			} else if value.Valid {
				_m.ExpectedValues = value.String
			}
		case dtcdiagnosticstep.FieldPassNextStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pass_next_step_id", values[i])
			} else if value.Valid {
				_m.PassNextStepID = new(string)
				*_m.PassNextStepID = value.String
			}
		case dtcdiagnosticstep.FieldFailNextStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fail_next_step_id", values[i])
			} else if value.Valid {
				_m.FailNextStepID = new(string)
				*_m.FailNextStepID = value.String
			}
		case dtcdiagnosticstep.FieldEvidenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_count", values[i])
			} else if value.Valid {
				_m.EvidenceCount = int(value.Int64)
			}
		case dtcdiagnosticstep.FieldAvgTrust:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_trust", values[i])
			} else if value.Valid {
				_m.AvgTrust = value.Float64
			}
		case dtcdiagnosticstep.FieldAvgRelevance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_relevance", values[i])
			} else if value.Valid {
				_m.AvgRelevance = value.Float64
			}
		case dtcdiagnosticstep.FieldConflictFlag:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field conflict_flag", values[i])
			} else if value.Valid {
				_m.ConflictFlag = value.Bool
			}
		case dtcdiagnosticstep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dtcdiagnosticstep.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DTCDiagnosticStep.
// This includes values selected through modifiers, order, etc.
func (_m *DTCDiagnosticStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DTCDiagnosticStep.
// Note that you need to call DTCDiagnosticStep.Unwrap() before calling this method if this DTCDiagnosticStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DTCDiagnosticStep) Update() *DTCDiagnosticStepUpdateOne {
	return NewDTCDiagnosticStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DTCDiagnosticStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DTCDiagnosticStep) Unwrap() *DTCDiagnosticStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DTCDiagnosticStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DTCDiagnosticStep) String() string {
	var builder strings.Builder
	builder.WriteString("DTCDiagnosticStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("dtc_master_id=")
	builder.WriteString(_m.DtcMasterID)
	builder.WriteString(", ")
	builder.WriteString("step_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepOrder))
	builder.WriteString(", ")
	builder.WriteString("instruction=")
	builder.WriteString(_m.Instruction)
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("tools_required=")
	builder.WriteString(_m.ToolsRequired)
	builder.WriteString(", ")
	builder.WriteString("expected_values=")
	builder.WriteString(_m.ExpectedValues)
	builder.WriteString(", ")
	if v := _m.PassNextStepID; v != nil {
		builder.WriteString("pass_next_step_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FailNextStepID; v != nil {
		builder.WriteString("fail_next_step_id=")
		builder.WriteString(*v)
	}
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

// DTCDiagnosticSteps is a parsable slice of DTCDiagnosticStep.
type DTCDiagnosticSteps []*DTCDiagnosticStep
