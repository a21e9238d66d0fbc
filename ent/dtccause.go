// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/dtccause"
)

// DTCCause is the model entity for the DTCCause schema.
type DTCCause struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DtcMasterID holds the value of the "dtc_master_id" field.
	DtcMasterID string `json:"dtc_master_id,omitempty"`
	// Cause holds the value of the "cause" field.
	Cause string `json:"cause,omitempty"`
	// Fingerprint holds the value of the "fingerprint" field.
	Fingerprint string `json:"fingerprint,omitempty"`
	// ProbabilityWeight holds the value of the "probability_weight" field.
	ProbabilityWeight float64 `json:"probability_weight,omitempty"`
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
func (*DTCCause) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dtccause.FieldConflictFlag:
			values[i] = new(sql.NullBool)
		case dtccause.FieldProbabilityWeight, dtccause.FieldAvgTrust, dtccause.FieldAvgRelevance:
			values[i] = new(sql.NullFloat64)
		case dtccause.FieldEvidenceCount:
			values[i] = new(sql.NullInt64)
		case dtccause.FieldID, dtccause.FieldDtcMasterID, dtccause.FieldCause, dtccause.FieldFingerprint:
			values[i] = new(sql.NullString)
		case dtccause.FieldCreatedAt, dtccause.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DTCCause fields.
func (_m *DTCCause) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dtccause.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dtccause.FieldDtcMasterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dtc_master_id", values[i])
			} else if value.Valid {
				_m.DtcMasterID = value.String
			}
		case dtccause.FieldCause:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cause", values[i])
			} else if value.Valid {
				_m.Cause = value.String
			}
		case dtccause.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case dtccause.FieldProbabilityWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field probability_weight", values[i])
			} else if value.Valid {
				_m.ProbabilityWeight = value.Float64
			}
		case dtccause.FieldEvidenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_count", values[i])
			} else if value.Valid {
				_m.EvidenceCount = int(value.Int64)
			}
		case dtccause.FieldAvgTrust:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_trust", values[i])
			} else if value.Valid {
				_m.AvgTrust = value.Float64
			}
		case dtccause.FieldAvgRelevance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_relevance", values[i])
			} else if value.Valid {
				_m.AvgRelevance = value.Float64
			}
		case dtccause.FieldConflictFlag:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field conflict_flag", values[i])
			} else if value.Valid {
				_m.ConflictFlag = value.Bool
			}
		case dtccause.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dtccause.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DTCCause.
// This includes values selected through modifiers, order, etc.
func (_m *DTCCause) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DTCCause.
// Note that you need to call DTCCause.Unwrap() before calling this method if this DTCCause
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DTCCause) Update() *DTCCauseUpdateOne {
	return NewDTCCauseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DTCCause entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DTCCause) Unwrap() *DTCCause {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DTCCause is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DTCCause) String() string {
	var builder strings.Builder
	builder.WriteString("DTCCause(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("dtc_master_id=")
	builder.WriteString(_m.DtcMasterID)
	builder.WriteString(", ")
	builder.WriteString("cause=")
	builder.WriteString(_m.Cause)
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("probability_weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProbabilityWeight))
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

// DTCCauses is a parsable slice of DTCCause.
type DTCCauses []*DTCCause
