// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/dtcmaster"
)

// DTCMaster is the model entity for the DTCMaster schema.
type DTCMaster struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Code holds the value of the "code" field.
	Code string `json:"code,omitempty"`
	// SystemCategory holds the value of the "system_category" field.
	SystemCategory string `json:"system_category,omitempty"`
	// GenericDescription holds the value of the "generic_description" field.
	GenericDescription string `json:"generic_description,omitempty"`
	// Trust of the observation that supplied generic_description; replaced only by strictly higher trust
	DescriptionTrust float64 `json:"description_trust,omitempty"`
	// SeverityLevel holds the value of the "severity_level" field.
	SeverityLevel int `json:"severity_level,omitempty"`
	// EmissionsRelated holds the value of the "emissions_related" field.
	EmissionsRelated bool `json:"emissions_related,omitempty"`
	// EvidenceCount holds the value of the "evidence_count" field.
	EvidenceCount int `json:"evidence_count,omitempty"`
	// AvgTrust holds the value of the "avg_trust" field.
	AvgTrust float64 `json:"avg_trust,omitempty"`
	// AvgRelevance holds the value of the "avg_relevance" field.
	AvgRelevance float64 `json:"avg_relevance,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
	// ConflictFlag holds the value of the "conflict_flag" field.
	ConflictFlag bool `json:"conflict_flag,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DTCMaster) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dtcmaster.FieldEmissionsRelated, dtcmaster.FieldConflictFlag:
			values[i] = new(sql.NullBool)
		case dtcmaster.FieldDescriptionTrust, dtcmaster.FieldAvgTrust, dtcmaster.FieldAvgRelevance, dtcmaster.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case dtcmaster.FieldSeverityLevel, dtcmaster.FieldEvidenceCount:
			values[i] = new(sql.NullInt64)
		case dtcmaster.FieldID, dtcmaster.FieldCode, dtcmaster.FieldSystemCategory, dtcmaster.FieldGenericDescription:
			values[i] = new(sql.NullString)
		case dtcmaster.FieldCreatedAt, dtcmaster.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DTCMaster fields.
func (_m *DTCMaster) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dtcmaster.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dtcmaster.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case dtcmaster.FieldSystemCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_category", values[i])
			} else if value.Valid {
				_m.SystemCategory = value.String
			}
		case dtcmaster.FieldGenericDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generic_description", values[i])
			} else if value.Valid {
				_m.GenericDescription = value.String
			}
		case dtcmaster.FieldDescriptionTrust:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field description_trust", values[i])
			} else if value.Valid {
				_m.DescriptionTrust = value.Float64
			}
		case dtcmaster.FieldSeverityLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field severity_level", values[i])
			} else if value.Valid {
				_m.SeverityLevel = int(value.Int64)
			}
		case dtcmaster.FieldEmissionsRelated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field emissions_related", values[i])
			} else if value.Valid {
				_m.EmissionsRelated = value.Bool
			}
		case dtcmaster.FieldEvidenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_count", values[i])
			} else if value.Valid {
				_m.EvidenceCount = int(value.Int64)
			}
		case dtcmaster.FieldAvgTrust:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_trust", values[i])
			} else if value.Valid {
				_m.AvgTrust = value.Float64
			}
		case dtcmaster.FieldAvgRelevance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_relevance", values[i])
			} else if value.Valid {
				_m.AvgRelevance = value.Float64
			}
		case dtcmaster.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = value.Float64
			}
		case dtcmaster.FieldConflictFlag:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field conflict_flag", values[i])
			} else if value.Valid {
				_m.ConflictFlag = value.Bool
			}
		case dtcmaster.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dtcmaster.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DTCMaster.
// This includes values selected through modifiers, order, etc.
func (_m *DTCMaster) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DTCMaster.
// Note that you need to call DTCMaster.Unwrap() before calling this method if this DTCMaster
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DTCMaster) Update() *DTCMasterUpdateOne {
	return NewDTCMasterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DTCMaster entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DTCMaster) Unwrap() *DTCMaster {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DTCMaster is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DTCMaster) String() string {
	var builder strings.Builder
	builder.WriteString("DTCMaster(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("system_category=")
	builder.WriteString(_m.SystemCategory)
	builder.WriteString(", ")
	builder.WriteString("generic_description=")
	builder.WriteString(_m.GenericDescription)
	builder.WriteString(", ")
	builder.WriteString("description_trust=")
	builder.WriteString(fmt.Sprintf("%v", _m.DescriptionTrust))
	builder.WriteString(", ")
	builder.WriteString("severity_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.SeverityLevel))
	builder.WriteString(", ")
	builder.WriteString("emissions_related=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmissionsRelated))
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
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
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

// DTCMasters is a parsable slice of DTCMaster.
type DTCMasters []*DTCMaster
