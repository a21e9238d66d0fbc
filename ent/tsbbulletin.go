// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/tsbbulletin"
)

// TSBBulletin is the model entity for the TSBBulletin schema.
type TSBBulletin struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TsbNumber holds the value of the "tsb_number" field.
	TsbNumber string `json:"tsb_number,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// AffectedModels holds the value of the "affected_models" field.
	AffectedModels string `json:"affected_models,omitempty"`
	// RelatedDtcCodes holds the value of the "related_dtc_codes" field.
	RelatedDtcCodes []string `json:"related_dtc_codes,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// EvidenceCount holds the value of the "evidence_count" field.
	EvidenceCount int `json:"evidence_count,omitempty"`
	// AvgTrust holds the value of the "avg_trust" field.
	AvgTrust float64 `json:"avg_trust,omitempty"`
	// AvgRelevance holds the value of the "avg_relevance" field.
	AvgRelevance float64 `json:"avg_relevance,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TSBBulletin) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tsbbulletin.FieldRelatedDtcCodes:
			values[i] = new([]byte)
		case tsbbulletin.FieldAvgTrust, tsbbulletin.FieldAvgRelevance:
			values[i] = new(sql.NullFloat64)
		case tsbbulletin.FieldEvidenceCount:
			values[i] = new(sql.NullInt64)
		case tsbbulletin.FieldID, tsbbulletin.FieldTsbNumber, tsbbulletin.FieldTitle, tsbbulletin.FieldAffectedModels, tsbbulletin.FieldSummary:
			values[i] = new(sql.NullString)
		case tsbbulletin.FieldCreatedAt, tsbbulletin.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TSBBulletin fields.
func (_m *TSBBulletin) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tsbbulletin.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tsbbulletin.FieldTsbNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tsb_number", values[i])
			} else if value.Valid {
				_m.TsbNumber = value.String
			}
		case tsbbulletin.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case tsbbulletin.FieldAffectedModels:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field affected_models", values[i])
			} else if value.Valid {
				_m.AffectedModels = value.String
			}
		case tsbbulletin.FieldRelatedDtcCodes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field related_dtc_codes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RelatedDtcCodes); err != nil {
					return fmt.Errorf("unmarshal field related_dtc_codes: %w", err)
				}
			}
		case tsbbulletin.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case tsbbulletin.FieldEvidenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_count", values[i])
			} else if value.Valid {
				_m.EvidenceCount = int(value.Int64)
			}
		case tsbbulletin.FieldAvgTrust:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_trust", values[i])
			} else if value.Valid {
				_m.AvgTrust = value.Float64
			}
		case tsbbulletin.FieldAvgRelevance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_relevance", values[i])
			} else if value.Valid {
				_m.AvgRelevance = value.Float64
			}
		case tsbbulletin.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tsbbulletin.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TSBBulletin.
// This includes values selected through modifiers, order, etc.
func (_m *TSBBulletin) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TSBBulletin.
// Note that you need to call TSBBulletin.Unwrap() before calling this method if this TSBBulletin
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TSBBulletin) Update() *TSBBulletinUpdateOne {
	return NewTSBBulletinClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TSBBulletin entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TSBBulletin) Unwrap() *TSBBulletin {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TSBBulletin is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TSBBulletin) String() string {
	var builder strings.Builder
	builder.WriteString("TSBBulletin(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tsb_number=")
	builder.WriteString(_m.TsbNumber)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("affected_models=")
	builder.WriteString(_m.AffectedModels)
	builder.WriteString(", ")
	builder.WriteString("related_dtc_codes=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelatedDtcCodes))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
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
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TSBBulletins is a parsable slice of TSBBulletin.
type TSBBulletins []*TSBBulletin
