// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/extractedtsb"
)

// ExtractedTSB is the model entity for the ExtractedTSB schema.
type ExtractedTSB struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
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
func (*ExtractedTSB) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedtsb.FieldRelatedDtcCodes:
			values[i] = new([]byte)
		case extractedtsb.FieldTrust, extractedtsb.FieldRelevance:
			values[i] = new(sql.NullFloat64)
		case extractedtsb.FieldID, extractedtsb.FieldDocumentID, extractedtsb.FieldTsbNumber, extractedtsb.FieldTitle, extractedtsb.FieldAffectedModels, extractedtsb.FieldSummary, extractedtsb.FieldSourceChunkID:
			values[i] = new(sql.NullString)
		case extractedtsb.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedTSB fields.
func (_m *ExtractedTSB) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedtsb.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case extractedtsb.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case extractedtsb.FieldTsbNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tsb_number", values[i])
			} else if value.Valid {
				_m.TsbNumber = value.String
			}
		case extractedtsb.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case extractedtsb.FieldAffectedModels:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field affected_models", values[i])
			} else if value.Valid {
				_m.AffectedModels = value.String
			}
		case extractedtsb.FieldRelatedDtcCodes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field related_dtc_codes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RelatedDtcCodes); err != nil {
					return fmt.Errorf("unmarshal field related_dtc_codes: %w", err)
				}
			}
		case extractedtsb.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case extractedtsb.FieldSourceChunkID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_chunk_id", values[i])
			} else if value.Valid {
				_m.SourceChunkID = value.String
			}
		case extractedtsb.FieldTrust:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field trust", values[i])
			} else if value.Valid {
				_m.Trust = value.Float64
			}
		case extractedtsb.FieldRelevance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance", values[i])
			} else if value.Valid {
				_m.Relevance = value.Float64
			}
		case extractedtsb.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedTSB.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedTSB) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExtractedTSB.
// Note that you need to call ExtractedTSB.Unwrap() before calling this method if this ExtractedTSB
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedTSB) Update() *ExtractedTSBUpdateOne {
	return NewExtractedTSBClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedTSB entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedTSB) Unwrap() *ExtractedTSB {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedTSB is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedTSB) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedTSB(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
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

// ExtractedTSBs is a parsable slice of ExtractedTSB.
type ExtractedTSBs []*ExtractedTSB
