// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/extractedcategory"
)

// ExtractedCategory is the model entity for the ExtractedCategory schema.
type ExtractedCategory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// SourceChunkID holds the value of the "source_chunk_id" field.
	SourceChunkID string `json:"source_chunk_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedCategory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedcategory.FieldID, extractedcategory.FieldDocumentID, extractedcategory.FieldCategory, extractedcategory.FieldSourceChunkID:
			values[i] = new(sql.NullString)
		case extractedcategory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedCategory fields.
func (_m *ExtractedCategory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedcategory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case extractedcategory.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case extractedcategory.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case extractedcategory.FieldSourceChunkID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_chunk_id", values[i])
			} else if value.Valid {
				_m.SourceChunkID = value.String
			}
		case extractedcategory.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedCategory.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedCategory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExtractedCategory.
// Note that you need to call ExtractedCategory.Unwrap() before calling this method if this ExtractedCategory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedCategory) Update() *ExtractedCategoryUpdateOne {
	return NewExtractedCategoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedCategory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedCategory) Unwrap() *ExtractedCategory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedCategory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedCategory) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedCategory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("source_chunk_id=")
	builder.WriteString(_m.SourceChunkID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedCategories is a parsable slice of ExtractedCategory.
type ExtractedCategories []*ExtractedCategory
