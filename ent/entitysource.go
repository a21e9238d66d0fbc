// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/documentchunk"
	"github.com/autodiag/refinery/ent/entitysource"
)

// EntitySource is the model entity for the EntitySource schema.
type EntitySource struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EntityTable holds the value of the "entity_table" field.
	EntityTable string `json:"entity_table,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID string `json:"entity_id,omitempty"`
	// ChunkID holds the value of the "chunk_id" field.
	ChunkID string `json:"chunk_id,omitempty"`
	// TrustScore holds the value of the "trust_score" field.
	TrustScore float64 `json:"trust_score,omitempty"`
	// RelevanceScore holds the value of the "relevance_score" field.
	RelevanceScore float64 `json:"relevance_score,omitempty"`
	// ExtractedAt holds the value of the "extracted_at" field.
	ExtractedAt time.Time `json:"extracted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EntitySourceQuery when eager-loading is set.
	Edges        EntitySourceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EntitySourceEdges holds the relations/edges for other nodes in the graph.
type EntitySourceEdges struct {
	// Chunk holds the value of the chunk edge.
	Chunk *DocumentChunk `json:"chunk,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChunkOrErr returns the Chunk value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EntitySourceEdges) ChunkOrErr() (*DocumentChunk, error) {
	if e.Chunk != nil {
		return e.Chunk, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: documentchunk.Label}
	}
	return nil, &NotLoadedError{edge: "chunk"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntitySource) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entitysource.FieldTrustScore, entitysource.FieldRelevanceScore:
			values[i] = new(sql.NullFloat64)
		case entitysource.FieldID, entitysource.FieldEntityTable, entitysource.FieldEntityID, entitysource.FieldChunkID:
			values[i] = new(sql.NullString)
		case entitysource.FieldExtractedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntitySource fields.
func (_m *EntitySource) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entitysource.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entitysource.FieldEntityTable:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_table", values[i])
			} else if value.Valid {
				_m.EntityTable = value.String
			}
		case entitysource.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = value.String
			}
		case entitysource.FieldChunkID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_id", values[i])
			} else if value.Valid {
				_m.ChunkID = value.String
			}
		case entitysource.FieldTrustScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field trust_score", values[i])
			} else if value.Valid {
				_m.TrustScore = value.Float64
			}
		case entitysource.FieldRelevanceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance_score", values[i])
			} else if value.Valid {
				_m.RelevanceScore = value.Float64
			}
		case entitysource.FieldExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_at", values[i])
			} else if value.Valid {
				_m.ExtractedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EntitySource.
// This includes values selected through modifiers, order, etc.
func (_m *EntitySource) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChunk queries the "chunk" edge of the EntitySource entity.
func (_m *EntitySource) QueryChunk() *DocumentChunkQuery {
	return NewEntitySourceClient(_m.config).QueryChunk(_m)
}

// Update returns a builder for updating this EntitySource.
// Note that you need to call EntitySource.Unwrap() before calling this method if this EntitySource
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntitySource) Update() *EntitySourceUpdateOne {
	return NewEntitySourceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntitySource entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntitySource) Unwrap() *EntitySource {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntitySource is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntitySource) String() string {
	var builder strings.Builder
	builder.WriteString("EntitySource(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("entity_table=")
	builder.WriteString(_m.EntityTable)
	builder.WriteString(", ")
	builder.WriteString("entity_id=")
	builder.WriteString(_m.EntityID)
	builder.WriteString(", ")
	builder.WriteString("chunk_id=")
	builder.WriteString(_m.ChunkID)
	builder.WriteString(", ")
	builder.WriteString("trust_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrustScore))
	builder.WriteString(", ")
	builder.WriteString("relevance_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelevanceScore))
	builder.WriteString(", ")
	builder.WriteString("extracted_at=")
	builder.WriteString(_m.ExtractedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EntitySources is a parsable slice of EntitySource.
type EntitySources []*EntitySource
