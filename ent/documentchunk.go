// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/chunkevaluation"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/ent/documentchunk"
)

// DocumentChunk is the model entity for the DocumentChunk schema.
type DocumentChunk struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// ChunkIndex holds the value of the "chunk_index" field.
	ChunkIndex int `json:"chunk_index,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// CharStart holds the value of the "char_start" field.
	CharStart int `json:"char_start,omitempty"`
	// CharEnd holds the value of the "char_end" field.
	CharEnd int `json:"char_end,omitempty"`
	// TokenCount holds the value of the "token_count" field.
	TokenCount int `json:"token_count,omitempty"`
	// Dense vector, dimension fixed by config (default 768)
	Embedding []float32 `json:"embedding,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentChunkQuery when eager-loading is set.
	Edges        DocumentChunkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentChunkEdges holds the relations/edges for other nodes in the graph.
type DocumentChunkEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// Evaluation holds the value of the evaluation edge.
	Evaluation *ChunkEvaluation `json:"evaluation,omitempty"`
	// Sources holds the value of the sources edge.
	Sources []*EntitySource `json:"sources,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentChunkEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// EvaluationOrErr returns the Evaluation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentChunkEdges) EvaluationOrErr() (*ChunkEvaluation, error) {
	if e.Evaluation != nil {
		return e.Evaluation, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: chunkevaluation.Label}
	}
	return nil, &NotLoadedError{edge: "evaluation"}
}

// SourcesOrErr returns the Sources value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentChunkEdges) SourcesOrErr() ([]*EntitySource, error) {
	if e.loadedTypes[2] {
		return e.Sources, nil
	}
	return nil, &NotLoadedError{edge: "sources"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentChunk) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentchunk.FieldEmbedding:
			values[i] = new([]byte)
		case documentchunk.FieldChunkIndex, documentchunk.FieldCharStart, documentchunk.FieldCharEnd, documentchunk.FieldTokenCount:
			values[i] = new(sql.NullInt64)
		case documentchunk.FieldID, documentchunk.FieldDocumentID, documentchunk.FieldContent:
			values[i] = new(sql.NullString)
		case documentchunk.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentChunk fields.
func (_m *DocumentChunk) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentchunk.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case documentchunk.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case documentchunk.FieldChunkIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_index", values[i])
			} else if value.Valid {
				_m.ChunkIndex = int(value.Int64)
			}
		case documentchunk.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case documentchunk.FieldCharStart:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field char_start", values[i])
			} else if value.Valid {
				_m.CharStart = int(value.Int64)
			}
		case documentchunk.FieldCharEnd:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field char_end", values[i])
			} else if value.Valid {
				_m.CharEnd = int(value.Int64)
			}
		case documentchunk.FieldTokenCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field token_count", values[i])
			} else if value.Valid {
				_m.TokenCount = int(value.Int64)
			}
		case documentchunk.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Embedding); err != nil {
					return fmt.Errorf("unmarshal field embedding: %w", err)
				}
			}
		case documentchunk.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentChunk.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentChunk) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the DocumentChunk entity.
func (_m *DocumentChunk) QueryDocument() *DocumentQuery {
	return NewDocumentChunkClient(_m.config).QueryDocument(_m)
}

// QueryEvaluation queries the "evaluation" edge of the DocumentChunk entity.
func (_m *DocumentChunk) QueryEvaluation() *ChunkEvaluationQuery {
	return NewDocumentChunkClient(_m.config).QueryEvaluation(_m)
}

// QuerySources queries the "sources" edge of the DocumentChunk entity.
func (_m *DocumentChunk) QuerySources() *EntitySourceQuery {
	return NewDocumentChunkClient(_m.config).QuerySources(_m)
}

// Update returns a builder for updating this DocumentChunk.
// Note that you need to call DocumentChunk.Unwrap() before calling this method if this DocumentChunk
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentChunk) Update() *DocumentChunkUpdateOne {
	return NewDocumentChunkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentChunk entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentChunk) Unwrap() *DocumentChunk {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentChunk is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentChunk) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentChunk(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("chunk_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkIndex))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("char_start=")
	builder.WriteString(fmt.Sprintf("%v", _m.CharStart))
	builder.WriteString(", ")
	builder.WriteString("char_end=")
	builder.WriteString(fmt.Sprintf("%v", _m.CharEnd))
	builder.WriteString(", ")
	builder.WriteString("token_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokenCount))
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DocumentChunks is a parsable slice of DocumentChunk.
type DocumentChunks []*DocumentChunk
