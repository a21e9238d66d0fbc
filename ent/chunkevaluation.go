// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/chunkevaluation"
	"github.com/autodiag/refinery/ent/documentchunk"
)

// ChunkEvaluation is the model entity for the ChunkEvaluation schema.
type ChunkEvaluation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ChunkID holds the value of the "chunk_id" field.
	ChunkID string `json:"chunk_id,omitempty"`
	// TrustScore holds the value of the "trust_score" field.
	TrustScore float64 `json:"trust_score,omitempty"`
	// RelevanceScore holds the value of the "relevance_score" field.
	RelevanceScore float64 `json:"relevance_score,omitempty"`
	// AutomotiveDomain holds the value of the "automotive_domain" field.
	AutomotiveDomain chunkevaluation.AutomotiveDomain `json:"automotive_domain,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// ModelUsed holds the value of the "model_used" field.
	ModelUsed string `json:"model_used,omitempty"`
	// EvaluatedAt holds the value of the "evaluated_at" field.
	EvaluatedAt time.Time `json:"evaluated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChunkEvaluationQuery when eager-loading is set.
	Edges        ChunkEvaluationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChunkEvaluationEdges holds the relations/edges for other nodes in the graph.
type ChunkEvaluationEdges struct {
	// Chunk holds the value of the chunk edge.
	Chunk *DocumentChunk `json:"chunk,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChunkOrErr returns the Chunk value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChunkEvaluationEdges) ChunkOrErr() (*DocumentChunk, error) {
	if e.Chunk != nil {
		return e.Chunk, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: documentchunk.Label}
	}
	return nil, &NotLoadedError{edge: "chunk"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChunkEvaluation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chunkevaluation.FieldTrustScore, chunkevaluation.FieldRelevanceScore:
			values[i] = new(sql.NullFloat64)
		case chunkevaluation.FieldID, chunkevaluation.FieldChunkID, chunkevaluation.FieldAutomotiveDomain, chunkevaluation.FieldReasoning, chunkevaluation.FieldModelUsed:
			values[i] = new(sql.NullString)
		case chunkevaluation.FieldEvaluatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChunkEvaluation fields.
func (_m *ChunkEvaluation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chunkevaluation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case chunkevaluation.FieldChunkID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_id", values[i])
			} else if value.Valid {
				_m.ChunkID = value.String
			}
		case chunkevaluation.FieldTrustScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field trust_score", values[i])
			} else if value.Valid {
				_m.TrustScore = value.Float64
			}
		case chunkevaluation.FieldRelevanceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance_score", values[i])
			} else if value.Valid {
				_m.RelevanceScore = value.Float64
			}
		case chunkevaluation.FieldAutomotiveDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field automotive_domain", values[i])
			} else if value.Valid {
				_m.AutomotiveDomain = chunkevaluation.AutomotiveDomain(value.String)
			}
		case chunkevaluation.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case chunkevaluation.FieldModelUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_used", values[i])
			} else if value.Valid {
				_m.ModelUsed = value.String
			}
		case chunkevaluation.FieldEvaluatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field evaluated_at", values[i])
			} else if value.Valid {
				_m.EvaluatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChunkEvaluation.
// This includes values selected through modifiers, order, etc.
func (_m *ChunkEvaluation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChunk queries the "chunk" edge of the ChunkEvaluation entity.
func (_m *ChunkEvaluation) QueryChunk() *DocumentChunkQuery {
	return NewChunkEvaluationClient(_m.config).QueryChunk(_m)
}

// Update returns a builder for updating this ChunkEvaluation.
// Note that you need to call ChunkEvaluation.Unwrap() before calling this method if this ChunkEvaluation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChunkEvaluation) Update() *ChunkEvaluationUpdateOne {
	return NewChunkEvaluationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChunkEvaluation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChunkEvaluation) Unwrap() *ChunkEvaluation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChunkEvaluation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChunkEvaluation) String() string {
	var builder strings.Builder
	builder.WriteString("ChunkEvaluation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("chunk_id=")
	builder.WriteString(_m.ChunkID)
	builder.WriteString(", ")
	builder.WriteString("trust_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrustScore))
	builder.WriteString(", ")
	builder.WriteString("relevance_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelevanceScore))
	builder.WriteString(", ")
	builder.WriteString("automotive_domain=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutomotiveDomain))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("model_used=")
	builder.WriteString(_m.ModelUsed)
	builder.WriteString(", ")
	builder.WriteString("evaluated_at=")
	builder.WriteString(_m.EvaluatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChunkEvaluations is a parsable slice of ChunkEvaluation.
type ChunkEvaluations []*ChunkEvaluation
