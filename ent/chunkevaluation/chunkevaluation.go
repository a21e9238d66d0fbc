// Code generated by ent, DO NOT EDIT.

package chunkevaluation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chunkevaluation type in the database.
	Label = "chunk_evaluation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "evaluation_id"
	// FieldChunkID holds the string denoting the chunk_id field in the database.
	FieldChunkID = "chunk_id"
	// FieldTrustScore holds the string denoting the trust_score field in the database.
	FieldTrustScore = "trust_score"
	// FieldRelevanceScore holds the string denoting the relevance_score field in the database.
	FieldRelevanceScore = "relevance_score"
	// FieldAutomotiveDomain holds the string denoting the automotive_domain field in the database.
	FieldAutomotiveDomain = "automotive_domain"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldModelUsed holds the string denoting the model_used field in the database.
	FieldModelUsed = "model_used"
	// FieldEvaluatedAt holds the string denoting the evaluated_at field in the database.
	FieldEvaluatedAt = "evaluated_at"
	// EdgeChunk holds the string denoting the chunk edge name in mutations.
	EdgeChunk = "chunk"
	// DocumentChunkFieldID holds the string denoting the ID field of the DocumentChunk.
	DocumentChunkFieldID = "chunk_id"
	// Table holds the table name of the chunkevaluation in the database.
	Table = "chunk_evaluations"
	// ChunkTable is the table that holds the chunk relation/edge.
	ChunkTable = "chunk_evaluations"
	// ChunkInverseTable is the table name for the DocumentChunk entity.
	// It exists in this package in order to avoid circular dependency with the "documentchunk" package.
	ChunkInverseTable = "document_chunks"
	// ChunkColumn is the table column denoting the chunk relation/edge.
	ChunkColumn = "chunk_id"
)

// Columns holds all SQL columns for chunkevaluation fields.
var Columns = []string{
	FieldID,
	FieldChunkID,
	FieldTrustScore,
	FieldRelevanceScore,
	FieldAutomotiveDomain,
	FieldReasoning,
	FieldModelUsed,
	FieldEvaluatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TrustScoreValidator is a validator for the "trust_score" field. It is called by the builders before save.
	TrustScoreValidator func(float64) error
	// RelevanceScoreValidator is a validator for the "relevance_score" field. It is called by the builders before save.
	RelevanceScoreValidator func(float64) error
	// DefaultEvaluatedAt holds the default value on creation for the "evaluated_at" field.
	DefaultEvaluatedAt func() time.Time
	// UpdateDefaultEvaluatedAt holds the default value on update for the "evaluated_at" field.
	UpdateDefaultEvaluatedAt func() time.Time
)

// AutomotiveDomain defines the type for the "automotive_domain" enum field.
type AutomotiveDomain string

// AutomotiveDomainUnknown is the default value of the AutomotiveDomain enum.
const DefaultAutomotiveDomain = AutomotiveDomainUnknown

// AutomotiveDomain values.
const (
	AutomotiveDomainObd          AutomotiveDomain = "obd"
	AutomotiveDomainElectrical   AutomotiveDomain = "electrical"
	AutomotiveDomainEngine       AutomotiveDomain = "engine"
	AutomotiveDomainTransmission AutomotiveDomain = "transmission"
	AutomotiveDomainBrakes       AutomotiveDomain = "brakes"
	AutomotiveDomainSuspension   AutomotiveDomain = "suspension"
	AutomotiveDomainHvac         AutomotiveDomain = "hvac"
	AutomotiveDomainBody         AutomotiveDomain = "body"
	AutomotiveDomainGeneral      AutomotiveDomain = "general"
	AutomotiveDomainUnknown      AutomotiveDomain = "unknown"
)

func (ad AutomotiveDomain) String() string {
	return string(ad)
}

// AutomotiveDomainValidator is a validator for the "automotive_domain" field enum values. It is called by the builders before save.
func AutomotiveDomainValidator(ad AutomotiveDomain) error {
	switch ad {
	case AutomotiveDomainObd, AutomotiveDomainElectrical, AutomotiveDomainEngine, AutomotiveDomainTransmission, AutomotiveDomainBrakes, AutomotiveDomainSuspension, AutomotiveDomainHvac, AutomotiveDomainBody, AutomotiveDomainGeneral, AutomotiveDomainUnknown:
		return nil
	default:
		return fmt.Errorf("chunkevaluation: invalid enum value for automotive_domain field: %q", ad)
	}
}

// OrderOption defines the ordering options for the ChunkEvaluation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChunkID orders the results by the chunk_id field.
func ByChunkID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkID, opts...).ToFunc()
}

// ByTrustScore orders the results by the trust_score field.
func ByTrustScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrustScore, opts...).ToFunc()
}

// ByRelevanceScore orders the results by the relevance_score field.
func ByRelevanceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelevanceScore, opts...).ToFunc()
}

// ByAutomotiveDomain orders the results by the automotive_domain field.
func ByAutomotiveDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutomotiveDomain, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByModelUsed orders the results by the model_used field.
func ByModelUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelUsed, opts...).ToFunc()
}

// ByEvaluatedAt orders the results by the evaluated_at field.
func ByEvaluatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluatedAt, opts...).ToFunc()
}

// ByChunkField orders the results by chunk field.
func ByChunkField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChunkStep(), sql.OrderByField(field, opts...))
	}
}
func newChunkStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChunkInverseTable, DocumentChunkFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, ChunkTable, ChunkColumn),
	)
}
