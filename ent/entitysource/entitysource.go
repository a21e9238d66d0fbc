// Code generated by ent, DO NOT EDIT.

package entitysource

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the entitysource type in the database.
	Label = "entity_source"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEntityTable holds the string denoting the entity_table field in the database.
	FieldEntityTable = "entity_table"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldChunkID holds the string denoting the chunk_id field in the database.
	FieldChunkID = "chunk_id"
	// FieldTrustScore holds the string denoting the trust_score field in the database.
	FieldTrustScore = "trust_score"
	// FieldRelevanceScore holds the string denoting the relevance_score field in the database.
	FieldRelevanceScore = "relevance_score"
	// FieldExtractedAt holds the string denoting the extracted_at field in the database.
	FieldExtractedAt = "extracted_at"
	// EdgeChunk holds the string denoting the chunk edge name in mutations.
	EdgeChunk = "chunk"
	// DocumentChunkFieldID holds the string denoting the ID field of the DocumentChunk.
	DocumentChunkFieldID = "chunk_id"
	// Table holds the table name of the entitysource in the database.
	Table = "entity_sources"
	// ChunkTable is the table that holds the chunk relation/edge.
	ChunkTable = "entity_sources"
	// ChunkInverseTable is the table name for the DocumentChunk entity.
	// It exists in this package in order to avoid circular dependency with the "documentchunk" package.
	ChunkInverseTable = "document_chunks"
	// ChunkColumn is the table column denoting the chunk relation/edge.
	ChunkColumn = "chunk_id"
)

// Columns holds all SQL columns for entitysource fields.
var Columns = []string{
	FieldID,
	FieldEntityTable,
	FieldEntityID,
	FieldChunkID,
	FieldTrustScore,
	FieldRelevanceScore,
	FieldExtractedAt,
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
	// DefaultTrustScore holds the default value on creation for the "trust_score" field.
	DefaultTrustScore float64
	// DefaultRelevanceScore holds the default value on creation for the "relevance_score" field.
	DefaultRelevanceScore float64
	// DefaultExtractedAt holds the default value on creation for the "extracted_at" field.
	DefaultExtractedAt func() time.Time
)

// OrderOption defines the ordering options for the EntitySource queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEntityTable orders the results by the entity_table field.
func ByEntityTable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityTable, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
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

// ByExtractedAt orders the results by the extracted_at field.
func ByExtractedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedAt, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.M2O, true, ChunkTable, ChunkColumn),
	)
}
