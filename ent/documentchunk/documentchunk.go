// Code generated by ent, DO NOT EDIT.

package documentchunk

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the documentchunk type in the database.
	Label = "document_chunk"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "chunk_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldChunkIndex holds the string denoting the chunk_index field in the database.
	FieldChunkIndex = "chunk_index"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldCharStart holds the string denoting the char_start field in the database.
	FieldCharStart = "char_start"
	// FieldCharEnd holds the string denoting the char_end field in the database.
	FieldCharEnd = "char_end"
	// FieldTokenCount holds the string denoting the token_count field in the database.
	FieldTokenCount = "token_count"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// EdgeEvaluation holds the string denoting the evaluation edge name in mutations.
	EdgeEvaluation = "evaluation"
	// EdgeSources holds the string denoting the sources edge name in mutations.
	EdgeSources = "sources"
	// DocumentFieldID holds the string denoting the ID field of the Document.
	DocumentFieldID = "document_id"
	// ChunkEvaluationFieldID holds the string denoting the ID field of the ChunkEvaluation.
	ChunkEvaluationFieldID = "evaluation_id"
	// EntitySourceFieldID holds the string denoting the ID field of the EntitySource.
	EntitySourceFieldID = "id"
	// Table holds the table name of the documentchunk in the database.
	Table = "document_chunks"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "document_chunks"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
	// EvaluationTable is the table that holds the evaluation relation/edge.
	EvaluationTable = "chunk_evaluations"
	// EvaluationInverseTable is the table name for the ChunkEvaluation entity.
	// It exists in this package in order to avoid circular dependency with the "chunkevaluation" package.
	EvaluationInverseTable = "chunk_evaluations"
	// EvaluationColumn is the table column denoting the evaluation relation/edge.
	EvaluationColumn = "chunk_id"
	// SourcesTable is the table that holds the sources relation/edge.
	SourcesTable = "entity_sources"
	// SourcesInverseTable is the table name for the EntitySource entity.
	// It exists in this package in order to avoid circular dependency with the "entitysource" package.
	SourcesInverseTable = "entity_sources"
	// SourcesColumn is the table column denoting the sources relation/edge.
	SourcesColumn = "chunk_id"
)

// Columns holds all SQL columns for documentchunk fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldChunkIndex,
	FieldContent,
	FieldCharStart,
	FieldCharEnd,
	FieldTokenCount,
	FieldEmbedding,
	FieldCreatedAt,
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
	// ChunkIndexValidator is a validator for the "chunk_index" field. It is called by the builders before save.
	ChunkIndexValidator func(int) error
	// DefaultTokenCount holds the default value on creation for the "token_count" field.
	DefaultTokenCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the DocumentChunk queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByChunkIndex orders the results by the chunk_index field.
func ByChunkIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkIndex, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByCharStart orders the results by the char_start field.
func ByCharStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCharStart, opts...).ToFunc()
}

// ByCharEnd orders the results by the char_end field.
func ByCharEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCharEnd, opts...).ToFunc()
}

// ByTokenCount orders the results by the token_count field.
func ByTokenCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}

// ByEvaluationField orders the results by evaluation field.
func ByEvaluationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvaluationStep(), sql.OrderByField(field, opts...))
	}
}

// BySourcesCount orders the results by sources count.
func BySourcesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSourcesStep(), opts...)
	}
}

// BySources orders the results by sources terms.
func BySources(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourcesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, DocumentFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
func newEvaluationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvaluationInverseTable, ChunkEvaluationFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, EvaluationTable, EvaluationColumn),
	)
}
func newSourcesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourcesInverseTable, EntitySourceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SourcesTable, SourcesColumn),
	)
}
