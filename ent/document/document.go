// Code generated by ent, DO NOT EDIT.

package document

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "document_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldMimeType holds the string denoting the mime_type field in the database.
	FieldMimeType = "mime_type"
	// FieldBlobBucket holds the string denoting the blob_bucket field in the database.
	FieldBlobBucket = "blob_bucket"
	// FieldBlobKey holds the string denoting the blob_key field in the database.
	FieldBlobKey = "blob_key"
	// FieldProcessingStage holds the string denoting the processing_stage field in the database.
	FieldProcessingStage = "processing_stage"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldChunkCount holds the string denoting the chunk_count field in the database.
	FieldChunkCount = "chunk_count"
	// FieldDocumentCategory holds the string denoting the document_category field in the database.
	FieldDocumentCategory = "document_category"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeChunks holds the string denoting the chunks edge name in mutations.
	EdgeChunks = "chunks"
	// EdgeProcessingLogs holds the string denoting the processing_logs edge name in mutations.
	EdgeProcessingLogs = "processing_logs"
	// DocumentChunkFieldID holds the string denoting the ID field of the DocumentChunk.
	DocumentChunkFieldID = "chunk_id"
	// ProcessingLogFieldID holds the string denoting the ID field of the ProcessingLog.
	ProcessingLogFieldID = "log_id"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// ChunksTable is the table that holds the chunks relation/edge.
	ChunksTable = "document_chunks"
	// ChunksInverseTable is the table name for the DocumentChunk entity.
	// It exists in this package in order to avoid circular dependency with the "documentchunk" package.
	ChunksInverseTable = "document_chunks"
	// ChunksColumn is the table column denoting the chunks relation/edge.
	ChunksColumn = "document_id"
	// ProcessingLogsTable is the table that holds the processing_logs relation/edge.
	ProcessingLogsTable = "processing_logs"
	// ProcessingLogsInverseTable is the table name for the ProcessingLog entity.
	// It exists in this package in order to avoid circular dependency with the "processinglog" package.
	ProcessingLogsInverseTable = "processing_logs"
	// ProcessingLogsColumn is the table column denoting the processing_logs relation/edge.
	ProcessingLogsColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldSourceURL,
	FieldContentHash,
	FieldMimeType,
	FieldBlobBucket,
	FieldBlobKey,
	FieldProcessingStage,
	FieldErrorMessage,
	FieldChunkCount,
	FieldDocumentCategory,
	FieldConfidenceScore,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultTitle holds the default value on creation for the "title" field.
	DefaultTitle string
	// DefaultMimeType holds the default value on creation for the "mime_type" field.
	DefaultMimeType string
	// DefaultChunkCount holds the default value on creation for the "chunk_count" field.
	DefaultChunkCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ProcessingStage defines the type for the "processing_stage" enum field.
type ProcessingStage string

// ProcessingStagePending is the default value of the ProcessingStage enum.
const DefaultProcessingStage = ProcessingStagePending

// ProcessingStage values.
const (
	ProcessingStagePending    ProcessingStage = "pending"
	ProcessingStageChunking   ProcessingStage = "chunking"
	ProcessingStageEmbedding  ProcessingStage = "embedding"
	ProcessingStageEvaluating ProcessingStage = "evaluating"
	ProcessingStageExtracting ProcessingStage = "extracting"
	ProcessingStageResolving  ProcessingStage = "resolving"
	ProcessingStageComplete   ProcessingStage = "complete"
	ProcessingStageError      ProcessingStage = "error"
)

func (ps ProcessingStage) String() string {
	return string(ps)
}

// ProcessingStageValidator is a validator for the "processing_stage" field enum values. It is called by the builders before save.
func ProcessingStageValidator(ps ProcessingStage) error {
	switch ps {
	case ProcessingStagePending, ProcessingStageChunking, ProcessingStageEmbedding, ProcessingStageEvaluating, ProcessingStageExtracting, ProcessingStageResolving, ProcessingStageComplete, ProcessingStageError:
		return nil
	default:
		return fmt.Errorf("document: invalid enum value for processing_stage field: %q", ps)
	}
}

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByMimeType orders the results by the mime_type field.
func ByMimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeType, opts...).ToFunc()
}

// ByBlobBucket orders the results by the blob_bucket field.
func ByBlobBucket(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlobBucket, opts...).ToFunc()
}

// ByBlobKey orders the results by the blob_key field.
func ByBlobKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlobKey, opts...).ToFunc()
}

// ByProcessingStage orders the results by the processing_stage field.
func ByProcessingStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStage, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByChunkCount orders the results by the chunk_count field.
func ByChunkCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkCount, opts...).ToFunc()
}

// ByDocumentCategory orders the results by the document_category field.
func ByDocumentCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentCategory, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByChunksCount orders the results by chunks count.
func ByChunksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChunksStep(), opts...)
	}
}

// ByChunks orders the results by chunks terms.
func ByChunks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChunksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByProcessingLogsCount orders the results by processing_logs count.
func ByProcessingLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProcessingLogsStep(), opts...)
	}
}

// ByProcessingLogs orders the results by processing_logs terms.
func ByProcessingLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProcessingLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newChunksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChunksInverseTable, DocumentChunkFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChunksTable, ChunksColumn),
	)
}
func newProcessingLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProcessingLogsInverseTable, ProcessingLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ProcessingLogsTable, ProcessingLogsColumn),
	)
}
