// Code generated by ent, DO NOT EDIT.

package extractedtsb

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the extractedtsb type in the database.
	Label = "extracted_tsb"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldTsbNumber holds the string denoting the tsb_number field in the database.
	FieldTsbNumber = "tsb_number"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldAffectedModels holds the string denoting the affected_models field in the database.
	FieldAffectedModels = "affected_models"
	// FieldRelatedDtcCodes holds the string denoting the related_dtc_codes field in the database.
	FieldRelatedDtcCodes = "related_dtc_codes"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldSourceChunkID holds the string denoting the source_chunk_id field in the database.
	FieldSourceChunkID = "source_chunk_id"
	// FieldTrust holds the string denoting the trust field in the database.
	FieldTrust = "trust"
	// FieldRelevance holds the string denoting the relevance field in the database.
	FieldRelevance = "relevance"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the extractedtsb in the database.
	Table = "extracted_tsbs"
)

// Columns holds all SQL columns for extractedtsb fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldTsbNumber,
	FieldTitle,
	FieldAffectedModels,
	FieldRelatedDtcCodes,
	FieldSummary,
	FieldSourceChunkID,
	FieldTrust,
	FieldRelevance,
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
	// DefaultTrust holds the default value on creation for the "trust" field.
	DefaultTrust float64
	// DefaultRelevance holds the default value on creation for the "relevance" field.
	DefaultRelevance float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ExtractedTSB queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByTsbNumber orders the results by the tsb_number field.
func ByTsbNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTsbNumber, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByAffectedModels orders the results by the affected_models field.
func ByAffectedModels(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAffectedModels, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// BySourceChunkID orders the results by the source_chunk_id field.
func BySourceChunkID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceChunkID, opts...).ToFunc()
}

// ByTrust orders the results by the trust field.
func ByTrust(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrust, opts...).ToFunc()
}

// ByRelevance orders the results by the relevance field.
func ByRelevance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelevance, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
