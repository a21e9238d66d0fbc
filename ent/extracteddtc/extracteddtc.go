// Code generated by ent, DO NOT EDIT.

package extracteddtc

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the extracteddtc type in the database.
	Label = "extracted_dtc"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldSourceChunkID holds the string denoting the source_chunk_id field in the database.
	FieldSourceChunkID = "source_chunk_id"
	// FieldTrust holds the string denoting the trust field in the database.
	FieldTrust = "trust"
	// FieldRelevance holds the string denoting the relevance field in the database.
	FieldRelevance = "relevance"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the extracteddtc in the database.
	Table = "extracted_dtcs"
)

// Columns holds all SQL columns for extracteddtc fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldCode,
	FieldDescription,
	FieldCategory,
	FieldSeverity,
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

// OrderOption defines the ordering options for the ExtractedDTC queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
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
