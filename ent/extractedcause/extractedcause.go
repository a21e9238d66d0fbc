// Code generated by ent, DO NOT EDIT.

package extractedcause

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the extractedcause type in the database.
	Label = "extracted_cause"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldDtcCode holds the string denoting the dtc_code field in the database.
	FieldDtcCode = "dtc_code"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldLikelihood holds the string denoting the likelihood field in the database.
	FieldLikelihood = "likelihood"
	// FieldSourceChunkID holds the string denoting the source_chunk_id field in the database.
	FieldSourceChunkID = "source_chunk_id"
	// FieldTrust holds the string denoting the trust field in the database.
	FieldTrust = "trust"
	// FieldRelevance holds the string denoting the relevance field in the database.
	FieldRelevance = "relevance"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the extractedcause in the database.
	Table = "extracted_causes"
)

// Columns holds all SQL columns for extractedcause fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldDtcCode,
	FieldDescription,
	FieldLikelihood,
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

// OrderOption defines the ordering options for the ExtractedCause queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByDtcCode orders the results by the dtc_code field.
func ByDtcCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDtcCode, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByLikelihood orders the results by the likelihood field.
func ByLikelihood(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLikelihood, opts...).ToFunc()
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
