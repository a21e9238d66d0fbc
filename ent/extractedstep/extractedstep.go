// Code generated by ent, DO NOT EDIT.

package extractedstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the extractedstep type in the database.
	Label = "extracted_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldDtcCode holds the string denoting the dtc_code field in the database.
	FieldDtcCode = "dtc_code"
	// FieldStepOrder holds the string denoting the step_order field in the database.
	FieldStepOrder = "step_order"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldToolsRequired holds the string denoting the tools_required field in the database.
	FieldToolsRequired = "tools_required"
	// FieldExpectedValues holds the string denoting the expected_values field in the database.
	FieldExpectedValues = "expected_values"
	// FieldSourceChunkID holds the string denoting the source_chunk_id field in the database.
	FieldSourceChunkID = "source_chunk_id"
	// FieldTrust holds the string denoting the trust field in the database.
	FieldTrust = "trust"
	// FieldRelevance holds the string denoting the relevance field in the database.
	FieldRelevance = "relevance"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the extractedstep in the database.
	Table = "extracted_steps"
)

// Columns holds all SQL columns for extractedstep fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldDtcCode,
	FieldStepOrder,
	FieldDescription,
	FieldToolsRequired,
	FieldExpectedValues,
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
	// DefaultStepOrder holds the default value on creation for the "step_order" field.
	DefaultStepOrder int
	// DefaultTrust holds the default value on creation for the "trust" field.
	DefaultTrust float64
	// DefaultRelevance holds the default value on creation for the "relevance" field.
	DefaultRelevance float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ExtractedStep queries.
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

// ByStepOrder orders the results by the step_order field.
func ByStepOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepOrder, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByToolsRequired orders the results by the tools_required field.
func ByToolsRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolsRequired, opts...).ToFunc()
}

// ByExpectedValues orders the results by the expected_values field.
func ByExpectedValues(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedValues, opts...).ToFunc()
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
