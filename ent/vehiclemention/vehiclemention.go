// Code generated by ent, DO NOT EDIT.

package vehiclemention

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the vehiclemention type in the database.
	Label = "vehicle_mention"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldMake holds the string denoting the make field in the database.
	FieldMake = "make"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldYearStart holds the string denoting the year_start field in the database.
	FieldYearStart = "year_start"
	// FieldYearEnd holds the string denoting the year_end field in the database.
	FieldYearEnd = "year_end"
	// FieldEngine holds the string denoting the engine field in the database.
	FieldEngine = "engine"
	// FieldTransmission holds the string denoting the transmission field in the database.
	FieldTransmission = "transmission"
	// FieldRelatedDtcCodes holds the string denoting the related_dtc_codes field in the database.
	FieldRelatedDtcCodes = "related_dtc_codes"
	// FieldLinked holds the string denoting the linked field in the database.
	FieldLinked = "linked"
	// FieldSourceChunkID holds the string denoting the source_chunk_id field in the database.
	FieldSourceChunkID = "source_chunk_id"
	// FieldTrust holds the string denoting the trust field in the database.
	FieldTrust = "trust"
	// FieldRelevance holds the string denoting the relevance field in the database.
	FieldRelevance = "relevance"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the vehiclemention in the database.
	Table = "vehicle_mentions"
)

// Columns holds all SQL columns for vehiclemention fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldMake,
	FieldModel,
	FieldYearStart,
	FieldYearEnd,
	FieldEngine,
	FieldTransmission,
	FieldRelatedDtcCodes,
	FieldLinked,
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
	// DefaultLinked holds the default value on creation for the "linked" field.
	DefaultLinked bool
	// DefaultTrust holds the default value on creation for the "trust" field.
	DefaultTrust float64
	// DefaultRelevance holds the default value on creation for the "relevance" field.
	DefaultRelevance float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the VehicleMention queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByMake orders the results by the make field.
func ByMake(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMake, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByYearStart orders the results by the year_start field.
func ByYearStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYearStart, opts...).ToFunc()
}

// ByYearEnd orders the results by the year_end field.
func ByYearEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYearEnd, opts...).ToFunc()
}

// ByEngine orders the results by the engine field.
func ByEngine(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngine, opts...).ToFunc()
}

// ByTransmission orders the results by the transmission field.
func ByTransmission(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransmission, opts...).ToFunc()
}

// ByLinked orders the results by the linked field.
func ByLinked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinked, opts...).ToFunc()
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
