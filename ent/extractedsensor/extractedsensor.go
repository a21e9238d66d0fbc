// Code generated by ent, DO NOT EDIT.

package extractedsensor

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the extractedsensor type in the database.
	Label = "extracted_sensor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSensorType holds the string denoting the sensor_type field in the database.
	FieldSensorType = "sensor_type"
	// FieldTypicalRange holds the string denoting the typical_range field in the database.
	FieldTypicalRange = "typical_range"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldRelatedDtcCodes holds the string denoting the related_dtc_codes field in the database.
	FieldRelatedDtcCodes = "related_dtc_codes"
	// FieldSourceChunkID holds the string denoting the source_chunk_id field in the database.
	FieldSourceChunkID = "source_chunk_id"
	// FieldTrust holds the string denoting the trust field in the database.
	FieldTrust = "trust"
	// FieldRelevance holds the string denoting the relevance field in the database.
	FieldRelevance = "relevance"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the extractedsensor in the database.
	Table = "extracted_sensors"
)

// Columns holds all SQL columns for extractedsensor fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldName,
	FieldSensorType,
	FieldTypicalRange,
	FieldUnit,
	FieldRelatedDtcCodes,
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

// OrderOption defines the ordering options for the ExtractedSensor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySensorType orders the results by the sensor_type field.
func BySensorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSensorType, opts...).ToFunc()
}

// ByTypicalRange orders the results by the typical_range field.
func ByTypicalRange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypicalRange, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
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
