// Code generated by ent, DO NOT EDIT.

package vehicledtc

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the vehicledtc type in the database.
	Label = "vehicle_dtc"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVehicleID holds the string denoting the vehicle_id field in the database.
	FieldVehicleID = "vehicle_id"
	// FieldDtcMasterID holds the string denoting the dtc_master_id field in the database.
	FieldDtcMasterID = "dtc_master_id"
	// FieldSourceChunkID holds the string denoting the source_chunk_id field in the database.
	FieldSourceChunkID = "source_chunk_id"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the vehicledtc in the database.
	Table = "vehicle_dtcs"
)

// Columns holds all SQL columns for vehicledtc fields.
var Columns = []string{
	FieldID,
	FieldVehicleID,
	FieldDtcMasterID,
	FieldSourceChunkID,
	FieldConfidenceScore,
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
	// DefaultConfidenceScore holds the default value on creation for the "confidence_score" field.
	DefaultConfidenceScore float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the VehicleDTC queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVehicleID orders the results by the vehicle_id field.
func ByVehicleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVehicleID, opts...).ToFunc()
}

// ByDtcMasterID orders the results by the dtc_master_id field.
func ByDtcMasterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDtcMasterID, opts...).ToFunc()
}

// BySourceChunkID orders the results by the source_chunk_id field.
func BySourceChunkID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceChunkID, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
