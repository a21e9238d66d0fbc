// Code generated by ent, DO NOT EDIT.

package vehicle

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the vehicle type in the database.
	Label = "vehicle"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "vehicle_id"
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
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the vehicle in the database.
	Table = "vehicles"
)

// Columns holds all SQL columns for vehicle fields.
var Columns = []string{
	FieldID,
	FieldMake,
	FieldModel,
	FieldYearStart,
	FieldYearEnd,
	FieldEngine,
	FieldTransmission,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Vehicle queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
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

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
