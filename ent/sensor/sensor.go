// Code generated by ent, DO NOT EDIT.

package sensor

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sensor type in the database.
	Label = "sensor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "sensor_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSensorType holds the string denoting the sensor_type field in the database.
	FieldSensorType = "sensor_type"
	// FieldTypicalRange holds the string denoting the typical_range field in the database.
	FieldTypicalRange = "typical_range"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the sensor in the database.
	Table = "sensors"
)

// Columns holds all SQL columns for sensor fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldSensorType,
	FieldTypicalRange,
	FieldUnit,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Sensor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
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

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
