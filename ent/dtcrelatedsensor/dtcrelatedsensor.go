// Code generated by ent, DO NOT EDIT.

package dtcrelatedsensor

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dtcrelatedsensor type in the database.
	Label = "dtc_related_sensor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDtcMasterID holds the string denoting the dtc_master_id field in the database.
	FieldDtcMasterID = "dtc_master_id"
	// FieldSensorID holds the string denoting the sensor_id field in the database.
	FieldSensorID = "sensor_id"
	// FieldPriorityRank holds the string denoting the priority_rank field in the database.
	FieldPriorityRank = "priority_rank"
	// FieldEvidenceCount holds the string denoting the evidence_count field in the database.
	FieldEvidenceCount = "evidence_count"
	// FieldAvgTrust holds the string denoting the avg_trust field in the database.
	FieldAvgTrust = "avg_trust"
	// FieldAvgRelevance holds the string denoting the avg_relevance field in the database.
	FieldAvgRelevance = "avg_relevance"
	// FieldConflictFlag holds the string denoting the conflict_flag field in the database.
	FieldConflictFlag = "conflict_flag"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the dtcrelatedsensor in the database.
	Table = "dtc_related_sensors"
)

// Columns holds all SQL columns for dtcrelatedsensor fields.
var Columns = []string{
	FieldID,
	FieldDtcMasterID,
	FieldSensorID,
	FieldPriorityRank,
	FieldEvidenceCount,
	FieldAvgTrust,
	FieldAvgRelevance,
	FieldConflictFlag,
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
	// DefaultPriorityRank holds the default value on creation for the "priority_rank" field.
	DefaultPriorityRank int
	// DefaultEvidenceCount holds the default value on creation for the "evidence_count" field.
	DefaultEvidenceCount int
	// DefaultAvgTrust holds the default value on creation for the "avg_trust" field.
	DefaultAvgTrust float64
	// DefaultAvgRelevance holds the default value on creation for the "avg_relevance" field.
	DefaultAvgRelevance float64
	// DefaultConflictFlag holds the default value on creation for the "conflict_flag" field.
	DefaultConflictFlag bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the DTCRelatedSensor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDtcMasterID orders the results by the dtc_master_id field.
func ByDtcMasterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDtcMasterID, opts...).ToFunc()
}

// BySensorID orders the results by the sensor_id field.
func BySensorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSensorID, opts...).ToFunc()
}

// ByPriorityRank orders the results by the priority_rank field.
func ByPriorityRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityRank, opts...).ToFunc()
}

// ByEvidenceCount orders the results by the evidence_count field.
func ByEvidenceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidenceCount, opts...).ToFunc()
}

// ByAvgTrust orders the results by the avg_trust field.
func ByAvgTrust(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgTrust, opts...).ToFunc()
}

// ByAvgRelevance orders the results by the avg_relevance field.
func ByAvgRelevance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgRelevance, opts...).ToFunc()
}

// ByConflictFlag orders the results by the conflict_flag field.
func ByConflictFlag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConflictFlag, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
