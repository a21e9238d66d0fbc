// Code generated by ent, DO NOT EDIT.

package dtcmaster

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dtcmaster type in the database.
	Label = "dtc_master"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "dtc_master_id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldSystemCategory holds the string denoting the system_category field in the database.
	FieldSystemCategory = "system_category"
	// FieldGenericDescription holds the string denoting the generic_description field in the database.
	FieldGenericDescription = "generic_description"
	// FieldDescriptionTrust holds the string denoting the description_trust field in the database.
	FieldDescriptionTrust = "description_trust"
	// FieldSeverityLevel holds the string denoting the severity_level field in the database.
	FieldSeverityLevel = "severity_level"
	// FieldEmissionsRelated holds the string denoting the emissions_related field in the database.
	FieldEmissionsRelated = "emissions_related"
	// FieldEvidenceCount holds the string denoting the evidence_count field in the database.
	FieldEvidenceCount = "evidence_count"
	// FieldAvgTrust holds the string denoting the avg_trust field in the database.
	FieldAvgTrust = "avg_trust"
	// FieldAvgRelevance holds the string denoting the avg_relevance field in the database.
	FieldAvgRelevance = "avg_relevance"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldConflictFlag holds the string denoting the conflict_flag field in the database.
	FieldConflictFlag = "conflict_flag"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the dtcmaster in the database.
	Table = "dtc_master"
)

// Columns holds all SQL columns for dtcmaster fields.
var Columns = []string{
	FieldID,
	FieldCode,
	FieldSystemCategory,
	FieldGenericDescription,
	FieldDescriptionTrust,
	FieldSeverityLevel,
	FieldEmissionsRelated,
	FieldEvidenceCount,
	FieldAvgTrust,
	FieldAvgRelevance,
	FieldConfidenceScore,
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
	// CodeValidator is a validator for the "code" field. It is called by the builders before save.
	CodeValidator func(string) error
	// DefaultSystemCategory holds the default value on creation for the "system_category" field.
	DefaultSystemCategory string
	// DefaultDescriptionTrust holds the default value on creation for the "description_trust" field.
	DefaultDescriptionTrust float64
	// DefaultSeverityLevel holds the default value on creation for the "severity_level" field.
	DefaultSeverityLevel int
	// SeverityLevelValidator is a validator for the "severity_level" field. It is called by the builders before save.
	SeverityLevelValidator func(int) error
	// DefaultEmissionsRelated holds the default value on creation for the "emissions_related" field.
	DefaultEmissionsRelated bool
	// DefaultEvidenceCount holds the default value on creation for the "evidence_count" field.
	DefaultEvidenceCount int
	// DefaultAvgTrust holds the default value on creation for the "avg_trust" field.
	DefaultAvgTrust float64
	// DefaultAvgRelevance holds the default value on creation for the "avg_relevance" field.
	DefaultAvgRelevance float64
	// DefaultConfidenceScore holds the default value on creation for the "confidence_score" field.
	DefaultConfidenceScore float64
	// DefaultConflictFlag holds the default value on creation for the "conflict_flag" field.
	DefaultConflictFlag bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the DTCMaster queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// BySystemCategory orders the results by the system_category field.
func BySystemCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemCategory, opts...).ToFunc()
}

// ByGenericDescription orders the results by the generic_description field.
func ByGenericDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenericDescription, opts...).ToFunc()
}

// ByDescriptionTrust orders the results by the description_trust field.
func ByDescriptionTrust(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescriptionTrust, opts...).ToFunc()
}

// BySeverityLevel orders the results by the severity_level field.
func BySeverityLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverityLevel, opts...).ToFunc()
}

// ByEmissionsRelated orders the results by the emissions_related field.
func ByEmissionsRelated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmissionsRelated, opts...).ToFunc()
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

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
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
