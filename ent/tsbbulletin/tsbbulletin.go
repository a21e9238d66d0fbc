// Code generated by ent, DO NOT EDIT.

package tsbbulletin

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tsbbulletin type in the database.
	Label = "tsb_bulletin"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTsbNumber holds the string denoting the tsb_number field in the database.
	FieldTsbNumber = "tsb_number"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldAffectedModels holds the string denoting the affected_models field in the database.
	FieldAffectedModels = "affected_models"
	// FieldRelatedDtcCodes holds the string denoting the related_dtc_codes field in the database.
	FieldRelatedDtcCodes = "related_dtc_codes"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldEvidenceCount holds the string denoting the evidence_count field in the database.
	FieldEvidenceCount = "evidence_count"
	// FieldAvgTrust holds the string denoting the avg_trust field in the database.
	FieldAvgTrust = "avg_trust"
	// FieldAvgRelevance holds the string denoting the avg_relevance field in the database.
	FieldAvgRelevance = "avg_relevance"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the tsbbulletin in the database.
	Table = "tsb_bulletins"
)

// Columns holds all SQL columns for tsbbulletin fields.
var Columns = []string{
	FieldID,
	FieldTsbNumber,
	FieldTitle,
	FieldAffectedModels,
	FieldRelatedDtcCodes,
	FieldSummary,
	FieldEvidenceCount,
	FieldAvgTrust,
	FieldAvgRelevance,
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
	// DefaultEvidenceCount holds the default value on creation for the "evidence_count" field.
	DefaultEvidenceCount int
	// DefaultAvgTrust holds the default value on creation for the "avg_trust" field.
	DefaultAvgTrust float64
	// DefaultAvgRelevance holds the default value on creation for the "avg_relevance" field.
	DefaultAvgRelevance float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the TSBBulletin queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTsbNumber orders the results by the tsb_number field.
func ByTsbNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTsbNumber, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByAffectedModels orders the results by the affected_models field.
func ByAffectedModels(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAffectedModels, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
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

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
