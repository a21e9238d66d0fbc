// Code generated by ent, DO NOT EDIT.

package dtcdiagnosticstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dtcdiagnosticstep type in the database.
	Label = "dtc_diagnostic_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDtcMasterID holds the string denoting the dtc_master_id field in the database.
	FieldDtcMasterID = "dtc_master_id"
	// FieldStepOrder holds the string denoting the step_order field in the database.
	FieldStepOrder = "step_order"
	// FieldInstruction holds the string denoting the instruction field in the database.
	FieldInstruction = "instruction"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldToolsRequired holds the string denoting the tools_required field in the database.
	FieldToolsRequired = "tools_required"
	// FieldExpectedValues holds the string denoting the expected_values field in the database.
	FieldExpectedValues = "expected_values"
	// FieldPassNextStepID holds the string denoting the pass_next_step_id field in the database.
	FieldPassNextStepID = "pass_next_step_id"
	// FieldFailNextStepID holds the string denoting the fail_next_step_id field in the database.
	FieldFailNextStepID = "fail_next_step_id"
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
	// Table holds the table name of the dtcdiagnosticstep in the database.
	Table = "dtc_diagnostic_steps"
)

// Columns holds all SQL columns for dtcdiagnosticstep fields.
var Columns = []string{
	FieldID,
	FieldDtcMasterID,
	FieldStepOrder,
	FieldInstruction,
	FieldFingerprint,
	FieldToolsRequired,
	FieldExpectedValues,
	FieldPassNextStepID,
	FieldFailNextStepID,
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
	// DefaultStepOrder holds the default value on creation for the "step_order" field.
	DefaultStepOrder int
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

// OrderOption defines the ordering options for the DTCDiagnosticStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDtcMasterID orders the results by the dtc_master_id field.
func ByDtcMasterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDtcMasterID, opts...).ToFunc()
}

// ByStepOrder orders the results by the step_order field.
func ByStepOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepOrder, opts...).ToFunc()
}

// ByInstruction orders the results by the instruction field.
func ByInstruction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstruction, opts...).ToFunc()
}

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByToolsRequired orders the results by the tools_required field.
func ByToolsRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolsRequired, opts...).ToFunc()
}

// ByExpectedValues orders the results by the expected_values field.
func ByExpectedValues(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedValues, opts...).ToFunc()
}

// ByPassNextStepID orders the results by the pass_next_step_id field.
func ByPassNextStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassNextStepID, opts...).ToFunc()
}

// ByFailNextStepID orders the results by the fail_next_step_id field.
func ByFailNextStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailNextStepID, opts...).ToFunc()
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
