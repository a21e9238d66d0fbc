// Code generated by ent, DO NOT EDIT.

package dtcdiagnosticstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldContainsFold(FieldID, id))
}

// DtcMasterID applies equality check predicate on the "dtc_master_id" field. It's identical to DtcMasterIDEQ.
func DtcMasterID(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldDtcMasterID, v))
}

// StepOrder applies equality check predicate on the "step_order" field. It's identical to StepOrderEQ.
func StepOrder(v int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldStepOrder, v))
}

// Instruction applies equality check predicate on the "instruction" field. It's identical to InstructionEQ.
func Instruction(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldInstruction, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldFingerprint, v))
}

// ToolsRequired applies equality check predicate on the "tools_required" field. It's identical to ToolsRequiredEQ.
func ToolsRequired(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldToolsRequired, v))
}

// ExpectedValues applies equality check predicate on the "expected_values" field. It's identical to ExpectedValuesEQ.
func ExpectedValues(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldExpectedValues, v))
}

// PassNextStepID applies equality check predicate on the "pass_next_step_id" field. It's identical to PassNextStepIDEQ.
func PassNextStepID(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldPassNextStepID, v))
}

// FailNextStepID applies equality check predicate on the "fail_next_step_id" field. It's identical to FailNextStepIDEQ.
func FailNextStepID(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldFailNextStepID, v))
}

// EvidenceCount applies equality check predicate on the "evidence_count" field. It's identical to EvidenceCountEQ.
func EvidenceCount(v int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldEvidenceCount, v))
}

// AvgTrust applies equality check predicate on the "avg_trust" field. It's identical to AvgTrustEQ.
func AvgTrust(v float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldAvgTrust, v))
}

// AvgRelevance applies equality check predicate on the "avg_relevance" field. It's identical to AvgRelevanceEQ.
func AvgRelevance(v float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldAvgRelevance, v))
}

// ConflictFlag applies equality check predicate on the "conflict_flag" field. It's identical to ConflictFlagEQ.
func ConflictFlag(v bool) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldConflictFlag, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// DtcMasterIDEQ applies the EQ predicate on the "dtc_master_id" field.
func DtcMasterIDEQ(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldDtcMasterID, v))
}

// DtcMasterIDNEQ applies the NEQ predicate on the "dtc_master_id" field.
func DtcMasterIDNEQ(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNEQ(FieldDtcMasterID, v))
}

// DtcMasterIDIn applies the In predicate on the "dtc_master_id" field.
func DtcMasterIDIn(vs ...string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIn(FieldDtcMasterID, vs...))
}

// DtcMasterIDNotIn applies the NotIn predicate on the "dtc_master_id" field.
func DtcMasterIDNotIn(vs ...string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotIn(FieldDtcMasterID, vs...))
}

// DtcMasterIDGT applies the GT predicate on the "dtc_master_id" field.
func DtcMasterIDGT(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGT(FieldDtcMasterID, v))
}

// DtcMasterIDGTE applies the GTE predicate on the "dtc_master_id" field.
func DtcMasterIDGTE(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGTE(FieldDtcMasterID, v))
}

// DtcMasterIDLT applies the LT predicate on the "dtc_master_id" field.
func DtcMasterIDLT(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLT(FieldDtcMasterID, v))
}

// DtcMasterIDLTE applies the LTE predicate on the "dtc_master_id" field.
func DtcMasterIDLTE(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLTE(FieldDtcMasterID, v))
}

// DtcMasterIDContains applies the Contains predicate on the "dtc_master_id" field.
func DtcMasterIDContains(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldContains(FieldDtcMasterID, v))
}

// DtcMasterIDHasPrefix applies the HasPrefix predicate on the "dtc_master_id" field.
func DtcMasterIDHasPrefix(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldHasPrefix(FieldDtcMasterID, v))
}

// DtcMasterIDHasSuffix applies the HasSuffix predicate on the "dtc_master_id" field.
func DtcMasterIDHasSuffix(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldHasSuffix(FieldDtcMasterID, v))
}

// DtcMasterIDEqualFold applies the EqualFold predicate on the "dtc_master_id" field.
func DtcMasterIDEqualFold(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEqualFold(FieldDtcMasterID, v))
}

// DtcMasterIDContainsFold applies the ContainsFold predicate on the "dtc_master_id" field.
func DtcMasterIDContainsFold(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldContainsFold(FieldDtcMasterID, v))
}

// StepOrderEQ applies the EQ predicate on the "step_order" field.
func StepOrderEQ(v int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldStepOrder, v))
}

// StepOrderNEQ applies the NEQ predicate on the "step_order" field.
func StepOrderNEQ(v int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNEQ(FieldStepOrder, v))
}

// StepOrderIn applies the In predicate on the "step_order" field.
func StepOrderIn(vs ...int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIn(FieldStepOrder, vs...))
}

// StepOrderNotIn applies the NotIn predicate on the "step_order" field.
func StepOrderNotIn(vs ...int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotIn(FieldStepOrder, vs...))
}

// StepOrderGT applies the GT predicate on the "step_order" field.
func StepOrderGT(v int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGT(FieldStepOrder, v))
}

// StepOrderGTE applies the GTE predicate on the "step_order" field.
func StepOrderGTE(v int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGTE(FieldStepOrder, v))
}

// StepOrderLT applies the LT predicate on the "step_order" field.
func StepOrderLT(v int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLT(FieldStepOrder, v))
}

// StepOrderLTE applies the LTE predicate on the "step_order" field.
func StepOrderLTE(v int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLTE(FieldStepOrder, v))
}

// InstructionEQ applies the EQ predicate on the "instruction" field.
func InstructionEQ(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldInstruction, v))
}

// InstructionNEQ applies the NEQ predicate on the "instruction" field.
func InstructionNEQ(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNEQ(FieldInstruction, v))
}

// InstructionIn applies the In predicate on the "instruction" field.
func InstructionIn(vs ...string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIn(FieldInstruction, vs...))
}

// InstructionNotIn applies the NotIn predicate on the "instruction" field.
func InstructionNotIn(vs ...string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotIn(FieldInstruction, vs...))
}

// InstructionGT applies the GT predicate on the "instruction" field.
func InstructionGT(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGT(FieldInstruction, v))
}

// InstructionGTE applies the GTE predicate on the "instruction" field.
func InstructionGTE(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGTE(FieldInstruction, v))
}

// InstructionLT applies the LT predicate on the "instruction" field.
func InstructionLT(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLT(FieldInstruction, v))
}

// InstructionLTE applies the LTE predicate on the "instruction" field.
func InstructionLTE(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLTE(FieldInstruction, v))
}

// InstructionContains applies the Contains predicate on the "instruction" field.
func InstructionContains(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldContains(FieldInstruction, v))
}

// InstructionHasPrefix applies the HasPrefix predicate on the "instruction" field.
func InstructionHasPrefix(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldHasPrefix(FieldInstruction, v))
}

// InstructionHasSuffix applies the HasSuffix predicate on the "instruction" field.
func InstructionHasSuffix(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldHasSuffix(FieldInstruction, v))
}

// InstructionEqualFold applies the EqualFold predicate on the "instruction" field.
func InstructionEqualFold(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEqualFold(FieldInstruction, v))
}

// InstructionContainsFold applies the ContainsFold predicate on the "instruction" field.
func InstructionContainsFold(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldContainsFold(FieldInstruction, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldContainsFold(FieldFingerprint, v))
}

// ToolsRequiredEQ applies the EQ predicate on the "tools_required" field.
func ToolsRequiredEQ(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldToolsRequired, v))
}

// ToolsRequiredNEQ applies the NEQ predicate on the "tools_required" field.
func ToolsRequiredNEQ(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNEQ(FieldToolsRequired, v))
}

// ToolsRequiredIn applies the In predicate on the "tools_required" field.
func ToolsRequiredIn(vs ...string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIn(FieldToolsRequired, vs...))
}

// ToolsRequiredNotIn applies the NotIn predicate on the "tools_required" field.
func ToolsRequiredNotIn(vs ...string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotIn(FieldToolsRequired, vs...))
}

// ToolsRequiredGT applies the GT predicate on the "tools_required" field.
func ToolsRequiredGT(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGT(FieldToolsRequired, v))
}

// ToolsRequiredGTE applies the GTE predicate on the "tools_required" field.
func ToolsRequiredGTE(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGTE(FieldToolsRequired, v))
}

// ToolsRequiredLT applies the LT predicate on the "tools_required" field.
func ToolsRequiredLT(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLT(FieldToolsRequired, v))
}

// ToolsRequiredLTE applies the LTE predicate on the "tools_required" field.
func ToolsRequiredLTE(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLTE(FieldToolsRequired, v))
}

// ToolsRequiredContains applies the Contains predicate on the "tools_required" field.
func ToolsRequiredContains(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldContains(FieldToolsRequired, v))
}

// ToolsRequiredHasPrefix applies the HasPrefix predicate on the "tools_required" field.
func ToolsRequiredHasPrefix(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldHasPrefix(FieldToolsRequired, v))
}

// ToolsRequiredHasSuffix applies the HasSuffix predicate on the "tools_required" field.
func ToolsRequiredHasSuffix(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldHasSuffix(FieldToolsRequired, v))
}

// ToolsRequiredIsNil applies the IsNil predicate on the "tools_required" field.
func ToolsRequiredIsNil() predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIsNull(FieldToolsRequired))
}

// ToolsRequiredNotNil applies the NotNil predicate on the "tools_required" field.
func ToolsRequiredNotNil() predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotNull(FieldToolsRequired))
}

// ToolsRequiredEqualFold applies the EqualFold predicate on the "tools_required" field.
func ToolsRequiredEqualFold(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEqualFold(FieldToolsRequired, v))
}

// ToolsRequiredContainsFold applies the ContainsFold predicate on the "tools_required" field.
func ToolsRequiredContainsFold(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldContainsFold(FieldToolsRequired, v))
}

// ExpectedValuesEQ applies the EQ predicate on the "expected_values" field.
func ExpectedValuesEQ(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldExpectedValues, v))
}

// ExpectedValuesNEQ applies the NEQ predicate on the "expected_values" field.
func ExpectedValuesNEQ(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNEQ(FieldExpectedValues, v))
}

// ExpectedValuesIn applies the In predicate on the "expected_values" field.
func ExpectedValuesIn(vs ...string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIn(FieldExpectedValues, vs...))
}

// ExpectedValuesNotIn applies the NotIn predicate on the "expected_values" field.
func ExpectedValuesNotIn(vs ...string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotIn(FieldExpectedValues, vs...))
}

// ExpectedValuesGT applies the GT predicate on the "expected_values" field.
func ExpectedValuesGT(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGT(FieldExpectedValues, v))
}

// ExpectedValuesGTE applies the GTE predicate on the "expected_values" field.
func ExpectedValuesGTE(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGTE(FieldExpectedValues, v))
}

// ExpectedValuesLT applies the LT predicate on the "expected_values" field.
func ExpectedValuesLT(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLT(FieldExpectedValues, v))
}

// ExpectedValuesLTE applies the LTE predicate on the "expected_values" field.
func ExpectedValuesLTE(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLTE(FieldExpectedValues, v))
}

// ExpectedValuesContains applies the Contains predicate on the "expected_values" field.
func ExpectedValuesContains(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldContains(FieldExpectedValues, v))
}

// ExpectedValuesHasPrefix applies the HasPrefix predicate on the "expected_values" field.
func ExpectedValuesHasPrefix(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldHasPrefix(FieldExpectedValues, v))
}

// ExpectedValuesHasSuffix applies the HasSuffix predicate on the "expected_values" field.
func ExpectedValuesHasSuffix(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldHasSuffix(FieldExpectedValues, v))
}

// ExpectedValuesIsNil applies the IsNil predicate on the "expected_values" field.
func ExpectedValuesIsNil() predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIsNull(FieldExpectedValues))
}

// ExpectedValuesNotNil applies the NotNil predicate on the "expected_values" field.
func ExpectedValuesNotNil() predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotNull(FieldExpectedValues))
}

// ExpectedValuesEqualFold applies the EqualFold predicate on the "expected_values" field.
func ExpectedValuesEqualFold(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEqualFold(FieldExpectedValues, v))
}

// ExpectedValuesContainsFold applies the ContainsFold predicate on the "expected_values" field.
func ExpectedValuesContainsFold(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldContainsFold(FieldExpectedValues, v))
}

// PassNextStepIDEQ applies the EQ predicate on the "pass_next_step_id" field.
func PassNextStepIDEQ(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldPassNextStepID, v))
}

// PassNextStepIDNEQ applies the NEQ predicate on the "pass_next_step_id" field.
func PassNextStepIDNEQ(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNEQ(FieldPassNextStepID, v))
}

// PassNextStepIDIn applies the In predicate on the "pass_next_step_id" field.
func PassNextStepIDIn(vs ...string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIn(FieldPassNextStepID, vs...))
}

// PassNextStepIDNotIn applies the NotIn predicate on the "pass_next_step_id" field.
func PassNextStepIDNotIn(vs ...string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotIn(FieldPassNextStepID, vs...))
}

// PassNextStepIDGT applies the GT predicate on the "pass_next_step_id" field.
func PassNextStepIDGT(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGT(FieldPassNextStepID, v))
}

// PassNextStepIDGTE applies the GTE predicate on the "pass_next_step_id" field.
func PassNextStepIDGTE(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGTE(FieldPassNextStepID, v))
}

// PassNextStepIDLT applies the LT predicate on the "pass_next_step_id" field.
func PassNextStepIDLT(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLT(FieldPassNextStepID, v))
}

// PassNextStepIDLTE applies the LTE predicate on the "pass_next_step_id" field.
func PassNextStepIDLTE(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLTE(FieldPassNextStepID, v))
}

// PassNextStepIDContains applies the Contains predicate on the "pass_next_step_id" field.
func PassNextStepIDContains(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldContains(FieldPassNextStepID, v))
}

// PassNextStepIDHasPrefix applies the HasPrefix predicate on the "pass_next_step_id" field.
func PassNextStepIDHasPrefix(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldHasPrefix(FieldPassNextStepID, v))
}

// PassNextStepIDHasSuffix applies the HasSuffix predicate on the "pass_next_step_id" field.
func PassNextStepIDHasSuffix(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldHasSuffix(FieldPassNextStepID, v))
}

// PassNextStepIDIsNil applies the IsNil predicate on the "pass_next_step_id" field.
func PassNextStepIDIsNil() predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIsNull(FieldPassNextStepID))
}

// PassNextStepIDNotNil applies the NotNil predicate on the "pass_next_step_id" field.
func PassNextStepIDNotNil() predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotNull(FieldPassNextStepID))
}

// PassNextStepIDEqualFold applies the EqualFold predicate on the "pass_next_step_id" field.
func PassNextStepIDEqualFold(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEqualFold(FieldPassNextStepID, v))
}

// PassNextStepIDContainsFold applies the ContainsFold predicate on the "pass_next_step_id" field.
func PassNextStepIDContainsFold(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldContainsFold(FieldPassNextStepID, v))
}

// FailNextStepIDEQ applies the EQ predicate on the "fail_next_step_id" field.
func FailNextStepIDEQ(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldFailNextStepID, v))
}

// FailNextStepIDNEQ applies the NEQ predicate on the "fail_next_step_id" field.
func FailNextStepIDNEQ(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNEQ(FieldFailNextStepID, v))
}

// FailNextStepIDIn applies the In predicate on the "fail_next_step_id" field.
func FailNextStepIDIn(vs ...string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIn(FieldFailNextStepID, vs...))
}

// FailNextStepIDNotIn applies the NotIn predicate on the "fail_next_step_id" field.
func FailNextStepIDNotIn(vs ...string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotIn(FieldFailNextStepID, vs...))
}

// FailNextStepIDGT applies the GT predicate on the "fail_next_step_id" field.
func FailNextStepIDGT(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGT(FieldFailNextStepID, v))
}

// FailNextStepIDGTE applies the GTE predicate on the "fail_next_step_id" field.
func FailNextStepIDGTE(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGTE(FieldFailNextStepID, v))
}

// FailNextStepIDLT applies the LT predicate on the "fail_next_step_id" field.
func FailNextStepIDLT(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLT(FieldFailNextStepID, v))
}

// FailNextStepIDLTE applies the LTE predicate on the "fail_next_step_id" field.
func FailNextStepIDLTE(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLTE(FieldFailNextStepID, v))
}

// FailNextStepIDContains applies the Contains predicate on the "fail_next_step_id" field.
func FailNextStepIDContains(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldContains(FieldFailNextStepID, v))
}

// FailNextStepIDHasPrefix applies the HasPrefix predicate on the "fail_next_step_id" field.
func FailNextStepIDHasPrefix(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldHasPrefix(FieldFailNextStepID, v))
}

// FailNextStepIDHasSuffix applies the HasSuffix predicate on the "fail_next_step_id" field.
func FailNextStepIDHasSuffix(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldHasSuffix(FieldFailNextStepID, v))
}

// FailNextStepIDIsNil applies the IsNil predicate on the "fail_next_step_id" field.
func FailNextStepIDIsNil() predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIsNull(FieldFailNextStepID))
}

// FailNextStepIDNotNil applies the NotNil predicate on the "fail_next_step_id" field.
func FailNextStepIDNotNil() predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotNull(FieldFailNextStepID))
}

// FailNextStepIDEqualFold applies the EqualFold predicate on the "fail_next_step_id" field.
func FailNextStepIDEqualFold(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEqualFold(FieldFailNextStepID, v))
}

// FailNextStepIDContainsFold applies the ContainsFold predicate on the "fail_next_step_id" field.
func FailNextStepIDContainsFold(v string) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldContainsFold(FieldFailNextStepID, v))
}

// EvidenceCountEQ applies the EQ predicate on the "evidence_count" field.
func EvidenceCountEQ(v int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldEvidenceCount, v))
}

// EvidenceCountNEQ applies the NEQ predicate on the "evidence_count" field.
func EvidenceCountNEQ(v int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNEQ(FieldEvidenceCount, v))
}

// EvidenceCountIn applies the In predicate on the "evidence_count" field.
func EvidenceCountIn(vs ...int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIn(FieldEvidenceCount, vs...))
}

// EvidenceCountNotIn applies the NotIn predicate on the "evidence_count" field.
func EvidenceCountNotIn(vs ...int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotIn(FieldEvidenceCount, vs...))
}

// EvidenceCountGT applies the GT predicate on the "evidence_count" field.
func EvidenceCountGT(v int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGT(FieldEvidenceCount, v))
}

// EvidenceCountGTE applies the GTE predicate on the "evidence_count" field.
func EvidenceCountGTE(v int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGTE(FieldEvidenceCount, v))
}

// EvidenceCountLT applies the LT predicate on the "evidence_count" field.
func EvidenceCountLT(v int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLT(FieldEvidenceCount, v))
}

// EvidenceCountLTE applies the LTE predicate on the "evidence_count" field.
func EvidenceCountLTE(v int) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLTE(FieldEvidenceCount, v))
}

// AvgTrustEQ applies the EQ predicate on the "avg_trust" field.
func AvgTrustEQ(v float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldAvgTrust, v))
}

// AvgTrustNEQ applies the NEQ predicate on the "avg_trust" field.
func AvgTrustNEQ(v float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNEQ(FieldAvgTrust, v))
}

// AvgTrustIn applies the In predicate on the "avg_trust" field.
func AvgTrustIn(vs ...float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIn(FieldAvgTrust, vs...))
}

// AvgTrustNotIn applies the NotIn predicate on the "avg_trust" field.
func AvgTrustNotIn(vs ...float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotIn(FieldAvgTrust, vs...))
}

// AvgTrustGT applies the GT predicate on the "avg_trust" field.
func AvgTrustGT(v float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGT(FieldAvgTrust, v))
}

// AvgTrustGTE applies the GTE predicate on the "avg_trust" field.
func AvgTrustGTE(v float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGTE(FieldAvgTrust, v))
}

// AvgTrustLT applies the LT predicate on the "avg_trust" field.
func AvgTrustLT(v float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLT(FieldAvgTrust, v))
}

// AvgTrustLTE applies the LTE predicate on the "avg_trust" field.
func AvgTrustLTE(v float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLTE(FieldAvgTrust, v))
}

// AvgRelevanceEQ applies the EQ predicate on the "avg_relevance" field.
func AvgRelevanceEQ(v float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldAvgRelevance, v))
}

// AvgRelevanceNEQ applies the NEQ predicate on the "avg_relevance" field.
func AvgRelevanceNEQ(v float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNEQ(FieldAvgRelevance, v))
}

// AvgRelevanceIn applies the In predicate on the "avg_relevance" field.
func AvgRelevanceIn(vs ...float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIn(FieldAvgRelevance, vs...))
}

// AvgRelevanceNotIn applies the NotIn predicate on the "avg_relevance" field.
func AvgRelevanceNotIn(vs ...float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotIn(FieldAvgRelevance, vs...))
}

// AvgRelevanceGT applies the GT predicate on the "avg_relevance" field.
func AvgRelevanceGT(v float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGT(FieldAvgRelevance, v))
}

// AvgRelevanceGTE applies the GTE predicate on the "avg_relevance" field.
func AvgRelevanceGTE(v float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGTE(FieldAvgRelevance, v))
}

// AvgRelevanceLT applies the LT predicate on the "avg_relevance" field.
func AvgRelevanceLT(v float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLT(FieldAvgRelevance, v))
}

// AvgRelevanceLTE applies the LTE predicate on the "avg_relevance" field.
func AvgRelevanceLTE(v float64) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLTE(FieldAvgRelevance, v))
}

// ConflictFlagEQ applies the EQ predicate on the "conflict_flag" field.
func ConflictFlagEQ(v bool) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldConflictFlag, v))
}

// ConflictFlagNEQ applies the NEQ predicate on the "conflict_flag" field.
func ConflictFlagNEQ(v bool) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNEQ(FieldConflictFlag, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DTCDiagnosticStep) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DTCDiagnosticStep) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DTCDiagnosticStep) predicate.DTCDiagnosticStep {
	return predicate.DTCDiagnosticStep(sql.NotPredicates(p))
}
