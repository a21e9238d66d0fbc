// Code generated by ent, DO NOT EDIT.

package extractedstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldContainsFold(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldDocumentID, v))
}

// DtcCode applies equality check predicate on the "dtc_code" field. It's identical to DtcCodeEQ.
func DtcCode(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldDtcCode, v))
}

// StepOrder applies equality check predicate on the "step_order" field. It's identical to StepOrderEQ.
func StepOrder(v int) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldStepOrder, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldDescription, v))
}

// ToolsRequired applies equality check predicate on the "tools_required" field. It's identical to ToolsRequiredEQ.
func ToolsRequired(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldToolsRequired, v))
}

// ExpectedValues applies equality check predicate on the "expected_values" field. It's identical to ExpectedValuesEQ.
func ExpectedValues(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldExpectedValues, v))
}

// SourceChunkID applies equality check predicate on the "source_chunk_id" field. It's identical to SourceChunkIDEQ.
func SourceChunkID(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldSourceChunkID, v))
}

// Trust applies equality check predicate on the "trust" field. It's identical to TrustEQ.
func Trust(v float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldTrust, v))
}

// Relevance applies equality check predicate on the "relevance" field. It's identical to RelevanceEQ.
func Relevance(v float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldRelevance, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldContainsFold(FieldDocumentID, v))
}

// DtcCodeEQ applies the EQ predicate on the "dtc_code" field.
func DtcCodeEQ(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldDtcCode, v))
}

// DtcCodeNEQ applies the NEQ predicate on the "dtc_code" field.
func DtcCodeNEQ(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNEQ(FieldDtcCode, v))
}

// DtcCodeIn applies the In predicate on the "dtc_code" field.
func DtcCodeIn(vs ...string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldIn(FieldDtcCode, vs...))
}

// DtcCodeNotIn applies the NotIn predicate on the "dtc_code" field.
func DtcCodeNotIn(vs ...string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNotIn(FieldDtcCode, vs...))
}

// DtcCodeGT applies the GT predicate on the "dtc_code" field.
func DtcCodeGT(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGT(FieldDtcCode, v))
}

// DtcCodeGTE applies the GTE predicate on the "dtc_code" field.
func DtcCodeGTE(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGTE(FieldDtcCode, v))
}

// DtcCodeLT applies the LT predicate on the "dtc_code" field.
func DtcCodeLT(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLT(FieldDtcCode, v))
}

// DtcCodeLTE applies the LTE predicate on the "dtc_code" field.
func DtcCodeLTE(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLTE(FieldDtcCode, v))
}

// DtcCodeContains applies the Contains predicate on the "dtc_code" field.
func DtcCodeContains(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldContains(FieldDtcCode, v))
}

// DtcCodeHasPrefix applies the HasPrefix predicate on the "dtc_code" field.
func DtcCodeHasPrefix(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldHasPrefix(FieldDtcCode, v))
}

// DtcCodeHasSuffix applies the HasSuffix predicate on the "dtc_code" field.
func DtcCodeHasSuffix(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldHasSuffix(FieldDtcCode, v))
}

// DtcCodeEqualFold applies the EqualFold predicate on the "dtc_code" field.
func DtcCodeEqualFold(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEqualFold(FieldDtcCode, v))
}

// DtcCodeContainsFold applies the ContainsFold predicate on the "dtc_code" field.
func DtcCodeContainsFold(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldContainsFold(FieldDtcCode, v))
}

// StepOrderEQ applies the EQ predicate on the "step_order" field.
func StepOrderEQ(v int) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldStepOrder, v))
}

// StepOrderNEQ applies the NEQ predicate on the "step_order" field.
func StepOrderNEQ(v int) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNEQ(FieldStepOrder, v))
}

// StepOrderIn applies the In predicate on the "step_order" field.
func StepOrderIn(vs ...int) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldIn(FieldStepOrder, vs...))
}

// StepOrderNotIn applies the NotIn predicate on the "step_order" field.
func StepOrderNotIn(vs ...int) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNotIn(FieldStepOrder, vs...))
}

// StepOrderGT applies the GT predicate on the "step_order" field.
func StepOrderGT(v int) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGT(FieldStepOrder, v))
}

// StepOrderGTE applies the GTE predicate on the "step_order" field.
func StepOrderGTE(v int) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGTE(FieldStepOrder, v))
}

// StepOrderLT applies the LT predicate on the "step_order" field.
func StepOrderLT(v int) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLT(FieldStepOrder, v))
}

// StepOrderLTE applies the LTE predicate on the "step_order" field.
func StepOrderLTE(v int) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLTE(FieldStepOrder, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldContainsFold(FieldDescription, v))
}

// ToolsRequiredEQ applies the EQ predicate on the "tools_required" field.
func ToolsRequiredEQ(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldToolsRequired, v))
}

// ToolsRequiredNEQ applies the NEQ predicate on the "tools_required" field.
func ToolsRequiredNEQ(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNEQ(FieldToolsRequired, v))
}

// ToolsRequiredIn applies the In predicate on the "tools_required" field.
func ToolsRequiredIn(vs ...string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldIn(FieldToolsRequired, vs...))
}

// ToolsRequiredNotIn applies the NotIn predicate on the "tools_required" field.
func ToolsRequiredNotIn(vs ...string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNotIn(FieldToolsRequired, vs...))
}

// ToolsRequiredGT applies the GT predicate on the "tools_required" field.
func ToolsRequiredGT(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGT(FieldToolsRequired, v))
}

// ToolsRequiredGTE applies the GTE predicate on the "tools_required" field.
func ToolsRequiredGTE(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGTE(FieldToolsRequired, v))
}

// ToolsRequiredLT applies the LT predicate on the "tools_required" field.
func ToolsRequiredLT(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLT(FieldToolsRequired, v))
}

// ToolsRequiredLTE applies the LTE predicate on the "tools_required" field.
func ToolsRequiredLTE(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLTE(FieldToolsRequired, v))
}

// ToolsRequiredContains applies the Contains predicate on the "tools_required" field.
func ToolsRequiredContains(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldContains(FieldToolsRequired, v))
}

// ToolsRequiredHasPrefix applies the HasPrefix predicate on the "tools_required" field.
func ToolsRequiredHasPrefix(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldHasPrefix(FieldToolsRequired, v))
}

// ToolsRequiredHasSuffix applies the HasSuffix predicate on the "tools_required" field.
func ToolsRequiredHasSuffix(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldHasSuffix(FieldToolsRequired, v))
}

// ToolsRequiredIsNil applies the IsNil predicate on the "tools_required" field.
func ToolsRequiredIsNil() predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldIsNull(FieldToolsRequired))
}

// ToolsRequiredNotNil applies the NotNil predicate on the "tools_required" field.
func ToolsRequiredNotNil() predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNotNull(FieldToolsRequired))
}

// ToolsRequiredEqualFold applies the EqualFold predicate on the "tools_required" field.
func ToolsRequiredEqualFold(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEqualFold(FieldToolsRequired, v))
}

// ToolsRequiredContainsFold applies the ContainsFold predicate on the "tools_required" field.
func ToolsRequiredContainsFold(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldContainsFold(FieldToolsRequired, v))
}

// ExpectedValuesEQ applies the EQ predicate on the "expected_values" field.
func ExpectedValuesEQ(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldExpectedValues, v))
}

// ExpectedValuesNEQ applies the NEQ predicate on the "expected_values" field.
func ExpectedValuesNEQ(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNEQ(FieldExpectedValues, v))
}

// ExpectedValuesIn applies the In predicate on the "expected_values" field.
func ExpectedValuesIn(vs ...string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldIn(FieldExpectedValues, vs...))
}

// ExpectedValuesNotIn applies the NotIn predicate on the "expected_values" field.
func ExpectedValuesNotIn(vs ...string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNotIn(FieldExpectedValues, vs...))
}

// ExpectedValuesGT applies the GT predicate on the "expected_values" field.
func ExpectedValuesGT(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGT(FieldExpectedValues, v))
}

// ExpectedValuesGTE applies the GTE predicate on the "expected_values" field.
func ExpectedValuesGTE(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGTE(FieldExpectedValues, v))
}

// ExpectedValuesLT applies the LT predicate on the "expected_values" field.
func ExpectedValuesLT(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLT(FieldExpectedValues, v))
}

// ExpectedValuesLTE applies the LTE predicate on the "expected_values" field.
func ExpectedValuesLTE(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLTE(FieldExpectedValues, v))
}

// ExpectedValuesContains applies the Contains predicate on the "expected_values" field.
func ExpectedValuesContains(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldContains(FieldExpectedValues, v))
}

// ExpectedValuesHasPrefix applies the HasPrefix predicate on the "expected_values" field.
func ExpectedValuesHasPrefix(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldHasPrefix(FieldExpectedValues, v))
}

// ExpectedValuesHasSuffix applies the HasSuffix predicate on the "expected_values" field.
func ExpectedValuesHasSuffix(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldHasSuffix(FieldExpectedValues, v))
}

// ExpectedValuesIsNil applies the IsNil predicate on the "expected_values" field.
func ExpectedValuesIsNil() predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldIsNull(FieldExpectedValues))
}

// ExpectedValuesNotNil applies the NotNil predicate on the "expected_values" field.
func ExpectedValuesNotNil() predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNotNull(FieldExpectedValues))
}

// ExpectedValuesEqualFold applies the EqualFold predicate on the "expected_values" field.
func ExpectedValuesEqualFold(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEqualFold(FieldExpectedValues, v))
}

// ExpectedValuesContainsFold applies the ContainsFold predicate on the "expected_values" field.
func ExpectedValuesContainsFold(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldContainsFold(FieldExpectedValues, v))
}

// SourceChunkIDEQ applies the EQ predicate on the "source_chunk_id" field.
func SourceChunkIDEQ(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldSourceChunkID, v))
}

// SourceChunkIDNEQ applies the NEQ predicate on the "source_chunk_id" field.
func SourceChunkIDNEQ(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNEQ(FieldSourceChunkID, v))
}

// SourceChunkIDIn applies the In predicate on the "source_chunk_id" field.
func SourceChunkIDIn(vs ...string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldIn(FieldSourceChunkID, vs...))
}

// SourceChunkIDNotIn applies the NotIn predicate on the "source_chunk_id" field.
func SourceChunkIDNotIn(vs ...string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNotIn(FieldSourceChunkID, vs...))
}

// SourceChunkIDGT applies the GT predicate on the "source_chunk_id" field.
func SourceChunkIDGT(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGT(FieldSourceChunkID, v))
}

// SourceChunkIDGTE applies the GTE predicate on the "source_chunk_id" field.
func SourceChunkIDGTE(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGTE(FieldSourceChunkID, v))
}

// SourceChunkIDLT applies the LT predicate on the "source_chunk_id" field.
func SourceChunkIDLT(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLT(FieldSourceChunkID, v))
}

// SourceChunkIDLTE applies the LTE predicate on the "source_chunk_id" field.
func SourceChunkIDLTE(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLTE(FieldSourceChunkID, v))
}

// SourceChunkIDContains applies the Contains predicate on the "source_chunk_id" field.
func SourceChunkIDContains(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldContains(FieldSourceChunkID, v))
}

// SourceChunkIDHasPrefix applies the HasPrefix predicate on the "source_chunk_id" field.
func SourceChunkIDHasPrefix(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldHasPrefix(FieldSourceChunkID, v))
}

// SourceChunkIDHasSuffix applies the HasSuffix predicate on the "source_chunk_id" field.
func SourceChunkIDHasSuffix(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldHasSuffix(FieldSourceChunkID, v))
}

// SourceChunkIDEqualFold applies the EqualFold predicate on the "source_chunk_id" field.
func SourceChunkIDEqualFold(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEqualFold(FieldSourceChunkID, v))
}

// SourceChunkIDContainsFold applies the ContainsFold predicate on the "source_chunk_id" field.
func SourceChunkIDContainsFold(v string) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldContainsFold(FieldSourceChunkID, v))
}

// TrustEQ applies the EQ predicate on the "trust" field.
func TrustEQ(v float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldTrust, v))
}

// TrustNEQ applies the NEQ predicate on the "trust" field.
func TrustNEQ(v float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNEQ(FieldTrust, v))
}

// TrustIn applies the In predicate on the "trust" field.
func TrustIn(vs ...float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldIn(FieldTrust, vs...))
}

// TrustNotIn applies the NotIn predicate on the "trust" field.
func TrustNotIn(vs ...float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNotIn(FieldTrust, vs...))
}

// TrustGT applies the GT predicate on the "trust" field.
func TrustGT(v float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGT(FieldTrust, v))
}

// TrustGTE applies the GTE predicate on the "trust" field.
func TrustGTE(v float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGTE(FieldTrust, v))
}

// TrustLT applies the LT predicate on the "trust" field.
func TrustLT(v float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLT(FieldTrust, v))
}

// TrustLTE applies the LTE predicate on the "trust" field.
func TrustLTE(v float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLTE(FieldTrust, v))
}

// RelevanceEQ applies the EQ predicate on the "relevance" field.
func RelevanceEQ(v float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldRelevance, v))
}

// RelevanceNEQ applies the NEQ predicate on the "relevance" field.
func RelevanceNEQ(v float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNEQ(FieldRelevance, v))
}

// RelevanceIn applies the In predicate on the "relevance" field.
func RelevanceIn(vs ...float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldIn(FieldRelevance, vs...))
}

// RelevanceNotIn applies the NotIn predicate on the "relevance" field.
func RelevanceNotIn(vs ...float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNotIn(FieldRelevance, vs...))
}

// RelevanceGT applies the GT predicate on the "relevance" field.
func RelevanceGT(v float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGT(FieldRelevance, v))
}

// RelevanceGTE applies the GTE predicate on the "relevance" field.
func RelevanceGTE(v float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGTE(FieldRelevance, v))
}

// RelevanceLT applies the LT predicate on the "relevance" field.
func RelevanceLT(v float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLT(FieldRelevance, v))
}

// RelevanceLTE applies the LTE predicate on the "relevance" field.
func RelevanceLTE(v float64) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLTE(FieldRelevance, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedStep) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedStep) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedStep) predicate.ExtractedStep {
	return predicate.ExtractedStep(sql.NotPredicates(p))
}
