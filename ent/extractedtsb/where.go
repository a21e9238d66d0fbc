// Code generated by ent, DO NOT EDIT.

package extractedtsb

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldContainsFold(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldDocumentID, v))
}

// TsbNumber applies equality check predicate on the "tsb_number" field. It's identical to TsbNumberEQ.
func TsbNumber(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldTsbNumber, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldTitle, v))
}

// AffectedModels applies equality check predicate on the "affected_models" field. It's identical to AffectedModelsEQ.
func AffectedModels(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldAffectedModels, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldSummary, v))
}

// SourceChunkID applies equality check predicate on the "source_chunk_id" field. It's identical to SourceChunkIDEQ.
func SourceChunkID(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldSourceChunkID, v))
}

// Trust applies equality check predicate on the "trust" field. It's identical to TrustEQ.
func Trust(v float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldTrust, v))
}

// Relevance applies equality check predicate on the "relevance" field. It's identical to RelevanceEQ.
func Relevance(v float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldRelevance, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldContainsFold(FieldDocumentID, v))
}

// TsbNumberEQ applies the EQ predicate on the "tsb_number" field.
func TsbNumberEQ(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldTsbNumber, v))
}

// TsbNumberNEQ applies the NEQ predicate on the "tsb_number" field.
func TsbNumberNEQ(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNEQ(FieldTsbNumber, v))
}

// TsbNumberIn applies the In predicate on the "tsb_number" field.
func TsbNumberIn(vs ...string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldIn(FieldTsbNumber, vs...))
}

// TsbNumberNotIn applies the NotIn predicate on the "tsb_number" field.
func TsbNumberNotIn(vs ...string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNotIn(FieldTsbNumber, vs...))
}

// TsbNumberGT applies the GT predicate on the "tsb_number" field.
func TsbNumberGT(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGT(FieldTsbNumber, v))
}

// TsbNumberGTE applies the GTE predicate on the "tsb_number" field.
func TsbNumberGTE(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGTE(FieldTsbNumber, v))
}

// TsbNumberLT applies the LT predicate on the "tsb_number" field.
func TsbNumberLT(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLT(FieldTsbNumber, v))
}

// TsbNumberLTE applies the LTE predicate on the "tsb_number" field.
func TsbNumberLTE(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLTE(FieldTsbNumber, v))
}

// TsbNumberContains applies the Contains predicate on the "tsb_number" field.
func TsbNumberContains(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldContains(FieldTsbNumber, v))
}

// TsbNumberHasPrefix applies the HasPrefix predicate on the "tsb_number" field.
func TsbNumberHasPrefix(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldHasPrefix(FieldTsbNumber, v))
}

// TsbNumberHasSuffix applies the HasSuffix predicate on the "tsb_number" field.
func TsbNumberHasSuffix(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldHasSuffix(FieldTsbNumber, v))
}

// TsbNumberEqualFold applies the EqualFold predicate on the "tsb_number" field.
func TsbNumberEqualFold(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEqualFold(FieldTsbNumber, v))
}

// TsbNumberContainsFold applies the ContainsFold predicate on the "tsb_number" field.
func TsbNumberContainsFold(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldContainsFold(FieldTsbNumber, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldContainsFold(FieldTitle, v))
}

// AffectedModelsEQ applies the EQ predicate on the "affected_models" field.
func AffectedModelsEQ(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldAffectedModels, v))
}

// AffectedModelsNEQ applies the NEQ predicate on the "affected_models" field.
func AffectedModelsNEQ(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNEQ(FieldAffectedModels, v))
}

// AffectedModelsIn applies the In predicate on the "affected_models" field.
func AffectedModelsIn(vs ...string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldIn(FieldAffectedModels, vs...))
}

// AffectedModelsNotIn applies the NotIn predicate on the "affected_models" field.
func AffectedModelsNotIn(vs ...string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNotIn(FieldAffectedModels, vs...))
}

// AffectedModelsGT applies the GT predicate on the "affected_models" field.
func AffectedModelsGT(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGT(FieldAffectedModels, v))
}

// AffectedModelsGTE applies the GTE predicate on the "affected_models" field.
func AffectedModelsGTE(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGTE(FieldAffectedModels, v))
}

// AffectedModelsLT applies the LT predicate on the "affected_models" field.
func AffectedModelsLT(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLT(FieldAffectedModels, v))
}

// AffectedModelsLTE applies the LTE predicate on the "affected_models" field.
func AffectedModelsLTE(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLTE(FieldAffectedModels, v))
}

// AffectedModelsContains applies the Contains predicate on the "affected_models" field.
func AffectedModelsContains(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldContains(FieldAffectedModels, v))
}

// AffectedModelsHasPrefix applies the HasPrefix predicate on the "affected_models" field.
func AffectedModelsHasPrefix(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldHasPrefix(FieldAffectedModels, v))
}

// AffectedModelsHasSuffix applies the HasSuffix predicate on the "affected_models" field.
func AffectedModelsHasSuffix(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldHasSuffix(FieldAffectedModels, v))
}

// AffectedModelsIsNil applies the IsNil predicate on the "affected_models" field.
func AffectedModelsIsNil() predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldIsNull(FieldAffectedModels))
}

// AffectedModelsNotNil applies the NotNil predicate on the "affected_models" field.
func AffectedModelsNotNil() predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNotNull(FieldAffectedModels))
}

// AffectedModelsEqualFold applies the EqualFold predicate on the "affected_models" field.
func AffectedModelsEqualFold(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEqualFold(FieldAffectedModels, v))
}

// AffectedModelsContainsFold applies the ContainsFold predicate on the "affected_models" field.
func AffectedModelsContainsFold(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldContainsFold(FieldAffectedModels, v))
}

// RelatedDtcCodesIsNil applies the IsNil predicate on the "related_dtc_codes" field.
func RelatedDtcCodesIsNil() predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldIsNull(FieldRelatedDtcCodes))
}

// RelatedDtcCodesNotNil applies the NotNil predicate on the "related_dtc_codes" field.
func RelatedDtcCodesNotNil() predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNotNull(FieldRelatedDtcCodes))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldContainsFold(FieldSummary, v))
}

// SourceChunkIDEQ applies the EQ predicate on the "source_chunk_id" field.
func SourceChunkIDEQ(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldSourceChunkID, v))
}

// SourceChunkIDNEQ applies the NEQ predicate on the "source_chunk_id" field.
func SourceChunkIDNEQ(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNEQ(FieldSourceChunkID, v))
}

// SourceChunkIDIn applies the In predicate on the "source_chunk_id" field.
func SourceChunkIDIn(vs ...string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldIn(FieldSourceChunkID, vs...))
}

// SourceChunkIDNotIn applies the NotIn predicate on the "source_chunk_id" field.
func SourceChunkIDNotIn(vs ...string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNotIn(FieldSourceChunkID, vs...))
}

// SourceChunkIDGT applies the GT predicate on the "source_chunk_id" field.
func SourceChunkIDGT(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGT(FieldSourceChunkID, v))
}

// SourceChunkIDGTE applies the GTE predicate on the "source_chunk_id" field.
func SourceChunkIDGTE(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGTE(FieldSourceChunkID, v))
}

// SourceChunkIDLT applies the LT predicate on the "source_chunk_id" field.
func SourceChunkIDLT(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLT(FieldSourceChunkID, v))
}

// SourceChunkIDLTE applies the LTE predicate on the "source_chunk_id" field.
func SourceChunkIDLTE(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLTE(FieldSourceChunkID, v))
}

// SourceChunkIDContains applies the Contains predicate on the "source_chunk_id" field.
func SourceChunkIDContains(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldContains(FieldSourceChunkID, v))
}

// SourceChunkIDHasPrefix applies the HasPrefix predicate on the "source_chunk_id" field.
func SourceChunkIDHasPrefix(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldHasPrefix(FieldSourceChunkID, v))
}

// SourceChunkIDHasSuffix applies the HasSuffix predicate on the "source_chunk_id" field.
func SourceChunkIDHasSuffix(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldHasSuffix(FieldSourceChunkID, v))
}

// SourceChunkIDEqualFold applies the EqualFold predicate on the "source_chunk_id" field.
func SourceChunkIDEqualFold(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEqualFold(FieldSourceChunkID, v))
}

// SourceChunkIDContainsFold applies the ContainsFold predicate on the "source_chunk_id" field.
func SourceChunkIDContainsFold(v string) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldContainsFold(FieldSourceChunkID, v))
}

// TrustEQ applies the EQ predicate on the "trust" field.
func TrustEQ(v float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldTrust, v))
}

// TrustNEQ applies the NEQ predicate on the "trust" field.
func TrustNEQ(v float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNEQ(FieldTrust, v))
}

// TrustIn applies the In predicate on the "trust" field.
func TrustIn(vs ...float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldIn(FieldTrust, vs...))
}

// TrustNotIn applies the NotIn predicate on the "trust" field.
func TrustNotIn(vs ...float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNotIn(FieldTrust, vs...))
}

// TrustGT applies the GT predicate on the "trust" field.
func TrustGT(v float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGT(FieldTrust, v))
}

// TrustGTE applies the GTE predicate on the "trust" field.
func TrustGTE(v float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGTE(FieldTrust, v))
}

// TrustLT applies the LT predicate on the "trust" field.
func TrustLT(v float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLT(FieldTrust, v))
}

// TrustLTE applies the LTE predicate on the "trust" field.
func TrustLTE(v float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLTE(FieldTrust, v))
}

// RelevanceEQ applies the EQ predicate on the "relevance" field.
func RelevanceEQ(v float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldRelevance, v))
}

// RelevanceNEQ applies the NEQ predicate on the "relevance" field.
func RelevanceNEQ(v float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNEQ(FieldRelevance, v))
}

// RelevanceIn applies the In predicate on the "relevance" field.
func RelevanceIn(vs ...float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldIn(FieldRelevance, vs...))
}

// RelevanceNotIn applies the NotIn predicate on the "relevance" field.
func RelevanceNotIn(vs ...float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNotIn(FieldRelevance, vs...))
}

// RelevanceGT applies the GT predicate on the "relevance" field.
func RelevanceGT(v float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGT(FieldRelevance, v))
}

// RelevanceGTE applies the GTE predicate on the "relevance" field.
func RelevanceGTE(v float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGTE(FieldRelevance, v))
}

// RelevanceLT applies the LT predicate on the "relevance" field.
func RelevanceLT(v float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLT(FieldRelevance, v))
}

// RelevanceLTE applies the LTE predicate on the "relevance" field.
func RelevanceLTE(v float64) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLTE(FieldRelevance, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedTSB) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedTSB) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedTSB) predicate.ExtractedTSB {
	return predicate.ExtractedTSB(sql.NotPredicates(p))
}
