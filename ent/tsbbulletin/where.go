// Code generated by ent, DO NOT EDIT.

package tsbbulletin

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldContainsFold(FieldID, id))
}

// TsbNumber applies equality check predicate on the "tsb_number" field. It's identical to TsbNumberEQ.
func TsbNumber(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldTsbNumber, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldTitle, v))
}

// AffectedModels applies equality check predicate on the "affected_models" field. It's identical to AffectedModelsEQ.
func AffectedModels(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldAffectedModels, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldSummary, v))
}

// EvidenceCount applies equality check predicate on the "evidence_count" field. It's identical to EvidenceCountEQ.
func EvidenceCount(v int) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldEvidenceCount, v))
}

// AvgTrust applies equality check predicate on the "avg_trust" field. It's identical to AvgTrustEQ.
func AvgTrust(v float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldAvgTrust, v))
}

// AvgRelevance applies equality check predicate on the "avg_relevance" field. It's identical to AvgRelevanceEQ.
func AvgRelevance(v float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldAvgRelevance, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldUpdatedAt, v))
}

// TsbNumberEQ applies the EQ predicate on the "tsb_number" field.
func TsbNumberEQ(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldTsbNumber, v))
}

// TsbNumberNEQ applies the NEQ predicate on the "tsb_number" field.
func TsbNumberNEQ(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNEQ(FieldTsbNumber, v))
}

// TsbNumberIn applies the In predicate on the "tsb_number" field.
func TsbNumberIn(vs ...string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldIn(FieldTsbNumber, vs...))
}

// TsbNumberNotIn applies the NotIn predicate on the "tsb_number" field.
func TsbNumberNotIn(vs ...string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNotIn(FieldTsbNumber, vs...))
}

// TsbNumberGT applies the GT predicate on the "tsb_number" field.
func TsbNumberGT(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGT(FieldTsbNumber, v))
}

// TsbNumberGTE applies the GTE predicate on the "tsb_number" field.
func TsbNumberGTE(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGTE(FieldTsbNumber, v))
}

// TsbNumberLT applies the LT predicate on the "tsb_number" field.
func TsbNumberLT(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLT(FieldTsbNumber, v))
}

// TsbNumberLTE applies the LTE predicate on the "tsb_number" field.
func TsbNumberLTE(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLTE(FieldTsbNumber, v))
}

// TsbNumberContains applies the Contains predicate on the "tsb_number" field.
func TsbNumberContains(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldContains(FieldTsbNumber, v))
}

// TsbNumberHasPrefix applies the HasPrefix predicate on the "tsb_number" field.
func TsbNumberHasPrefix(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldHasPrefix(FieldTsbNumber, v))
}

// TsbNumberHasSuffix applies the HasSuffix predicate on the "tsb_number" field.
func TsbNumberHasSuffix(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldHasSuffix(FieldTsbNumber, v))
}

// TsbNumberEqualFold applies the EqualFold predicate on the "tsb_number" field.
func TsbNumberEqualFold(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEqualFold(FieldTsbNumber, v))
}

// TsbNumberContainsFold applies the ContainsFold predicate on the "tsb_number" field.
func TsbNumberContainsFold(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldContainsFold(FieldTsbNumber, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldContainsFold(FieldTitle, v))
}

// AffectedModelsEQ applies the EQ predicate on the "affected_models" field.
func AffectedModelsEQ(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldAffectedModels, v))
}

// AffectedModelsNEQ applies the NEQ predicate on the "affected_models" field.
func AffectedModelsNEQ(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNEQ(FieldAffectedModels, v))
}

// AffectedModelsIn applies the In predicate on the "affected_models" field.
func AffectedModelsIn(vs ...string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldIn(FieldAffectedModels, vs...))
}

// AffectedModelsNotIn applies the NotIn predicate on the "affected_models" field.
func AffectedModelsNotIn(vs ...string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNotIn(FieldAffectedModels, vs...))
}

// AffectedModelsGT applies the GT predicate on the "affected_models" field.
func AffectedModelsGT(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGT(FieldAffectedModels, v))
}

// AffectedModelsGTE applies the GTE predicate on the "affected_models" field.
func AffectedModelsGTE(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGTE(FieldAffectedModels, v))
}

// AffectedModelsLT applies the LT predicate on the "affected_models" field.
func AffectedModelsLT(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLT(FieldAffectedModels, v))
}

// AffectedModelsLTE applies the LTE predicate on the "affected_models" field.
func AffectedModelsLTE(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLTE(FieldAffectedModels, v))
}

// AffectedModelsContains applies the Contains predicate on the "affected_models" field.
func AffectedModelsContains(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldContains(FieldAffectedModels, v))
}

// AffectedModelsHasPrefix applies the HasPrefix predicate on the "affected_models" field.
func AffectedModelsHasPrefix(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldHasPrefix(FieldAffectedModels, v))
}

// AffectedModelsHasSuffix applies the HasSuffix predicate on the "affected_models" field.
func AffectedModelsHasSuffix(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldHasSuffix(FieldAffectedModels, v))
}

// AffectedModelsIsNil applies the IsNil predicate on the "affected_models" field.
func AffectedModelsIsNil() predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldIsNull(FieldAffectedModels))
}

// AffectedModelsNotNil applies the NotNil predicate on the "affected_models" field.
func AffectedModelsNotNil() predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNotNull(FieldAffectedModels))
}

// AffectedModelsEqualFold applies the EqualFold predicate on the "affected_models" field.
func AffectedModelsEqualFold(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEqualFold(FieldAffectedModels, v))
}

// AffectedModelsContainsFold applies the ContainsFold predicate on the "affected_models" field.
func AffectedModelsContainsFold(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldContainsFold(FieldAffectedModels, v))
}

// RelatedDtcCodesIsNil applies the IsNil predicate on the "related_dtc_codes" field.
func RelatedDtcCodesIsNil() predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldIsNull(FieldRelatedDtcCodes))
}

// RelatedDtcCodesNotNil applies the NotNil predicate on the "related_dtc_codes" field.
func RelatedDtcCodesNotNil() predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNotNull(FieldRelatedDtcCodes))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldContainsFold(FieldSummary, v))
}

// EvidenceCountEQ applies the EQ predicate on the "evidence_count" field.
func EvidenceCountEQ(v int) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldEvidenceCount, v))
}

// EvidenceCountNEQ applies the NEQ predicate on the "evidence_count" field.
func EvidenceCountNEQ(v int) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNEQ(FieldEvidenceCount, v))
}

// EvidenceCountIn applies the In predicate on the "evidence_count" field.
func EvidenceCountIn(vs ...int) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldIn(FieldEvidenceCount, vs...))
}

// EvidenceCountNotIn applies the NotIn predicate on the "evidence_count" field.
func EvidenceCountNotIn(vs ...int) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNotIn(FieldEvidenceCount, vs...))
}

// EvidenceCountGT applies the GT predicate on the "evidence_count" field.
func EvidenceCountGT(v int) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGT(FieldEvidenceCount, v))
}

// EvidenceCountGTE applies the GTE predicate on the "evidence_count" field.
func EvidenceCountGTE(v int) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGTE(FieldEvidenceCount, v))
}

// EvidenceCountLT applies the LT predicate on the "evidence_count" field.
func EvidenceCountLT(v int) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLT(FieldEvidenceCount, v))
}

// EvidenceCountLTE applies the LTE predicate on the "evidence_count" field.
func EvidenceCountLTE(v int) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLTE(FieldEvidenceCount, v))
}

// AvgTrustEQ applies the EQ predicate on the "avg_trust" field.
func AvgTrustEQ(v float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldAvgTrust, v))
}

// AvgTrustNEQ applies the NEQ predicate on the "avg_trust" field.
func AvgTrustNEQ(v float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNEQ(FieldAvgTrust, v))
}

// AvgTrustIn applies the In predicate on the "avg_trust" field.
func AvgTrustIn(vs ...float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldIn(FieldAvgTrust, vs...))
}

// AvgTrustNotIn applies the NotIn predicate on the "avg_trust" field.
func AvgTrustNotIn(vs ...float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNotIn(FieldAvgTrust, vs...))
}

// AvgTrustGT applies the GT predicate on the "avg_trust" field.
func AvgTrustGT(v float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGT(FieldAvgTrust, v))
}

// AvgTrustGTE applies the GTE predicate on the "avg_trust" field.
func AvgTrustGTE(v float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGTE(FieldAvgTrust, v))
}

// AvgTrustLT applies the LT predicate on the "avg_trust" field.
func AvgTrustLT(v float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLT(FieldAvgTrust, v))
}

// AvgTrustLTE applies the LTE predicate on the "avg_trust" field.
func AvgTrustLTE(v float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLTE(FieldAvgTrust, v))
}

// AvgRelevanceEQ applies the EQ predicate on the "avg_relevance" field.
func AvgRelevanceEQ(v float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldAvgRelevance, v))
}

// AvgRelevanceNEQ applies the NEQ predicate on the "avg_relevance" field.
func AvgRelevanceNEQ(v float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNEQ(FieldAvgRelevance, v))
}

// AvgRelevanceIn applies the In predicate on the "avg_relevance" field.
func AvgRelevanceIn(vs ...float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldIn(FieldAvgRelevance, vs...))
}

// AvgRelevanceNotIn applies the NotIn predicate on the "avg_relevance" field.
func AvgRelevanceNotIn(vs ...float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNotIn(FieldAvgRelevance, vs...))
}

// AvgRelevanceGT applies the GT predicate on the "avg_relevance" field.
func AvgRelevanceGT(v float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGT(FieldAvgRelevance, v))
}

// AvgRelevanceGTE applies the GTE predicate on the "avg_relevance" field.
func AvgRelevanceGTE(v float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGTE(FieldAvgRelevance, v))
}

// AvgRelevanceLT applies the LT predicate on the "avg_relevance" field.
func AvgRelevanceLT(v float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLT(FieldAvgRelevance, v))
}

// AvgRelevanceLTE applies the LTE predicate on the "avg_relevance" field.
func AvgRelevanceLTE(v float64) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLTE(FieldAvgRelevance, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TSBBulletin) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TSBBulletin) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TSBBulletin) predicate.TSBBulletin {
	return predicate.TSBBulletin(sql.NotPredicates(p))
}
