// Code generated by ent, DO NOT EDIT.

package dtcmaster

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldContainsFold(FieldID, id))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldCode, v))
}

// SystemCategory applies equality check predicate on the "system_category" field. It's identical to SystemCategoryEQ.
func SystemCategory(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldSystemCategory, v))
}

// GenericDescription applies equality check predicate on the "generic_description" field. It's identical to GenericDescriptionEQ.
func GenericDescription(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldGenericDescription, v))
}

// DescriptionTrust applies equality check predicate on the "description_trust" field. It's identical to DescriptionTrustEQ.
func DescriptionTrust(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldDescriptionTrust, v))
}

// SeverityLevel applies equality check predicate on the "severity_level" field. It's identical to SeverityLevelEQ.
func SeverityLevel(v int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldSeverityLevel, v))
}

// EmissionsRelated applies equality check predicate on the "emissions_related" field. It's identical to EmissionsRelatedEQ.
func EmissionsRelated(v bool) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldEmissionsRelated, v))
}

// EvidenceCount applies equality check predicate on the "evidence_count" field. It's identical to EvidenceCountEQ.
func EvidenceCount(v int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldEvidenceCount, v))
}

// AvgTrust applies equality check predicate on the "avg_trust" field. It's identical to AvgTrustEQ.
func AvgTrust(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldAvgTrust, v))
}

// AvgRelevance applies equality check predicate on the "avg_relevance" field. It's identical to AvgRelevanceEQ.
func AvgRelevance(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldAvgRelevance, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConflictFlag applies equality check predicate on the "conflict_flag" field. It's identical to ConflictFlagEQ.
func ConflictFlag(v bool) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldConflictFlag, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldUpdatedAt, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldContainsFold(FieldCode, v))
}

// SystemCategoryEQ applies the EQ predicate on the "system_category" field.
func SystemCategoryEQ(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldSystemCategory, v))
}

// SystemCategoryNEQ applies the NEQ predicate on the "system_category" field.
func SystemCategoryNEQ(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNEQ(FieldSystemCategory, v))
}

// SystemCategoryIn applies the In predicate on the "system_category" field.
func SystemCategoryIn(vs ...string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldIn(FieldSystemCategory, vs...))
}

// SystemCategoryNotIn applies the NotIn predicate on the "system_category" field.
func SystemCategoryNotIn(vs ...string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNotIn(FieldSystemCategory, vs...))
}

// SystemCategoryGT applies the GT predicate on the "system_category" field.
func SystemCategoryGT(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGT(FieldSystemCategory, v))
}

// SystemCategoryGTE applies the GTE predicate on the "system_category" field.
func SystemCategoryGTE(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGTE(FieldSystemCategory, v))
}

// SystemCategoryLT applies the LT predicate on the "system_category" field.
func SystemCategoryLT(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLT(FieldSystemCategory, v))
}

// SystemCategoryLTE applies the LTE predicate on the "system_category" field.
func SystemCategoryLTE(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLTE(FieldSystemCategory, v))
}

// SystemCategoryContains applies the Contains predicate on the "system_category" field.
func SystemCategoryContains(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldContains(FieldSystemCategory, v))
}

// SystemCategoryHasPrefix applies the HasPrefix predicate on the "system_category" field.
func SystemCategoryHasPrefix(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldHasPrefix(FieldSystemCategory, v))
}

// SystemCategoryHasSuffix applies the HasSuffix predicate on the "system_category" field.
func SystemCategoryHasSuffix(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldHasSuffix(FieldSystemCategory, v))
}

// SystemCategoryEqualFold applies the EqualFold predicate on the "system_category" field.
func SystemCategoryEqualFold(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEqualFold(FieldSystemCategory, v))
}

// SystemCategoryContainsFold applies the ContainsFold predicate on the "system_category" field.
func SystemCategoryContainsFold(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldContainsFold(FieldSystemCategory, v))
}

// GenericDescriptionEQ applies the EQ predicate on the "generic_description" field.
func GenericDescriptionEQ(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldGenericDescription, v))
}

// GenericDescriptionNEQ applies the NEQ predicate on the "generic_description" field.
func GenericDescriptionNEQ(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNEQ(FieldGenericDescription, v))
}

// GenericDescriptionIn applies the In predicate on the "generic_description" field.
func GenericDescriptionIn(vs ...string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldIn(FieldGenericDescription, vs...))
}

// GenericDescriptionNotIn applies the NotIn predicate on the "generic_description" field.
func GenericDescriptionNotIn(vs ...string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNotIn(FieldGenericDescription, vs...))
}

// GenericDescriptionGT applies the GT predicate on the "generic_description" field.
func GenericDescriptionGT(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGT(FieldGenericDescription, v))
}

// GenericDescriptionGTE applies the GTE predicate on the "generic_description" field.
func GenericDescriptionGTE(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGTE(FieldGenericDescription, v))
}

// GenericDescriptionLT applies the LT predicate on the "generic_description" field.
func GenericDescriptionLT(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLT(FieldGenericDescription, v))
}

// GenericDescriptionLTE applies the LTE predicate on the "generic_description" field.
func GenericDescriptionLTE(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLTE(FieldGenericDescription, v))
}

// GenericDescriptionContains applies the Contains predicate on the "generic_description" field.
func GenericDescriptionContains(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldContains(FieldGenericDescription, v))
}

// GenericDescriptionHasPrefix applies the HasPrefix predicate on the "generic_description" field.
func GenericDescriptionHasPrefix(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldHasPrefix(FieldGenericDescription, v))
}

// GenericDescriptionHasSuffix applies the HasSuffix predicate on the "generic_description" field.
func GenericDescriptionHasSuffix(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldHasSuffix(FieldGenericDescription, v))
}

// GenericDescriptionIsNil applies the IsNil predicate on the "generic_description" field.
func GenericDescriptionIsNil() predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldIsNull(FieldGenericDescription))
}

// GenericDescriptionNotNil applies the NotNil predicate on the "generic_description" field.
func GenericDescriptionNotNil() predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNotNull(FieldGenericDescription))
}

// GenericDescriptionEqualFold applies the EqualFold predicate on the "generic_description" field.
func GenericDescriptionEqualFold(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEqualFold(FieldGenericDescription, v))
}

// GenericDescriptionContainsFold applies the ContainsFold predicate on the "generic_description" field.
func GenericDescriptionContainsFold(v string) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldContainsFold(FieldGenericDescription, v))
}

// DescriptionTrustEQ applies the EQ predicate on the "description_trust" field.
func DescriptionTrustEQ(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldDescriptionTrust, v))
}

// DescriptionTrustNEQ applies the NEQ predicate on the "description_trust" field.
func DescriptionTrustNEQ(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNEQ(FieldDescriptionTrust, v))
}

// DescriptionTrustIn applies the In predicate on the "description_trust" field.
func DescriptionTrustIn(vs ...float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldIn(FieldDescriptionTrust, vs...))
}

// DescriptionTrustNotIn applies the NotIn predicate on the "description_trust" field.
func DescriptionTrustNotIn(vs ...float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNotIn(FieldDescriptionTrust, vs...))
}

// DescriptionTrustGT applies the GT predicate on the "description_trust" field.
func DescriptionTrustGT(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGT(FieldDescriptionTrust, v))
}

// DescriptionTrustGTE applies the GTE predicate on the "description_trust" field.
func DescriptionTrustGTE(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGTE(FieldDescriptionTrust, v))
}

// DescriptionTrustLT applies the LT predicate on the "description_trust" field.
func DescriptionTrustLT(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLT(FieldDescriptionTrust, v))
}

// DescriptionTrustLTE applies the LTE predicate on the "description_trust" field.
func DescriptionTrustLTE(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLTE(FieldDescriptionTrust, v))
}

// SeverityLevelEQ applies the EQ predicate on the "severity_level" field.
func SeverityLevelEQ(v int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldSeverityLevel, v))
}

// SeverityLevelNEQ applies the NEQ predicate on the "severity_level" field.
func SeverityLevelNEQ(v int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNEQ(FieldSeverityLevel, v))
}

// SeverityLevelIn applies the In predicate on the "severity_level" field.
func SeverityLevelIn(vs ...int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldIn(FieldSeverityLevel, vs...))
}

// SeverityLevelNotIn applies the NotIn predicate on the "severity_level" field.
func SeverityLevelNotIn(vs ...int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNotIn(FieldSeverityLevel, vs...))
}

// SeverityLevelGT applies the GT predicate on the "severity_level" field.
func SeverityLevelGT(v int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGT(FieldSeverityLevel, v))
}

// SeverityLevelGTE applies the GTE predicate on the "severity_level" field.
func SeverityLevelGTE(v int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGTE(FieldSeverityLevel, v))
}

// SeverityLevelLT applies the LT predicate on the "severity_level" field.
func SeverityLevelLT(v int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLT(FieldSeverityLevel, v))
}

// SeverityLevelLTE applies the LTE predicate on the "severity_level" field.
func SeverityLevelLTE(v int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLTE(FieldSeverityLevel, v))
}

// EmissionsRelatedEQ applies the EQ predicate on the "emissions_related" field.
func EmissionsRelatedEQ(v bool) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldEmissionsRelated, v))
}

// EmissionsRelatedNEQ applies the NEQ predicate on the "emissions_related" field.
func EmissionsRelatedNEQ(v bool) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNEQ(FieldEmissionsRelated, v))
}

// EvidenceCountEQ applies the EQ predicate on the "evidence_count" field.
func EvidenceCountEQ(v int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldEvidenceCount, v))
}

// EvidenceCountNEQ applies the NEQ predicate on the "evidence_count" field.
func EvidenceCountNEQ(v int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNEQ(FieldEvidenceCount, v))
}

// EvidenceCountIn applies the In predicate on the "evidence_count" field.
func EvidenceCountIn(vs ...int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldIn(FieldEvidenceCount, vs...))
}

// EvidenceCountNotIn applies the NotIn predicate on the "evidence_count" field.
func EvidenceCountNotIn(vs ...int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNotIn(FieldEvidenceCount, vs...))
}

// EvidenceCountGT applies the GT predicate on the "evidence_count" field.
func EvidenceCountGT(v int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGT(FieldEvidenceCount, v))
}

// EvidenceCountGTE applies the GTE predicate on the "evidence_count" field.
func EvidenceCountGTE(v int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGTE(FieldEvidenceCount, v))
}

// EvidenceCountLT applies the LT predicate on the "evidence_count" field.
func EvidenceCountLT(v int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLT(FieldEvidenceCount, v))
}

// EvidenceCountLTE applies the LTE predicate on the "evidence_count" field.
func EvidenceCountLTE(v int) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLTE(FieldEvidenceCount, v))
}

// AvgTrustEQ applies the EQ predicate on the "avg_trust" field.
func AvgTrustEQ(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldAvgTrust, v))
}

// AvgTrustNEQ applies the NEQ predicate on the "avg_trust" field.
func AvgTrustNEQ(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNEQ(FieldAvgTrust, v))
}

// AvgTrustIn applies the In predicate on the "avg_trust" field.
func AvgTrustIn(vs ...float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldIn(FieldAvgTrust, vs...))
}

// AvgTrustNotIn applies the NotIn predicate on the "avg_trust" field.
func AvgTrustNotIn(vs ...float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNotIn(FieldAvgTrust, vs...))
}

// AvgTrustGT applies the GT predicate on the "avg_trust" field.
func AvgTrustGT(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGT(FieldAvgTrust, v))
}

// AvgTrustGTE applies the GTE predicate on the "avg_trust" field.
func AvgTrustGTE(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGTE(FieldAvgTrust, v))
}

// AvgTrustLT applies the LT predicate on the "avg_trust" field.
func AvgTrustLT(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLT(FieldAvgTrust, v))
}

// AvgTrustLTE applies the LTE predicate on the "avg_trust" field.
func AvgTrustLTE(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLTE(FieldAvgTrust, v))
}

// AvgRelevanceEQ applies the EQ predicate on the "avg_relevance" field.
func AvgRelevanceEQ(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldAvgRelevance, v))
}

// AvgRelevanceNEQ applies the NEQ predicate on the "avg_relevance" field.
func AvgRelevanceNEQ(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNEQ(FieldAvgRelevance, v))
}

// AvgRelevanceIn applies the In predicate on the "avg_relevance" field.
func AvgRelevanceIn(vs ...float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldIn(FieldAvgRelevance, vs...))
}

// AvgRelevanceNotIn applies the NotIn predicate on the "avg_relevance" field.
func AvgRelevanceNotIn(vs ...float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNotIn(FieldAvgRelevance, vs...))
}

// AvgRelevanceGT applies the GT predicate on the "avg_relevance" field.
func AvgRelevanceGT(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGT(FieldAvgRelevance, v))
}

// AvgRelevanceGTE applies the GTE predicate on the "avg_relevance" field.
func AvgRelevanceGTE(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGTE(FieldAvgRelevance, v))
}

// AvgRelevanceLT applies the LT predicate on the "avg_relevance" field.
func AvgRelevanceLT(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLT(FieldAvgRelevance, v))
}

// AvgRelevanceLTE applies the LTE predicate on the "avg_relevance" field.
func AvgRelevanceLTE(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLTE(FieldAvgRelevance, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLTE(FieldConfidenceScore, v))
}

// ConflictFlagEQ applies the EQ predicate on the "conflict_flag" field.
func ConflictFlagEQ(v bool) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldConflictFlag, v))
}

// ConflictFlagNEQ applies the NEQ predicate on the "conflict_flag" field.
func ConflictFlagNEQ(v bool) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNEQ(FieldConflictFlag, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DTCMaster {
	return predicate.DTCMaster(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DTCMaster) predicate.DTCMaster {
	return predicate.DTCMaster(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DTCMaster) predicate.DTCMaster {
	return predicate.DTCMaster(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DTCMaster) predicate.DTCMaster {
	return predicate.DTCMaster(sql.NotPredicates(p))
}
