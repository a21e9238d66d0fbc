// Code generated by ent, DO NOT EDIT.

package dtccause

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldContainsFold(FieldID, id))
}

// DtcMasterID applies equality check predicate on the "dtc_master_id" field. It's identical to DtcMasterIDEQ.
func DtcMasterID(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldDtcMasterID, v))
}

// Cause applies equality check predicate on the "cause" field. It's identical to CauseEQ.
func Cause(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldCause, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldFingerprint, v))
}

// ProbabilityWeight applies equality check predicate on the "probability_weight" field. It's identical to ProbabilityWeightEQ.
func ProbabilityWeight(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldProbabilityWeight, v))
}

// EvidenceCount applies equality check predicate on the "evidence_count" field. It's identical to EvidenceCountEQ.
func EvidenceCount(v int) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldEvidenceCount, v))
}

// AvgTrust applies equality check predicate on the "avg_trust" field. It's identical to AvgTrustEQ.
func AvgTrust(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldAvgTrust, v))
}

// AvgRelevance applies equality check predicate on the "avg_relevance" field. It's identical to AvgRelevanceEQ.
func AvgRelevance(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldAvgRelevance, v))
}

// ConflictFlag applies equality check predicate on the "conflict_flag" field. It's identical to ConflictFlagEQ.
func ConflictFlag(v bool) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldConflictFlag, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldUpdatedAt, v))
}

// DtcMasterIDEQ applies the EQ predicate on the "dtc_master_id" field.
func DtcMasterIDEQ(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldDtcMasterID, v))
}

// DtcMasterIDNEQ applies the NEQ predicate on the "dtc_master_id" field.
func DtcMasterIDNEQ(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNEQ(FieldDtcMasterID, v))
}

// DtcMasterIDIn applies the In predicate on the "dtc_master_id" field.
func DtcMasterIDIn(vs ...string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldIn(FieldDtcMasterID, vs...))
}

// DtcMasterIDNotIn applies the NotIn predicate on the "dtc_master_id" field.
func DtcMasterIDNotIn(vs ...string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNotIn(FieldDtcMasterID, vs...))
}

// DtcMasterIDGT applies the GT predicate on the "dtc_master_id" field.
func DtcMasterIDGT(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGT(FieldDtcMasterID, v))
}

// DtcMasterIDGTE applies the GTE predicate on the "dtc_master_id" field.
func DtcMasterIDGTE(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGTE(FieldDtcMasterID, v))
}

// DtcMasterIDLT applies the LT predicate on the "dtc_master_id" field.
func DtcMasterIDLT(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLT(FieldDtcMasterID, v))
}

// DtcMasterIDLTE applies the LTE predicate on the "dtc_master_id" field.
func DtcMasterIDLTE(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLTE(FieldDtcMasterID, v))
}

// DtcMasterIDContains applies the Contains predicate on the "dtc_master_id" field.
func DtcMasterIDContains(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldContains(FieldDtcMasterID, v))
}

// DtcMasterIDHasPrefix applies the HasPrefix predicate on the "dtc_master_id" field.
func DtcMasterIDHasPrefix(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldHasPrefix(FieldDtcMasterID, v))
}

// DtcMasterIDHasSuffix applies the HasSuffix predicate on the "dtc_master_id" field.
func DtcMasterIDHasSuffix(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldHasSuffix(FieldDtcMasterID, v))
}

// DtcMasterIDEqualFold applies the EqualFold predicate on the "dtc_master_id" field.
func DtcMasterIDEqualFold(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEqualFold(FieldDtcMasterID, v))
}

// DtcMasterIDContainsFold applies the ContainsFold predicate on the "dtc_master_id" field.
func DtcMasterIDContainsFold(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldContainsFold(FieldDtcMasterID, v))
}

// CauseEQ applies the EQ predicate on the "cause" field.
func CauseEQ(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldCause, v))
}

// CauseNEQ applies the NEQ predicate on the "cause" field.
func CauseNEQ(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNEQ(FieldCause, v))
}

// CauseIn applies the In predicate on the "cause" field.
func CauseIn(vs ...string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldIn(FieldCause, vs...))
}

// CauseNotIn applies the NotIn predicate on the "cause" field.
func CauseNotIn(vs ...string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNotIn(FieldCause, vs...))
}

// CauseGT applies the GT predicate on the "cause" field.
func CauseGT(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGT(FieldCause, v))
}

// CauseGTE applies the GTE predicate on the "cause" field.
func CauseGTE(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGTE(FieldCause, v))
}

// CauseLT applies the LT predicate on the "cause" field.
func CauseLT(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLT(FieldCause, v))
}

// CauseLTE applies the LTE predicate on the "cause" field.
func CauseLTE(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLTE(FieldCause, v))
}

// CauseContains applies the Contains predicate on the "cause" field.
func CauseContains(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldContains(FieldCause, v))
}

// CauseHasPrefix applies the HasPrefix predicate on the "cause" field.
func CauseHasPrefix(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldHasPrefix(FieldCause, v))
}

// CauseHasSuffix applies the HasSuffix predicate on the "cause" field.
func CauseHasSuffix(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldHasSuffix(FieldCause, v))
}

// CauseEqualFold applies the EqualFold predicate on the "cause" field.
func CauseEqualFold(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEqualFold(FieldCause, v))
}

// CauseContainsFold applies the ContainsFold predicate on the "cause" field.
func CauseContainsFold(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldContainsFold(FieldCause, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldContainsFold(FieldFingerprint, v))
}

// ProbabilityWeightEQ applies the EQ predicate on the "probability_weight" field.
func ProbabilityWeightEQ(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldProbabilityWeight, v))
}

// ProbabilityWeightNEQ applies the NEQ predicate on the "probability_weight" field.
func ProbabilityWeightNEQ(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNEQ(FieldProbabilityWeight, v))
}

// ProbabilityWeightIn applies the In predicate on the "probability_weight" field.
func ProbabilityWeightIn(vs ...float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldIn(FieldProbabilityWeight, vs...))
}

// ProbabilityWeightNotIn applies the NotIn predicate on the "probability_weight" field.
func ProbabilityWeightNotIn(vs ...float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNotIn(FieldProbabilityWeight, vs...))
}

// ProbabilityWeightGT applies the GT predicate on the "probability_weight" field.
func ProbabilityWeightGT(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGT(FieldProbabilityWeight, v))
}

// ProbabilityWeightGTE applies the GTE predicate on the "probability_weight" field.
func ProbabilityWeightGTE(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGTE(FieldProbabilityWeight, v))
}

// ProbabilityWeightLT applies the LT predicate on the "probability_weight" field.
func ProbabilityWeightLT(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLT(FieldProbabilityWeight, v))
}

// ProbabilityWeightLTE applies the LTE predicate on the "probability_weight" field.
func ProbabilityWeightLTE(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLTE(FieldProbabilityWeight, v))
}

// EvidenceCountEQ applies the EQ predicate on the "evidence_count" field.
func EvidenceCountEQ(v int) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldEvidenceCount, v))
}

// EvidenceCountNEQ applies the NEQ predicate on the "evidence_count" field.
func EvidenceCountNEQ(v int) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNEQ(FieldEvidenceCount, v))
}

// EvidenceCountIn applies the In predicate on the "evidence_count" field.
func EvidenceCountIn(vs ...int) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldIn(FieldEvidenceCount, vs...))
}

// EvidenceCountNotIn applies the NotIn predicate on the "evidence_count" field.
func EvidenceCountNotIn(vs ...int) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNotIn(FieldEvidenceCount, vs...))
}

// EvidenceCountGT applies the GT predicate on the "evidence_count" field.
func EvidenceCountGT(v int) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGT(FieldEvidenceCount, v))
}

// EvidenceCountGTE applies the GTE predicate on the "evidence_count" field.
func EvidenceCountGTE(v int) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGTE(FieldEvidenceCount, v))
}

// EvidenceCountLT applies the LT predicate on the "evidence_count" field.
func EvidenceCountLT(v int) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLT(FieldEvidenceCount, v))
}

// EvidenceCountLTE applies the LTE predicate on the "evidence_count" field.
func EvidenceCountLTE(v int) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLTE(FieldEvidenceCount, v))
}

// AvgTrustEQ applies the EQ predicate on the "avg_trust" field.
func AvgTrustEQ(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldAvgTrust, v))
}

// AvgTrustNEQ applies the NEQ predicate on the "avg_trust" field.
func AvgTrustNEQ(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNEQ(FieldAvgTrust, v))
}

// AvgTrustIn applies the In predicate on the "avg_trust" field.
func AvgTrustIn(vs ...float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldIn(FieldAvgTrust, vs...))
}

// AvgTrustNotIn applies the NotIn predicate on the "avg_trust" field.
func AvgTrustNotIn(vs ...float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNotIn(FieldAvgTrust, vs...))
}

// AvgTrustGT applies the GT predicate on the "avg_trust" field.
func AvgTrustGT(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGT(FieldAvgTrust, v))
}

// AvgTrustGTE applies the GTE predicate on the "avg_trust" field.
func AvgTrustGTE(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGTE(FieldAvgTrust, v))
}

// AvgTrustLT applies the LT predicate on the "avg_trust" field.
func AvgTrustLT(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLT(FieldAvgTrust, v))
}

// AvgTrustLTE applies the LTE predicate on the "avg_trust" field.
func AvgTrustLTE(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLTE(FieldAvgTrust, v))
}

// AvgRelevanceEQ applies the EQ predicate on the "avg_relevance" field.
func AvgRelevanceEQ(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldAvgRelevance, v))
}

// AvgRelevanceNEQ applies the NEQ predicate on the "avg_relevance" field.
func AvgRelevanceNEQ(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNEQ(FieldAvgRelevance, v))
}

// AvgRelevanceIn applies the In predicate on the "avg_relevance" field.
func AvgRelevanceIn(vs ...float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldIn(FieldAvgRelevance, vs...))
}

// AvgRelevanceNotIn applies the NotIn predicate on the "avg_relevance" field.
func AvgRelevanceNotIn(vs ...float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNotIn(FieldAvgRelevance, vs...))
}

// AvgRelevanceGT applies the GT predicate on the "avg_relevance" field.
func AvgRelevanceGT(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGT(FieldAvgRelevance, v))
}

// AvgRelevanceGTE applies the GTE predicate on the "avg_relevance" field.
func AvgRelevanceGTE(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGTE(FieldAvgRelevance, v))
}

// AvgRelevanceLT applies the LT predicate on the "avg_relevance" field.
func AvgRelevanceLT(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLT(FieldAvgRelevance, v))
}

// AvgRelevanceLTE applies the LTE predicate on the "avg_relevance" field.
func AvgRelevanceLTE(v float64) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLTE(FieldAvgRelevance, v))
}

// ConflictFlagEQ applies the EQ predicate on the "conflict_flag" field.
func ConflictFlagEQ(v bool) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldConflictFlag, v))
}

// ConflictFlagNEQ applies the NEQ predicate on the "conflict_flag" field.
func ConflictFlagNEQ(v bool) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNEQ(FieldConflictFlag, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DTCCause {
	return predicate.DTCCause(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DTCCause) predicate.DTCCause {
	return predicate.DTCCause(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DTCCause) predicate.DTCCause {
	return predicate.DTCCause(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DTCCause) predicate.DTCCause {
	return predicate.DTCCause(sql.NotPredicates(p))
}
