// Code generated by ent, DO NOT EDIT.

package dtcrelatedsensor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldContainsFold(FieldID, id))
}

// DtcMasterID applies equality check predicate on the "dtc_master_id" field. It's identical to DtcMasterIDEQ.
func DtcMasterID(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldDtcMasterID, v))
}

// SensorID applies equality check predicate on the "sensor_id" field. It's identical to SensorIDEQ.
func SensorID(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldSensorID, v))
}

// PriorityRank applies equality check predicate on the "priority_rank" field. It's identical to PriorityRankEQ.
func PriorityRank(v int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldPriorityRank, v))
}

// EvidenceCount applies equality check predicate on the "evidence_count" field. It's identical to EvidenceCountEQ.
func EvidenceCount(v int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldEvidenceCount, v))
}

// AvgTrust applies equality check predicate on the "avg_trust" field. It's identical to AvgTrustEQ.
func AvgTrust(v float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldAvgTrust, v))
}

// AvgRelevance applies equality check predicate on the "avg_relevance" field. It's identical to AvgRelevanceEQ.
func AvgRelevance(v float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldAvgRelevance, v))
}

// ConflictFlag applies equality check predicate on the "conflict_flag" field. It's identical to ConflictFlagEQ.
func ConflictFlag(v bool) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldConflictFlag, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldUpdatedAt, v))
}

// DtcMasterIDEQ applies the EQ predicate on the "dtc_master_id" field.
func DtcMasterIDEQ(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldDtcMasterID, v))
}

// DtcMasterIDNEQ applies the NEQ predicate on the "dtc_master_id" field.
func DtcMasterIDNEQ(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNEQ(FieldDtcMasterID, v))
}

// DtcMasterIDIn applies the In predicate on the "dtc_master_id" field.
func DtcMasterIDIn(vs ...string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldIn(FieldDtcMasterID, vs...))
}

// DtcMasterIDNotIn applies the NotIn predicate on the "dtc_master_id" field.
func DtcMasterIDNotIn(vs ...string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNotIn(FieldDtcMasterID, vs...))
}

// DtcMasterIDGT applies the GT predicate on the "dtc_master_id" field.
func DtcMasterIDGT(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGT(FieldDtcMasterID, v))
}

// DtcMasterIDGTE applies the GTE predicate on the "dtc_master_id" field.
func DtcMasterIDGTE(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGTE(FieldDtcMasterID, v))
}

// DtcMasterIDLT applies the LT predicate on the "dtc_master_id" field.
func DtcMasterIDLT(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLT(FieldDtcMasterID, v))
}

// DtcMasterIDLTE applies the LTE predicate on the "dtc_master_id" field.
func DtcMasterIDLTE(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLTE(FieldDtcMasterID, v))
}

// DtcMasterIDContains applies the Contains predicate on the "dtc_master_id" field.
func DtcMasterIDContains(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldContains(FieldDtcMasterID, v))
}

// DtcMasterIDHasPrefix applies the HasPrefix predicate on the "dtc_master_id" field.
func DtcMasterIDHasPrefix(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldHasPrefix(FieldDtcMasterID, v))
}

// DtcMasterIDHasSuffix applies the HasSuffix predicate on the "dtc_master_id" field.
func DtcMasterIDHasSuffix(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldHasSuffix(FieldDtcMasterID, v))
}

// DtcMasterIDEqualFold applies the EqualFold predicate on the "dtc_master_id" field.
func DtcMasterIDEqualFold(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEqualFold(FieldDtcMasterID, v))
}

// DtcMasterIDContainsFold applies the ContainsFold predicate on the "dtc_master_id" field.
func DtcMasterIDContainsFold(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldContainsFold(FieldDtcMasterID, v))
}

// SensorIDEQ applies the EQ predicate on the "sensor_id" field.
func SensorIDEQ(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldSensorID, v))
}

// SensorIDNEQ applies the NEQ predicate on the "sensor_id" field.
func SensorIDNEQ(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNEQ(FieldSensorID, v))
}

// SensorIDIn applies the In predicate on the "sensor_id" field.
func SensorIDIn(vs ...string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldIn(FieldSensorID, vs...))
}

// SensorIDNotIn applies the NotIn predicate on the "sensor_id" field.
func SensorIDNotIn(vs ...string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNotIn(FieldSensorID, vs...))
}

// SensorIDGT applies the GT predicate on the "sensor_id" field.
func SensorIDGT(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGT(FieldSensorID, v))
}

// SensorIDGTE applies the GTE predicate on the "sensor_id" field.
func SensorIDGTE(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGTE(FieldSensorID, v))
}

// SensorIDLT applies the LT predicate on the "sensor_id" field.
func SensorIDLT(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLT(FieldSensorID, v))
}

// SensorIDLTE applies the LTE predicate on the "sensor_id" field.
func SensorIDLTE(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLTE(FieldSensorID, v))
}

// SensorIDContains applies the Contains predicate on the "sensor_id" field.
func SensorIDContains(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldContains(FieldSensorID, v))
}

// SensorIDHasPrefix applies the HasPrefix predicate on the "sensor_id" field.
func SensorIDHasPrefix(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldHasPrefix(FieldSensorID, v))
}

// SensorIDHasSuffix applies the HasSuffix predicate on the "sensor_id" field.
func SensorIDHasSuffix(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldHasSuffix(FieldSensorID, v))
}

// SensorIDEqualFold applies the EqualFold predicate on the "sensor_id" field.
func SensorIDEqualFold(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEqualFold(FieldSensorID, v))
}

// SensorIDContainsFold applies the ContainsFold predicate on the "sensor_id" field.
func SensorIDContainsFold(v string) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldContainsFold(FieldSensorID, v))
}

// PriorityRankEQ applies the EQ predicate on the "priority_rank" field.
func PriorityRankEQ(v int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldPriorityRank, v))
}

// PriorityRankNEQ applies the NEQ predicate on the "priority_rank" field.
func PriorityRankNEQ(v int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNEQ(FieldPriorityRank, v))
}

// PriorityRankIn applies the In predicate on the "priority_rank" field.
func PriorityRankIn(vs ...int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldIn(FieldPriorityRank, vs...))
}

// PriorityRankNotIn applies the NotIn predicate on the "priority_rank" field.
func PriorityRankNotIn(vs ...int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNotIn(FieldPriorityRank, vs...))
}

// PriorityRankGT applies the GT predicate on the "priority_rank" field.
func PriorityRankGT(v int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGT(FieldPriorityRank, v))
}

// PriorityRankGTE applies the GTE predicate on the "priority_rank" field.
func PriorityRankGTE(v int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGTE(FieldPriorityRank, v))
}

// PriorityRankLT applies the LT predicate on the "priority_rank" field.
func PriorityRankLT(v int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLT(FieldPriorityRank, v))
}

// PriorityRankLTE applies the LTE predicate on the "priority_rank" field.
func PriorityRankLTE(v int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLTE(FieldPriorityRank, v))
}

// EvidenceCountEQ applies the EQ predicate on the "evidence_count" field.
func EvidenceCountEQ(v int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldEvidenceCount, v))
}

// EvidenceCountNEQ applies the NEQ predicate on the "evidence_count" field.
func EvidenceCountNEQ(v int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNEQ(FieldEvidenceCount, v))
}

// EvidenceCountIn applies the In predicate on the "evidence_count" field.
func EvidenceCountIn(vs ...int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldIn(FieldEvidenceCount, vs...))
}

// EvidenceCountNotIn applies the NotIn predicate on the "evidence_count" field.
func EvidenceCountNotIn(vs ...int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNotIn(FieldEvidenceCount, vs...))
}

// EvidenceCountGT applies the GT predicate on the "evidence_count" field.
func EvidenceCountGT(v int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGT(FieldEvidenceCount, v))
}

// EvidenceCountGTE applies the GTE predicate on the "evidence_count" field.
func EvidenceCountGTE(v int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGTE(FieldEvidenceCount, v))
}

// EvidenceCountLT applies the LT predicate on the "evidence_count" field.
func EvidenceCountLT(v int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLT(FieldEvidenceCount, v))
}

// EvidenceCountLTE applies the LTE predicate on the "evidence_count" field.
func EvidenceCountLTE(v int) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLTE(FieldEvidenceCount, v))
}

// AvgTrustEQ applies the EQ predicate on the "avg_trust" field.
func AvgTrustEQ(v float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldAvgTrust, v))
}

// AvgTrustNEQ applies the NEQ predicate on the "avg_trust" field.
func AvgTrustNEQ(v float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNEQ(FieldAvgTrust, v))
}

// AvgTrustIn applies the In predicate on the "avg_trust" field.
func AvgTrustIn(vs ...float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldIn(FieldAvgTrust, vs...))
}

// AvgTrustNotIn applies the NotIn predicate on the "avg_trust" field.
func AvgTrustNotIn(vs ...float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNotIn(FieldAvgTrust, vs...))
}

// AvgTrustGT applies the GT predicate on the "avg_trust" field.
func AvgTrustGT(v float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGT(FieldAvgTrust, v))
}

// AvgTrustGTE applies the GTE predicate on the "avg_trust" field.
func AvgTrustGTE(v float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGTE(FieldAvgTrust, v))
}

// AvgTrustLT applies the LT predicate on the "avg_trust" field.
func AvgTrustLT(v float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLT(FieldAvgTrust, v))
}

// AvgTrustLTE applies the LTE predicate on the "avg_trust" field.
func AvgTrustLTE(v float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLTE(FieldAvgTrust, v))
}

// AvgRelevanceEQ applies the EQ predicate on the "avg_relevance" field.
func AvgRelevanceEQ(v float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldAvgRelevance, v))
}

// AvgRelevanceNEQ applies the NEQ predicate on the "avg_relevance" field.
func AvgRelevanceNEQ(v float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNEQ(FieldAvgRelevance, v))
}

// AvgRelevanceIn applies the In predicate on the "avg_relevance" field.
func AvgRelevanceIn(vs ...float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldIn(FieldAvgRelevance, vs...))
}

// AvgRelevanceNotIn applies the NotIn predicate on the "avg_relevance" field.
func AvgRelevanceNotIn(vs ...float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNotIn(FieldAvgRelevance, vs...))
}

// AvgRelevanceGT applies the GT predicate on the "avg_relevance" field.
func AvgRelevanceGT(v float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGT(FieldAvgRelevance, v))
}

// AvgRelevanceGTE applies the GTE predicate on the "avg_relevance" field.
func AvgRelevanceGTE(v float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGTE(FieldAvgRelevance, v))
}

// AvgRelevanceLT applies the LT predicate on the "avg_relevance" field.
func AvgRelevanceLT(v float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLT(FieldAvgRelevance, v))
}

// AvgRelevanceLTE applies the LTE predicate on the "avg_relevance" field.
func AvgRelevanceLTE(v float64) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLTE(FieldAvgRelevance, v))
}

// ConflictFlagEQ applies the EQ predicate on the "conflict_flag" field.
func ConflictFlagEQ(v bool) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldConflictFlag, v))
}

// ConflictFlagNEQ applies the NEQ predicate on the "conflict_flag" field.
func ConflictFlagNEQ(v bool) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNEQ(FieldConflictFlag, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DTCRelatedSensor) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DTCRelatedSensor) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DTCRelatedSensor) predicate.DTCRelatedSensor {
	return predicate.DTCRelatedSensor(sql.NotPredicates(p))
}
