// Code generated by ent, DO NOT EDIT.

package vehicledtc

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldContainsFold(FieldID, id))
}

// VehicleID applies equality check predicate on the "vehicle_id" field. It's identical to VehicleIDEQ.
func VehicleID(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldEQ(FieldVehicleID, v))
}

// DtcMasterID applies equality check predicate on the "dtc_master_id" field. It's identical to DtcMasterIDEQ.
func DtcMasterID(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldEQ(FieldDtcMasterID, v))
}

// SourceChunkID applies equality check predicate on the "source_chunk_id" field. It's identical to SourceChunkIDEQ.
func SourceChunkID(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldEQ(FieldSourceChunkID, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldEQ(FieldConfidenceScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldEQ(FieldCreatedAt, v))
}

// VehicleIDEQ applies the EQ predicate on the "vehicle_id" field.
func VehicleIDEQ(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldEQ(FieldVehicleID, v))
}

// VehicleIDNEQ applies the NEQ predicate on the "vehicle_id" field.
func VehicleIDNEQ(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldNEQ(FieldVehicleID, v))
}

// VehicleIDIn applies the In predicate on the "vehicle_id" field.
func VehicleIDIn(vs ...string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldIn(FieldVehicleID, vs...))
}

// VehicleIDNotIn applies the NotIn predicate on the "vehicle_id" field.
func VehicleIDNotIn(vs ...string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldNotIn(FieldVehicleID, vs...))
}

// VehicleIDGT applies the GT predicate on the "vehicle_id" field.
func VehicleIDGT(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldGT(FieldVehicleID, v))
}

// VehicleIDGTE applies the GTE predicate on the "vehicle_id" field.
func VehicleIDGTE(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldGTE(FieldVehicleID, v))
}

// VehicleIDLT applies the LT predicate on the "vehicle_id" field.
func VehicleIDLT(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldLT(FieldVehicleID, v))
}

// VehicleIDLTE applies the LTE predicate on the "vehicle_id" field.
func VehicleIDLTE(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldLTE(FieldVehicleID, v))
}

// VehicleIDContains applies the Contains predicate on the "vehicle_id" field.
func VehicleIDContains(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldContains(FieldVehicleID, v))
}

// VehicleIDHasPrefix applies the HasPrefix predicate on the "vehicle_id" field.
func VehicleIDHasPrefix(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldHasPrefix(FieldVehicleID, v))
}

// VehicleIDHasSuffix applies the HasSuffix predicate on the "vehicle_id" field.
func VehicleIDHasSuffix(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldHasSuffix(FieldVehicleID, v))
}

// VehicleIDEqualFold applies the EqualFold predicate on the "vehicle_id" field.
func VehicleIDEqualFold(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldEqualFold(FieldVehicleID, v))
}

// VehicleIDContainsFold applies the ContainsFold predicate on the "vehicle_id" field.
func VehicleIDContainsFold(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldContainsFold(FieldVehicleID, v))
}

// DtcMasterIDEQ applies the EQ predicate on the "dtc_master_id" field.
func DtcMasterIDEQ(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldEQ(FieldDtcMasterID, v))
}

// DtcMasterIDNEQ applies the NEQ predicate on the "dtc_master_id" field.
func DtcMasterIDNEQ(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldNEQ(FieldDtcMasterID, v))
}

// DtcMasterIDIn applies the In predicate on the "dtc_master_id" field.
func DtcMasterIDIn(vs ...string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldIn(FieldDtcMasterID, vs...))
}

// DtcMasterIDNotIn applies the NotIn predicate on the "dtc_master_id" field.
func DtcMasterIDNotIn(vs ...string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldNotIn(FieldDtcMasterID, vs...))
}

// DtcMasterIDGT applies the GT predicate on the "dtc_master_id" field.
func DtcMasterIDGT(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldGT(FieldDtcMasterID, v))
}

// DtcMasterIDGTE applies the GTE predicate on the "dtc_master_id" field.
func DtcMasterIDGTE(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldGTE(FieldDtcMasterID, v))
}

// DtcMasterIDLT applies the LT predicate on the "dtc_master_id" field.
func DtcMasterIDLT(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldLT(FieldDtcMasterID, v))
}

// DtcMasterIDLTE applies the LTE predicate on the "dtc_master_id" field.
func DtcMasterIDLTE(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldLTE(FieldDtcMasterID, v))
}

// DtcMasterIDContains applies the Contains predicate on the "dtc_master_id" field.
func DtcMasterIDContains(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldContains(FieldDtcMasterID, v))
}

// DtcMasterIDHasPrefix applies the HasPrefix predicate on the "dtc_master_id" field.
func DtcMasterIDHasPrefix(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldHasPrefix(FieldDtcMasterID, v))
}

// DtcMasterIDHasSuffix applies the HasSuffix predicate on the "dtc_master_id" field.
func DtcMasterIDHasSuffix(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldHasSuffix(FieldDtcMasterID, v))
}

// DtcMasterIDEqualFold applies the EqualFold predicate on the "dtc_master_id" field.
func DtcMasterIDEqualFold(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldEqualFold(FieldDtcMasterID, v))
}

// DtcMasterIDContainsFold applies the ContainsFold predicate on the "dtc_master_id" field.
func DtcMasterIDContainsFold(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldContainsFold(FieldDtcMasterID, v))
}

// SourceChunkIDEQ applies the EQ predicate on the "source_chunk_id" field.
func SourceChunkIDEQ(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldEQ(FieldSourceChunkID, v))
}

// SourceChunkIDNEQ applies the NEQ predicate on the "source_chunk_id" field.
func SourceChunkIDNEQ(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldNEQ(FieldSourceChunkID, v))
}

// SourceChunkIDIn applies the In predicate on the "source_chunk_id" field.
func SourceChunkIDIn(vs ...string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldIn(FieldSourceChunkID, vs...))
}

// SourceChunkIDNotIn applies the NotIn predicate on the "source_chunk_id" field.
func SourceChunkIDNotIn(vs ...string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldNotIn(FieldSourceChunkID, vs...))
}

// SourceChunkIDGT applies the GT predicate on the "source_chunk_id" field.
func SourceChunkIDGT(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldGT(FieldSourceChunkID, v))
}

// SourceChunkIDGTE applies the GTE predicate on the "source_chunk_id" field.
func SourceChunkIDGTE(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldGTE(FieldSourceChunkID, v))
}

// SourceChunkIDLT applies the LT predicate on the "source_chunk_id" field.
func SourceChunkIDLT(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldLT(FieldSourceChunkID, v))
}

// SourceChunkIDLTE applies the LTE predicate on the "source_chunk_id" field.
func SourceChunkIDLTE(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldLTE(FieldSourceChunkID, v))
}

// SourceChunkIDContains applies the Contains predicate on the "source_chunk_id" field.
func SourceChunkIDContains(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldContains(FieldSourceChunkID, v))
}

// SourceChunkIDHasPrefix applies the HasPrefix predicate on the "source_chunk_id" field.
func SourceChunkIDHasPrefix(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldHasPrefix(FieldSourceChunkID, v))
}

// SourceChunkIDHasSuffix applies the HasSuffix predicate on the "source_chunk_id" field.
func SourceChunkIDHasSuffix(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldHasSuffix(FieldSourceChunkID, v))
}

// SourceChunkIDIsNil applies the IsNil predicate on the "source_chunk_id" field.
func SourceChunkIDIsNil() predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldIsNull(FieldSourceChunkID))
}

// SourceChunkIDNotNil applies the NotNil predicate on the "source_chunk_id" field.
func SourceChunkIDNotNil() predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldNotNull(FieldSourceChunkID))
}

// SourceChunkIDEqualFold applies the EqualFold predicate on the "source_chunk_id" field.
func SourceChunkIDEqualFold(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldEqualFold(FieldSourceChunkID, v))
}

// SourceChunkIDContainsFold applies the ContainsFold predicate on the "source_chunk_id" field.
func SourceChunkIDContainsFold(v string) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldContainsFold(FieldSourceChunkID, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldLTE(FieldConfidenceScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VehicleDTC) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VehicleDTC) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VehicleDTC) predicate.VehicleDTC {
	return predicate.VehicleDTC(sql.NotPredicates(p))
}
